package usecases

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/cleitonmarx/moodasana/internal/common"
	"github.com/cleitonmarx/moodasana/internal/domain"
	"github.com/cleitonmarx/moodasana/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
)

// MatchMood defines the interface for matching a mood prompt against the
// cached catalog embeddings.
type MatchMood interface {
	// Execute embeds the mood and scans the cache. A no-match result is a
	// valid outcome, not an error.
	Execute(ctx context.Context, mood string) (domain.MatchResult, error)
}

// MatchMoodImpl is the implementation of the MatchMood use case.
type MatchMoodImpl struct {
	cache      domain.EmbeddingCache
	encoder    domain.MoodEncoder
	embedModel string
	threshold  float64
}

// NewMatchMoodImpl creates a new instance of MatchMoodImpl.
func NewMatchMoodImpl(cache domain.EmbeddingCache, encoder domain.MoodEncoder, embedModel string, threshold float64) MatchMoodImpl {
	return MatchMoodImpl{
		cache:      cache,
		encoder:    encoder,
		embedModel: embedModel,
		threshold:  threshold,
	}
}

// Execute embeds the mood prompt and linearly scans the sealed cache.
// The best candidate wins only with a strictly greater score, so ties keep
// the earliest entry in catalog order.
func (m MatchMoodImpl) Execute(ctx context.Context, mood string) (domain.MatchResult, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	if strings.TrimSpace(mood) == "" {
		err := domain.NewValidationErr("mood prompt cannot be empty")
		telemetry.RecordErrorAndStatus(span, err)
		return domain.MatchResult{}, err
	}

	if !m.cache.Ready() {
		err := domain.NewCacheNotReadyErr("embedding cache is not ready")
		telemetry.RecordErrorAndStatus(span, err)
		return domain.MatchResult{}, err
	}

	vec, err := m.encoder.VectorizeMood(spanCtx, m.embedModel, mood)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.MatchResult{}, err
	}

	RecordLLMTokensEmbedding(spanCtx, vec.TotalTokens)

	scanStart := time.Now()

	var bestEntry *domain.CacheEntry
	bestScore := -1.0
	entries := m.cache.Entries()
	for i := range entries {
		score, err := common.CosineSimilarity(vec.Vector, entries[i].Vector)
		if err != nil {
			if errors.Is(err, common.ErrDimensionMismatch) {
				err = domain.NewDimensionMismatchErr(fmt.Sprintf(
					"query dimension %d does not match cache dimension %d",
					len(vec.Vector), m.cache.Dimension()))
			}
			telemetry.RecordErrorAndStatus(span, err)
			return domain.MatchResult{}, err
		}
		if score > bestScore {
			bestScore = score
			bestEntry = &entries[i]
		}
	}

	result := domain.MatchResult{
		Score:    bestScore,
		Duration: time.Since(scanStart),
	}
	if bestEntry != nil && bestScore >= m.threshold {
		result.Matched = true
		asana := bestEntry.Asana
		result.Asana = &asana
	}

	RecordMoodMatch(spanCtx, result.Matched)
	telemetry.SetMatchAttributes(span, result.Matched, result.Score)

	return result, nil
}

// InitMatchMood initializes the MatchMood use case and registers it in the dependency container.
type InitMatchMood struct {
	Cache      domain.EmbeddingCache `resolve:""`
	Encoder    domain.MoodEncoder    `resolve:""`
	EmbedModel string                `config:"EMBED_MODEL" default:"mxbai-embed-large"`
	Threshold  string                `config:"SIMILARITY_THRESHOLD" default:"0.62"`
}

// Initialize registers the MatchMoodImpl use case in the dependency container.
func (i InitMatchMood) Initialize(ctx context.Context) (context.Context, error) {
	threshold, err := strconv.ParseFloat(i.Threshold, 64)
	if err != nil {
		return ctx, fmt.Errorf("invalid SIMILARITY_THRESHOLD value %q: %w", i.Threshold, err)
	}
	if threshold < -1 || threshold > 1 {
		return ctx, fmt.Errorf("SIMILARITY_THRESHOLD %v is outside [-1, 1]", threshold)
	}

	depend.Register[MatchMood](NewMatchMoodImpl(i.Cache, i.Encoder, i.EmbedModel, threshold))
	return ctx, nil
}
