package usecases

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/cleitonmarx/moodasana/internal/domain"
	"github.com/cleitonmarx/moodasana/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
)

// WarmUpCache defines the interface for the startup embedding warm-up.
type WarmUpCache interface {
	// Execute embeds every catalog utterance, fills the cache and seals it.
	Execute(ctx context.Context) (domain.WarmUpReport, error)
}

// WarmUpCacheImpl is the implementation of the WarmUpCache use case.
type WarmUpCacheImpl struct {
	catalog    domain.Catalog
	encoder    domain.MoodEncoder
	cache      domain.EmbeddingCache
	embedModel string
	strict     bool
	logger     *log.Logger
}

// NewWarmUpCacheImpl creates a new instance of WarmUpCacheImpl.
func NewWarmUpCacheImpl(
	catalog domain.Catalog,
	encoder domain.MoodEncoder,
	cache domain.EmbeddingCache,
	embedModel string,
	strict bool,
	logger *log.Logger,
) WarmUpCacheImpl {
	return WarmUpCacheImpl{
		catalog:    catalog,
		encoder:    encoder,
		cache:      cache,
		embedModel: embedModel,
		strict:     strict,
		logger:     logger,
	}
}

// Execute embeds catalog utterances one by one. A failed utterance is
// recorded and skipped; only an empty resulting cache, or any failure in
// strict mode, aborts startup.
func (w WarmUpCacheImpl) Execute(ctx context.Context) (domain.WarmUpReport, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	report := domain.WarmUpReport{}
	for _, asana := range w.catalog {
		for _, utterance := range asana.Utterances {
			report.Attempted++

			vec, err := w.encoder.VectorizeUtterance(spanCtx, w.embedModel, utterance)
			if err != nil {
				w.logger.Printf("Warm-up: failed to embed utterance for %s: %v", asana.Name, err)
				report.Failures = append(report.Failures, domain.WarmUpFailure{
					AsanaName: asana.Name,
					Utterance: utterance,
					Err:       err,
				})
				continue
			}

			RecordLLMTokensEmbedding(spanCtx, vec.TotalTokens)

			if err := w.cache.Put(asana, utterance, vec.Vector); err != nil {
				w.logger.Printf("Warm-up: failed to cache utterance for %s: %v", asana.Name, err)
				report.Failures = append(report.Failures, domain.WarmUpFailure{
					AsanaName: asana.Name,
					Utterance: utterance,
					Err:       err,
				})
				continue
			}
			report.Cached++
		}
	}

	if report.Cached == 0 {
		err := domain.NewCacheNotReadyErr("warm-up cached no embeddings")
		telemetry.RecordErrorAndStatus(span, err)
		return report, err
	}
	if w.strict && !report.Complete() {
		err := domain.NewCacheNotReadyErr(
			fmt.Sprintf("warm-up failed for %d of %d utterances", len(report.Failures), report.Attempted),
		)
		telemetry.RecordErrorAndStatus(span, err)
		return report, err
	}

	w.cache.MarkReady()
	w.logger.Printf("Warm-up complete: %d/%d utterances cached, dimension %d",
		report.Cached, report.Attempted, w.cache.Dimension())

	return report, nil
}

// InitWarmUpCache initializes the WarmUpCache use case and runs it. Hosts
// only start once Initialize returns, so a sealed cache is guaranteed before
// the first request is served.
type InitWarmUpCache struct {
	Catalog       domain.Catalog        `resolve:""`
	Encoder       domain.MoodEncoder    `resolve:""`
	Cache         domain.EmbeddingCache `resolve:""`
	Logger        *log.Logger           `resolve:""`
	EmbedModel    string                `config:"EMBED_MODEL" default:"mxbai-embed-large"`
	WarmupStrict  string                `config:"WARMUP_STRICT" default:"false"`
	WarmupTimeout time.Duration         `config:"WARMUP_TIMEOUT" default:"120s"`
}

// Initialize registers the WarmUpCache use case and executes the warm-up.
func (i InitWarmUpCache) Initialize(ctx context.Context) (context.Context, error) {
	strict, err := strconv.ParseBool(i.WarmupStrict)
	if err != nil {
		return ctx, fmt.Errorf("invalid WARMUP_STRICT value %q: %w", i.WarmupStrict, err)
	}

	warmUp := NewWarmUpCacheImpl(i.Catalog, i.Encoder, i.Cache, i.EmbedModel, strict, i.Logger)
	depend.Register[WarmUpCache](warmUp)

	warmUpCtx, cancel := context.WithTimeout(ctx, i.WarmupTimeout)
	defer cancel()

	i.Logger.Printf("Warming up embedding cache with model %s (%d utterances)...",
		i.EmbedModel, i.Catalog.TotalUtterances())

	if _, err := warmUp.Execute(warmUpCtx); err != nil {
		return ctx, fmt.Errorf("embedding cache warm-up failed: %w", err)
	}

	return ctx, nil
}
