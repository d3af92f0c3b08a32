package usecases

import (
	"context"
	"testing"

	"github.com/cleitonmarx/moodasana/internal/adapters/outbound/memory"
	"github.com/cleitonmarx/moodasana/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// readyCache builds a sealed two-entry cache with orthogonal vectors.
func readyCache(t *testing.T) domain.EmbeddingCache {
	cache := memory.NewEmbeddingCacheStore()
	assert.NoError(t, cache.Put(
		domain.Asana{Name: "Child Pose (Balasana)"}, "feeling anxious", []float64{1, 0}))
	assert.NoError(t, cache.Put(
		domain.Asana{Name: "Camel Pose (Ustrasana)"}, "feeling sad", []float64{0, 1}))
	cache.MarkReady()
	return cache
}

func TestMatchMoodImpl_Execute(t *testing.T) {
	tests := map[string]struct {
		mood            string
		threshold       float64
		cache           func(t *testing.T) domain.EmbeddingCache
		setExpectations func(encoder *domain.MockMoodEncoder)
		expectedMatched bool
		expectedAsana   string
		expectedScore   float64
		assertErr       func(t *testing.T, err error)
	}{
		"match-above-threshold": {
			mood:      "I feel anxious and worried",
			threshold: 0.62,
			cache:     readyCache,
			setExpectations: func(encoder *domain.MockMoodEncoder) {
				encoder.EXPECT().VectorizeMood(mock.Anything, "mxbai-embed-large", "I feel anxious and worried").
					Return(domain.EmbeddingVector{Vector: []float64{1, 0}, TotalTokens: 9}, nil).Once()
			},
			expectedMatched: true,
			expectedAsana:   "Child Pose (Balasana)",
			expectedScore:   1,
		},
		"score-at-threshold-matches": {
			mood:      "I feel anxious",
			threshold: 1,
			cache:     readyCache,
			setExpectations: func(encoder *domain.MockMoodEncoder) {
				encoder.EXPECT().VectorizeMood(mock.Anything, "mxbai-embed-large", "I feel anxious").
					Return(domain.EmbeddingVector{Vector: []float64{1, 0}}, nil).Once()
			},
			expectedMatched: true,
			expectedAsana:   "Child Pose (Balasana)",
			expectedScore:   1,
		},
		"no-match-below-threshold": {
			mood:      "what is the weather",
			threshold: 0.9,
			cache:     readyCache,
			setExpectations: func(encoder *domain.MockMoodEncoder) {
				encoder.EXPECT().VectorizeMood(mock.Anything, "mxbai-embed-large", "what is the weather").
					Return(domain.EmbeddingVector{Vector: []float64{0.6, 0.8}}, nil).Once()
			},
			expectedMatched: false,
			expectedScore:   0.8,
		},
		"empty-mood-is-rejected": {
			mood:            "   ",
			threshold:       0.62,
			cache:           readyCache,
			setExpectations: func(encoder *domain.MockMoodEncoder) {},
			assertErr: func(t *testing.T, err error) {
				var validationErr *domain.ValidationErr
				assert.ErrorAs(t, err, &validationErr)
			},
		},
		"cache-not-ready": {
			mood:      "I feel anxious",
			threshold: 0.62,
			cache: func(t *testing.T) domain.EmbeddingCache {
				return memory.NewEmbeddingCacheStore()
			},
			setExpectations: func(encoder *domain.MockMoodEncoder) {},
			assertErr: func(t *testing.T, err error) {
				var notReadyErr *domain.CacheNotReadyErr
				assert.ErrorAs(t, err, &notReadyErr)
			},
		},
		"encoder-failure-propagates": {
			mood:      "I feel anxious",
			threshold: 0.62,
			cache:     readyCache,
			setExpectations: func(encoder *domain.MockMoodEncoder) {
				encoder.EXPECT().VectorizeMood(mock.Anything, "mxbai-embed-large", "I feel anxious").
					Return(domain.EmbeddingVector{}, domain.NewProviderUnavailableErr("connection refused")).Once()
			},
			assertErr: func(t *testing.T, err error) {
				var unavailableErr *domain.ProviderUnavailableErr
				assert.ErrorAs(t, err, &unavailableErr)
			},
		},
		"query-dimension-mismatch": {
			mood:      "I feel anxious",
			threshold: 0.62,
			cache:     readyCache,
			setExpectations: func(encoder *domain.MockMoodEncoder) {
				encoder.EXPECT().VectorizeMood(mock.Anything, "mxbai-embed-large", "I feel anxious").
					Return(domain.EmbeddingVector{Vector: []float64{1, 0, 0}}, nil).Once()
			},
			assertErr: func(t *testing.T, err error) {
				var dimensionErr *domain.DimensionMismatchErr
				assert.ErrorAs(t, err, &dimensionErr)
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			encoder := domain.NewMockMoodEncoder(t)
			tt.setExpectations(encoder)

			matcher := NewMatchMoodImpl(tt.cache(t), encoder, "mxbai-embed-large", tt.threshold)

			result, err := matcher.Execute(context.Background(), tt.mood)
			if tt.assertErr != nil {
				tt.assertErr(t, err)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.expectedMatched, result.Matched)
			assert.InDelta(t, tt.expectedScore, result.Score, 1e-9)
			if tt.expectedMatched {
				assert.NotNil(t, result.Asana)
				assert.Equal(t, tt.expectedAsana, result.Asana.Name)
			} else {
				assert.Nil(t, result.Asana)
			}
		})
	}
}

func TestMatchMoodImpl_Execute_TieKeepsFirstEntry(t *testing.T) {
	cache := memory.NewEmbeddingCacheStore()
	assert.NoError(t, cache.Put(
		domain.Asana{Name: "Revolved Triangle Pose (Parivrtta Trikonasana)"}, "feeling angry", []float64{1, 0}))
	assert.NoError(t, cache.Put(
		domain.Asana{Name: "Revolved Chair Pose (Parivrtta Utkatasana)"}, "feeling frustrated", []float64{1, 0}))
	cache.MarkReady()

	encoder := domain.NewMockMoodEncoder(t)
	encoder.EXPECT().VectorizeMood(mock.Anything, "mxbai-embed-large", "I am furious").
		Return(domain.EmbeddingVector{Vector: []float64{1, 0}}, nil).Once()

	matcher := NewMatchMoodImpl(cache, encoder, "mxbai-embed-large", 0.62)

	result, err := matcher.Execute(context.Background(), "I am furious")
	assert.NoError(t, err)
	assert.True(t, result.Matched)
	assert.Equal(t, "Revolved Triangle Pose (Parivrtta Trikonasana)", result.Asana.Name)
}

func TestInitMatchMood_Initialize(t *testing.T) {
	init := InitMatchMood{
		Cache:      memory.NewEmbeddingCacheStore(),
		Encoder:    domain.NewMockMoodEncoder(t),
		EmbedModel: "mxbai-embed-large",
		Threshold:  "0.62",
	}

	ctx, err := init.Initialize(context.Background())
	assert.NoError(t, err)
	assert.NotNil(t, ctx)

	registered, err := depend.Resolve[MatchMood]()
	assert.NoError(t, err)
	assert.NotNil(t, registered)
}

func TestInitMatchMood_Initialize_InvalidThreshold(t *testing.T) {
	tests := map[string]string{
		"not-a-number": "high",
		"out-of-range": "1.5",
	}

	for name, threshold := range tests {
		t.Run(name, func(t *testing.T) {
			init := InitMatchMood{
				Cache:     memory.NewEmbeddingCacheStore(),
				Encoder:   domain.NewMockMoodEncoder(t),
				Threshold: threshold,
			}
			_, err := init.Initialize(context.Background())
			assert.Error(t, err)
		})
	}
}
