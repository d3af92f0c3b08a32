package memory

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/cleitonmarx/moodasana/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
)

// EmbeddingCacheStore is an in-memory implementation of domain.EmbeddingCache.
// Warm-up writes under the mutex; after MarkReady the entry slice is frozen
// and readers scan it without copying.
type EmbeddingCacheStore struct {
	mu        sync.Mutex
	entries   []domain.CacheEntry
	dimension int
	ready     atomic.Bool
}

// NewEmbeddingCacheStore creates an empty, unsealed cache.
func NewEmbeddingCacheStore() *EmbeddingCacheStore {
	return &EmbeddingCacheStore{}
}

// Put stores one utterance embedding. The first stored vector pins the cache
// dimension; later vectors must match it.
func (s *EmbeddingCacheStore) Put(asana domain.Asana, utterance string, vector []float64) error {
	if s.ready.Load() {
		return domain.NewValidationErr("embedding cache is sealed")
	}
	if len(vector) == 0 {
		return domain.NewValidationErr(fmt.Sprintf("empty embedding vector for asana %s", asana.Name))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.dimension == 0 {
		s.dimension = len(vector)
	} else if len(vector) != s.dimension {
		return domain.NewDimensionMismatchErr(
			fmt.Sprintf("embedding dimension %d for asana %s does not match cache dimension %d",
				len(vector), asana.Name, s.dimension),
		)
	}

	s.entries = append(s.entries, domain.CacheEntry{
		Asana:     asana,
		Utterance: utterance,
		Vector:    vector,
	})
	return nil
}

// Entries returns all cached entries in insertion order.
func (s *EmbeddingCacheStore) Entries() []domain.CacheEntry {
	if s.ready.Load() {
		return s.entries
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.entries
}

// MarkReady seals the cache for reading.
func (s *EmbeddingCacheStore) MarkReady() {
	s.ready.Store(true)
}

// Ready reports whether the cache is sealed and serving.
func (s *EmbeddingCacheStore) Ready() bool {
	return s.ready.Load()
}

// Len returns the number of cached entries.
func (s *EmbeddingCacheStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// Dimension returns the pinned vector dimension, or 0 while empty.
func (s *EmbeddingCacheStore) Dimension() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dimension
}

// Ensure EmbeddingCacheStore implements domain.EmbeddingCache.
var _ domain.EmbeddingCache = (*EmbeddingCacheStore)(nil)

// InitEmbeddingCache registers the in-memory embedding cache.
type InitEmbeddingCache struct{}

// Initialize registers the cache in the dependency container.
func (i InitEmbeddingCache) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[domain.EmbeddingCache](NewEmbeddingCacheStore())
	return ctx, nil
}
