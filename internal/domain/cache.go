package domain

// CacheEntry pairs one catalog utterance with its precomputed embedding.
// Entries are owned exclusively by the EmbeddingCache and are never mutated
// after warm-up.
type CacheEntry struct {
	Asana     Asana
	Utterance string
	Vector    []float64
}

// EmbeddingCache holds the precomputed utterance embeddings. It has a
// two-phase lifecycle: a single writer populates it during warm-up, then
// MarkReady seals it and any number of readers may scan Entries concurrently.
type EmbeddingCache interface {
	// Put stores one utterance embedding. It fails once the cache is sealed,
	// and it fails on an empty vector or a vector whose dimension differs
	// from the one pinned by the first stored entry.
	Put(asana Asana, utterance string, vector []float64) error
	// Entries returns all cached entries in catalog-then-utterance order.
	Entries() []CacheEntry
	// MarkReady seals the cache for reading.
	MarkReady()
	// Ready reports whether warm-up completed and the cache is serving.
	Ready() bool
	// Len returns the number of cached entries.
	Len() int
	// Dimension returns the pinned vector dimension, or 0 while empty.
	Dimension() int
}

// WarmUpFailure records one utterance whose embedding could not be cached.
type WarmUpFailure struct {
	AsanaName string
	Utterance string
	Err       error
}

// WarmUpReport summarizes the warm-up phase. Per-utterance failures are
// isolated: a failed utterance is absent from the cache but never aborts
// the remaining warm-up work.
type WarmUpReport struct {
	Attempted int
	Cached    int
	Failures  []WarmUpFailure
}

// Complete reports whether every attempted utterance was cached.
func (r WarmUpReport) Complete() bool {
	return len(r.Failures) == 0
}
