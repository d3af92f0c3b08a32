package domain

import "context"

// EmbeddingVector is a semantic vector plus token accounting.
type EmbeddingVector struct {
	Vector      []float64
	TotalTokens int
}

// MoodEncoder defines embedding/vectorization behavior in domain terms.
// Implementations must be safe for concurrent use.
type MoodEncoder interface {
	// VectorizeUtterance generates a semantic vector for one catalog utterance.
	VectorizeUtterance(ctx context.Context, model, utterance string) (EmbeddingVector, error)
	// VectorizeMood generates a semantic vector for one user mood prompt.
	VectorizeMood(ctx context.Context, model, mood string) (EmbeddingVector, error)
}
