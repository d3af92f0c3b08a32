package common

import (
	"errors"
	"math"
)

// ErrDimensionMismatch is returned when two vectors of different lengths
// are compared.
var ErrDimensionMismatch = errors.New("vector dimension mismatch")

// CosineSimilarity calculates the cosine similarity between two equal-length
// vectors. A zero-magnitude input yields 0 rather than an error: the
// similarity is mathematically undefined there, but a degenerate embedding
// from a misbehaving provider must not fail the request.
func CosineSimilarity(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, ErrDimensionMismatch
	}

	var dotProduct float64
	var normA float64
	var normB float64

	for i := range a {
		dotProduct += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}

	if normA == 0 || normB == 0 {
		return 0, nil
	}

	return dotProduct / (math.Sqrt(normA) * math.Sqrt(normB)), nil
}
