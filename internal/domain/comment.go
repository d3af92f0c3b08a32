package domain

import (
	"context"
	"time"
)

// CommentMetrics carries the chat provider's timing and token accounting
// for one final-comment generation.
type CommentMetrics struct {
	TotalDuration      time.Duration
	LoadDuration       time.Duration
	PromptEvalCount    int
	PromptEvalDuration time.Duration
	EvalCount          int
	EvalDuration       time.Duration
	NetworkLatency     time.Duration
}

// TokensPerSecond derives the generation throughput from the eval counters.
func (m CommentMetrics) TokensPerSecond() float64 {
	if m.EvalCount == 0 || m.EvalDuration == 0 {
		return 0
	}
	return float64(m.EvalCount) / m.EvalDuration.Seconds()
}

// CommentGenerator produces the personalized final comment for a matched
// asana. It is a black-box collaborator with its own failure policy; callers
// must tolerate failure without failing the surrounding request.
type CommentGenerator interface {
	GenerateComment(ctx context.Context, model string, asana Asana, mood string) (string, CommentMetrics, error)
}
