package domain

import (
	"context"
	"time"
)

// NoRouteAsana marks audit rows of requests where no asana met the
// similarity threshold.
const NoRouteAsana = "no_route"

// MatchAudit is one row of the performance audit trail. It is derived from a
// completed request; MatchResult instances themselves are never persisted.
type MatchAudit struct {
	Timestamp      time.Time
	ChatModel      string
	EmbedModel     string
	Prompt         string
	Score          float64
	SelectedAsana  string
	Comment        CommentMetrics
	ReportDuration time.Duration
	MatchDuration  time.Duration
	TotalDuration  time.Duration
}

// MatchAuditRecorder persists audit rows. The core only guarantees the
// MatchAudit fields are stable and complete; the storage format belongs to
// the recorder.
type MatchAuditRecorder interface {
	RecordMatchAudit(ctx context.Context, audit MatchAudit) error
}

// MatchAuditChannel queues audit rows for the background writer so request
// handling never blocks on audit I/O.
type MatchAuditChannel chan MatchAudit
