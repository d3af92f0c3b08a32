// Package csvaudit persists per-request match metrics as an append-only CSV
// audit trail.
package csvaudit

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/cleitonmarx/moodasana/internal/domain"
	"github.com/cleitonmarx/moodasana/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
)

// csvColumns is the fixed audit schema. Existing files are appended to
// without rewriting the header.
var csvColumns = []string{
	"datetime", "model_name", "embed_model", "prompt", "cosine_similarity_score",
	"best_asana_selected", "total_duration", "load_duration", "prompt_eval_count",
	"prompt_eval_duration", "eval_count", "eval_duration", "tokens_per_second",
	"pdf_report_time", "network_latency", "embed_match_duration", "total_response_time_sec",
}

// Recorder writes MatchAudit rows to a CSV file. A mutex serializes writers;
// rows from concurrent requests interleave but never corrupt.
type Recorder struct {
	mu       sync.Mutex
	filePath string
}

// NewRecorder creates a recorder appending to filePath.
func NewRecorder(filePath string) *Recorder {
	return &Recorder{filePath: filePath}
}

// RecordMatchAudit implements domain.MatchAuditRecorder.
func (r *Recorder) RecordMatchAudit(ctx context.Context, audit domain.MatchAudit) error {
	_, span := telemetry.Start(ctx)
	defer span.End()

	r.mu.Lock()
	defer r.mu.Unlock()

	writeHeader := true
	if _, err := os.Stat(r.filePath); err == nil {
		writeHeader = false
	}

	file, err := os.OpenFile(r.filePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if telemetry.RecordErrorAndStatus(span, err) {
		return fmt.Errorf("failed to open audit file: %w", err)
	}
	defer file.Close() //nolint:errcheck

	writer := csv.NewWriter(file)
	if writeHeader {
		if err := writer.Write(csvColumns); telemetry.RecordErrorAndStatus(span, err) {
			return fmt.Errorf("failed to write audit header: %w", err)
		}
	}

	if err := writer.Write(toRow(audit)); telemetry.RecordErrorAndStatus(span, err) {
		return fmt.Errorf("failed to write audit row: %w", err)
	}

	writer.Flush()
	if err := writer.Error(); telemetry.RecordErrorAndStatus(span, err) {
		return fmt.Errorf("failed to flush audit row: %w", err)
	}
	return nil
}

// toRow renders one audit row in the csvColumns order. Provider counters stay
// in nanoseconds; derived timings are reported in seconds.
func toRow(audit domain.MatchAudit) []string {
	return []string{
		audit.Timestamp.Format(time.DateTime),
		audit.ChatModel,
		audit.EmbedModel,
		audit.Prompt,
		strconv.FormatFloat(audit.Score, 'f', -1, 64),
		audit.SelectedAsana,
		strconv.FormatInt(audit.Comment.TotalDuration.Nanoseconds(), 10),
		strconv.FormatInt(audit.Comment.LoadDuration.Nanoseconds(), 10),
		strconv.Itoa(audit.Comment.PromptEvalCount),
		strconv.FormatInt(audit.Comment.PromptEvalDuration.Nanoseconds(), 10),
		strconv.Itoa(audit.Comment.EvalCount),
		strconv.FormatInt(audit.Comment.EvalDuration.Nanoseconds(), 10),
		strconv.FormatFloat(audit.Comment.TokensPerSecond(), 'f', -1, 64),
		strconv.FormatFloat(audit.ReportDuration.Seconds(), 'f', -1, 64),
		strconv.FormatFloat(audit.Comment.NetworkLatency.Seconds(), 'f', -1, 64),
		strconv.FormatInt(audit.MatchDuration.Nanoseconds(), 10),
		strconv.FormatFloat(audit.TotalDuration.Seconds(), 'f', 4, 64),
	}
}

// Ensure Recorder implements domain.MatchAuditRecorder.
var _ domain.MatchAuditRecorder = (*Recorder)(nil)

// InitAuditRecorder registers the CSV audit recorder.
type InitAuditRecorder struct {
	FilePath string `config:"METRICS_CSV_FILE" default:"yoga_asana_metrics.csv"`
}

// Initialize registers the recorder in the dependency container.
func (i InitAuditRecorder) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[domain.MatchAuditRecorder](NewRecorder(i.FilePath))
	return ctx, nil
}
