package workers

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/cleitonmarx/moodasana/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
)

// AuditWriter is a runnable that drains queued audit rows and persists them
// in the background, off the request path.
type AuditWriter struct {
	Logger              *log.Logger               `resolve:""`
	Recorder            domain.MatchAuditRecorder `resolve:""`
	AuditCh             domain.MatchAuditChannel  `resolve:""`
	Interval            time.Duration             `config:"AUDIT_FLUSH_INTERVAL" default:"3s"`
	BatchSize           int                       `config:"AUDIT_BATCH_SIZE" default:"50"`
	workerExecutionChan chan struct{}
}

// Run starts the audit writer worker.
func (w AuditWriter) Run(ctx context.Context) error {
	w.Logger.Println("AuditWriter: running...")

	if w.BatchSize <= 0 {
		w.BatchSize = 50
	}
	if w.Interval <= 0 {
		w.Interval = 3 * time.Second
	}

	ticker := time.NewTicker(w.Interval)
	defer ticker.Stop()

	var batch []domain.MatchAudit

	for {
		select {
		case <-ctx.Done():
			// Rows already queued are worth one final write attempt.
			w.drain(&batch)
			if len(batch) > 0 {
				w.flush(context.Background(), batch)
			}
			w.Logger.Println("AuditWriter: stopped")
			return nil

		case audit := <-w.AuditCh:
			batch = append(batch, audit)
			if len(batch) >= w.BatchSize {
				w.flush(ctx, batch)
				batch = nil
			}

		case <-ticker.C:
			if len(batch) > 0 {
				w.flush(ctx, batch)
				batch = nil
			}
		}
	}
}

// drain moves whatever is still queued into the batch without blocking.
func (w AuditWriter) drain(batch *[]domain.MatchAudit) {
	for {
		select {
		case audit := <-w.AuditCh:
			*batch = append(*batch, audit)
		default:
			return
		}
	}
}

// flush persists a batch of audit rows. A failed row is logged and skipped;
// one bad row never blocks the rest of the batch.
func (w AuditWriter) flush(ctx context.Context, batch []domain.MatchAudit) {
	w.Logger.Printf("AuditWriter: writing batch size=%d", len(batch))

	for _, audit := range batch {
		err := w.Recorder.RecordMatchAudit(ctx, audit)
		if err != nil {
			if !errors.Is(err, context.Canceled) {
				w.Logger.Printf("AuditWriter: failed to record audit row: %v", err)
			}
			continue
		}
	}

	if w.workerExecutionChan != nil {
		w.workerExecutionChan <- struct{}{}
	}
}

// InitAuditChannel creates the audit queue shared by the request path and the
// AuditWriter and registers it in the dependency container.
type InitAuditChannel struct {
	QueueSize int `config:"AUDIT_QUEUE_SIZE" default:"256"`
}

// Initialize registers the MatchAuditChannel in the dependency container.
func (i InitAuditChannel) Initialize(ctx context.Context) (context.Context, error) {
	if i.QueueSize <= 0 {
		i.QueueSize = 256
	}
	depend.Register[domain.MatchAuditChannel](make(domain.MatchAuditChannel, i.QueueSize))
	return ctx, nil
}
