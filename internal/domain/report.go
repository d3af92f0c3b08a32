package domain

import (
	"context"
	"time"
)

// Report identifies one rendered PDF recommendation report.
type Report struct {
	Filename string
	Path     string
	Duration time.Duration
}

// ReportRenderer renders a downloadable recommendation report for a
// matched asana.
type ReportRenderer interface {
	RenderReport(ctx context.Context, asana Asana, mood string, score float64, comment string) (Report, error)
}

// ReportStore resolves previously rendered reports by filename for download.
type ReportStore interface {
	// ResolveReport returns the on-disk path for filename, or NotFoundErr.
	ResolveReport(filename string) (string, error)
}
