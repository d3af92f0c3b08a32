// Package pdf renders the downloadable recommendation report and resolves
// rendered files for the download endpoint.
package pdf

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/cleitonmarx/moodasana/internal/domain"
	"github.com/cleitonmarx/moodasana/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/go-pdf/fpdf"
)

// Renderer writes recommendation reports as PDF files into a reports
// directory.
type Renderer struct {
	reportsDir string
}

// NewRenderer creates a renderer writing into reportsDir.
func NewRenderer(reportsDir string) Renderer {
	return Renderer{reportsDir: reportsDir}
}

// RenderReport implements domain.ReportRenderer.
func (r Renderer) RenderReport(ctx context.Context, asana domain.Asana, mood string, score float64, comment string) (domain.Report, error) {
	_, span := telemetry.Start(ctx)
	defer span.End()

	start := time.Now()

	filename := fmt.Sprintf("%s_%s.pdf", sanitizeFilename(asana.Name), start.Format("20060102_150405"))
	path := filepath.Join(r.reportsDir, filename)

	doc := fpdf.New("P", "mm", "Letter", "")
	doc.SetMargins(18, 18, 18)
	doc.AddPage()

	doc.SetFont("Helvetica", "B", 20)
	doc.MultiCell(0, 10, "Mood-Based Yoga Session Recommendation Report", "", "C", false)
	doc.Ln(4)

	writeBody := func(text string) {
		doc.SetFont("Helvetica", "", 12)
		doc.MultiCell(0, 6, text, "", "L", false)
	}
	writeHeading := func(text string) {
		doc.Ln(3)
		doc.SetFont("Helvetica", "B", 14)
		doc.MultiCell(0, 7, text, "", "L", false)
	}
	writeList := func(items string) {
		doc.SetFont("Helvetica", "", 12)
		for _, item := range strings.Split(items, ",") {
			doc.MultiCell(0, 6, "- "+strings.TrimSpace(item), "", "L", false)
		}
	}

	writeBody(fmt.Sprintf("Date: %s", start.Format(time.DateTime)))
	writeBody(fmt.Sprintf("User Prompt: %s", mood))
	writeBody(fmt.Sprintf("Similarity Score: %.4f", score))

	writeHeading(fmt.Sprintf("Recommended Asana: %s", asana.Name))

	writeHeading("How to Do:")
	writeBody(asana.Content.HowToDo)

	writeHeading("Frequency:")
	writeBody(asana.Content.Frequency)

	writeHeading("Timing:")
	writeBody(asana.Content.Timing)

	writeHeading("Dietary Recommendations:")
	writeList(asana.Content.Dietary)

	writeHeading("Lifestyle Recommendations:")
	writeList(asana.Content.Lifestyle)

	writeHeading("Benefits:")
	writeList(asana.Content.Benefits)

	writeHeading("Final Comment:")
	writeBody(comment)

	if err := doc.OutputFileAndClose(path); telemetry.RecordErrorAndStatus(span, err) {
		return domain.Report{}, fmt.Errorf("failed to write pdf report: %w", err)
	}

	return domain.Report{
		Filename: filename,
		Path:     path,
		Duration: time.Since(start),
	}, nil
}

// sanitizeFilename flattens an asana name into a safe file name component.
func sanitizeFilename(name string) string {
	replacer := strings.NewReplacer(
		" ", "_",
		"/", "_",
		"'", "",
		"’", "",
	)
	return replacer.Replace(name)
}

// FileReportStore resolves rendered reports inside the reports directory.
type FileReportStore struct {
	reportsDir string
}

// NewFileReportStore creates a store serving reportsDir.
func NewFileReportStore(reportsDir string) FileReportStore {
	return FileReportStore{reportsDir: reportsDir}
}

// ResolveReport implements domain.ReportStore. Filenames containing path
// separators or traversal segments never resolve.
func (s FileReportStore) ResolveReport(filename string) (string, error) {
	if filename == "" || filename != filepath.Base(filename) || strings.Contains(filename, "..") {
		return "", domain.NewNotFoundErr("report file not found")
	}

	path := filepath.Join(s.reportsDir, filename)
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return "", domain.NewNotFoundErr("report file not found")
	}

	return path, nil
}

// Ensure implementations satisfy the domain interfaces.
var (
	_ domain.ReportRenderer = (*Renderer)(nil)
	_ domain.ReportStore    = (*FileReportStore)(nil)
)

// InitReportRenderer creates the reports directory and registers the renderer
// and the report store.
type InitReportRenderer struct {
	Logger     *log.Logger `resolve:""`
	ReportsDir string      `config:"REPORTS_DIR" default:"reports"`
}

// Initialize registers the PDF renderer and file store.
func (i InitReportRenderer) Initialize(ctx context.Context) (context.Context, error) {
	if err := os.MkdirAll(i.ReportsDir, 0o755); err != nil {
		return ctx, fmt.Errorf("failed to create reports directory: %w", err)
	}

	depend.Register[domain.ReportRenderer](NewRenderer(i.ReportsDir))
	depend.Register[domain.ReportStore](NewFileReportStore(i.ReportsDir))
	return ctx, nil
}
