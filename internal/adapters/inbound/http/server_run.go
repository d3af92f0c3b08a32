package http

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/cleitonmarx/moodasana/internal/domain"
	"github.com/cleitonmarx/moodasana/internal/telemetry"
	"github.com/cleitonmarx/moodasana/internal/usecases"
	"github.com/rs/cors"
)

// MoodAsanaServer is the REST API HTTP server for the mood recommendation service.
type MoodAsanaServer struct {
	Port                 int                    `config:"HTTP_PORT" default:"8080"`
	Logger               *log.Logger            `resolve:""`
	ProcessPromptUseCase usecases.ProcessPrompt `resolve:""`
	ReportStore          domain.ReportStore     `resolve:""`
	Cache                domain.EmbeddingCache  `resolve:""`
}

// Run starts the HTTP server for the MoodAsanaServer.
func (api MoodAsanaServer) Run(ctx context.Context) error {

	mux := http.NewServeMux()
	mux.HandleFunc("POST /process_prompt", api.ProcessPromptHandler)
	mux.HandleFunc("GET /download_report/{filename}", api.DownloadReportHandler)
	mux.HandleFunc("GET /readyz", api.ReadinessHandler)

	// Register introspection endpoint for debugging and testing purposes
	mux.HandleFunc("/introspect", IntrospectHandler)

	h := telemetry.Middleware("moodasana-api")(mux)

	// Apply CORS at the top-level so preflight requests hit it, too.
	h = cors.AllowAll().Handler(h)

	s := &http.Server{
		Handler: h,
		Addr:    fmt.Sprintf(":%d", api.Port),
	}

	errCh := make(chan error, 1)
	go func() {
		api.Logger.Printf("MoodAsanaServer: Listening on port %d", api.Port)
		errCh <- s.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		err := s.Shutdown(shutdownCtx)
		if err != nil {
			api.Logger.Printf("MoodAsanaServer: error during shutdown: %v", err)
		} else {
			api.Logger.Println("MoodAsanaServer: stopped")
		}
		return err
	case err := <-errCh:
		return err
	}
}

// IsReady checks if the MoodAsanaServer is ready by performing a health check.
func (api MoodAsanaServer) IsReady(ctx context.Context) error {
	resp, err := http.Get(fmt.Sprintf("http://:%d/readyz", api.Port))
	if err != nil {
		return err
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}
	return nil
}
