//go:build integration

package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/cleitonmarx/moodasana/internal/app"
	"github.com/stretchr/testify/require"
)

const baseURL = "http://localhost:18080"

var metricsFile string

func TestMain(m *testing.M) {
	tmpDir, err := os.MkdirTemp("", "moodasana-integration")
	if err != nil {
		log.Fatalf("failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)
	metricsFile = filepath.Join(tmpDir, "yoga_asana_metrics.csv")

	moodApp := app.NewMoodAsanaApp(
		&initEnvVars{
			envVars: map[string]string{
				"HTTP_PORT":            "18080",
				"EMBED_MODEL":          embedModel,
				"LLM_MODEL":            chatModel,
				"SIMILARITY_THRESHOLD": "0.62",
				"REPORTS_DIR":          filepath.Join(tmpDir, "reports"),
				"METRICS_CSV_FILE":     metricsFile,
				"AUDIT_FLUSH_INTERVAL": "100ms",
			},
		},
		&InitOllamaContainer{},
	)

	cancelCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	shutdownCh := moodApp.RunAsync(cancelCtx)

	err = moodApp.WaitForReadiness(cancelCtx, 10*time.Minute)
	if err != nil {
		cancel()
		log.Fatalf("MoodAsana app failed to become ready: %v", err)
	}

	code := m.Run()

	cancel()

	select {
	case <-time.After(1 * time.Minute):
		log.Fatalf("MoodAsana app did not shut down in time")
	case err = <-shutdownCh:
		if err != nil {
			log.Fatalf("MoodAsana app shutdown with error: %v", err)
		} else {
			log.Printf("MoodAsana app shut down gracefully")
		}
	}

	os.Exit(code)
}

func postPrompt(t *testing.T, prompt string) map[string]any {
	body, err := json.Marshal(map[string]string{"prompt": prompt})
	require.NoError(t, err)

	resp, err := http.Post(baseURL+"/process_prompt", "application/json", bytes.NewReader(body))
	require.NoError(t, err, "failed to call process_prompt endpoint")
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var payload map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	return payload
}

func TestMoodAsana_ProcessPrompt(t *testing.T) {
	t.Run("readyz-reports-warm-cache", func(t *testing.T) {
		resp, err := http.Get(baseURL + "/readyz")
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var payload map[string]any
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
		require.Equal(t, "ready", payload["status"])
		require.Equal(t, float64(21), payload["cached_utterances"])
	})

	t.Run("anxious-mood-recommends-asana", func(t *testing.T) {
		payload := postPrompt(t, "I feel anxious and cannot calm down")
		require.Equal(t, "success", payload["status"])
		require.NotEmpty(t, payload["recommended_asana"])
		require.NotEmpty(t, payload["final_comment"])
		require.NotEmpty(t, payload["download_report_url"])

		downloadURL, _ := payload["download_report_url"].(string)
		resp, err := http.Get(baseURL + downloadURL)
		require.NoError(t, err, "failed to download report")
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)
		require.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	})

	t.Run("off-topic-prompt-returns-no-match", func(t *testing.T) {
		payload := postPrompt(t, "what is the capital of France")
		require.Equal(t, "no_match", payload["status"])
		require.Equal(t, "No suitable Yoga Asana found for your current mood.", payload["message"])
	})

	t.Run("audit-rows-are-written", func(t *testing.T) {
		require.Eventually(t, func() bool {
			info, err := os.Stat(metricsFile)
			return err == nil && info.Size() > 0
		}, 30*time.Second, time.Second, "expected audit writer to flush metrics CSV")
	})
}
