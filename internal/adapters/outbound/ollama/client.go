// Package ollama provides a thin client for the Ollama native HTTP API
// (/api/embed and /api/chat) plus adapters onto the domain encoder and
// comment-generator ports.
package ollama

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/cleitonmarx/moodasana/internal/domain"
	"golang.org/x/time/rate"
)

// OllamaAPIClient is a thin client for the Ollama native API.
type OllamaAPIClient struct {
	baseURL      string
	http         *http.Client
	embedLimiter *rate.Limiter
}

// NewOllamaAPIClient creates a new client. The embed limiter throttles
// warm-up bursts so the provider keeps serving interactive traffic.
func NewOllamaAPIClient(baseURL string, httpClient *http.Client, embedRPS int) OllamaAPIClient {
	if embedRPS <= 0 {
		embedRPS = 10
	}
	return OllamaAPIClient{
		baseURL:      baseURL,
		http:         httpClient,
		embedLimiter: rate.NewLimiter(rate.Limit(embedRPS), embedRPS),
	}
}

// Embed calls the /api/embed endpoint.
func (c OllamaAPIClient) Embed(ctx context.Context, req EmbedRequest) (*EmbedResponse, error) {
	if req.Model == "" {
		return nil, errors.New("model is required")
	}
	if req.Input == "" {
		return nil, errors.New("input is required")
	}

	if err := c.embedLimiter.Wait(ctx); err != nil {
		return nil, err
	}

	out := &EmbedResponse{}
	if err := c.post(ctx, "/api/embed", req, out); err != nil {
		return nil, err
	}
	return out, nil
}

// Chat sends a non-streaming request to the /api/chat endpoint.
func (c OllamaAPIClient) Chat(ctx context.Context, req ChatRequest) (*ChatResponse, error) {
	if req.Model == "" {
		return nil, errors.New("model is required")
	}
	if len(req.Messages) == 0 {
		return nil, errors.New("messages are required")
	}

	out := &ChatResponse{}
	if err := c.post(ctx, "/api/chat", req, out); err != nil {
		return nil, err
	}
	return out, nil
}

// post runs one request/response cycle, mapping transport failures to
// ProviderUnavailableErr and service failures to ProviderErr.
func (c OllamaAPIClient) post(ctx context.Context, path string, body any, out any) error {
	httpReq, err := c.newPostRequest(ctx, path, body)
	if err != nil {
		return err
	}

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return domain.NewProviderUnavailableErr(fmt.Sprintf("ollama is unreachable: %v", err))
	}
	defer resp.Body.Close() //nolint:errcheck

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return domain.NewProviderErr(fmt.Sprintf("read response: %v", err))
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return domain.NewProviderErr(fmt.Sprintf("non-2xx response: %s: %s", resp.Status, string(respBody)))
	}

	if err := json.Unmarshal(respBody, out); err != nil {
		return domain.NewProviderErr(fmt.Sprintf("unmarshal response: %v", err))
	}

	return nil
}

func (c OllamaAPIClient) newPostRequest(ctx context.Context, path string, body any) (*http.Request, error) {
	endpoint, err := url.JoinPath(c.baseURL, path)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}
	var bodyReader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal request: %w", err)
		}
		bodyReader = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	return req, nil
}
