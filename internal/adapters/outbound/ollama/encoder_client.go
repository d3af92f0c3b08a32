package ollama

import (
	"context"
	"embed"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/cleitonmarx/moodasana/internal/domain"
	"github.com/cleitonmarx/moodasana/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"go.yaml.in/yaml/v3"
)

//go:embed prompts/final-comment.yml
var finalCommentPrompt embed.FS

// EncoderClient adapts OllamaAPIClient to the domain encoder and
// comment-generator interfaces.
type EncoderClient struct {
	client           OllamaAPIClient
	embeddingFactory EmbeddingFactory
}

// NewEncoderClientAdapter creates a new adapter.
func NewEncoderClientAdapter(client OllamaAPIClient) EncoderClient {
	return EncoderClient{client: client, embeddingFactory: embeddingFactory{}}
}

// VectorizeUtterance implements domain.MoodEncoder.
func (e EncoderClient) VectorizeUtterance(ctx context.Context, model, utterance string) (domain.EmbeddingVector, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	prompt := e.embeddingFactory.Get(model).GenerateIndexingPrompt(utterance)
	vec, err := e.embed(spanCtx, model, prompt)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.EmbeddingVector{}, err
	}
	return vec, nil
}

// VectorizeMood implements domain.MoodEncoder.
func (e EncoderClient) VectorizeMood(ctx context.Context, model, mood string) (domain.EmbeddingVector, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	prompt := e.embeddingFactory.Get(model).GenerateSearchPrompt(mood)
	vec, err := e.embed(spanCtx, model, prompt)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.EmbeddingVector{}, err
	}
	return vec, nil
}

func (e EncoderClient) embed(ctx context.Context, model, input string) (domain.EmbeddingVector, error) {
	resp, err := e.client.Embed(ctx, EmbedRequest{Model: model, Input: input})
	if err != nil {
		return domain.EmbeddingVector{}, err
	}
	if len(resp.Embeddings) == 0 || len(resp.Embeddings[0]) == 0 {
		return domain.EmbeddingVector{}, domain.NewProviderErr("no embedding data in response")
	}
	return domain.EmbeddingVector{
		Vector:      resp.Embeddings[0],
		TotalTokens: resp.PromptEvalCount,
	}, nil
}

// GenerateComment implements domain.CommentGenerator. The network latency in
// the returned metrics is the wall-clock round trip; the remaining fields come
// from the provider's own nanosecond counters.
func (e EncoderClient) GenerateComment(ctx context.Context, model string, asana domain.Asana, mood string) (string, domain.CommentMetrics, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	messages, err := e.buildCommentMessages(asana)
	if telemetry.RecordErrorAndStatus(span, err) {
		return "", domain.CommentMetrics{}, err
	}

	requestStart := time.Now()
	resp, err := e.client.Chat(spanCtx, ChatRequest{
		Model:    model,
		Messages: messages,
		Stream:   false,
	})
	networkLatency := time.Since(requestStart)
	if telemetry.RecordErrorAndStatus(span, err) {
		return "", domain.CommentMetrics{}, err
	}

	comment := strings.TrimSpace(resp.Message.Content)
	if comment == "" {
		err := domain.NewProviderErr("empty comment in chat response")
		telemetry.RecordErrorAndStatus(span, err)
		return "", domain.CommentMetrics{}, err
	}

	metrics := domain.CommentMetrics{
		TotalDuration:      time.Duration(resp.TotalDuration),
		LoadDuration:       time.Duration(resp.LoadDuration),
		PromptEvalCount:    resp.PromptEvalCount,
		PromptEvalDuration: time.Duration(resp.PromptEvalDuration),
		EvalCount:          resp.EvalCount,
		EvalDuration:       time.Duration(resp.EvalDuration),
		NetworkLatency:     networkLatency,
	}

	return comment, metrics, nil
}

// buildCommentMessages loads the few-shot prompt template and injects the asana details.
func (e EncoderClient) buildCommentMessages(asana domain.Asana) ([]ChatMessage, error) {
	file, err := finalCommentPrompt.Open("prompts/final-comment.yml")
	if err != nil {
		return nil, err
	}
	defer file.Close() //nolint:errcheck

	prompt := []ChatMessage{}
	if err := yaml.NewDecoder(file).Decode(&prompt); err != nil {
		return nil, err
	}

	for i, msg := range prompt {
		if strings.Contains(msg.Content, "%[") {
			prompt[i].Content = fmt.Sprintf(msg.Content, asana.Name, asana.Content.HowToDo, asana.Content.Benefits)
		}
	}

	return prompt, nil
}

// Ensure EncoderClient implements the domain interfaces.
var (
	_ domain.MoodEncoder      = (*EncoderClient)(nil)
	_ domain.CommentGenerator = (*EncoderClient)(nil)
)

// InitOllamaClient initializes the Ollama client dependency.
type InitOllamaClient struct {
	HttpClient     *http.Client `resolve:""`
	OllamaHost     string       `config:"OLLAMA_HOST" default:"http://localhost:11434"`
	EmbedRateLimit int          `config:"EMBED_RATE_LIMIT" default:"10"`
}

// Initialize registers encoder/comment-generator interfaces.
func (i InitOllamaClient) Initialize(ctx context.Context) (context.Context, error) {
	adapter := NewEncoderClientAdapter(NewOllamaAPIClient(i.OllamaHost, i.HttpClient, i.EmbedRateLimit))
	depend.Register[domain.MoodEncoder](adapter)
	depend.Register[domain.CommentGenerator](adapter)
	return ctx, nil
}
