package usecases

import (
	"context"
	"log"
	"time"

	"github.com/cleitonmarx/moodasana/internal/domain"
	"github.com/cleitonmarx/moodasana/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
)

// FallbackComment is returned when the chat provider cannot produce a final
// comment. Comment failure never fails the request.
const FallbackComment = "Unable to generate final comment at this time."

// ProcessPromptResult is the full outcome of one mood recommendation request.
type ProcessPromptResult struct {
	Match         domain.MatchResult
	Comment       string
	Report        *domain.Report
	TotalDuration time.Duration
}

// ProcessPrompt defines the interface for the end-to-end recommendation flow:
// match, comment, report, audit.
type ProcessPrompt interface {
	Execute(ctx context.Context, mood string) (ProcessPromptResult, error)
}

// ProcessPromptImpl is the implementation of the ProcessPrompt use case.
type ProcessPromptImpl struct {
	matcher    MatchMood
	comments   domain.CommentGenerator
	renderer   domain.ReportRenderer
	auditCh    domain.MatchAuditChannel
	chatModel  string
	embedModel string
	logger     *log.Logger
}

// NewProcessPromptImpl creates a new instance of ProcessPromptImpl.
func NewProcessPromptImpl(
	matcher MatchMood,
	comments domain.CommentGenerator,
	renderer domain.ReportRenderer,
	auditCh domain.MatchAuditChannel,
	chatModel string,
	embedModel string,
	logger *log.Logger,
) ProcessPromptImpl {
	return ProcessPromptImpl{
		matcher:    matcher,
		comments:   comments,
		renderer:   renderer,
		auditCh:    auditCh,
		chatModel:  chatModel,
		embedModel: embedModel,
		logger:     logger,
	}
}

// Execute runs the recommendation flow for one mood prompt. Every terminal
// outcome, including no-match, leaves one audit row behind.
func (p ProcessPromptImpl) Execute(ctx context.Context, mood string) (ProcessPromptResult, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	start := time.Now()

	match, err := p.matcher.Execute(spanCtx, mood)
	if telemetry.RecordErrorAndStatus(span, err) {
		return ProcessPromptResult{}, err
	}

	if !match.Matched {
		p.queueAudit(domain.MatchAudit{
			Timestamp:     time.Now(),
			ChatModel:     p.chatModel,
			EmbedModel:    p.embedModel,
			Prompt:        mood,
			Score:         match.Score,
			SelectedAsana: domain.NoRouteAsana,
			MatchDuration: match.Duration,
		})
		return ProcessPromptResult{Match: match, TotalDuration: time.Since(start)}, nil
	}

	comment, commentMetrics, err := p.comments.GenerateComment(spanCtx, p.chatModel, *match.Asana, mood)
	if err != nil {
		p.logger.Printf("Final comment generation failed, using fallback: %v", err)
		comment = FallbackComment
		commentMetrics = domain.CommentMetrics{}
	} else {
		RecordLLMTokensUsed(spanCtx, commentMetrics.PromptEvalCount, commentMetrics.EvalCount)
	}

	report, err := p.renderer.RenderReport(spanCtx, *match.Asana, mood, match.Score, comment)
	if telemetry.RecordErrorAndStatus(span, err) {
		return ProcessPromptResult{}, err
	}

	totalDuration := time.Since(start)

	p.queueAudit(domain.MatchAudit{
		Timestamp:      time.Now(),
		ChatModel:      p.chatModel,
		EmbedModel:     p.embedModel,
		Prompt:         mood,
		Score:          match.Score,
		SelectedAsana:  match.Asana.Name,
		Comment:        commentMetrics,
		ReportDuration: report.Duration,
		MatchDuration:  match.Duration,
		TotalDuration:  totalDuration,
	})

	return ProcessPromptResult{
		Match:         match,
		Comment:       comment,
		Report:        &report,
		TotalDuration: totalDuration,
	}, nil
}

// queueAudit hands the row to the background writer without blocking the
// request path. A full queue drops the row.
func (p ProcessPromptImpl) queueAudit(audit domain.MatchAudit) {
	if p.auditCh == nil {
		return
	}
	select {
	case p.auditCh <- audit:
	default:
		p.logger.Printf("Audit queue full, dropping row for prompt: %s", audit.Prompt)
	}
}

// InitProcessPrompt initializes the ProcessPrompt use case and registers it in the dependency container.
type InitProcessPrompt struct {
	Matcher    MatchMood               `resolve:""`
	Comments   domain.CommentGenerator `resolve:""`
	Renderer   domain.ReportRenderer   `resolve:""`
	Logger     *log.Logger             `resolve:""`
	ChatModel  string                  `config:"LLM_MODEL" default:"qwen2.5:0.5b-instruct"`
	EmbedModel string                  `config:"EMBED_MODEL" default:"mxbai-embed-large"`
}

// Initialize registers the ProcessPromptImpl use case in the dependency container.
func (i InitProcessPrompt) Initialize(ctx context.Context) (context.Context, error) {
	auditCh, _ := depend.Resolve[domain.MatchAuditChannel]()
	depend.Register[ProcessPrompt](NewProcessPromptImpl(
		i.Matcher,
		i.Comments,
		i.Renderer,
		auditCh,
		i.ChatModel,
		i.EmbedModel,
		i.Logger,
	))
	return ctx, nil
}
