package usecases_test

import (
	"context"
	"log"
	"strings"
	"testing"
	"time"

	"github.com/cleitonmarx/moodasana/internal/domain"
	"github.com/cleitonmarx/moodasana/internal/usecases"
	"github.com/cleitonmarx/moodasana/internal/usecases/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func matchedAsana() domain.Asana {
	return domain.Asana{
		Name: "Child Pose (Balasana)",
		Content: domain.AsanaContent{
			HowToDo:  "1. Kneel on the mat.",
			Benefits: "Calms the nervous system",
		},
	}
}

func TestProcessPromptImpl_Execute_Success(t *testing.T) {
	asana := matchedAsana()
	match := domain.MatchResult{Matched: true, Asana: &asana, Score: 0.81, Duration: 3 * time.Millisecond}

	matcher := mocks.NewMockMatchMood(t)
	matcher.EXPECT().Execute(mock.Anything, "I feel anxious").Return(match, nil).Once()

	comments := domain.NewMockCommentGenerator(t)
	comments.EXPECT().GenerateComment(mock.Anything, "qwen2.5:0.5b-instruct", asana, "I feel anxious").
		Return("A soothing pose.", domain.CommentMetrics{EvalCount: 40, EvalDuration: time.Second}, nil).Once()

	renderer := domain.NewMockReportRenderer(t)
	renderer.EXPECT().RenderReport(mock.Anything, asana, "I feel anxious", 0.81, "A soothing pose.").
		Return(domain.Report{Filename: "Child_Pose.pdf", Path: "reports/Child_Pose.pdf", Duration: 120 * time.Millisecond}, nil).Once()

	auditCh := make(domain.MatchAuditChannel, 1)

	processor := usecases.NewProcessPromptImpl(matcher, comments, renderer, auditCh,
		"qwen2.5:0.5b-instruct", "mxbai-embed-large", log.New(&strings.Builder{}, "", 0))

	result, err := processor.Execute(context.Background(), "I feel anxious")
	assert.NoError(t, err)
	assert.True(t, result.Match.Matched)
	assert.Equal(t, "A soothing pose.", result.Comment)
	assert.Equal(t, "Child_Pose.pdf", result.Report.Filename)

	audit := <-auditCh
	assert.Equal(t, "Child Pose (Balasana)", audit.SelectedAsana)
	assert.Equal(t, "qwen2.5:0.5b-instruct", audit.ChatModel)
	assert.Equal(t, "mxbai-embed-large", audit.EmbedModel)
	assert.Equal(t, 0.81, audit.Score)
	assert.Equal(t, 40, audit.Comment.EvalCount)
	assert.Equal(t, 120*time.Millisecond, audit.ReportDuration)
	assert.Equal(t, 3*time.Millisecond, audit.MatchDuration)
}

func TestProcessPromptImpl_Execute_NoMatch(t *testing.T) {
	matcher := mocks.NewMockMatchMood(t)
	matcher.EXPECT().Execute(mock.Anything, "what is the weather").
		Return(domain.MatchResult{Matched: false, Score: 0.41, Duration: 2 * time.Millisecond}, nil).Once()

	auditCh := make(domain.MatchAuditChannel, 1)

	processor := usecases.NewProcessPromptImpl(matcher, domain.NewMockCommentGenerator(t), domain.NewMockReportRenderer(t),
		auditCh, "qwen2.5:0.5b-instruct", "mxbai-embed-large", log.New(&strings.Builder{}, "", 0))

	result, err := processor.Execute(context.Background(), "what is the weather")
	assert.NoError(t, err)
	assert.False(t, result.Match.Matched)
	assert.Empty(t, result.Comment)
	assert.Nil(t, result.Report)

	audit := <-auditCh
	assert.Equal(t, domain.NoRouteAsana, audit.SelectedAsana)
	assert.Equal(t, 0.41, audit.Score)
	assert.Equal(t, domain.CommentMetrics{}, audit.Comment)
}

func TestProcessPromptImpl_Execute_CommentFailureUsesFallback(t *testing.T) {
	asana := matchedAsana()
	match := domain.MatchResult{Matched: true, Asana: &asana, Score: 0.75}

	matcher := mocks.NewMockMatchMood(t)
	matcher.EXPECT().Execute(mock.Anything, "I feel anxious").Return(match, nil).Once()

	comments := domain.NewMockCommentGenerator(t)
	comments.EXPECT().GenerateComment(mock.Anything, "qwen2.5:0.5b-instruct", asana, "I feel anxious").
		Return("", domain.CommentMetrics{}, domain.NewProviderUnavailableErr("connection refused")).Once()

	renderer := domain.NewMockReportRenderer(t)
	renderer.EXPECT().RenderReport(mock.Anything, asana, "I feel anxious", 0.75, usecases.FallbackComment).
		Return(domain.Report{Filename: "Child_Pose.pdf"}, nil).Once()

	auditCh := make(domain.MatchAuditChannel, 1)

	processor := usecases.NewProcessPromptImpl(matcher, comments, renderer, auditCh,
		"qwen2.5:0.5b-instruct", "mxbai-embed-large", log.New(&strings.Builder{}, "", 0))

	result, err := processor.Execute(context.Background(), "I feel anxious")
	assert.NoError(t, err)
	assert.Equal(t, usecases.FallbackComment, result.Comment)

	audit := <-auditCh
	assert.Equal(t, domain.CommentMetrics{}, audit.Comment)
	assert.Equal(t, "Child Pose (Balasana)", audit.SelectedAsana)
}

func TestProcessPromptImpl_Execute_RenderFailure(t *testing.T) {
	asana := matchedAsana()
	match := domain.MatchResult{Matched: true, Asana: &asana, Score: 0.75}

	matcher := mocks.NewMockMatchMood(t)
	matcher.EXPECT().Execute(mock.Anything, "I feel anxious").Return(match, nil).Once()

	comments := domain.NewMockCommentGenerator(t)
	comments.EXPECT().GenerateComment(mock.Anything, "qwen2.5:0.5b-instruct", asana, "I feel anxious").
		Return("A soothing pose.", domain.CommentMetrics{}, nil).Once()

	renderer := domain.NewMockReportRenderer(t)
	renderer.EXPECT().RenderReport(mock.Anything, asana, "I feel anxious", 0.75, "A soothing pose.").
		Return(domain.Report{}, domain.NewValidationErr("reports directory is not writable")).Once()

	auditCh := make(domain.MatchAuditChannel, 1)

	processor := usecases.NewProcessPromptImpl(matcher, comments, renderer, auditCh,
		"qwen2.5:0.5b-instruct", "mxbai-embed-large", log.New(&strings.Builder{}, "", 0))

	_, err := processor.Execute(context.Background(), "I feel anxious")
	assert.Error(t, err)
	assert.Empty(t, auditCh)
}

func TestProcessPromptImpl_Execute_MatcherErrorPropagates(t *testing.T) {
	matcher := mocks.NewMockMatchMood(t)
	matcher.EXPECT().Execute(mock.Anything, "I feel anxious").
		Return(domain.MatchResult{}, domain.NewCacheNotReadyErr("embedding cache is not ready")).Once()

	auditCh := make(domain.MatchAuditChannel, 1)

	processor := usecases.NewProcessPromptImpl(matcher, domain.NewMockCommentGenerator(t), domain.NewMockReportRenderer(t),
		auditCh, "qwen2.5:0.5b-instruct", "mxbai-embed-large", log.New(&strings.Builder{}, "", 0))

	_, err := processor.Execute(context.Background(), "I feel anxious")

	var notReadyErr *domain.CacheNotReadyErr
	assert.ErrorAs(t, err, &notReadyErr)
	assert.Empty(t, auditCh)
}

func TestProcessPromptImpl_Execute_FullAuditQueueDropsRow(t *testing.T) {
	matcher := mocks.NewMockMatchMood(t)
	matcher.EXPECT().Execute(mock.Anything, mock.Anything).
		Return(domain.MatchResult{Matched: false, Score: 0.2}, nil).Times(2)

	auditCh := make(domain.MatchAuditChannel, 1)

	processor := usecases.NewProcessPromptImpl(matcher, domain.NewMockCommentGenerator(t), domain.NewMockReportRenderer(t),
		auditCh, "qwen2.5:0.5b-instruct", "mxbai-embed-large", log.New(&strings.Builder{}, "", 0))

	_, err := processor.Execute(context.Background(), "first")
	assert.NoError(t, err)
	// The queue is full now; the second row is dropped instead of blocking.
	_, err = processor.Execute(context.Background(), "second")
	assert.NoError(t, err)

	assert.Len(t, auditCh, 1)
	audit := <-auditCh
	assert.Equal(t, "first", audit.Prompt)
}
