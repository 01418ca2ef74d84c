package review

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/wikimentor/wiki-mentor/internal/core"
	"github.com/wikimentor/wiki-mentor/internal/llm"
)

// untitledFallback labels submissions that arrive without a title.
const untitledFallback = "Untitled"

// Service reviews content submissions against Wikipedia's policies by
// prompting the generation backend and mapping its verdict back onto
// the submitted text. It holds no per-request state: every call is an
// independent computation.
type Service struct {
	gen     llm.Generator
	prompts *llm.PromptManager
	logger  *slog.Logger
}

// NewService creates a review service with its generation backend,
// prompt manager and logger.
func NewService(gen llm.Generator, prompts *llm.PromptManager, logger *slog.Logger) *Service {
	if gen == nil {
		panic("generator cannot be nil")
	}
	if prompts == nil {
		panic("prompt manager cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}
	return &Service{gen: gen, prompts: prompts, logger: logger}
}

// Review runs one full review cycle: render the policy prompt, invoke
// the model, parse its JSON verdict and resolve each reported issue to
// offsets in the submitted content. Generation and parse failures are
// returned as errors; a single issue that cannot be located never fails
// the request.
func (s *Service) Review(ctx context.Context, sub core.ContentSubmission) (*core.ReviewResponse, error) {
	title := sub.Title
	if title == "" {
		title = untitledFallback
	}

	prompt, err := s.prompts.Render(llm.ContentReviewPrompt, llm.ReviewPromptData{
		Title:   title,
		Content: sub.Content,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to render review prompt: %w", err)
	}

	s.logger.Debug("requesting content review", "title", title, "content_bytes", len(sub.Content))

	raw, err := s.gen.Generate(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("generation request failed: %w", err)
	}

	verdict, err := llm.ParseReview(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to parse model output: %w", err)
	}

	spans := SplitSentences(sub.Content)

	feedbacks := make([]core.Feedback, 0, len(verdict.Feedbacks))
	for _, fb := range verdict.Feedbacks {
		start, end := AlignSentence(sub.Content, spans, fb.OriginalSentence)
		feedbacks = append(feedbacks, core.Feedback{
			OriginalSentence: fb.OriginalSentence,
			Feedback:         fb.Feedback,
			SuggestedText:    fb.SuggestedText,
			IssueType:        fb.IssueType,
			Severity:         fb.Severity,
			StartIndex:       start,
			EndIndex:         end,
		})
	}

	s.logger.Info("review completed",
		"title", title,
		"feedback_count", len(feedbacks),
		"overall_score", verdict.OverallScore,
		"is_ready", verdict.IsReady,
	)

	return &core.ReviewResponse{
		Feedbacks:    feedbacks,
		OverallScore: verdict.OverallScore,
		Summary:      verdict.Summary,
		IsReady:      verdict.IsReady,
	}, nil
}
