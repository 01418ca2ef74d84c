package llm

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/wikimentor/wiki-mentor/internal/core"
)

// Defaults applied when the model omits a top-level field.
const (
	defaultOverallScore = 50
	defaultSummary      = "Review completed"
)

// ModelReview is the model's verdict after field defaulting. Feedback
// items arrive without offsets; the aligner attaches them later.
type ModelReview struct {
	Feedbacks    []ModelFeedback
	OverallScore int
	Summary      string
	IsReady      bool
}

// ModelFeedback is a single model-reported issue.
type ModelFeedback struct {
	OriginalSentence string
	Feedback         string
	SuggestedText    string
	IssueType        string
	Severity         string
}

// payload mirrors the JSON contract stated in the review prompt.
// Pointers distinguish absent optional fields from zero values.
type payload struct {
	Feedbacks    []payloadFeedback `json:"feedbacks"`
	OverallScore *int              `json:"overall_score"`
	Summary      *string           `json:"summary"`
	IsReady      *bool             `json:"is_ready"`
}

type payloadFeedback struct {
	OriginalSentence string `json:"original_sentence"`
	Feedback         string `json:"feedback"`
	SuggestedText    string `json:"suggested_text"`
	IssueType        string `json:"issue_type"`
	Severity         string `json:"severity"`
}

// ParseReview decodes the model's raw output into a ModelReview.
// Missing top-level fields are defaulted (overall_score 50, summary
// "Review completed", is_ready false, feedbacks empty); a feedback item
// without its required fields is an upstream failure, as is output that
// does not parse as JSON at all.
func ParseReview(raw string) (*ModelReview, error) {
	raw = stripJSONFence(raw)

	var p payload
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return nil, fmt.Errorf("model returned invalid JSON: %w", err)
	}

	review := &ModelReview{
		Feedbacks:    make([]ModelFeedback, 0, len(p.Feedbacks)),
		OverallScore: defaultOverallScore,
		Summary:      defaultSummary,
	}
	if p.OverallScore != nil {
		review.OverallScore = *p.OverallScore
	}
	if p.Summary != nil {
		review.Summary = *p.Summary
	}
	if p.IsReady != nil {
		review.IsReady = *p.IsReady
	}

	for i, fb := range p.Feedbacks {
		if fb.OriginalSentence == "" || fb.Feedback == "" || fb.SuggestedText == "" {
			return nil, fmt.Errorf("feedback %d is missing a required field", i)
		}
		if fb.IssueType == "" {
			fb.IssueType = core.IssueStyle
		}
		if fb.Severity == "" {
			fb.Severity = core.SeverityMedium
		}
		review.Feedbacks = append(review.Feedbacks, ModelFeedback{
			OriginalSentence: fb.OriginalSentence,
			Feedback:         fb.Feedback,
			SuggestedText:    fb.SuggestedText,
			IssueType:        fb.IssueType,
			Severity:         fb.Severity,
		})
	}

	return review, nil
}

// stripJSONFence removes a wrapping ```json ... ``` fence that some
// models add despite the JSON-only response directive.
func stripJSONFence(s string) string {
	trimmed := strings.TrimSpace(s)
	if !strings.HasPrefix(trimmed, "```") {
		return s
	}
	idx := strings.Index(trimmed, "\n")
	if idx < 0 {
		return s
	}
	inner := trimmed[idx+1:]
	if lastFence := strings.LastIndex(inner, "```"); lastFence >= 0 {
		inner = inner[:lastFence]
	}
	return strings.TrimSpace(inner)
}
