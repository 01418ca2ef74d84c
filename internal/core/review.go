// Package core defines the domain types shared across the application.
package core

import "context"

// Issue type values reported by the model.
const (
	IssueNPOV             = "npov"
	IssueVerifiability    = "verifiability"
	IssueOriginalResearch = "original_research"
	IssueStyle            = "style"
)

// Severity values reported by the model.
const (
	SeverityHigh   = "high"
	SeverityMedium = "medium"
	SeverityLow    = "low"
)

// ContentSubmission is a single article submission to review.
type ContentSubmission struct {
	Content string `json:"content"`
	Title   string `json:"title,omitempty"`
}

// Feedback is one model-reported issue resolved to a position in the
// submitted content. StartIndex/EndIndex are byte offsets into Content;
// they are best-effort and may over- or underrun the true sentence
// boundary when the model paraphrases.
type Feedback struct {
	OriginalSentence string `json:"original_sentence"`
	Feedback         string `json:"feedback"`
	SuggestedText    string `json:"suggested_text"`
	IssueType        string `json:"issue_type"`
	Severity         string `json:"severity"`
	StartIndex       int    `json:"start_index"`
	EndIndex         int    `json:"end_index"`
}

// ReviewResponse is the full verdict for one submission. It carries no
// state across requests.
type ReviewResponse struct {
	Feedbacks    []Feedback `json:"feedbacks"`
	OverallScore int        `json:"overall_score"`
	Summary      string     `json:"summary"`
	IsReady      bool       `json:"is_ready"`
}

// Reviewer produces a ReviewResponse for a submission. The HTTP handler
// depends on this interface so the LLM-backed implementation can be
// replaced with a stub in tests.
type Reviewer interface {
	Review(ctx context.Context, sub ContentSubmission) (*ReviewResponse, error)
}
