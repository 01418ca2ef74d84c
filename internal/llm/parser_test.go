package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseReview_FullPayload(t *testing.T) {
	raw := `{
		"feedbacks": [
			{
				"original_sentence": "It is the best city in the world.",
				"feedback": "Promotional language violates NPOV.",
				"suggested_text": "It is a large city.",
				"issue_type": "npov",
				"severity": "high"
			}
		],
		"overall_score": 72,
		"summary": "Some promotional language.",
		"is_ready": false
	}`

	review, err := ParseReview(raw)
	require.NoError(t, err)

	assert.Equal(t, 72, review.OverallScore)
	assert.Equal(t, "Some promotional language.", review.Summary)
	assert.False(t, review.IsReady)
	require.Len(t, review.Feedbacks, 1)
	fb := review.Feedbacks[0]
	assert.Equal(t, "It is the best city in the world.", fb.OriginalSentence)
	assert.Equal(t, "Promotional language violates NPOV.", fb.Feedback)
	assert.Equal(t, "It is a large city.", fb.SuggestedText)
	assert.Equal(t, "npov", fb.IssueType)
	assert.Equal(t, "high", fb.Severity)
}

func TestParseReview_TopLevelDefaults(t *testing.T) {
	review, err := ParseReview(`{}`)
	require.NoError(t, err)

	assert.Equal(t, 50, review.OverallScore)
	assert.Equal(t, "Review completed", review.Summary)
	assert.False(t, review.IsReady)
	assert.NotNil(t, review.Feedbacks)
	assert.Empty(t, review.Feedbacks)
}

func TestParseReview_PresentEmptySummaryIsKept(t *testing.T) {
	review, err := ParseReview(`{"summary": ""}`)
	require.NoError(t, err)

	// Present-but-empty is not the same as absent: no default applies.
	assert.Equal(t, "", review.Summary)
}

func TestParseReview_FeedbackFieldDefaults(t *testing.T) {
	raw := `{
		"feedbacks": [
			{
				"original_sentence": "Some claim without a source.",
				"feedback": "Needs a citation.",
				"suggested_text": "Some claim without a source.[citation needed]"
			}
		]
	}`

	review, err := ParseReview(raw)
	require.NoError(t, err)

	require.Len(t, review.Feedbacks, 1)
	assert.Equal(t, "style", review.Feedbacks[0].IssueType)
	assert.Equal(t, "medium", review.Feedbacks[0].Severity)
}

func TestParseReview_StripsCodeFence(t *testing.T) {
	raw := "```json\n{\"overall_score\": 90, \"summary\": \"ok\", \"is_ready\": true}\n```"

	review, err := ParseReview(raw)
	require.NoError(t, err)

	assert.Equal(t, 90, review.OverallScore)
	assert.True(t, review.IsReady)
}

func TestParseReview_InvalidJSON(t *testing.T) {
	_, err := ParseReview("the model decided to chat instead")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid JSON")
}

func TestParseReview_MissingRequiredFeedbackField(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{
			name: "missing original_sentence",
			raw:  `{"feedbacks": [{"feedback": "f", "suggested_text": "s"}]}`,
		},
		{
			name: "missing feedback",
			raw:  `{"feedbacks": [{"original_sentence": "o", "suggested_text": "s"}]}`,
		},
		{
			name: "missing suggested_text",
			raw:  `{"feedbacks": [{"original_sentence": "o", "feedback": "f"}]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseReview(tt.raw)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "missing a required field")
		})
	}
}

func TestStripJSONFence(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"no fence", `{"a": 1}`, `{"a": 1}`},
		{"json fence", "```json\n{\"a\": 1}\n```", `{"a": 1}`},
		{"bare fence", "```\n{\"a\": 1}\n```", `{"a": 1}`},
		{"fence with surrounding whitespace", "  ```json\n{\"a\": 1}\n```  ", `{"a": 1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, stripJSONFence(tt.in))
		})
	}
}
