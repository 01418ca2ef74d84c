// Package llm provides the generation backend, prompt rendering and
// model output parsing for content reviews.
package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// Generator produces raw model output for a prompt. The review service
// depends on this interface so tests can substitute a deterministic
// stub.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// GeminiGenerator invokes the Gemini API with a fixed model, low
// temperature and a JSON-only response directive. The API key is checked
// at call time, not at construction: a missing key fails the first
// request instead of startup.
type GeminiGenerator struct {
	apiKey      string
	model       string
	temperature float32
}

// NewGeminiGenerator creates a generator for the given model.
func NewGeminiGenerator(apiKey, model string, temperature float32) *GeminiGenerator {
	return &GeminiGenerator{
		apiKey:      strings.TrimSpace(apiKey),
		model:       strings.TrimSpace(model),
		temperature: temperature,
	}
}

// Generate sends the prompt to Gemini and returns the raw response text.
// No retries and no streaming: the call is awaited to completion and any
// failure is surfaced as a single error.
func (g *GeminiGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	if g.apiKey == "" {
		return "", errors.New("GEMINI_API_KEY is empty")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(g.apiKey))
	if err != nil {
		return "", fmt.Errorf("failed to create gemini client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(g.model)
	temperature := g.temperature
	model.GenerationConfig = genai.GenerationConfig{
		Temperature:      &temperature,
		ResponseMIMEType: "application/json",
	}

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini request failed: %w", err)
	}

	text := firstText(resp)
	if strings.TrimSpace(text) == "" {
		return "", errors.New("gemini returned an empty response")
	}
	return text, nil
}

// firstText extracts the first text part from a Gemini response.
func firstText(resp *genai.GenerateContentResponse) string {
	if resp == nil {
		return ""
	}
	for _, c := range resp.Candidates {
		if c.Content == nil {
			continue
		}
		for _, p := range c.Content.Parts {
			if t, ok := p.(genai.Text); ok {
				return string(t)
			}
		}
	}
	return ""
}
