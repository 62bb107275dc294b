package classify

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/adhikary/tutorgraph/internal/llm"
)

// LLMClassifierConfig holds generation settings for the LLM classifier.
type LLMClassifierConfig struct {
	MaxTokens   int
	Temperature float64
}

// DefaultLLMClassifierConfig returns sensible defaults. Temperature stays
// at zero: classification wants the modal answer, not variety.
func DefaultLLMClassifierConfig() LLMClassifierConfig {
	return LLMClassifierConfig{MaxTokens: 128}
}

// LLMClassifier performs zero-shot classification through an llm.Provider
// with a schema-constrained response.
type LLMClassifier struct {
	provider llm.Provider
	cfg      LLMClassifierConfig
}

// NewLLMClassifier creates a classifier over the given provider.
func NewLLMClassifier(provider llm.Provider, cfg LLMClassifierConfig) *LLMClassifier {
	return &LLMClassifier{provider: provider, cfg: cfg}
}

const classifySystemPrompt = "You are a zero-shot text classifier. " +
	"Given a student's message and a list of candidate labels, pick the single label " +
	"that best describes the message and report how confident you are."

// classifyOutput is the raw LLM response shape.
type classifyOutput struct {
	Label      string  `json:"label"`
	Confidence float64 `json:"confidence"`
}

func classifySchema(labels []string) *llm.Schema {
	opts := make([]any, len(labels))
	for i, l := range labels {
		opts[i] = l
	}
	return &llm.Schema{
		Name:        "zero-shot-label",
		Description: "Best matching label for a piece of text, with confidence.",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"label": map[string]any{
					"type": "string",
					"enum": opts,
				},
				"confidence": map[string]any{
					"type":    "number",
					"minimum": 0,
					"maximum": 1,
				},
			},
			"required":             []any{"label", "confidence"},
			"additionalProperties": false,
		},
	}
}

func (c *LLMClassifier) Classify(ctx context.Context, text string, labels []string) (Prediction, error) {
	if len(labels) == 0 {
		return Prediction{}, ErrNoSignal
	}

	ctx = llm.WithPurpose(ctx, "cognitive-classify")

	req := llm.Request{
		System: classifySystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: fmt.Sprintf("Labels: %s\n\nMessage: %s", strings.Join(labels, ", "), text)},
		},
		Schema:      classifySchema(labels),
		MaxTokens:   c.cfg.MaxTokens,
		Temperature: c.cfg.Temperature,
	}

	resp, err := c.provider.Generate(ctx, req)
	if err != nil {
		return Prediction{}, fmt.Errorf("llm classification: %w", err)
	}

	var out classifyOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return Prediction{}, fmt.Errorf("parse classification response: %w", err)
	}

	// The schema constrains the label, but a provider without native enum
	// support can still drift; reject anything outside the candidate set.
	valid := false
	for _, l := range labels {
		if out.Label == l {
			valid = true
			break
		}
	}
	if !valid {
		return Prediction{}, fmt.Errorf("label %q not among candidates", out.Label)
	}

	if out.Confidence < 0 {
		out.Confidence = 0
	}
	if out.Confidence > 1 {
		out.Confidence = 1
	}
	return Prediction{Label: out.Label, Confidence: out.Confidence}, nil
}
