package classify

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/adhikary/tutorgraph/internal/llm"
)

func TestLLMClassifier_ParsesPrediction(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"label":"low","confidence":0.87}`),
	})
	c := NewLLMClassifier(mock, DefaultLLMClassifierConfig())

	p, err := c.Classify(context.Background(), "keep it simple please", []string{"high", "low"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Label != "low" {
		t.Errorf("label: got %q, want low", p.Label)
	}
	if p.Confidence != 0.87 {
		t.Errorf("confidence: got %v, want 0.87", p.Confidence)
	}
	if mock.CallCount() != 1 {
		t.Errorf("expected exactly one provider call, got %d", mock.CallCount())
	}
}

func TestLLMClassifier_SchemaConstrainsLabels(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"label":"visual","confidence":0.5}`),
	})
	c := NewLLMClassifier(mock, DefaultLLMClassifierConfig())

	if _, err := c.Classify(context.Background(), "text", []string{"visual", "verbal"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	req := mock.Calls[0]
	if req.Schema == nil {
		t.Fatal("classification request must carry a schema")
	}
	props, ok := req.Schema.Definition["properties"].(map[string]any)
	if !ok {
		t.Fatal("schema definition missing properties")
	}
	label, ok := props["label"].(map[string]any)
	if !ok {
		t.Fatal("schema missing label property")
	}
	enum, ok := label["enum"].([]any)
	if !ok || len(enum) != 2 {
		t.Fatalf("label enum should list the 2 candidates, got %v", label["enum"])
	}
}

func TestLLMClassifier_RejectsOffListLabel(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"label":"sideways","confidence":0.9}`),
	})
	c := NewLLMClassifier(mock, DefaultLLMClassifierConfig())

	if _, err := c.Classify(context.Background(), "text", []string{"high", "low"}); err == nil {
		t.Fatal("expected error for label outside the candidate set")
	}
}

func TestLLMClassifier_ClampsConfidence(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"label":"high","confidence":1.7}`),
	})
	c := NewLLMClassifier(mock, DefaultLLMClassifierConfig())

	p, err := c.Classify(context.Background(), "text", []string{"high", "low"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Confidence != 1.0 {
		t.Fatalf("confidence must clamp to 1.0, got %v", p.Confidence)
	}
}

func TestLLMClassifier_ProviderErrorPropagates(t *testing.T) {
	mock := llm.NewMockProvider() // empty queue → provider unavailable
	c := NewLLMClassifier(mock, DefaultLLMClassifierConfig())

	if _, err := c.Classify(context.Background(), "text", []string{"high", "low"}); err == nil {
		t.Fatal("expected provider error to propagate")
	}
}

func TestLLMClassifier_EmptyLabelsIsNoSignal(t *testing.T) {
	c := NewLLMClassifier(llm.NewMockProvider(), DefaultLLMClassifierConfig())
	_, err := c.Classify(context.Background(), "text", nil)
	if err != ErrNoSignal {
		t.Fatalf("expected ErrNoSignal, got %v", err)
	}
}
