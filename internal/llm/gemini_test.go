package llm

import (
	"testing"
)

func TestGeminiModelMapping(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"gemini-flash", "gemini-2.0-flash"},
		{"gemini-pro", "gemini-2.0-pro"},
		{"gemini-2.0-flash", "gemini-2.0-flash"}, // Pass-through
	}
	for _, tt := range tests {
		got := resolveModel(tt.input, geminiModels)
		if got != tt.expected {
			t.Errorf("resolveModel(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestBuildGeminiSchema(t *testing.T) {
	def := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"label":      map[string]any{"type": "string", "enum": []any{"visual", "verbal"}},
			"confidence": map[string]any{"type": "number"},
			"reasons": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
		},
		"required": []any{"label", "confidence"},
	}

	schema := buildGeminiSchema(def)

	if schema.Type != "OBJECT" {
		t.Fatalf("expected OBJECT type, got %s", schema.Type)
	}
	if len(schema.Properties) != 3 {
		t.Fatalf("expected 3 properties, got %d", len(schema.Properties))
	}
	if schema.Properties["label"].Type != "STRING" {
		t.Fatalf("expected STRING for label, got %s", schema.Properties["label"].Type)
	}
	if len(schema.Properties["label"].Enum) != 2 {
		t.Fatalf("expected 2 enum values, got %d", len(schema.Properties["label"].Enum))
	}
	if schema.Properties["confidence"].Type != "NUMBER" {
		t.Fatalf("expected NUMBER for confidence, got %s", schema.Properties["confidence"].Type)
	}
	if schema.Properties["reasons"].Type != "ARRAY" {
		t.Fatalf("expected ARRAY for reasons, got %s", schema.Properties["reasons"].Type)
	}
	if schema.Properties["reasons"].Items.Type != "STRING" {
		t.Fatalf("expected STRING for reasons items, got %s", schema.Properties["reasons"].Items.Type)
	}
	if len(schema.Required) != 2 {
		t.Fatalf("expected 2 required fields, got %d", len(schema.Required))
	}
}
