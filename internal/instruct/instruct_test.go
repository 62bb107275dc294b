package instruct

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/adhikary/tutorgraph/internal/concept"
	"github.com/adhikary/tutorgraph/internal/llm"
	"github.com/adhikary/tutorgraph/internal/logger"
	"github.com/adhikary/tutorgraph/internal/profile"
)

func testAnalysis() *concept.Analysis {
	return &concept.Analysis{
		Target: concept.Concept{
			ID:                    "binary-trees",
			Name:                  "Binary Trees",
			Type:                  "Topic",
			Complexity:            "intermediate",
			PracticalApplications: []string{"databases", "file systems"},
		},
		Prerequisites: []concept.Concept{{ID: "linked-lists", Name: "Linked Lists"}},
		Subtopics:     []concept.Concept{{ID: "tree-traversal", Name: "Tree Traversal"}},
	}
}

func TestBuildInput_LowToleranceGetsAnalogy(t *testing.T) {
	p := profile.Default()
	p[profile.ComplexityTolerance] = "low"

	in := BuildInput(testAnalysis(), p)

	if in.Directives.Depth != "beginner" {
		t.Fatalf("expected beginner depth, got %q", in.Directives.Depth)
	}
	if !in.Directives.UseAnalogy {
		t.Fatal("expected analogy directive for low tolerance")
	}
	if in.Directives.MentionApplications {
		t.Fatal("applications should be skipped at beginner depth")
	}
}

func TestBuildInput_HighToleranceMentionsApplications(t *testing.T) {
	p := profile.Default() // complexity_tolerance defaults to high

	in := BuildInput(testAnalysis(), p)

	if in.Directives.Depth != "in_depth" {
		t.Fatalf("expected in_depth, got %q", in.Directives.Depth)
	}
	if !in.Directives.MentionApplications {
		t.Fatal("expected applications directive for high tolerance")
	}
}

func TestBuildInput_VisualWithSubtopicsGetsDiagram(t *testing.T) {
	p := profile.Default()
	p[profile.InputPreference] = "visual"

	in := BuildInput(testAnalysis(), p)
	if !in.Directives.IncludeDiagram {
		t.Fatal("expected diagram directive")
	}

	// No subtopics, no diagram even for visual learners.
	a := testAnalysis()
	a.Subtopics = nil
	in = BuildInput(a, p)
	if in.Directives.IncludeDiagram {
		t.Fatal("diagram directive without subtopics")
	}
}

func TestBuildInput_ClosingFollowsEngagementStyle(t *testing.T) {
	p := profile.Default()
	in := BuildInput(testAnalysis(), p)
	if in.Directives.Closing != "summary" {
		t.Fatalf("expected summary closing, got %q", in.Directives.Closing)
	}

	p[profile.EngagementStyle] = "active"
	in = BuildInput(testAnalysis(), p)
	if in.Directives.Closing != "challenge" {
		t.Fatalf("expected challenge closing, got %q", in.Directives.Closing)
	}
}

func TestGenerate_SendsStructuredPayload(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{
			Content: json.RawMessage(`A gentle introduction to binary trees.`),
			Usage:   llm.Usage{InputTokens: 200, OutputTokens: 150},
		},
	)
	svc := NewService(mock, logger.Nop())

	lesson, err := svc.Generate(context.Background(), testAnalysis(), profile.Default())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if lesson.ConceptID != "binary-trees" {
		t.Fatalf("unexpected concept id: %q", lesson.ConceptID)
	}
	if lesson.Content == "" {
		t.Fatal("expected lesson content")
	}

	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 provider call, got %d", mock.CallCount())
	}
	req := mock.Calls[0]
	if len(req.Messages) != 1 {
		t.Fatalf("expected 1 message, got %d", len(req.Messages))
	}

	// The user message must be valid JSON carrying the full profile.
	var in GenerationInput
	if err := json.Unmarshal([]byte(req.Messages[0].Content), &in); err != nil {
		t.Fatalf("payload is not JSON: %v", err)
	}
	if in.Concept.Name != "Binary Trees" {
		t.Fatalf("unexpected concept in payload: %q", in.Concept.Name)
	}
	if len(in.Profile) != len(profile.Dimensions()) {
		t.Fatalf("expected %d profile entries, got %d", len(profile.Dimensions()), len(in.Profile))
	}
}

func TestGenerate_RejectsInvalidProfile(t *testing.T) {
	mock := llm.NewMockProvider()
	svc := NewService(mock, logger.Nop())

	p := profile.Default()
	p[profile.ComplexityTolerance] = "medium"

	if _, err := svc.Generate(context.Background(), testAnalysis(), p); err == nil {
		t.Fatal("expected error for invalid profile")
	}
	if mock.CallCount() != 0 {
		t.Fatal("provider must not be called with an invalid profile")
	}
}
