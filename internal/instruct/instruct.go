// Package instruct turns a concept analysis plus a cognitive profile into
// a personalized lesson request for the LLM provider.
package instruct

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/adhikary/tutorgraph/internal/concept"
	"github.com/adhikary/tutorgraph/internal/llm"
	"github.com/adhikary/tutorgraph/internal/logger"
	"github.com/adhikary/tutorgraph/internal/profile"
)

const systemPrompt = "You are an expert tutor for data structures and algorithms. " +
	"You receive a JSON generation input describing the target concept, its graph " +
	"neighborhood and the student's cognitive profile, and you produce one lesson " +
	"honoring every directive."

// GenerationInput is the structured payload sent to the model. The tutor
// never templates natural language from the profile; the profile travels
// as data and the model does the phrasing.
type GenerationInput struct {
	Concept       ConceptInput      `json:"concept"`
	Prerequisites []string          `json:"prerequisites,omitempty"`
	Subtopics     []string          `json:"subtopics,omitempty"`
	Related       []string          `json:"related_concepts,omitempty"`
	Easier        []string          `json:"easier_alternatives,omitempty"`
	Profile       map[string]string `json:"cognitive_profile"`
	Directives    Directives        `json:"directives"`
}

// ConceptInput carries the target concept fields relevant to generation.
type ConceptInput struct {
	Name                  string   `json:"name"`
	Description           string   `json:"description,omitempty"`
	Type                  string   `json:"type,omitempty"`
	Complexity            string   `json:"complexity,omitempty"`
	KeyConcepts           []string `json:"key_concepts,omitempty"`
	PracticalApplications []string `json:"practical_applications,omitempty"`
}

// Directives encode the profile-driven lesson shaping decisions.
type Directives struct {
	// Depth is "beginner" for low complexity tolerance, "in_depth" otherwise.
	Depth string `json:"depth"`
	// UseAnalogy asks for a real-world analogy at beginner depth.
	UseAnalogy bool `json:"use_analogy"`
	// MentionApplications includes the concept's practical applications.
	MentionApplications bool `json:"mention_applications"`
	// IncludeDiagram asks for a mermaid flowchart over the subtopics.
	IncludeDiagram bool `json:"include_diagram"`
	// Closing is "challenge" for active engagement, "summary" otherwise.
	Closing string `json:"closing"`
}

// Lesson is the generated output.
type Lesson struct {
	ConceptID string
	Content   string
	Model     string
	Usage     llm.Usage
}

// Service generates lessons from concept analyses.
type Service struct {
	provider llm.Provider
	log      *logger.Logger
}

func NewService(provider llm.Provider, log *logger.Logger) *Service {
	return &Service{provider: provider, log: log}
}

// BuildInput composes the generation payload from an analysis and a
// profile. Exported so callers can inspect or log the exact input.
func BuildInput(a *concept.Analysis, p profile.Profile) GenerationInput {
	in := GenerationInput{
		Concept: ConceptInput{
			Name:                  a.Target.Name,
			Description:           a.Target.Description,
			Type:                  a.Target.Type,
			Complexity:            a.Target.Complexity,
			KeyConcepts:           a.Target.KeyConcepts,
			PracticalApplications: a.Target.PracticalApplications,
		},
		Prerequisites: conceptNames(a.Prerequisites),
		Subtopics:     conceptNames(a.Subtopics),
		Related:       conceptNames(a.RelatedConcepts),
		Easier:        conceptNames(a.EasierAlternatives),
		Profile:       make(map[string]string, len(p)),
	}
	for dim, value := range p {
		in.Profile[string(dim)] = value
	}

	lowTolerance := p[profile.ComplexityTolerance] == "low"
	in.Directives = Directives{
		Depth:               depthFor(lowTolerance),
		UseAnalogy:          lowTolerance,
		MentionApplications: !lowTolerance && len(a.Target.PracticalApplications) > 0,
		IncludeDiagram:      p[profile.InputPreference] == "visual" && len(a.Subtopics) > 0,
		Closing:             closingFor(p[profile.EngagementStyle] == "active"),
	}
	return in
}

// Generate builds the input for the analysis and profile and asks the
// provider for a lesson.
func (s *Service) Generate(ctx context.Context, a *concept.Analysis, p profile.Profile) (*Lesson, error) {
	if a == nil {
		return nil, fmt.Errorf("instruct: nil analysis")
	}
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("instruct: %w", err)
	}

	input := BuildInput(a, p)
	payload, err := json.Marshal(input)
	if err != nil {
		return nil, fmt.Errorf("instruct: marshal input: %w", err)
	}

	ctx = llm.WithPurpose(ctx, "instruction-gen")
	resp, err := s.provider.Generate(ctx, llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: string(payload)},
		},
		MaxTokens:   1024,
		Temperature: 0.7,
	})
	if err != nil {
		return nil, fmt.Errorf("instruct: generate lesson for %q: %w", a.Target.ID, err)
	}

	s.log.Debug("generated lesson",
		"concept", a.Target.ID,
		"input_tokens", resp.Usage.InputTokens,
		"output_tokens", resp.Usage.OutputTokens)

	return &Lesson{
		ConceptID: a.Target.ID,
		Content:   string(resp.Content),
		Model:     resp.Model,
		Usage:     resp.Usage,
	}, nil
}

func conceptNames(cs []concept.Concept) []string {
	if len(cs) == 0 {
		return nil
	}
	out := make([]string, len(cs))
	for i, c := range cs {
		out[i] = c.Name
	}
	return out
}

func depthFor(lowTolerance bool) string {
	if lowTolerance {
		return "beginner"
	}
	return "in_depth"
}

func closingFor(active bool) string {
	if active {
		return "challenge"
	}
	return "summary"
}
