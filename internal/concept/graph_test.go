package concept

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func testConcepts() []Concept {
	return []Concept{
		{ID: "arith", Name: "Basic Arithmetic", Type: "Topic"},
		{ID: "algebra", Name: "Basic Algebra", Type: "Topic"},
		{ID: "linear-eq", Name: "Linear Equations", Type: "Subtopic"},
		{ID: "quadratic-eq", Name: "Quadratic Equations", Type: "Subtopic"},
	}
}

func testRelations() []Relation {
	return []Relation{
		{Type: RelPrerequisiteFor, FromID: "arith", ToID: "algebra"},
		{Type: RelPrerequisiteFor, FromID: "algebra", ToID: "linear-eq"},
		{Type: RelPrerequisiteFor, FromID: "linear-eq", ToID: "quadratic-eq"},
		{Type: RelHasSubtopic, FromID: "algebra", ToID: "linear-eq"},
		{Type: RelEasierThan, FromID: "linear-eq", ToID: "quadratic-eq"},
	}
}

func mustGraph(t *testing.T, concepts []Concept, relations []Relation) *Graph {
	t.Helper()
	g, err := NewGraph(concepts, relations)
	if err != nil {
		t.Fatalf("NewGraph: %v", err)
	}
	return g
}

func TestGraph_Find_CaseInsensitiveSubstring(t *testing.T) {
	g := mustGraph(t, testConcepts(), testRelations())

	c, err := g.Find(context.Background(), "qUaDrAtIc")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c == nil || c.ID != "quadratic-eq" {
		t.Fatalf("got %+v, want quadratic-eq", c)
	}
}

func TestGraph_Find_NoMatchReturnsNil(t *testing.T) {
	g := mustGraph(t, testConcepts(), testRelations())

	c, err := g.Find(context.Background(), "NonexistentConcept")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c != nil {
		t.Fatalf("expected nil for no match, got %+v", c)
	}
}

func TestGraph_Find_DeterministicAcrossCalls(t *testing.T) {
	// "Equations" matches two concepts; the smallest ID must win every time.
	g := mustGraph(t, testConcepts(), testRelations())

	for range 10 {
		c, err := g.Find(context.Background(), "Equations")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if c == nil || c.ID != "linear-eq" {
			t.Fatalf("got %+v, want linear-eq (smallest matching ID)", c)
		}
	}
}

func TestGraph_Find_EmptyFragment(t *testing.T) {
	g := mustGraph(t, testConcepts(), testRelations())

	c, err := g.Find(context.Background(), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c != nil {
		t.Fatalf("empty fragment should not match, got %+v", c)
	}
}

func TestGraph_OneHopAccessors(t *testing.T) {
	g := mustGraph(t, testConcepts(), testRelations())
	ctx := context.Background()

	prereqs, err := g.PrerequisitesOf(ctx, "algebra")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(prereqs) != 1 || prereqs[0].ID != "arith" {
		t.Errorf("PrerequisitesOf(algebra): got %v", ids(prereqs))
	}

	next, err := g.SuccessorsOf(ctx, "algebra")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(next) != 1 || next[0].ID != "linear-eq" {
		t.Errorf("SuccessorsOf(algebra): got %v", ids(next))
	}

	subs, err := g.SubtopicsOf(ctx, "algebra")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(subs) != 1 || subs[0].ID != "linear-eq" {
		t.Errorf("SubtopicsOf(algebra): got %v", ids(subs))
	}

	easier, err := g.EasierAlternativesTo(ctx, "quadratic-eq")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(easier) != 1 || easier[0].ID != "linear-eq" {
		t.Errorf("EasierAlternativesTo(quadratic-eq): got %v", ids(easier))
	}

	// One-hop only, never transitive.
	prereqs, err = g.PrerequisitesOf(ctx, "quadratic-eq")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(prereqs) != 1 || prereqs[0].ID != "linear-eq" {
		t.Errorf("PrerequisitesOf(quadratic-eq) must be direct only: got %v", ids(prereqs))
	}
}

func TestNewGraph_DanglingRelationRejected(t *testing.T) {
	_, err := NewGraph(testConcepts(), []Relation{
		{Type: RelPrerequisiteFor, FromID: "ghost", ToID: "algebra"},
	})
	if err == nil {
		t.Fatal("expected error for dangling relation endpoint")
	}
	if !errors.Is(err, ErrInconsistentGraph) {
		t.Fatalf("expected ErrInconsistentGraph, got %v", err)
	}
}

func TestNewGraph_DuplicateIDRejected(t *testing.T) {
	concepts := append(testConcepts(), Concept{ID: "arith", Name: "Arithmetic Again"})
	_, err := NewGraph(concepts, nil)
	if err == nil {
		t.Fatal("expected error for duplicate concept ID")
	}
	if !strings.Contains(err.Error(), "duplicate") {
		t.Fatalf("error should mention the duplicate, got %v", err)
	}
}

func TestNewGraph_UnknownRelationTypeRejected(t *testing.T) {
	_, err := NewGraph(testConcepts(), []Relation{
		{Type: "DEPENDS_ON", FromID: "arith", ToID: "algebra"},
	})
	if err == nil {
		t.Fatal("expected error for unknown relation type")
	}
}

func TestSeedGraph_Builds(t *testing.T) {
	g, err := NewSeedGraph()
	if err != nil {
		t.Fatalf("seed corpus failed validation: %v", err)
	}
	if g.Len() == 0 {
		t.Fatal("seed corpus is empty")
	}
	if c := g.Get("graphs"); c == nil || c.Name != "Graphs" {
		t.Fatalf("expected graphs concept in seed corpus, got %+v", c)
	}
}

func ids(concepts []Concept) []string {
	out := make([]string, len(concepts))
	for i, c := range concepts {
		out[i] = c.ID
	}
	return out
}
