package concept

import (
	"context"
	"sort"
	"strings"
)

// Graph is an in-memory Store. It is immutable after construction and
// therefore safe for unlimited concurrent reads; refreshing the corpus
// means building a new Graph and swapping the handle.
type Graph struct {
	concepts []Concept
	byID     map[string]*Concept

	// out and in hold adjacency per relation type. Duplicate relation
	// instances are kept as supplied; readers deduplicate where required.
	out map[RelationType]map[string][]string
	in  map[RelationType]map[string][]string
}

// NewGraph builds an in-memory graph from externally supplied data.
// The data is validated first; relations referencing unknown concept IDs
// are a data-integrity fault (ErrInconsistentGraph), not a soft skip.
func NewGraph(concepts []Concept, relations []Relation) (*Graph, error) {
	if err := validateConcepts(concepts, relations); err != nil {
		return nil, err
	}

	g := &Graph{
		concepts: make([]Concept, len(concepts)),
		byID:     make(map[string]*Concept, len(concepts)),
		out:      make(map[RelationType]map[string][]string),
		in:       make(map[RelationType]map[string][]string),
	}
	copy(g.concepts, concepts)
	for i := range g.concepts {
		g.byID[g.concepts[i].ID] = &g.concepts[i]
	}

	for _, rt := range AllRelationTypes() {
		g.out[rt] = make(map[string][]string)
		g.in[rt] = make(map[string][]string)
	}
	for _, r := range relations {
		g.out[r.Type][r.FromID] = append(g.out[r.Type][r.FromID], r.ToID)
		g.in[r.Type][r.ToID] = append(g.in[r.Type][r.ToID], r.FromID)
	}

	return g, nil
}

// Find matches nameFragment case-insensitively as a substring. Among
// multiple matches the concept with the smallest ID wins.
func (g *Graph) Find(_ context.Context, nameFragment string) (*Concept, error) {
	frag := strings.ToLower(nameFragment)
	if frag == "" {
		return nil, nil
	}

	var ids []string
	for i := range g.concepts {
		if strings.Contains(strings.ToLower(g.concepts[i].Name), frag) {
			ids = append(ids, g.concepts[i].ID)
		}
	}
	if len(ids) == 0 {
		return nil, nil
	}
	sort.Strings(ids)

	c := *g.byID[ids[0]]
	return &c, nil
}

// Get returns the concept with the given ID, or nil if absent.
func (g *Graph) Get(id string) *Concept {
	c, ok := g.byID[id]
	if !ok {
		return nil
	}
	out := *c
	return &out
}

// Len returns the number of concepts in the graph.
func (g *Graph) Len() int {
	return len(g.concepts)
}

func (g *Graph) PrerequisitesOf(_ context.Context, id string) ([]Concept, error) {
	return g.resolve(g.in[RelPrerequisiteFor][id]), nil
}

func (g *Graph) SuccessorsOf(_ context.Context, id string) ([]Concept, error) {
	return g.resolve(g.out[RelPrerequisiteFor][id]), nil
}

func (g *Graph) SubtopicsOf(_ context.Context, id string) ([]Concept, error) {
	return g.resolve(g.out[RelHasSubtopic][id]), nil
}

func (g *Graph) RelatedTo(_ context.Context, id string) ([]Concept, error) {
	return g.resolve(g.out[RelUsedWith][id]), nil
}

func (g *Graph) EasierAlternativesTo(_ context.Context, id string) ([]Concept, error) {
	return g.resolve(g.in[RelEasierThan][id]), nil
}

// resolve maps neighbor IDs to concept values in edge order. IDs were
// checked at construction, so a missing entry cannot happen here.
func (g *Graph) resolve(ids []string) []Concept {
	result := make([]Concept, 0, len(ids))
	for _, id := range ids {
		result = append(result, *g.byID[id])
	}
	return result
}
