package concept

import (
	"context"
	"fmt"

	"github.com/adhikary/tutorgraph/internal/logger"
)

// LearningContext pairs a concept with its direct prerequisites.
type LearningContext struct {
	Current       Concept
	Prerequisites []Concept
}

// Analysis is the four-relation neighborhood snapshot of a target concept.
// Each collection is deduplicated by concept ID in first-seen order.
type Analysis struct {
	Target             Concept
	Prerequisites      []Concept
	Subtopics          []Concept
	RelatedConcepts    []Concept
	EasierAlternatives []Concept
}

// Engine runs read-only traversals composed from a Store's one-hop
// accessors. "Concept not found" is a nil/empty result at every operation,
// never an error; errors are reserved for store faults.
type Engine struct {
	store Store
	log   *logger.Logger
}

// NewEngine creates a query engine over the given store.
func NewEngine(store Store, log *logger.Logger) *Engine {
	return &Engine{store: store, log: log}
}

// LearningContext returns the matched concept and its direct prerequisites,
// or nil when no concept matches name.
func (e *Engine) LearningContext(ctx context.Context, name string) (*LearningContext, error) {
	target, err := e.store.Find(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("find %q: %w", name, err)
	}
	if target == nil {
		return nil, nil
	}

	prereqs, err := e.store.PrerequisitesOf(ctx, target.ID)
	if err != nil {
		return nil, fmt.Errorf("prerequisites of %q: %w", target.ID, err)
	}

	return &LearningContext{
		Current:       *target,
		Prerequisites: dedupByID(prereqs),
	}, nil
}

// RecommendNext returns the direct successors of the matched concept along
// PREREQUISITE_FOR. Both "no match" and "no successors" collapse to an
// empty slice.
func (e *Engine) RecommendNext(ctx context.Context, name string) ([]Concept, error) {
	target, err := e.store.Find(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("find %q: %w", name, err)
	}
	if target == nil {
		return nil, nil
	}

	next, err := e.store.SuccessorsOf(ctx, target.ID)
	if err != nil {
		return nil, fmt.Errorf("successors of %q: %w", target.ID, err)
	}

	// A concept never recommends itself, even on degenerate self-edges.
	next = dedupByID(next)
	out := next[:0]
	for _, c := range next {
		if c.ID != target.ID {
			out = append(out, c)
		}
	}
	return out, nil
}

// LearningPath returns every transitive ancestor of the matched concept
// over PREREQUISITE_FOR edges, deduplicated by ID. The traversal is a
// breadth-first walk of the reversed prerequisite graph with a visited
// set, so diamonds and cyclic data still terminate with each ancestor
// reported once. The target itself is excluded.
func (e *Engine) LearningPath(ctx context.Context, name string) ([]Concept, error) {
	target, err := e.store.Find(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("find %q: %w", name, err)
	}
	if target == nil {
		return nil, nil
	}

	visited := map[string]bool{target.ID: true}
	queue := []string{target.ID}
	var path []Concept

	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]

		prereqs, err := e.store.PrerequisitesOf(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("prerequisites of %q: %w", id, err)
		}
		for _, p := range prereqs {
			if visited[p.ID] {
				continue
			}
			visited[p.ID] = true
			path = append(path, p)
			queue = append(queue, p.ID)
		}
	}

	if e.log != nil {
		e.log.Debug("learning path computed", "target", target.ID, "ancestors", len(path))
	}
	return path, nil
}

// Analyze returns the full multi-relation analysis for the matched concept,
// or nil when no concept matches name.
func (e *Engine) Analyze(ctx context.Context, name string) (*Analysis, error) {
	target, err := e.store.Find(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("find %q: %w", name, err)
	}
	if target == nil {
		return nil, nil
	}

	prereqs, err := e.store.PrerequisitesOf(ctx, target.ID)
	if err != nil {
		return nil, fmt.Errorf("prerequisites of %q: %w", target.ID, err)
	}
	subs, err := e.store.SubtopicsOf(ctx, target.ID)
	if err != nil {
		return nil, fmt.Errorf("subtopics of %q: %w", target.ID, err)
	}
	related, err := e.store.RelatedTo(ctx, target.ID)
	if err != nil {
		return nil, fmt.Errorf("related to %q: %w", target.ID, err)
	}
	easier, err := e.store.EasierAlternativesTo(ctx, target.ID)
	if err != nil {
		return nil, fmt.Errorf("easier alternatives to %q: %w", target.ID, err)
	}

	return &Analysis{
		Target:             *target,
		Prerequisites:      dedupByID(prereqs),
		Subtopics:          dedupByID(subs),
		RelatedConcepts:    dedupByID(related),
		EasierAlternatives: dedupByID(easier),
	}, nil
}

// dedupByID collapses duplicate physical records for the same logical
// concept, preserving first-seen order. The seen set is function-scoped
// and never shared across calls.
func dedupByID(concepts []Concept) []Concept {
	seen := make(map[string]bool, len(concepts))
	out := make([]Concept, 0, len(concepts))
	for _, c := range concepts {
		if seen[c.ID] {
			continue
		}
		seen[c.ID] = true
		out = append(out, c)
	}
	return out
}
