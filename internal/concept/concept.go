package concept

import "context"

// RelationType names a directed edge kind in the knowledge graph.
type RelationType string

const (
	// RelPrerequisiteFor A→B means A must be learned before B.
	RelPrerequisiteFor RelationType = "PREREQUISITE_FOR"
	// RelHasSubtopic A→B means B is a subtopic of A.
	RelHasSubtopic RelationType = "HAS_SUBTOPIC"
	// RelUsedWith A→B means A and B commonly appear together.
	RelUsedWith RelationType = "USED_WITH"
	// RelEasierThan A→B means A is a gentler entry point than B.
	RelEasierThan RelationType = "EASIER_THAN"
)

// AllRelationTypes returns the relation kinds in declaration order.
func AllRelationTypes() []RelationType {
	return []RelationType{RelPrerequisiteFor, RelHasSubtopic, RelUsedWith, RelEasierThan}
}

// Concept is a single teachable unit (topic or subtopic) in the graph.
// Only ID and Name are required; everything else is optional metadata
// carried through to content generation.
type Concept struct {
	ID                    string
	Name                  string
	Description           string
	Complexity            string
	Level                 int
	EstimatedHours        int
	PracticalApplications []string
	Type                  string
	KeyConcepts           []string
}

// Relation is one directed edge instance between two concepts.
// The same (Type, FromID, ToID) triple may appear more than once when the
// backing store holds duplicate relationship records; query results
// deduplicate by concept ID.
type Relation struct {
	Type   RelationType
	FromID string
	ToID   string
}

// Store is the one-hop view over the concept graph. Implementations are
// read-only from the engine's perspective and must be safe for concurrent
// use. A nil Concept with a nil error means "no match", which is a normal
// outcome, not a failure.
type Store interface {
	// Find matches nameFragment case-insensitively as a substring of
	// concept names. When several concepts match, the one with the
	// lexicographically smallest ID wins, so repeated calls are stable.
	Find(ctx context.Context, nameFragment string) (*Concept, error)

	// PrerequisitesOf returns concepts with a PREREQUISITE_FOR edge into id.
	PrerequisitesOf(ctx context.Context, id string) ([]Concept, error)

	// SuccessorsOf returns concepts reachable from id by one outgoing
	// PREREQUISITE_FOR edge.
	SuccessorsOf(ctx context.Context, id string) ([]Concept, error)

	// SubtopicsOf returns concepts reachable from id by one HAS_SUBTOPIC edge.
	SubtopicsOf(ctx context.Context, id string) ([]Concept, error)

	// RelatedTo returns concepts reachable from id by one USED_WITH edge.
	RelatedTo(ctx context.Context, id string) ([]Concept, error)

	// EasierAlternativesTo returns concepts with an EASIER_THAN edge into id.
	EasierAlternativesTo(ctx context.Context, id string) ([]Concept, error)
}
