package neo4jgraph

import (
	"context"
	"fmt"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/adhikary/tutorgraph/internal/concept"
)

// Store implements concept.Store over a neo4j database. Concepts are
// (:Concept) nodes keyed by id; relations are typed edges matching the
// concept.RelationType names.
type Store struct {
	client *Client
}

// NewStore wraps an open Client as a concept.Store.
func NewStore(client *Client) *Store {
	return &Store{client: client}
}

var _ concept.Store = (*Store)(nil)

// Find matches nameFragment case-insensitively against concept names.
// Ordering by id before LIMIT keeps repeated lookups stable when several
// concepts match.
func (s *Store) Find(ctx context.Context, nameFragment string) (*concept.Concept, error) {
	session := s.client.session(ctx, neo4j.AccessModeRead)
	defer session.Close(ctx)

	result, err := session.ExecuteRead(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		res, err := tx.Run(ctx, `
MATCH (c:Concept)
WHERE toLower(c.name) CONTAINS toLower($fragment)
RETURN c
ORDER BY c.id
LIMIT 1
`, map[string]any{"fragment": nameFragment})
		if err != nil {
			return nil, err
		}
		records, err := res.Collect(ctx)
		if err != nil {
			return nil, err
		}
		if len(records) == 0 {
			return nil, nil
		}
		node, ok := records[0].Get("c")
		if !ok {
			return nil, nil
		}
		return nodeToConcept(node.(neo4j.Node)), nil
	})
	if err != nil {
		return nil, fmt.Errorf("neo4jgraph: find %q: %w", nameFragment, err)
	}
	if result == nil {
		return nil, nil
	}
	c := result.(*concept.Concept)
	return c, nil
}

func (s *Store) PrerequisitesOf(ctx context.Context, id string) ([]concept.Concept, error) {
	return s.neighbors(ctx, id, `
MATCH (n:Concept)-[:PREREQUISITE_FOR]->(c:Concept {id: $id})
RETURN n ORDER BY n.id
`)
}

func (s *Store) SuccessorsOf(ctx context.Context, id string) ([]concept.Concept, error) {
	return s.neighbors(ctx, id, `
MATCH (c:Concept {id: $id})-[:PREREQUISITE_FOR]->(n:Concept)
RETURN n ORDER BY n.id
`)
}

func (s *Store) SubtopicsOf(ctx context.Context, id string) ([]concept.Concept, error) {
	return s.neighbors(ctx, id, `
MATCH (c:Concept {id: $id})-[:HAS_SUBTOPIC]->(n:Concept)
RETURN n ORDER BY n.id
`)
}

func (s *Store) RelatedTo(ctx context.Context, id string) ([]concept.Concept, error) {
	return s.neighbors(ctx, id, `
MATCH (c:Concept {id: $id})-[:USED_WITH]->(n:Concept)
RETURN n ORDER BY n.id
`)
}

func (s *Store) EasierAlternativesTo(ctx context.Context, id string) ([]concept.Concept, error) {
	return s.neighbors(ctx, id, `
MATCH (n:Concept)-[:EASIER_THAN]->(c:Concept {id: $id})
RETURN n ORDER BY n.id
`)
}

func (s *Store) neighbors(ctx context.Context, id, query string) ([]concept.Concept, error) {
	session := s.client.session(ctx, neo4j.AccessModeRead)
	defer session.Close(ctx)

	result, err := session.ExecuteRead(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		res, err := tx.Run(ctx, query, map[string]any{"id": id})
		if err != nil {
			return nil, err
		}
		records, err := res.Collect(ctx)
		if err != nil {
			return nil, err
		}
		out := make([]concept.Concept, 0, len(records))
		for _, record := range records {
			node, ok := record.Get("n")
			if !ok {
				continue
			}
			out = append(out, *nodeToConcept(node.(neo4j.Node)))
		}
		return out, nil
	})
	if err != nil {
		return nil, fmt.Errorf("neo4jgraph: neighbors of %q: %w", id, err)
	}
	return result.([]concept.Concept), nil
}

func nodeToConcept(n neo4j.Node) *concept.Concept {
	c := &concept.Concept{
		ID:             stringProp(n, "id"),
		Name:           stringProp(n, "name"),
		Description:    stringProp(n, "description"),
		Complexity:     stringProp(n, "complexity"),
		Level:          intProp(n, "level"),
		EstimatedHours: intProp(n, "estimated_hours"),
		Type:           stringProp(n, "type"),
	}
	c.PracticalApplications = stringSliceProp(n, "practical_applications")
	c.KeyConcepts = stringSliceProp(n, "key_concepts")
	return c
}

func stringProp(n neo4j.Node, key string) string {
	if v, ok := n.Props[key].(string); ok {
		return v
	}
	return ""
}

func intProp(n neo4j.Node, key string) int {
	if v, ok := n.Props[key].(int64); ok {
		return int(v)
	}
	return 0
}

func stringSliceProp(n neo4j.Node, key string) []string {
	raw, ok := n.Props[key].([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
