package neo4jgraph

import (
	"context"
	"fmt"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/adhikary/tutorgraph/internal/concept"
)

// Seed upserts the given concepts and relations. Existing nodes with the
// same id are updated in place, so reseeding is idempotent.
func (s *Store) Seed(ctx context.Context, concepts []concept.Concept, relations []concept.Relation) error {
	session := s.client.session(ctx, neo4j.AccessModeWrite)
	defer session.Close(ctx)

	// Schema setup is best-effort; restricted users may not hold the
	// privilege.
	if res, err := session.Run(ctx, `CREATE CONSTRAINT concept_id_unique IF NOT EXISTS FOR (c:Concept) REQUIRE c.id IS UNIQUE`, nil); err != nil {
		s.client.log.Warn("neo4j schema init failed (continuing)", "error", err)
	} else {
		_, _ = res.Consume(ctx)
	}

	nodes := make([]map[string]any, 0, len(concepts))
	for _, c := range concepts {
		nodes = append(nodes, map[string]any{
			"id":                     c.ID,
			"name":                   c.Name,
			"description":            c.Description,
			"complexity":             c.Complexity,
			"level":                  int64(c.Level),
			"estimated_hours":        int64(c.EstimatedHours),
			"practical_applications": c.PracticalApplications,
			"type":                   c.Type,
			"key_concepts":           c.KeyConcepts,
		})
	}

	// Relationship types cannot be parameterized in Cypher, so relations
	// are grouped per type and written with a literal edge label.
	byType := make(map[concept.RelationType][]map[string]any)
	for _, r := range relations {
		byType[r.Type] = append(byType[r.Type], map[string]any{
			"from_id": r.FromID,
			"to_id":   r.ToID,
		})
	}

	_, err := session.ExecuteWrite(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		if len(nodes) > 0 {
			res, err := tx.Run(ctx, `
UNWIND $nodes AS n
MERGE (c:Concept {id: n.id})
SET c += n
`, map[string]any{"nodes": nodes})
			if err != nil {
				return nil, err
			}
			if _, err := res.Consume(ctx); err != nil {
				return nil, err
			}
		}

		for _, relType := range concept.AllRelationTypes() {
			rels := byType[relType]
			if len(rels) == 0 {
				continue
			}
			q := fmt.Sprintf(`
UNWIND $rels AS r
MATCH (a:Concept {id: r.from_id})
MATCH (b:Concept {id: r.to_id})
MERGE (a)-[:%s]->(b)
`, relType)
			res, err := tx.Run(ctx, q, map[string]any{"rels": rels})
			if err != nil {
				return nil, err
			}
			if _, err := res.Consume(ctx); err != nil {
				return nil, err
			}
		}

		return nil, nil
	})
	if err != nil {
		return fmt.Errorf("neo4jgraph: seed: %w", err)
	}

	s.client.log.Info("seeded concept graph",
		"concepts", len(concepts), "relations", len(relations))
	return nil
}
