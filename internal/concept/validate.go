package concept

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInconsistentGraph marks graph data whose relations reference concept
// IDs absent from the node set. This is a data-integrity fault in the
// backing store; silently dropping such edges would corrupt deduplication
// and path results, so it is surfaced instead.
var ErrInconsistentGraph = errors.New("inconsistent concept graph data")

// validateConcepts performs structural checks on a concept set and its
// relations. Returns a combined error describing all problems found, or nil.
func validateConcepts(concepts []Concept, relations []Relation) error {
	var errs []string

	idSet := make(map[string]bool, len(concepts))
	for _, c := range concepts {
		if c.ID == "" {
			errs = append(errs, fmt.Sprintf("concept %q has empty ID", c.Name))
			continue
		}
		if idSet[c.ID] {
			errs = append(errs, fmt.Sprintf("duplicate concept ID: %q", c.ID))
		}
		idSet[c.ID] = true
	}

	known := map[RelationType]bool{}
	for _, rt := range AllRelationTypes() {
		known[rt] = true
	}

	for _, r := range relations {
		if !known[r.Type] {
			errs = append(errs, fmt.Sprintf("unknown relation type %q (%s -> %s)", r.Type, r.FromID, r.ToID))
		}
		if !idSet[r.FromID] {
			errs = append(errs, fmt.Sprintf("%s relation references nonexistent concept %q", r.Type, r.FromID))
		}
		if !idSet[r.ToID] {
			errs = append(errs, fmt.Sprintf("%s relation references nonexistent concept %q", r.Type, r.ToID))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w:\n  %s", ErrInconsistentGraph, strings.Join(errs, "\n  "))
	}
	return nil
}
