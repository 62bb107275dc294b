// Package profile models the 8-dimensional cognitive profile of a student.
// Each dimension is a small categorical enumeration; the set of dimensions
// and their options live in a registry iterated uniformly, so adding an
// option (or a dimension) never touches the engines.
package profile

import (
	"errors"
	"fmt"
)

// DimensionID identifies one axis of the cognitive profile.
type DimensionID string

const (
	InstructionFlow     DimensionID = "instruction_flow"
	InputPreference     DimensionID = "input_preference"
	EngagementStyle     DimensionID = "engagement_style"
	ConceptType         DimensionID = "concept_type"
	LearningAutonomy    DimensionID = "learning_autonomy"
	MotivationType      DimensionID = "motivation_type"
	FeedbackPreference  DimensionID = "feedback_preference"
	ComplexityTolerance DimensionID = "complexity_tolerance"
)

// Dimension describes one profile axis: its ordered options and the value
// a freshly registered student starts with. Options carry at least two
// entries; nothing assumes exactly two.
type Dimension struct {
	ID      DimensionID
	Options []string
	Default string
}

// Dimensions returns the full registry in stable order. Option order is
// meaningful: it is the deterministic tie-break for dominance resolution.
func Dimensions() []Dimension {
	return []Dimension{
		{ID: InstructionFlow, Options: []string{"sequential", "global"}, Default: "sequential"},
		{ID: InputPreference, Options: []string{"visual", "verbal"}, Default: "verbal"},
		{ID: EngagementStyle, Options: []string{"active", "reflective"}, Default: "reflective"},
		{ID: ConceptType, Options: []string{"sensing", "intuitive"}, Default: "intuitive"},
		{ID: LearningAutonomy, Options: []string{"guided", "independent"}, Default: "guided"},
		{ID: MotivationType, Options: []string{"intrinsic", "extrinsic"}, Default: "intrinsic"},
		{ID: FeedbackPreference, Options: []string{"immediate", "delayed"}, Default: "delayed"},
		{ID: ComplexityTolerance, Options: []string{"high", "low"}, Default: "high"},
	}
}

// DimensionByID returns the registry entry for id, or false if unknown.
func DimensionByID(id DimensionID) (Dimension, bool) {
	for _, d := range Dimensions() {
		if d.ID == id {
			return d, true
		}
	}
	return Dimension{}, false
}

// ErrInvalidUpdate marks an update payload carrying an unknown dimension
// or a value outside a dimension's enumeration.
var ErrInvalidUpdate = errors.New("invalid profile update")

// Profile holds exactly one valid option per dimension. The zero value is
// not usable; construct with Default or a store load.
type Profile map[DimensionID]string

// Update is a partial payload: only the dimensions present change, the
// rest are left untouched. Absence means "no change", never "reset".
type Update map[DimensionID]string

// Default returns a profile with every dimension at its documented default.
func Default() Profile {
	p := make(Profile, len(Dimensions()))
	for _, d := range Dimensions() {
		p[d.ID] = d.Default
	}
	return p
}

// Clone returns an independent copy.
func (p Profile) Clone() Profile {
	out := make(Profile, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}

// Validate checks that every dimension holds exactly one value from its
// enumeration and that no dimension is missing or unknown.
func (p Profile) Validate() error {
	if len(p) != len(Dimensions()) {
		return fmt.Errorf("%w: profile has %d dimensions, want %d", ErrInvalidUpdate, len(p), len(Dimensions()))
	}
	for _, d := range Dimensions() {
		v, ok := p[d.ID]
		if !ok {
			return fmt.Errorf("%w: missing dimension %q", ErrInvalidUpdate, d.ID)
		}
		if !validOption(d, v) {
			return fmt.Errorf("%w: %q is not an option of %q", ErrInvalidUpdate, v, d.ID)
		}
	}
	return nil
}

// Apply returns a new profile with the update applied. The whole payload is
// validated before any dimension changes: an invalid entry rejects the
// entire update and the receiver is never mutated.
func (p Profile) Apply(u Update) (Profile, error) {
	for id, v := range u {
		d, ok := DimensionByID(id)
		if !ok {
			return nil, fmt.Errorf("%w: unknown dimension %q", ErrInvalidUpdate, id)
		}
		if !validOption(d, v) {
			return nil, fmt.Errorf("%w: %q is not an option of %q", ErrInvalidUpdate, v, id)
		}
	}

	out := p.Clone()
	for id, v := range u {
		out[id] = v
	}
	return out, nil
}

func validOption(d Dimension, v string) bool {
	for _, o := range d.Options {
		if o == v {
			return true
		}
	}
	return false
}
