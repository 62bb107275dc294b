package profile

import (
	"errors"
	"testing"
)

func TestDimensions_RegistryShape(t *testing.T) {
	dims := Dimensions()
	if len(dims) != 8 {
		t.Fatalf("got %d dimensions, want 8", len(dims))
	}
	for _, d := range dims {
		if len(d.Options) < 2 {
			t.Errorf("dimension %q has %d options, want at least 2", d.ID, len(d.Options))
		}
		if !validOption(d, d.Default) {
			t.Errorf("dimension %q default %q is not among its options", d.ID, d.Default)
		}
	}
}

func TestDefault_IsValid(t *testing.T) {
	p := Default()
	if err := p.Validate(); err != nil {
		t.Fatalf("default profile must validate: %v", err)
	}
	if p[ComplexityTolerance] != "high" {
		t.Errorf("complexity_tolerance default: got %q, want high", p[ComplexityTolerance])
	}
	if p[InstructionFlow] != "sequential" {
		t.Errorf("instruction_flow default: got %q, want sequential", p[InstructionFlow])
	}
}

func TestApply_PartialUpdate(t *testing.T) {
	p := Default()
	updated, err := p.Apply(Update{
		ComplexityTolerance: "low",
		InputPreference:     "visual",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated[ComplexityTolerance] != "low" {
		t.Errorf("complexity_tolerance: got %q, want low", updated[ComplexityTolerance])
	}
	if updated[InputPreference] != "visual" {
		t.Errorf("input_preference: got %q, want visual", updated[InputPreference])
	}
	// Omitted dimensions stay untouched.
	if updated[MotivationType] != "intrinsic" {
		t.Errorf("motivation_type must not change: got %q", updated[MotivationType])
	}
	// The original is never mutated.
	if p[ComplexityTolerance] != "high" {
		t.Errorf("Apply mutated the receiver: %q", p[ComplexityTolerance])
	}
}

func TestApply_InvalidValueRejectsWholePayload(t *testing.T) {
	p := Default()
	_, err := p.Apply(Update{
		InputPreference:     "visual", // valid
		ComplexityTolerance: "medium", // not in the enumeration
	})
	if err == nil {
		t.Fatal("expected error for out-of-enumeration value")
	}
	if !errors.Is(err, ErrInvalidUpdate) {
		t.Fatalf("expected ErrInvalidUpdate, got %v", err)
	}
	// All-or-nothing: the valid entry must not have been applied.
	if p[InputPreference] != "verbal" {
		t.Errorf("partial application leaked: input_preference = %q", p[InputPreference])
	}
}

func TestApply_UnknownDimensionRejected(t *testing.T) {
	_, err := Default().Apply(Update{"attention_span": "short"})
	if !errors.Is(err, ErrInvalidUpdate) {
		t.Fatalf("expected ErrInvalidUpdate, got %v", err)
	}
}

func TestValidate_MissingDimension(t *testing.T) {
	p := Default()
	delete(p, EngagementStyle)
	if err := p.Validate(); !errors.Is(err, ErrInvalidUpdate) {
		t.Fatalf("expected ErrInvalidUpdate for missing dimension, got %v", err)
	}
}
