// Package adapt infers cognitive-profile updates from free text. Each
// adaptation call runs the decay-then-adapt scoring process over all
// dimensions of one student's profile and emits a partial update for the
// dimensions whose dominant option changed.
package adapt

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/adhikary/tutorgraph/internal/classify"
	"github.com/adhikary/tutorgraph/internal/logger"
	"github.com/adhikary/tutorgraph/internal/profile"
)

const (
	// DefaultDecayRate is the per-call multiplicative decay applied to
	// every option score before new evidence lands.
	DefaultDecayRate = 0.05

	// DefaultAdaptationRate scales classifier confidence into a score
	// boost for the predicted option.
	DefaultAdaptationRate = 0.1
)

// Options tunes the adaptation dynamics.
type Options struct {
	DecayRate      float64
	AdaptationRate float64
}

// DefaultOptions returns the canonical rates.
func DefaultOptions() Options {
	return Options{
		DecayRate:      DefaultDecayRate,
		AdaptationRate: DefaultAdaptationRate,
	}
}

// DimensionOutcome reports one dimension's result within an adaptation call.
type DimensionOutcome struct {
	Dimension profile.DimensionID
	Dominant  string
	Score     float64
	// Signal is false when the classifier produced nothing for this
	// dimension this round (failure or no-signal); scores then carry
	// only the decay.
	Signal bool
}

// Result is the outcome of one adaptation call.
type Result struct {
	StudentID uuid.UUID

	// Update contains only the dimensions whose dominant option differs
	// from the prior profile. Persisting it is the caller's concern.
	Update profile.Update

	// Profile is the prior profile with Update applied.
	Profile profile.Profile

	// Confidence is the arithmetic mean of the dominant scores across
	// all dimensions.
	Confidence float64

	Outcomes []DimensionOutcome
}

// Engine converts free text plus a student's prior profile into an updated
// profile using a pluggable classifier. Calls for the same student are
// serialized across the whole profile; different students adapt in
// parallel.
type Engine struct {
	classifier classify.Classifier
	scores     ScoreStore
	opts       Options
	log        *logger.Logger

	mu    sync.Mutex
	locks map[uuid.UUID]*sync.Mutex
}

// NewEngine creates an adaptation engine.
func NewEngine(classifier classify.Classifier, scores ScoreStore, opts Options, log *logger.Logger) *Engine {
	if opts.DecayRate <= 0 {
		opts.DecayRate = DefaultDecayRate
	}
	if opts.AdaptationRate <= 0 {
		opts.AdaptationRate = DefaultAdaptationRate
	}
	return &Engine{
		classifier: classifier,
		scores:     scores,
		opts:       opts,
		log:        log,
		locks:      make(map[uuid.UUID]*sync.Mutex),
	}
}

// Adapt runs one adaptation call for the given student. The prior profile
// is validated up front; the classifier is consulted once per dimension,
// concurrently, and a failing dimension simply contributes no signal this
// round.
func (e *Engine) Adapt(ctx context.Context, studentID uuid.UUID, prior profile.Profile, text string) (*Result, error) {
	if err := prior.Validate(); err != nil {
		return nil, fmt.Errorf("prior profile: %w", err)
	}

	unlock := e.lockStudent(studentID)
	defer unlock()

	scores, err := e.scores.LoadScores(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("load scores for %s: %w", studentID, err)
	}
	if scores == nil {
		scores = make(StudentScores)
	}

	dims := profile.Dimensions()

	// Classify all dimensions concurrently; they are mutually
	// independent. Failures are recorded as absent predictions rather
	// than aborting the group.
	predictions := make([]*classify.Prediction, len(dims))
	g, gctx := errgroup.WithContext(ctx)
	for i, d := range dims {
		g.Go(func() error {
			p, err := e.classifier.Classify(gctx, text, d.Options)
			if err != nil {
				if e.log != nil {
					e.log.Warn("classification skipped", "student", studentID, "dimension", d.ID, "error", err)
				}
				return nil
			}
			predictions[i] = &p
			return nil
		})
	}
	_ = g.Wait()

	result := &Result{
		StudentID: studentID,
		Update:    make(profile.Update),
	}

	var total float64
	for i, d := range dims {
		state, ok := scores[d.ID]
		if !ok {
			state = NewScoreState(d.Options)
			scores[d.ID] = state
		}

		state.Decay(e.opts.DecayRate)

		outcome := DimensionOutcome{Dimension: d.ID}
		if p := predictions[i]; p != nil {
			state.Boost(p.Label, p.Confidence, e.opts.AdaptationRate)
			outcome.Signal = true
		}

		dominant, score := state.Dominant(d.Options, prior[d.ID])
		outcome.Dominant = dominant
		outcome.Score = score
		result.Outcomes = append(result.Outcomes, outcome)
		total += score

		if dominant != prior[d.ID] {
			result.Update[d.ID] = dominant
		}
	}
	result.Confidence = total / float64(len(dims))

	updated, err := prior.Apply(result.Update)
	if err != nil {
		// Dominants come from the registry's own option lists, so this
		// indicates a bug, not bad input.
		return nil, fmt.Errorf("apply update: %w", err)
	}
	result.Profile = updated

	if err := e.scores.SaveScores(ctx, studentID, scores); err != nil {
		return nil, fmt.Errorf("save scores for %s: %w", studentID, err)
	}

	if e.log != nil {
		e.log.Debug("adaptation complete",
			"student", studentID,
			"changed", len(result.Update),
			"confidence", result.Confidence)
	}
	return result, nil
}

// lockStudent serializes adaptation calls per student. The mutex map grows
// with the distinct student population of the process lifetime; entries
// are tiny and never contended after the student goes idle.
func (e *Engine) lockStudent(id uuid.UUID) func() {
	e.mu.Lock()
	l, ok := e.locks[id]
	if !ok {
		l = &sync.Mutex{}
		e.locks[id] = l
	}
	e.mu.Unlock()

	l.Lock()
	return l.Unlock
}
