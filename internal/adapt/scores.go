package adapt

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/adhikary/tutorgraph/internal/profile"
)

// ScoreState maps each option of one dimension to its current score.
// Scores are individually bounded to [0,1] after every operation.
type ScoreState map[string]float64

// NewScoreState initializes every option at 0.5 (maximum uncertainty).
func NewScoreState(options []string) ScoreState {
	s := make(ScoreState, len(options))
	for _, o := range options {
		s[o] = 0.5
	}
	return s
}

// Clone returns an independent copy.
func (s ScoreState) Clone() ScoreState {
	out := make(ScoreState, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// Decay multiplies every score by (1 - rate), modeling staleness of old
// evidence. Scores never drop below zero.
func (s ScoreState) Decay(rate float64) {
	for k, v := range s {
		v *= 1 - rate
		if v < 0 {
			v = 0
		}
		s[k] = v
	}
}

// Boost raises one option's score by confidence x rate, capped at 1.
// Unknown options are ignored; the classifier's label set is validated
// upstream.
func (s ScoreState) Boost(option string, confidence, rate float64) {
	v, ok := s[option]
	if !ok {
		return
	}
	v += confidence * rate
	if v > 1 {
		v = 1
	}
	s[option] = v
}

// Dominant resolves the option with the maximum score. Ties break toward
// prev (stability: yesterday's dominant keeps winning on equal evidence),
// then toward the earliest option in enumeration order.
func (s ScoreState) Dominant(options []string, prev string) (string, float64) {
	best := ""
	bestScore := -1.0
	for _, o := range options {
		if s[o] > bestScore {
			best = o
			bestScore = s[o]
		}
	}
	if prev != best && s[prev] == bestScore {
		if _, ok := s[prev]; ok {
			return prev, bestScore
		}
	}
	return best, bestScore
}

// StudentScores is the full per-student score state, one entry per
// dimension.
type StudentScores map[profile.DimensionID]ScoreState

// Clone returns a deep copy.
func (ss StudentScores) Clone() StudentScores {
	out := make(StudentScores, len(ss))
	for k, v := range ss {
		out[k] = v.Clone()
	}
	return out
}

// ScoreStore persists per-student score state between adaptation calls.
// Load returns nil for a student with no prior state; the engine then
// initializes every dimension at 0.5 per option.
type ScoreStore interface {
	LoadScores(ctx context.Context, studentID uuid.UUID) (StudentScores, error)
	SaveScores(ctx context.Context, studentID uuid.UUID, scores StudentScores) error
}

// MemoryScoreStore is an in-process ScoreStore for tests and ephemeral use.
type MemoryScoreStore struct {
	mu     sync.Mutex
	scores map[uuid.UUID]StudentScores
}

// NewMemoryScoreStore creates an empty in-memory score store.
func NewMemoryScoreStore() *MemoryScoreStore {
	return &MemoryScoreStore{scores: make(map[uuid.UUID]StudentScores)}
}

func (m *MemoryScoreStore) LoadScores(_ context.Context, studentID uuid.UUID) (StudentScores, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	ss, ok := m.scores[studentID]
	if !ok {
		return nil, nil
	}
	return ss.Clone(), nil
}

func (m *MemoryScoreStore) SaveScores(_ context.Context, studentID uuid.UUID, scores StudentScores) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.scores[studentID] = scores.Clone()
	return nil
}
