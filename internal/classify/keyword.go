package classify

import (
	"context"
	"strings"
)

// DefaultKeywordConfidence is the constant confidence reported for any
// keyword hit. Keyword matching has no probabilistic model behind it, so
// the confidence is fixed rather than fabricated.
const DefaultKeywordConfidence = 0.6

// keywordTable maps label values to the phrases that signal them, matched
// as lowercase substrings. Labels without entries simply never win.
var keywordTable = map[string][]string{
	// instruction_flow
	"global":     {"big picture", "overview", "why", "concept", "in general"},
	"sequential": {"step-by-step", "step by step", "process", "steps", "procedure", "how to"},

	// input_preference
	"visual": {"chart", "diagram", "visualize", "draw", "picture", "graph", "flowchart"},
	"verbal": {"explain", "describe", "list", "tell me", "words"},

	// engagement_style
	"active":     {"let me practice", "quiz me", "exercise", "challenge me", "try it"},
	"reflective": {"let me think", "summarize", "recap", "review"},

	// concept_type
	"sensing":   {"example", "real-world", "concrete", "practical"},
	"intuitive": {"theory", "abstract", "intuition", "underlying idea"},

	// learning_autonomy
	"guided":      {"guide me", "help me", "your help", "show me", "walk me through"},
	"independent": {"let me try", "i want to solve", "give me a hint", "on my own"},

	// motivation_type
	"intrinsic": {"curious", "interested", "i wonder", "fascinating"},
	"extrinsic": {"exam", "interview", "assignment", "grade", "deadline"},

	// feedback_preference
	"immediate": {"check my answer", "right away", "immediately", "as i go"},
	"delayed":   {"at the end", "afterwards", "when i finish"},

	// complexity_tolerance
	"low":  {"simple", "basic", "easy", "fundamental", "break it down"},
	"high": {"advanced", "complex", "in-depth", "thorough", "elaborate"},
}

// KeywordClassifier is the static keyword-matching variant of the
// capability. It never calls out anywhere and is fully deterministic,
// which also makes it the offline fallback when no model is configured.
type KeywordClassifier struct {
	confidence float64
}

// NewKeywordClassifier creates a keyword classifier reporting the given
// constant confidence; zero selects DefaultKeywordConfidence.
func NewKeywordClassifier(confidence float64) *KeywordClassifier {
	if confidence <= 0 || confidence > 1 {
		confidence = DefaultKeywordConfidence
	}
	return &KeywordClassifier{confidence: confidence}
}

// Classify picks the label with the most keyword hits in text. Ties break
// toward the earlier label, so results are stable for a fixed label order.
// When no keyword of any label matches, it returns ErrNoSignal.
func (k *KeywordClassifier) Classify(_ context.Context, text string, labels []string) (Prediction, error) {
	lower := strings.ToLower(text)

	best := ""
	bestHits := 0
	for _, label := range labels {
		hits := 0
		for _, kw := range keywordTable[label] {
			if strings.Contains(lower, kw) {
				hits++
			}
		}
		if hits > bestHits {
			best = label
			bestHits = hits
		}
	}

	if bestHits == 0 {
		return Prediction{}, ErrNoSignal
	}
	return Prediction{Label: best, Confidence: k.confidence}, nil
}
