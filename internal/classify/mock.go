package classify

import (
	"context"
	"sync"
)

// MockCall records one Classify invocation made against a MockClassifier.
type MockCall struct {
	Text   string
	Labels []string
}

// MockClassifier is a deterministic Classifier for tests. Predictions are
// keyed by the first candidate label, so one mock can serve all eight
// dimensions in a single adaptation call.
type MockClassifier struct {
	mu           sync.Mutex
	byFirstLabel map[string]Prediction
	err          error
	Calls        []MockCall
}

// NewMockClassifier creates a mock with no canned predictions; every call
// returns ErrNoSignal until predictions are added.
func NewMockClassifier() *MockClassifier {
	return &MockClassifier{byFirstLabel: make(map[string]Prediction)}
}

// Predict registers the prediction returned when firstLabel is the first
// candidate label of a Classify call.
func (m *MockClassifier) Predict(firstLabel string, p Prediction) *MockClassifier {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.byFirstLabel[firstLabel] = p
	return m
}

// Fail makes every subsequent call return err.
func (m *MockClassifier) Fail(err error) *MockClassifier {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
	return m
}

func (m *MockClassifier) Classify(_ context.Context, text string, labels []string) (Prediction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, MockCall{Text: text, Labels: append([]string(nil), labels...)})

	if m.err != nil {
		return Prediction{}, m.err
	}
	if len(labels) == 0 {
		return Prediction{}, ErrNoSignal
	}
	p, ok := m.byFirstLabel[labels[0]]
	if !ok {
		return Prediction{}, ErrNoSignal
	}
	return p, nil
}

// CallCount returns the number of Classify calls made.
func (m *MockClassifier) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}
