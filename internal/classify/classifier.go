// Package classify provides the text-classification capability consumed by
// the profile adaptation engine: given a free-text utterance and a set of
// candidate labels, return the best label and a confidence in [0,1].
package classify

import (
	"context"
	"errors"
)

// Prediction is the outcome of classifying one text against one label set.
type Prediction struct {
	Label      string
	Confidence float64
}

// Classifier scores a text against candidate labels. Implementations must
// return a label drawn from labels and a confidence in [0,1]. Failures are
// recovered by the caller per dimension; they never abort a whole
// adaptation call.
type Classifier interface {
	Classify(ctx context.Context, text string, labels []string) (Prediction, error)
}

// ErrNoSignal indicates the classifier found nothing to say about the
// text for the given labels. Callers treat it like any other failure:
// no signal for that dimension this round.
var ErrNoSignal = errors.New("no classification signal")
