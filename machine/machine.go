// Package machine defines the two-class learner the multiclass machine is built from.
package machine

import (
	"github.com/neurlang/multiclass/features"
	"github.com/neurlang/multiclass/labels"
)

// Machine is a binary learner.
//
// Train fits the visible rows of f to the visible labels of y; both views have
// the same rows in the same order. Clone returns an independent copy of the
// learned parameters only, so retraining the receiver never changes the clone.
// Apply returns one decision value per visible row, positive meaning +1.
type Machine interface {
	Train(f features.Features, y *labels.Binary) error
	Clone() Machine
	Apply(f features.Features) ([]float64, error)
}
