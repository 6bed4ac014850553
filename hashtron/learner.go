package hashtron

import "errors"
import "fmt"

import "github.com/neurlang/multiclass/datasets"
import "github.com/neurlang/multiclass/fault"
import "github.com/neurlang/multiclass/features"
import "github.com/neurlang/multiclass/labels"
import "github.com/neurlang/multiclass/learning"
import "github.com/neurlang/multiclass/machine"

// ErrConflict is returned when two rows with equal keys carry different labels
var ErrConflict = errors.New("hashtron: equal rows with different labels")

// Learner trains a hashtron on the keys of a feature view
type Learner struct {
	Hashtron
	learning.HyperParameters
}

// NewLearner returns a learner solving with the given hyper parameters
func NewLearner(h learning.HyperParameters) *Learner {
	return &Learner{HyperParameters: h}
}

func hasher(op string, f features.Features) (features.Hasher, error) {
	h, ok := f.(features.Hasher)
	if !ok {
		return nil, fault.Type(op, "features have no row keys")
	}
	return h, nil
}

// Train solves a premodulo for the visible rows and memorizes their buckets
func (l *Learner) Train(f features.Features, y *labels.Binary) error {
	keys, err := hasher("hashtron train", f)
	if err != nil {
		return err
	}
	if y == nil {
		return fault.Configuration("hashtron train", "no labels")
	}
	if keys.NumVectors() != y.NumLabels() {
		return fault.Type("hashtron train", fmt.Sprint(keys.NumVectors(), " rows but ", y.NumLabels(), " labels"))
	}

	var d datasets.Dataset
	d.Init()
	for i := 0; i < keys.NumVectors(); i++ {
		if !d.Put(keys.Key(i), y.Positive(i)) {
			return fmt.Errorf("row %d: %w", i, ErrConflict)
		}
	}

	sol, err := l.Solve(datasets.SplitDataset(d))
	if err != nil {
		return err
	}
	h, err := New([][2]uint32{sol}, d)
	if err != nil {
		return err
	}
	l.Hashtron = *h
	return nil
}

// Clone copies the learned hashtron into a learner with default hyper parameters
func (l *Learner) Clone() machine.Machine {
	return &Learner{Hashtron: l.Hashtron.Clone()}
}

// Apply scores the visible rows +1 or -1
func (l *Learner) Apply(f features.Features) ([]float64, error) {
	if !l.Trained() {
		return nil, fault.Configuration("hashtron apply", "hashtron not trained")
	}
	keys, err := hasher("hashtron apply", f)
	if err != nil {
		return nil, err
	}
	var out = make([]float64, keys.NumVectors())
	for i := range out {
		out[i] = -1
		if l.Forward(keys.Key(i), false) {
			out[i] = 1
		}
	}
	return out, nil
}
