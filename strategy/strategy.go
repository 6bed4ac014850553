// Package strategy implements decomposition policies: the rules that turn one
// multiclass problem into an ordered sequence of binary problems.
//
// The training protocol is driven by the multiclass machine:
//
//	s.SetNumClasses(n)
//	s.TrainStart(orig, train)
//	for s.TrainHasMore() {
//		subset := s.TrainPrepareNext() // train has been relabeled for this round
//		...
//	}
//	s.TrainStop()
//
// A nil or empty subset means the round trains on every visible row.
package strategy

import "github.com/neurlang/multiclass/labels"

// Strategy is a decomposition policy.
type Strategy interface {
	SetNumClasses(n int)
	TrainStart(orig *labels.Multiclass, train *labels.Binary)
	TrainHasMore() bool
	TrainPrepareNext() []int
	TrainStop()
}

// Decider maps the outputs of the trained submodels, one per round and in round
// order, to a class. It is used at prediction time.
type Decider interface {
	NumMachines() int
	Decide(outputs []float64) int
}

// base keeps the bookkeeping shared by all strategies.
type base struct {
	numClasses int
	orig       *labels.Multiclass
	train      *labels.Binary
	iter       int
}

// SetNumClasses sets the number of classes.
func (b *base) SetNumClasses(n int) {
	b.numClasses = n
}

// NumClasses reports the number of classes.
func (b *base) NumClasses() int {
	return b.numClasses
}

// TrainStart starts a training pass relabeling train from orig.
func (b *base) TrainStart(orig *labels.Multiclass, train *labels.Binary) {
	b.orig = orig
	b.train = train
	b.iter = 0
}

// TrainStop releases the label sets of the pass.
func (b *base) TrainStop() {
	b.orig = nil
	b.train = nil
}

// allNegative labels every visible row -1.
func allNegative(train *labels.Binary) {
	for i := 0; i < train.NumLabels(); i++ {
		train.Set(i, false)
	}
}

// argmax returns the index of the largest value, the lowest one on ties.
func argmax(v []float64) (best int) {
	for i := range v {
		if v[i] > v[best] {
			best = i
		}
	}
	return
}
