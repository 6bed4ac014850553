package strategy

import "github.com/neurlang/multiclass/labels"

// OneVsOne trains one machine per pair of classes on the rows of those two classes.
// Pairs are ordered (0,1), (0,2), ..., (0,n-1), (1,2), ...
type OneVsOne struct {
	base

	// current pair
	first, second int
}

// NewOneVsOne returns a one-vs-one strategy.
func NewOneVsOne() *OneVsOne {
	return &OneVsOne{}
}

// NumMachines is n*(n-1)/2 for n classes.
func (s *OneVsOne) NumMachines() int {
	return s.numClasses * (s.numClasses - 1) / 2
}

// TrainStart rewinds to the first pair.
func (s *OneVsOne) TrainStart(orig *labels.Multiclass, train *labels.Binary) {
	s.base.TrainStart(orig, train)
	s.first, s.second = 0, 1
}

// TrainHasMore reports whether a pair is left to train.
func (s *OneVsOne) TrainHasMore() bool {
	return s.iter < s.NumMachines()
}

// TrainPrepareNext selects the rows of the current pair, the first class +1.
// When neither class has a row the subset is empty, so the round trains on
// every row, all of them labeled -1.
func (s *OneVsOne) TrainPrepareNext() (subset []int) {
	for i := 0; i < s.orig.NumLabels(); i++ {
		switch s.orig.Label(i) {
		case s.first:
			subset = append(subset, i)
			s.train.Set(i, true)
		case s.second:
			subset = append(subset, i)
			s.train.Set(i, false)
		}
	}
	if len(subset) == 0 {
		allNegative(s.train)
	}
	s.iter++
	s.second++
	if s.second == s.numClasses {
		s.first++
		s.second = s.first + 1
	}
	return
}

// Decide counts one vote per pair and picks the class with most votes.
func (s *OneVsOne) Decide(outputs []float64) int {
	var votes = make([]float64, s.numClasses)
	var m int
	for i := 0; i < s.numClasses; i++ {
		for j := i + 1; j < s.numClasses; j++ {
			if m >= len(outputs) {
				return argmax(votes)
			}
			if outputs[m] > 0 {
				votes[i]++
			} else {
				votes[j]++
			}
			m++
		}
	}
	return argmax(votes)
}
