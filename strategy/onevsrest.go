package strategy

// OneVsRest trains one machine per class, that class against all others.
// Rounds never subset the data.
type OneVsRest struct {
	base
}

// NewOneVsRest returns a one-vs-rest strategy.
func NewOneVsRest() *OneVsRest {
	return &OneVsRest{}
}

// NumMachines is the number of classes.
func (s *OneVsRest) NumMachines() int {
	return s.numClasses
}

// TrainHasMore reports whether a class is left to train.
func (s *OneVsRest) TrainHasMore() bool {
	return s.iter < s.NumMachines()
}

// TrainPrepareNext labels the next class +1 and every other class -1.
func (s *OneVsRest) TrainPrepareNext() []int {
	for i := 0; i < s.orig.NumLabels(); i++ {
		s.train.Set(i, s.orig.Label(i) == s.iter)
	}
	s.iter++
	return nil
}

// Decide picks the class whose machine answered highest.
func (s *OneVsRest) Decide(outputs []float64) int {
	return argmax(outputs)
}
