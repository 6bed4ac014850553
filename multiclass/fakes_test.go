package multiclass

import (
	"errors"

	"github.com/neurlang/multiclass/features"
	"github.com/neurlang/multiclass/labels"
	"github.com/neurlang/multiclass/machine"
)

var errBoom = errors.New("boom")

// seen is what the base machine was handed in one Train call.
type seen struct {
	ids      []int
	positive []bool
	depth    int // subsets pushed on the features
}

// memorizer remembers the label of every row it was trained on, keyed by the
// row's first column. Unknown rows score -1.
type memorizer struct {
	failAt  int // 1-based Train call that fails, 0 never
	calls   int
	rounds  []seen
	onTrain func()

	table map[int]bool
}

func (m *memorizer) Train(f features.Features, y *labels.Binary) error {
	m.calls++
	if m.onTrain != nil {
		m.onTrain()
	}
	if m.calls == m.failAt {
		return errBoom
	}
	d := f.(features.DotFeatures)
	var s seen
	if dd, ok := f.(interface{ SubsetDepth() int }); ok {
		s.depth = dd.SubsetDepth()
	}
	m.table = make(map[int]bool)
	for i := 0; i < d.NumVectors(); i++ {
		id := int(d.Row(i, nil)[0])
		s.ids = append(s.ids, id)
		s.positive = append(s.positive, y.Positive(i))
		m.table[id] = y.Positive(i)
	}
	m.rounds = append(m.rounds, s)
	return nil
}

func (m *memorizer) Clone() machine.Machine {
	c := &memorizer{table: make(map[int]bool, len(m.table))}
	for k, v := range m.table {
		c.table[k] = v
	}
	return c
}

func (m *memorizer) Apply(f features.Features) ([]float64, error) {
	d := f.(features.DotFeatures)
	out := make([]float64, d.NumVectors())
	for i := range out {
		out[i] = -1
		if m.table[int(d.Row(i, nil)[0])] {
			out[i] = 1
		}
	}
	return out, nil
}

// scripted is a strategy replaying fixed subsets without relabeling.
type scripted struct {
	subsets    [][]int
	i          int
	numClasses int
	started    int
	stopped    int
}

func (s *scripted) SetNumClasses(n int) {
	s.numClasses = n
}

func (s *scripted) TrainStart(*labels.Multiclass, *labels.Binary) {
	s.i = 0
	s.started++
}

func (s *scripted) TrainHasMore() bool {
	return s.i < len(s.subsets)
}

func (s *scripted) TrainStop() {
	s.stopped++
}

func (s *scripted) TrainPrepareNext() []int {
	s.i++
	return s.subsets[s.i-1]
}

// countOnly has rows but no dot products.
type countOnly struct{ n int }

func (c countOnly) NumVectors() int        { return c.n }
func (c countOnly) PushSubset([]int) error { return nil }
func (c countOnly) PopSubset() error       { return nil }
