package hashtron

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neurlang/multiclass/datasets"
	"github.com/neurlang/multiclass/fault"
	"github.com/neurlang/multiclass/features"
	"github.com/neurlang/multiclass/labels"
	"github.com/neurlang/multiclass/learning"
)

func TestNew(t *testing.T) {
	d := datasets.Dataset{1: true, 2: false, 3: true}
	h, err := New([][2]uint32{{7, 1000003}}, d)
	require.NoError(t, err)
	assert.Equal(t, 1, h.Len())
	assert.Equal(t, 3, h.Buckets())
	assert.Positive(t, h.LenQ())
	for k, v := range d {
		assert.Equal(t, v, h.Forward(k, false))
		assert.Equal(t, !v, h.Forward(k, true))
	}

	_, err = New([][2]uint32{{7, 1}}, d)
	assert.Error(t, err, "modulo 1 merges both labels")
	_, err = New([][2]uint32{{7, 0}}, d)
	assert.Error(t, err)
}

func TestForward_AnswersFromFilter(t *testing.T) {
	program := [][2]uint32{{5, 1000003}}
	unfilled := Hashtron{program: program}

	// every label is the opposite of its bucket parity, so an empty filter gets all of them wrong
	d := make(datasets.Dataset)
	for k := uint32(1); k <= 60; k++ {
		d[k] = unfilled.bucket(k)&1 == 0
	}
	h, err := New(program, d)
	require.NoError(t, err)
	for k, v := range d {
		assert.Equal(t, v, h.Forward(k, false), "key %d", k)
	}

	h.quaternary = nil
	for k, v := range d {
		assert.NotEqual(t, v, h.Forward(k, false), "key %d", k)
	}
}

func TestHashtron_PushAndClone(t *testing.T) {
	h, err := New([][2]uint32{{1, 11}}, datasets.Dataset{4: true, 5: false})
	require.NoError(t, err)
	c := h.Clone()
	h.Push([2]uint32{3, 97})
	assert.Equal(t, 2, h.Len())
	assert.Equal(t, 1, c.Len())
	s, max := h.Get(0)
	assert.Equal(t, [2]uint32{3, 97}, [2]uint32{s, max})

	want := append([]byte(nil), c.quaternary...)
	h.quaternary[0] ^= 0xff
	assert.Equal(t, want, []byte(c.quaternary))
	assert.Equal(t, 2, c.Buckets())
}

func squareRows(t *testing.T, n int) (*features.Dense, *labels.Binary) {
	t.Helper()
	rows := make([][]float64, n)
	y := labels.NewBinary(n)
	for i := range rows {
		rows[i] = []float64{float64(i), float64(i % 7)}
		y.Set(i, (i*i)%5 < 2)
	}
	f, err := features.FromRows(rows)
	require.NoError(t, err)
	return f, y
}

func TestLearner_MemorizesTrainingRows(t *testing.T) {
	f, y := squareRows(t, 120)
	l := NewLearner(learning.HyperParameters{Threads: 2, DeadlineRetry: 3})
	require.NoError(t, l.Train(f, y))

	out, err := l.Apply(f)
	require.NoError(t, err)
	for i, v := range out {
		assert.Equal(t, y.Label(i), v, "row %d", i)
	}
}

func TestLearner_CloneSurvivesRetraining(t *testing.T) {
	f, y := squareRows(t, 40)
	l := NewLearner(learning.HyperParameters{DeadlineRetry: 3})
	require.NoError(t, l.Train(f, y))
	clone := l.Clone()
	before, err := clone.Apply(f)
	require.NoError(t, err)

	require.NoError(t, f.PushSubset([]int{0, 1, 2}))
	narrowed := labels.NewBinary(3)
	require.NoError(t, l.Train(f, narrowed))
	require.NoError(t, f.PopSubset())

	after, err := clone.Apply(f)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

type countOnly int

func (c countOnly) NumVectors() int        { return int(c) }
func (c countOnly) PushSubset([]int) error { return nil }
func (c countOnly) PopSubset() error       { return nil }

func TestLearner_Errors(t *testing.T) {
	l := NewLearner(learning.HyperParameters{})
	f, y := squareRows(t, 4)

	_, err := l.Apply(f)
	assert.True(t, errors.Is(err, fault.ErrConfiguration))

	err = l.Train(countOnly(4), y)
	assert.True(t, errors.Is(err, fault.ErrType))

	err = l.Train(f, labels.NewBinary(2))
	assert.True(t, errors.Is(err, fault.ErrType))

	dup, err := features.FromRows([][]float64{{1, 1}, {1, 1}})
	require.NoError(t, err)
	conflicting := labels.NewBinary(2)
	conflicting.Set(0, true)
	err = l.Train(dup, conflicting)
	assert.ErrorIs(t, err, ErrConflict)
}
