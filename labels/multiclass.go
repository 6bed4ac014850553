package labels

import (
	"strconv"

	"github.com/neurlang/multiclass/fault"
	"github.com/neurlang/multiclass/subset"
)

// Multiclass labels are class indices 0 to NumClasses()-1.
type Multiclass struct {
	y       []int
	classes int
	rows    *subset.Stack
}

// NewMulticlass validates and wraps y. The slice is not copied.
func NewMulticlass(y []int) (*Multiclass, error) {
	if len(y) == 0 {
		return nil, fault.Type("multiclass labels", "no labels")
	}
	var classes int
	for i, v := range y {
		if v < 0 {
			return nil, fault.Type("multiclass labels", "label "+strconv.Itoa(i)+" is negative")
		}
		if v+1 > classes {
			classes = v + 1
		}
	}
	return &Multiclass{y: y, classes: classes, rows: subset.New(len(y))}, nil
}

// NumLabels reports the number of visible labels.
func (m *Multiclass) NumLabels() int {
	return m.rows.Len()
}

// NumClasses is one more than the largest label, regardless of the view.
func (m *Multiclass) NumClasses() int {
	return m.classes
}

// Label returns the class of visible row i.
func (m *Multiclass) Label(i int) int {
	return m.y[m.rows.Index(i)]
}

// PushSubset narrows the visible labels.
func (m *Multiclass) PushSubset(indices []int) error {
	return m.rows.Push(indices)
}

// PopSubset restores the labels visible before the last PushSubset.
func (m *Multiclass) PopSubset() error {
	return m.rows.Pop()
}

// Counts returns the number of visible rows per class.
func (m *Multiclass) Counts() []int {
	var out = make([]int, m.classes)
	for i := 0; i < m.NumLabels(); i++ {
		out[m.Label(i)]++
	}
	return out
}
