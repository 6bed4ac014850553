package labels

import "github.com/neurlang/multiclass/subset"

// Binary is a two valued label buffer, +1 or -1 per row, with its own subset stack.
type Binary struct {
	y    []bool
	rows *subset.Stack
}

// NewBinary allocates n labels, all -1.
func NewBinary(n int) *Binary {
	return &Binary{y: make([]bool, n), rows: subset.New(n)}
}

// NumLabels reports the number of visible labels.
func (b *Binary) NumLabels() int {
	return b.rows.Len()
}

// Set labels visible row i as +1 when positive, else -1.
func (b *Binary) Set(i int, positive bool) {
	b.y[b.rows.Index(i)] = positive
}

// Positive reports whether visible row i is +1.
func (b *Binary) Positive(i int) bool {
	return b.y[b.rows.Index(i)]
}

// Label returns +1 or -1 for visible row i.
func (b *Binary) Label(i int) float64 {
	if b.Positive(i) {
		return 1
	}
	return -1
}

// NumPositive counts the visible +1 labels.
func (b *Binary) NumPositive() (n int) {
	for i := 0; i < b.NumLabels(); i++ {
		if b.Positive(i) {
			n++
		}
	}
	return
}

// PushSubset narrows the visible labels.
func (b *Binary) PushSubset(indices []int) error {
	return b.rows.Push(indices)
}

// PopSubset restores the labels visible before the last PushSubset.
func (b *Binary) PopSubset() error {
	return b.rows.Pop()
}

// SubsetDepth reports the number of pushed subsets.
func (b *Binary) SubsetDepth() int {
	return b.rows.Depth()
}
