// Package subset implements the stack of row selections behind every feature and label view.
//
// A Stack never copies the data it indexes. Each Push narrows the visible rows to an
// index list interpreted against the rows visible at the time of the push, so nested
// pushes compose. Pop restores the previous view. Pushes and pops must nest.
package subset

import (
	"strconv"

	"github.com/neurlang/multiclass/fault"
)

// Stack maps visible rows to storage rows.
type Stack struct {
	n int

	// frames holds, per push, the storage rows visible after it
	frames [][]int
}

// New returns a stack over n storage rows with nothing pushed.
func New(n int) *Stack {
	return &Stack{n: n}
}

// Len reports the number of visible rows.
func (s *Stack) Len() int {
	if len(s.frames) == 0 {
		return s.n
	}
	return len(s.frames[len(s.frames)-1])
}

// Depth reports the number of active pushes.
func (s *Stack) Depth() int {
	return len(s.frames)
}

// Index maps visible row i to its storage row.
func (s *Stack) Index(i int) int {
	if len(s.frames) == 0 {
		return i
	}
	return s.frames[len(s.frames)-1][i]
}

// Push narrows the view to the given visible rows, in the given order.
// An empty list is legal and leaves zero rows visible.
func (s *Stack) Push(indices []int) error {
	var visible = s.Len()
	var frame = make([]int, len(indices))
	for k, i := range indices {
		if i < 0 || i >= visible {
			return fault.Index("subset push", "row "+strconv.Itoa(i)+" outside "+strconv.Itoa(visible)+" visible rows")
		}
		frame[k] = s.Index(i)
	}
	s.frames = append(s.frames, frame)
	return nil
}

// Pop removes the most recent push.
func (s *Stack) Pop() error {
	if len(s.frames) == 0 {
		return fault.Invariant("subset pop", "no subset pushed")
	}
	s.frames[len(s.frames)-1] = nil
	s.frames = s.frames[:len(s.frames)-1]
	return nil
}

// Rows returns the storage rows of the current view.
func (s *Stack) Rows() []int {
	var out = make([]int, s.Len())
	for i := range out {
		out[i] = s.Index(i)
	}
	return out
}
