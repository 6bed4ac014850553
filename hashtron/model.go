// Package Hashtron implements a hashtron (binary classifier over hashed row keys)
package hashtron

import "github.com/neurlang/quaternary"

// Hashtron represents individual hashtron (classifier) in memory
type Hashtron struct {
	// premodulo commands applied to the key in order
	program [][2]uint32

	// number of buckets reached in training
	buckets int

	// learned label of every bucket
	quaternary quaternary.Filter
}

// Push pushes the hashing command to position 0
func (h *Hashtron) Push(data [2]uint32) {
	h.program = append([][2]uint32{data}, h.program...)
}

// Get gets the hashing command at position n
func (h Hashtron) Get(n int) (s uint32, max uint32) {
	return h.program[n][0], h.program[n][1]
}

// Len gets the number of hashing commands (size of hashtron program)
func (h Hashtron) Len() int {
	return len(h.program)
}

// LenQ gets the size of learned data (size of quaternary filter)
func (h Hashtron) LenQ() int {
	return len(h.quaternary)
}

// Buckets gets the number of learned buckets
func (h Hashtron) Buckets() int {
	return h.buckets
}

// Trained reports whether the hashtron holds a program
func (h Hashtron) Trained() bool {
	return len(h.program) > 0
}

// Clone deep copies the hashtron
func (h Hashtron) Clone() Hashtron {
	return Hashtron{
		program:    append([][2]uint32(nil), h.program...),
		buckets:    h.buckets,
		quaternary: append(quaternary.Filter(nil), h.quaternary...),
	}
}
