// Package features provides the feature views trained on by the binary machines.
//
// A view is a shared dataset narrowed by a stack of subsets. Pushing a subset
// changes which rows are visible and in what order, popping restores the previous
// view. Row arguments of every method are visible rows.
package features

// Features is the minimal dataset handle: a row count and the subset stack.
type Features interface {
	NumVectors() int
	PushSubset(indices []int) error
	PopSubset() error
}

// DotFeatures is a numeric view a linear machine can train on.
type DotFeatures interface {
	Features

	// Dim is the number of columns.
	Dim() int

	// Dot returns the dot product of row with w.
	Dot(row int, w []float64) float64

	// AddScaled adds alpha times row to dst.
	AddScaled(row int, alpha float64, dst []float64)

	// Row copies row into dst, allocating when dst is too short.
	Row(row int, dst []float64) []float64
}

// Hasher is a view whose rows fold into 32 bit keys.
type Hasher interface {
	Features
	Key(row int) uint32
}

// AsDot reports whether f supports dot products.
func AsDot(f Features) (DotFeatures, bool) {
	d, ok := f.(DotFeatures)
	return d, ok
}
