package features

import (
	"strconv"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/neurlang/multiclass/fault"
	"github.com/neurlang/multiclass/hash"
	"github.com/neurlang/multiclass/subset"
)

// Dense is a row-major float64 feature matrix with a subset stack over its rows.
type Dense struct {
	m    *mat.Dense
	rows *subset.Stack
}

// NewDense wraps data, r rows of c columns, without copying it.
func NewDense(r, c int, data []float64) (*Dense, error) {
	if r <= 0 || c <= 0 {
		return nil, fault.Type("dense features", "need at least one row and one column")
	}
	if len(data) != r*c {
		return nil, fault.Type("dense features", "have "+strconv.Itoa(len(data))+" values for "+
			strconv.Itoa(r)+"x"+strconv.Itoa(c))
	}
	return &Dense{m: mat.NewDense(r, c, data), rows: subset.New(r)}, nil
}

// FromRows copies equally long rows into a new matrix.
func FromRows(rows [][]float64) (*Dense, error) {
	if len(rows) == 0 {
		return nil, fault.Type("dense features", "no rows")
	}
	var c = len(rows[0])
	var data = make([]float64, 0, len(rows)*c)
	for i, row := range rows {
		if len(row) != c {
			return nil, fault.Type("dense features", "row "+strconv.Itoa(i)+" has "+strconv.Itoa(len(row))+
				" columns, want "+strconv.Itoa(c))
		}
		data = append(data, row...)
	}
	return NewDense(len(rows), c, data)
}

// NumVectors reports the number of visible rows.
func (d *Dense) NumVectors() int {
	return d.rows.Len()
}

// Dim reports the number of columns.
func (d *Dense) Dim() int {
	_, c := d.m.Dims()
	return c
}

// PushSubset narrows the visible rows.
func (d *Dense) PushSubset(indices []int) error {
	return d.rows.Push(indices)
}

// PopSubset restores the rows visible before the last PushSubset.
func (d *Dense) PopSubset() error {
	return d.rows.Pop()
}

// SubsetDepth reports the number of pushed subsets.
func (d *Dense) SubsetDepth() int {
	return d.rows.Depth()
}

func (d *Dense) raw(row int) []float64 {
	return d.m.RawRowView(d.rows.Index(row))
}

// Dot returns the dot product of a visible row with w.
func (d *Dense) Dot(row int, w []float64) float64 {
	return dot(d.raw(row), w)
}

// AddScaled adds alpha times a visible row to dst.
func (d *Dense) AddScaled(row int, alpha float64, dst []float64) {
	floats.AddScaled(dst, alpha, d.raw(row))
}

// Row copies a visible row into dst.
func (d *Dense) Row(row int, dst []float64) []float64 {
	if cap(dst) < d.Dim() {
		dst = make([]float64, d.Dim())
	}
	dst = dst[:d.Dim()]
	copy(dst, d.raw(row))
	return dst
}

// Key folds a visible row into a 32 bit key.
func (d *Dense) Key(row int) uint32 {
	return hash.Floats(d.raw(row))
}
