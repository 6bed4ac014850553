// Package linear implements linear binary machines over dot product features.
package linear

import (
	"strconv"

	"github.com/neurlang/multiclass/features"
	"github.com/neurlang/multiclass/fault"
	"github.com/neurlang/multiclass/labels"
)

// Model is the learned hyperplane shared by the linear machines.
type Model struct {
	W    []float64
	Bias float64
}

// Apply returns w·x+bias for every visible row.
func (m *Model) Apply(f features.Features) ([]float64, error) {
	if m.W == nil {
		return nil, fault.Configuration("linear apply", "model not trained")
	}
	d, err := dotFeatures("linear apply", f, len(m.W))
	if err != nil {
		return nil, err
	}
	var out = make([]float64, d.NumVectors())
	for i := range out {
		out[i] = d.Dot(i, m.W) + m.Bias
	}
	return out, nil
}

func (m *Model) clone() Model {
	return Model{W: append([]float64(nil), m.W...), Bias: m.Bias}
}

func dotFeatures(op string, f features.Features, dim int) (features.DotFeatures, error) {
	d, ok := features.AsDot(f)
	if !ok {
		return nil, fault.Type(op, "features not dot-product compatible")
	}
	if dim >= 0 && d.Dim() != dim {
		return nil, fault.Type(op, "features have "+strconv.Itoa(d.Dim())+" columns, model "+strconv.Itoa(dim))
	}
	return d, nil
}

func checkRows(op string, f features.Features, y *labels.Binary) error {
	if y == nil {
		return fault.Configuration(op, "no labels")
	}
	if f.NumVectors() != y.NumLabels() {
		return fault.Type(op, strconv.Itoa(f.NumVectors())+" rows but "+strconv.Itoa(y.NumLabels())+" labels")
	}
	return nil
}
