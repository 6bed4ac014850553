package multiclass

import (
	"strconv"

	"github.com/neurlang/multiclass/fault"
	"github.com/neurlang/multiclass/features"
	"github.com/neurlang/multiclass/parallel"
	"github.com/neurlang/multiclass/strategy"
)

// Apply predicts a class for every visible row of data. A nil data predicts the
// bound features; otherwise data becomes the bound features.
func (m *Machine) Apply(data features.Features) ([]int, error) {
	const op = "multiclass apply"
	if data != nil {
		if err := m.BindFeatures(data); err != nil {
			return nil, err
		}
	}
	if !m.IsReady() {
		return nil, fault.Configuration(op, "no features")
	}
	dec, ok := m.strategy.(strategy.Decider)
	if !ok {
		return nil, fault.Configuration(op, "strategy cannot decide")
	}
	subs := m.registry.Machines()
	if len(subs) == 0 {
		return nil, fault.Configuration(op, "not trained")
	}
	if len(subs) != dec.NumMachines() {
		return nil, fault.Invariant(op, strconv.Itoa(len(subs))+" submodels for "+strconv.Itoa(dec.NumMachines())+" decisions")
	}

	outs := make([][]float64, len(subs))
	err := parallel.ForEachErr(len(subs), m.threads, func(k int) (err error) {
		outs[k], err = subs[k].Apply(m.features)
		return err
	})
	if err != nil {
		return nil, err
	}

	n := m.features.NumVectors()
	for k := range outs {
		if len(outs[k]) != n {
			return nil, fault.Invariant(op, "submodel "+strconv.Itoa(k)+" scored "+strconv.Itoa(len(outs[k]))+" rows")
		}
	}
	var pred = make([]int, n)
	var row = make([]float64, len(subs))
	for i := range pred {
		for k := range outs {
			row[k] = outs[k][i]
		}
		pred[i] = dec.Decide(row)
	}
	return pred, nil
}
