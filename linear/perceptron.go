package linear

import (
	"math/rand"

	"gonum.org/v1/gonum/floats"

	"github.com/neurlang/multiclass/features"
	"github.com/neurlang/multiclass/labels"
	"github.com/neurlang/multiclass/machine"
)

// Perceptron is an averaged perceptron.
type Perceptron struct {
	Model

	Epochs    int     // passes over the rows, 0 means 20
	LearnRate float64 // 0 means 1
	Seed      int64   // row order shuffling

	// averaging accumulators, training only
	sum     []float64
	sumBias float64
}

// NewPerceptron returns a perceptron with default settings.
func NewPerceptron() *Perceptron {
	return &Perceptron{}
}

// Train fits the visible rows. It stops early after an epoch without mistakes.
func (p *Perceptron) Train(f features.Features, y *labels.Binary) error {
	d, err := dotFeatures("perceptron train", f, -1)
	if err != nil {
		return err
	}
	if err := checkRows("perceptron train", f, y); err != nil {
		return err
	}
	var epochs, rate = p.Epochs, p.LearnRate
	if epochs <= 0 {
		epochs = 20
	}
	if rate <= 0 {
		rate = 1
	}

	p.W = make([]float64, d.Dim())
	p.Bias = 0
	p.sum = make([]float64, d.Dim())
	p.sumBias = 0

	var r = rand.New(rand.NewSource(p.Seed))
	var order = r.Perm(d.NumVectors())
	var c = 1.0
	for e := 0; e < epochs; e++ {
		r.Shuffle(len(order), func(i, j int) { order[i], order[j] = order[j], order[i] })
		var mistakes int
		for _, i := range order {
			var yi = y.Label(i)
			if yi*(d.Dot(i, p.W)+p.Bias) <= 0 {
				d.AddScaled(i, rate*yi, p.W)
				p.Bias += rate * yi
				d.AddScaled(i, c*rate*yi, p.sum)
				p.sumBias += c * rate * yi
				mistakes++
			}
			c++
		}
		if mistakes == 0 {
			break
		}
	}
	floats.AddScaled(p.W, -1/c, p.sum)
	p.Bias -= p.sumBias / c
	return nil
}

// Clone copies the weights and bias into a fresh perceptron.
func (p *Perceptron) Clone() machine.Machine {
	return &Perceptron{Model: p.Model.clone()}
}
