package linear

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/floats"

	"github.com/neurlang/multiclass/features"
	"github.com/neurlang/multiclass/labels"
	"github.com/neurlang/multiclass/machine"
)

// Logistic is logistic regression fitted by stochastic gradient descent.
// Its decision value is the log odds of the +1 label.
type Logistic struct {
	Model

	Epochs    int     // passes over the rows, 0 means 50
	LearnRate float64 // 0 means 0.1
	L2        float64 // weight decay
	Seed      int64   // row order shuffling
}

// NewLogistic returns a logistic regression with default settings.
func NewLogistic() *Logistic {
	return &Logistic{}
}

func sigmoid(z float64) float64 {
	return 1 / (1 + math.Exp(-z))
}

// Train fits the visible rows.
func (l *Logistic) Train(f features.Features, y *labels.Binary) error {
	d, err := dotFeatures("logistic train", f, -1)
	if err != nil {
		return err
	}
	if err := checkRows("logistic train", f, y); err != nil {
		return err
	}
	var epochs, rate = l.Epochs, l.LearnRate
	if epochs <= 0 {
		epochs = 50
	}
	if rate <= 0 {
		rate = 0.1
	}

	l.W = make([]float64, d.Dim())
	l.Bias = 0

	var r = rand.New(rand.NewSource(l.Seed))
	var order = r.Perm(d.NumVectors())
	for e := 0; e < epochs; e++ {
		r.Shuffle(len(order), func(i, j int) { order[i], order[j] = order[j], order[i] })
		for _, i := range order {
			var target float64
			if y.Positive(i) {
				target = 1
			}
			var g = sigmoid(d.Dot(i, l.W)+l.Bias) - target
			if l.L2 > 0 {
				floats.Scale(1-rate*l.L2, l.W)
			}
			d.AddScaled(i, -rate*g, l.W)
			l.Bias -= rate * g
		}
	}
	return nil
}

// Clone copies the weights and bias into a fresh logistic regression.
func (l *Logistic) Clone() machine.Machine {
	return &Logistic{Model: l.Model.clone()}
}
