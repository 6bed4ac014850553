package squareroot

import (
	"math"

	"github.com/neurlang/multiclass/datasets"
)

type Sample uint32

func (s Sample) Feature() float64 {
	return float64(s)
}

func (s Sample) Output() int {
	return int(math.Sqrt(float64(s)))
}

// Output bits of each size: Small has 1<<SmallClasses classes and so on.
const TinyClasses = 3
const SmallClasses = 4
const MediumClasses = 5
const BigClasses = 6
const HugeClasses = 7

func Tiny() []Sample {
	return upTo(1 << 6)
}

func Small() []Sample {
	return upTo(1 << 8)
}

func Medium() []Sample {
	return upTo(1 << 10)
}

func Big() []Sample {
	return upTo(1 << 12)
}

func Huge() []Sample {
	return upTo(1 << 14)
}

// Size returns the samples of a named size, nil for an unknown name.
func Size(name string) []Sample {
	switch name {
	case "tiny":
		return Tiny()
	case "small":
		return Small()
	case "medium":
		return Medium()
	case "big":
		return Big()
	case "huge":
		return Huge()
	}
	return nil
}

func upTo(n uint32) (ret []Sample) {
	for i := uint32(0); i < n; i++ {
		ret = append(ret, Sample(i))
	}
	return
}

// Table lays the samples out as one feature column and their square root class.
func Table(samples []Sample) (t datasets.Samples) {
	for _, s := range samples {
		t.Rows = append(t.Rows, []float64{s.Feature()})
		t.Classes = append(t.Classes, s.Output())
	}
	return
}
