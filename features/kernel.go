package features

import "gonum.org/v1/gonum/floats"

// dot is the kernel behind Dense.Dot, replaced at init on capable CPUs
var dot func(x, y []float64) float64 = floats.Dot

var kernel = "gonum"

// Kernel names the dot product kernel selected for this CPU.
func Kernel() string {
	return kernel
}

// dotUnrolled keeps four independent sums so the multiplies overlap
func dotUnrolled(x, y []float64) float64 {
	if len(x) != len(y) {
		panic("features: slice length mismatch")
	}
	var s0, s1, s2, s3 float64
	var n = len(x) &^ 3
	for i := 0; i < n; i += 4 {
		s0 += x[i] * y[i]
		s1 += x[i+1] * y[i+1]
		s2 += x[i+2] * y[i+2]
		s3 += x[i+3] * y[i+3]
	}
	for i := n; i < len(x); i++ {
		s0 += x[i] * y[i]
	}
	return (s0 + s1) + (s2 + s3)
}
