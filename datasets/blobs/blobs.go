// Package blobs generates Gaussian clusters, one per class.
//
// Cluster centers sit on a circle in the first two dimensions, so every class
// is linearly separable from the rest when the spread is small against the
// radius.
package blobs

import (
	"math"
	"math/rand"

	"github.com/neurlang/multiclass/datasets"
)

// Config describes a generated dataset.
type Config struct {
	Classes  int     // at least 2
	PerClass int     // samples per class
	Dim      int     // at least 2
	Radius   float64 // 0 means 10
	Spread   float64 // standard deviation, 0 means 1
	Seed     int64
}

// Generate draws the samples, class by class.
func Generate(c Config) (t datasets.Samples) {
	if c.Dim < 2 {
		c.Dim = 2
	}
	if c.Radius <= 0 {
		c.Radius = 10
	}
	if c.Spread <= 0 {
		c.Spread = 1
	}
	var r = rand.New(rand.NewSource(c.Seed))
	for class := 0; class < c.Classes; class++ {
		var center = Center(c, class)
		for i := 0; i < c.PerClass; i++ {
			var row = make([]float64, c.Dim)
			for j := range row {
				row[j] = center[j] + c.Spread*r.NormFloat64()
			}
			t.Rows = append(t.Rows, row)
			t.Classes = append(t.Classes, class)
		}
	}
	return
}

// Center returns the center of class.
func Center(c Config, class int) []float64 {
	var dim, radius = c.Dim, c.Radius
	if dim < 2 {
		dim = 2
	}
	if radius <= 0 {
		radius = 10
	}
	var angle = 2 * math.Pi * float64(class) / float64(c.Classes)
	var center = make([]float64, dim)
	center[0] = radius * math.Cos(angle)
	center[1] = radius * math.Sin(angle)
	return center
}
