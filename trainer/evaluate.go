package trainer

import (
	"math"
	"math/rand"
)

// sampleSize calculates the statistically sufficient sample size
// for a given dataset size N and significance level (0–100).
func sampleSize(N int, significance byte) int {
	if N <= 1 {
		return N
	}

	z := zScoreFromAlpha(100 - significance)

	// Assume worst-case proportion p = 0.5 for max variability
	p := 0.5
	e := float64(100-significance) * 0.01

	ss := math.Pow(z, 2) * p * (1 - p) / math.Pow(e, 2)

	// finite population correction
	correctedSS := ss * float64(N) / (float64(N) - 1 + ss)

	if int(correctedSS) > N {
		return N
	}
	if correctedSS < 1 {
		return 1
	}
	return int(correctedSS)
}

// zScoreFromAlpha returns the Z-score for a given alpha level
// Common: 90% => 1.645, 95% => 1.96, 99% => 2.576
func zScoreFromAlpha(alpha byte) float64 {
	switch {
	case alpha <= 1:
		return 2.576
	case alpha <= 5:
		return 1.96
	case alpha <= 10:
		return 1.645
	default:
		return 1.96
	}
}

// Evaluate returns the percentage of rows where pred matches truth, and the
// number of rows compared. A non zero significance compares only a random
// sample large enough for that confidence.
func Evaluate(pred, truth []int, significance byte, seed int64) (accuracy float64, evaluated int) {
	var n = len(truth)
	if len(pred) < n {
		n = len(pred)
	}
	if n == 0 {
		return 0, 0
	}
	var rows []int
	if significance > 0 {
		rows = rand.New(rand.NewSource(seed)).Perm(n)[:sampleSize(n, significance)]
	} else {
		rows = make([]int, n)
		for i := range rows {
			rows[i] = i
		}
	}
	var success int
	for _, i := range rows {
		if pred[i] == truth[i] {
			success++
		}
	}
	return 100 * float64(success) / float64(len(rows)), len(rows)
}
