package strategy

import (
	"math"
	"math/rand"
)

// Encoder builds an ECOC code matrix: one row per machine, one column per
// class, entries +1, -1 or 0 (class left out of that machine).
type Encoder interface {
	Encode(numClasses int) [][]int8
}

// ECOC trains one machine per code matrix row and decodes by Hamming distance.
type ECOC struct {
	base

	Encoder Encoder

	codes [][]int8
}

// NewECOC returns an error correcting output codes strategy.
func NewECOC(e Encoder) *ECOC {
	return &ECOC{Encoder: e}
}

// SetNumClasses sets the number of classes and encodes them.
func (s *ECOC) SetNumClasses(n int) {
	s.base.SetNumClasses(n)
	s.codes = s.Encoder.Encode(n)
}

// Codes returns the code matrix.
func (s *ECOC) Codes() [][]int8 {
	return s.codes
}

// NumMachines is the code length.
func (s *ECOC) NumMachines() int {
	return len(s.codes)
}

// TrainHasMore reports whether a code row is left to train.
func (s *ECOC) TrainHasMore() bool {
	return s.iter < s.NumMachines()
}

// TrainPrepareNext labels rows by the current code row. Rows of classes coded 0
// are left out through the returned subset. When every row is left out the
// subset is empty, so the round trains on every row, all of them labeled -1.
func (s *ECOC) TrainPrepareNext() []int {
	var code = s.codes[s.iter]
	var subset []int
	var sparse bool
	for i := 0; i < s.orig.NumLabels(); i++ {
		var c = code[s.orig.Label(i)]
		if c == 0 {
			sparse = true
			continue
		}
		subset = append(subset, i)
		s.train.Set(i, c > 0)
	}
	s.iter++
	if !sparse {
		return nil
	}
	if len(subset) == 0 {
		allNegative(s.train)
	}
	return subset
}

// Decide picks the class whose code is closest to the output signs,
// ignoring the machines that left the class out.
func (s *ECOC) Decide(outputs []float64) int {
	var dist = make([]float64, s.numClasses)
	for m, code := range s.codes {
		if m >= len(outputs) {
			break
		}
		for c := range dist {
			if code[c] != 0 && (outputs[m] > 0) != (code[c] > 0) {
				dist[c]--
			}
		}
	}
	return argmax(dist)
}

// defaultLength is about 10*log2(n) machines
func defaultLength(n int) int {
	if n < 2 {
		return 1
	}
	return int(math.Ceil(10 * math.Log2(float64(n))))
}

// RandomDense draws Tries dense ±1 code matrices and keeps the one whose
// closest pair of class codes is furthest apart.
type RandomDense struct {
	Length int // code length, 0 means about 10*log2(classes)
	Tries  int
	Seed   int64
}

// Encode implements Encoder.
func (e RandomDense) Encode(n int) [][]int8 {
	return drawCodes(n, e.Length, e.Tries, e.Seed, func(r *rand.Rand) int8 {
		if r.Intn(2) == 0 {
			return -1
		}
		return 1
	})
}

// RandomSparse is RandomDense with half of the entries 0.
type RandomSparse struct {
	Length int // code length, 0 means about 10*log2(classes)
	Tries  int
	Seed   int64
}

// Encode implements Encoder.
func (e RandomSparse) Encode(n int) [][]int8 {
	return drawCodes(n, e.Length, e.Tries, e.Seed, func(r *rand.Rand) int8 {
		switch r.Intn(4) {
		case 0:
			return -1
		case 1:
			return 1
		}
		return 0
	})
}

func drawCodes(n, length, tries int, seed int64, draw func(*rand.Rand) int8) (best [][]int8) {
	if length <= 0 {
		length = defaultLength(n)
	}
	if tries <= 0 {
		tries = 1
	}
	var r = rand.New(rand.NewSource(seed))
	var bestDist = -1
	for t := 0; t < tries; t++ {
		var codes = make([][]int8, length)
		for m := range codes {
			codes[m] = drawRow(r, n, draw)
		}
		if d := minDistance(codes, n); d > bestDist {
			best, bestDist = codes, d
		}
	}
	return
}

// drawRow redraws until the row has both a +1 and a -1, when that is possible
func drawRow(r *rand.Rand, n int, draw func(*rand.Rand) int8) []int8 {
	var row = make([]int8, n)
	for {
		var pos, neg bool
		for c := range row {
			row[c] = draw(r)
			pos = pos || row[c] > 0
			neg = neg || row[c] < 0
		}
		if (pos && neg) || n < 2 {
			return row
		}
	}
}

// minDistance is the smallest number of differing entries between two class codes
func minDistance(codes [][]int8, n int) int {
	var min = len(codes)
	for a := 0; a < n; a++ {
		for b := a + 1; b < n; b++ {
			var d int
			for _, row := range codes {
				if row[a] != row[b] {
					d++
				}
			}
			if d < min {
				min = d
			}
		}
	}
	return min
}
