// Package Hash implements the fast modular hash used by the hashtron learner
package hash

import "math"

// Hash mixes n with salt s and reduces the result into the range 0 to max-1
func Hash(n uint32, s uint32, max uint32) uint32 {
	// mixing stage, mix input with salt using subtraction
	var m = uint32(n) - uint32(s)

	// hashing stage, use xor shift with prime coefficients
	m ^= m << 2
	m ^= m << 3
	m ^= m >> 5
	m ^= m >> 7
	m ^= m << 11
	m ^= m << 13
	m ^= m >> 17
	m ^= m << 19

	// mixing stage 2, mix input with salt using addition
	m += s

	// modular stage, multiply shift instead of modulo
	// https://lemire.me/blog/2016/06/27/a-fast-alternative-to-the-modulo-reduction/
	return uint32((uint64(m) * uint64(max)) >> 32)
}

// Floats folds a feature row into a single key. Equal rows give equal keys,
// -0 and +0 are the same value.
func Floats(row []float64) (ret uint32) {
	for j, v := range row {
		if v == 0 {
			v = 0
		}
		var bits = math.Float64bits(v)
		ret = Hash(ret^uint32(bits), uint32(j), 0xFFFFFFFF)
		ret = Hash(ret^uint32(bits>>32), uint32(j)^0x9E3779B9, 0xFFFFFFFF)
	}
	return
}
