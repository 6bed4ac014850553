// Package Learning implements the learning stage of the hashtron learner
package learning

import "errors"
import "math/rand"
import "sync"

import "github.com/jbarham/primegen"

import "github.com/neurlang/multiclass/datasets"
import "github.com/neurlang/multiclass/hash"
import "github.com/neurlang/multiclass/parallel"

// ErrNoSolution is returned when no salt separates the sets at any tried modulo
var ErrNoSolution = errors.New("learning: no separating salt found")

const maxModulo = 1 << 31

// NextPrime returns the smallest prime at least n
func NextPrime(n uint64) uint32 {
	if n > maxModulo {
		n = maxModulo
	}
	var pg = primegen.New()
	pg.SkipTo(n)
	for {
		var p = pg.Next()
		if p >= n {
			return uint32(p)
		}
	}
}

func (h *HyperParameters) initialModulo(keys int) uint64 {
	var factor = uint64(h.Factor)
	if factor == 0 {
		factor = 1
	}
	var n = uint64(keys) * uint64(keys) / factor
	if n < 2*uint64(keys) {
		n = 2 * uint64(keys)
	}
	if n < 2 {
		n = 2
	}
	return n
}

func (h *HyperParameters) reduced(max uint32) uint64 {
	var num, den = uint64(h.Numerator), uint64(h.Denominator)
	if num == 0 || den == 0 {
		num, den = 1, 2
	}
	var next = uint64(max) * num / den
	if next <= uint64(h.Subtractor) {
		return 0
	}
	return next - uint64(h.Subtractor)
}

// Solve finds a salt and a prime modulo which hash the true set and the false
// set into disjoint buckets. Starting from a collision free modulo it keeps
// reducing the modulo while a separating salt still exists, and returns the
// smallest one found as {salt, modulo}.
func (h *HyperParameters) Solve(d datasets.SplittedDataset) (sol [2]uint32, err error) {
	var alphabet = [2][]uint32{
		make([]uint32, 0, len(d[0])),
		make([]uint32, 0, len(d[1])),
	}
	for v := range d[0] {
		alphabet[0] = append(alphabet[0], v)
	}
	for v := range d[1] {
		alphabet[1] = append(alphabet[1], v)
	}

	var log = h.logger()
	var max = NextPrime(h.initialModulo(d.Len()))
	var found bool
	for retry := 0; ; {
		if s, ok := h.Reduce(max, &alphabet); ok {
			sol, found = [2]uint32{s, max}, true
			log.Debug("modulo separates", "modulo", max, "salt", s, "keys", d.Len())

			var next = h.reduced(max)
			if next < 2 {
				return sol, nil
			}
			var p = NextPrime(next)
			if p >= max {
				return sol, nil
			}
			max = p
			continue
		}
		if found {
			return sol, nil
		}
		retry++
		if retry > h.DeadlineRetry || max >= maxModulo {
			return sol, ErrNoSolution
		}
		log.Debug("modulo too small, growing", "modulo", max, "retry", retry)
		max = NextPrime(2 * uint64(max))
	}
}

// Reduce searches for a salt hashing both alphabets into disjoint buckets
// modulo max. It tries at most SaltLimit salts on Threads goroutines.
func (h *HyperParameters) Reduce(max uint32, alphabet *[2][]uint32) (salt uint32, ok bool) {
	var limit = h.SaltLimit
	if limit == 0 {
		limit = 4096
	}
	var start uint32 = 1
	if h.Seed {
		start = rand.Uint32()
	}
	var mutex sync.Mutex
	parallel.Loop(h.Threads).LoopUntil(func(i uint32, ender parallel.LoopStopper) bool {
		if i >= limit {
			return true
		}
		var s = start + i
		if !disjoint(alphabet, s, max) {
			return false
		}
		mutex.Lock()
		if !ok || s-start < salt-start {
			salt, ok = s, true
		}
		mutex.Unlock()
		return true
	})
	return
}

func disjoint(alphabet *[2][]uint32, s, max uint32) bool {
	var set0 = make(map[uint32]struct{}, len(alphabet[0]))
	for _, v := range alphabet[0] {
		set0[hash.Hash(v, s, max)] = struct{}{}
	}
	for _, v := range alphabet[1] {
		if _, ok := set0[hash.Hash(v, s, max)]; ok {
			return false
		}
	}
	return true
}
