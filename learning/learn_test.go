package learning

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neurlang/multiclass/datasets"
	"github.com/neurlang/multiclass/hash"
)

func isPrime(n uint32) bool {
	if n < 2 {
		return false
	}
	for d := uint32(2); d*d <= n; d++ {
		if n%d == 0 {
			return false
		}
	}
	return true
}

func TestNextPrime(t *testing.T) {
	for n, want := range map[uint64]uint32{0: 2, 2: 2, 8: 11, 90: 97, 7919: 7919} {
		assert.Equal(t, want, NextPrime(n), "NextPrime(%d)", n)
	}
}

func randomSplit(r *rand.Rand, n int) datasets.SplittedDataset {
	var d datasets.Dataset
	d.Init()
	for len(d) < n {
		d[r.Uint32()] = r.Intn(2) == 0
	}
	return datasets.SplitDataset(d)
}

func TestSolve_Separates(t *testing.T) {
	r := rand.New(rand.NewSource(5))
	for _, n := range []int{1, 2, 17, 200} {
		sd := randomSplit(r, n)
		h := HyperParameters{Threads: 4, DeadlineRetry: 4}

		sol, err := h.Solve(sd)
		require.NoError(t, err, "n=%d", n)
		assert.True(t, isPrime(sol[1]), "modulo %d", sol[1])

		var buckets = map[uint32]struct{}{}
		for k := range sd[0] {
			buckets[hash.Hash(k, sol[0], sol[1])] = struct{}{}
		}
		for k := range sd[1] {
			_, clash := buckets[hash.Hash(k, sol[0], sol[1])]
			assert.False(t, clash, "n=%d key %d shares a bucket with the other class", n, k)
		}
		assert.LessOrEqual(t, uint64(sol[1]), uint64(NextPrime(h.initialModulo(n))))
	}
}

func TestSolve_OneClassShrinksToSmallestModulo(t *testing.T) {
	var d datasets.Dataset
	d.Init()
	for k := uint32(0); k < 50; k++ {
		d[k] = true
	}
	var h HyperParameters
	sol, err := h.Solve(datasets.SplitDataset(d))
	require.NoError(t, err)
	assert.Equal(t, uint32(2), sol[1])
}

func TestSolve_NoSolution(t *testing.T) {
	sd := datasets.SplittedDataset{
		{5: {}, 6: {}},
		{5: {}},
	}
	h := HyperParameters{SaltLimit: 16, DeadlineRetry: 2}
	_, err := h.Solve(sd)
	assert.ErrorIs(t, err, ErrNoSolution)
}

func TestReduce_SaltLimit(t *testing.T) {
	alphabet := [2][]uint32{{1, 2, 3, 4}, {5, 6, 7, 8}}
	h := HyperParameters{SaltLimit: 1, Threads: 2}
	// modulo 1 puts everything into bucket 0
	_, ok := h.Reduce(1, &alphabet)
	assert.False(t, ok)
}
