// package parallel contains parallel LoopUntil() and parallel ForEach() used by training and inference.
package parallel

import (
	"math"
	"sync"
	"sync/atomic"
)

// LoopStopper is an interface to check if the loop should stop.
type LoopStopper interface {

	// Load reports true if the loop should stop.
	Load() bool
}

// Loop represents the number of goroutines to run.
type Loop int

// LoopUntil starts 'l' goroutines that iterate until one of them stops the loop.
// Each goroutine processes a unique integer i starting from 0.
// The loop stops if i reaches math.MaxUint32 or any goroutine's yield returns true.
// It returns how many values of i were handed out.
func (l Loop) LoopUntil(yield func(i uint32, ender LoopStopper) bool) uint32 {
	var (
		i     atomic.Uint32
		ender atomic.Bool
		wg    sync.WaitGroup
	)
	if l < 1 {
		l = 1
	}

	for n := 0; n < int(l); n++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for !ender.Load() {
				newI := i.Add(1)
				if newI == math.MaxUint32 {
					ender.Store(true)
					return
				}
				if yield(newI-1, &ender) {
					ender.Store(true)
					return
				}
			}
		}()
	}

	wg.Wait()
	return i.Load()
}
