package parallel

import "sync"

// ForEach executes a for loop with a limited number of concurrent goroutines.
// Each goroutine processes one integer, from 0 to length.
func ForEach(length, limit int, body func(i int)) {
	_ = ForEachErr(length, limit, func(i int) error {
		body(i)
		return nil
	})
}

// ForEachErr is ForEach for bodies that can fail. Every index still runs;
// the error of the lowest failing index is returned.
func ForEachErr(length, limit int, body func(i int) error) error {
	if limit <= 0 {
		limit = 1
	}
	if length <= 0 {
		return nil
	}

	var (
		sem   = make(chan struct{}, limit)
		wg    sync.WaitGroup
		mut   sync.Mutex
		first = length
		err   error
	)
	wg.Add(length)

	for i := 0; i < length; i++ {
		sem <- struct{}{}
		go func(i int) {
			defer wg.Done()
			defer func() { <-sem }()

			if e := body(i); e != nil {
				mut.Lock()
				if i < first {
					first, err = i, e
				}
				mut.Unlock()
			}
		}(i)
	}

	wg.Wait()
	return err
}
