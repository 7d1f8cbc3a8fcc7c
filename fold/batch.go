package fold

import (
	"errors"
	"runtime"
	"sync"
)

// FoldBatch folds each sequence independently across a pool of workers
// and returns the results in input order.
//
// Folds share no mutable state — each call owns its matrices for the
// call's duration and a sequence's fill always completes before its own
// traceback — so distributing whole sequences over goroutines is safe and
// deterministic. workers ≤ 0 uses GOMAXPROCS; the pool never exceeds
// len(seqs).
//
// Per-sequence errors do not stop the batch: every sequence is attempted,
// failed slots keep their partial Result, and the joined error (matching
// errors.Is for the underlying sentinels) reports all failures.
func FoldBatch(seqs []string, opts *Options, workers int) ([]Result, error) {
	if len(seqs) == 0 {
		return nil, nil
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > len(seqs) {
		workers = len(seqs)
	}

	results := make([]Result, len(seqs))
	errs := make([]error, len(seqs))

	jobs := make(chan int)
	go func() {
		for i := range seqs {
			jobs <- i
		}
		close(jobs)
	}()

	var wg sync.WaitGroup
	wg.Add(workers)
	for wkr := 0; wkr < workers; wkr++ {
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i], errs[i] = Fold(seqs[i], opts)
			}
		}()
	}
	wg.Wait()

	return results, errors.Join(errs...)
}
