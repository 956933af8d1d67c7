// Package kernel provides the data-parallel worker pool spec.md §5 calls for:
// a kernel "launch" partitions an index range across a fixed pool of
// goroutines, one per worker slab, synchronized by a sync.WaitGroup — the Go
// stand-in for "the target platform's data-parallel primitive (thread per
// index)". No example repo in this codebase's lineage ships a dedicated
// worker-pool library for this; goroutines plus sync.WaitGroup is the
// idiomatic standard-library primitive for it, the same pattern gnark's
// PLONK prover uses for its parallel polynomial passes.
package kernel

import (
	"runtime"
	"sync"
)

// Workers returns the default worker count for a kernel launch.
func Workers() int {
	n := runtime.NumCPU()
	if n < 1 {
		return 1
	}
	return n
}

// Launch partitions [0, n) into contiguous slabs, one per worker, and runs
// body(x) for every index, blocking until all workers finish.
func Launch(n, workers int, body func(x int)) {
	if workers < 1 {
		workers = 1
	}
	if workers > n {
		workers = n
	}
	if n <= 0 {
		return
	}

	var wg sync.WaitGroup
	chunk := (n + workers - 1) / workers
	for w := 0; w < workers; w++ {
		start := w * chunk
		if start >= n {
			break
		}
		end := start + chunk
		if end > n {
			end = n
		}
		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			for x := s; x < e; x++ {
				body(x)
			}
		}(start, end)
	}
	wg.Wait()
}

// Reduce partitions [0, n) the same way Launch does, accumulates a per-worker
// partial sum from body(x), and combines the partials in worker-index order.
// The combine order is fixed regardless of goroutine scheduling, so the
// result is deterministic for a given (n, workers) pair, per spec.md §5's
// reduction-determinism requirement.
func Reduce(n, workers int, body func(x int) float64) float64 {
	if workers < 1 {
		workers = 1
	}
	if workers > n && n > 0 {
		workers = n
	}
	if n <= 0 {
		return 0
	}

	partials := make([]float64, workers)
	var wg sync.WaitGroup
	chunk := (n + workers - 1) / workers
	for w := 0; w < workers; w++ {
		start := w * chunk
		if start >= n {
			break
		}
		end := start + chunk
		if end > n {
			end = n
		}
		wg.Add(1)
		go func(widx, s, e int) {
			defer wg.Done()
			var sum float64
			for x := s; x < e; x++ {
				sum += body(x)
			}
			partials[widx] = sum
		}(w, start, end)
	}
	wg.Wait()

	var total float64
	for _, p := range partials {
		total += p
	}
	return total
}
