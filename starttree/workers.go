// SPDX-License-Identifier: MIT
package starttree

import (
	"runtime"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// workerCount is the process-wide worker setting; 0 means "use the default".
// Concurrent constructions requesting different counts race on it; each
// construction reads it once when it starts.
var workerCount atomic.Int64

// MaxWorkers is the platform maximum for SetWorkerCount.
func MaxWorkers() int { return runtime.NumCPU() }

// WorkerCount returns the effective worker count: the last accepted
// SetWorkerCount value, or GOMAXPROCS when none was set.
func WorkerCount() int {
	if n := workerCount.Load(); n > 0 {
		return int(n)
	}

	return runtime.GOMAXPROCS(0)
}

// SetWorkerCount sets the process-wide worker count when 0 < n ≤ MaxWorkers()
// and reports whether the value was accepted. Other values leave it unchanged.
func SetWorkerCount(n int) bool {
	if n <= 0 || n > MaxWorkers() {
		return false
	}
	workerCount.Store(int64(n))

	return true
}

// ResetWorkerCount restores the default (GOMAXPROCS) worker count.
func ResetWorkerCount() { workerCount.Store(0) }

// forChunks splits [0,n) into at most workers contiguous chunks and runs fn
// on each, concurrently when workers > 1. Chunk c covers [lo,hi); chunks are
// numbered in ascending index order so callers can reduce deterministically.
func forChunks(n, workers int, fn func(c, lo, hi int)) int {
	if workers > n {
		workers = n
	}
	if workers <= 1 {
		fn(0, 0, n)
		return 1
	}
	size := (n + workers - 1) / workers
	chunks := (n + size - 1) / size

	var g errgroup.Group
	g.SetLimit(workers)
	for c := 0; c < chunks; c++ {
		c := c
		lo, hi := c*size, min((c+1)*size, n)
		g.Go(func() error {
			fn(c, lo, hi)
			return nil
		})
	}
	_ = g.Wait() // fn never fails

	return chunks
}
