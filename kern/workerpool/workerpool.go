// Copyright 2026 The go-kernels Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool provides a persistent worker pool for the loop-parallel
// kernels (grid sweeps, per-row pixel iteration). The pool is created once
// and reused across iterations, so an iterative solver that performs
// thousands of sweeps does not pay goroutine spawn and channel allocation
// costs on every step.
//
// Usage:
//
//	pool := workerpool.New(runtime.GOMAXPROCS(0))
//	defer pool.Close()
//
//	for it := 0; it < maxIter; it++ {
//	    pool.ParallelFor(rows, func(start, end int) {
//	        sweepRows(start, end)
//	    })
//	}
package workerpool

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a persistent set of worker goroutines. All Parallel* methods block
// until the submitted work completes, so a Pool doubles as a fork-join
// barrier for one loop nest at a time.
type Pool struct {
	numWorkers int
	tasks      chan func()
	closeOnce  sync.Once
	closed     atomic.Bool
}

// New creates a pool with the given number of workers, which are spawned
// immediately and persist until Close. If numWorkers <= 0, GOMAXPROCS is
// used.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{
		numWorkers: numWorkers,
		tasks:      make(chan func(), numWorkers),
	}
	for i := 0; i < numWorkers; i++ {
		go func() {
			for task := range p.tasks {
				task()
			}
		}()
	}
	return p
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Close shuts the pool down. Work already submitted still completes.
// Close is idempotent; Parallel* calls on a closed pool run sequentially
// on the calling goroutine.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		close(p.tasks)
	})
}

// dispatch submits one task per worker and blocks until all return.
func (p *Pool) dispatch(workers int, task func(worker int)) {
	var barrier sync.WaitGroup
	barrier.Add(workers)
	for w := 0; w < workers; w++ {
		w := w
		p.tasks <- func() {
			defer barrier.Done()
			task(w)
		}
	}
	barrier.Wait()
}

// ParallelFor executes fn over [0, n) split into one contiguous chunk per
// worker, and blocks until all chunks complete. fn receives half-open
// (start, end) bounds. Chunking is static, so it suits uniform work such as
// stencil sweeps.
func (p *Pool) ParallelFor(n int, fn func(start, end int)) {
	workers := p.sizeFor(n)
	if workers <= 1 {
		if n > 0 {
			fn(0, n)
		}
		return
	}

	chunk := (n + workers - 1) / workers
	p.dispatch(workers, func(worker int) {
		start := worker * chunk
		if start >= n {
			return
		}
		fn(start, min(start+chunk, n))
	})
}

// ParallelForAtomic executes fn once per index in [0, n), with workers
// claiming indices one at a time from a shared atomic counter. This balances
// load when per-item cost varies wildly, such as escape-time iteration where
// neighboring points diverge after very different iteration counts.
func (p *Pool) ParallelForAtomic(n int, fn func(i int)) {
	workers := p.sizeFor(n)
	if workers <= 1 {
		for i := 0; i < n; i++ {
			fn(i)
		}
		return
	}

	var next atomic.Int64
	p.dispatch(workers, func(int) {
		for {
			i := int(next.Add(1)) - 1
			if i >= n {
				return
			}
			fn(i)
		}
	})
}

// ParallelForAtomicBatched executes fn over [0, n) in batches of batchSize
// indices claimed from a shared atomic counter. It keeps the load balancing
// of ParallelForAtomic while amortizing the counter traffic, which matters
// when individual items are cheap (single image rows).
func (p *Pool) ParallelForAtomicBatched(n, batchSize int, fn func(start, end int)) {
	if batchSize <= 0 {
		batchSize = 1
	}
	batches := (n + batchSize - 1) / batchSize

	workers := p.sizeFor(batches)
	if workers <= 1 {
		if n > 0 {
			fn(0, n)
		}
		return
	}

	var next atomic.Int64
	p.dispatch(workers, func(int) {
		for {
			start := (int(next.Add(1)) - 1) * batchSize
			if start >= n {
				return
			}
			fn(start, min(start+batchSize, n))
		}
	})
}

// sizeFor reports how many workers to use for n items; 1 or less means run
// sequentially on the caller.
func (p *Pool) sizeFor(n int) int {
	if n <= 0 || p == nil || p.closed.Load() {
		return 1
	}
	return min(p.numWorkers, n)
}
