// Copyright 2026 The go-kernels Authors. SPDX-License-Identifier: Apache-2.0

// Package taskgroup provides a structured fork-join primitive for recursive
// task decomposition. A group of independent sub-computations is spawned
// together and joined together: the caller resumes only after every
// sub-computation has completed, so phases with data dependencies (sort
// before merge, quarter merge before half merge) are ordered by construction.
//
// Usage:
//
//	taskgroup.Do(
//	    func() { sortQuarter(0) },
//	    func() { sortQuarter(1) },
//	    func() { sortQuarter(2) },
//	    func() { sortQuarter(3) },
//	)
//	// all four quarters are sorted here
package taskgroup

import "golang.org/x/sync/errgroup"

// Group is a fork-join barrier over a set of spawned functions.
// The zero value is ready to use. A Group must not be reused after Wait.
type Group struct {
	eg errgroup.Group
}

// Go spawns fn on its own goroutine.
func (g *Group) Go(fn func()) {
	g.eg.Go(func() error {
		fn()
		return nil
	})
}

// Wait blocks until every function spawned with Go has returned.
func (g *Group) Wait() {
	// Spawned functions cannot fail; the error is always nil.
	_ = g.eg.Wait()
}

// Do runs the given functions as one fork-join group and returns when all of
// them have completed. All but the last run on their own goroutines; the last
// runs inline on the calling goroutine, so a group of one spawns nothing.
func Do(fns ...func()) {
	if len(fns) == 0 {
		return
	}

	var g Group
	for _, fn := range fns[:len(fns)-1] {
		g.Go(fn)
	}
	fns[len(fns)-1]()
	g.Wait()
}
