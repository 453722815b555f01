// Copyright 2026 go-kernels Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package multisort

import (
	"fmt"
	"math/bits"
)

// Policy selects how the recursion decides to spawn tasks.
type Policy int

const (
	// PolicySize spawns a task at every decomposition point; fan-out is
	// bounded only by the size thresholds.
	PolicySize Policy = iota

	// PolicyDepth additionally stops spawning tasks once the recursion is
	// Cutoff levels deep. Deeper calls still decompose by size, but run
	// inline on the calling goroutine.
	PolicyDepth
)

// Config holds the decomposition parameters for one Sort invocation. It is
// immutable for the whole call and is threaded explicitly through the
// recursion; the package keeps no global state.
type Config struct {
	// MinSortSize is the sequential-sort threshold: a range of fewer than
	// 4*MinSortSize elements is sorted in place by the base-case sort.
	// Must be a power of two.
	MinSortSize int

	// MinMergeSize is the sequential-merge threshold: a destination range
	// of fewer than 2*MinMergeSize elements is merged by the base-case
	// merge. Must be a power of two.
	MinMergeSize int

	// Policy selects size-only (PolicySize) or depth-bounded (PolicyDepth)
	// task spawning.
	Policy Policy

	// Cutoff is the recursion level past which PolicyDepth stops spawning
	// tasks. Ignored under PolicySize.
	Cutoff int
}

// Validate reports the first configuration error, or nil. Sort calls it
// before doing any work; after it passes, the recursion trusts its
// invariants (sub-range sizes stay powers of two by construction).
func (c Config) Validate() error {
	if c.MinSortSize <= 0 || !isPowerOfTwo(c.MinSortSize) {
		return fmt.Errorf("multisort: MinSortSize %d is not a positive power of two", c.MinSortSize)
	}
	if c.MinMergeSize <= 0 || !isPowerOfTwo(c.MinMergeSize) {
		return fmt.Errorf("multisort: MinMergeSize %d is not a positive power of two", c.MinMergeSize)
	}
	switch c.Policy {
	case PolicySize:
	case PolicyDepth:
		if c.Cutoff < 0 {
			return fmt.Errorf("multisort: Cutoff %d is negative", c.Cutoff)
		}
	default:
		return fmt.Errorf("multisort: unknown policy %d", c.Policy)
	}
	return nil
}

// spawn reports whether a decomposition at the given recursion depth may
// create tasks, per the configured policy.
func (c *Config) spawn(depth int) bool {
	return c.Policy != PolicyDepth || depth < c.Cutoff
}

func isPowerOfTwo(n int) bool {
	return n > 0 && bits.OnesCount(uint(n)) == 1
}
