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

	"github.com/ajroetker/go-kernels/kern"
	"github.com/ajroetker/go-kernels/kern/taskgroup"
)

// Sort sorts data in place in ascending order, using tmp as merge scratch.
//
// Preconditions, checked once here: len(data) is a power of two, tmp has the
// same length, the buffers are disjoint, and cfg validates. On error no
// element is touched. On success data is sorted and tmp is left in an
// unspecified scratch state.
func Sort[T kern.Scalars](cfg Config, data, tmp []T) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	n := len(data)
	if !isPowerOfTwo(n) {
		return fmt.Errorf("multisort: length %d is not a positive power of two", n)
	}
	if len(tmp) != n {
		return fmt.Errorf("multisort: scratch length %d does not match data length %d", len(tmp), n)
	}
	if &data[0] == &tmp[0] {
		return fmt.Errorf("multisort: data and scratch buffers overlap")
	}

	multisort(&cfg, data, tmp, 0)
	return nil
}

// multisort sorts data[0:n) using tmp[0:n) as scratch. The two buffers swap
// roles at each merge level: quarters are sorted in data, merged pairwise
// into tmp, and the tmp halves are merged back into data, so the sorted
// result always lands in data.
func multisort[T kern.Scalars](cfg *Config, data, tmp []T, depth int) {
	n := len(data)
	if n < 4*cfg.MinSortSize {
		basicSort(data)
		return
	}

	q := n / 4
	if cfg.spawn(depth) {
		taskgroup.Do(
			func() { multisort(cfg, data[:q], tmp[:q], depth+1) },
			func() { multisort(cfg, data[q:2*q], tmp[q:2*q], depth+1) },
			func() { multisort(cfg, data[2*q:3*q], tmp[2*q:3*q], depth+1) },
			func() { multisort(cfg, data[3*q:], tmp[3*q:], depth+1) },
		)
		taskgroup.Do(
			func() { merge(cfg, data[:q], data[q:2*q], tmp[:2*q], 0, 2*q, depth+1) },
			func() { merge(cfg, data[2*q:3*q], data[3*q:], tmp[2*q:], 0, 2*q, depth+1) },
		)
	} else {
		multisort(cfg, data[:q], tmp[:q], depth+1)
		multisort(cfg, data[q:2*q], tmp[q:2*q], depth+1)
		multisort(cfg, data[2*q:3*q], tmp[2*q:3*q], depth+1)
		multisort(cfg, data[3*q:], tmp[3*q:], depth+1)
		merge(cfg, data[:q], data[q:2*q], tmp[:2*q], 0, 2*q, depth+1)
		merge(cfg, data[2*q:3*q], data[3*q:], tmp[2*q:], 0, 2*q, depth+1)
	}

	merge(cfg, tmp[:2*q], tmp[2*q:], data, 0, n, depth+1)
}

// merge writes the sub-range [lo, lo+length) of the stable merge of the
// sorted sequences left and right into result. result is indexed in the
// combined space [0, len(left)+len(right)) and is disjoint from both inputs.
// Recursive halves write disjoint destination ranges (they may read
// overlapping input regions, which is safe).
func merge[T kern.Scalars](cfg *Config, left, right, result []T, lo, length, depth int) {
	if length < 2*cfg.MinMergeSize {
		basicMerge(left, right, result, lo, length)
		return
	}

	half := length / 2
	if cfg.spawn(depth) {
		taskgroup.Do(
			func() { merge(cfg, left, right, result, lo, half, depth+1) },
			func() { merge(cfg, left, right, result, lo+half, length-half, depth+1) },
		)
	} else {
		merge(cfg, left, right, result, lo, half, depth+1)
		merge(cfg, left, right, result, lo+half, length-half, depth+1)
	}
}
