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

// Package multisort implements a recursive divide-and-conquer sort with a
// fork-join task decomposition.
//
// # Algorithm
//
// Sort splits the input into 4 contiguous quarters and sorts each quarter
// recursively; the 4 quarter sorts are independent and run concurrently.
// Once all quarters are sorted, the two quarter pairs are merged into the
// scratch buffer (2 independent merges, also concurrent), and finally the
// two scratch halves are merged back into the input buffer. The merge is
// itself recursive: the destination range is halved until it drops below a
// threshold, and the two halves of a split are independent because they
// write disjoint output ranges.
//
// The task graph is shaped entirely by the input size and two thresholds:
//
//   - MinSortSize: quarters smaller than 4*MinSortSize are sorted in place
//     by a sequential base-case sort.
//   - MinMergeSize: destination ranges shorter than 2*MinMergeSize are
//     merged by a sequential two-pointer base-case merge.
//
// An optional depth cutoff (PolicyDepth) additionally stops spawning tasks
// below a recursion level; deeper work recurses inline on the calling
// goroutine. The cutoff changes scheduling density only, never the result.
//
// # Buffers
//
// The caller owns both buffers for the full call: the primary buffer holds
// the input and, on return, the sorted output; the scratch buffer is an
// equal-length merge destination whose role alternates with the primary at
// each recursion level. The engine never allocates, resizes, or retains
// either buffer.
//
// # Determinism
//
// Concurrent tasks always operate on provably disjoint index ranges, so the
// final output is identical for every interleaving, thread count, threshold
// choice, and policy.
//
// # Example Usage
//
//	cfg := multisort.Config{MinSortSize: 1024, MinMergeSize: 1024}
//	data := make([]int32, 1<<20)
//	tmp := make([]int32, len(data))
//	fill(data)
//	if err := multisort.Sort(cfg, data, tmp); err != nil {
//	    return err
//	}
//	// data is sorted ascending; tmp holds scratch garbage.
package multisort
