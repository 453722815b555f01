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

// Command multisort runs the recursive fork-join sort kernel on a
// deterministically filled vector, verifies the output, and reports phase
// timings.
//
// Usage:
//
//	multisort [-n kelements] [-s minsort] [-m minmerge] [-c cutoff] [-seq]
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"runtime"
	"time"

	"github.com/ajroetker/go-kernels/kern/multisort"
)

var (
	kelements = flag.Int("n", 32768, "size of the vector to sort, in Kelements (power of two)")
	minSort   = flag.Int("s", 1024, "size below which the sort recursion runs sequentially (power of two)")
	minMerge  = flag.Int("m", 1024, "size below which the merge recursion runs sequentially (power of two)")
	cutoff    = flag.Int("c", -1, "recursion depth past which no more tasks are spawned (-1 for size-based spawning only)")
	seed      = flag.Int64("seed", 0, "seed for the first element of the fill pattern (0 uses the current time)")
)

func main() {
	flag.Parse()

	n := *kelements * 1024
	cfg := multisort.Config{
		MinSortSize:  *minSort,
		MinMergeSize: *minMerge,
	}
	if *cutoff >= 0 {
		cfg.Policy = multisort.PolicyDepth
		cfg.Cutoff = *cutoff
	}

	fmt.Printf("Problem size (in number of elements): N=%d, MIN_SORT_SIZE=%d, MIN_MERGE_SIZE=%d\n",
		n, cfg.MinSortSize, cfg.MinMergeSize)
	if cfg.Policy == multisort.PolicyDepth {
		fmt.Printf("Cut-off level: CUTOFF=%d\n", cfg.Cutoff)
	}
	fmt.Printf("GOMAXPROCS: %d\n", runtime.GOMAXPROCS(0))

	start := time.Now()
	data := make([]int32, n)
	tmp := make([]int32, n)
	initialize(data, *seed)
	fmt.Printf("Initialization time: %.6fs\n", time.Since(start).Seconds())

	start = time.Now()
	if err := multisort.Sort(cfg, data, tmp); err != nil {
		fmt.Fprintf(os.Stderr, "multisort: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Multisort execution time: %.6fs\n", time.Since(start).Seconds())

	start = time.Now()
	if !multisort.IsSorted(data) {
		fmt.Fprintln(os.Stderr, "ERROR: data is NOT properly sorted")
		os.Exit(1)
	}
	fmt.Printf("Check sorted data execution time: %.6fs\n", time.Since(start).Seconds())
}

// initialize fills data with the lab's deterministic recurrence: each
// element follows from its predecessor, so only the first element is random.
func initialize(data []int32, seed int64) {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))
	n := int64(len(data))
	for i := range data {
		if i == 0 {
			data[i] = rng.Int31()
		} else {
			data[i] = int32(((int64(data[i-1]) + 1) * int64(i) * 104723) % n)
		}
	}
}
