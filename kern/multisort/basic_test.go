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
	"math/rand"
	"slices"
	"testing"
)

// refMerge is the obvious full two-pointer stable merge, used as the oracle
// for the offset-aware base merge.
func refMerge(left, right []int32) []int32 {
	out := make([]int32, 0, len(left)+len(right))
	i, j := 0, 0
	for i < len(left) && j < len(right) {
		if left[i] <= right[j] {
			out = append(out, left[i])
			i++
		} else {
			out = append(out, right[j])
			j++
		}
	}
	out = append(out, left[i:]...)
	return append(out, right[j:]...)
}

func sortedRandom(rng *rand.Rand, n int) []int32 {
	data := make([]int32, n)
	for i := range data {
		data[i] = rng.Int31n(64) // narrow range to force plenty of ties
	}
	slices.Sort(data)
	return data
}

func TestBasicSort(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for _, n := range []int{0, 1, 2, 5, 16, 100} {
		data := make([]int32, n)
		for i := range data {
			data[i] = rng.Int31n(1000)
		}
		want := slices.Clone(data)
		slices.Sort(want)

		basicSort(data)

		if !slices.Equal(data, want) {
			t.Errorf("basicSort(n=%d) = %v, want %v", n, data, want)
		}
	}
}

func TestBasicMergeFullRange(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	for _, n := range []int{1, 2, 8, 33, 128} {
		left := sortedRandom(rng, n)
		right := sortedRandom(rng, n)
		want := refMerge(left, right)

		result := make([]int32, 2*n)
		basicMerge(left, right, result, 0, 2*n)

		if !slices.Equal(result, want) {
			t.Errorf("n=%d: basicMerge = %v, want %v", n, result, want)
		}
	}
}

func TestBasicMergeSubRanges(t *testing.T) {
	// Merging the combined output piecewise, at every offset and several
	// lengths, must reproduce the full merge exactly.
	rng := rand.New(rand.NewSource(9))
	left := sortedRandom(rng, 32)
	right := sortedRandom(rng, 32)
	want := refMerge(left, right)

	for _, length := range []int{1, 2, 4, 16} {
		result := make([]int32, len(want))
		for lo := 0; lo+length <= len(want); lo += length {
			basicMerge(left, right, result, lo, length)
		}
		if !slices.Equal(result, want) {
			t.Errorf("length=%d: piecewise merge = %v, want %v", length, result, want)
		}
	}
}

func TestBasicMergeUnequalInputs(t *testing.T) {
	// The recursion always merges equal halves, but the base merge itself
	// is defined over any pair of sorted inputs.
	left := []int32{1, 4, 9}
	right := []int32{2, 3, 5, 6, 7}
	want := refMerge(left, right)

	result := make([]int32, len(want))
	basicMerge(left, right, result, 0, len(want))

	if !slices.Equal(result, want) {
		t.Errorf("basicMerge = %v, want %v", result, want)
	}
}

func TestCoRankSplitsAreStable(t *testing.T) {
	// For every k, the elements selected by coRank must be exactly the
	// first k elements the reference stable merge emits. With ties, that
	// pins down left-before-right order.
	rng := rand.New(rand.NewSource(17))
	left := sortedRandom(rng, 24)
	right := sortedRandom(rng, 24)
	want := refMerge(left, right)

	for k := 0; k <= len(want); k++ {
		i := coRank(k, left, right)
		j := k - i

		if i < 0 || i > len(left) || j < 0 || j > len(right) {
			t.Fatalf("k=%d: coRank split (%d, %d) out of range", k, i, j)
		}
		got := refMerge(left[:i], right[:j])
		if !slices.Equal(got, want[:k]) {
			t.Errorf("k=%d: split (%d, %d) selects %v, want %v", k, i, j, got, want[:k])
		}
	}
}

func TestCoRankAllTies(t *testing.T) {
	// Every element equal: the only stable split takes all of left first.
	left := []int32{7, 7, 7, 7}
	right := []int32{7, 7, 7, 7}

	for k := 0; k <= 8; k++ {
		i := coRank(k, left, right)
		if want := min(k, 4); i != want {
			t.Errorf("k=%d: coRank = %d, want %d", k, i, want)
		}
	}
}

func TestCoRankDisjointRanges(t *testing.T) {
	left := []int32{1, 2, 3, 4}
	right := []int32{10, 20, 30, 40}

	if i := coRank(4, left, right); i != 4 {
		t.Errorf("coRank(4) = %d, want 4 (all of left precedes right)", i)
	}
	if i := coRank(6, right, left); i != 2 {
		t.Errorf("coRank(6, swapped) = %d, want 2", i)
	}
}
