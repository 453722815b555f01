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

import "github.com/ajroetker/go-kernels/kern"

// Base-case sequential algorithms the recursion bottoms out into. Both are
// stable; basicSort needs no scratch.

// basicSort sorts data in place with insertion sort.
func basicSort[T kern.Scalars](data []T) {
	for i := 1; i < len(data); i++ {
		key := data[i]
		j := i - 1
		for j >= 0 && data[j] > key {
			data[j+1] = data[j]
			j--
		}
		data[j+1] = key
	}
}

// basicMerge writes the sub-range [lo, lo+length) of the stable merge of the
// sorted sequences left and right into result, which is indexed in the
// combined space [0, len(left)+len(right)). Ties take left elements first.
func basicMerge[T kern.Scalars](left, right, result []T, lo, length int) {
	i := coRank(lo, left, right)
	j := lo - i

	for k := lo; k < lo+length; k++ {
		switch {
		case i >= len(left):
			result[k] = right[j]
			j++
		case j >= len(right):
			result[k] = left[i]
			i++
		case left[i] <= right[j]:
			result[k] = left[i]
			i++
		default:
			result[k] = right[j]
			j++
		}
	}
}

// coRank returns i such that left[0:i) and right[0:k-i) are exactly the
// first k elements of the stable merge of left and right. A split (i, k-i)
// is valid when every taken right element is strictly smaller than the first
// untaken left element (ties go left-first) and every taken left element is
// <= the first untaken right element. Binary search over i; a valid split
// always exists and is unique under these conditions.
func coRank[T kern.Scalars](k int, left, right []T) int {
	low := max(0, k-len(right))
	high := min(k, len(left))

	for {
		i := (low + high) / 2
		j := k - i
		switch {
		case i < len(left) && j > 0 && right[j-1] >= left[i]:
			// Too few taken from left: right[j-1] should not precede left[i].
			low = i + 1
		case i > 0 && j < len(right) && left[i-1] > right[j]:
			// Too many taken from left.
			high = i - 1
		default:
			return i
		}
	}
}
