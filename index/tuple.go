// SPDX-License-Identifier: MIT

package index

import "golang.org/x/exp/constraints"

// ForEachTuple visits every tuple t with lo[k] <= t[k] < hi[k], the first coordinate
// varying fastest. t is reused between calls; copy it to retain it.
// Nothing is visited when any range is empty or lo and hi differ in length.
//
// Complexity:
//   - Time O(Π (hi[k]-lo[k])), Space O(len(lo)).
func ForEachTuple(lo, hi []int, fn func(t []int)) {
	n := len(lo)
	if n == 0 || n != len(hi) {
		return
	}
	var k int
	for k = 0; k < n; k++ {
		if lo[k] >= hi[k] {
			return
		}
	}

	t := make([]int, n)
	copy(t, lo)
	for {
		fn(t)
		for k = 0; k < n; k++ {
			t[k]++
			if t[k] < hi[k] {
				break
			}
			t[k] = lo[k]
		}
		if k == n {
			return
		}
	}
}

// Product returns Π xs (1 for an empty slice).
func Product[T constraints.Integer | constraints.Float](xs []T) T {
	var p T = 1
	for _, x := range xs {
		p *= x
	}

	return p
}
