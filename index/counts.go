// SPDX-License-Identifier: MIT

package index

// Counts is a per-budget tally: Counts[c] is the number of degrees of freedom whose
// weighted index cost is exactly c. A dimension's Counts comes from Domain.Counts;
// several dimensions are merged with CountCombinations.
type Counts []int

// UnitCounts is the neutral element of CountCombinations: one way to spend nothing.
func UnitCounts() Counts { return Counts{1} }

// Total sums all entries.
func (c Counts) Total() int {
	t := 0
	for _, v := range c {
		t += v
	}

	return t
}

// CountCombinations merges the tallies of two independent dimension groups under a
// shared budget: out[c] = Σ_{u+v=c} a[u]·b[v] for c = 0..budget.
//
// Tensor blocks multiply their sizes, and the costs of the parts add up, so the
// truncated convolution counts every admissible tensor block exactly once.
//
// Complexity:
//   - Time O(len(a)·len(b)), Space O(budget).
func CountCombinations(budget int, a, b Counts) Counts {
	if budget < 0 {
		return Counts{}
	}
	out := make(Counts, budget+1)
	var u, v int
	for u = 0; u < len(a) && u <= budget; u++ {
		if a[u] == 0 {
			continue
		}
		for v = 0; v < len(b) && u+v <= budget; v++ {
			out[u+v] += a[u] * b[v]
		}
	}

	return out
}
