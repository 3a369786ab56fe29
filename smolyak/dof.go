// SPDX-License-Identifier: MIT

package smolyak

import "github.com/katalvlaran/sparsegrid/index"

const opDegreesOfFreedom = "DegreesOfFreedom"

// DegreesOfFreedom returns d, the number of basis functions (and grid points) of b.
//
// Implementation:
//   - Stage 1: build the index domain for (Cap, shape); every dimension's largest set
//     index must be within the family's MaxCapacity, as BasisMatrix requires.
//   - Stage 2: per dimension, take the count object keyed by weighted index cost, built
//     from the family's SetLength (new functions only, so nested blocks are not recounted).
//   - Stage 3: fold the dimensions with index.CountCombinations under the domain budget
//     and sum the result.
//
// The result equals Σ over the admissible set of Π_k SetLength(i_k), the size of the
// matrix BasisMatrix assembles.
//
// Errors:
//   - ErrNilBasis, ErrNilFamily; index domain errors; univariate.ErrCapacity.
//
// Complexity:
//   - Time O(N·level²), independent of the size of the admissible set.
func DegreesOfFreedom(b *Basis) (int, error) {
	if err := validateBasis(b); err != nil {
		return 0, smolyakErrorf(opDegreesOfFreedom, err)
	}
	dom, err := b.domain()
	if err != nil {
		return 0, smolyakErrorf(opDegreesOfFreedom, err)
	}

	acc := index.UnitCounts()
	var k int
	var ck index.Counts
	for k = 0; k < dom.Dim(); k++ {
		if ck, err = dom.Counts(k, b.family.SetLength); err != nil {
			return 0, smolyakErrorf(opDegreesOfFreedom, err)
		}
		acc = index.CountCombinations(dom.Budget(), acc, ck)
	}

	return acc.Total(), nil
}
