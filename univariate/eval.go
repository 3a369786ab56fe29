// SPDX-License-Identifier: MIT

package univariate

import (
	"fmt"
	"math"

	"github.com/katalvlaran/sparsegrid/matrix"
)

// chebyshevNode returns the j-th of the n+1 Chebyshev extrema on [-1, 1] in increasing
// order, i.e. -cos(πj/n). The sine form is exactly odd-symmetric, hits 0 and ±1 exactly.
func chebyshevNode(j, n int) float64 {
	return math.Sin(math.Pi * float64(2*j-n) / float64(2*n))
}

// evaluateChebyshev fills an n×len(points) matrix with T_r(t_c), t_c the reference image
// of points[c], using the three-term recurrence T_{r+1} = 2t·T_r − T_{r−1}.
//
// Implementation:
//   - Stage 1: reject empty or non-finite points.
//   - Stage 2: per column, run the recurrence into a flat row-major buffer.
//   - Stage 3: hand the buffer to matrix.NewDenseFrom (numeric policy enforced there).
//
// Complexity:
//   - Time O(n*len(points)), Space O(n*len(points)).
func evaluateChebyshev(op string, iv Interval, n int, points []float64) (*matrix.Dense, error) {
	np := len(points)
	if np == 0 {
		return nil, fmt.Errorf("%s: %w", op, ErrNoPoints)
	}
	var c, r int
	for c = 0; c < np; c++ {
		if math.IsNaN(points[c]) || math.IsInf(points[c], 0) {
			return nil, fmt.Errorf("%s: point %d: %w", op, c, ErrNonFinitePoint)
		}
	}

	data := make([]float64, n*np)
	var t float64
	for c = 0; c < np; c++ {
		t = iv.toReference(points[c])
		data[c] = 1 // T_0
		if n > 1 {
			data[np+c] = t // T_1
		}
		for r = 2; r < n; r++ {
			data[r*np+c] = 2*t*data[(r-1)*np+c] - data[(r-2)*np+c]
		}
	}

	m, err := matrix.NewDenseFrom(n, np, data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return m, nil
}
