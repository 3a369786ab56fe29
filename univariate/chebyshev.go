// SPDX-License-Identifier: MIT

package univariate

import (
	"fmt"

	"github.com/katalvlaran/sparsegrid/matrix"
)

// MaxChebyshevCapacity bounds the set index a Chebyshev family accepts
// (Size(20) = 2^19 + 1 points per dimension).
const MaxChebyshevCapacity = 20

const (
	opChebGridpoints = "Chebyshev.Gridpoints"
	opChebEvaluate   = "Chebyshev.Evaluate"
)

// Chebyshev is the nested Clenshaw–Curtis family: Chebyshev polynomials T_0, T_1, ...
// on the extrema of T_{m-1}, with the doubling rule
//
//	m(1) = 1, m(i) = 2^(i-1) + 1 for i >= 2.
//
// Set index 1 holds the centre node, set index 2 the two end points, and every later set
// index the odd-numbered extrema of its level. Within a set, new nodes are ordered by
// increasing coordinate; new functions are T_{m(i-1)}, ..., T_{m(i)-1}.
type Chebyshev struct {
	interval Interval
}

var _ Family = (*Chebyshev)(nil)

// NewChebyshev returns a Chebyshev family on [-1, 1] or on the WithInterval domain.
func NewChebyshev(opts ...Option) *Chebyshev {
	o := gatherOptions(opts...)

	return &Chebyshev{interval: o.interval}
}

// Interval returns the physical domain.
func (c *Chebyshev) Interval() Interval { return c.interval }

// MaxCapacity returns MaxChebyshevCapacity.
func (c *Chebyshev) MaxCapacity() int { return MaxChebyshevCapacity }

// SetLength returns the number of new nodes at set index i.
func (c *Chebyshev) SetLength(i int) int {
	switch {
	case i < 1:
		return 0
	case i == 1:
		return 1
	case i == 2:
		return 2
	default:
		return 1 << (i - 2)
	}
}

// Size returns m(capacity), the cumulative node count.
func (c *Chebyshev) Size(capacity int) int {
	switch {
	case capacity < 1:
		return 0
	case capacity == 1:
		return 1
	default:
		return 1<<(capacity-1) + 1
	}
}

// SetRange returns [m(i-1), m(i)).
func (c *Chebyshev) SetRange(i int) Range {
	return Range{Lo: c.Size(i - 1), Hi: c.Size(i)}
}

// Gridpoints returns the nested nodes of set indices 1..capacity, concatenated in set order.
//
// Errors:
//   - ErrCapacity when capacity < 1 or capacity > MaxChebyshevCapacity.
//
// Complexity:
//   - Time O(m(capacity)), Space O(m(capacity)).
func (c *Chebyshev) Gridpoints(capacity int) ([]float64, error) {
	if capacity < 1 || capacity > c.MaxCapacity() {
		return nil, fmt.Errorf("%s(%d): %w", opChebGridpoints, capacity, ErrCapacity)
	}

	out := make([]float64, 0, c.Size(capacity))
	out = append(out, c.interval.fromReference(0))

	var i, j, n int
	for i = 2; i <= capacity; i++ {
		n = c.Size(i) - 1 // nodes are j = 0..n
		if i == 2 {
			out = append(out, c.interval.fromReference(-1), c.interval.fromReference(1))
			continue
		}
		for j = 1; j < n; j += 2 {
			out = append(out, c.interval.fromReference(chebyshevNode(j, n)))
		}
	}

	return out, nil
}

// Evaluate returns T_r(points[c]) for r < m(capacity).
//
// Errors:
//   - ErrCapacity, ErrNoPoints, ErrNonFinitePoint.
func (c *Chebyshev) Evaluate(capacity int, points []float64) (*matrix.Dense, error) {
	if capacity < 1 || capacity > c.MaxCapacity() {
		return nil, fmt.Errorf("%s(%d): %w", opChebEvaluate, capacity, ErrCapacity)
	}

	return evaluateChebyshev(opChebEvaluate, c.interval, c.Size(capacity), points)
}

// String implements fmt.Stringer.
func (c *Chebyshev) String() string {
	return fmt.Sprintf("Chebyshev[%g, %g]", c.interval.A, c.interval.B)
}
