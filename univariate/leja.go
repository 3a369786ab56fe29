// SPDX-License-Identifier: MIT

package univariate

import (
	"fmt"
	"math"
	"sync"

	"github.com/katalvlaran/sparsegrid/matrix"
)

const (
	// MaxLejaSize is the longest Leja prefix a family serves.
	MaxLejaSize = 256

	// lejaCandidates is the number of Chebyshev extrema the greedy search scans.
	lejaCandidates = 4097
)

const (
	opLejaGridpoints = "Leja.Gridpoints"
	opLejaEvaluate   = "Leja.Evaluate"
)

// lejaSequence is the reference Leja prefix on [-1, 1], computed once per process.
var lejaSequence = sync.OnceValue(func() []float64 {
	return computeLeja(MaxLejaSize, lejaCandidates)
})

// computeLeja builds a discrete Leja sequence: x_0 = 0, then
// x_k = argmax over candidates of Σ_j log|x − x_j| (first maximiser wins).
//
// Implementation:
//   - Stage 1: candidates are the Chebyshev extrema of degree nc-1, increasing.
//   - Stage 2: keep a running log-product per candidate; each pick updates it in O(nc).
//
// Complexity:
//   - Time O(size*nc), Space O(nc).
func computeLeja(size, nc int) []float64 {
	cand := make([]float64, nc)
	score := make([]float64, nc) // Σ log|cand − x_j|
	var j, k, best int
	for j = 0; j < nc; j++ {
		cand[j] = chebyshevNode(j, nc-1)
	}

	out := make([]float64, 0, size)
	pick := func(x float64) {
		out = append(out, x)
		for j = 0; j < nc; j++ {
			score[j] += math.Log(math.Abs(cand[j] - x)) // -Inf at x itself
		}
	}
	pick(0)
	for k = 1; k < size; k++ {
		best = -1
		for j = 0; j < nc; j++ {
			if math.IsInf(score[j], -1) {
				continue
			}
			if best < 0 || score[j] > score[best] {
				best = j
			}
		}
		pick(cand[best])
	}

	return out
}

// Leja is a nested family with linear growth: Chebyshev polynomials on a discrete Leja
// sequence, SetLength(i) = growth for every i >= 1. Any prefix of a Leja sequence is
// unisolvent for the polynomials of matching degree, so every set index is usable.
type Leja struct {
	interval Interval
	growth   int
}

var _ Family = (*Leja)(nil)

// NewLeja returns a Leja family; WithGrowth sets the points per set index (default 2).
func NewLeja(opts ...Option) *Leja {
	o := gatherOptions(opts...)

	return &Leja{interval: o.interval, growth: o.growth}
}

// Interval returns the physical domain.
func (l *Leja) Interval() Interval { return l.interval }

// Growth returns the number of new points per set index.
func (l *Leja) Growth() int { return l.growth }

// MaxCapacity returns the largest set index served (Size must stay within MaxLejaSize).
func (l *Leja) MaxCapacity() int { return MaxLejaSize / l.growth }

// SetLength returns growth for i >= 1, else 0.
func (l *Leja) SetLength(i int) int {
	if i < 1 {
		return 0
	}

	return l.growth
}

// Size returns growth*capacity (0 for capacity < 1).
func (l *Leja) Size(capacity int) int {
	if capacity < 1 {
		return 0
	}

	return l.growth * capacity
}

// SetRange returns [growth*(i-1), growth*i).
func (l *Leja) SetRange(i int) Range {
	return Range{Lo: l.Size(i - 1), Hi: l.Size(i)}
}

// Gridpoints returns the first Size(capacity) Leja points mapped onto the interval.
//
// Errors:
//   - ErrCapacity when capacity < 1 or capacity > MaxCapacity().
func (l *Leja) Gridpoints(capacity int) ([]float64, error) {
	if capacity < 1 || capacity > l.MaxCapacity() {
		return nil, fmt.Errorf("%s(%d): %w", opLejaGridpoints, capacity, ErrCapacity)
	}
	ref := lejaSequence()
	n := l.Size(capacity)
	out := make([]float64, n)
	var k int
	for k = 0; k < n; k++ {
		out[k] = l.interval.fromReference(ref[k])
	}

	return out, nil
}

// Evaluate returns T_r(points[c]) for r < Size(capacity).
//
// Errors:
//   - ErrCapacity, ErrNoPoints, ErrNonFinitePoint.
func (l *Leja) Evaluate(capacity int, points []float64) (*matrix.Dense, error) {
	if capacity < 1 || capacity > l.MaxCapacity() {
		return nil, fmt.Errorf("%s(%d): %w", opLejaEvaluate, capacity, ErrCapacity)
	}

	return evaluateChebyshev(opLejaEvaluate, l.interval, l.Size(capacity), points)
}

// String implements fmt.Stringer.
func (l *Leja) String() string {
	return fmt.Sprintf("Leja(growth=%d)[%g, %g]", l.growth, l.interval.A, l.interval.B)
}
