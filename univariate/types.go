// SPDX-License-Identifier: MIT

// Package univariate: the Family capability interface and its value types.
package univariate

import "github.com/katalvlaran/sparsegrid/matrix"

// Range is a half-open block [Lo, Hi) of zero-based offsets into a family's shared
// evaluation matrix rows and grid-point slice.
type Range struct {
	Lo int // first offset (inclusive)
	Hi int // last offset (exclusive)
}

// Len returns the number of offsets in r.
func (r Range) Len() int { return r.Hi - r.Lo }

// Indices expands r into the explicit offset list Lo, Lo+1, ..., Hi-1.
// Complexity: O(Len).
func (r Range) Indices() []int {
	out := make([]int, 0, r.Len())
	var i int
	for i = r.Lo; i < r.Hi; i++ {
		out = append(out, i)
	}

	return out
}

// Interval is the closed physical domain [A, B] a family is mapped onto.
// The reference domain of every family is [-1, 1].
type Interval struct {
	A float64
	B float64
}

// ReferenceInterval is the identity mapping [-1, 1].
var ReferenceInterval = Interval{A: -1, B: 1}

// fromReference maps t ∈ [-1, 1] to the physical domain.
func (iv Interval) fromReference(t float64) float64 {
	return iv.mid() + t*iv.half()
}

// toReference maps a physical coordinate back to the reference domain.
// Points outside [A, B] map outside [-1, 1]; polynomial evaluation stays well defined.
func (iv Interval) toReference(x float64) float64 {
	return (x - iv.mid()) / iv.half()
}

// mid and half are exact for [-1, 1], so the reference mapping is the identity there.
func (iv Interval) mid() float64  { return (iv.A + iv.B) / 2 }
func (iv Interval) half() float64 { return (iv.B - iv.A) / 2 }

// Family is the univariate oracle consumed by the sparse-grid core.
//
// A family is a nested sequence of grid points and basis functions, partitioned into
// set indices 1, 2, 3, ...; set index i contributes SetLength(i) new points and the
// same number of new functions, stored at offsets SetRange(i). Ranges of successive
// set indices are disjoint, contiguous and cover [0, Size(capacity)).
//
// Implementations must be immutable and safe for concurrent use.
type Family interface {
	// SetLength returns the number of new functions/points introduced at set index i (0 for i < 1).
	SetLength(i int) int

	// SetRange returns the offsets of set index i's new block.
	SetRange(i int) Range

	// Size returns the total number of functions/points up to and including set index capacity.
	Size(capacity int) int

	// MaxCapacity returns the largest set index Gridpoints and Evaluate accept.
	MaxCapacity() int

	// Gridpoints returns the nested grid points up to capacity, length Size(capacity).
	Gridpoints(capacity int) ([]float64, error)

	// Evaluate returns a Size(capacity)×len(points) matrix: row r holds basis function r
	// evaluated at every point (columns follow the order of points).
	Evaluate(capacity int, points []float64) (*matrix.Dense, error)
}
