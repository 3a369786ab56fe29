// SPDX-License-Identifier: MIT

package index

import "fmt"

const (
	opNewDomain = "NewDomain"
	opCounts    = "Domain.Counts"
	opSetAt     = "Set.At"
)

// Domain is the capped, anisotropic Smolyak index domain.
//
// A multi-index i = (i_1, ..., i_N), i_k >= 1, is admissible when
//
//	Σ_k shape_k · (i_k − 1) <= cap − N.
//
// With every shape entry equal to 1 this is the isotropic rule |i| <= N + level.
// The admissible set is downward closed and always contains (1, ..., 1).
// Domain is immutable and safe for concurrent use.
type Domain struct {
	cap   int
	shape []int
}

// NewDomain validates cap and shape and returns the domain.
//
// Errors:
//   - ErrBadShape (empty shape or an entry < 1), ErrBadCap (cap < len(shape)).
func NewDomain(cap int, shape []int) (*Domain, error) {
	if len(shape) == 0 {
		return nil, fmt.Errorf("%s: empty shape: %w", opNewDomain, ErrBadShape)
	}
	for k, s := range shape {
		if s < 1 {
			return nil, fmt.Errorf("%s: shape[%d]=%d: %w", opNewDomain, k, s, ErrBadShape)
		}
	}
	if cap < len(shape) {
		return nil, fmt.Errorf("%s: cap=%d, dim=%d: %w", opNewDomain, cap, len(shape), ErrBadCap)
	}
	sh := make([]int, len(shape))
	copy(sh, shape)

	return &Domain{cap: cap, shape: sh}, nil
}

// Dim returns N.
func (d *Domain) Dim() int { return len(d.shape) }

// Cap returns the total index budget.
func (d *Domain) Cap() int { return d.cap }

// Budget returns cap − N, the weighted excess shared across dimensions.
func (d *Domain) Budget() int { return d.cap - len(d.shape) }

// Shape returns a copy of the per-dimension weights.
func (d *Domain) Shape() []int {
	out := make([]int, len(d.shape))
	copy(out, d.shape)

	return out
}

// MaxIndex returns the largest admissible set index along dimension k,
// 1 + floor(Budget/shape_k). Returns 0 for k outside [0, Dim).
func (d *Domain) MaxIndex(k int) int {
	if k < 0 || k >= len(d.shape) {
		return 0
	}

	return 1 + d.Budget()/d.shape[k]
}

// Admissible reports whether idx belongs to the domain.
func (d *Domain) Admissible(idx []int) bool {
	if len(idx) != len(d.shape) {
		return false
	}
	cost := 0
	for k, i := range idx {
		if i < 1 {
			return false
		}
		cost += d.shape[k] * (i - 1)
	}

	return cost <= d.Budget()
}

// Enumerate lists the admissible multi-indices.
//
// Order: an odometer starting at (1, ..., 1) with the first dimension varying fastest;
// a dimension wraps back to 1 as soon as incrementing it would exceed the budget.
// The order depends only on (cap, shape), so repeated calls agree exactly.
//
// Complexity:
//   - Time O(|set|·N), Space O(|set|·N).
func (d *Domain) Enumerate() *Set {
	n := len(d.shape)
	budget := d.Budget()
	idx := make([]int, n)
	var k int
	for k = range idx {
		idx[k] = 1
	}

	s := &Set{dim: n, max: make([]int, n)}
	cost := 0
	for {
		s.flat = append(s.flat, idx...)
		for k = 0; k < n; k++ {
			if idx[k] > s.max[k] {
				s.max[k] = idx[k]
			}
		}

		for k = 0; k < n; k++ {
			if cost+d.shape[k] <= budget {
				idx[k]++
				cost += d.shape[k]
				break
			}
			cost -= d.shape[k] * (idx[k] - 1)
			idx[k] = 1
		}
		if k == n {
			return s
		}
	}
}

// Counts returns the count object of dimension k: entry c sums length(i) over the set
// indices i whose weighted cost shape_k·(i−1) equals c, for c = 0..Budget.
//
// length is the number of NEW functions at set index i (a univariate SetLength), which
// is what keeps nested blocks from being counted twice.
//
// Errors:
//   - ErrOutOfRange (k outside [0, Dim)), ErrNilLength.
func (d *Domain) Counts(k int, length func(i int) int) (Counts, error) {
	if k < 0 || k >= len(d.shape) {
		return nil, fmt.Errorf("%s(%d): %w", opCounts, k, ErrOutOfRange)
	}
	if length == nil {
		return nil, fmt.Errorf("%s(%d): %w", opCounts, k, ErrNilLength)
	}
	out := make(Counts, d.Budget()+1)
	var i int
	for i = 1; i <= d.MaxIndex(k); i++ {
		out[d.shape[k]*(i-1)] += length(i)
	}

	return out, nil
}

// Set is an ordered, immutable list of admissible multi-indices.
type Set struct {
	dim  int
	flat []int // row-major: index p occupies flat[p*dim : (p+1)*dim]
	max  []int // per-dimension largest set index
}

// Dim returns N.
func (s *Set) Dim() int { return s.dim }

// Len returns the number of multi-indices.
func (s *Set) Len() int { return len(s.flat) / s.dim }

// At returns a copy of the p-th multi-index.
func (s *Set) At(p int) ([]int, error) {
	if p < 0 || p >= s.Len() {
		return nil, fmt.Errorf("%s(%d): %w", opSetAt, p, ErrOutOfRange)
	}
	out := make([]int, s.dim)
	copy(out, s.flat[p*s.dim:(p+1)*s.dim])

	return out, nil
}

// Max returns a copy of the per-dimension largest set index in s.
func (s *Set) Max() []int {
	out := make([]int, s.dim)
	copy(out, s.max)

	return out
}

// Each calls fn for every multi-index in order. idx aliases internal storage and
// must not be modified or retained.
func (s *Set) Each(fn func(p int, idx []int)) {
	var p int
	for p = 0; p < s.Len(); p++ {
		fn(p, s.flat[p*s.dim:(p+1)*s.dim:(p+1)*s.dim])
	}
}

// Indices returns a deep copy of all multi-indices in order.
func (s *Set) Indices() [][]int {
	out := make([][]int, 0, s.Len())
	s.Each(func(_ int, idx []int) {
		cp := make([]int, len(idx))
		copy(cp, idx)
		out = append(out, cp)
	})

	return out
}
