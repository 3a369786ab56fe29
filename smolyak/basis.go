// SPDX-License-Identifier: MIT

package smolyak

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/sparsegrid/index"
	"github.com/katalvlaran/sparsegrid/univariate"
)

const (
	opNewBasis = "NewBasis"
	opPlan     = "plan"
)

// Basis describes a Smolyak sparse tensor basis: one univariate family shared by all
// dimensions, a per-dimension shape and an approximation level.
//
// A Basis is immutable once built and safe for concurrent use. Cap() is derived on
// read and never stored.
type Basis struct {
	family  univariate.Family
	shape   []int
	level   int
	workers int
	logger  *slog.Logger
}

// NewBasis validates and builds a Basis.
//
// Implementation:
//   - Stage 1: family non-nil; len(shape) >= 1; level >= 0; every shape entry >= 1.
//   - Stage 2: copy shape so later caller mutations cannot leak in.
//   - Stage 3: resolve options (workers, logger).
//
// Errors:
//   - ErrNilFamily, ErrBadDimension, ErrBadLevel, ErrBadShape.
func NewBasis(family univariate.Family, shape []int, level int, opts ...Option) (*Basis, error) {
	if family == nil {
		return nil, smolyakErrorf(opNewBasis, ErrNilFamily)
	}
	if len(shape) == 0 {
		return nil, smolyakErrorf(opNewBasis, ErrBadDimension)
	}
	if level < 0 {
		return nil, smolyakErrorf(opNewBasis, fmt.Errorf("level=%d: %w", level, ErrBadLevel))
	}
	for k, s := range shape {
		if s < 1 {
			return nil, smolyakErrorf(opNewBasis, fmt.Errorf("shape[%d]=%d: %w", k, s, ErrBadShape))
		}
	}
	sh := make([]int, len(shape))
	copy(sh, shape)
	o := gatherOptions(opts...)

	return &Basis{
		family:  family,
		shape:   sh,
		level:   level,
		workers: o.workers,
		logger:  o.logger,
	}, nil
}

// Isotropic returns a shape of n ones, the classic |i| <= N + level pattern.
func Isotropic(n int) []int {
	if n < 0 {
		n = 0
	}
	out := make([]int, n)
	for k := range out {
		out[k] = 1
	}

	return out
}

// Family returns the univariate family.
func (b *Basis) Family() univariate.Family { return b.family }

// Shape returns a copy of the per-dimension shape.
func (b *Basis) Shape() []int {
	out := make([]int, len(b.shape))
	copy(out, b.shape)

	return out
}

// Level returns the approximation level.
func (b *Basis) Level() int { return b.level }

// Dim returns the number of dimensions N.
func (b *Basis) Dim() int { return len(b.shape) }

// Cap returns N + level, the index budget handed to the index domain.
func (b *Basis) Cap() int { return len(b.shape) + b.level }

// String implements fmt.Stringer.
func (b *Basis) String() string {
	return fmt.Sprintf("Smolyak{family=%v, shape=%v, level=%d, cap=%d}", b.family, b.shape, b.level, b.Cap())
}

// validateBasis is the first guard of every public operation.
func validateBasis(b *Basis) error {
	if b == nil {
		return ErrNilBasis
	}
	if b.family == nil {
		return ErrNilFamily
	}

	return nil
}

// domain builds the index domain for (Cap, shape) and checks that no dimension
// needs a set index beyond the family's MaxCapacity.
//
// Errors:
//   - index domain errors; univariate.ErrCapacity.
func (b *Basis) domain() (*index.Domain, error) {
	dom, err := index.NewDomain(b.Cap(), b.shape)
	if err != nil {
		return nil, err
	}
	limit := b.family.MaxCapacity()
	var k, m int
	for k = 0; k < dom.Dim(); k++ {
		if m = dom.MaxIndex(k); m > limit {
			return nil, fmt.Errorf("dimension %d: set index %d > %d: %w", k, m, limit, univariate.ErrCapacity)
		}
	}

	return dom, nil
}

// plan is the per-call block layout shared by the assembler and the evaluator.
// Everything in it is a pure function of the Basis.
type plan struct {
	set     *index.Set
	max     []int                // K_k, largest set index per dimension
	ranges  [][]univariate.Range // ranges[k][i] = family.SetRange(i), i = 1..K_k (slot 0 unused)
	offsets []int                // offsets[p] = first row/column of block p; offsets[Len] = d
}

// newPlan enumerates the admissible set once and lays out the blocks.
//
// Implementation:
//   - Stage 1: build the capacity-checked domain and enumerate; record per-dimension maxima.
//   - Stage 2: collect the range table of every dimension up to K_k and check each
//     range length against SetLength.
//   - Stage 3: running block offsets in enumeration order.
//
// Errors:
//   - index domain errors; univariate.ErrCapacity; ErrInconsistentFamily.
func (b *Basis) newPlan() (*plan, error) {
	dom, err := b.domain()
	if err != nil {
		return nil, smolyakErrorf(opPlan, err)
	}
	set := dom.Enumerate()
	n := len(b.shape)
	p := &plan{
		set:     set,
		max:     set.Max(),
		ranges:  make([][]univariate.Range, n),
		offsets: make([]int, set.Len()+1),
	}

	var k, i int
	var r univariate.Range
	for k = 0; k < n; k++ {
		p.ranges[k] = make([]univariate.Range, p.max[k]+1)
		for i = 1; i <= p.max[k]; i++ {
			r = b.family.SetRange(i)
			if r.Len() != b.family.SetLength(i) || r.Len() < 1 {
				return nil, smolyakErrorf(opPlan, fmt.Errorf("set index %d: range %v, length %d: %w",
					i, r, b.family.SetLength(i), ErrInconsistentFamily))
			}
			p.ranges[k][i] = r
		}
	}

	lens := make([]int, n)
	set.Each(func(q int, idx []int) {
		for k, i := range idx {
			lens[k] = p.ranges[k][i].Len()
		}
		p.offsets[q+1] = p.offsets[q] + index.Product(lens)
	})

	return p, nil
}

// dof returns the total size of the laid-out blocks.
func (p *plan) dof() int { return p.offsets[len(p.offsets)-1] }

// bounds returns the half-open per-dimension offset bounds of multi-index idx.
func (p *plan) bounds(idx []int) (lo, hi []int) {
	lo = make([]int, len(idx))
	hi = make([]int, len(idx))
	for k, i := range idx {
		lo[k] = p.ranges[k][i].Lo
		hi[k] = p.ranges[k][i].Hi
	}

	return lo, hi
}
