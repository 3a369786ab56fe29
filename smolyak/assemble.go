// SPDX-License-Identifier: MIT

package smolyak

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/sparsegrid/index"
	"github.com/katalvlaran/sparsegrid/matrix"
)

const (
	opBasisMatrix = "BasisMatrix"
	opCoordinates = "Coordinates"
)

// tables holds the per-dimension univariate data of one assembly.
type tables struct {
	points [][]float64       // points[k] = Gridpoints(K_k)
	blocks [][]*matrix.Dense // blocks[k][(ic-1)*K_k+(jc-1)]: points of jc × functions of ic
}

// block returns E_k for (function set ic, point set jc).
func (t *tables) block(k, ic, jc, kmax int) *matrix.Dense {
	return t.blocks[k][(ic-1)*kmax+(jc-1)]
}

// buildTables evaluates each dimension once and cuts the shared matrix into set blocks.
//
// Implementation:
//   - Stage 1: points_k = Gridpoints(K_k); A0_k = Evaluate(K_k, points_k), rows = functions.
//   - Stage 2: for every (ic, jc) in 1..K_k, E = (A0_k[R[ic], R[jc]])ᵀ so that rows follow
//     the points of jc and columns the functions of ic.
//
// Complexity:
//   - Time O(Σ_k Size(K_k)²), Space O(Σ_k Size(K_k)²).
func (b *Basis) buildTables(p *plan) (*tables, error) {
	n := len(b.shape)
	t := &tables{
		points: make([][]float64, n),
		blocks: make([][]*matrix.Dense, n),
	}

	var (
		k, ic, jc int
		err       error
		a0, sub   *matrix.Dense
	)
	for k = 0; k < n; k++ {
		kmax := p.max[k]
		if t.points[k], err = b.family.Gridpoints(kmax); err != nil {
			return nil, err
		}
		if a0, err = b.family.Evaluate(kmax, t.points[k]); err != nil {
			return nil, err
		}
		t.blocks[k] = make([]*matrix.Dense, kmax*kmax)
		for ic = 1; ic <= kmax; ic++ {
			for jc = 1; jc <= kmax; jc++ {
				if sub, err = a0.Induced(p.ranges[k][ic].Indices(), p.ranges[k][jc].Indices()); err != nil {
					return nil, err
				}
				if t.blocks[k][(ic-1)*kmax+(jc-1)], err = matrix.Transpose(sub); err != nil {
					return nil, err
				}
			}
		}
	}

	return t, nil
}

// BasisMatrix assembles the d×d basis matrix A and the matching coordinates x.
//
// Layout:
//   - Blocks follow the enumeration order of the admissible set along both axes.
//   - The block of (row multi-index j, column multi-index i) is E_N ⊗ ... ⊗ E_1 with
//     E_k[a][c] = φ_{R[i_k].Lo+c}(x_{R[j_k].Lo+a}); the first dimension varies fastest.
//   - x lists, block by block, the Cartesian product of each block's new points, first
//     dimension fastest, so A[p][q] = φ_q(x[p]) and A·c = f(x) is the interpolation system.
//
// Implementation:
//   - Stage 1: plan (enumerate once, range tables, block offsets) and per-dimension tables.
//   - Stage 2: pre-size A once; each column strip i is an independent task writing its
//     blocks at precomputed offsets (bounded by WithWorkers). The layout does not depend
//     on scheduling.
//   - Stage 3: coordinates in the same enumeration order.
//
// Errors:
//   - ErrNilBasis, ErrNilFamily, ErrInconsistentFamily; index, univariate and matrix
//     errors propagated under the "BasisMatrix" tag. No partial result is returned.
//
// Complexity:
//   - Time O(d²) for the blocks plus the per-dimension tables; Space O(d²).
//
// AI-Hints:
//   - Call Fit when only the interpolation coefficients of a function are needed.
func BasisMatrix(b *Basis) (*matrix.Dense, [][]float64, error) {
	if err := validateBasis(b); err != nil {
		return nil, nil, smolyakErrorf(opBasisMatrix, err)
	}
	p, err := b.newPlan()
	if err != nil {
		return nil, nil, smolyakErrorf(opBasisMatrix, err)
	}
	a, x, err := b.assembleWithPlan(p)
	if err != nil {
		return nil, nil, smolyakErrorf(opBasisMatrix, err)
	}

	return a, x, nil
}

// assembleWithPlan is BasisMatrix after validation; p is read-only.
func (b *Basis) assembleWithPlan(p *plan) (*matrix.Dense, [][]float64, error) {
	t, err := b.buildTables(p)
	if err != nil {
		return nil, nil, err
	}

	d := p.dof()
	a, err := matrix.NewDense(d, d)
	if err != nil {
		return nil, nil, err
	}

	indices := p.set.Indices()
	var g errgroup.Group
	g.SetLimit(b.workers)
	for q := range indices {
		q := q
		g.Go(func() error {
			return b.fillStrip(a, p, t, indices, q)
		})
	}
	if err = g.Wait(); err != nil {
		return nil, nil, err
	}

	x := coordinates(p, t.points)

	b.logger.Debug("basis matrix assembled",
		"dim", len(b.shape),
		"level", b.level,
		"cap", b.Cap(),
		"indices", len(indices),
		"dof", d,
		"workers", b.workers,
	)

	return a, x, nil
}

// fillStrip writes the column strip of multi-index indices[q]: one Kronecker block per
// row multi-index, stacked in enumeration order.
func (b *Basis) fillStrip(a *matrix.Dense, p *plan, t *tables, indices [][]int, q int) error {
	n := len(b.shape)
	col := indices[q]
	factors := make([]matrix.Matrix, n)

	var r, k int
	for r = range indices {
		row := indices[r]
		// KronAll takes the slowest factor first: E_N, ..., E_1.
		for k = 0; k < n; k++ {
			factors[n-1-k] = t.block(k, col[k], row[k], p.max[k])
		}
		blk, err := matrix.KronAll(factors...)
		if err != nil {
			return fmt.Errorf("block (%d,%d): %w", r, q, err)
		}
		if err = a.SetBlock(p.offsets[r], p.offsets[q], blk); err != nil {
			return fmt.Errorf("block (%d,%d): %w", r, q, err)
		}
	}

	return nil
}

// coordinates flattens the per-block Cartesian products of new points.
func coordinates(p *plan, points [][]float64) [][]float64 {
	x := make([][]float64, 0, p.dof())
	p.set.Each(func(_ int, idx []int) {
		lo, hi := p.bounds(idx)
		index.ForEachTuple(lo, hi, func(tp []int) {
			pt := make([]float64, len(tp))
			for k, off := range tp {
				pt[k] = points[k][off]
			}
			x = append(x, pt)
		})
	})

	return x
}

// Coordinates returns the coordinate vector x of BasisMatrix without building A.
//
// Errors:
//   - ErrNilBasis, ErrNilFamily, ErrInconsistentFamily; index and univariate errors.
//
// Complexity:
//   - Time O(d·N + Σ_k Size(K_k)), Space O(d·N).
func Coordinates(b *Basis) ([][]float64, error) {
	if err := validateBasis(b); err != nil {
		return nil, smolyakErrorf(opCoordinates, err)
	}
	p, err := b.newPlan()
	if err != nil {
		return nil, smolyakErrorf(opCoordinates, err)
	}
	points := make([][]float64, len(b.shape))
	var k int
	for k = range points {
		if points[k], err = b.family.Gridpoints(p.max[k]); err != nil {
			return nil, smolyakErrorf(opCoordinates, err)
		}
	}

	return coordinates(p, points), nil
}
