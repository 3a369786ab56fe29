// SPDX-License-Identifier: MIT

package smolyak

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/sparsegrid/index"
)

const (
	opInterpolate       = "Interpolate"
	opInterpolatedBasis = "InterpolatedBasis"
	opEvaluateBatch     = "EvaluateBatch"
)

// pointValues evaluates, per dimension, the functions 0..Size(K_k)-1 at point[k].
// No matrix over the grid is built; each dimension costs one Size(K_k)×1 evaluation.
func (b *Basis) pointValues(p *plan, point []float64) ([][]float64, error) {
	vals := make([][]float64, len(b.shape))
	var k int
	for k = range vals {
		col, err := b.family.Evaluate(p.max[k], point[k:k+1])
		if err != nil {
			return nil, fmt.Errorf("dimension %d: %w", k, err)
		}
		vals[k] = col.RawData() // Size×1, row-major == column
	}

	return vals, nil
}

// walk visits the d basis values at the point described by vals, in the column order of
// BasisMatrix: admissible multi-indices in enumeration order, and inside each the
// Cartesian product of its new functions with the first dimension fastest.
func walk(p *plan, vals [][]float64, fn func(pos int, v float64)) {
	pos := 0
	p.set.Each(func(_ int, idx []int) {
		lo, hi := p.bounds(idx)
		index.ForEachTuple(lo, hi, func(t []int) {
			v := 1.0
			for k, off := range t {
				v *= vals[k][off]
			}
			fn(pos, v)
			pos++
		})
	})
}

// Interpolate returns Σ_q coeffs[q]·φ_q(point).
//
// Errors:
//   - ErrNilBasis, ErrNilFamily, ErrPointDimension (len(point) != N),
//     ErrLengthMismatch (len(coeffs) != d); univariate errors (e.g. non-finite point).
//
// Complexity:
//   - Time O(d·N + Σ_k Size(K_k)), Space O(Σ_k Size(K_k)).
func Interpolate(b *Basis, coeffs, point []float64) (float64, error) {
	if err := validateBasis(b); err != nil {
		return 0, smolyakErrorf(opInterpolate, err)
	}
	if len(point) != len(b.shape) {
		return 0, smolyakErrorf(opInterpolate, fmt.Errorf("len(point)=%d, dim=%d: %w", len(point), len(b.shape), ErrPointDimension))
	}
	p, err := b.newPlan()
	if err != nil {
		return 0, smolyakErrorf(opInterpolate, err)
	}
	if len(coeffs) != p.dof() {
		return 0, smolyakErrorf(opInterpolate, fmt.Errorf("len(coeffs)=%d, dof=%d: %w", len(coeffs), p.dof(), ErrLengthMismatch))
	}

	v, err := b.interpolateWithPlan(p, coeffs, point)
	if err != nil {
		return 0, smolyakErrorf(opInterpolate, err)
	}

	return v, nil
}

// interpolateWithPlan is Interpolate after validation; p and coeffs are read-only.
func (b *Basis) interpolateWithPlan(p *plan, coeffs, point []float64) (float64, error) {
	vals, err := b.pointValues(p, point)
	if err != nil {
		return 0, err
	}
	sum := 0.0
	walk(p, vals, func(pos int, v float64) {
		sum += coeffs[pos] * v
	})

	return sum, nil
}

// InterpolatedBasis returns the d basis values φ_q(point), so that
// dot(InterpolatedBasis(b, point), c) == Interpolate(b, c, point).
//
// Errors:
//   - as InterpolatedBasisInto.
func InterpolatedBasis(b *Basis, point []float64) ([]float64, error) {
	d, err := DegreesOfFreedom(b)
	if err != nil {
		return nil, smolyakErrorf(opInterpolatedBasis, err)
	}
	out := make([]float64, d)
	if err = InterpolatedBasisInto(b, point, out); err != nil {
		return nil, err
	}

	return out, nil
}

// InterpolatedBasisInto writes the d basis values at point into out.
// out is untouched on error.
//
// Errors:
//   - ErrNilBasis, ErrNilFamily, ErrPointDimension, ErrLengthMismatch (len(out) != d);
//     univariate errors.
func InterpolatedBasisInto(b *Basis, point, out []float64) error {
	if err := validateBasis(b); err != nil {
		return smolyakErrorf(opInterpolatedBasis, err)
	}
	if len(point) != len(b.shape) {
		return smolyakErrorf(opInterpolatedBasis, fmt.Errorf("len(point)=%d, dim=%d: %w", len(point), len(b.shape), ErrPointDimension))
	}
	p, err := b.newPlan()
	if err != nil {
		return smolyakErrorf(opInterpolatedBasis, err)
	}
	if len(out) != p.dof() {
		return smolyakErrorf(opInterpolatedBasis, fmt.Errorf("len(out)=%d, dof=%d: %w", len(out), p.dof(), ErrLengthMismatch))
	}
	vals, err := b.pointValues(p, point)
	if err != nil {
		return smolyakErrorf(opInterpolatedBasis, err)
	}
	walk(p, vals, func(pos int, v float64) {
		out[pos] = v
	})

	return nil
}

// EvaluateBatch interpolates coeffs at every point; out[i] belongs to points[i].
// Points are independent tasks spread over WithWorkers goroutines; the first error
// cancels the batch and no partial result is returned.
//
// Errors:
//   - ErrNilBasis, ErrNilFamily, ErrPointDimension (any point), ErrLengthMismatch;
//     univariate errors.
//
// Complexity:
//   - Time O(len(points)·(d·N + Σ_k Size(K_k))), Space O(len(points)).
func EvaluateBatch(b *Basis, coeffs []float64, points [][]float64) ([]float64, error) {
	if err := validateBasis(b); err != nil {
		return nil, smolyakErrorf(opEvaluateBatch, err)
	}
	if err := b.checkPoints(points); err != nil {
		return nil, smolyakErrorf(opEvaluateBatch, err)
	}
	p, err := b.newPlan()
	if err != nil {
		return nil, smolyakErrorf(opEvaluateBatch, err)
	}
	if len(coeffs) != p.dof() {
		return nil, smolyakErrorf(opEvaluateBatch, fmt.Errorf("len(coeffs)=%d, dof=%d: %w", len(coeffs), p.dof(), ErrLengthMismatch))
	}

	out, err := b.evaluateBatchWithPlan(p, coeffs, points)
	if err != nil {
		return nil, smolyakErrorf(opEvaluateBatch, err)
	}

	return out, nil
}

// checkPoints rejects the first point whose length is not the basis dimension.
func (b *Basis) checkPoints(points [][]float64) error {
	for i, pt := range points {
		if len(pt) != len(b.shape) {
			return fmt.Errorf("points[%d]: len=%d, dim=%d: %w", i, len(pt), len(b.shape), ErrPointDimension)
		}
	}

	return nil
}

// evaluateBatchWithPlan is EvaluateBatch after validation; p, coeffs and points are read-only.
func (b *Basis) evaluateBatchWithPlan(p *plan, coeffs []float64, points [][]float64) ([]float64, error) {
	out := make([]float64, len(points))
	var g errgroup.Group
	g.SetLimit(b.workers)
	for i := range points {
		i := i
		g.Go(func() error {
			v, err := b.interpolateWithPlan(p, coeffs, points[i])
			if err != nil {
				return fmt.Errorf("points[%d]: %w", i, err)
			}
			out[i] = v

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}
