// SPDX-License-Identifier: MIT

package smolyak

import (
	"fmt"

	"github.com/katalvlaran/sparsegrid/matrix"
)

const (
	opFit            = "Fit"
	opNewInterpolant = "NewInterpolant"
	opEval           = "Interpolant.Eval"
	opEvalBatch      = "Interpolant.EvalBatch"
)

// Interpolant pairs a Basis with coefficients c, representing u(x) = Σ_q c[q]·φ_q(x).
// The block layout is built once at construction and shared by every evaluation.
// It is immutable and safe for concurrent use.
type Interpolant struct {
	basis  *Basis
	plan   *plan
	coeffs []float64
}

// Fit interpolates f on the sparse grid of b.
//
// Implementation:
//   - Stage 1: lay out the blocks once; assemble A and the coordinates x from that layout.
//   - Stage 2: sample y[p] = f(x[p]) in coordinate order (sequentially; f need not be
//     safe for concurrent use).
//   - Stage 3: solve A·c = y with matrix.Solve.
//
// Errors:
//   - ErrNilBasis, ErrNilFamily, ErrNilFunction; assembly errors;
//     matrix.ErrNaNInf when f returns a non-finite sample; matrix.ErrSingular.
//
// Complexity:
//   - Time O(d³) for the solve plus d calls of f; Space O(d²).
func Fit(b *Basis, f func(x []float64) float64) (*Interpolant, error) {
	if err := validateBasis(b); err != nil {
		return nil, smolyakErrorf(opFit, err)
	}
	if f == nil {
		return nil, smolyakErrorf(opFit, ErrNilFunction)
	}

	layout, err := b.newPlan()
	if err != nil {
		return nil, smolyakErrorf(opFit, err)
	}
	a, x, err := b.assembleWithPlan(layout)
	if err != nil {
		return nil, smolyakErrorf(opFit, err)
	}
	y := make([]float64, len(x))
	pt := make([]float64, b.Dim())
	var p int
	for p = range x {
		copy(pt, x[p]) // f may scribble on its argument
		y[p] = f(pt)
	}
	c, err := matrix.Solve(a, y)
	if err != nil {
		return nil, smolyakErrorf(opFit, err)
	}

	b.logger.Debug("interpolant fitted",
		"dim", b.Dim(),
		"level", b.level,
		"dof", len(c),
	)

	return &Interpolant{basis: b, plan: layout, coeffs: c}, nil
}

// NewInterpolant wraps known coefficients; coeffs is copied.
//
// Errors:
//   - ErrNilBasis, ErrNilFamily, ErrLengthMismatch (len(coeffs) != d);
//     univariate.ErrCapacity, ErrInconsistentFamily.
func NewInterpolant(b *Basis, coeffs []float64) (*Interpolant, error) {
	if err := validateBasis(b); err != nil {
		return nil, smolyakErrorf(opNewInterpolant, err)
	}
	p, err := b.newPlan()
	if err != nil {
		return nil, smolyakErrorf(opNewInterpolant, err)
	}
	d := p.dof()
	if len(coeffs) != d {
		return nil, smolyakErrorf(opNewInterpolant, fmt.Errorf("len(coeffs)=%d, dof=%d: %w", len(coeffs), d, ErrLengthMismatch))
	}
	c := make([]float64, d)
	copy(c, coeffs)

	return &Interpolant{basis: b, plan: p, coeffs: c}, nil
}

// Basis returns the underlying basis.
func (u *Interpolant) Basis() *Basis { return u.basis }

// Coefficients returns a copy of c.
func (u *Interpolant) Coefficients() []float64 {
	out := make([]float64, len(u.coeffs))
	copy(out, u.coeffs)

	return out
}

// Eval returns u(point). See Interpolate.
func (u *Interpolant) Eval(point []float64) (float64, error) {
	if len(point) != len(u.basis.shape) {
		return 0, smolyakErrorf(opEval, fmt.Errorf("len(point)=%d, dim=%d: %w", len(point), len(u.basis.shape), ErrPointDimension))
	}
	v, err := u.basis.interpolateWithPlan(u.plan, u.coeffs, point)
	if err != nil {
		return 0, smolyakErrorf(opEval, err)
	}

	return v, nil
}

// EvalBatch returns u at every point, in input order. See EvaluateBatch.
func (u *Interpolant) EvalBatch(points [][]float64) ([]float64, error) {
	if err := u.basis.checkPoints(points); err != nil {
		return nil, smolyakErrorf(opEvalBatch, err)
	}
	out, err := u.basis.evaluateBatchWithPlan(u.plan, u.coeffs, points)
	if err != nil {
		return nil, smolyakErrorf(opEvalBatch, err)
	}

	return out, nil
}
