// SPDX-License-Identifier: MIT

// Package matrix - dense linear solve.
//
// Purpose:
//   - Solve A·x = b for square A with LU factorization and partial pivoting.
//   - Delegate the factorization to gonum (LAPACK-style getrf/getrs), keeping this
//     package's validation, sentinel errors and numeric policy at the surface.
//
// Notes:
//   - Interpolation matrices of nested grids are not diagonally dominant, and a leading
//     block may carry zero pivots (e.g. T1 at the centre node). Pivoting is mandatory.

package matrix

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Solve returns x with A·x = b.
// MAIN DESCRIPTION:
//   - Dense direct solve used to recover interpolation coefficients.
//
// Implementation:
//   - Stage 1: validate A (non-nil, square) and len(b) == A.Rows(); reject NaN/Inf in b.
//   - Stage 2: copy A into a gonum Dense (row-major, same layout) and factorize PA = LU.
//   - Stage 3: solve; mat.ErrSingular and mat.Condition (cond > mat.ConditionTolerance)
//     both map to ErrSingular.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrNaNInf, ErrSingular.
//
// Determinism:
//   - Fixed pivoting order; identical inputs give bit-identical outputs.
//
// Complexity:
//   - Time O(n³), Space O(n²).
//
// AI-Hints:
//   - Assemble A once and call Solve per right-hand side; the factorization is not cached here.
func Solve(a Matrix, b []float64) ([]float64, error) {
	if err := ValidateSquareNonNil(a); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	if err := ValidateVecLen(b, a.Rows()); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	var k int
	for k = range b {
		if isNaNInf(b[k]) {
			return nil, matrixErrorf(opSolve, fmt.Errorf("b[%d]: %w", k, ErrNaNInf))
		}
	}
	da, err := asDense(a)
	if err != nil {
		return nil, matrixErrorf(opSolve, err)
	}

	n := da.r
	// gonum takes ownership of the slice it is given; pass copies.
	ga := mat.NewDense(n, n, da.RawData())
	rhs := make([]float64, n)
	copy(rhs, b)

	var lu mat.LU
	lu.Factorize(ga)

	x := mat.NewVecDense(n, nil)
	if err = lu.SolveVecTo(x, false, mat.NewVecDense(n, rhs)); err != nil {
		if errors.Is(err, mat.ErrSingular) {
			return nil, matrixErrorf(opSolve, ErrSingular)
		}
		var cond mat.Condition
		if errors.As(err, &cond) {
			return nil, matrixErrorf(opSolve, fmt.Errorf("condition %g: %w", float64(cond), ErrSingular))
		}

		return nil, matrixErrorf(opSolve, err)
	}

	out := make([]float64, n)
	for k = 0; k < n; k++ {
		out[k] = x.AtVec(k)
	}

	return out, nil
}
