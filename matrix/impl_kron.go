// SPDX-License-Identifier: MIT

// Package matrix - Kronecker products and block writes.
//
// Purpose:
//   - Combine per-dimension blocks into one multivariate block (Kron, KronAll).
//   - Place a block at a computed offset inside a pre-sized arena (SetBlock).
//
// Convention:
//   - (A ⊗ B)[i*rB + k, j*cB + l] = A[i,j] * B[k,l]; the right operand varies fastest.
//   - KronAll(M1, ..., Mn) = M1 ⊗ (M2 ⊗ (... ⊗ Mn)); pass the slowest factor first.

package matrix

import "fmt"

// Kron returns the Kronecker product a ⊗ b as a fresh Dense.
// MAIN DESCRIPTION:
//   - Every entry of a scales a full copy of b.
//
// Implementation:
//   - Stage 1: validate both operands non-nil.
//   - Stage 2: allocate (ra*rb)×(ca*cb).
//   - Stage 3: fixed i→j→k→l loops; *Dense operands use flat indexing.
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(ra*ca*rb*cb), Space O(ra*ca*rb*cb).
func Kron(a, b Matrix) (*Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opKron, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(opKron, err)
	}
	da, err := asDense(a)
	if err != nil {
		return nil, matrixErrorf(opKron, err)
	}
	db, err := asDense(b)
	if err != nil {
		return nil, matrixErrorf(opKron, err)
	}

	ra, ca, rb, cb := da.r, da.c, db.r, db.c
	res, err := NewDense(ra*rb, ca*cb)
	if err != nil {
		return nil, matrixErrorf(opKron, err)
	}

	var i, j, k, l int
	var av float64
	var dst int
	for i = 0; i < ra; i++ {
		for j = 0; j < ca; j++ {
			av = da.data[i*ca+j]
			if av == 0 {
				continue // result is zero-initialized
			}
			for k = 0; k < rb; k++ {
				dst = (i*rb+k)*res.c + j*cb
				for l = 0; l < cb; l++ {
					res.data[dst+l] = av * db.data[k*cb+l]
				}
			}
		}
	}

	return res, nil
}

// KronAll folds Kron over ms from the right: ms[0] ⊗ ms[1] ⊗ ... ⊗ ms[n-1].
// The last factor varies fastest along both rows and columns.
//
// Errors:
//   - ErrBadShape for an empty list, ErrNilMatrix for a nil factor.
//
// Complexity:
//   - Time and space O(Π rows_i * Π cols_i).
func KronAll(ms ...Matrix) (*Dense, error) {
	if len(ms) == 0 {
		return nil, matrixErrorf(opKron, ErrBadShape)
	}
	var i int
	for i = range ms {
		if err := ValidateNotNil(ms[i]); err != nil {
			return nil, matrixErrorf(opKron, fmt.Errorf("factor %d: %w", i, err))
		}
	}
	acc, err := asDense(ms[len(ms)-1])
	if err != nil {
		return nil, matrixErrorf(opKron, err)
	}
	for i = len(ms) - 2; i >= 0; i-- {
		if acc, err = Kron(ms[i], acc); err != nil {
			return nil, err
		}
	}

	return acc, nil
}

// SetBlock copies src into m with its top-left corner at (r0, c0).
//
// Implementation:
//   - Stage 1: validate that the block fits inside m.
//   - Stage 2: row-wise copy on the flat buffers (src materialized as *Dense).
//
// Errors:
//   - ErrNilMatrix, ErrBadShape (block does not fit), ErrNaNInf under the numeric policy.
//
// Complexity:
//   - Time O(rows(src)*cols(src)), Space O(1) for *Dense sources.
//
// AI-Hints:
//   - Pre-size the arena once, then call SetBlock at precomputed offsets; disjoint
//     blocks may be written from different goroutines.
func (m *Dense) SetBlock(r0, c0 int, src Matrix) error {
	if err := ValidateNotNil(src); err != nil {
		return matrixErrorf(opSetBlock, err)
	}
	sr, sc := src.Rows(), src.Cols()
	if r0 < 0 || c0 < 0 || r0+sr > m.r || c0+sc > m.c {
		return matrixErrorf(opSetBlock, fmt.Errorf("%dx%d at (%d,%d) in %dx%d: %w", sr, sc, r0, c0, m.r, m.c, ErrBadShape))
	}
	ds, err := asDense(src)
	if err != nil {
		return matrixErrorf(opSetBlock, err)
	}
	if m.validateNaNInf {
		var k int
		for k = range ds.data {
			if isNaNInf(ds.data[k]) {
				return matrixErrorf(opSetBlock, denseErrorf(opSetBlock, r0+k/sc, c0+k%sc, ErrNaNInf))
			}
		}
	}
	var i int
	for i = 0; i < sr; i++ {
		copy(m.data[(r0+i)*m.c+c0:(r0+i)*m.c+c0+sc], ds.data[i*sc:(i+1)*sc])
	}

	return nil
}

// asDense returns m itself when it is a *Dense, otherwise a Dense copy built via At.
func asDense(m Matrix) (*Dense, error) {
	if d, ok := m.(*Dense); ok {
		return d, nil
	}
	res, err := NewDense(m.Rows(), m.Cols())
	if err != nil {
		return nil, err
	}
	var i, j int
	var v float64
	for i = 0; i < res.r; i++ {
		for j = 0; j < res.c; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, err
			}
			res.data[i*res.c+j] = v
		}
	}

	return res, nil
}
