// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for Kronecker products and block writes.
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sparsegrid/matrix"
)

// TestKronSmall checks the textbook 2×2 ⊗ 2×2 layout: the right operand varies fastest.
func TestKronSmall(t *testing.T) {
	a := NewFilledDense(t, 2, 2, []float64{1, 2, 3, 4})
	b := NewFilledDense(t, 2, 2, []float64{0, 5, 6, 7})

	k, err := matrix.Kron(a, b)
	require.NoError(t, err)
	CompareExact(t, [][]float64{
		{0, 5, 0, 10},
		{6, 7, 12, 14},
		{0, 15, 0, 20},
		{18, 21, 24, 28},
	}, k)
}

// TestKronRectangular checks shapes and the entry formula on non-square operands.
func TestKronRectangular(t *testing.T) {
	a := RandFilledDense(t, 2, 3, 11)
	b := RandFilledDense(t, 3, 1, 12)

	k, err := matrix.Kron(a, b)
	require.NoError(t, err)
	require.Equal(t, 6, k.Rows())
	require.Equal(t, 3, k.Cols())

	var i, j, p, q int
	for i = 0; i < 2; i++ {
		for j = 0; j < 3; j++ {
			for p = 0; p < 3; p++ {
				for q = 0; q < 1; q++ {
					want := MustAt(t, a, i, j) * MustAt(t, b, p, q)
					require.Equal(t, want, MustAt(t, k, i*3+p, j*1+q))
				}
			}
		}
	}
}

// TestKronFallbackMatchesDense ensures the interface path agrees with the *Dense path.
func TestKronFallbackMatchesDense(t *testing.T) {
	a := RandFilledDense(t, 3, 2, 1)
	b := RandFilledDense(t, 2, 4, 2)

	fast, err := matrix.Kron(a, b)
	require.NoError(t, err)
	slow, err := matrix.Kron(hide{a}, hide{b})
	require.NoError(t, err)
	CompareClose(t, fast, slow, 0, 0)
}

// TestKronAll checks associativity order (first factor slowest) and the single-factor case.
func TestKronAll(t *testing.T) {
	a := RandFilledDense(t, 2, 2, 3)
	b := RandFilledDense(t, 1, 3, 4)
	c := RandFilledDense(t, 2, 1, 5)

	bc, err := matrix.Kron(b, c)
	require.NoError(t, err)
	want, err := matrix.Kron(a, bc)
	require.NoError(t, err)

	got, err := matrix.KronAll(a, b, c)
	require.NoError(t, err)
	CompareClose(t, got, want, 0, 0)

	one, err := matrix.KronAll(a)
	require.NoError(t, err)
	CompareClose(t, one, a, 0, 0)

	_, err = matrix.KronAll()
	require.ErrorIs(t, err, matrix.ErrBadShape)

	_, err = matrix.KronAll(a, nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestKronNil covers nil operands, including a typed-nil *Dense.
func TestKronNil(t *testing.T) {
	a := IdentityDense(t, 2)
	var typedNil *matrix.Dense

	_, err := matrix.Kron(nil, a)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.Kron(a, typedNil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestSetBlock writes disjoint blocks into an arena and checks bounds and policy.
func TestSetBlock(t *testing.T) {
	arena := MustDense(t, 3, 4)
	require.NoError(t, arena.SetBlock(0, 0, NewFilledDense(t, 2, 2, []float64{1, 2, 3, 4})))
	require.NoError(t, arena.SetBlock(2, 1, NewFilledDense(t, 1, 3, []float64{5, 6, 7})))
	require.NoError(t, arena.SetBlock(0, 3, hide{NewFilledDense(t, 2, 1, []float64{8, 9})}))

	CompareExact(t, [][]float64{
		{1, 2, 0, 8},
		{3, 4, 0, 9},
		{0, 5, 6, 7},
	}, arena)

	err := arena.SetBlock(2, 2, NewFilledDense(t, 1, 3, []float64{1, 1, 1}))
	require.ErrorIs(t, err, matrix.ErrBadShape)
	err = arena.SetBlock(-1, 0, IdentityDense(t, 1))
	require.ErrorIs(t, err, matrix.ErrBadShape)
	err = arena.SetBlock(0, 0, nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// nanMatrix reports NaN from At so SetBlock's numeric policy can be exercised.
type nanMatrix struct{ hide }

func (nanMatrix) At(int, int) (float64, error) { return math.NaN(), nil }

// TestSetBlockNaN ensures non-finite sources are rejected and the arena is untouched.
func TestSetBlockNaN(t *testing.T) {
	arena := MustDense(t, 2, 2)
	src := nanMatrix{hide{MustDense(t, 1, 1)}}

	err := arena.SetBlock(1, 1, src)
	require.ErrorIs(t, err, matrix.ErrNaNInf)
	require.Equal(t, 0.0, MustAt(t, arena, 1, 1))
}
