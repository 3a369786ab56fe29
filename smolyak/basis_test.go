// SPDX-License-Identifier: MIT
package smolyak_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sparsegrid/smolyak"
	"github.com/katalvlaran/sparsegrid/univariate"
)

// TestNewBasisErrors checks usage errors are reported with their sentinels.
func TestNewBasisErrors(t *testing.T) {
	cheb := univariate.NewChebyshev()
	tests := []struct {
		name   string
		family univariate.Family
		shape  []int
		level  int
		want   error
	}{
		{"nil family", nil, []int{1}, 1, smolyak.ErrNilFamily},
		{"empty shape", cheb, nil, 1, smolyak.ErrBadDimension},
		{"negative level", cheb, []int{1, 1}, -1, smolyak.ErrBadLevel},
		{"zero weight", cheb, []int{1, 0}, 1, smolyak.ErrBadShape},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b, err := smolyak.NewBasis(tc.family, tc.shape, tc.level)
			require.ErrorIs(t, err, tc.want)
			require.Nil(t, b)
		})
	}
}

// TestBasisAccessors checks derived values and defensive copies.
func TestBasisAccessors(t *testing.T) {
	cheb := univariate.NewChebyshev()
	shape := []int{1, 2, 1}
	b := MustBasis(t, cheb, shape, 3)
	shape[1] = 9

	assert.Equal(t, []int{1, 2, 1}, b.Shape())
	got := b.Shape()
	got[0] = 5
	assert.Equal(t, []int{1, 2, 1}, b.Shape())

	assert.Equal(t, 3, b.Dim())
	assert.Equal(t, 3, b.Level())
	assert.Equal(t, 6, b.Cap())
	assert.Same(t, cheb, b.Family())
	assert.Equal(t, "Smolyak{family=Chebyshev[-1, 1], shape=[1 2 1], level=3, cap=6}", b.String())
}

// TestIsotropic builds the all-ones shape.
func TestIsotropic(t *testing.T) {
	assert.Equal(t, []int{1, 1, 1}, smolyak.Isotropic(3))
	assert.Empty(t, smolyak.Isotropic(0))
	assert.Empty(t, smolyak.Isotropic(-2))
}

// TestOptionPanics treats nonsensical options as programmer errors.
func TestOptionPanics(t *testing.T) {
	require.Panics(t, func() { smolyak.WithWorkers(0) })
	require.Panics(t, func() { smolyak.WithLogger(nil) })
	require.NotPanics(t, func() {
		MustBasis(t, univariate.NewChebyshev(), []int{1}, 0, nil, smolyak.WithWorkers(3))
	})
}

// TestNilBasis checks every operation rejects a nil basis.
func TestNilBasis(t *testing.T) {
	_, err := smolyak.DegreesOfFreedom(nil)
	require.ErrorIs(t, err, smolyak.ErrNilBasis)
	_, _, err = smolyak.BasisMatrix(nil)
	require.ErrorIs(t, err, smolyak.ErrNilBasis)
	_, err = smolyak.Coordinates(nil)
	require.ErrorIs(t, err, smolyak.ErrNilBasis)
	_, err = smolyak.Interpolate(nil, []float64{1}, []float64{0})
	require.ErrorIs(t, err, smolyak.ErrNilBasis)
	_, err = smolyak.InterpolatedBasis(nil, []float64{0})
	require.ErrorIs(t, err, smolyak.ErrNilBasis)
	_, err = smolyak.EvaluateBatch(nil, []float64{1}, nil)
	require.ErrorIs(t, err, smolyak.ErrNilBasis)
	_, err = smolyak.Fit(nil, func([]float64) float64 { return 0 })
	require.ErrorIs(t, err, smolyak.ErrNilBasis)

	var zero smolyak.Basis // built without NewBasis
	_, err = smolyak.DegreesOfFreedom(&zero)
	require.ErrorIs(t, err, smolyak.ErrNilFamily)
}

// brokenFamily reports set lengths that disagree with its ranges.
type brokenFamily struct{ *univariate.Chebyshev }

func (brokenFamily) SetLength(i int) int { return 3 }

// TestInconsistentFamily ensures a family with mismatched ranges is rejected before assembly.
func TestInconsistentFamily(t *testing.T) {
	b := MustBasis(t, brokenFamily{univariate.NewChebyshev()}, []int{1, 1}, 1)

	_, _, err := smolyak.BasisMatrix(b)
	require.ErrorIs(t, err, smolyak.ErrInconsistentFamily)
	_, err = smolyak.InterpolatedBasis(b, []float64{0, 0})
	require.ErrorIs(t, err, smolyak.ErrInconsistentFamily)
}

// TestCapacityPropagates surfaces the family's capacity limit from deep levels,
// identically for counting, assembly and evaluation.
func TestCapacityPropagates(t *testing.T) {
	for _, level := range []int{univariate.MaxChebyshevCapacity, 40, 64, 70} {
		t.Run(fmt.Sprintf("level=%d", level), func(t *testing.T) {
			b := MustBasis(t, univariate.NewChebyshev(), []int{1}, level)

			_, err := smolyak.DegreesOfFreedom(b)
			require.ErrorIs(t, err, univariate.ErrCapacity)
			_, _, err = smolyak.BasisMatrix(b)
			require.ErrorIs(t, err, univariate.ErrCapacity)
			_, err = smolyak.Coordinates(b)
			require.ErrorIs(t, err, univariate.ErrCapacity)
			_, err = smolyak.InterpolatedBasis(b, []float64{0})
			require.ErrorIs(t, err, univariate.ErrCapacity)
		})
	}
}

// TestCapacityLimitCounts: the last supported level still counts, and agrees with the grid.
func TestCapacityLimitCounts(t *testing.T) {
	cheb := univariate.NewChebyshev()
	d, err := smolyak.DegreesOfFreedom(MustBasis(t, cheb, []int{1}, univariate.MaxChebyshevCapacity-1))
	require.NoError(t, err)
	assert.Equal(t, cheb.Size(univariate.MaxChebyshevCapacity), d)

	// Weighted dimensions reach fewer set indices, so a deeper level still fits.
	_, err = smolyak.DegreesOfFreedom(MustBasis(t, cheb, []int{3}, 3*(univariate.MaxChebyshevCapacity-1)))
	require.NoError(t, err)

	leja := univariate.NewLeja()
	b := MustBasis(t, leja, []int{1}, leja.MaxCapacity()-1)
	d, err = smolyak.DegreesOfFreedom(b)
	require.NoError(t, err)
	assert.Equal(t, univariate.MaxLejaSize, d)
	x, err := smolyak.Coordinates(b)
	require.NoError(t, err)
	assert.Len(t, x, d)

	_, err = smolyak.DegreesOfFreedom(MustBasis(t, leja, []int{1}, leja.MaxCapacity()))
	require.ErrorIs(t, err, univariate.ErrCapacity)
}
