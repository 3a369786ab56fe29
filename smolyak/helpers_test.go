// SPDX-License-Identifier: MIT
// Package smolyak_test contains shared fixtures for the sparse-grid tests.
//
// Purpose:
//   • Build bases concisely and fail fast on construction errors.
//   • Provide deterministic coefficient vectors and evaluation points.

package smolyak_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sparsegrid/smolyak"
	"github.com/katalvlaran/sparsegrid/univariate"
)

// basisCase names one (family, shape, level) configuration.
type basisCase struct {
	name   string
	family univariate.Family
	shape  []int
	level  int
}

// basisCases spans both families, N = 1..3, isotropic and anisotropic shapes.
func basisCases() []basisCase {
	cheb := univariate.NewChebyshev()
	leja := univariate.NewLeja()
	return []basisCase{
		{"cheb N=1 L=3", cheb, []int{1}, 3},
		{"cheb N=2 L=0", cheb, []int{1, 1}, 0},
		{"cheb N=2 L=2", cheb, []int{1, 1}, 2},
		{"cheb N=3 L=2", cheb, []int{1, 1, 1}, 2},
		{"cheb N=2 aniso", cheb, []int{1, 2}, 3},
		{"cheb [0,2] N=2 L=2", univariate.NewChebyshev(univariate.WithInterval(0, 2)), []int{1, 1}, 2},
		{"leja N=1 L=4", leja, []int{1}, 4},
		{"leja N=2 L=2", leja, []int{1, 1}, 2},
		{"leja g3 N=3 L=1", univariate.NewLeja(univariate.WithGrowth(3)), []int{1, 1, 1}, 1},
		{"leja N=3 aniso", leja, []int{2, 1, 3}, 3},
	}
}

// MustBasis builds a Basis or fails the test.
func MustBasis(t testing.TB, family univariate.Family, shape []int, level int, opts ...smolyak.Option) *smolyak.Basis {
	t.Helper()
	b, err := smolyak.NewBasis(family, shape, level, opts...)
	require.NoError(t, err)

	return b
}

// randomVec returns n values in [-1, 1) from a fixed seed.
func randomVec(n int, seed int64) []float64 {
	rng := rand.New(rand.NewSource(seed))
	out := make([]float64, n)
	for k := range out {
		out[k] = 2*rng.Float64() - 1
	}

	return out
}

// randomPoints returns count points of dimension n inside [lo, hi]^n.
func randomPoints(count, n int, lo, hi float64, seed int64) [][]float64 {
	rng := rand.New(rand.NewSource(seed))
	out := make([][]float64, count)
	for p := range out {
		out[p] = make([]float64, n)
		for k := range out[p] {
			out[p][k] = lo + (hi-lo)*rng.Float64()
		}
	}

	return out
}

// dot returns Σ a[k]·b[k].
func dot(a, b []float64) float64 {
	s := 0.0
	for k := range a {
		s += a[k] * b[k]
	}

	return s
}
