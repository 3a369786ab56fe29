// SPDX-License-Identifier: MIT
// Package univariate: sentinel error set.
// Every message is prefixed with "univariate: ..." and returned wrapped with the
// operation tag, e.g. "Chebyshev.Evaluate: univariate: capacity out of range".

package univariate

import "errors"

var (
	// ErrCapacity indicates a set index (capacity) below 1 or beyond what the family supports.
	ErrCapacity = errors.New("univariate: capacity out of range")

	// ErrNoPoints indicates an empty evaluation point slice.
	ErrNoPoints = errors.New("univariate: no evaluation points")

	// ErrNonFinitePoint indicates a NaN or ±Inf evaluation point.
	ErrNonFinitePoint = errors.New("univariate: NaN or Inf evaluation point")
)
