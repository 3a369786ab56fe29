// SPDX-License-Identifier: MIT
// Package smolyak: sentinel error set.
// Usage errors (caller contract violations) are defined here. Domain errors from the
// index, univariate and matrix packages are propagated unchanged under an operation
// tag, so errors.Is matches both kinds.

package smolyak

import (
	"errors"
	"fmt"
)

var (
	// ErrNilBasis indicates a nil *Basis argument.
	ErrNilBasis = errors.New("smolyak: nil basis")

	// ErrNilFamily indicates a basis built without a univariate family.
	ErrNilFamily = errors.New("smolyak: nil univariate family")

	// ErrBadDimension indicates an empty shape (N < 1).
	ErrBadDimension = errors.New("smolyak: dimension must be >= 1")

	// ErrBadLevel indicates a negative approximation level.
	ErrBadLevel = errors.New("smolyak: level must be >= 0")

	// ErrBadShape indicates a shape entry below 1.
	ErrBadShape = errors.New("smolyak: shape entries must be >= 1")

	// ErrPointDimension indicates a point whose length differs from N.
	ErrPointDimension = errors.New("smolyak: point dimension mismatch")

	// ErrLengthMismatch indicates a coefficient or output slice whose length differs
	// from the degrees of freedom.
	ErrLengthMismatch = errors.New("smolyak: length does not match degrees of freedom")

	// ErrNilFunction indicates a nil sample function passed to Fit.
	ErrNilFunction = errors.New("smolyak: nil function")

	// ErrInconsistentFamily indicates a family whose SetRange and SetLength disagree.
	ErrInconsistentFamily = errors.New("smolyak: family ranges and lengths disagree")
)

// smolyakErrorf wraps err with an operation tag, preserving it for errors.Is/As.
// Gate with err != nil.
func smolyakErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
