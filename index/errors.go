// SPDX-License-Identifier: MIT
// Package index: sentinel error set.
// Messages carry the "index: ..." prefix; constructors wrap them with the operation tag.

package index

import "errors"

var (
	// ErrBadShape indicates an empty shape or a shape entry below 1.
	ErrBadShape = errors.New("index: invalid shape")

	// ErrBadCap indicates a cap below the number of dimensions (negative budget).
	ErrBadCap = errors.New("index: cap below dimension count")

	// ErrOutOfRange indicates a dimension or position outside the domain or set.
	ErrOutOfRange = errors.New("index: out of range")

	// ErrNilLength indicates a nil per-set-index length function.
	ErrNilLength = errors.New("index: nil length function")
)
