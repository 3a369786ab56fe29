// SPDX-License-Identifier: MIT

// Package univariate: functional configuration for the concrete families.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Options fields are unexported; public constructors consume ...Option.
package univariate

import (
	"fmt"
	"math"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultGrowth is the number of new Leja points per set index.
	DefaultGrowth = 2
)

// Option configures a family at construction time.
type Option func(*options)

// options holds the resolved configuration.
type options struct {
	interval Interval // physical domain
	growth   int      // new points per set index (Leja only)
}

// WithInterval maps the family onto [a, b] instead of [-1, 1].
// Panics if a or b is not finite or a >= b.
func WithInterval(a, b float64) Option {
	if math.IsNaN(a) || math.IsNaN(b) || math.IsInf(a, 0) || math.IsInf(b, 0) || a >= b {
		panic(fmt.Sprintf("univariate: WithInterval(%g, %g): need finite a < b", a, b))
	}

	return func(o *options) { o.interval = Interval{A: a, B: b} }
}

// WithGrowth sets the number of new points per set index for Leja families.
// Chebyshev families have a fixed doubling rule and ignore it.
// Panics if g < 1.
func WithGrowth(g int) Option {
	if g < 1 {
		panic(fmt.Sprintf("univariate: WithGrowth(%d): need g >= 1", g))
	}

	return func(o *options) { o.growth = g }
}

// gatherOptions applies defaults first, then user options in order.
func gatherOptions(user ...Option) options {
	o := options{
		interval: ReferenceInterval,
		growth:   DefaultGrowth,
	}
	for _, fn := range user {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
