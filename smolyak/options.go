// SPDX-License-Identifier: MIT

// Package smolyak: functional configuration of a Basis.
//
// Options tune execution only (parallelism, logging); they never change the
// numbers a Basis produces or the order they come in.
package smolyak

import (
	"fmt"
	"io"
	"log/slog"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultWorkers runs assembly and batch evaluation sequentially.
	DefaultWorkers = 1
)

// Option configures a Basis at construction time.
type Option func(*options)

// options holds the resolved configuration.
type options struct {
	workers int          // goroutine bound for column strips / batch points
	logger  *slog.Logger // debug-level structured records
}

// WithWorkers bounds the goroutines used by BasisMatrix (one column strip per task)
// and EvaluateBatch (one point per task). Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(fmt.Sprintf("smolyak: WithWorkers(%d): need n >= 1", n))
	}

	return func(o *options) { o.workers = n }
}

// WithLogger sets the structured logger. Panics on nil; the default discards output.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("smolyak: WithLogger(nil)")
	}

	return func(o *options) { o.logger = l }
}

// discardLogger drops every record.
func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// gatherOptions applies defaults first, then user options in order.
func gatherOptions(user ...Option) options {
	o := options{
		workers: DefaultWorkers,
		logger:  discardLogger(),
	}
	for _, fn := range user {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
