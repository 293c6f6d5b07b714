// SPDX-License-Identifier: MIT

package hyperbfs

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for hyperbfs execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("hyperbfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("hyperbfs: invalid option supplied")
)

// Option configures a search via functional arguments. Invalid values are
// recorded and surfaced as ErrOptionViolation when Reach is invoked.
type Option func(*Options)

// Options holds parameters and callbacks of one search.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnVisit is called when visiting a hyperedge with its depth. If it
	// returns an error, the search aborts and propagates it.
	OnVisit func(hyperedge string, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this many hyperedges.
	MaxDepth int

	err error
}

// DefaultOptions returns background Context, no depth limit, no-op hook.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		OnVisit: func(string, int) error { return nil },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a callback run on every visited hyperedge.
func WithOnVisit(fn func(hyperedge string, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth limits the search to paths of at most d hyperedges.
//
//	d > 0: limit to depth d
//	d == 0: no limit
//	d < 0: ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// Result holds the outcome of a search.
type Result struct {
	Order   []string
	Depth   map[string]int
	Reached map[string]int
}

// Reachable reports whether v was reached.
func (r *Result) Reachable(v string) bool {
	_, ok := r.Reached[v]
	return ok
}
