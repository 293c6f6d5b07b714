// SPDX-License-Identifier: MIT
// Package: hyperreach/builder
//
// errors.go: sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Constructors attach context with %w, never by rewording sentinels.
//   • Constructors never panic; option constructors (WithX) panic on
//     meaningless input.

package builder

import "errors"

// ErrTooFewVertices indicates a size parameter below the constructor minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrBadArity indicates a hyperedge arity outside [2, vertices].
var ErrBadArity = errors.New("builder: invalid hyperedge arity")

// ErrBadSpan indicates a non-positive timestamp span.
var ErrBadSpan = errors.New("builder: invalid time span")

// ErrNeedRandSource indicates a stochastic constructor ran without WithSeed/WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates the batch could not be frozen into a hypergraph
// (e.g. an ID scheme produced colliding hyperedge IDs) or a nil constructor.
var ErrConstructFailed = errors.New("builder: construction failed")
