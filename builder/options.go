// SPDX-License-Identifier: MIT
// Package: hyperreach/builder
//
// options.go: functional options for the builder package.
//
// Option constructors validate and panic on meaningless inputs; constructors
// themselves return errors.

package builder

import (
	"math/rand"
	"strconv"
)

// BuilderOption customizes a builderConfig before construction begins.
type BuilderOption func(*builderConfig)

// IDFn maps a zero-based index to an identifier. It must be pure.
type IDFn func(idx int) string

// PrefixIDFn returns an IDFn yielding prefix followed by the decimal index.
func PrefixIDFn(prefix string) IDFn {
	return func(idx int) string { return prefix + strconv.Itoa(idx) }
}

// WithIDScheme sets the vertex ID generator. Panics on nil.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) { c.idFn = fn }
}

// WithHyperedgeIDScheme sets the hyperedge ID generator. Panics on nil.
func WithHyperedgeIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithHyperedgeIDScheme(nil)")
	}
	return func(c *builderConfig) { c.edgeIDFn = fn }
}

// WithRand provides an explicit RNG. Panics on nil; prefer WithSeed.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) { c.rng = r }
}

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithStartTime sets the timestamp of the earliest generated hyperedge.
func WithStartTime(t int64) BuilderOption {
	return func(c *builderConfig) { c.start = t }
}

// WithStep sets the spacing between consecutive Chain/Star hyperedges.
// Panics if step <= 0, which would break the strictly increasing layout.
func WithStep(step int64) BuilderOption {
	if step <= 0 {
		panic("builder: WithStep(step<=0)")
	}
	return func(c *builderConfig) { c.step = step }
}
