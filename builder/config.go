// SPDX-License-Identifier: MIT
// Package: hyperreach/builder
//
// config.go: internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • idFn       = PrefixIDFn("v")   ("v0","v1",...)
//   • edgeIDFn   = PrefixIDFn("h")   ("h0","h1",...)
//   • rng        = nil               (pure unless seeded)
//   • start      = 0
//   • step       = 1

package builder

import (
	"math/rand"

	"github.com/katalvlaran/hyperreach/hypergraph"
)

const (
	defaultVertexPrefix    = "v"
	defaultHyperedgePrefix = "h"
	defaultStart           = int64(0)
	defaultStep            = int64(1)
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	idFn     IDFn       // vertex index → ID
	edgeIDFn IDFn       // hyperedge index → ID
	rng      *rand.Rand // nil means no randomness
	start    int64      // first timestamp
	step     int64      // spacing for deterministic constructors
}

// newBuilderConfig applies options in order over the defaults; last wins.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:     PrefixIDFn(defaultVertexPrefix),
		edgeIDFn: PrefixIDFn(defaultHyperedgePrefix),
		start:    defaultStart,
		step:     defaultStep,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// batch accumulates hyperedges across constructors.
type batch struct {
	edges []hypergraph.Hyperedge
}

// add appends one hyperedge, naming it by its batch index.
func (b *batch) add(cfg builderConfig, vertices []string, t int64) {
	b.edges = append(b.edges, hypergraph.Hyperedge{
		ID:       cfg.edgeIDFn(len(b.edges)),
		Vertices: vertices,
		Timing:   t,
	})
}
