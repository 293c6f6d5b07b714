// SPDX-License-Identifier: MIT
// Package: hyperreach/builder
//
// impl_chain.go: Chain(n) and Star(n), the deterministic layouts.
//
// Chain contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Emits h_i = {v_i, v_(i+1)} at start + i·step for i = 0..n-2.
//   - From v0 every vertex is reachable; from v_k only v_(k-1) (same hyperedge) and later ones.
//
// Star contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - Centre is idFn(0), leaves idFn(1..n); hyperedge i = {centre, leaf_(i+1)} at start + i·step.

package builder

import "fmt"

const (
	methodChain   = "Chain"
	methodStar    = "Star"
	minChainNodes = 2
	minStarLeaves = 1
)

// Chain returns a Constructor emitting a temporal path over n vertices.
func Chain(n int) Constructor {
	return func(b *batch, cfg builderConfig) error {
		if n < minChainNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodChain, n, minChainNodes, ErrTooFewVertices)
		}
		for i := 0; i < n-1; i++ {
			b.add(cfg, []string{cfg.idFn(i), cfg.idFn(i + 1)}, cfg.start+int64(i)*cfg.step)
		}

		return nil
	}
}

// Star returns a Constructor emitting n centre–leaf hyperedges in time order.
func Star(n int) Constructor {
	return func(b *batch, cfg builderConfig) error {
		if n < minStarLeaves {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarLeaves, ErrTooFewVertices)
		}
		centre := cfg.idFn(0)
		for i := 0; i < n; i++ {
			b.add(cfg, []string{centre, cfg.idFn(i + 1)}, cfg.start+int64(i)*cfg.step)
		}

		return nil
	}
}
