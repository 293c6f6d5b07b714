// SPDX-License-Identifier: MIT
// Package: hyperreach/builder
//
// impl_random_temporal.go: RandomTemporal(vertices, hyperedges, maxArity, span).
//
// Contract:
//   - vertices ≥ 2 (else ErrTooFewVertices); hyperedges ≥ 1 (else ErrTooFewVertices).
//   - 2 ≤ maxArity ≤ vertices (else ErrBadArity).
//   - span ≥ 1 (else ErrBadSpan).
//   - cfg.rng must be non-nil (else ErrNeedRandSource).
//   - Hyperedge i draws arity k uniform in [2, maxArity], k distinct vertices by
//     partial Fisher–Yates, and a timestamp uniform in [start, start+span).
//     Small spans produce equal timestamps on purpose.
//
// Determinism: draws happen in hyperedge order, so a fixed seed fixes the output.

package builder

import "fmt"

const (
	methodRandomTemporal = "RandomTemporal"
	minRandomVertices    = 2
	minRandomHyperedges  = 1
	minArity             = 2
)

// RandomTemporal returns a Constructor sampling a random time-varying hypergraph.
func RandomTemporal(vertices, hyperedges, maxArity int, span int64) Constructor {
	return func(b *batch, cfg builderConfig) error {
		if vertices < minRandomVertices {
			return fmt.Errorf("%s: vertices=%d < min=%d: %w",
				methodRandomTemporal, vertices, minRandomVertices, ErrTooFewVertices)
		}
		if hyperedges < minRandomHyperedges {
			return fmt.Errorf("%s: hyperedges=%d < min=%d: %w",
				methodRandomTemporal, hyperedges, minRandomHyperedges, ErrTooFewVertices)
		}
		if maxArity < minArity || maxArity > vertices {
			return fmt.Errorf("%s: maxArity=%d not in [%d,%d]: %w",
				methodRandomTemporal, maxArity, minArity, vertices, ErrBadArity)
		}
		if span < 1 {
			return fmt.Errorf("%s: span=%d < 1: %w", methodRandomTemporal, span, ErrBadSpan)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodRandomTemporal, ErrNeedRandSource)
		}

		rng := cfg.rng
		pool := make([]int, vertices)
		for i := range pool {
			pool[i] = i
		}

		for e := 0; e < hyperedges; e++ {
			k := minArity + rng.Intn(maxArity-minArity+1)
			members := make([]string, k)
			for j := 0; j < k; j++ {
				p := j + rng.Intn(vertices-j)
				pool[j], pool[p] = pool[p], pool[j]
				members[j] = cfg.idFn(pool[j])
			}
			b.add(cfg, members, cfg.start+rng.Int63n(span))
		}

		return nil
	}
}
