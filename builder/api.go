// SPDX-License-Identifier: MIT
// Package: hyperreach/builder
//
// api.go: the Build orchestrator and the public constructor type.

package builder

import (
	"fmt"

	"github.com/katalvlaran/hyperreach/hypergraph"
)

// Constructor appends hyperedges to the batch using the resolved config.
// Constructors validate parameters first and return sentinel errors.
type Constructor func(b *batch, cfg builderConfig) error

// Build resolves bopts, applies every constructor in order and freezes the
// result. Errors are wrapped as "Build: %w"; hypergraph validation errors
// are additionally tagged with ErrConstructFailed.
func Build(bopts []BuilderOption, cons ...Constructor) (*hypergraph.Hypergraph, error) {
	edges, err := collect(bopts, cons)
	if err != nil {
		return nil, fmt.Errorf("Build: %w", err)
	}

	g, err := hypergraph.New(edges...)
	if err != nil {
		return nil, fmt.Errorf("Build: %w: %w", ErrConstructFailed, err)
	}

	return g, nil
}

// Hyperedges runs the constructors like Build but returns the raw records,
// e.g. for serialising a generated network.
func Hyperedges(bopts []BuilderOption, cons ...Constructor) ([]hypergraph.Hyperedge, error) {
	edges, err := collect(bopts, cons)
	if err != nil {
		return nil, fmt.Errorf("Hyperedges: %w", err)
	}

	return edges, nil
}

func collect(bopts []BuilderOption, cons []Constructor) ([]hypergraph.Hyperedge, error) {
	cfg := newBuilderConfig(bopts...)
	b := &batch{}
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(b, cfg); err != nil {
			return nil, err
		}
	}

	return b.edges, nil
}
