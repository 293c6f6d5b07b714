// SPDX-License-Identifier: MIT

package hyperdijkstra

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/hyperreach/distance"
	"github.com/katalvlaran/hyperreach/hypergraph"
)

// Sentinel errors returned by the searches.
var (
	// ErrNilGraph indicates a nil *hypergraph.Hypergraph was passed.
	ErrNilGraph = errors.New("hyperdijkstra: graph is nil")

	// ErrUnknownAlgorithm indicates an Algorithm outside Hyperedge/Vertex.
	ErrUnknownAlgorithm = errors.New("hyperdijkstra: unknown algorithm")
)

// Options configures a single search.
//
// Ctx    – cancellation, checked once per pop. Default context.Background().
// Origin – zero point of the time axis, the Foremost initial value.
//
//	Default math.MinInt64. It never changes a returned distance.
//
// Stats  – if non-nil, overwritten with counters of the finished search.
type Options struct {
	Ctx    context.Context
	Origin int64
	Stats  *Stats
}

// Option represents a functional option for configuring a search.
type Option func(*Options)

// DefaultOptions returns Options with a background context and the minimal
// origin.
func DefaultOptions() Options {
	return Options{
		Ctx:    context.Background(),
		Origin: math.MinInt64,
	}
}

// WithContext sets the context checked between pops. nil is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOrigin sets the zero point of the time axis.
func WithOrigin(t int64) Option {
	return func(o *Options) {
		o.Origin = t
	}
}

// WithStats records search counters into s.
func WithStats(s *Stats) Option {
	return func(o *Options) {
		o.Stats = s
	}
}

// Stats counts the work of one search.
type Stats struct {
	Pops   int // heap entries popped, stale included
	Stale  int // popped entries superseded by a better distance
	Pushes int // heap entries pushed, seeds included
}

// Search is the signature shared by ByHyperedges and ByVertices.
type Search func(g *hypergraph.Hypergraph, source string, kind distance.Kind, opts ...Option) (map[string]int64, error)

// Algorithm selects a Search.
type Algorithm int

const (
	// Hyperedge selects ByHyperedges; it tends to be the faster of the two.
	Hyperedge Algorithm = iota

	// Vertex selects ByVertices.
	Vertex
)

// String returns "hyperedge" or "vertex".
func (a Algorithm) String() string {
	switch a {
	case Hyperedge:
		return "hyperedge"
	case Vertex:
		return "vertex"
	default:
		return fmt.Sprintf("algorithm(%d)", int(a))
	}
}

// ParseAlgorithm maps "hyperedge"/"vertex" (case-insensitive) to an Algorithm.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "hyperedge", "hyperedges":
		return Hyperedge, nil
	case "vertex", "vertices":
		return Vertex, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
	}
}

// Search returns the search function a stands for.
func (a Algorithm) Search() (Search, error) {
	switch a {
	case Hyperedge:
		return ByHyperedges, nil
	case Vertex:
		return ByVertices, nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, int(a))
	}
}

// prepare validates the common inputs and resolves options.
func prepare(g *hypergraph.Hypergraph, source string, kind distance.Kind, opts []Option) (Options, distance.Semantics, []string, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if g == nil {
		return cfg, nil, nil, ErrNilGraph
	}

	sem, err := distance.For(kind)
	if err != nil {
		return cfg, nil, nil, err
	}

	seeds, err := g.Incident(source)
	if err != nil {
		return cfg, nil, nil, fmt.Errorf("hyperdijkstra: source: %w", err)
	}

	return cfg, sem, seeds, nil
}
