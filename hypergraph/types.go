// SPDX-License-Identifier: MIT

package hypergraph

import "errors"

// Sentinel errors for hypergraph construction and lookup.
var (
	// ErrUnknownEntity indicates a lookup referenced a vertex or hyperedge
	// that is not part of the hypergraph.
	ErrUnknownEntity = errors.New("hypergraph: unknown entity")

	// ErrEmptyID indicates a hyperedge or vertex with a zero-length ID.
	ErrEmptyID = errors.New("hypergraph: empty ID")

	// ErrEmptyHyperedge indicates a hyperedge without any vertex.
	ErrEmptyHyperedge = errors.New("hypergraph: hyperedge has no vertices")

	// ErrDuplicateHyperedge indicates the same hyperedge ID was supplied twice.
	ErrDuplicateHyperedge = errors.New("hypergraph: duplicate hyperedge")

	// ErrMissingTiming indicates a hyperedge without a timestamp.
	ErrMissingTiming = errors.New("hypergraph: hyperedge has no timing")

	// ErrOrphanTiming indicates a timestamp for a hyperedge that has no vertex set.
	ErrOrphanTiming = errors.New("hypergraph: timing for unknown hyperedge")
)

// Hyperedge is the construction record of one timed relation.
//
// Vertices may contain duplicates; they are collapsed into a set.
type Hyperedge struct {
	// ID uniquely identifies the hyperedge.
	ID string

	// Vertices lists every vertex the hyperedge touches.
	Vertices []string

	// Timing is the single timestamp of the hyperedge.
	Timing int64
}

// Hypergraph is an immutable time-varying hypergraph.
//
// members and timings are keyed by hyperedge ID; incident is the derived
// vertex → hyperedges index. All slices are sorted ascending and owned by
// the Hypergraph.
type Hypergraph struct {
	members  map[string][]string // hyperedge ID → vertex IDs
	timings  map[string]int64    // hyperedge ID → timestamp
	incident map[string][]string // vertex ID → hyperedge IDs
}
