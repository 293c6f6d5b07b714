// SPDX-License-Identifier: MIT

package hypergraph

import (
	"fmt"
	"sort"
)

// New builds a Hypergraph from explicit hyperedges and derives the
// vertex → incident-hyperedges index.
//
// Validation (in order, per hyperedge):
//  1. ID must be non-empty (ErrEmptyID).
//  2. ID must not repeat (ErrDuplicateHyperedge).
//  3. At least one vertex (ErrEmptyHyperedge); every vertex ID non-empty (ErrEmptyID).
//
// The input slices are copied; later changes by the caller have no effect.
//
// Complexity:
//   - Time:  O(Σ|e| log |e| + Σdeg(v) log deg(v))
//   - Space: O(V + Σ|e|)
func New(edges ...Hyperedge) (*Hypergraph, error) {
	g := &Hypergraph{
		members:  make(map[string][]string, len(edges)),
		timings:  make(map[string]int64, len(edges)),
		incident: make(map[string][]string),
	}

	var e Hyperedge
	for _, e = range edges {
		if e.ID == "" {
			return nil, ErrEmptyID
		}
		if _, exists := g.members[e.ID]; exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateHyperedge, e.ID)
		}
		vs, err := vertexSet(e.ID, e.Vertices)
		if err != nil {
			return nil, err
		}
		g.members[e.ID] = vs
		g.timings[e.ID] = e.Timing
		for _, v := range vs {
			g.incident[v] = append(g.incident[v], e.ID)
		}
	}

	// Input order is arbitrary; the index is kept sorted for deterministic scans.
	for _, hs := range g.incident {
		sort.Strings(hs)
	}

	return g, nil
}

// FromMaps builds a Hypergraph from the two maps a dataset usually ships:
// hyperedge → vertices and hyperedge → timestamp.
//
// Both maps must describe the same hyperedge set: a hyperedge without
// timing yields ErrMissingTiming, a timing without hyperedge ErrOrphanTiming.
// Hyperedges are inserted in sorted ID order, so errors are reported
// deterministically.
func FromMaps(members map[string][]string, timings map[string]int64) (*Hypergraph, error) {
	for id := range timings {
		if _, ok := members[id]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrOrphanTiming, id)
		}
	}

	ids := make([]string, 0, len(members))
	for id := range members {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	edges := make([]Hyperedge, 0, len(ids))
	for _, id := range ids {
		t, ok := timings[id]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrMissingTiming, id)
		}
		edges = append(edges, Hyperedge{ID: id, Vertices: members[id], Timing: t})
	}

	return New(edges...)
}

// vertexSet returns the sorted, de-duplicated copy of vertices.
func vertexSet(hyperedge string, vertices []string) ([]string, error) {
	if len(vertices) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrEmptyHyperedge, hyperedge)
	}
	seen := make(map[string]struct{}, len(vertices))
	out := make([]string, 0, len(vertices))
	for _, v := range vertices {
		if v == "" {
			return nil, fmt.Errorf("%w: vertex of hyperedge %q", ErrEmptyID, hyperedge)
		}
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	sort.Strings(out)

	return out, nil
}
