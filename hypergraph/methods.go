// SPDX-License-Identifier: MIT
//
// File: methods.go
// Role: Read-only queries over an immutable Hypergraph.
//
// Determinism:
//   - Every slice-returning method yields IDs sorted ascending.
//
// Ownership:
//   - Timings, Vertices, VerticesOf, Hyperedges and HyperedgesOf return fresh copies.
//   - Members and Incident return the internal slices; they exist so searches
//     avoid one allocation per relaxation and must be treated as read-only.

package hypergraph

import (
	"fmt"
	"sort"
)

// Timings returns a copy of the full hyperedge → timestamp mapping.
// Complexity: O(E).
func (g *Hypergraph) Timings() map[string]int64 {
	out := make(map[string]int64, len(g.timings))
	for id, t := range g.timings {
		out[id] = t
	}

	return out
}

// Timing returns the timestamp of hyperedge.
// Fails with ErrUnknownEntity if the hyperedge does not exist.
// Complexity: O(1).
func (g *Hypergraph) Timing(hyperedge string) (int64, error) {
	t, ok := g.timings[hyperedge]
	if !ok {
		return 0, unknownHyperedge(hyperedge)
	}

	return t, nil
}

// Vertices returns every vertex of the hypergraph, sorted.
// Complexity: O(V log V).
func (g *Hypergraph) Vertices() []string {
	return sortedKeys(g.incident)
}

// VerticesOf returns a copy of the vertex set of hyperedge, sorted.
// Fails with ErrUnknownEntity if the hyperedge does not exist.
// Complexity: O(|e|).
func (g *Hypergraph) VerticesOf(hyperedge string) ([]string, error) {
	vs, err := g.Members(hyperedge)
	if err != nil {
		return nil, err
	}

	return append([]string(nil), vs...), nil
}

// Hyperedges returns every hyperedge ID, sorted.
// Complexity: O(E log E).
func (g *Hypergraph) Hyperedges() []string {
	return sortedKeys(g.members)
}

// HyperedgesOf returns a copy of the hyperedges incident to vertex, sorted.
// Fails with ErrUnknownEntity if the vertex does not exist.
// Complexity: O(deg(v)).
func (g *Hypergraph) HyperedgesOf(vertex string) ([]string, error) {
	hs, err := g.Incident(vertex)
	if err != nil {
		return nil, err
	}

	return append([]string(nil), hs...), nil
}

// Members returns the internal vertex slice of hyperedge. The slice must
// not be modified.
func (g *Hypergraph) Members(hyperedge string) ([]string, error) {
	vs, ok := g.members[hyperedge]
	if !ok {
		return nil, unknownHyperedge(hyperedge)
	}

	return vs, nil
}

// Incident returns the internal hyperedge slice of vertex. The slice must
// not be modified.
func (g *Hypergraph) Incident(vertex string) ([]string, error) {
	hs, ok := g.incident[vertex]
	if !ok {
		return nil, unknownVertex(vertex)
	}

	return hs, nil
}

// HasVertex reports whether vertex appears in at least one hyperedge.
func (g *Hypergraph) HasVertex(vertex string) bool {
	_, ok := g.incident[vertex]
	return ok
}

// HasHyperedge reports whether hyperedge exists.
func (g *Hypergraph) HasHyperedge(hyperedge string) bool {
	_, ok := g.members[hyperedge]
	return ok
}

// VertexCount returns |V|.
func (g *Hypergraph) VertexCount() int { return len(g.incident) }

// HyperedgeCount returns |E|.
func (g *Hypergraph) HyperedgeCount() int { return len(g.members) }

func unknownVertex(id string) error {
	return fmt.Errorf("%w: vertex %q", ErrUnknownEntity, id)
}

func unknownHyperedge(id string) error {
	return fmt.Errorf("%w: hyperedge %q", ErrUnknownEntity, id)
}

func sortedKeys(m map[string][]string) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)

	return out
}
