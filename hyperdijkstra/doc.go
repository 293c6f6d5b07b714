// SPDX-License-Identifier: MIT

// Package hyperdijkstra computes single-source minimal distances along
// time-respecting hyperpaths of a hypergraph.Hypergraph.
//
// A time-respecting hyperpath is a sequence of hyperedges e1, e2, …, ek with
// t(e1) < t(e2) < … < t(ek) where consecutive hyperedges share a vertex. A
// vertex v is reachable from source s iff some such path starts at a
// hyperedge touching s and ends at a hyperedge touching v. Its distance is
// the minimum, over all those paths, of the value the chosen
// distance.Semantics assigns (hops, elapsed time, or arrival time).
//
// Two independent searches solve the same problem and return identical maps:
//
//   - ByHyperedges: generalised Dijkstra whose heap nodes are hyperedges.
//     Every hyperedge touching the source is seeded with distance.Depart, then
//     the smallest hyperedge is popped and every strictly later hyperedge
//     sharing one of its vertices is relaxed. The final per-hyperedge
//     distances are projected to per-vertex minima.
//
//   - ByVertices: heap nodes are reachability records (vertex, arrival),
//     where arrival is either "departure" (the source record) or "via
//     hyperedge h". Only the departure record skips the strict-increase test.
//
// Both return map[vertex]distance without the source vertex; unreachable
// vertices are absent.
//
// Complexity (lazy decrease-key, N = Σ over hyperedges of Σ deg(members)):
//
//   - ByHyperedges: Time O(N log E), Space O(E)
//   - ByVertices:   Time O(N · |e| log N), Space O(Σ|e|)
//
// Concurrency:
//
//	A search allocates all its state per call and only reads the hypergraph,
//	so independent searches may run in parallel on one *Hypergraph.
//	WithContext is honoured at the top of the loop, between pops.
//
// Errors:
//
//	ErrNilGraph                 – nil *hypergraph.Hypergraph.
//	hypergraph.ErrUnknownEntity – source vertex not in the hypergraph.
//	distance.ErrUnknownKind     – kind outside Shortest/Fastest/Foremost.
//	ErrUnknownAlgorithm         – ParseAlgorithm/Algorithm.Search on a bad value.
//	context errors              – ctx cancelled or past its deadline.
package hyperdijkstra
