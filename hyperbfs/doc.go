// SPDX-License-Identifier: MIT

// Package hyperbfs answers time-respecting reachability on a
// hypergraph.Hypergraph by breadth-first search over hyperedges.
//
// What
//
//   - Seeds every hyperedge touching the source at depth 1.
//   - From hyperedge h, enqueues every hyperedge n that shares a vertex with
//     h and satisfies t(h) < t(n), each at most once.
//   - Returns a Result with:
//   - Order:   hyperedges in visit sequence
//   - Depth:   hyperedge → number of hyperedges on the shortest path
//   - Reached: vertex → minimal depth over its reached hyperedges, source excluded
//
// The successor relation depends only on the timestamp of the current
// hyperedge, never on how it was reached, so first-visit marking is exact:
// Reached equals the Shortest distances of hyperdijkstra, computed in
// O(Σ incidences) without a heap.
//
// Options
//
//   - WithContext(ctx): cancellation, checked once per dequeue.
//   - WithMaxDepth(d):  stop expanding beyond d hyperedges (d > 0; 0 = no limit).
//   - WithOnVisit(fn):  hook per visited hyperedge; an error aborts the search.
//
// Determinism
//
//	Incident lists are sorted by ID, so Order is reproducible.
//
// Errors
//
//   - ErrGraphNil         if the graph pointer is nil.
//   - ErrOptionViolation  for a negative MaxDepth.
//   - hypergraph.ErrUnknownEntity for an unknown source.
//   - Wrapped OnVisit errors.
package hyperbfs
