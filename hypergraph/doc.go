// SPDX-License-Identifier: MIT

// Package hypergraph provides an immutable, in-memory time-varying hypergraph.
//
// A hypergraph H = (V, E) is a set of vertices V and hyperedges E, where every
// hyperedge e ∈ E connects an arbitrary non-empty subset of V and carries one
// timestamp t(e). Vertices have no attributes of their own: a vertex exists
// because some hyperedge touches it.
//
// Storage:
//
//   - members[e]  = sorted, de-duplicated vertex IDs of hyperedge e
//   - timings[e]  = timestamp of hyperedge e (int64 ticks, caller-chosen unit)
//   - incident[v] = sorted IDs of every hyperedge touching v (derived once)
//
// The two views members/incident are built together in New and are never
// mutated afterwards, so every vertex listed by some hyperedge is a key of
// incident and vice versa.
//
// Concurrency:
//
//	There is no mutation API. A *Hypergraph can be shared by any number of
//	goroutines without locking; searches take it read-only.
//
// Core Methods:
//
//	// Construction
//	New(edges ...Hyperedge) (*Hypergraph, error)                  // O(Σ|e| log |e|)
//	FromMaps(members, timings) (*Hypergraph, error)               // O(Σ|e| log |e|)
//
//	// Query (defensive copies, sorted)
//	Timings() map[string]int64                                    // O(E)
//	Timing(hyperedge string) (int64, error)                       // O(1)
//	Vertices() []string                                           // O(V)
//	VerticesOf(hyperedge string) ([]string, error)                // O(|e|)
//	Hyperedges() []string                                         // O(E)
//	HyperedgesOf(vertex string) ([]string, error)                 // O(deg(v))
//
//	// Zero-copy views for algorithms (callers must not modify the slices)
//	Members(hyperedge string) ([]string, error)                   // O(1)
//	Incident(vertex string) ([]string, error)                     // O(1)
//
// Errors:
//
//	ErrUnknownEntity      – lookup of a vertex or hyperedge that does not exist
//	ErrEmptyID            – zero-length hyperedge or vertex ID at construction
//	ErrEmptyHyperedge     – hyperedge without vertices
//	ErrDuplicateHyperedge – the same hyperedge ID given twice
//	ErrMissingTiming      – FromMaps: hyperedge without a timestamp
//	ErrOrphanTiming       – FromMaps: timestamp for a hyperedge that has no vertices
package hypergraph
