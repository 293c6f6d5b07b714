// SPDX-License-Identifier: MIT

// Package hyperreach computes minimal temporal distances in time-varying
// hypergraphs, such as the communication networks formed by code review.
//
// A hyperedge joins any number of vertices at one timestamp. A
// time-respecting hyperpath steps from hyperedge to hyperedge through a
// shared vertex with strictly increasing timestamps. Three distances are
// measured along such paths:
//
//	Shortest - the number of hyperedges
//	Fastest  - the time between the first and the last hyperedge
//	Foremost - the timestamp of the last hyperedge (earliest arrival)
//
// Packages:
//
//	hypergraph/    - immutable time-varying hypergraph with sorted indices
//	distance/      - the three distance kinds as pluggable semantics
//	hyperdijkstra/ - single-source searches relaxing hyperedges or vertices
//	hyperbfs/      - time-respecting reachability by breadth-first search
//	builder/       - deterministic synthetic hypergraphs (chains, stars, random)
//	network/       - communication networks and their JSON datasets
//	results/       - pairwise distance tables, CSV output
//	simulation/    - all-pairs runs on a worker pool with logs and metrics
//	cmd/hyperreach - command line: run, query, generate, version
//
// Quick example:
//
//	g, _ := hypergraph.New(
//		hypergraph.Hyperedge{ID: "h1", Vertices: []string{"a", "b"}, Timing: 1},
//		hypergraph.Hyperedge{ID: "h2", Vertices: []string{"b", "c"}, Timing: 2},
//	)
//	dist, _ := hyperdijkstra.ByHyperedges(g, "a", distance.Foremost)
//	// dist == map[string]int64{"b": 1, "c": 2}
package hyperreach
