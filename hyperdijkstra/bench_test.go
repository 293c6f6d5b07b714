// SPDX-License-Identifier: MIT

package hyperdijkstra_test

import (
	"testing"

	"github.com/katalvlaran/hyperreach/builder"
	"github.com/katalvlaran/hyperreach/distance"
	"github.com/katalvlaran/hyperreach/hyperdijkstra"
	"github.com/katalvlaran/hyperreach/hypergraph"
)

func benchNetwork(b *testing.B) *hypergraph.Hypergraph {
	b.Helper()
	g, err := builder.Build(
		[]builder.BuilderOption{builder.WithSeed(42)},
		builder.RandomTemporal(500, 5000, 5, 100000),
	)
	if err != nil {
		b.Fatal(err)
	}

	return g
}

func benchmarkSearch(b *testing.B, search hyperdijkstra.Search, kind distance.Kind) {
	g := benchNetwork(b)
	sources := g.Vertices()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := search(g, sources[i%len(sources)], kind); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkByHyperedges_Shortest(b *testing.B) {
	benchmarkSearch(b, hyperdijkstra.ByHyperedges, distance.Shortest)
}

func BenchmarkByHyperedges_Fastest(b *testing.B) {
	benchmarkSearch(b, hyperdijkstra.ByHyperedges, distance.Fastest)
}

func BenchmarkByVertices_Shortest(b *testing.B) {
	benchmarkSearch(b, hyperdijkstra.ByVertices, distance.Shortest)
}

func BenchmarkByVertices_Fastest(b *testing.B) {
	benchmarkSearch(b, hyperdijkstra.ByVertices, distance.Fastest)
}
