// SPDX-License-Identifier: MIT

package hyperdijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/hyperreach/distance"
	"github.com/katalvlaran/hyperreach/hyperdijkstra"
	"github.com/katalvlaran/hyperreach/hypergraph"
)

// ExampleByHyperedges computes all three distances on a chain h1@1 → h2@2 → h3@3.
func ExampleByHyperedges() {
	g, err := hypergraph.New(
		hypergraph.Hyperedge{ID: "h1", Vertices: []string{"v1", "v2"}, Timing: 1},
		hypergraph.Hyperedge{ID: "h2", Vertices: []string{"v2", "v3"}, Timing: 2},
		hypergraph.Hyperedge{ID: "h3", Vertices: []string{"v3", "v4"}, Timing: 3},
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	for _, kind := range distance.Kinds() {
		dist, err := hyperdijkstra.ByHyperedges(g, "v1", kind)
		if err != nil {
			fmt.Println("error:", err)
			return
		}
		fmt.Printf("%s: v2=%d v3=%d v4=%d\n", kind, dist["v2"], dist["v3"], dist["v4"])
	}

	// Output:
	// shortest: v2=1 v3=2 v4=3
	// fastest: v2=0 v3=1 v4=2
	// foremost: v2=1 v3=2 v4=3
}

// ExampleByVertices shows that the vertex-relaxation search agrees.
func ExampleByVertices() {
	g, _ := hypergraph.FromMaps(
		map[string][]string{"h3": {"v3", "v8"}, "h4": {"v4", "v3"}, "h9": {"v9", "v8"}},
		map[string]int64{"h3": 163, "h4": 57, "h9": 49},
	)

	dist, _ := hyperdijkstra.ByVertices(g, "v4", distance.Fastest)
	fmt.Println(dist["v3"], dist["v8"], len(dist))

	// Output: 0 106 2
}
