// SPDX-License-Identifier: MIT

package hypergraph_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/hyperreach/hypergraph"
)

// ExampleNew builds a three-hyperedge chain and inspects the derived index.
func ExampleNew() {
	g, err := hypergraph.New(
		hypergraph.Hyperedge{ID: "h1", Vertices: []string{"v1", "v2"}, Timing: 1},
		hypergraph.Hyperedge{ID: "h2", Vertices: []string{"v2", "v3"}, Timing: 2},
		hypergraph.Hyperedge{ID: "h3", Vertices: []string{"v3", "v4"}, Timing: 3},
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	hs, _ := g.HyperedgesOf("v2")
	fmt.Println("vertices:", g.Vertices())
	fmt.Println("v2 in:", hs)

	_, err = g.HyperedgesOf("v9")
	fmt.Println("unknown:", errors.Is(err, hypergraph.ErrUnknownEntity))

	// Output:
	// vertices: [v1 v2 v3 v4]
	// v2 in: [h1 h2]
	// unknown: true
}
