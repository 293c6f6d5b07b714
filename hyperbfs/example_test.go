// SPDX-License-Identifier: MIT

package hyperbfs_test

import (
	"fmt"

	"github.com/katalvlaran/hyperreach/hyperbfs"
	"github.com/katalvlaran/hyperreach/hypergraph"
)

// ExampleReach shows that a later hyperedge cannot be followed by an
// earlier one.
func ExampleReach() {
	g, _ := hypergraph.New(
		hypergraph.Hyperedge{ID: "review", Vertices: []string{"ann", "bob"}, Timing: 10},
		hypergraph.Hyperedge{ID: "design", Vertices: []string{"bob", "cid"}, Timing: 5},
		hypergraph.Hyperedge{ID: "merge", Vertices: []string{"bob", "dan"}, Timing: 20},
	)

	res, _ := hyperbfs.Reach(g, "ann")
	fmt.Println(res.Order)
	fmt.Println(res.Reachable("cid"), res.Reachable("dan"))

	// Output:
	// [review merge]
	// false true
}
