// SPDX-License-Identifier: MIT

package hyperbfs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hyperreach/hypergraph"
)

func TestProjectPropagatesLookupErrors(t *testing.T) {
	g, err := hypergraph.New(hypergraph.Hyperedge{ID: "h1", Vertices: []string{"v1", "v2"}, Timing: 1})
	require.NoError(t, err)

	w := &walker{
		graph: g,
		res: &Result{
			Order: []string{"h1", "h9"},
			Depth: map[string]int{"h1": 1, "h9": 2},
		},
	}
	err = w.project("v1")
	assert.ErrorIs(t, err, hypergraph.ErrUnknownEntity)

	w.res.Order = w.res.Order[:1]
	require.NoError(t, w.project("v1"))
	assert.Equal(t, map[string]int{"v2": 1}, w.res.Reached)
}
