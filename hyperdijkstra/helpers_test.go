// SPDX-License-Identifier: MIT

package hyperdijkstra_test

import (
	"math"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hyperreach/distance"
	"github.com/katalvlaran/hyperreach/hyperdijkstra"
	"github.com/katalvlaran/hyperreach/hypergraph"
)

// algorithms lists both searches under a stable name for subtests.
var algorithms = []struct {
	name   string
	search hyperdijkstra.Search
}{
	{"hyperedges", hyperdijkstra.ByHyperedges},
	{"vertices", hyperdijkstra.ByVertices},
}

// chainNetwork is h1{v1,v2}@1, h2{v2,v3}@2, h3{v3,v4}@3.
func chainNetwork(t testing.TB) *hypergraph.Hypergraph {
	t.Helper()
	g, err := hypergraph.FromMaps(
		map[string][]string{"h1": {"v1", "v2"}, "h2": {"v2", "v3"}, "h3": {"v3", "v4"}},
		map[string]int64{"h1": 1, "h2": 2, "h3": 3},
	)
	require.NoError(t, err)

	return g
}

// branchingNetwork is the ten-hyperedge fixture: from v4 only h4@57 leaves,
// h3@163 follows through v3, and every other hyperedge of v8 is earlier.
// The published fixture also times a memberless h8 at 82; FromMaps rejects
// that timing with ErrOrphanTiming and no vertex could use it, so it is left out.
func branchingNetwork(t testing.TB) *hypergraph.Hypergraph {
	t.Helper()
	g, err := hypergraph.FromMaps(
		map[string][]string{
			"h0":  {"v0", "v1"},
			"h1":  {"v1", "v9"},
			"h2":  {"v2", "v6"},
			"h3":  {"v3", "v8"},
			"h4":  {"v4", "v3"},
			"h5":  {"v5", "v6"},
			"h6":  {"v6", "v7"},
			"h7":  {"v7", "v0"},
			"h9":  {"v9", "v8"},
			"h10": {"v10", "v8"},
		},
		map[string]int64{
			"h0": 176, "h1": 68, "h2": 187, "h3": 163, "h4": 57,
			"h5": 160, "h6": 111, "h7": 174, "h9": 49, "h10": 7,
		},
	)
	require.NoError(t, err)

	return g
}

// oracle computes per-vertex minimal distances by one pass over hyperedges in
// timestamp order: every predecessor of a hyperedge is strictly earlier, so
// its distance is final once reached. It shares no code with either search.
func oracle(t testing.TB, g *hypergraph.Hypergraph, source string, kind distance.Kind) map[string]int64 {
	t.Helper()
	sem, err := distance.For(kind)
	require.NoError(t, err)

	hs := g.Hyperedges()
	timing := g.Timings()
	sort.SliceStable(hs, func(i, j int) bool { return timing[hs[i]] < timing[hs[j]] })

	best := make(map[string]int64)
	for _, h := range hs {
		th := timing[h]
		members, err := g.VerticesOf(h)
		require.NoError(t, err)

		var d int64
		found := false
		for _, v := range members {
			if v == source {
				d, found = distance.Depart(sem, math.MinInt64, th), true
			}
		}
		for _, v := range members {
			preds, err := g.HyperedgesOf(v)
			require.NoError(t, err)
			for _, p := range preds {
				dp, ok := best[p]
				if !ok || timing[p] >= th {
					continue
				}
				if c := sem.Combine(dp, timing[p], th); !found || c < d {
					d, found = c, true
				}
			}
		}
		if found {
			best[h] = d
		}
	}

	out := make(map[string]int64)
	for h, d := range best {
		members, err := g.VerticesOf(h)
		require.NoError(t, err)
		for _, v := range members {
			if cur, ok := out[v]; !ok || d < cur {
				out[v] = d
			}
		}
	}
	delete(out, source)

	return out
}
