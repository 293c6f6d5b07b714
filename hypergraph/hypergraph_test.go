// SPDX-License-Identifier: MIT

// Package hypergraph_test validates construction invariants and read-only
// queries of the time-varying hypergraph.
package hypergraph_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hyperreach/hypergraph"
)

// chain builds h1{v1,v2}@1, h2{v2,v3}@2, h3{v3,v4}@3.
func chain(t *testing.T) *hypergraph.Hypergraph {
	t.Helper()
	g, err := hypergraph.FromMaps(
		map[string][]string{"h1": {"v1", "v2"}, "h2": {"v2", "v3"}, "h3": {"v3", "v4"}},
		map[string]int64{"h1": 1, "h2": 2, "h3": 3},
	)
	require.NoError(t, err)

	return g
}

func TestVerticesOf(t *testing.T) {
	g := chain(t)
	cases := map[string][]string{
		"h1": {"v1", "v2"},
		"h2": {"v2", "v3"},
		"h3": {"v3", "v4"},
	}
	for h, want := range cases {
		t.Run(h, func(t *testing.T) {
			got, err := g.VerticesOf(h)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestHyperedgesOf(t *testing.T) {
	g := chain(t)

	got, err := g.HyperedgesOf("v1")
	require.NoError(t, err)
	assert.Equal(t, []string{"h1"}, got)

	got, err = g.HyperedgesOf("v3")
	require.NoError(t, err)
	assert.Equal(t, []string{"h2", "h3"}, got)
}

func TestTimings(t *testing.T) {
	g := chain(t)
	assert.Equal(t, map[string]int64{"h1": 1, "h2": 2, "h3": 3}, g.Timings())

	ts, err := g.Timing("h2")
	require.NoError(t, err)
	assert.Equal(t, int64(2), ts)
}

func TestAllEntities(t *testing.T) {
	g := chain(t)
	assert.Equal(t, []string{"v1", "v2", "v3", "v4"}, g.Vertices())
	assert.Equal(t, []string{"h1", "h2", "h3"}, g.Hyperedges())
	assert.Equal(t, 4, g.VertexCount())
	assert.Equal(t, 3, g.HyperedgeCount())
	assert.True(t, g.HasVertex("v4"))
	assert.False(t, g.HasVertex("vx"))
	assert.True(t, g.HasHyperedge("h1"))
	assert.False(t, g.HasHyperedge("hx"))
}

func TestUnknownEntity(t *testing.T) {
	g := chain(t)

	_, err := g.VerticesOf("hx")
	assert.ErrorIs(t, err, hypergraph.ErrUnknownEntity)

	_, err = g.HyperedgesOf("vx")
	assert.ErrorIs(t, err, hypergraph.ErrUnknownEntity)

	_, err = g.Timing("hx")
	assert.ErrorIs(t, err, hypergraph.ErrUnknownEntity)

	_, err = g.Members("hx")
	assert.ErrorIs(t, err, hypergraph.ErrUnknownEntity)

	_, err = g.Incident("vx")
	assert.ErrorIs(t, err, hypergraph.ErrUnknownEntity)

	// A hyperedge ID is not a vertex ID and vice versa.
	_, err = g.HyperedgesOf("h1")
	assert.ErrorIs(t, err, hypergraph.ErrUnknownEntity)
	_, err = g.VerticesOf("v1")
	assert.ErrorIs(t, err, hypergraph.ErrUnknownEntity)
}

func TestIndexConsistency(t *testing.T) {
	g, err := hypergraph.New(
		hypergraph.Hyperedge{ID: "a", Vertices: []string{"x", "y", "z"}, Timing: 5},
		hypergraph.Hyperedge{ID: "b", Vertices: []string{"z", "w"}, Timing: 1},
		hypergraph.Hyperedge{ID: "c", Vertices: []string{"x"}, Timing: 9},
	)
	require.NoError(t, err)

	// Every member of every hyperedge lists that hyperedge as incident.
	for _, h := range g.Hyperedges() {
		vs, err := g.VerticesOf(h)
		require.NoError(t, err)
		for _, v := range vs {
			hs, err := g.HyperedgesOf(v)
			require.NoError(t, err)
			assert.Contains(t, hs, h)
		}
	}
	// And the converse.
	for _, v := range g.Vertices() {
		hs, err := g.HyperedgesOf(v)
		require.NoError(t, err)
		require.NotEmpty(t, hs)
		for _, h := range hs {
			vs, err := g.VerticesOf(h)
			require.NoError(t, err)
			assert.Contains(t, vs, v)
		}
	}
}

func TestDuplicateVerticesCollapse(t *testing.T) {
	g, err := hypergraph.New(hypergraph.Hyperedge{ID: "h", Vertices: []string{"b", "a", "b"}, Timing: 0})
	require.NoError(t, err)

	vs, err := g.VerticesOf("h")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, vs)
}

func TestCopiesAreIndependent(t *testing.T) {
	in := []string{"v1", "v2"}
	g, err := hypergraph.New(hypergraph.Hyperedge{ID: "h1", Vertices: in, Timing: 1})
	require.NoError(t, err)
	in[0] = "mutated"

	vs, err := g.VerticesOf("h1")
	require.NoError(t, err)
	vs[1] = "mutated"

	again, err := g.VerticesOf("h1")
	require.NoError(t, err)
	assert.Equal(t, []string{"v1", "v2"}, again)

	ts := g.Timings()
	ts["h1"] = 42
	got, err := g.Timing("h1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), got)
}

func TestConstructionErrors(t *testing.T) {
	tests := []struct {
		name  string
		edges []hypergraph.Hyperedge
		want  error
	}{
		{"empty hyperedge id", []hypergraph.Hyperedge{{ID: "", Vertices: []string{"a"}}}, hypergraph.ErrEmptyID},
		{"empty vertex id", []hypergraph.Hyperedge{{ID: "h", Vertices: []string{"a", ""}}}, hypergraph.ErrEmptyID},
		{"no vertices", []hypergraph.Hyperedge{{ID: "h"}}, hypergraph.ErrEmptyHyperedge},
		{"duplicate", []hypergraph.Hyperedge{
			{ID: "h", Vertices: []string{"a"}},
			{ID: "h", Vertices: []string{"b"}},
		}, hypergraph.ErrDuplicateHyperedge},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := hypergraph.New(tt.edges...)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.want), "got %v, want %v", err, tt.want)
		})
	}
}

func TestFromMapsErrors(t *testing.T) {
	_, err := hypergraph.FromMaps(
		map[string][]string{"h1": {"v1"}, "h2": {"v2"}},
		map[string]int64{"h1": 1},
	)
	assert.ErrorIs(t, err, hypergraph.ErrMissingTiming)

	_, err = hypergraph.FromMaps(
		map[string][]string{"h1": {"v1"}},
		map[string]int64{"h1": 1, "h8": 82},
	)
	assert.ErrorIs(t, err, hypergraph.ErrOrphanTiming)
}

func TestEmptyHypergraph(t *testing.T) {
	g, err := hypergraph.New()
	require.NoError(t, err)
	assert.Empty(t, g.Vertices())
	assert.Empty(t, g.Hyperedges())
	assert.Empty(t, g.Timings())
}
