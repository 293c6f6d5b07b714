// SPDX-License-Identifier: MIT

package simulation

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hyperreach/distance"
	"github.com/katalvlaran/hyperreach/hyperdijkstra"
	"github.com/katalvlaran/hyperreach/hypergraph"
	"github.com/katalvlaran/hyperreach/network"
)

func star(t *testing.T) *network.CommunicationNetwork {
	t.Helper()
	g, err := hypergraph.New(
		hypergraph.Hyperedge{ID: "a", Vertices: []string{"hub", "x"}, Timing: 1},
		hypergraph.Hyperedge{ID: "b", Vertices: []string{"hub", "y"}, Timing: 2},
		hypergraph.Hyperedge{ID: "c", Vertices: []string{"hub", "z"}, Timing: 3},
	)
	require.NoError(t, err)

	return network.New(g, "star", time.Second)
}

func TestMetricsAfterRun(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)
	r, err := NewRunner(nil, m, Config{Workers: 2, Kinds: []distance.Kind{distance.Shortest}})
	require.NoError(t, err)

	_, err = r.Run(context.Background(), star(t))
	require.NoError(t, err)

	assert.Equal(t, 4.0, testutil.ToFloat64(m.searches.WithLabelValues("hyperedge", "shortest", statusOK)))
	assert.Positive(t, testutil.ToFloat64(m.pops.WithLabelValues("hyperedge", "shortest")))

	// One series each for duration and reachable targets.
	n, err := testutil.GatherAndCount(reg,
		"hyperreach_simulation_search_duration_seconds",
		"hyperreach_simulation_reachable_targets",
	)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestFailureCancelsRun(t *testing.T) {
	m := NewMetrics(prometheus.NewRegistry())
	r, err := NewRunner(nil, m, Config{Workers: 1, Kinds: []distance.Kind{distance.Fastest}})
	require.NoError(t, err)

	boom := errors.New("boom")
	r.search = func(g *hypergraph.Hypergraph, source string, kind distance.Kind, opts ...hyperdijkstra.Option) (map[string]int64, error) {
		if source == "x" {
			return nil, boom
		}
		return hyperdijkstra.ByHyperedges(g, source, kind, opts...)
	}

	_, err = r.Run(context.Background(), star(t))
	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), `fastest from "x"`)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.searches.WithLabelValues("hyperedge", "fastest", statusError)))

	// Sources after x never ran: workers is 1 and the group context is done.
	ok := testutil.ToFloat64(m.searches.WithLabelValues("hyperedge", "fastest", statusOK))
	assert.Equal(t, 1.0, ok, "only hub precedes x")
}

func TestNilMetricsIsSilent(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.observe(hyperdijkstra.Hyperedge, distance.Shortest, statusOK, time.Millisecond, hyperdijkstra.Stats{}, 3)
	})
}

func TestUnregisteredMetrics(t *testing.T) {
	m := NewMetrics(nil)
	m.observe(hyperdijkstra.Vertex, distance.Foremost, statusCancelled, 0, hyperdijkstra.Stats{Pops: 2}, 0)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.searches.WithLabelValues("vertex", "foremost", statusCancelled)))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.pops.WithLabelValues("vertex", "foremost")))
}
