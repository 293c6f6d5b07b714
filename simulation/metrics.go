// SPDX-License-Identifier: MIT

package simulation

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/hyperreach/distance"
	"github.com/katalvlaran/hyperreach/hyperdijkstra"
)

const (
	metricsNamespace = "hyperreach"
	metricsSubsystem = "simulation"
)

// Search outcomes used as the status label.
const (
	statusOK        = "ok"
	statusError     = "error"
	statusCancelled = "cancelled"
)

// Metrics groups the Prometheus collectors of a Runner. A nil *Metrics
// records nothing.
type Metrics struct {
	searches  *prometheus.CounterVec
	duration  *prometheus.HistogramVec
	pops      *prometheus.CounterVec
	reachable *prometheus.HistogramVec
}

// NewMetrics creates the collectors and registers them with reg. A nil reg
// leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		searches: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Subsystem: metricsSubsystem,
				Name:      "searches_total",
				Help:      "Total number of single-source searches",
			},
			// status: ok/error/cancelled
			[]string{"algorithm", "kind", "status"},
		),
		duration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: metricsNamespace,
				Subsystem: metricsSubsystem,
				Name:      "search_duration_seconds",
				Help:      "Duration of successful single-source searches",
				Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10),
			},
			[]string{"algorithm", "kind"},
		),
		pops: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Subsystem: metricsSubsystem,
				Name:      "frontier_pops_total",
				Help:      "Total number of priority queue pops, stale entries included",
			},
			[]string{"algorithm", "kind"},
		),
		reachable: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: metricsNamespace,
				Subsystem: metricsSubsystem,
				Name:      "reachable_targets",
				Help:      "Number of targets reached by one search",
				Buckets:   prometheus.ExponentialBuckets(1, 4, 10),
			},
			[]string{"kind"},
		),
	}
}

// observe records one finished search.
func (m *Metrics) observe(
	alg hyperdijkstra.Algorithm,
	kind distance.Kind,
	status string,
	elapsed time.Duration,
	st hyperdijkstra.Stats,
	targets int,
) {
	if m == nil {
		return
	}

	a, k := alg.String(), kind.String()
	m.searches.WithLabelValues(a, k, status).Inc()
	m.pops.WithLabelValues(a, k).Add(float64(st.Pops))
	if status != statusOK {
		return
	}
	m.duration.WithLabelValues(a, k).Observe(elapsed.Seconds())
	m.reachable.WithLabelValues(k).Observe(float64(targets))
}
