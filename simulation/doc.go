// SPDX-License-Identifier: MIT

// Package simulation computes all-pairs minimal distances of a
// communication network by running one single-source search per
// participant and kind on a bounded worker pool.
//
// Workers write into private per-source slots; the slots are merged into a
// results.Table only after every search of a kind has finished, so no
// partial table is ever observable. The first failure cancels the
// remaining searches of the run.
//
// A Runner logs progress through zap and, when given Metrics, exports
// search counts, durations, frontier pops and reachable-target sizes to
// Prometheus.
package simulation
