// SPDX-License-Identifier: MIT

// Package results collects pairwise minimal distances into a Table keyed by
// (source, target), one column per distance kind, and persists it as CSV.
//
// A Table is filled kind by kind with Add, one call per source, or by
// merging per-worker tables. Rows come out sorted by source, then target.
// Cells are optional: a pair reachable under one kind is always reachable
// under the others, but a table may hold only a subset of kinds.
//
// WriteCSV renders the table through a Formatter: RawFormatter prints
// ticks, TimeFormatter turns Fastest into durations and Foremost into
// RFC 3339 instants. Save picks the compression from the file extension.
package results
