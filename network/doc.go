// SPDX-License-Identifier: MIT

// Package network models code-review communication networks as time-varying
// hypergraphs: channels are hyperedges, participants are vertices, and each
// channel carries the instant it ended.
//
// Networks are stored as JSON objects keyed by channel ID:
//
//	{"42": {"participants": ["alice", "bob"], "end": "2021-03-01T10:00:00"}}
//
// Load reads such files, optionally compressed (".bz2", ".gz", ".zst").
// Timestamps become int64 ticks of a Resolution since the Unix epoch
// (seconds unless WithResolution says otherwise); Ticks and Instant convert
// between the two.
//
// The three published datasets are addressed by name through Datasets,
// DatasetPath and LoadDataset.
package network
