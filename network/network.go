// SPDX-License-Identifier: MIT

package network

import (
	"time"

	"github.com/pkg/errors"

	"github.com/katalvlaran/hyperreach/hypergraph"
)

// Sentinel errors for network decoding and lookup.
var (
	// ErrMalformedRecord indicates a channel without participants or end.
	ErrMalformedRecord = errors.New("network: malformed channel record")

	// ErrBadTimestamp indicates an end time that is not ISO-8601.
	ErrBadTimestamp = errors.New("network: bad timestamp")

	// ErrBadResolution indicates a non-positive time resolution.
	ErrBadResolution = errors.New("network: resolution must be positive")

	// ErrUnknownDataset indicates a dataset name outside Datasets.
	ErrUnknownDataset = errors.New("network: unknown dataset")
)

// DefaultResolution is the tick length of decoded timestamps.
const DefaultResolution = time.Second

// CommunicationNetwork is a hypergraph of channels (hyperedges) and
// participants (vertices). All hypergraph methods are promoted.
type CommunicationNetwork struct {
	*hypergraph.Hypergraph

	// Name labels the network in logs and output files.
	Name string

	// Resolution is the length of one timing tick.
	Resolution time.Duration
}

// New wraps g. A non-positive resolution falls back to DefaultResolution.
func New(g *hypergraph.Hypergraph, name string, resolution time.Duration) *CommunicationNetwork {
	if resolution <= 0 {
		resolution = DefaultResolution
	}

	return &CommunicationNetwork{Hypergraph: g, Name: name, Resolution: resolution}
}

// Channels returns the channels participant took part in.
func (n *CommunicationNetwork) Channels(participant string) ([]string, error) {
	return n.HyperedgesOf(participant)
}

// Participants returns the participants of channel.
func (n *CommunicationNetwork) Participants(channel string) ([]string, error) {
	return n.VerticesOf(channel)
}

// AllChannels returns every channel ID in ascending order.
func (n *CommunicationNetwork) AllChannels() []string { return n.Hyperedges() }

// AllParticipants returns every participant ID in ascending order.
func (n *CommunicationNetwork) AllParticipants() []string { return n.Vertices() }

// End returns the instant channel ended.
func (n *CommunicationNetwork) End(channel string) (time.Time, error) {
	t, err := n.Timing(channel)
	if err != nil {
		return time.Time{}, err
	}

	return Instant(t, n.Resolution), nil
}
