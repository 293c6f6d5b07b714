// SPDX-License-Identifier: MIT

package network

import (
	"encoding/json"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/katalvlaran/hyperreach/hypergraph"
)

// Option configures Decode and Load.
type Option func(*decodeOptions)

type decodeOptions struct {
	name       string
	resolution time.Duration
}

func newDecodeOptions(opts []Option) decodeOptions {
	o := decodeOptions{resolution: DefaultResolution}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// WithName sets CommunicationNetwork.Name. Load otherwise derives it from
// the file name.
func WithName(name string) Option {
	return func(o *decodeOptions) { o.name = name }
}

// WithResolution sets the tick length of decoded timestamps.
func WithResolution(d time.Duration) Option {
	return func(o *decodeOptions) { o.resolution = d }
}

// record is one channel of the JSON format. Pointers tell absent from empty.
type record struct {
	Participants *[]participantID `json:"participants"`
	End          *string          `json:"end"`
}

// participantID accepts JSON strings and numbers.
type participantID string

func (p *participantID) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*p = participantID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return errors.Errorf("participant must be a string or number, got %s", b)
	}
	*p = participantID(n.String())

	return nil
}

// Decode reads one network in the JSON format from r.
func Decode(r io.Reader, opts ...Option) (*CommunicationNetwork, error) {
	o := newDecodeOptions(opts)
	if o.resolution <= 0 {
		return nil, errors.Wrapf(ErrBadResolution, "resolution %s", o.resolution)
	}

	var raw map[string]record
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, errors.Wrap(err, "decode network")
	}

	ids := make([]string, 0, len(raw))
	for id := range raw {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	edges := make([]hypergraph.Hyperedge, 0, len(raw))
	for _, id := range ids {
		rec := raw[id]
		if rec.Participants == nil {
			return nil, errors.Wrapf(ErrMalformedRecord, "channel %q: missing participants", id)
		}
		if rec.End == nil {
			return nil, errors.Wrapf(ErrMalformedRecord, "channel %q: missing end", id)
		}

		end, err := ParseTime(*rec.End)
		if err != nil {
			return nil, errors.Wrapf(err, "channel %q", id)
		}

		vertices := make([]string, len(*rec.Participants))
		for i, p := range *rec.Participants {
			vertices[i] = string(p)
		}
		edges = append(edges, hypergraph.Hyperedge{
			ID:       id,
			Vertices: vertices,
			Timing:   Ticks(end, o.resolution),
		})
	}

	g, err := hypergraph.New(edges...)
	if err != nil {
		return nil, errors.Wrap(err, "build network")
	}

	return New(g, o.name, o.resolution), nil
}

// isoLayouts are tried in order. Each time precision (seconds with an
// optional fraction, minutes, hours) is paired with the offset forms
// ±hh:mm, ±hhmm, ±hh and none, where "Z" also stands for UTC.
var isoLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999Z0700",
	"2006-01-02T15:04:05.999999999Z07",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04Z0700",
	"2006-01-02T15:04Z07",
	"2006-01-02T15:04",
	"2006-01-02T15Z07:00",
	"2006-01-02T15Z0700",
	"2006-01-02T15Z07",
	"2006-01-02T15",
	"2006-01-02",
}

// ParseTime parses an ISO-8601 date or date-time. The date and time may be
// separated by "T" or a space; times without an offset are taken as UTC.
func ParseTime(s string) (time.Time, error) {
	v := strings.TrimSpace(s)
	if len(v) > 10 && v[10] == ' ' {
		v = v[:10] + "T" + v[11:]
	}

	for _, layout := range isoLayouts {
		if t, err := time.ParseInLocation(layout, v, time.UTC); err == nil {
			return t, nil
		}
	}

	return time.Time{}, errors.Wrapf(ErrBadTimestamp, "%q", s)
}
