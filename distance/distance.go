// SPDX-License-Identifier: MIT

package distance

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownKind indicates a Kind outside Shortest, Fastest, Foremost.
var ErrUnknownKind = errors.New("distance: unknown kind")

// Kind enumerates the distance semantics.
type Kind int

const (
	// Shortest counts hyperedges on the path.
	Shortest Kind = iota

	// Fastest measures elapsed time between the first and last hyperedge.
	Fastest

	// Foremost is the earliest arrival time.
	Foremost
)

var kindNames = [...]string{
	Shortest: "shortest",
	Fastest:  "fastest",
	Foremost: "foremost",
}

// Kinds returns every Kind in declaration order.
func Kinds() []Kind { return []Kind{Shortest, Fastest, Foremost} }

// Valid reports whether k is one of the declared kinds.
func (k Kind) Valid() bool { return k >= Shortest && k <= Foremost }

// String returns the lower-case name of k.
func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("kind(%d)", int(k))
	}

	return kindNames[k]
}

// ParseKind maps a case-insensitive name to its Kind.
func ParseKind(s string) (Kind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for k, n := range kindNames {
		if n == name {
			return Kind(k), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// Semantics is the strategy a search is parameterised with. It is selected
// once per search via For.
type Semantics interface {
	// Kind identifies the semantics.
	Kind() Kind

	// Initial is the distance of the source before it departs. origin is
	// the zero point of the time axis; only Foremost uses it.
	Initial(origin int64) int64

	// Combine returns the distance after the transition prev → next,
	// given the distance prior at prev. prev and next are timestamps.
	Combine(prior, prev, next int64) int64
}

type hops struct{}

func (hops) Kind() Kind { return Shortest }
func (hops) Initial(int64) int64 { return 0 }
func (hops) Combine(prior, _, _ int64) int64 { return prior + 1 }

type elapsed struct{}

func (elapsed) Kind() Kind { return Fastest }
func (elapsed) Initial(int64) int64 { return 0 }
func (elapsed) Combine(prior, prev, next int64) int64 { return prior + (next - prev) }

type arrival struct{}

func (arrival) Kind() Kind { return Foremost }
func (arrival) Initial(origin int64) int64 { return origin }
func (arrival) Combine(_, _, next int64) int64 { return next }

// For returns the Semantics of k.
func For(k Kind) (Semantics, error) {
	switch k {
	case Shortest:
		return hops{}, nil
	case Fastest:
		return elapsed{}, nil
	case Foremost:
		return arrival{}, nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, int(k))
	}
}

// Depart is the distance of a source that leaves on a hyperedge with
// timestamp t: the transition t → t applied to the initial value.
func Depart(s Semantics, origin, t int64) int64 {
	return s.Combine(s.Initial(origin), t, t)
}
