// SPDX-License-Identifier: MIT

package results

import (
	"sort"

	"github.com/pkg/errors"

	"github.com/katalvlaran/hyperreach/distance"
)

// ErrConflict indicates two tables disagree on the same cell.
var ErrConflict = errors.New("results: conflicting distances")

// kindCount bounds the per-row arrays; distance.Kind values are dense from 0.
const kindCount = 3

type pair struct {
	source, target string
}

type cell struct {
	values [kindCount]int64
	set    [kindCount]bool
}

// Table holds distances of (source, target) pairs. The zero value is not
// usable; call NewTable. A Table is not safe for concurrent writers.
type Table struct {
	cells map[pair]*cell
	kinds [kindCount]bool
}

// NewTable returns an empty table.
func NewTable() *Table {
	return &Table{cells: make(map[pair]*cell)}
}

// Add records the distances from source under kind, as returned by a search.
func (t *Table) Add(kind distance.Kind, source string, distances map[string]int64) error {
	if !kind.Valid() {
		return errors.Wrapf(distance.ErrUnknownKind, "add %s", kind)
	}

	t.kinds[kind] = true
	for target, d := range distances {
		if err := t.set(pair{source, target}, kind, d); err != nil {
			return err
		}
	}

	return nil
}

func (t *Table) set(p pair, kind distance.Kind, d int64) error {
	c, ok := t.cells[p]
	if !ok {
		c = &cell{}
		t.cells[p] = c
	}
	if c.set[kind] && c.values[kind] != d {
		return errors.Wrapf(ErrConflict, "%s→%s %s: %d vs %d", p.source, p.target, kind, c.values[kind], d)
	}
	c.values[kind] = d
	c.set[kind] = true

	return nil
}

// Merge copies every cell of other into t. Equal cells are accepted; a
// differing value yields ErrConflict and leaves t partially merged.
func (t *Table) Merge(other *Table) error {
	for k, present := range other.kinds {
		t.kinds[k] = t.kinds[k] || present
	}
	for p, c := range other.cells {
		for k := 0; k < kindCount; k++ {
			if !c.set[k] {
				continue
			}
			if err := t.set(p, distance.Kind(k), c.values[k]); err != nil {
				return err
			}
		}
	}

	return nil
}

// Len returns the number of (source, target) rows.
func (t *Table) Len() int { return len(t.cells) }

// Kinds returns the kinds added so far, in declaration order.
func (t *Table) Kinds() []distance.Kind {
	var out []distance.Kind
	for _, k := range distance.Kinds() {
		if t.kinds[k] {
			out = append(out, k)
		}
	}

	return out
}

// Row is one (source, target) pair with its optional per-kind values.
type Row struct {
	Source string
	Target string
	cell
}

// Value returns the distance under kind and whether it is set.
func (r Row) Value(kind distance.Kind) (int64, bool) {
	if !kind.Valid() {
		return 0, false
	}

	return r.values[kind], r.set[kind]
}

// Lookup returns the row of (source, target).
func (t *Table) Lookup(source, target string) (Row, bool) {
	c, ok := t.cells[pair{source, target}]
	if !ok {
		return Row{}, false
	}

	return Row{Source: source, Target: target, cell: *c}, true
}

// Rows returns all rows sorted by source, then target.
func (t *Table) Rows() []Row {
	out := make([]Row, 0, len(t.cells))
	for p, c := range t.cells {
		out = append(out, Row{Source: p.source, Target: p.target, cell: *c})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Source != out[j].Source {
			return out[i].Source < out[j].Source
		}
		return out[i].Target < out[j].Target
	})

	return out
}

// Summary aggregates the values of one kind.
type Summary struct {
	Kind  distance.Kind
	Count int
	Min   int64
	Max   int64
	Mean  float64
}

// Summarize returns the aggregate of kind; Count is 0 when nothing is set.
func (t *Table) Summarize(kind distance.Kind) Summary {
	s := Summary{Kind: kind}
	if !kind.Valid() {
		return s
	}

	var sum float64
	for _, c := range t.cells {
		if !c.set[kind] {
			continue
		}
		v := c.values[kind]
		if s.Count == 0 || v < s.Min {
			s.Min = v
		}
		if s.Count == 0 || v > s.Max {
			s.Max = v
		}
		sum += float64(v)
		s.Count++
	}
	if s.Count > 0 {
		s.Mean = sum / float64(s.Count)
	}

	return s
}
