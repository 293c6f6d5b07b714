// SPDX-License-Identifier: MIT

package hyperbfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/hyperreach/hypergraph"
)

type queueItem struct {
	hyperedge string
	timing    int64
	depth     int
}

// walker encapsulates mutable search state.
type walker struct {
	graph   *hypergraph.Hypergraph
	opts    Options
	ctx     context.Context
	queue   []queueItem
	visited map[string]bool
	res     *Result
}

// Reach runs the search from source.
func Reach(g *hypergraph.Hypergraph, source string, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	seeds, err := g.Incident(source)
	if err != nil {
		return nil, fmt.Errorf("hyperbfs: source: %w", err)
	}

	n := g.HyperedgeCount()
	w := &walker{
		graph:   g,
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]queueItem, 0, len(seeds)),
		visited: make(map[string]bool, n),
		res: &Result{
			Order: make([]string, 0, n),
			Depth: make(map[string]int, n),
		},
	}
	for _, h := range seeds {
		if err := w.enqueue(h, 1); err != nil {
			return nil, err
		}
	}
	if err := w.loop(); err != nil {
		return nil, err
	}
	if err := w.project(source); err != nil {
		return nil, err
	}

	return w.res, nil
}

func (w *walker) enqueue(h string, d int) error {
	t, err := w.graph.Timing(h)
	if err != nil {
		return fmt.Errorf("hyperbfs: %w", err)
	}
	w.visited[h] = true
	w.res.Depth[h] = d
	w.queue = append(w.queue, queueItem{hyperedge: h, timing: t, depth: d})

	return nil
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		w.res.Order = append(w.res.Order, item.hyperedge)
		if err := w.opts.OnVisit(item.hyperedge, item.depth); err != nil {
			return fmt.Errorf("hyperbfs: OnVisit error at %q: %w", item.hyperedge, err)
		}
		if err := w.expand(item); err != nil {
			return err
		}
	}

	return nil
}

// expand enqueues every unseen, strictly later hyperedge sharing a vertex.
func (w *walker) expand(item queueItem) error {
	next := item.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return nil
	}

	members, err := w.graph.Members(item.hyperedge)
	if err != nil {
		return fmt.Errorf("hyperbfs: %w", err)
	}
	for _, v := range members {
		incident, err := w.graph.Incident(v)
		if err != nil {
			return fmt.Errorf("hyperbfs: %w", err)
		}
		for _, h := range incident {
			if w.visited[h] {
				continue
			}
			t, err := w.graph.Timing(h)
			if err != nil {
				return fmt.Errorf("hyperbfs: %w", err)
			}
			if t <= item.timing {
				continue
			}
			if err := w.enqueue(h, next); err != nil {
				return err
			}
		}
	}

	return nil
}

// project fills Reached from the visited hyperedges, which arrive in
// non-decreasing depth, so the first depth seen per vertex is minimal.
func (w *walker) project(source string) error {
	w.res.Reached = make(map[string]int)
	for _, h := range w.res.Order {
		members, err := w.graph.Members(h)
		if err != nil {
			return fmt.Errorf("hyperbfs: %w", err)
		}
		d := w.res.Depth[h]
		for _, v := range members {
			if _, ok := w.res.Reached[v]; !ok {
				w.res.Reached[v] = d
			}
		}
	}
	delete(w.res.Reached, source)

	return nil
}
