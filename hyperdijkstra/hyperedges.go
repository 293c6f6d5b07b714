// SPDX-License-Identifier: MIT

package hyperdijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/hyperreach/distance"
	"github.com/katalvlaran/hyperreach/hypergraph"
)

// ByHyperedges returns the minimal distance under kind from source to every
// vertex reachable along a time-respecting hyperpath. The source itself is
// never a key; unreachable vertices are omitted.
//
// Steps:
//  1. Seed every hyperedge touching source with distance.Depart.
//  2. Pop the hyperedge h with the smallest distance; for every vertex of h
//     and every hyperedge n of that vertex with t(h) < t(n), relax n with
//     Combine(dist[h], t(h), t(n)).
//  3. Stop when the heap is empty (or ctx is done).
//  4. Project: each vertex takes the minimum over the hyperedges touching it.
//
// Complexity: O(N log E) time, O(E) space; see the package documentation.
func ByHyperedges(g *hypergraph.Hypergraph, source string, kind distance.Kind, opts ...Option) (map[string]int64, error) {
	cfg, sem, seeds, err := prepare(g, source, kind, opts)
	if err != nil {
		return nil, err
	}

	r := &hyperedgeRunner{
		g:    g,
		opts: cfg,
		sem:  sem,
		dist: make(map[string]int64, len(seeds)),
		pq:   make(frontier[string], 0, len(seeds)),
	}
	if err = r.init(seeds); err != nil {
		return nil, err
	}
	if err = r.process(); err != nil {
		return nil, err
	}
	if cfg.Stats != nil {
		*cfg.Stats = r.stats
	}

	return r.project(source)
}

// hyperedgeRunner holds the mutable state of one ByHyperedges execution.
type hyperedgeRunner struct {
	g     *hypergraph.Hypergraph
	opts  Options
	sem   distance.Semantics
	dist  map[string]int64 // hyperedge ID → best known distance
	pq    frontier[string]
	seq   uint64
	stats Stats
}

// init seeds the heap with the source hyperedges.
func (r *hyperedgeRunner) init(seeds []string) error {
	heap.Init(&r.pq)
	for _, h := range seeds {
		t, err := r.g.Timing(h)
		if err != nil {
			return fmt.Errorf("hyperdijkstra: seed: %w", err)
		}
		d := distance.Depart(r.sem, r.opts.Origin, t)
		r.dist[h] = d
		r.push(h, d)
	}

	return nil
}

// process runs the main loop until the heap drains or ctx is done.
func (r *hyperedgeRunner) process() error {
	ctx := r.opts.Ctx
	for r.pq.Len() > 0 {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		it := heap.Pop(&r.pq).(item[string])
		r.stats.Pops++
		if it.dist > r.dist[it.key] {
			r.stats.Stale++
			continue
		}
		if err := r.relax(it.key, it.dist); err != nil {
			return err
		}
	}

	return nil
}

// relax expands hyperedge h, finalised at distance d.
func (r *hyperedgeRunner) relax(h string, d int64) error {
	th, err := r.g.Timing(h)
	if err != nil {
		return fmt.Errorf("hyperdijkstra: relax: %w", err)
	}
	members, err := r.g.Members(h)
	if err != nil {
		return fmt.Errorf("hyperdijkstra: relax: %w", err)
	}

	var v, next string
	var tn, cand int64
	for _, v = range members {
		incident, err := r.g.Incident(v)
		if err != nil {
			return fmt.Errorf("hyperdijkstra: relax: %w", err)
		}
		for _, next = range incident {
			if tn, err = r.g.Timing(next); err != nil {
				return fmt.Errorf("hyperdijkstra: relax: %w", err)
			}
			// Strictly later only; this also excludes h itself.
			if tn <= th {
				continue
			}
			cand = r.sem.Combine(d, th, tn)
			if cur, seen := r.dist[next]; seen && cand >= cur {
				continue
			}
			r.dist[next] = cand
			r.push(next, cand)
		}
	}

	return nil
}

func (r *hyperedgeRunner) push(h string, d int64) {
	heap.Push(&r.pq, item[string]{key: h, dist: d, seq: r.seq})
	r.seq++
	r.stats.Pushes++
}

// project turns per-hyperedge distances into per-vertex minima without source.
func (r *hyperedgeRunner) project(source string) (map[string]int64, error) {
	out := make(map[string]int64)
	for h, d := range r.dist {
		members, err := r.g.Members(h)
		if err != nil {
			return nil, fmt.Errorf("hyperdijkstra: project: %w", err)
		}
		for _, v := range members {
			if cur, ok := out[v]; !ok || d < cur {
				out[v] = d
			}
		}
	}
	delete(out, source)

	return out, nil
}
