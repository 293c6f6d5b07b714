// SPDX-License-Identifier: MIT

package hyperdijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/hyperreach/distance"
	"github.com/katalvlaran/hyperreach/hypergraph"
)

// arrival records how a vertex was entered: departure (the source record,
// no predecessor) or via a hyperedge.
type arrival struct {
	hyperedge string
	via       bool
}

func departure() arrival { return arrival{} }

func through(h string) arrival { return arrival{hyperedge: h, via: true} }

// reach is the heap identity of ByVertices. A vertex entered through
// distinct hyperedges yields distinct records, since the arriving
// hyperedge's timestamp decides which hyperedges may follow.
type reach struct {
	vertex  string
	arrived arrival
}

// ByVertices computes the same mapping as ByHyperedges by relaxing
// reachability records instead of hyperedges.
//
// Steps:
//  1. Seed (source, departure) with Semantics.Initial(origin).
//  2. Pop the record (v, a) with the smallest distance. For every hyperedge n
//     of v: if a is departure, prev = t(n) and n is always eligible;
//     otherwise n is eligible only if t(a) < t(n), with prev = t(a). Every
//     vertex u of an eligible n is relaxed as (u, via n) with
//     Combine(dist, prev, t(n)).
//  3. Stop when the heap is empty (or ctx is done).
//  4. Project: each vertex takes the minimum over its records.
func ByVertices(g *hypergraph.Hypergraph, source string, kind distance.Kind, opts ...Option) (map[string]int64, error) {
	cfg, sem, _, err := prepare(g, source, kind, opts)
	if err != nil {
		return nil, err
	}

	r := &vertexRunner{
		g:    g,
		opts: cfg,
		sem:  sem,
		dist: make(map[reach]int64),
		pq:   make(frontier[reach], 0, 1),
	}
	r.init(source)
	if err = r.process(); err != nil {
		return nil, err
	}
	if cfg.Stats != nil {
		*cfg.Stats = r.stats
	}

	return r.project(source), nil
}

// vertexRunner holds the mutable state of one ByVertices execution.
type vertexRunner struct {
	g     *hypergraph.Hypergraph
	opts  Options
	sem   distance.Semantics
	dist  map[reach]int64
	pq    frontier[reach]
	seq   uint64
	stats Stats
}

func (r *vertexRunner) init(source string) {
	heap.Init(&r.pq)
	start := reach{vertex: source, arrived: departure()}
	d := r.sem.Initial(r.opts.Origin)
	r.dist[start] = d
	r.push(start, d)
}

func (r *vertexRunner) process() error {
	ctx := r.opts.Ctx
	for r.pq.Len() > 0 {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		it := heap.Pop(&r.pq).(item[reach])
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

// relax expands record at, finalised at distance d.
func (r *vertexRunner) relax(at reach, d int64) error {
	incident, err := r.g.Incident(at.vertex)
	if err != nil {
		return fmt.Errorf("hyperdijkstra: relax: %w", err)
	}

	var ta int64
	if at.arrived.via {
		if ta, err = r.g.Timing(at.arrived.hyperedge); err != nil {
			return fmt.Errorf("hyperdijkstra: relax: %w", err)
		}
	}

	var next, u string
	var tn, prev, cand int64
	for _, next = range incident {
		if tn, err = r.g.Timing(next); err != nil {
			return fmt.Errorf("hyperdijkstra: relax: %w", err)
		}
		if at.arrived.via {
			if tn <= ta {
				continue
			}
			prev = ta
		} else {
			// The source departs on any of its hyperedges.
			prev = tn
		}

		members, err := r.g.Members(next)
		if err != nil {
			return fmt.Errorf("hyperdijkstra: relax: %w", err)
		}
		cand = r.sem.Combine(d, prev, tn)
		for _, u = range members {
			key := reach{vertex: u, arrived: through(next)}
			if cur, seen := r.dist[key]; seen && cand >= cur {
				continue
			}
			r.dist[key] = cand
			r.push(key, cand)
		}
	}

	return nil
}

func (r *vertexRunner) push(key reach, d int64) {
	heap.Push(&r.pq, item[reach]{key: key, dist: d, seq: r.seq})
	r.seq++
	r.stats.Pushes++
}

func (r *vertexRunner) project(source string) map[string]int64 {
	out := make(map[string]int64)
	for key, d := range r.dist {
		if cur, ok := out[key.vertex]; !ok || d < cur {
			out[key.vertex] = d
		}
	}
	delete(out, source)

	return out
}
