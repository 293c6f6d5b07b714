// SPDX-License-Identifier: MIT

package hyperdijkstra

// item is one heap entry: a node identity and the distance it was pushed with.
// seq is the push order and breaks distance ties, so a run is deterministic;
// no result depends on which of two equal entries pops first.
type item[K comparable] struct {
	key  K
	dist int64
	seq  uint64
}

// frontier is a min-heap of item ordered by (dist, seq). Used with
// container/heap under the lazy decrease-key pattern: improved nodes are
// pushed again and stale entries are skipped on pop.
type frontier[K comparable] []item[K]

// Len returns the number of items in the heap.
func (pq frontier[K]) Len() int { return len(pq) }

// Less orders by distance, then by push order.
func (pq frontier[K]) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].seq < pq[j].seq
}

// Swap swaps two elements in the heap.
func (pq frontier[K]) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push appends x, which must be an item[K]. Called by heap.Push.
func (pq *frontier[K]) Push(x any) { *pq = append(*pq, x.(item[K])) }

// Pop removes and returns the last element. Called by heap.Pop.
func (pq *frontier[K]) Pop() any {
	old := *pq
	n := len(old)
	it := old[n-1]
	*pq = old[:n-1]

	return it
}
