// SPDX-License-Identifier: MIT

// Package distance defines the three cost semantics of time-respecting
// hyperpaths and the strategy type the searches are parameterised with.
//
// A transition prev → next moves from hyperedge prev to a strictly later
// hyperedge next through a shared vertex. Each semantics fixes an initial
// value for the source and a rule combining the prior distance with the
// timestamps of prev and next:
//
//	Kind      Initial(origin)   Combine(prior, prev, next)
//	Shortest  0                 prior + 1
//	Fastest   0                 prior + (next - prev)
//	Foremost  origin            next
//
// Leaving the source on its first hyperedge h is the transition h → h, so
// Depart(s, origin, t(h)) gives 1, 0 and t(h) respectively. Both searches
// seed from this single rule.
//
// All distances are int64: hops, elapsed ticks, or absolute arrival ticks.
// Smaller is better. Overflow is the caller's concern.
package distance
