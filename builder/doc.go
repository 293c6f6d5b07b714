// SPDX-License-Identifier: MIT

// Package builder assembles deterministic synthetic time-varying hypergraphs
// for tests, benchmarks and the generate command.
//
// One orchestrator, Build(bopts, cons...), resolves functional options into
// an immutable builderConfig and runs each Constructor in order against a
// shared batch of hyperedges; the batch is then frozen into a
// *hypergraph.Hypergraph.
//
// Constructors:
//
//	Chain(n)                                    – v0–v1–…–v(n-1), strictly increasing times
//	Star(n)                                     – centre c with n leaves, one hyperedge per leaf
//	RandomTemporal(vertices, hyperedges, arity, span) – random members and times, ties included
//
// Options:
//
//	WithSeed / WithRand            – RNG for RandomTemporal (required there)
//	WithIDScheme                   – vertex index → ID (default "v0", "v1", …)
//	WithHyperedgeIDScheme          – hyperedge index → ID (default "h0", "h1", …)
//	WithStartTime / WithStep       – timestamp of the first hyperedge and the spacing of Chain/Star
//
// Determinism: same options, seed and constructor order ⇒ identical hypergraphs.
// Hyperedge indices run across constructors, vertex indices restart per
// constructor, so composed constructors share vertices.
//
// Errors (sentinel):
//
//	ErrTooFewVertices, ErrBadArity, ErrBadSpan, ErrNeedRandSource, ErrConstructFailed.
package builder
