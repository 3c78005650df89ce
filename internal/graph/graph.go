// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package graph builds a directed citation graph over a paper dataset and
// computes a normalized authority score per paper.
package graph

import (
	"github.com/pdiddy/scholar-search/pkg/types"
)

// Default parameters for the authority computation.
const (
	DefaultIterations = 30
	DefaultDamping    = 0.85
)

// Graph is a directed citation graph. Out-edges are a paper's references
// that resolve to another paper in the dataset; in-edges are the reverse
// ("cited by"). References to IDs outside the dataset are dropped.
//
// A Graph is built once per dataset snapshot and never mutated afterwards,
// so concurrent reads need no locking. Authority scores are undefined
// (reported as 0) until ComputeAuthority runs.
type Graph struct {
	out       map[string]map[string]struct{}
	in        map[string]map[string]struct{}
	authority map[string]float64
}

// Build constructs the citation graph from the paper list. Every paper gets
// a node, including papers with no resolvable references or citers. Building
// twice from the same list yields identical edge sets.
func Build(papers []types.Paper) *Graph {
	g := &Graph{
		out:       make(map[string]map[string]struct{}, len(papers)),
		in:        make(map[string]map[string]struct{}, len(papers)),
		authority: make(map[string]float64),
	}

	for _, p := range papers {
		if _, ok := g.out[p.ID]; !ok {
			g.out[p.ID] = make(map[string]struct{})
		}
		if _, ok := g.in[p.ID]; !ok {
			g.in[p.ID] = make(map[string]struct{})
		}
	}

	for _, p := range papers {
		for _, ref := range p.References {
			if _, known := g.out[ref]; !known {
				continue
			}
			g.out[p.ID][ref] = struct{}{}
			g.in[ref][p.ID] = struct{}{}
		}
	}

	return g
}

// ComputeAuthority runs a fixed number of synchronous authority update
// rounds and normalizes the result so the highest-scoring paper gets
// exactly 1.0. Each round computes, for every paper p,
//
//	next(p) = (1 - damping) + damping * Σ prev(q)/outdegree(q)
//
// over the papers q citing p. Papers with no outgoing references contribute
// nothing to their citers; the canonical redistribution of that dangling
// mass is intentionally not performed, to keep scores identical across
// rebuilds of the same dataset. The update is Jacobi-style: every round
// reads only the previous round's full score vector.
//
// Non-positive iterations or damping fall back to the defaults. On an empty
// graph this is a no-op.
func (g *Graph) ComputeAuthority(iterations int, damping float64) {
	if iterations <= 0 {
		iterations = DefaultIterations
	}
	if damping <= 0 {
		damping = DefaultDamping
	}
	if len(g.out) == 0 {
		return
	}

	current := make(map[string]float64, len(g.out))
	for id := range g.out {
		current[id] = 1.0
	}

	for round := 0; round < iterations; round++ {
		next := make(map[string]float64, len(current))
		for id := range g.out {
			sum := 0.0
			for citer := range g.in[id] {
				outDegree := len(g.out[citer])
				if outDegree > 0 {
					sum += current[citer] / float64(outDegree)
				}
			}
			next[id] = (1 - damping) + damping*sum
		}
		current = next
	}

	maxScore := 0.0
	for _, score := range current {
		if score > maxScore {
			maxScore = score
		}
	}
	if maxScore == 0 {
		maxScore = 1.0
	}

	scores := make(map[string]float64, len(current))
	for id, score := range current {
		scores[id] = score / maxScore
	}
	g.authority = scores
}

// Score returns the normalized authority score for id. Unknown IDs and
// graphs without a completed ComputeAuthority run report 0.
func (g *Graph) Score(id string) float64 {
	return g.authority[id]
}

// CitationCount returns the in-degree of id, or 0 for unknown IDs.
func (g *Graph) CitationCount(id string) int {
	return len(g.in[id])
}

// Len returns the number of papers in the graph.
func (g *Graph) Len() int {
	return len(g.out)
}
