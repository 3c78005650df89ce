// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package engine bundles one citation graph and one keyword index built
// from the same dataset snapshot, and publishes them behind a single
// atomic reference so queries never observe a partially rebuilt state.
package engine

import (
	"sync"
	"sync/atomic"

	"github.com/pdiddy/scholar-search/internal/graph"
	"github.com/pdiddy/scholar-search/internal/index"
	"github.com/pdiddy/scholar-search/internal/rank"
	"github.com/pdiddy/scholar-search/pkg/types"
)

// Snapshot holds the immutable structures built from one dataset. All
// fields are read-only after BuildSnapshot returns; a reload produces a
// brand-new Snapshot rather than mutating a live one.
type Snapshot struct {
	Graph  *graph.Graph
	Index  *index.Index
	Papers []types.Paper
}

// BuildSnapshot constructs the graph and index from the records. The two
// builds are independent, so they run concurrently; the authority
// computation runs on the finished graph before the snapshot is returned.
func BuildSnapshot(papers []types.Paper, cfg types.RankingConfig) *Snapshot {
	snap := &Snapshot{Papers: papers}

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		g := graph.Build(papers)
		g.ComputeAuthority(cfg.Iterations, cfg.Damping)
		snap.Graph = g
	}()
	go func() {
		defer wg.Done()
		snap.Index = index.Build(papers)
	}()
	wg.Wait()

	return snap
}

// Engine serves queries against the current snapshot. Reads are lock-free:
// each query loads the snapshot reference once and works entirely against
// it, so a concurrent reload cannot tear a request across two datasets.
type Engine struct {
	current atomic.Pointer[Snapshot]
}

// New returns an Engine serving the given snapshot.
func New(snap *Snapshot) *Engine {
	e := &Engine{}
	e.current.Store(snap)
	return e
}

// Snapshot returns the currently published snapshot.
func (e *Engine) Snapshot() *Snapshot {
	return e.current.Load()
}

// Reload builds a new snapshot from the records entirely aside from the
// live one, then publishes it with a single atomic swap. It runs to
// completion; there is no cancellation.
func (e *Engine) Reload(papers []types.Paper, cfg types.RankingConfig) *Snapshot {
	snap := BuildSnapshot(papers, cfg)
	e.current.Store(snap)
	return snap
}

// Query searches the current snapshot for candidates and ranks them. The
// snapshot reference is loaded once so search and ranking agree on the
// dataset.
func (e *Engine) Query(query string) []types.RankedPaper {
	snap := e.Snapshot()
	candidates := snap.Index.Search(query)
	return rank.Rank(candidates, query, snap.Index, snap.Graph)
}

// AuthorityScore returns the normalized authority score for id in the
// current snapshot, 0 for unknown IDs.
func (e *Engine) AuthorityScore(id string) float64 {
	return e.Snapshot().Graph.Score(id)
}

// CitationCount returns the citation count for id in the current snapshot,
// 0 for unknown IDs.
func (e *Engine) CitationCount(id string) int {
	return e.Snapshot().Graph.CitationCount(id)
}
