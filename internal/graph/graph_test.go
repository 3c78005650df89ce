// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package graph

import (
	"math"
	"testing"

	"github.com/pdiddy/scholar-search/pkg/types"
)

func chainPapers() []types.Paper {
	// A cites B, B cites C, C cites nothing.
	return []types.Paper{
		{ID: "A", References: []string{"B"}},
		{ID: "B", References: []string{"C"}},
		{ID: "C"},
	}
}

func TestBuildEdges(t *testing.T) {
	g := Build(chainPapers())

	if g.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", g.Len())
	}

	tests := []struct {
		id   string
		want int
	}{
		{"A", 0},
		{"B", 1},
		{"C", 1},
	}
	for _, tt := range tests {
		if got := g.CitationCount(tt.id); got != tt.want {
			t.Errorf("CitationCount(%q) = %d, want %d", tt.id, got, tt.want)
		}
	}
}

func TestBuildEdgeSymmetry(t *testing.T) {
	g := Build(chainPapers())

	for id, targets := range g.out {
		for target := range targets {
			if _, ok := g.in[target][id]; !ok {
				t.Errorf("edge %s→%s present in out but missing from in", id, target)
			}
		}
	}
	for id, citers := range g.in {
		for citer := range citers {
			if _, ok := g.out[citer][id]; !ok {
				t.Errorf("edge %s→%s present in in but missing from out", citer, id)
			}
		}
	}
}

func TestBuildDropsUnknownReferences(t *testing.T) {
	papers := []types.Paper{
		{ID: "A", References: []string{"B", "ghost-1", "ghost-2"}},
		{ID: "B"},
	}
	g := Build(papers)

	if got := g.CitationCount("B"); got != 1 {
		t.Errorf("CitationCount(B) = %d, want 1", got)
	}
	if got := g.CitationCount("ghost-1"); got != 0 {
		t.Errorf("CitationCount(ghost-1) = %d, want 0", got)
	}
	if got := len(g.out["A"]); got != 1 {
		t.Errorf("out-degree of A = %d, want 1 (unknown refs must be pruned)", got)
	}
}

func TestBuildIdempotent(t *testing.T) {
	papers := chainPapers()
	g1 := Build(papers)
	g2 := Build(papers)

	for id := range g1.out {
		if len(g1.out[id]) != len(g2.out[id]) || len(g1.in[id]) != len(g2.in[id]) {
			t.Errorf("edge sets for %q differ between identical builds", id)
		}
	}
}

// TestComputeAuthorityWorkedExample pins the exact two-round values for the
// chain A→B→C with damping 0.85: raw scores after round 1 are A=0.15,
// B=1.0, C=1.0; after round 2, A=0.15, B=0.2775, C=1.0. Normalizing by the
// max (1.0) leaves them unchanged.
func TestComputeAuthorityWorkedExample(t *testing.T) {
	g := Build(chainPapers())
	g.ComputeAuthority(2, 0.85)

	want := map[string]float64{
		"A": 0.15,
		"B": 0.2775,
		"C": 1.0,
	}
	for id, w := range want {
		if got := g.Score(id); math.Abs(got-w) > 1e-9 {
			t.Errorf("Score(%q) = %.6f, want %.6f", id, got, w)
		}
	}
}

func TestComputeAuthorityNormalized(t *testing.T) {
	papers := []types.Paper{
		{ID: "A", References: []string{"C"}},
		{ID: "B", References: []string{"C"}},
		{ID: "C", References: []string{"A"}},
		{ID: "D"},
	}
	g := Build(papers)
	g.ComputeAuthority(DefaultIterations, DefaultDamping)

	sawMax := false
	for _, id := range []string{"A", "B", "C", "D"} {
		s := g.Score(id)
		if s < 0 || s > 1 {
			t.Errorf("Score(%q) = %f, out of [0,1]", id, s)
		}
		if s == 1.0 {
			sawMax = true
		}
	}
	if !sawMax {
		t.Error("no paper has score exactly 1.0 after normalization")
	}
}

func TestComputeAuthorityDeterministic(t *testing.T) {
	papers := []types.Paper{
		{ID: "A", References: []string{"B", "C"}},
		{ID: "B", References: []string{"C"}},
		{ID: "C", References: []string{"A"}},
	}
	g1 := Build(papers)
	g1.ComputeAuthority(DefaultIterations, DefaultDamping)
	g2 := Build(papers)
	g2.ComputeAuthority(DefaultIterations, DefaultDamping)

	for _, id := range []string{"A", "B", "C"} {
		if g1.Score(id) != g2.Score(id) {
			t.Errorf("Score(%q) differs between identical builds: %v vs %v",
				id, g1.Score(id), g2.Score(id))
		}
	}
}

func TestComputeAuthorityEmptyGraph(t *testing.T) {
	g := Build(nil)
	g.ComputeAuthority(DefaultIterations, DefaultDamping)

	if got := g.Score("anything"); got != 0.0 {
		t.Errorf("Score on empty graph = %f, want 0", got)
	}
}

func TestScoreBeforeCompute(t *testing.T) {
	g := Build(chainPapers())
	if got := g.Score("B"); got != 0.0 {
		t.Errorf("Score before ComputeAuthority = %f, want 0", got)
	}
}

func TestComputeAuthorityDefaultFallback(t *testing.T) {
	g := Build(chainPapers())
	g.ComputeAuthority(0, 0)

	if got := g.Score("C"); got != 1.0 {
		t.Errorf("Score(C) = %f, want 1.0 with default parameters", got)
	}
}
