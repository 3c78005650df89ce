// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package rank orders search candidates by a composite of keyword
// relevance, citation-graph authority, and raw citation popularity.
package rank

import (
	"math"
	"sort"
	"strings"

	"github.com/pdiddy/scholar-search/internal/graph"
	"github.com/pdiddy/scholar-search/internal/index"
	"github.com/pdiddy/scholar-search/pkg/types"
)

// Composite score weights. Authority dominates: it is relationally
// propagated through the citation graph, where raw citation count is only
// a minor nudge on top of it.
const (
	weightRelevance  = 1.0
	weightAuthority  = 15.0
	weightPopularity = 2.0
)

// Field-presence term-frequency weights. A token found in all three fields
// scores 9 before IDF weighting.
const (
	tfTitle    = 5.0
	tfKeyword  = 3.0
	tfAbstract = 1.0
)

// Rank scores every candidate and returns them ordered by composite score
// descending, with paper ID ascending as the tie-break so the ordering is
// reproducible regardless of candidate-set iteration order. Candidates
// without a record in the index are skipped. Rank is a pure function of
// its inputs; calling it twice with the same snapshot yields identical
// output.
func Rank(candidates map[string]struct{}, query string, ix *index.Index, g *graph.Graph) []types.RankedPaper {
	if len(candidates) == 0 {
		return nil
	}

	tokens := index.Tokenize(query)

	results := make([]types.RankedPaper, 0, len(candidates))
	for id := range candidates {
		paper, ok := ix.Record(id)
		if !ok {
			continue
		}

		relevance := relevanceScore(paper, tokens, ix)
		authority := g.Score(id)
		citations := g.CitationCount(id)
		popularity := math.Log10(1 + float64(citations))

		score := relevance*weightRelevance + authority*weightAuthority + popularity*weightPopularity

		results = append(results, types.RankedPaper{
			Paper:     paper,
			Score:     round(score, 4),
			Authority: round(authority, 6),
			Citations: citations,
			Breakdown: types.ScoreBreakdown{
				Relevance:  round(relevance, 2),
				Influence:  round(authority*100, 2),
				Popularity: citations,
			},
		})
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return results[i].ID < results[j].ID
	})

	return results
}

// relevanceScore computes the field-presence TF×IDF relevance of paper for
// the query tokens: +5 for a title substring hit, +3 for a keyword hit,
// +1 for an abstract hit, each token weighted by its IDF. Presence-based,
// not occurrence-counted, and deliberately not normalized by length.
func relevanceScore(paper types.Paper, tokens []string, ix *index.Index) float64 {
	title := strings.ToLower(paper.Title)
	abstract := strings.ToLower(paper.Abstract)
	keywords := make([]string, len(paper.Keywords))
	for i, kw := range paper.Keywords {
		keywords[i] = strings.ToLower(kw)
	}

	total := 0.0
	for _, t := range tokens {
		tf := 0.0
		if strings.Contains(title, t) {
			tf += tfTitle
		}
		for _, kw := range keywords {
			if strings.Contains(kw, t) {
				tf += tfKeyword
				break
			}
		}
		if strings.Contains(abstract, t) {
			tf += tfAbstract
		}
		total += tf * ix.IDF(t)
	}
	return total
}

// round rounds x to the given number of decimal places, matching the
// precision the API reports.
func round(x float64, places int) float64 {
	factor := math.Pow(10, float64(places))
	return math.Round(x*factor) / factor
}
