// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package analytics computes dataset-level summaries: overview counts,
// top-cited papers, keyword impact, and publication trends. Citation
// counts come from the citation graph rather than being recounted here.
package analytics

import (
	"sort"
	"strings"

	"github.com/pdiddy/scholar-search/internal/graph"
	"github.com/pdiddy/scholar-search/pkg/types"
)

// Overview holds high-level dataset statistics.
type Overview struct {
	TotalPapers     int `json:"total_papers" yaml:"total_papers"`
	TotalReferences int `json:"total_references" yaml:"total_references"`
	UniqueKeywords  int `json:"unique_keywords" yaml:"unique_keywords"`
}

// ComputeOverview summarizes the dataset. TotalReferences counts reference
// entries as recorded, including ones naming papers outside the dataset.
func ComputeOverview(papers []types.Paper) Overview {
	o := Overview{TotalPapers: len(papers)}

	keywords := make(map[string]struct{})
	for _, p := range papers {
		o.TotalReferences += len(p.References)
		for _, kw := range p.Keywords {
			kw = strings.ToLower(strings.TrimSpace(kw))
			if kw != "" {
				keywords[kw] = struct{}{}
			}
		}
	}
	o.UniqueKeywords = len(keywords)
	return o
}

// CitedPaper is one entry in the top-cited listing.
type CitedPaper struct {
	ID        string `json:"id" yaml:"id"`
	Title     string `json:"title" yaml:"title"`
	Citations int    `json:"citations" yaml:"citations"`
}

// TopCited returns up to limit papers ordered by citation count descending,
// with paper ID ascending as the tie-break for reproducible output.
func TopCited(papers []types.Paper, g *graph.Graph, limit int) []CitedPaper {
	ranked := make([]CitedPaper, 0, len(papers))
	for _, p := range papers {
		ranked = append(ranked, CitedPaper{
			ID:        p.ID,
			Title:     p.Title,
			Citations: g.CitationCount(p.ID),
		})
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Citations != ranked[j].Citations {
			return ranked[i].Citations > ranked[j].Citations
		}
		return ranked[i].ID < ranked[j].ID
	})

	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

// KeywordStat pairs a keyword with the highest citation count among papers
// carrying it.
type KeywordStat struct {
	Term      string `json:"term" yaml:"term"`
	Citations int    `json:"citations" yaml:"citations"`
}

// KeywordStats computes per-keyword maximum citation impact, ordered by
// citations descending then term ascending.
func KeywordStats(papers []types.Paper, g *graph.Graph) []KeywordStat {
	impact := make(map[string]int)
	for _, p := range papers {
		cites := g.CitationCount(p.ID)
		for _, kw := range p.Keywords {
			kw = strings.ToLower(strings.TrimSpace(kw))
			if kw == "" {
				continue
			}
			if existing, ok := impact[kw]; !ok || cites > existing {
				impact[kw] = cites
			}
		}
	}

	stats := make([]KeywordStat, 0, len(impact))
	for term, cites := range impact {
		stats = append(stats, KeywordStat{Term: term, Citations: cites})
	}

	sort.Slice(stats, func(i, j int) bool {
		if stats[i].Citations != stats[j].Citations {
			return stats[i].Citations > stats[j].Citations
		}
		return stats[i].Term < stats[j].Term
	})
	return stats
}

// YearDistribution counts papers per publication year. Papers without a
// year are skipped.
func YearDistribution(papers []types.Paper) map[int]int {
	counts := make(map[int]int)
	for _, p := range papers {
		if p.Year != 0 {
			counts[p.Year]++
		}
	}
	return counts
}
