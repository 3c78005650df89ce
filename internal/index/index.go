// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package index builds an inverted keyword index over a paper dataset with
// per-token document-frequency statistics.
package index

import (
	"math"

	"github.com/pdiddy/scholar-search/pkg/types"
)

// Index is an inverted keyword index. Postings map each token to the set of
// paper IDs containing it in the title, keywords, or abstract; a parallel
// map records how many distinct papers contain each token.
//
// An Index is built once per dataset snapshot and never mutated afterwards,
// so concurrent reads need no locking.
type Index struct {
	postings  map[string]map[string]struct{}
	docFreq   map[string]int
	papers    map[string]types.Paper
	totalDocs int
}

// Build constructs the index from the paper list. Each paper's title,
// keyword terms, and abstract are tokenized; document frequency counts each
// token at most once per paper regardless of how often it recurs.
func Build(papers []types.Paper) *Index {
	ix := &Index{
		postings:  make(map[string]map[string]struct{}),
		docFreq:   make(map[string]int),
		papers:    make(map[string]types.Paper, len(papers)),
		totalDocs: len(papers),
	}

	for _, p := range papers {
		ix.papers[p.ID] = p

		tokens := Tokenize(p.Title)
		for _, kw := range p.Keywords {
			tokens = append(tokens, Tokenize(kw)...)
		}
		tokens = append(tokens, Tokenize(p.Abstract)...)

		seen := make(map[string]struct{})
		for _, t := range tokens {
			posting, ok := ix.postings[t]
			if !ok {
				posting = make(map[string]struct{})
				ix.postings[t] = posting
			}
			posting[p.ID] = struct{}{}

			if _, counted := seen[t]; !counted {
				ix.docFreq[t]++
				seen[t] = struct{}{}
			}
		}
	}

	return ix
}

// IDF returns the smoothed inverse document frequency for token:
// ln((N+1)/(df+1)) + 1. The smoothing keeps the value positive and finite
// even for tokens never seen in the dataset.
func (ix *Index) IDF(token string) float64 {
	return math.Log(float64(ix.totalDocs+1)/float64(ix.docFreq[token]+1)) + 1.0
}

// Search tokenizes the query and returns the union of postings for every
// token: a paper matching any token is a candidate. No scoring happens
// here. An empty or all-separator query yields an empty set.
func (ix *Index) Search(query string) map[string]struct{} {
	candidates := make(map[string]struct{})
	for _, t := range Tokenize(query) {
		for id := range ix.postings[t] {
			candidates[id] = struct{}{}
		}
	}
	return candidates
}

// Record returns the paper for id, reporting whether it exists.
func (ix *Index) Record(id string) (types.Paper, bool) {
	p, ok := ix.papers[id]
	return p, ok
}

// TotalDocs returns the number of papers indexed.
func (ix *Index) TotalDocs() int {
	return ix.totalDocs
}
