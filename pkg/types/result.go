// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// ScoreBreakdown explains the components of a composite ranking score.
type ScoreBreakdown struct {
	// Relevance is the keyword relevance component (field-presence TF × IDF).
	Relevance float64 `json:"relevance" yaml:"relevance"`

	// Influence is the authority score scaled to 0-100 for display.
	Influence float64 `json:"influence" yaml:"influence"`

	// Popularity is the raw citation count.
	Popularity int `json:"popularity" yaml:"popularity"`
}

// RankedPaper is a Paper annotated with its ranking scores.
type RankedPaper struct {
	Paper `yaml:",inline"`

	// Score is the composite ranking score: relevance + weighted authority
	// + weighted popularity.
	Score float64 `json:"score" yaml:"score"`

	// Authority is the normalized citation-graph authority score in [0, 1].
	Authority float64 `json:"authority" yaml:"authority"`

	// Citations is the in-degree of the paper in the citation graph.
	Citations int `json:"citations_count" yaml:"citations_count"`

	// Breakdown holds the per-component sub-scores for display.
	Breakdown ScoreBreakdown `json:"score_breakdown" yaml:"score_breakdown"`
}
