// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for scholar-search.
package types

// Paper holds the normalized metadata for one document in the dataset.
// Records are immutable after load; the core subsystems keep read-only
// views and are rebuilt wholesale when the dataset changes.
type Paper struct {
	// ID is the unique dataset key for the paper (e.g. "P001" or an arXiv slug).
	ID string `json:"id" yaml:"id"`

	// Title is the paper title.
	Title string `json:"title" yaml:"title"`

	// Authors lists the paper authors in source order.
	Authors []string `json:"authors" yaml:"authors"`

	// Year is the publication year. Zero means unknown.
	Year int `json:"year,omitempty" yaml:"year,omitempty"`

	// Abstract is the paper abstract.
	Abstract string `json:"abstract" yaml:"abstract"`

	// Keywords lists the subject terms attached to the paper.
	Keywords []string `json:"keywords" yaml:"keywords"`

	// References lists the IDs of papers this paper cites. Entries naming
	// IDs outside the dataset are dropped during graph construction.
	References []string `json:"references" yaml:"references"`

	// Link is an optional external URL for the paper, normalized at load time.
	Link string `json:"link,omitempty" yaml:"link,omitempty"`
}
