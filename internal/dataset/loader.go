// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package dataset loads and normalizes the papers dataset. It is the
// record provider for the core subsystems: every record it returns has its
// required fields present, list fields coerced to lists, and its external
// link resolved, so the graph and index never re-validate.
package dataset

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/scholar-search/pkg/types"
)

// rawPaper mirrors one dataset entry before normalization. Source datasets
// vary in which link-ish fields they carry; all known spellings are
// captured here and resolved into a single Link.
type rawPaper struct {
	ID         string   `json:"id" yaml:"id"`
	Title      string   `json:"title" yaml:"title"`
	Authors    []string `json:"authors" yaml:"authors"`
	Year       int      `json:"year" yaml:"year"`
	Abstract   string   `json:"abstract" yaml:"abstract"`
	Keywords   []string `json:"keywords" yaml:"keywords"`
	References []string `json:"references" yaml:"references"`

	Link      string `json:"link" yaml:"link"`
	URL       string `json:"url" yaml:"url"`
	PDF       string `json:"pdf" yaml:"pdf"`
	PaperURL  string `json:"paper_url" yaml:"paper_url"`
	SourceURL string `json:"source_url" yaml:"source_url"`
	Website   string `json:"website" yaml:"website"`
	DOI       string `json:"doi" yaml:"doi"`
	ArxivID   string `json:"arxiv" yaml:"arxiv"`
	ArxivAlt  string `json:"arxiv_id" yaml:"arxiv_id"`
}

// Load reads the dataset at path and returns normalized records. The
// format is chosen by extension: .json and .yaml/.yml files, or a SQLite
// database for .db/.sqlite/.sqlite3.
func Load(ctx context.Context, path string) ([]types.Paper, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".db", ".sqlite", ".sqlite3":
		return LoadSQLite(ctx, path)
	case ".json", ".yaml", ".yml":
		return loadFile(path)
	default:
		return nil, fmt.Errorf("unsupported dataset format %q", filepath.Ext(path))
	}
}

func loadFile(path string) ([]types.Paper, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading dataset: %w", err)
	}

	var raws []rawPaper
	if strings.ToLower(filepath.Ext(path)) == ".json" {
		if err := json.Unmarshal(data, &raws); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
	} else {
		if err := yaml.Unmarshal(data, &raws); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
	}

	papers := make([]types.Paper, 0, len(raws))
	for _, raw := range raws {
		if raw.ID == "" {
			continue
		}
		papers = append(papers, normalize(raw))
	}
	return papers, nil
}

// normalize applies field defaults and resolves the external link.
func normalize(raw rawPaper) types.Paper {
	p := types.Paper{
		ID:         raw.ID,
		Title:      raw.Title,
		Authors:    raw.Authors,
		Year:       raw.Year,
		Abstract:   raw.Abstract,
		Keywords:   raw.Keywords,
		References: raw.References,
		Link:       resolveLink(raw),
	}
	if p.Authors == nil {
		p.Authors = []string{}
	}
	if p.Keywords == nil {
		p.Keywords = []string{}
	}
	if p.References == nil {
		p.References = []string{}
	}
	return p
}

// resolveLink picks the paper's external URL: explicit link fields first,
// then a DOI fallback, then an arXiv fallback.
func resolveLink(raw rawPaper) string {
	for _, candidate := range []string{raw.Link, raw.URL, raw.PDF, raw.PaperURL, raw.SourceURL, raw.Website} {
		if strings.TrimSpace(candidate) != "" {
			return normalizeURL(candidate)
		}
	}
	if doi := strings.TrimSpace(raw.DOI); doi != "" {
		return "https://doi.org/" + doi
	}
	for _, arxiv := range []string{raw.ArxivID, raw.ArxivAlt} {
		if id := strings.TrimSpace(arxiv); id != "" {
			return "https://arxiv.org/abs/" + id
		}
	}
	return ""
}

// normalizeURL validates and normalizes an external URL. It accepts
// http(s) URLs and URLs with another explicit scheme and host as-is, and
// upgrades bare domains to https. Anything else yields "".
func normalizeURL(raw string) string {
	u := strings.TrimSpace(raw)
	if u == "" {
		return ""
	}

	if strings.HasPrefix(u, "http://") || strings.HasPrefix(u, "https://") {
		return u
	}

	if parsed, err := url.Parse(u); err == nil && parsed.Scheme != "" && parsed.Host != "" {
		return u
	}

	if strings.Contains(u, ".") && !strings.Contains(u, " ") {
		return "https://" + u
	}

	return ""
}
