// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package rank

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/pdiddy/scholar-search/pkg/types"
)

// FormatTable writes ranked results as a human-readable table to w.
func FormatTable(results []types.RankedPaper, w io.Writer) {
	if len(results) == 0 {
		fmt.Fprintln(w, "No results found.")
		return
	}

	fmt.Fprintf(w, "%-4s  %-54s  %-20s  %-4s  %-8s  %-9s  %s\n",
		"Rank", "Title", "Authors", "Year", "Score", "Authority", "Cites")
	fmt.Fprintln(w, strings.Repeat("-", 112))

	for i, r := range results {
		title := r.Title
		if len(title) > 54 {
			title = title[:51] + "..."
		}
		year := ""
		if r.Year > 0 {
			year = fmt.Sprintf("%d", r.Year)
		}
		fmt.Fprintf(w, "%-4d  %-54s  %-20s  %-4s  %-8.2f  %-9.4f  %d\n",
			i+1, title, formatAuthors(r.Authors), year, r.Score, r.Authority, r.Citations)
	}

	fmt.Fprintf(w, "\n%d results\n", len(results))
}

// FormatJSON writes ranked results as indented JSON to w.
func FormatJSON(results []types.RankedPaper, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(results)
}

func formatAuthors(authors []string) string {
	switch len(authors) {
	case 0:
		return ""
	case 1:
		return truncate(authors[0], 20)
	default:
		return truncate(authors[0], 14) + " et al."
	}
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
