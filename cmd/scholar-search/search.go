// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/scholar-search/internal/dataset"
	"github.com/pdiddy/scholar-search/internal/engine"
	"github.com/pdiddy/scholar-search/internal/rank"
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Run a one-shot search against the dataset",
	Long: `Search builds the citation graph and keyword index from the dataset,
runs the query through the full ranking pipeline, and prints the ordered
results. Results combine keyword relevance, citation-graph authority, and
citation popularity.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().Int("max-results", 20, "maximum number of results to print (0 = all)")
	searchCmd.Flags().Bool("json", false, "output results as JSON")

	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	cfg := loadConfig(cmd)
	query := strings.Join(args, " ")

	papers, err := dataset.Load(cmd.Context(), cfg.Dataset.Path)
	if err != nil {
		return fmt.Errorf("loading dataset: %w", err)
	}

	eng := engine.New(engine.BuildSnapshot(papers, cfg.Ranking))
	results := eng.Query(query)

	maxResults, _ := cmd.Flags().GetInt("max-results")
	if maxResults > 0 && len(results) > maxResults {
		results = results[:maxResults]
	}

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		return rank.FormatJSON(results, os.Stdout)
	}
	rank.FormatTable(results, os.Stdout)
	return nil
}
