// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/scholar-search/internal/analytics"
	"github.com/pdiddy/scholar-search/internal/dataset"
	"github.com/pdiddy/scholar-search/internal/graph"
	"github.com/pdiddy/scholar-search/pkg/types"
)

var analyticsCmd = &cobra.Command{
	Use:   "analytics",
	Short: "Print dataset summaries (overview, top-cited, keywords, years)",
}

var analyticsOverviewCmd = &cobra.Command{
	Use:   "overview",
	Short: "Print high-level dataset statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		papers, _, err := loadForAnalytics(cmd)
		if err != nil {
			return err
		}
		o := analytics.ComputeOverview(papers)
		fmt.Printf("papers:      %d\n", o.TotalPapers)
		fmt.Printf("references:  %d\n", o.TotalReferences)
		fmt.Printf("keywords:    %d\n", o.UniqueKeywords)
		return nil
	},
}

var analyticsTopCitedCmd = &cobra.Command{
	Use:   "top-cited",
	Short: "Print the most cited papers",
	RunE: func(cmd *cobra.Command, args []string) error {
		papers, g, err := loadForAnalytics(cmd)
		if err != nil {
			return err
		}
		limit, _ := cmd.Flags().GetInt("limit")

		ranked := analytics.TopCited(papers, g, limit)
		if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
			return printJSON(ranked)
		}

		fmt.Printf("%-4s  %-60s  %s\n", "Rank", "Title", "Citations")
		fmt.Println(strings.Repeat("-", 80))
		for i, p := range ranked {
			title := p.Title
			if len(title) > 60 {
				title = title[:57] + "..."
			}
			fmt.Printf("%-4d  %-60s  %d\n", i+1, title, p.Citations)
		}
		return nil
	},
}

var analyticsKeywordsCmd = &cobra.Command{
	Use:   "keywords",
	Short: "Print keyword citation impact",
	RunE: func(cmd *cobra.Command, args []string) error {
		papers, g, err := loadForAnalytics(cmd)
		if err != nil {
			return err
		}
		stats := analytics.KeywordStats(papers, g)
		if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
			return printJSON(stats)
		}
		for _, s := range stats {
			fmt.Printf("%-40s  %d\n", s.Term, s.Citations)
		}
		return nil
	},
}

var analyticsYearsCmd = &cobra.Command{
	Use:   "years",
	Short: "Print papers per publication year",
	RunE: func(cmd *cobra.Command, args []string) error {
		papers, _, err := loadForAnalytics(cmd)
		if err != nil {
			return err
		}
		counts := analytics.YearDistribution(papers)

		years := make([]int, 0, len(counts))
		for y := range counts {
			years = append(years, y)
		}
		sort.Ints(years)
		for _, y := range years {
			fmt.Printf("%d  %d\n", y, counts[y])
		}
		return nil
	},
}

func init() {
	analyticsTopCitedCmd.Flags().Int("limit", 10, "number of papers to list")
	analyticsTopCitedCmd.Flags().Bool("json", false, "output as JSON")
	analyticsKeywordsCmd.Flags().Bool("json", false, "output as JSON")

	analyticsCmd.AddCommand(analyticsOverviewCmd, analyticsTopCitedCmd, analyticsKeywordsCmd, analyticsYearsCmd)
	rootCmd.AddCommand(analyticsCmd)
}

// loadForAnalytics loads the dataset and builds the citation graph the
// analytics functions read counts from. Authority scores are not needed
// here, so ComputeAuthority is skipped.
func loadForAnalytics(cmd *cobra.Command) ([]types.Paper, *graph.Graph, error) {
	cfg := loadConfig(cmd)
	papers, err := dataset.Load(cmd.Context(), cfg.Dataset.Path)
	if err != nil {
		return nil, nil, fmt.Errorf("loading dataset: %w", err)
	}
	return papers, graph.Build(papers), nil
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
