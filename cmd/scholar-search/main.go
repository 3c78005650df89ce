// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the scholar-search CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the scholar-search CLI.
var rootCmd = &cobra.Command{
	Use:   "scholar-search",
	Short: "Citation-aware search over an academic paper dataset",
	Long: `scholar-search ranks papers by combining keyword relevance with
citation-graph authority. It builds an inverted keyword index and a directed
citation graph from a dataset snapshot, scores authority with an iterative
PageRank-style computation, and orders search results by a composite of
relevance, authority, and citation popularity.

Use serve to run the HTTP API, search for one-shot queries, and analytics
for dataset summaries.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./scholar-search.yaml or ~/.config/scholar-search/config.yaml)")
	rootCmd.PersistentFlags().String("dataset", "", "dataset path (.json, .yaml, or SQLite .db)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("scholar-search")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "scholar-search"))
		}
	}

	viper.SetEnvPrefix("SCHOLAR_SEARCH")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
