// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/scholar-search/internal/graph"
	"github.com/pdiddy/scholar-search/pkg/types"
)

// loadConfig resolves the effective configuration: defaults, then the viper
// config file and environment, then command-line flags.
func loadConfig(cmd *cobra.Command) types.Config {
	viper.SetDefault("dataset.path", "data/papers.json")
	viper.SetDefault("ranking.iterations", graph.DefaultIterations)
	viper.SetDefault("ranking.damping", graph.DefaultDamping)
	viper.SetDefault("server.addr", ":8000")
	viper.SetDefault("server.static_dir", "")

	cfg := types.Config{
		Dataset: types.DatasetConfig{
			Path: viper.GetString("dataset.path"),
		},
		Ranking: types.RankingConfig{
			Iterations: viper.GetInt("ranking.iterations"),
			Damping:    viper.GetFloat64("ranking.damping"),
		},
		Server: types.ServerConfig{
			Addr:      viper.GetString("server.addr"),
			StaticDir: viper.GetString("server.static_dir"),
		},
	}

	if dataset, _ := cmd.Flags().GetString("dataset"); dataset != "" {
		cfg.Dataset.Path = dataset
	}
	return cfg
}
