// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pdiddy/scholar-search/internal/dataset"
	"github.com/pdiddy/scholar-search/internal/engine"
	"github.com/pdiddy/scholar-search/internal/server"
	"github.com/pdiddy/scholar-search/pkg/types"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP search and analytics API",
	Long: `Serve loads the dataset, builds the citation graph and keyword index,
and serves the search pipeline over HTTP. POST /api/reload rebuilds both
structures from the dataset and swaps them in atomically without
interrupting in-flight queries.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().String("addr", "", "listen address (overrides config)")
	serveCmd.Flags().String("static", "", "static frontend directory (overrides config)")
	serveCmd.Flags().Bool("dev", false, "verbose development logging")

	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := loadConfig(cmd)
	if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
		cfg.Server.Addr = addr
	}
	if static, _ := cmd.Flags().GetString("static"); static != "" {
		cfg.Server.StaticDir = static
	}

	dev, _ := cmd.Flags().GetBool("dev")
	logger, err := newLogger(dev)
	if err != nil {
		return fmt.Errorf("creating logger: %w", err)
	}
	defer logger.Sync()
	if !dev {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx := cmd.Context()
	papers, err := dataset.Load(ctx, cfg.Dataset.Path)
	if err != nil {
		return fmt.Errorf("loading dataset: %w", err)
	}

	snap := engine.BuildSnapshot(papers, cfg.Ranking)
	logger.Info("snapshot built",
		zap.Int("papers", len(papers)),
		zap.Int("graph_nodes", snap.Graph.Len()),
		zap.String("dataset", cfg.Dataset.Path),
	)

	eng := engine.New(snap)
	reload := func(ctx context.Context) ([]types.Paper, error) {
		return dataset.Load(ctx, cfg.Dataset.Path)
	}

	return server.New(cfg.Server, cfg.Ranking, eng, reload, logger).Run()
}

func newLogger(dev bool) (*zap.Logger, error) {
	if dev {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
