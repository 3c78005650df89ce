// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package server exposes the search engine over HTTP: the search and
// analytics API, a server-rendered paper detail page, and optional static
// frontend serving. All query handlers are read-only against the engine's
// current snapshot; reloads swap the snapshot atomically underneath them.
package server

import (
	"context"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pdiddy/scholar-search/internal/engine"
	"github.com/pdiddy/scholar-search/pkg/types"
)

// ReloadFunc supplies a fresh record list for snapshot reloads.
type ReloadFunc func(ctx context.Context) ([]types.Paper, error)

// Server wires the engine and analytics into an HTTP API.
type Server struct {
	engine  *engine.Engine
	reload  ReloadFunc
	ranking types.RankingConfig
	cfg     types.ServerConfig
	logger  *zap.Logger
	router  *gin.Engine
}

// New builds the server and registers all routes. reload may be nil, in
// which case POST /api/reload reports 503.
func New(cfg types.ServerConfig, ranking types.RankingConfig, eng *engine.Engine, reload ReloadFunc, logger *zap.Logger) *Server {
	s := &Server{
		engine:  eng,
		reload:  reload,
		ranking: ranking,
		cfg:     cfg,
		logger:  logger,
	}

	router := gin.New()
	router.Use(gin.Recovery(), s.requestLogger(), cors())

	api := router.Group("/api")
	api.GET("/search", s.handleSearch)
	api.GET("/all", s.handleAll)
	api.GET("/analytics/overview", s.handleOverview)
	api.GET("/analytics/top-cited", s.handleTopCited)
	api.GET("/analytics/keywords", s.handleKeywords)
	api.GET("/analytics/years", s.handleYears)
	api.POST("/reload", s.handleReload)

	router.GET("/paper/:id", s.handlePaperPage)

	if cfg.StaticDir != "" {
		router.NoRoute(s.serveStatic)
	}

	s.router = router
	return s
}

// Handler returns the http.Handler for the registered routes.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves HTTP on the configured address until the listener fails.
func (s *Server) Run() error {
	s.logger.Info("serving", zap.String("addr", s.cfg.Addr))
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return srv.ListenAndServe()
}

// requestLogger logs one line per request with method, path, status, and
// latency.
func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		)
	}
}

// cors allows the frontend to be served from a different origin during
// development.
func cors() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Accept, Content-Type")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusOK)
			return
		}
		c.Next()
	}
}

// serveStatic serves files from the static directory, falling back to
// index.html for client-side routes.
func (s *Server) serveStatic(c *gin.Context) {
	path := filepath.Join(s.cfg.StaticDir, filepath.Clean("/"+c.Request.URL.Path))
	if info, err := os.Stat(path); err == nil && !info.IsDir() {
		c.File(path)
		return
	}
	c.File(filepath.Join(s.cfg.StaticDir, "index.html"))
}
