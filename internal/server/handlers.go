// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package server

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pdiddy/scholar-search/internal/analytics"
	"github.com/pdiddy/scholar-search/pkg/types"
)

// handleSearch runs the search pipeline: candidate retrieval through the
// inverted index, then composite ranking against the same snapshot.
func (s *Server) handleSearch(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))
	if query == "" {
		c.JSON(http.StatusOK, []types.RankedPaper{})
		return
	}

	results := s.engine.Query(query)
	if results == nil {
		results = []types.RankedPaper{}
	}
	c.JSON(http.StatusOK, results)
}

// allEntry is a paper with its live citation count attached.
type allEntry struct {
	types.Paper
	Citations int `json:"citations_count"`
}

// handleAll returns every paper in the current snapshot with citation
// counts from the graph.
func (s *Server) handleAll(c *gin.Context) {
	snap := s.engine.Snapshot()

	out := make([]allEntry, 0, len(snap.Papers))
	for _, p := range snap.Papers {
		out = append(out, allEntry{Paper: p, Citations: snap.Graph.CitationCount(p.ID)})
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) handleOverview(c *gin.Context) {
	snap := s.engine.Snapshot()
	c.JSON(http.StatusOK, analytics.ComputeOverview(snap.Papers))
}

func (s *Server) handleTopCited(c *gin.Context) {
	limit := 10
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
			return
		}
		limit = parsed
	}

	snap := s.engine.Snapshot()
	c.JSON(http.StatusOK, analytics.TopCited(snap.Papers, snap.Graph, limit))
}

func (s *Server) handleKeywords(c *gin.Context) {
	snap := s.engine.Snapshot()
	c.JSON(http.StatusOK, analytics.KeywordStats(snap.Papers, snap.Graph))
}

func (s *Server) handleYears(c *gin.Context) {
	snap := s.engine.Snapshot()
	c.JSON(http.StatusOK, analytics.YearDistribution(snap.Papers))
}

// handleReload rebuilds the snapshot from a fresh record list and swaps it
// in atomically. In-flight queries keep the snapshot they started with.
func (s *Server) handleReload(c *gin.Context) {
	if s.reload == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "no dataset source configured for reload"})
		return
	}

	papers, err := s.reload(c.Request.Context())
	if err != nil {
		s.logger.Error("reload failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	snap := s.engine.Reload(papers, s.ranking)
	s.logger.Info("snapshot reloaded", zap.Int("papers", len(snap.Papers)))
	c.JSON(http.StatusOK, gin.H{"papers": len(snap.Papers)})
}
