// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/pdiddy/scholar-search/internal/engine"
	"github.com/pdiddy/scholar-search/pkg/types"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testPapers() []types.Paper {
	return []types.Paper{
		{ID: "A", Title: "Graph Theory", Authors: []string{"Euler"}, Year: 1736,
			Abstract: "Foundational results.", Keywords: []string{"graphs"},
			References: []string{"B", "ghost"}, Link: "https://example.org/a"},
		{ID: "B", Title: "Number Theory", Year: 1801},
		{ID: "C", Title: "Set Theory", References: []string{"B"}},
	}
}

func testRanking() types.RankingConfig {
	return types.RankingConfig{Iterations: 30, Damping: 0.85}
}

func newTestServer(t *testing.T, reload ReloadFunc) *Server {
	t.Helper()
	eng := engine.New(engine.BuildSnapshot(testPapers(), testRanking()))
	return New(types.ServerConfig{Addr: ":0"}, testRanking(), eng, reload, zap.NewNop())
}

func doRequest(t *testing.T, s *Server, method, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, nil)
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)
	return w
}

func TestSearchEndpoint(t *testing.T) {
	s := newTestServer(t, nil)

	w := doRequest(t, s, http.MethodGet, "/api/search?q=theory")
	require.Equal(t, http.StatusOK, w.Code)

	var results []types.RankedPaper
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &results))
	require.Len(t, results, 3)
	assert.Equal(t, "B", results[0].ID, "most cited match first")
	assert.NotZero(t, results[0].Score)
}

func TestSearchEndpointEmptyQuery(t *testing.T) {
	s := newTestServer(t, nil)

	for _, target := range []string{"/api/search", "/api/search?q=", "/api/search?q=%20%20"} {
		w := doRequest(t, s, http.MethodGet, target)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "[]", strings.TrimSpace(w.Body.String()))
	}
}

func TestSearchEndpointNoMatches(t *testing.T) {
	s := newTestServer(t, nil)

	w := doRequest(t, s, http.MethodGet, "/api/search?q=zzzz")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", strings.TrimSpace(w.Body.String()))
}

func TestAllEndpoint(t *testing.T) {
	s := newTestServer(t, nil)

	w := doRequest(t, s, http.MethodGet, "/api/all")
	require.Equal(t, http.StatusOK, w.Code)

	var entries []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &entries))
	require.Len(t, entries, 3)
	assert.Equal(t, "A", entries[0]["id"])
	// B is cited by A and C.
	assert.Equal(t, float64(2), entries[1]["citations_count"])
}

func TestAnalyticsEndpoints(t *testing.T) {
	s := newTestServer(t, nil)

	w := doRequest(t, s, http.MethodGet, "/api/analytics/overview")
	require.Equal(t, http.StatusOK, w.Code)
	var overview map[string]int
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &overview))
	assert.Equal(t, 3, overview["total_papers"])
	assert.Equal(t, 3, overview["total_references"])
	assert.Equal(t, 1, overview["unique_keywords"])

	w = doRequest(t, s, http.MethodGet, "/api/analytics/top-cited?limit=2")
	require.Equal(t, http.StatusOK, w.Code)
	var cited []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cited))
	require.Len(t, cited, 2)
	assert.Equal(t, "B", cited[0]["id"])

	w = doRequest(t, s, http.MethodGet, "/api/analytics/keywords")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "graphs")

	w = doRequest(t, s, http.MethodGet, "/api/analytics/years")
	require.Equal(t, http.StatusOK, w.Code)
	var years map[string]int
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &years))
	assert.Equal(t, 1, years["1736"])
}

func TestTopCitedBadLimit(t *testing.T) {
	s := newTestServer(t, nil)

	for _, target := range []string{"/api/analytics/top-cited?limit=abc", "/api/analytics/top-cited?limit=-1"} {
		w := doRequest(t, s, http.MethodGet, target)
		assert.Equal(t, http.StatusBadRequest, w.Code, target)
	}
}

func TestPaperPage(t *testing.T) {
	s := newTestServer(t, nil)

	w := doRequest(t, s, http.MethodGet, "/paper/A")
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()

	assert.Contains(t, body, "Graph Theory")
	assert.Contains(t, body, "Euler")
	assert.Contains(t, body, "https://example.org/a")
	assert.Contains(t, body, "Number Theory", "known reference resolves to its title")
	assert.Contains(t, body, "ghost (not indexed)", "unknown reference is labeled")
}

func TestPaperPageEscapesHTML(t *testing.T) {
	papers := []types.Paper{{ID: "x", Title: `<script>alert("x")</script>`}}
	eng := engine.New(engine.BuildSnapshot(papers, testRanking()))
	s := New(types.ServerConfig{}, testRanking(), eng, nil, zap.NewNop())

	w := doRequest(t, s, http.MethodGet, "/paper/x")
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "<script>alert")
}

func TestPaperPageNotFound(t *testing.T) {
	s := newTestServer(t, nil)

	w := doRequest(t, s, http.MethodGet, "/paper/missing")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestReloadEndpoint(t *testing.T) {
	replacement := []types.Paper{{ID: "X", Title: "Category Theory"}}
	s := newTestServer(t, func(context.Context) ([]types.Paper, error) {
		return replacement, nil
	})

	w := doRequest(t, s, http.MethodPost, "/api/reload")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"papers":1`)

	// Queries now answer from the new snapshot.
	w = doRequest(t, s, http.MethodGet, "/api/search?q=category")
	var results []types.RankedPaper
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &results))
	require.Len(t, results, 1)
	assert.Equal(t, "X", results[0].ID)
}

func TestReloadEndpointFailure(t *testing.T) {
	s := newTestServer(t, func(context.Context) ([]types.Paper, error) {
		return nil, fmt.Errorf("dataset unreadable")
	})

	w := doRequest(t, s, http.MethodPost, "/api/reload")
	assert.Equal(t, http.StatusInternalServerError, w.Code)

	// The old snapshot stays live after a failed reload.
	w = doRequest(t, s, http.MethodGet, "/api/search?q=theory")
	var results []types.RankedPaper
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &results))
	assert.Len(t, results, 3)
}

func TestReloadEndpointUnconfigured(t *testing.T) {
	s := newTestServer(t, nil)

	w := doRequest(t, s, http.MethodPost, "/api/reload")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestStaticFallback(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<html>home</html>"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "style.css"), []byte("body{}"), 0o644))

	eng := engine.New(engine.BuildSnapshot(testPapers(), testRanking()))
	s := New(types.ServerConfig{StaticDir: dir}, testRanking(), eng, nil, zap.NewNop())

	w := doRequest(t, s, http.MethodGet, "/style.css")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "body{}", w.Body.String())

	// Unknown paths fall back to index.html.
	w = doRequest(t, s, http.MethodGet, "/some/client/route")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "home")
}

func TestCORSPreflight(t *testing.T) {
	s := newTestServer(t, nil)

	w := doRequest(t, s, http.MethodOptions, "/api/search")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}
