// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package server

import (
	"html/template"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// paperPage renders the detail view for one paper: metadata, influence
// score, external link, and its reference list resolved against the
// current snapshot.
var paperPage = template.Must(template.New("paper").Parse(`<!doctype html>
<html lang="en">
  <head>
    <meta charset="utf-8"/>
    <title>{{.Title}}</title>
    <meta name="viewport" content="width=device-width,initial-scale=1"/>
    <link rel="stylesheet" href="/style.css">
  </head>
  <body>
    <header class="topbar">
      <div class="brand"><span>ScholarSearch</span></div>
      <nav class="nav"><a class="navlink" href="/">&larr; Back to Search</a></nav>
    </header>
    <main class="hero">
      <div class="meta">{{if .Year}}{{.Year}} &bull; {{end}}{{.Citations}} Citations &bull; Influence Score: {{printf "%.4f" .Influence}}</div>
      <h1>{{.Title}}</h1>
      <div class="meta">By {{.Authors}}</div>
      {{if .Link}}<a href="{{.Link}}" target="_blank" rel="noopener" class="primary-btn">Read paper (external)</a>{{else}}<span class="muted">No external link.</span>{{end}}
      <section>
        <h3>Abstract</h3>
        <p class="abstract">{{.Abstract}}</p>
      </section>
      <section>
        <h3>References</h3>
        {{if .References}}
        <div class="reference-grid">
          {{range .References}}
          {{if .Known}}
          <div class="paper"><a href="/paper/{{.ID}}"><div class="title">{{.Title}}</div></a><div class="meta">{{.ID}} &bull; {{.Citations}} Citations</div></div>
          {{else}}
          <div class="paper muted">{{.ID}} (not indexed)</div>
          {{end}}
          {{end}}
        </div>
        {{else}}
        <p><em>No references recorded.</em></p>
        {{end}}
      </section>
    </main>
  </body>
</html>
`))

type referenceView struct {
	ID        string
	Title     string
	Citations int
	Known     bool
}

type paperView struct {
	Title      string
	Authors    string
	Year       int
	Abstract   string
	Link       string
	Citations  int
	Influence  float64
	References []referenceView
}

// handlePaperPage renders the HTML detail page for one paper, resolving
// each reference against the snapshot's index so known papers link through.
func (s *Server) handlePaperPage(c *gin.Context) {
	snap := s.engine.Snapshot()

	id := c.Param("id")
	paper, ok := snap.Index.Record(id)
	if !ok {
		c.String(http.StatusNotFound, "paper %s not found", id)
		return
	}

	view := paperView{
		Title:     paper.Title,
		Authors:   strings.Join(paper.Authors, ", "),
		Year:      paper.Year,
		Abstract:  paper.Abstract,
		Link:      paper.Link,
		Citations: snap.Graph.CitationCount(id),
		Influence: snap.Graph.Score(id) * 100,
	}
	if view.Title == "" {
		view.Title = "Untitled"
	}

	for _, refID := range paper.References {
		ref, known := snap.Index.Record(refID)
		view.References = append(view.References, referenceView{
			ID:        refID,
			Title:     ref.Title,
			Citations: snap.Graph.CitationCount(refID),
			Known:     known,
		})
	}

	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(http.StatusOK)
	if err := paperPage.Execute(c.Writer, view); err != nil {
		s.logger.Error("rendering paper page", zap.Error(err))
	}
}
