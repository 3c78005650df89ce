// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package dataset

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/scholar-search/pkg/types"
)

// LoadSQLite reads records from the papers table of a SQLite database.
// List-typed columns (authors, keywords, references) hold JSON arrays.
// Rows with an empty id are dropped, and the link column goes through the
// same normalization as file datasets.
func LoadSQLite(ctx context.Context, path string) ([]types.Paper, error) {
	db, err := sql.Open("sqlite3", path+"?mode=ro")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx,
		`SELECT id, title, authors, year, abstract, keywords, "references", link FROM papers`)
	if err != nil {
		return nil, fmt.Errorf("querying papers: %w", err)
	}
	defer rows.Close()

	var papers []types.Paper
	for rows.Next() {
		var (
			id, title, abstract       sql.NullString
			authorsJSON, keywordsJSON sql.NullString
			referencesJSON, link      sql.NullString
			year                      sql.NullInt64
		)
		if err := rows.Scan(&id, &title, &authorsJSON, &year, &abstract, &keywordsJSON, &referencesJSON, &link); err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}
		if id.String == "" {
			continue
		}

		raw := rawPaper{
			ID:         id.String,
			Title:      title.String,
			Abstract:   abstract.String,
			Year:       int(year.Int64),
			Link:       link.String,
			Authors:    decodeList(authorsJSON),
			Keywords:   decodeList(keywordsJSON),
			References: decodeList(referencesJSON),
		}
		papers = append(papers, normalize(raw))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading papers: %w", err)
	}

	return papers, nil
}

// decodeList parses a JSON array column, tolerating NULL and malformed
// values as empty lists.
func decodeList(col sql.NullString) []string {
	if !col.Valid || col.String == "" {
		return nil
	}
	var list []string
	if err := json.Unmarshal([]byte(col.String), &list); err != nil {
		return nil
	}
	return list
}
