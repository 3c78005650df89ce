// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package dataset

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"
)

// createTestDB builds a papers table with one complete row, one minimal
// row, and one id-less row.
func createTestDB(t *testing.T, path string) {
	t.Helper()

	db, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	defer db.Close()

	_, err = db.Exec(`CREATE TABLE papers (
		id TEXT,
		title TEXT,
		authors TEXT,
		year INTEGER,
		abstract TEXT,
		keywords TEXT,
		"references" TEXT,
		link TEXT
	)`)
	require.NoError(t, err)

	_, err = db.Exec(`INSERT INTO papers VALUES
		('S1', 'Stored Paper', '["Codd"]', 1970, 'Relational model.', '["databases"]', '["S2"]', 'https://example.org/s1'),
		('S2', 'Referenced Paper', NULL, NULL, NULL, NULL, NULL, NULL),
		('', 'No id', NULL, NULL, NULL, NULL, NULL, NULL)`)
	require.NoError(t, err)
}
