package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jengzang/gpx-pace-backend/internal/database"
)

func TestMigrateSchemaRollback(t *testing.T) {
	db, err := database.Open(database.Config{Path: filepath.Join(t.TempDir(), "pace.db")})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	tables := func() int {
		var n int
		require.NoError(t, db.QueryRow(
			`SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = 'pace_queries'`,
		).Scan(&n))
		return n
	}

	require.NoError(t, migrateSchema(db, false))
	assert.Equal(t, 1, tables())

	require.NoError(t, migrateSchema(db, true))
	assert.Equal(t, 0, tables())

	// migrating up again restores the schema
	require.NoError(t, migrateSchema(db, false))
	assert.Equal(t, 1, tables())
}
