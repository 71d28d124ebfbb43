package db_test

import (
	"path/filepath"
	"testing"

	"github.com/alexanderramin/releaser/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrate_CreatesTables(t *testing.T) {
	database, err := db.OpenDB(":memory:")
	require.NoError(t, err)
	defer database.Close()

	for _, table := range []string{"projects", "project_sequences", "release_notes", "issues", "release_opinions"} {
		var name string
		err := database.QueryRow(`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, table).Scan(&name)
		require.NoError(t, err, "table %s should exist", table)
		assert.Equal(t, table, name)
	}
}

func TestMigrate_Idempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "releaser.db")

	first, err := db.OpenDB(path)
	require.NoError(t, err)
	require.NoError(t, first.Close())

	second, err := db.OpenDB(path)
	require.NoError(t, err, "reopening an existing database must not fail")
	defer second.Close()

	require.NoError(t, db.Migrate(second))
}

func TestMigrate_ActiveVersionUniquePerProject(t *testing.T) {
	database, err := db.OpenDB(":memory:")
	require.NoError(t, err)
	defer database.Close()

	now := "2026-01-01T00:00:00Z"
	_, err = database.Exec(`INSERT INTO projects (id, name, created_at, updated_at) VALUES ('p1', 'P', ?, ?)`, now, now)
	require.NoError(t, err)

	insert := `INSERT INTO release_notes (id, project_id, seq, title, content, version, active, created_at, updated_at)
		VALUES (?, 'p1', ?, 't', 'c', '1.0.0', ?, ?, ?)`
	_, err = database.Exec(insert, "r1", 1, 1, now, now)
	require.NoError(t, err)

	_, err = database.Exec(insert, "r2", 2, 1, now, now)
	assert.Error(t, err, "two active releases cannot share a version")

	_, err = database.Exec(insert, "r3", 3, 0, now, now)
	assert.NoError(t, err, "an inactive release may reuse a version")
}
