package db_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/alexanderramin/releaser/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const stamp = "2026-01-01T00:00:00Z"

func openProjectDB(t *testing.T) (*sql.DB, *db.SQLiteUnitOfWork) {
	t.Helper()
	database, err := db.OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })

	_, err = database.Exec(`INSERT INTO projects (id, name, created_at, updated_at) VALUES ('p1', 'P', ?, ?)`, stamp, stamp)
	require.NoError(t, err)
	return database, db.NewSQLiteUnitOfWork(database)
}

func insertRelease(ctx context.Context, tx db.DBTX, id string, seq int, version string) error {
	_, err := tx.ExecContext(ctx,
		`INSERT INTO release_notes (id, project_id, seq, title, content, version, created_at, updated_at)
		 VALUES (?, 'p1', ?, 't', 'c', ?, ?, ?)`, id, seq, version, stamp, stamp)
	return err
}

func countReleases(t *testing.T, database *sql.DB) int {
	t.Helper()
	var n int
	require.NoError(t, database.QueryRow(`SELECT COUNT(*) FROM release_notes`).Scan(&n))
	return n
}

func TestWithinTx_CommitsAllWrites(t *testing.T) {
	database, uow := openProjectDB(t)

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		if err := insertRelease(ctx, tx, "r1", 1, "1.0.0"); err != nil {
			return err
		}
		return insertRelease(ctx, tx, "r2", 2, "1.1.0")
	})
	require.NoError(t, err)
	assert.Equal(t, 2, countReleases(t, database))
}

func TestWithinTx_ErrorDiscardsEarlierWrites(t *testing.T) {
	database, uow := openProjectDB(t)
	errLink := errors.New("issue link failed")

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		if err := insertRelease(ctx, tx, "r1", 1, "1.0.0"); err != nil {
			return err
		}
		return errLink
	})
	assert.Same(t, errLink, err, "the callback error is returned unchanged")
	assert.Zero(t, countReleases(t, database))
}

func TestWithinTx_ConstraintViolationRollsBack(t *testing.T) {
	database, uow := openProjectDB(t)

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		if err := insertRelease(ctx, tx, "r1", 1, "1.0.0"); err != nil {
			return err
		}
		// Same active version in the same project.
		return insertRelease(ctx, tx, "r2", 2, "1.0.0")
	})
	require.Error(t, err)
	assert.Zero(t, countReleases(t, database))
}

func TestWithinTx_PanicRollsBackAndRepanics(t *testing.T) {
	database, uow := openProjectDB(t)

	assert.PanicsWithValue(t, "boom", func() {
		_ = uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
			_ = insertRelease(ctx, tx, "r1", 1, "1.0.0")
			panic("boom")
		})
	})
	assert.Zero(t, countReleases(t, database))

	// The connection is usable again after the panic.
	require.NoError(t, uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		return insertRelease(ctx, tx, "r1", 1, "1.0.0")
	}))
}

func TestWithinTx_CancelledContext(t *testing.T) {
	_, uow := openProjectDB(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	err := uow.WithinTx(ctx, func(context.Context, db.DBTX) error {
		called = true
		return nil
	})
	require.Error(t, err)
	assert.False(t, called)
}
