package repository

import (
	"context"
	"fmt"

	"github.com/alexanderramin/releaser/internal/db"
)

// SQLiteProjectSequenceRepo allocates project-scoped sequence values
// atomically using the project_sequences table.
type SQLiteProjectSequenceRepo struct {
	db db.DBTX
}

func NewSQLiteProjectSequenceRepo(conn db.DBTX) *SQLiteProjectSequenceRepo {
	return &SQLiteProjectSequenceRepo{db: conn}
}

// NextProjectSeq returns the next number of the given kind for a project.
// The counter is seeded from existing rows, so numbers are never reused even
// after soft deletes.
func (r *SQLiteProjectSequenceRepo) NextProjectSeq(ctx context.Context, projectID string, kind SequenceKind) (int, error) {
	var table string
	switch kind {
	case SeqRelease:
		table = "release_notes"
	case SeqIssue:
		table = "issues"
	default:
		return 0, fmt.Errorf("unknown sequence kind %q", kind)
	}

	seedQuery := `INSERT OR IGNORE INTO project_sequences (project_id, kind, next_seq)
		SELECT ?, ?, COALESCE(MAX(seq), 0) + 1 FROM ` + table + ` WHERE project_id = ?`
	if _, err := r.db.ExecContext(ctx, seedQuery, projectID, string(kind), projectID); err != nil {
		return 0, fmt.Errorf("seeding %s sequence for %s: %w", kind, projectID, err)
	}

	var next int
	allocQuery := `UPDATE project_sequences
		SET next_seq = next_seq + 1
		WHERE project_id = ? AND kind = ?
		RETURNING next_seq - 1`
	if err := r.db.QueryRowContext(ctx, allocQuery, projectID, string(kind)).Scan(&next); err != nil {
		return 0, fmt.Errorf("allocating next %s seq for project %s: %w", kind, projectID, err)
	}
	return next, nil
}
