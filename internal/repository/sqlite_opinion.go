package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/releaser/internal/db"
	"github.com/alexanderramin/releaser/internal/domain"
)

const opinionColumns = `id, release_id, author, content, active, created_at`

// SQLiteOpinionRepo implements OpinionRepo using a SQLite database.
type SQLiteOpinionRepo struct {
	db db.DBTX
}

func NewSQLiteOpinionRepo(conn db.DBTX) *SQLiteOpinionRepo {
	return &SQLiteOpinionRepo{db: conn}
}

func (r *SQLiteOpinionRepo) Create(ctx context.Context, o *domain.ReleaseOpinion) error {
	query := `INSERT INTO release_opinions (` + opinionColumns + `) VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		o.ID, o.ReleaseID, o.Author, o.Content, boolToInt(o.Active), o.CreatedAt.Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("inserting opinion: %w", err)
	}
	return nil
}

func (r *SQLiteOpinionRepo) GetByID(ctx context.Context, id string) (*domain.ReleaseOpinion, error) {
	query := `SELECT ` + opinionColumns + ` FROM release_opinions WHERE id = ? AND active = 1`
	o, err := scanOpinion(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("opinion %s: %w", id, domain.ErrOpinionNotFound)
	}
	return o, err
}

func (r *SQLiteOpinionRepo) ListByRelease(ctx context.Context, releaseID string) ([]*domain.ReleaseOpinion, error) {
	query := `SELECT ` + opinionColumns + ` FROM release_opinions
		WHERE release_id = ? AND active = 1 ORDER BY created_at, id`
	rows, err := r.db.QueryContext(ctx, query, releaseID)
	if err != nil {
		return nil, fmt.Errorf("listing opinions: %w", err)
	}
	defer rows.Close()

	var opinions []*domain.ReleaseOpinion
	for rows.Next() {
		o, err := scanOpinion(rows)
		if err != nil {
			return nil, err
		}
		opinions = append(opinions, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating opinions: %w", err)
	}
	return opinions, nil
}

func (r *SQLiteOpinionRepo) ListIDsByRelease(ctx context.Context, releaseID string) ([]string, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id FROM release_opinions WHERE release_id = ? AND active = 1`, releaseID)
	if err != nil {
		return nil, fmt.Errorf("listing opinion ids for release %s: %w", releaseID, err)
	}
	return scanIDs(rows)
}

func (r *SQLiteOpinionRepo) DeactivateBatch(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	in, args := inClause(ids)
	query := `UPDATE release_opinions SET active = 0 WHERE id IN (` + in + `)`
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("deactivating opinions: %w", err)
	}
	return nil
}

func scanOpinion(row scanner) (*domain.ReleaseOpinion, error) {
	var o domain.ReleaseOpinion
	var active int
	var createdAtStr string

	if err := row.Scan(&o.ID, &o.ReleaseID, &o.Author, &o.Content, &active, &createdAtStr); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning opinion: %w", err)
	}
	o.Active = intToBool(active)

	var parseErr error
	if o.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAtStr); parseErr != nil {
		return nil, fmt.Errorf("parsing created_at: %w", parseErr)
	}
	return &o, nil
}
