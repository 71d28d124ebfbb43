package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/releaser/internal/db"
	"github.com/alexanderramin/releaser/internal/domain"
	"github.com/alexanderramin/releaser/internal/versioning"
)

const releaseColumns = `id, project_id, seq, title, content, summary, version,
	deploy_date, deploy_status, active, created_at, updated_at`

// SQLiteReleaseRepo implements ReleaseRepo using a SQLite database.
type SQLiteReleaseRepo struct {
	db db.DBTX
}

func NewSQLiteReleaseRepo(conn db.DBTX) *SQLiteReleaseRepo {
	return &SQLiteReleaseRepo{db: conn}
}

func (r *SQLiteReleaseRepo) Create(ctx context.Context, rn *domain.ReleaseNote) error {
	query := `INSERT INTO release_notes (` + releaseColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		rn.ID,
		rn.ProjectID,
		rn.Seq,
		rn.Title,
		rn.Content,
		rn.Summary,
		rn.Version,
		nullableTimeToString(rn.DeployDate, dateLayout),
		string(rn.DeployStatus),
		boolToInt(rn.Active),
		rn.CreatedAt.Format(time.RFC3339),
		rn.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting release note: %w", err)
	}
	return nil
}

func (r *SQLiteReleaseRepo) GetByID(ctx context.Context, id string) (*domain.ReleaseNote, error) {
	query := `SELECT ` + releaseColumns + ` FROM release_notes WHERE id = ? AND active = 1`
	rn, err := scanRelease(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("release note %s: %w", id, domain.ErrReleaseNotFound)
	}
	return rn, err
}

// ListByProject returns the active release notes of a project in timeline order.
func (r *SQLiteReleaseRepo) ListByProject(ctx context.Context, projectID string) ([]*domain.ReleaseNote, error) {
	query := `SELECT ` + releaseColumns + ` FROM release_notes
		WHERE project_id = ? AND active = 1 ORDER BY seq`
	rows, err := r.db.QueryContext(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("listing release notes: %w", err)
	}
	defer rows.Close()

	var notes []*domain.ReleaseNote
	for rows.Next() {
		rn, err := scanRelease(rows)
		if err != nil {
			return nil, err
		}
		notes = append(notes, rn)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating release notes: %w", err)
	}
	return notes, nil
}

// Timeline returns the versions of the active release notes of a project,
// oldest release first.
func (r *SQLiteReleaseRepo) Timeline(ctx context.Context, projectID string) ([]domain.TimelineEntry, error) {
	query := `SELECT id, seq, version FROM release_notes
		WHERE project_id = ? AND active = 1 ORDER BY seq`
	rows, err := r.db.QueryContext(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("loading timeline: %w", err)
	}
	defer rows.Close()

	var entries []domain.TimelineEntry
	for rows.Next() {
		var e domain.TimelineEntry
		if err := rows.Scan(&e.ReleaseID, &e.Seq, &e.Version); err != nil {
			return nil, fmt.Errorf("scanning timeline entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating timeline: %w", err)
	}
	return entries, nil
}

// LatestVersion returns the numerically highest active version, or nil when
// the project has no active release notes. Versions are compared as numbers
// so that 1.10.0 ranks above 1.9.0.
func (r *SQLiteReleaseRepo) LatestVersion(ctx context.Context, projectID string) (*versioning.Version, error) {
	entries, err := r.Timeline(ctx, projectID)
	if err != nil {
		return nil, err
	}
	versions := make([]string, len(entries))
	for i, e := range entries {
		versions[i] = e.Version
	}
	parsed, err := versioning.ParseAll(versions)
	if err != nil {
		return nil, fmt.Errorf("stored version for project %s: %w", projectID, err)
	}
	return versioning.Latest(parsed), nil
}

// ExistsVersion reports whether another active release note of the project
// already holds version. excludeReleaseID may be empty.
func (r *SQLiteReleaseRepo) ExistsVersion(ctx context.Context, projectID, excludeReleaseID, version string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM release_notes
		WHERE project_id = ? AND version = ? AND active = 1 AND id != ?)`
	var exists int
	if err := r.db.QueryRowContext(ctx, query, projectID, version, excludeReleaseID).Scan(&exists); err != nil {
		return false, fmt.Errorf("checking version %s: %w", version, err)
	}
	return intToBool(exists), nil
}

func (r *SQLiteReleaseRepo) Update(ctx context.Context, rn *domain.ReleaseNote) error {
	query := `UPDATE release_notes SET title = ?, content = ?, summary = ?, version = ?,
		deploy_date = ?, deploy_status = ?, updated_at = ?
		WHERE id = ? AND active = 1`
	res, err := r.db.ExecContext(ctx, query,
		rn.Title,
		rn.Content,
		rn.Summary,
		rn.Version,
		nullableTimeToString(rn.DeployDate, dateLayout),
		string(rn.DeployStatus),
		rn.UpdatedAt.Format(time.RFC3339),
		rn.ID,
	)
	if err != nil {
		return fmt.Errorf("updating release note: %w", err)
	}
	return requireAffected(res, fmt.Errorf("release note %s: %w", rn.ID, domain.ErrReleaseNotFound))
}

func (r *SQLiteReleaseRepo) Deactivate(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE release_notes SET active = 0, updated_at = ? WHERE id = ? AND active = 1`, nowUTC(), id)
	if err != nil {
		return fmt.Errorf("deactivating release note: %w", err)
	}
	return requireAffected(res, fmt.Errorf("release note %s: %w", id, domain.ErrReleaseNotFound))
}

func (r *SQLiteReleaseRepo) DeactivateBatch(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	in, args := inClause(ids)
	query := `UPDATE release_notes SET active = 0, updated_at = ? WHERE id IN (` + in + `)`
	if _, err := r.db.ExecContext(ctx, query, append([]any{nowUTC()}, args...)...); err != nil {
		return fmt.Errorf("deactivating release notes: %w", err)
	}
	return nil
}

func scanRelease(row scanner) (*domain.ReleaseNote, error) {
	var rn domain.ReleaseNote
	var deployDate sql.NullString
	var status string
	var active int
	var createdAtStr, updatedAtStr string

	err := row.Scan(
		&rn.ID, &rn.ProjectID, &rn.Seq, &rn.Title, &rn.Content, &rn.Summary, &rn.Version,
		&deployDate, &status, &active, &createdAtStr, &updatedAtStr,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning release note: %w", err)
	}

	rn.DeployDate = parseNullableTime(deployDate, dateLayout)
	rn.DeployStatus = domain.DeployStatus(status)
	rn.Active = intToBool(active)

	var parseErr error
	if rn.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAtStr); parseErr != nil {
		return nil, fmt.Errorf("parsing created_at: %w", parseErr)
	}
	if rn.UpdatedAt, parseErr = time.Parse(time.RFC3339, updatedAtStr); parseErr != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", parseErr)
	}
	return &rn, nil
}
