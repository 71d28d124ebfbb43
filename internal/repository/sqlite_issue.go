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

const issueColumns = `id, project_id, seq, title, content, life_cycle, release_id,
	active, created_at, updated_at`

// SQLiteIssueRepo implements IssueRepo using a SQLite database.
type SQLiteIssueRepo struct {
	db db.DBTX
}

func NewSQLiteIssueRepo(conn db.DBTX) *SQLiteIssueRepo {
	return &SQLiteIssueRepo{db: conn}
}

func (r *SQLiteIssueRepo) Create(ctx context.Context, i *domain.Issue) error {
	query := `INSERT INTO issues (` + issueColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		i.ID,
		i.ProjectID,
		i.Seq,
		i.Title,
		i.Content,
		string(i.LifeCycle),
		nullableString(i.ReleaseID),
		boolToInt(i.Active),
		i.CreatedAt.Format(time.RFC3339),
		i.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting issue: %w", err)
	}
	return nil
}

func (r *SQLiteIssueRepo) GetByID(ctx context.Context, id string) (*domain.Issue, error) {
	query := `SELECT ` + issueColumns + ` FROM issues WHERE id = ? AND active = 1`
	i, err := scanIssue(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("issue %s: %w", id, domain.ErrIssueNotFound)
	}
	return i, err
}

func (r *SQLiteIssueRepo) ListByProject(ctx context.Context, projectID string) ([]*domain.Issue, error) {
	return r.list(ctx, `WHERE project_id = ? AND active = 1 ORDER BY seq`, projectID)
}

// ListLinkable returns the done, unlinked issues of a project.
func (r *SQLiteIssueRepo) ListLinkable(ctx context.Context, projectID string) ([]*domain.Issue, error) {
	return r.list(ctx,
		`WHERE project_id = ? AND active = 1 AND life_cycle = ? AND release_id IS NULL ORDER BY seq`,
		projectID, string(domain.LifeCycleDone))
}

func (r *SQLiteIssueRepo) ListByRelease(ctx context.Context, releaseID string) ([]*domain.Issue, error) {
	return r.list(ctx, `WHERE release_id = ? AND active = 1 ORDER BY seq`, releaseID)
}

func (r *SQLiteIssueRepo) ListIDsByRelease(ctx context.Context, releaseID string) ([]string, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id FROM issues WHERE release_id = ? AND active = 1 ORDER BY seq`, releaseID)
	if err != nil {
		return nil, fmt.Errorf("listing issue ids for release %s: %w", releaseID, err)
	}
	return scanIDs(rows)
}

func (r *SQLiteIssueRepo) Update(ctx context.Context, i *domain.Issue) error {
	query := `UPDATE issues SET title = ?, content = ?, life_cycle = ?, updated_at = ?
		WHERE id = ? AND active = 1`
	res, err := r.db.ExecContext(ctx, query,
		i.Title, i.Content, string(i.LifeCycle), i.UpdatedAt.Format(time.RFC3339), i.ID)
	if err != nil {
		return fmt.Errorf("updating issue: %w", err)
	}
	return requireAffected(res, fmt.Errorf("issue %s: %w", i.ID, domain.ErrIssueNotFound))
}

func (r *SQLiteIssueRepo) LinkToRelease(ctx context.Context, issueIDs []string, releaseID string) error {
	if len(issueIDs) == 0 {
		return nil
	}
	in, args := inClause(issueIDs)
	query := `UPDATE issues SET release_id = ?, updated_at = ? WHERE active = 1 AND id IN (` + in + `)`
	res, err := r.db.ExecContext(ctx, query, append([]any{releaseID, nowUTC()}, args...)...)
	if err != nil {
		return fmt.Errorf("linking issues to release %s: %w", releaseID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("reading rows affected: %w", err)
	}
	if int(n) != len(issueIDs) {
		return fmt.Errorf("linked %d of %d issues: %w", n, len(issueIDs), domain.ErrIssueNotFound)
	}
	return nil
}

func (r *SQLiteIssueRepo) UnlinkRelease(ctx context.Context, releaseID string) (int64, error) {
	query := `UPDATE issues SET release_id = NULL, updated_at = ?
		WHERE release_id = ? AND active = 1 AND life_cycle != ?`
	res, err := r.db.ExecContext(ctx, query, nowUTC(), releaseID, string(domain.LifeCycleCompleted))
	if err != nil {
		return 0, fmt.Errorf("unlinking issues from release %s: %w", releaseID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("reading rows affected: %w", err)
	}
	return n, nil
}

func (r *SQLiteIssueRepo) DeactivateBatch(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	in, args := inClause(ids)
	query := `UPDATE issues SET active = 0, updated_at = ? WHERE id IN (` + in + `)`
	if _, err := r.db.ExecContext(ctx, query, append([]any{nowUTC()}, args...)...); err != nil {
		return fmt.Errorf("deactivating issues: %w", err)
	}
	return nil
}

func (r *SQLiteIssueRepo) list(ctx context.Context, where string, args ...any) ([]*domain.Issue, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+issueColumns+` FROM issues `+where, args...)
	if err != nil {
		return nil, fmt.Errorf("listing issues: %w", err)
	}
	defer rows.Close()

	var issues []*domain.Issue
	for rows.Next() {
		i, err := scanIssue(rows)
		if err != nil {
			return nil, err
		}
		issues = append(issues, i)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating issues: %w", err)
	}
	return issues, nil
}

func scanIssue(row scanner) (*domain.Issue, error) {
	var i domain.Issue
	var lifeCycle string
	var releaseID sql.NullString
	var active int
	var createdAtStr, updatedAtStr string

	err := row.Scan(
		&i.ID, &i.ProjectID, &i.Seq, &i.Title, &i.Content, &lifeCycle, &releaseID,
		&active, &createdAtStr, &updatedAtStr,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning issue: %w", err)
	}
	i.LifeCycle = domain.LifeCycle(lifeCycle)
	i.ReleaseID = parseNullableString(releaseID)
	i.Active = intToBool(active)

	var parseErr error
	if i.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAtStr); parseErr != nil {
		return nil, fmt.Errorf("parsing created_at: %w", parseErr)
	}
	if i.UpdatedAt, parseErr = time.Parse(time.RFC3339, updatedAtStr); parseErr != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", parseErr)
	}
	return &i, nil
}
