package db

import (
	"database/sql"
	"fmt"
)

// Migrate creates the schema. Every statement is idempotent.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS projects (
		id          TEXT PRIMARY KEY,
		name        TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		active      INTEGER NOT NULL DEFAULT 1,
		created_at  TEXT NOT NULL,
		updated_at  TEXT NOT NULL
	)`,

	// Per-project counters for release timeline positions and issue numbers.
	`CREATE TABLE IF NOT EXISTS project_sequences (
		project_id TEXT NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
		kind       TEXT NOT NULL CHECK(kind IN ('release','issue')),
		next_seq   INTEGER NOT NULL CHECK(next_seq > 0),
		PRIMARY KEY (project_id, kind)
	)`,

	`CREATE TABLE IF NOT EXISTS release_notes (
		id            TEXT PRIMARY KEY,
		project_id    TEXT NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
		seq           INTEGER NOT NULL,
		title         TEXT NOT NULL,
		content       TEXT NOT NULL,
		summary       TEXT NOT NULL DEFAULT '',
		version       TEXT NOT NULL,
		deploy_date   TEXT,
		deploy_status TEXT NOT NULL DEFAULT 'planning'
		              CHECK(deploy_status IN ('planning','scheduled','deployed')),
		active        INTEGER NOT NULL DEFAULT 1,
		created_at    TEXT NOT NULL,
		updated_at    TEXT NOT NULL,
		UNIQUE (project_id, seq)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_release_notes_project ON release_notes(project_id, active)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_release_notes_active_version
		ON release_notes(project_id, version) WHERE active = 1`,

	`CREATE TABLE IF NOT EXISTS issues (
		id         TEXT PRIMARY KEY,
		project_id TEXT NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
		seq        INTEGER NOT NULL,
		title      TEXT NOT NULL,
		content    TEXT NOT NULL DEFAULT '',
		life_cycle TEXT NOT NULL DEFAULT 'backlog'
		           CHECK(life_cycle IN ('backlog','todo','in_progress','done','completed')),
		release_id TEXT REFERENCES release_notes(id),
		active     INTEGER NOT NULL DEFAULT 1,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL,
		UNIQUE (project_id, seq)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_issues_project ON issues(project_id, active)`,
	`CREATE INDEX IF NOT EXISTS idx_issues_release ON issues(release_id)`,

	`CREATE TABLE IF NOT EXISTS release_opinions (
		id         TEXT PRIMARY KEY,
		release_id TEXT NOT NULL REFERENCES release_notes(id) ON DELETE CASCADE,
		author     TEXT NOT NULL DEFAULT '',
		content    TEXT NOT NULL,
		active     INTEGER NOT NULL DEFAULT 1,
		created_at TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_release_opinions_release ON release_opinions(release_id, active)`,
}
