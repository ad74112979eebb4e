package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations. Statements are idempotent and the
// whole list re-runs on every open; duplicate-column errors from later
// ALTER TABLE statements are tolerated for the same reason.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS accounts (
		id         TEXT PRIMARY KEY,
		name       TEXT NOT NULL UNIQUE,
		created_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS question_progress (
		account_id     TEXT NOT NULL REFERENCES accounts(id) ON DELETE CASCADE,
		question_title TEXT NOT NULL,
		completed      INTEGER NOT NULL DEFAULT 0,
		updated_at     TEXT NOT NULL,
		PRIMARY KEY (account_id, question_title)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_progress_account ON question_progress(account_id)`,
}
