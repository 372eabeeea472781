package storage

import (
	"context"
	"database/sql"
	"fmt"
)

func Migrate(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		// One row per calendar date; the PRIMARY KEY enforces the
		// uniqueness invariant the engine's upsert relies on.
		`CREATE TABLE IF NOT EXISTS day_log (
			date TEXT PRIMARY KEY,
			completion TEXT NOT NULL DEFAULT '{}',
			score REAL NOT NULL DEFAULT 0
		);`,
		// Append-only: names are never updated or removed once present.
		`CREATE TABLE IF NOT EXISTS achievements (
			name TEXT PRIMARY KEY,
			unlocked_on TEXT NOT NULL
		);`,
		// Key/value scratch area; currently only the cached streak.
		`CREATE TABLE IF NOT EXISTS meta (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_day_log_score ON day_log(score);`,
	}

	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}
