package storage

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
)

const streakKey = "streak"

// MetaRepo is a small key/value table for derived display state. It
// implements tracker.StreakCache.
type MetaRepo struct {
	db *sql.DB
}

func NewMetaRepo(db *sql.DB) *MetaRepo {
	return &MetaRepo{db: db}
}

func (r *MetaRepo) get(ctx context.Context, key string) (string, error) {
	row := r.db.QueryRowContext(ctx, `SELECT value FROM meta WHERE key = ?`, key)
	var v string
	if err := row.Scan(&v); err != nil {
		if err == sql.ErrNoRows {
			return "", nil
		}
		return "", fmt.Errorf("meta get: %w", err)
	}
	return v, nil
}

func (r *MetaRepo) set(ctx context.Context, key, value string) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO meta (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("meta set: %w", err)
	}
	return nil
}

func (r *MetaRepo) SetStreak(ctx context.Context, n int) error {
	return r.set(ctx, streakKey, strconv.Itoa(n))
}

// Streak returns the last cached streak; missing or unparseable values
// read as 0.
func (r *MetaRepo) Streak(ctx context.Context) (int, error) {
	v, err := r.get(ctx, streakKey)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, nil
	}
	return n, nil
}
