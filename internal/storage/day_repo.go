package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Eng-ReQTeCH/perect-day-tracker/internal/tracker"
)

// DayRepo persists day rows in the day_log table. It implements
// tracker.RecordStore.
type DayRepo struct {
	db *sql.DB
}

func NewDayRepo(db *sql.DB) *DayRepo {
	return &DayRepo{db: db}
}

func (r *DayRepo) ListDays(ctx context.Context) ([]tracker.DayRecord, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT date, completion, score FROM day_log ORDER BY date ASC`)
	if err != nil {
		return nil, fmt.Errorf("day list: %w", err)
	}
	defer rows.Close()

	var out []tracker.DayRecord
	for rows.Next() {
		var rec tracker.DayRecord
		var completionJSON string
		if err := rows.Scan(&rec.Date, &completionJSON, &rec.Score); err != nil {
			return nil, fmt.Errorf("day scan: %w", err)
		}
		// A hand-edited completion blob that no longer parses degrades to
		// "nothing checked"; the row and its score are kept.
		if err := json.Unmarshal([]byte(completionJSON), &rec.Completion); err != nil {
			rec.Completion = map[string]bool{}
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("day rows: %w", err)
	}
	return out, nil
}

func (r *DayRepo) UpsertDay(ctx context.Context, rec tracker.DayRecord) error {
	completionJSON, err := json.Marshal(rec.Completion)
	if err != nil {
		return fmt.Errorf("marshal completion: %w", err)
	}
	_, err = r.db.ExecContext(ctx, `
		INSERT INTO day_log (date, completion, score) VALUES (?, ?, ?)
		ON CONFLICT(date) DO UPDATE SET completion = excluded.completion, score = excluded.score
	`, rec.Date, string(completionJSON), rec.Score)
	if err != nil {
		return fmt.Errorf("day upsert: %w", err)
	}
	return nil
}
