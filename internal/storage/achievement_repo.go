package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Eng-ReQTeCH/perect-day-tracker/internal/tracker"
)

// AchievementRepo persists unlocked achievements. It implements
// tracker.AchievementStore.
type AchievementRepo struct {
	db *sql.DB
}

func NewAchievementRepo(db *sql.DB) *AchievementRepo {
	return &AchievementRepo{db: db}
}

func (r *AchievementRepo) ListAchievements(ctx context.Context) ([]tracker.Achievement, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT name, unlocked_on FROM achievements ORDER BY unlocked_on ASC, name ASC`)
	if err != nil {
		return nil, fmt.Errorf("achievement list: %w", err)
	}
	defer rows.Close()

	var out []tracker.Achievement
	for rows.Next() {
		var name, unlockedOn string
		if err := rows.Scan(&name, &unlockedOn); err != nil {
			return nil, fmt.Errorf("achievement scan: %w", err)
		}
		day, err := tracker.ParseDay(unlockedOn)
		if err != nil {
			// The unlock itself is what matters; a mangled date is kept as
			// the zero day rather than dropping the record.
			day = tracker.Day{}
		}
		out = append(out, tracker.Achievement{Name: name, UnlockedOn: day})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("achievement rows: %w", err)
	}
	return out, nil
}

// AppendAchievement records one unlock. Appending a name that already
// exists is a no-op: first unlock wins, the record is never rewritten.
func (r *AchievementRepo) AppendAchievement(ctx context.Context, name string, unlockedOn tracker.Day) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO achievements (name, unlocked_on) VALUES (?, ?)
		ON CONFLICT(name) DO NOTHING
	`, name, unlockedOn.String())
	if err != nil {
		return fmt.Errorf("achievement append: %w", err)
	}
	return nil
}
