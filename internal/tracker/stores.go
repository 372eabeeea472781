package tracker

import (
	"context"
	"time"
)

// DayRecord is one stored day row: the raw date text, the per-task
// completion flags, and the score computed at save time. The date is kept
// as stored text so aggregation can drop rows that no longer parse instead
// of failing the whole read.
type DayRecord struct {
	Date       string
	Completion map[string]bool
	Score      float64
}

// RecordStore is the durable table of day rows, keyed uniquely by date.
type RecordStore interface {
	// ListDays returns all stored day rows in any order.
	ListDays(ctx context.Context) ([]DayRecord, error)
	// UpsertDay replaces or inserts the row for rec.Date, leaving at most
	// one row for that date.
	UpsertDay(ctx context.Context, rec DayRecord) error
}

// Achievement is a one-time unlock, permanent once recorded.
type Achievement struct {
	Name       string
	UnlockedOn Day
}

// AchievementStore persists unlocked achievements. Append must never
// produce a duplicate name.
type AchievementStore interface {
	ListAchievements(ctx context.Context) ([]Achievement, error)
	AppendAchievement(ctx context.Context, name string, unlockedOn Day) error
}

// StreakCache holds the displayed streak value. It is derived state:
// always recomputed from the day rows before display, cached only so the
// last known value survives between invocations.
type StreakCache interface {
	SetStreak(ctx context.Context, n int) error
	Streak(ctx context.Context) (int, error)
}

// Clock delivers the current time; extracted for deterministic testing.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

// NewSystemClock returns a Clock backed by time.Now.
func NewSystemClock() Clock {
	return systemClock{}
}

func (systemClock) Now() time.Time {
	return time.Now()
}
