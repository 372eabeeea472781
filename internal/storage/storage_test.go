package storage

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/Eng-ReQTeCH/perect-day-tracker/internal/tracker"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	ctx := context.Background()
	db, err := Open(ctx, filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestDayUpsertKeepsOneRowPerDate(t *testing.T) {
	ctx := context.Background()
	repo := NewDayRepo(newTestDB(t))

	first := tracker.DayRecord{
		Date:       "2026-08-30",
		Completion: map[string]bool{"Study": true, "Exercise": false},
		Score:      20,
	}
	if err := repo.UpsertDay(ctx, first); err != nil {
		t.Fatalf("first upsert: %v", err)
	}

	second := first
	second.Completion = map[string]bool{"Study": true, "Exercise": true}
	second.Score = 30
	if err := repo.UpsertDay(ctx, second); err != nil {
		t.Fatalf("second upsert: %v", err)
	}

	records, err := repo.ListDays(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("got %d rows, want 1", len(records))
	}
	if records[0].Score != 30 {
		t.Fatalf("score=%v, want 30 (last write wins)", records[0].Score)
	}
	if !records[0].Completion["Exercise"] {
		t.Fatalf("completion not replaced")
	}
}

func TestDayListToleratesMangledCompletion(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewDayRepo(db)

	// Simulate a hand-edited row.
	if _, err := db.ExecContext(ctx, `INSERT INTO day_log (date, completion, score) VALUES ('2026-08-30', 'not json', 45)`); err != nil {
		t.Fatalf("seed row: %v", err)
	}

	records, err := repo.ListDays(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("got %d rows, want 1", len(records))
	}
	if records[0].Score != 45 {
		t.Fatalf("score=%v, want 45", records[0].Score)
	}
	if len(records[0].Completion) != 0 {
		t.Fatalf("completion=%v, want empty map", records[0].Completion)
	}
}

func TestAchievementAppendNeverDuplicates(t *testing.T) {
	ctx := context.Background()
	repo := NewAchievementRepo(newTestDB(t))

	day1, _ := tracker.ParseDay("2026-08-29")
	day2, _ := tracker.ParseDay("2026-08-30")

	if err := repo.AppendAchievement(ctx, "First 50%", day1); err != nil {
		t.Fatalf("first append: %v", err)
	}
	if err := repo.AppendAchievement(ctx, "First 50%", day2); err != nil {
		t.Fatalf("second append: %v", err)
	}

	list, err := repo.ListAchievements(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("got %d records, want 1", len(list))
	}
	if list[0].UnlockedOn.String() != "2026-08-29" {
		t.Fatalf("unlocked_on=%s, want 2026-08-29 (first unlock wins)", list[0].UnlockedOn)
	}
}

func TestMetaStreakRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := NewMetaRepo(newTestDB(t))

	n, err := repo.Streak(ctx)
	if err != nil {
		t.Fatalf("streak on empty: %v", err)
	}
	if n != 0 {
		t.Fatalf("streak=%d, want 0 before any submission", n)
	}

	if err := repo.SetStreak(ctx, 7); err != nil {
		t.Fatalf("set streak: %v", err)
	}
	if err := repo.SetStreak(ctx, 8); err != nil {
		t.Fatalf("update streak: %v", err)
	}
	n, err = repo.Streak(ctx)
	if err != nil {
		t.Fatalf("streak: %v", err)
	}
	if n != 8 {
		t.Fatalf("streak=%d, want 8", n)
	}
}
