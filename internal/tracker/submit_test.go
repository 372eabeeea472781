package tracker_test

import (
	"context"
	"errors"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/Eng-ReQTeCH/perect-day-tracker/internal/storage"
	"github.com/Eng-ReQTeCH/perect-day-tracker/internal/tracker"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

func (c *fakeClock) advanceDays(n int) {
	c.now = c.now.AddDate(0, 0, n)
}

func fiftyFifty() []tracker.TaskDefinition {
	return []tracker.TaskDefinition{
		{Name: "A", Weight: 50, Color: "#1DB954"},
		{Name: "B", Weight: 50, Color: "#FF5722"},
	}
}

func newTestService(t *testing.T, catalog []tracker.TaskDefinition) (*tracker.Service, *fakeClock) {
	t.Helper()
	ctx := context.Background()

	path := filepath.Join(t.TempDir(), "test.db")
	db, err := storage.Open(ctx, path)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	clock := &fakeClock{now: time.Date(2026, 8, 1, 9, 30, 0, 0, time.Local)}
	svc, err := tracker.NewService(
		storage.NewDayRepo(db),
		storage.NewAchievementRepo(db),
		storage.NewMetaRepo(db),
		catalog,
		clock,
		nil,
	)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return svc, clock
}

func TestSubmitThreeDayScenario(t *testing.T) {
	svc, clock := newTestService(t, fiftyFifty())
	ctx := context.Background()

	res, err := svc.SubmitDay(ctx, map[string]bool{"A": true})
	if err != nil {
		t.Fatalf("day 1 submit: %v", err)
	}
	if res.Score != 50 || res.Streak != 1 {
		t.Fatalf("day 1: score=%v streak=%d, want 50/1", res.Score, res.Streak)
	}
	if !reflect.DeepEqual(res.NewlyUnlocked, []string{"First 50%"}) {
		t.Fatalf("day 1 unlocked %v, want [First 50%%]", res.NewlyUnlocked)
	}

	clock.advanceDays(1)
	res, err = svc.SubmitDay(ctx, map[string]bool{"A": true, "B": true})
	if err != nil {
		t.Fatalf("day 2 submit: %v", err)
	}
	if res.Score != 100 || res.Streak != 2 {
		t.Fatalf("day 2: score=%v streak=%d, want 100/2", res.Score, res.Streak)
	}
	if !reflect.DeepEqual(res.NewlyUnlocked, []string{"First 100%"}) {
		t.Fatalf("day 2 unlocked %v, want [First 100%%]", res.NewlyUnlocked)
	}

	clock.advanceDays(1)
	res, err = svc.SubmitDay(ctx, map[string]bool{"A": true})
	if err != nil {
		t.Fatalf("day 3 submit: %v", err)
	}
	if res.Score != 50 || res.Streak != 3 {
		t.Fatalf("day 3: score=%v streak=%d, want 50/3", res.Score, res.Streak)
	}
	if !reflect.DeepEqual(res.NewlyUnlocked, []string{"Three Days Streak"}) {
		t.Fatalf("day 3 unlocked %v, want [Three Days Streak]", res.NewlyUnlocked)
	}
}

func TestSubmitSameDayOverwrites(t *testing.T) {
	svc, _ := newTestService(t, fiftyFifty())
	ctx := context.Background()

	if _, err := svc.SubmitDay(ctx, map[string]bool{"A": true}); err != nil {
		t.Fatalf("first submit: %v", err)
	}
	res, err := svc.SubmitDay(ctx, map[string]bool{"A": true, "B": true})
	if err != nil {
		t.Fatalf("second submit: %v", err)
	}
	if res.Score != 100 {
		t.Fatalf("score=%v, want 100", res.Score)
	}
	if res.Streak != 1 {
		t.Fatalf("streak=%d, want 1 (same day resubmission)", res.Streak)
	}

	records, err := svc.History(ctx)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("got %d rows, want 1", len(records))
	}
	if records[0].Score != 100 {
		t.Fatalf("stored score=%v, want 100 (second write wins)", records[0].Score)
	}
	if !records[0].Completion["B"] {
		t.Fatalf("stored completion missing B=true")
	}
}

func TestPerfectFirstDayUnlocksBothButNotStreak(t *testing.T) {
	svc, _ := newTestService(t, fiftyFifty())
	ctx := context.Background()

	res, err := svc.SubmitDay(ctx, map[string]bool{"A": true, "B": true})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	want := []string{"First 50%", "First 100%"}
	if !reflect.DeepEqual(res.NewlyUnlocked, want) {
		t.Fatalf("unlocked %v, want %v", res.NewlyUnlocked, want)
	}
}

func TestAchievementsUnlockAtMostOnce(t *testing.T) {
	svc, clock := newTestService(t, fiftyFifty())
	ctx := context.Background()

	if _, err := svc.SubmitDay(ctx, map[string]bool{"A": true, "B": true}); err != nil {
		t.Fatalf("day 1 submit: %v", err)
	}

	clock.advanceDays(1)
	res, err := svc.SubmitDay(ctx, map[string]bool{"A": true, "B": true})
	if err != nil {
		t.Fatalf("day 2 submit: %v", err)
	}
	if len(res.NewlyUnlocked) != 0 {
		t.Fatalf("unlocked %v, want none (already earned)", res.NewlyUnlocked)
	}

	unlocked, err := svc.Unlocked(ctx)
	if err != nil {
		t.Fatalf("unlocked: %v", err)
	}
	if len(unlocked) != 2 {
		t.Fatalf("got %d achievements, want 2", len(unlocked))
	}
	// First unlock date must survive the re-satisfying submission.
	if got := unlocked["First 100%"].UnlockedOn.String(); got != "2026-08-01" {
		t.Fatalf("First 100%% unlocked_on=%s, want 2026-08-01", got)
	}
}

func TestOverweightDayIsNotPerfect(t *testing.T) {
	svc, _ := newTestService(t, []tracker.TaskDefinition{
		{Name: "A", Weight: 80, Color: "#1DB954"},
		{Name: "B", Weight: 40, Color: "#FF5722"},
	})
	ctx := context.Background()

	res, err := svc.SubmitDay(ctx, map[string]bool{"A": true, "B": true})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if res.Score != 120 {
		t.Fatalf("score=%v, want 120", res.Score)
	}
	// First 100% requires exactly 100, not at-least.
	if !reflect.DeepEqual(res.NewlyUnlocked, []string{"First 50%"}) {
		t.Fatalf("unlocked %v, want [First 50%%]", res.NewlyUnlocked)
	}
}

func TestMissedDayResetsStreak(t *testing.T) {
	svc, clock := newTestService(t, fiftyFifty())
	ctx := context.Background()

	if _, err := svc.SubmitDay(ctx, map[string]bool{"A": true}); err != nil {
		t.Fatalf("day 1 submit: %v", err)
	}
	clock.advanceDays(2)
	res, err := svc.SubmitDay(ctx, map[string]bool{"A": true})
	if err != nil {
		t.Fatalf("day 3 submit: %v", err)
	}
	if res.Streak != 1 {
		t.Fatalf("streak=%d, want 1 after a missed day", res.Streak)
	}
}

// failingAchievementStore rejects appends until allowed, to exercise the
// no-unlock-without-durable-record rule.
type failingAchievementStore struct {
	inner *storage.MemoryStore
	fail  bool
}

func (f *failingAchievementStore) ListAchievements(ctx context.Context) ([]tracker.Achievement, error) {
	return f.inner.ListAchievements(ctx)
}

func (f *failingAchievementStore) AppendAchievement(ctx context.Context, name string, day tracker.Day) error {
	if f.fail {
		return errors.New("store unavailable")
	}
	return f.inner.AppendAchievement(ctx, name, day)
}

func TestAchievementWriteFailureIsRetriable(t *testing.T) {
	ctx := context.Background()
	mem := storage.NewMemoryStore()
	achievements := &failingAchievementStore{inner: mem, fail: true}
	clock := &fakeClock{now: time.Date(2026, 8, 1, 9, 30, 0, 0, time.Local)}

	svc, err := tracker.NewService(mem, achievements, mem, fiftyFifty(), clock, nil)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	if _, err := svc.SubmitDay(ctx, map[string]bool{"A": true}); err == nil {
		t.Fatalf("expected submit to fail when achievement store is down")
	}
	unlocked, err := svc.Unlocked(ctx)
	if err != nil {
		t.Fatalf("unlocked: %v", err)
	}
	if len(unlocked) != 0 {
		t.Fatalf("got %d achievements, want 0 after failed append", len(unlocked))
	}

	// The day row itself stayed committed; the next submission re-evaluates
	// the same condition and records it.
	achievements.fail = false
	res, err := svc.SubmitDay(ctx, map[string]bool{"A": true})
	if err != nil {
		t.Fatalf("retry submit: %v", err)
	}
	if !reflect.DeepEqual(res.NewlyUnlocked, []string{"First 50%"}) {
		t.Fatalf("unlocked %v, want [First 50%%] on retry", res.NewlyUnlocked)
	}
}

func TestCurrentStreakRefreshesCache(t *testing.T) {
	svc, _ := newTestService(t, fiftyFifty())
	ctx := context.Background()

	if _, err := svc.SubmitDay(ctx, map[string]bool{"A": true}); err != nil {
		t.Fatalf("submit: %v", err)
	}
	streak, err := svc.CurrentStreak(ctx)
	if err != nil {
		t.Fatalf("current streak: %v", err)
	}
	if streak != 1 {
		t.Fatalf("streak=%d, want 1", streak)
	}
}
