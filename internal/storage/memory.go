package storage

import (
	"context"
	"sync"

	"github.com/Eng-ReQTeCH/perect-day-tracker/internal/tracker"
)

// MemoryStore is an in-memory implementation of the tracker store
// interfaces, used by tests and as a scratch backend when no database is
// wanted. Safe for concurrent use.
type MemoryStore struct {
	mu           sync.Mutex
	days         map[string]tracker.DayRecord
	achievements []tracker.Achievement
	streak       int
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{days: map[string]tracker.DayRecord{}}
}

func (m *MemoryStore) ListDays(ctx context.Context) ([]tracker.DayRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]tracker.DayRecord, 0, len(m.days))
	for _, rec := range m.days {
		out = append(out, cloneRecord(rec))
	}
	return out, nil
}

func (m *MemoryStore) UpsertDay(ctx context.Context, rec tracker.DayRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.days[rec.Date] = cloneRecord(rec)
	return nil
}

func (m *MemoryStore) ListAchievements(ctx context.Context) ([]tracker.Achievement, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]tracker.Achievement, len(m.achievements))
	copy(out, m.achievements)
	return out, nil
}

func (m *MemoryStore) AppendAchievement(ctx context.Context, name string, unlockedOn tracker.Day) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, a := range m.achievements {
		if a.Name == name {
			return nil
		}
	}
	m.achievements = append(m.achievements, tracker.Achievement{Name: name, UnlockedOn: unlockedOn})
	return nil
}

func (m *MemoryStore) SetStreak(ctx context.Context, n int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.streak = n
	return nil
}

func (m *MemoryStore) Streak(ctx context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.streak, nil
}

func cloneRecord(rec tracker.DayRecord) tracker.DayRecord {
	completion := make(map[string]bool, len(rec.Completion))
	for k, v := range rec.Completion {
		completion[k] = v
	}
	rec.Completion = completion
	return rec
}
