package tracker

import (
	"context"
	"errors"
	"io"
	"log/slog"
)

// Service orchestrates submissions over the injected stores. It holds no
// row-set cache: every operation re-reads the store, so externally
// concurrent edits (another device, manual fixes) are picked up.
type Service struct {
	records      RecordStore
	achievements AchievementStore
	streaks      StreakCache
	catalog      []TaskDefinition
	clock        Clock
	log          *slog.Logger
}

// NewService constructs a Service with the provided collaborators.
// logger may be nil, in which case logging is discarded.
func NewService(records RecordStore, achievements AchievementStore, streaks StreakCache, catalog []TaskDefinition, clock Clock, logger *slog.Logger) (*Service, error) {
	if records == nil {
		return nil, errors.New("record store is required")
	}
	if achievements == nil {
		return nil, errors.New("achievement store is required")
	}
	if streaks == nil {
		return nil, errors.New("streak cache is required")
	}
	if len(catalog) == 0 {
		return nil, errors.New("task catalog is empty")
	}
	if clock == nil {
		return nil, errors.New("clock is required")
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Service{
		records:      records,
		achievements: achievements,
		streaks:      streaks,
		catalog:      catalog,
		clock:        clock,
		log:          logger,
	}, nil
}

// Catalog returns the active task catalog in display order.
func (s *Service) Catalog() []TaskDefinition {
	return s.catalog
}

// Today returns the current local calendar date.
func (s *Service) Today() Day {
	return DayOf(s.clock.Now())
}

// History returns all stored day rows.
func (s *Service) History(ctx context.Context) ([]DayRecord, error) {
	return s.records.ListDays(ctx)
}

// TodayRecord returns today's stored row, or nil if today has not been
// submitted yet.
func (s *Service) TodayRecord(ctx context.Context) (*DayRecord, error) {
	records, err := s.records.ListDays(ctx)
	if err != nil {
		return nil, err
	}
	key := s.Today().String()
	for i := range records {
		if records[i].Date == key {
			return &records[i], nil
		}
	}
	return nil, nil
}

// CurrentStreak recomputes the streak from the stored rows and refreshes
// the cached value. The cache is display-only; the recomputed value wins.
func (s *Service) CurrentStreak(ctx context.Context) (int, error) {
	records, err := s.records.ListDays(ctx)
	if err != nil {
		return 0, err
	}
	streak := CurrentStreak(Aggregate(records), s.Today())
	if err := s.streaks.SetStreak(ctx, streak); err != nil {
		s.log.Warn("streak cache refresh failed", "err", err)
	}
	return streak, nil
}

// Unlocked returns the recorded achievements keyed by name.
func (s *Service) Unlocked(ctx context.Context) (map[string]Achievement, error) {
	list, err := s.achievements.ListAchievements(ctx)
	if err != nil {
		return nil, err
	}
	unlocked := make(map[string]Achievement, len(list))
	for _, a := range list {
		unlocked[a.Name] = a
	}
	return unlocked, nil
}
