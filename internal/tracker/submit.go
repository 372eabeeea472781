package tracker

import (
	"context"
	"fmt"
)

// SubmitResult summarizes one committed submission.
type SubmitResult struct {
	Day           Day
	Score         float64
	Streak        int
	NewlyUnlocked []string
}

// SubmitDay records today's completion vector. Resubmitting the same day
// replaces the existing row in place; the row upsert is the single
// mutation point for day data. After the upsert the full row set is
// re-read, the streak is recomputed and cached, and achievement
// conditions are evaluated against the updated history.
//
// A store failure rejects the submission: no achievement is reported as
// unlocked unless its append succeeded. A row already written before a
// later failure stays written and self-heals on the next submission.
func (s *Service) SubmitDay(ctx context.Context, completion map[string]bool) (*SubmitResult, error) {
	today := s.Today()
	normalized := NormalizeCompletion(completion, s.catalog)
	score := Score(normalized, s.catalog)

	rec := DayRecord{
		Date:       today.String(),
		Completion: normalized,
		Score:      score,
	}
	if err := s.records.UpsertDay(ctx, rec); err != nil {
		return nil, fmt.Errorf("upsert day %s: %w", rec.Date, err)
	}
	s.log.Debug("day row committed", "date", rec.Date, "score", score)

	records, err := s.records.ListDays(ctx)
	if err != nil {
		return nil, fmt.Errorf("read day rows: %w", err)
	}
	days := Aggregate(records)

	streak := CurrentStreak(days, today)
	if err := s.streaks.SetStreak(ctx, streak); err != nil {
		// Cached streak is derived state; the next read recomputes it.
		s.log.Warn("streak cache update failed", "err", err)
	}

	newly, err := s.unlockNew(ctx, score, days, today)
	if err != nil {
		return nil, err
	}

	return &SubmitResult{
		Day:           today,
		Score:         score,
		Streak:        streak,
		NewlyUnlocked: newly,
	}, nil
}

// unlockNew evaluates achievement conditions in definition order and
// appends each newly satisfied one. A name only counts as unlocked once
// its append has succeeded, so a failed append is retried by a later
// submission.
func (s *Service) unlockNew(ctx context.Context, score float64, days map[Day]float64, today Day) ([]string, error) {
	unlocked, err := s.Unlocked(ctx)
	if err != nil {
		return nil, fmt.Errorf("read achievements: %w", err)
	}

	var newly []string
	for _, def := range Definitions() {
		if _, ok := unlocked[def.Name]; ok {
			continue
		}
		if !def.Satisfied(score, days, today) {
			continue
		}
		if err := s.achievements.AppendAchievement(ctx, def.Name, today); err != nil {
			return nil, fmt.Errorf("record achievement %q: %w", def.Name, err)
		}
		s.log.Info("achievement unlocked", "name", def.Name, "date", today.String())
		newly = append(newly, def.Name)
	}
	return newly, nil
}
