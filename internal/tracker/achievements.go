package tracker

// AchievementDef describes one unlockable achievement and its condition.
// Conditions are independent of each other and evaluated against the
// just-submitted score and the updated day set.
type AchievementDef struct {
	Name        string
	Description string
	Icon        string
	Satisfied   func(score float64, days map[Day]float64, today Day) bool
}

// Definitions returns every achievement in evaluation order. Keep the
// names stable: they are the primary keys in the achievement store.
func Definitions() []AchievementDef {
	return []AchievementDef{
		{
			Name:        "First 50%",
			Description: "Score at least 50 points in one day",
			Icon:        "🌗",
			Satisfied: func(score float64, _ map[Day]float64, _ Day) bool {
				return score >= 50
			},
		},
		{
			Name:        "First 100%",
			Description: "Score exactly 100 points in one day",
			Icon:        "🌕",
			Satisfied: func(score float64, _ map[Day]float64, _ Day) bool {
				return score == PerfectScore
			},
		},
		{
			Name:        "Three Days Streak",
			Description: "Submit three days in a row",
			Icon:        "🔥",
			Satisfied: func(_ float64, days map[Day]float64, today Day) bool {
				return HasNDayStreak(days, 3, today)
			},
		},
	}
}
