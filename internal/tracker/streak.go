package tracker

// CurrentStreak counts consecutive submitted days ending at today,
// walking backward until the first missing day. A missing today yields 0:
// yesterday's streak does not carry until today is submitted.
func CurrentStreak(days map[Day]float64, today Day) int {
	streak := 0
	for d := today; ; d = d.AddDays(-1) {
		if _, ok := days[d]; !ok {
			break
		}
		streak++
	}
	return streak
}

// HasNDayStreak reports whether the n most recent days, today included,
// are all submitted.
func HasNDayStreak(days map[Day]float64, n int, today Day) bool {
	if n <= 0 {
		return false
	}
	return CurrentStreak(days, today) >= n
}
