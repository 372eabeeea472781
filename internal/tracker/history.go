package tracker

// Aggregate reduces raw day records to the best score per calendar date.
//
// The store guarantees one row per date, but an externally edited or
// corrupted table may violate that; duplicates resolve to the maximum
// score rather than an error. Rows whose date does not parse are dropped.
func Aggregate(records []DayRecord) map[Day]float64 {
	days := make(map[Day]float64, len(records))
	for _, rec := range records {
		d, err := ParseDay(rec.Date)
		if err != nil {
			continue
		}
		if best, ok := days[d]; !ok || rec.Score > best {
			days[d] = rec.Score
		}
	}
	return days
}
