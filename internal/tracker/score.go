package tracker

// PerfectScore is the nominal full-day score a standard catalog sums to.
const PerfectScore = 100

// Score sums the weight of every completed task. Tasks absent from
// completion count as not done; completion keys outside the catalog are
// ignored. The result is not clamped, so catalogs weighing more than 100
// points can score above PerfectScore.
func Score(completion map[string]bool, catalog []TaskDefinition) float64 {
	var total float64
	for _, t := range catalog {
		if completion[t.Name] {
			total += t.Weight
		}
	}
	return total
}
