package tracker

// TaskDefinition is one entry of the task catalog: a named daily task
// worth Weight points when completed. The catalog is ordered and immutable
// for the session; weights nominally sum to 100 but are not required to.
type TaskDefinition struct {
	Name   string
	Weight float64
	Color  string
}

// TaskNames returns the catalog names in catalog order.
func TaskNames(catalog []TaskDefinition) []string {
	names := make([]string, len(catalog))
	for i, t := range catalog {
		names[i] = t.Name
	}
	return names
}

// NormalizeCompletion maps completion onto the catalog: the result has one
// key per catalog task, missing tasks default to false and keys not in the
// catalog are dropped.
func NormalizeCompletion(completion map[string]bool, catalog []TaskDefinition) map[string]bool {
	out := make(map[string]bool, len(catalog))
	for _, t := range catalog {
		out[t.Name] = completion[t.Name]
	}
	return out
}
