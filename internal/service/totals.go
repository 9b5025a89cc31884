package service

// KindTotal aggregates the successful results of one workout kind
type KindTotal struct {
	Kind     string
	Count    int
	Duration float64 // hours
	Distance float64 // km
	Calories float64
}

// Totals aggregates successful results per kind, in order of first appearance
func Totals(results []Result) []KindTotal {
	var totals []KindTotal
	index := make(map[string]int)

	for _, r := range results {
		if r.Err != nil {
			continue
		}
		kind := r.Summary.TrainingType
		i, ok := index[kind]
		if !ok {
			i = len(totals)
			index[kind] = i
			totals = append(totals, KindTotal{Kind: kind})
		}
		totals[i].Count++
		totals[i].Duration += r.Summary.Duration
		totals[i].Distance += r.Summary.Distance
		totals[i].Calories += r.Summary.Calories
	}

	return totals
}
