package evaluation

type SupervisorScore struct {
	TotalPoints     float64 `json:"totalPoints"`
	PercentualFinal float64 `json:"percentualFinal"`
	Classification  string  `json:"classification"`
}

// ScoreSupervisor scores a supervisor/promotion review against its rubric.
// Every rubric item is required and each score must lie in [0, item max];
// out-of-range values are rejected, never clamped.
func ScoreSupervisor(rubric Rubric, answers map[string]float64) (SupervisorScore, error) {
	var missing []string
	for _, key := range rubric.ItemKeys() {
		if _, ok := answers[key]; !ok {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return SupervisorScore{}, &MissingAnswersError{Missing: missing}
	}

	var total float64
	for _, key := range rubric.ItemKeys() {
		item, _ := rubric.item(key)
		score := answers[key]
		if score < 0 || score > item.Max {
			return SupervisorScore{}, &OutOfRangeError{Key: key, Value: score, Min: 0, Max: item.Max}
		}
		total += score
	}

	percentage := round2(total / rubric.Max() * 100)
	return SupervisorScore{
		TotalPoints:     total,
		PercentualFinal: percentage,
		Classification:  rubric.Classify(percentage),
	}, nil
}
