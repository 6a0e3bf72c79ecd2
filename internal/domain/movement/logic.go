package movement

import "math"

type CompensationSummary struct {
	CurrentTotal  float64 `json:"currentTotal"`
	ProposedTotal float64 `json:"proposedTotal"`
	Delta         float64 `json:"delta"`
	DeltaPercent  float64 `json:"deltaPercent"`
}

// ComputeCompensation derives the totals and the raise delta of a promotion
// proposal. A zero current package yields a zero delta percentage rather
// than a division error.
func ComputeCompensation(currentSalary, currentBonus, proposedSalary, proposedBonus float64) CompensationSummary {
	current := currentSalary + currentBonus
	proposed := proposedSalary + proposedBonus
	delta := round2(proposed - current)

	var deltaPercent float64
	if current != 0 {
		deltaPercent = round2(delta / current * 100)
	}

	return CompensationSummary{
		CurrentTotal:  round2(current),
		ProposedTotal: round2(proposed),
		Delta:         delta,
		DeltaPercent:  deltaPercent,
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
