package evaluation

// The quarterly feedback form has 20 questions across 5 factors, each scored
// 1 to 5, for a 100-point maximum. The percentage index (IDI) equals the
// point total because the scale already tops out at 100.
const (
	QuarterlyScoreMin = 1
	QuarterlyScoreMax = 5
)

type Factor struct {
	Number int
	Title  string
	Keys   []string
}

var QuarterlyFactors = []Factor{
	{1, "Produtividade", []string{"produtividade_1a", "produtividade_1b", "produtividade_1c", "produtividade_1d", "produtividade_1e"}},
	{2, "Conhecimento e Habilidades Técnicas", []string{"conhecimento_2a", "conhecimento_2b", "conhecimento_2c"}},
	{3, "Trabalho em equipe", []string{"trabalho_equipe_3a", "trabalho_equipe_3b", "trabalho_equipe_3c", "trabalho_equipe_3d", "trabalho_equipe_3e"}},
	{4, "Comprometimento com o trabalho", []string{"comprometimento_4a", "comprometimento_4b", "comprometimento_4c"}},
	{5, "Cumprimento das normas de procedimento e de conduta", []string{"cumprimento_normas_5a", "cumprimento_normas_5b", "cumprimento_normas_5c", "cumprimento_normas_5d"}},
}

var QuarterlyQuestionKeys = func() []string {
	var keys []string
	for _, factor := range QuarterlyFactors {
		keys = append(keys, factor.Keys...)
	}
	return keys
}()

type QuarterlyScore struct {
	TotalPoints     int     `json:"totalPoints"`
	PercentageIndex float64 `json:"percentageIndex"`
	Classification  string  `json:"classification"`
}

// ScoreQuarterly sums the 20 answers into the point total and IDI. All
// questions are required; each answer must be an integer in [1,5].
func ScoreQuarterly(answers map[string]int) (QuarterlyScore, error) {
	var missing []string
	for _, key := range QuarterlyQuestionKeys {
		if _, ok := answers[key]; !ok {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return QuarterlyScore{}, &MissingAnswersError{Missing: missing}
	}

	total := 0
	for _, key := range QuarterlyQuestionKeys {
		score := answers[key]
		if score < QuarterlyScoreMin || score > QuarterlyScoreMax {
			return QuarterlyScore{}, &OutOfRangeError{Key: key, Value: float64(score), Min: QuarterlyScoreMin, Max: QuarterlyScoreMax}
		}
		total += score
	}

	index := float64(total)
	return QuarterlyScore{TotalPoints: total, PercentageIndex: index, Classification: ClassifyIDI(index)}, nil
}

// quarterlyCompatIndex reproduces the historical (total/100)*100 transform.
// It is arithmetically the identity on this scale; kept so the equivalence
// stays asserted in tests instead of silently assumed.
func quarterlyCompatIndex(totalPoints int) float64 {
	return round2(float64(totalPoints) / 100 * 100)
}

// ClassifyIDI maps a percentage index to its label. Boundaries are closed on
// the lower edge.
func ClassifyIDI(percentage float64) string {
	switch {
	case percentage >= 80:
		return IDIExcellent
	case percentage >= 60:
		return IDIAboveExpected
	case percentage >= 40:
		return IDIAsExpected
	case percentage >= 20:
		return IDIBelowExpected
	default:
		return IDIWellBelow
	}
}
