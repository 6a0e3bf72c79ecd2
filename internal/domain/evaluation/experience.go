package evaluation

import "math"

// The probation review has 24 questions grouped into 6 competencies. Scores
// are decimals between 4.0 and 10.0 in 0.5 steps; the step granularity is a
// form concern, the engine enforces the bounds.
const (
	ExperienceScoreMin  = 4.0
	ExperienceScoreMax  = 10.0
	ExperienceScoreStep = 0.5
)

type Competency struct {
	Number int
	Title  string
	Keys   []string
}

var ExperienceCompetencies = []Competency{
	{1, "Adaptação / Sociabilidade e Trabalho em Equipe", []string{"adaptacao_q1", "adaptacao_q2", "adaptacao_q3"}},
	{2, "Conhecimento Técnico e Cumprimento das Tarefas", []string{"conhecimento_q4", "conhecimento_q5", "conhecimento_q6", "conhecimento_q7", "conhecimento_q8", "conhecimento_q9", "conhecimento_q10"}},
	{3, "Iniciativa e Criatividade", []string{"iniciativa_q11", "iniciativa_q12", "iniciativa_q13"}},
	{4, "Disciplina e Responsabilidade", []string{"disciplina_q14", "disciplina_q15", "disciplina_q16", "disciplina_q17"}},
	{5, "Assiduidade e Apresentação Pessoal", []string{"assiduidade_q18", "assiduidade_q19", "assiduidade_q20"}},
	{6, "Desenvolvimento Pessoal", []string{"desenvolvimento_q21", "desenvolvimento_q22", "desenvolvimento_q23", "desenvolvimento_q24"}},
}

// ExperienceQuestionKeys lists all 24 required question keys in form order.
var ExperienceQuestionKeys = func() []string {
	var keys []string
	for _, competency := range ExperienceCompetencies {
		keys = append(keys, competency.Keys...)
	}
	return keys
}()

type ExperienceScore struct {
	FinalScore     float64 `json:"finalScore"`
	Classification string  `json:"classification"`
}

// ScoreExperience computes the final probation score: the arithmetic mean of
// all 24 answers rounded to two decimals. Every question is required.
func ScoreExperience(answers map[string]float64) (ExperienceScore, error) {
	if err := requireKeysFloat(ExperienceQuestionKeys, answers); err != nil {
		return ExperienceScore{}, err
	}

	var sum float64
	for _, key := range ExperienceQuestionKeys {
		score := answers[key]
		if score < ExperienceScoreMin || score > ExperienceScoreMax {
			return ExperienceScore{}, &OutOfRangeError{Key: key, Value: score, Min: ExperienceScoreMin, Max: ExperienceScoreMax}
		}
		sum += score
	}

	final := round2(sum / float64(len(ExperienceQuestionKeys)))
	return ExperienceScore{FinalScore: final, Classification: ClassifyExperience(final)}, nil
}

// ClassifyExperience maps a final score to its label. Boundaries are closed
// on the lower edge.
func ClassifyExperience(score float64) string {
	switch {
	case score >= 9.0:
		return ClassAboveExpectations
	case score >= 8.0:
		return ClassSatisfactory
	case score >= 7.0:
		return ClassDevelopment
	default:
		return ClassBelowCompetencies
	}
}

// CompetencyAverages returns the per-competency mean for one evaluation,
// used by the HR metrics distribution chart.
func CompetencyAverages(answers map[string]float64) map[string]float64 {
	averages := make(map[string]float64, len(ExperienceCompetencies))
	for _, competency := range ActiveCompetencies(answers) {
		var sum float64
		for _, key := range competency.Keys {
			sum += answers[key]
		}
		averages[competency.Title] = sum / float64(len(competency.Keys))
	}
	return averages
}

// ActiveCompetencies filters to competencies whose questions are all answered.
func ActiveCompetencies(answers map[string]float64) []Competency {
	var active []Competency
	for _, competency := range ExperienceCompetencies {
		complete := true
		for _, key := range competency.Keys {
			if _, ok := answers[key]; !ok {
				complete = false
				break
			}
		}
		if complete {
			active = append(active, competency)
		}
	}
	return active
}

func requireKeysFloat(required []string, answers map[string]float64) error {
	var missing []string
	for _, key := range required {
		if _, ok := answers[key]; !ok {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return &MissingAnswersError{Missing: missing}
	}
	return nil
}

func round2(value float64) float64 {
	return math.Round(value*100) / 100
}
