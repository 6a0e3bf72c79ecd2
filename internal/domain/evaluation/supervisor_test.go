package evaluation

import (
	"errors"
	"testing"
)

func maxRubricAnswers(rubric Rubric) map[string]float64 {
	answers := make(map[string]float64)
	for _, category := range rubric.Categories {
		for _, item := range category.Items {
			answers[item.Key] = item.Max
		}
	}
	return answers
}

func TestRubricMaxima(t *testing.T) {
	if got := StandardRubric().Max(); got != 100 {
		t.Fatalf("standard rubric max: expected 100, got %v", got)
	}
	if got := LegacyRubric().Max(); got != 145 {
		t.Fatalf("legacy rubric max: expected 145, got %v", got)
	}
	if len(StandardRubric().Categories) != 5 {
		t.Fatalf("expected 5 standard categories, got %d", len(StandardRubric().Categories))
	}
	if len(LegacyRubric().Categories) != 7 {
		t.Fatalf("expected 7 legacy categories, got %d", len(LegacyRubric().Categories))
	}
}

func TestScoreSupervisorStandard(t *testing.T) {
	rubric := StandardRubric()
	answers := maxRubricAnswers(rubric)
	answers["assiduidade_faltas_injustificadas"] = 14 // two unjustified absences

	result, err := ScoreSupervisor(rubric, answers)
	if err != nil {
		t.Fatalf("score supervisor: %v", err)
	}
	if result.TotalPoints != 94 {
		t.Fatalf("expected 94 points, got %v", result.TotalPoints)
	}
	if result.PercentualFinal != 94 {
		t.Fatalf("expected 94%%, got %v", result.PercentualFinal)
	}
	if result.Classification != "Excelente" {
		t.Fatalf("expected Excelente, got %q", result.Classification)
	}
}

func TestScoreSupervisorLegacyPercentage(t *testing.T) {
	rubric := LegacyRubric()
	answers := maxRubricAnswers(rubric)
	result, err := ScoreSupervisor(rubric, answers)
	if err != nil {
		t.Fatalf("score supervisor: %v", err)
	}
	if result.TotalPoints != 145 || result.PercentualFinal != 100 {
		t.Fatalf("expected 145 points / 100%%, got %v / %v", result.TotalPoints, result.PercentualFinal)
	}
}

func TestLegacyRubricCollapsesVeryGoodTier(t *testing.T) {
	if got := StandardRubric().Classify(85); got != "Muito Bom" {
		t.Fatalf("standard 85%%: expected Muito Bom, got %q", got)
	}
	if got := LegacyRubric().Classify(85); got != "Satisfatório" {
		t.Fatalf("legacy 85%%: expected Satisfatório, got %q", got)
	}
}

func TestClassifyThresholdTable(t *testing.T) {
	rubric := StandardRubric()
	cases := []struct {
		percentage float64
		want       string
	}{
		{90, "Excelente"},
		{89.99, "Muito Bom"},
		{80, "Muito Bom"},
		{70, "Satisfatório"},
		{60, "Regular"},
		{59.5, "Insatisfatório"},
	}
	for _, tc := range cases {
		if got := rubric.Classify(tc.percentage); got != tc.want {
			t.Fatalf("percentage %v: expected %q, got %q", tc.percentage, tc.want, got)
		}
	}
}

func TestScoreSupervisorMissingItems(t *testing.T) {
	rubric := StandardRubric()
	answers := maxRubricAnswers(rubric)
	delete(answers, "saude_restricoes_sesmt")

	_, err := ScoreSupervisor(rubric, answers)
	var missing *MissingAnswersError
	if !errors.As(err, &missing) {
		t.Fatalf("expected MissingAnswersError, got %v", err)
	}
}

func TestScoreSupervisorRejectsAboveItemMax(t *testing.T) {
	rubric := StandardRubric()
	answers := maxRubricAnswers(rubric)
	answers["assiduidade_atestados_medicos"] = 6 // item max is 5

	_, err := ScoreSupervisor(rubric, answers)
	var oor *OutOfRangeError
	if !errors.As(err, &oor) {
		t.Fatalf("expected OutOfRangeError, got %v", err)
	}
	if oor.Max != 5 {
		t.Fatalf("expected item max 5, got %v", oor.Max)
	}

	answers["assiduidade_atestados_medicos"] = -1
	if _, err := ScoreSupervisor(rubric, answers); err == nil {
		t.Fatal("expected negative score to be rejected")
	}
}

func TestRubricByVersion(t *testing.T) {
	rubric, err := RubricByVersion("")
	if err != nil || rubric.Version != RubricStandard100 {
		t.Fatalf("empty version must resolve to standard rubric, got %q (%v)", rubric.Version, err)
	}
	if _, err := RubricByVersion("v3"); err == nil {
		t.Fatal("expected unknown version to be rejected")
	}
}
