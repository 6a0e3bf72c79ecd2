package evaluation

import (
	"errors"
	"testing"
)

func fullQuarterlyAnswers(score int) map[string]int {
	answers := make(map[string]int, len(QuarterlyQuestionKeys))
	for _, key := range QuarterlyQuestionKeys {
		answers[key] = score
	}
	return answers
}

func TestScoreQuarterlyBounds(t *testing.T) {
	low, err := ScoreQuarterly(fullQuarterlyAnswers(1))
	if err != nil {
		t.Fatalf("score quarterly: %v", err)
	}
	if low.TotalPoints != 20 || low.PercentageIndex != 20 {
		t.Fatalf("expected minimum 20/20, got %d/%v", low.TotalPoints, low.PercentageIndex)
	}
	if low.Classification != IDIBelowExpected {
		t.Fatalf("expected %q, got %q", IDIBelowExpected, low.Classification)
	}

	high, err := ScoreQuarterly(fullQuarterlyAnswers(5))
	if err != nil {
		t.Fatalf("score quarterly: %v", err)
	}
	if high.TotalPoints != 100 || high.PercentageIndex != 100 {
		t.Fatalf("expected maximum 100/100, got %d/%v", high.TotalPoints, high.PercentageIndex)
	}
	if high.Classification != IDIExcellent {
		t.Fatalf("expected %q, got %q", IDIExcellent, high.Classification)
	}
}

func TestScoreQuarterlyIndexEqualsTotal(t *testing.T) {
	answers := fullQuarterlyAnswers(3)
	answers["produtividade_1a"] = 5
	answers["cumprimento_normas_5d"] = 1

	result, err := ScoreQuarterly(answers)
	if err != nil {
		t.Fatalf("score quarterly: %v", err)
	}
	if result.PercentageIndex != float64(result.TotalPoints) {
		t.Fatalf("index %v must equal total %d", result.PercentageIndex, result.TotalPoints)
	}
}

func TestQuarterlyCompatIndexIsIdentity(t *testing.T) {
	for total := 20; total <= 100; total++ {
		if quarterlyCompatIndex(total) != float64(total) {
			t.Fatalf("compat transform diverged at %d: %v", total, quarterlyCompatIndex(total))
		}
	}
}

func TestScoreQuarterlyMissingAnswers(t *testing.T) {
	answers := fullQuarterlyAnswers(4)
	delete(answers, "conhecimento_2b")

	_, err := ScoreQuarterly(answers)
	var missing *MissingAnswersError
	if !errors.As(err, &missing) {
		t.Fatalf("expected MissingAnswersError, got %v", err)
	}
	if len(missing.Missing) != 1 || missing.Missing[0] != "conhecimento_2b" {
		t.Fatalf("unexpected missing keys %v", missing.Missing)
	}
}

func TestScoreQuarterlyRejectsOutOfRange(t *testing.T) {
	answers := fullQuarterlyAnswers(3)
	answers["trabalho_equipe_3c"] = 0
	if _, err := ScoreQuarterly(answers); err == nil {
		t.Fatal("expected score 0 to be rejected")
	}

	answers["trabalho_equipe_3c"] = 6
	var oor *OutOfRangeError
	_, err := ScoreQuarterly(answers)
	if !errors.As(err, &oor) {
		t.Fatalf("expected OutOfRangeError, got %v", err)
	}
}

func TestClassifyIDIBoundaries(t *testing.T) {
	cases := []struct {
		percentage float64
		want       string
	}{
		{80, IDIExcellent},
		{79.999, IDIAboveExpected},
		{60, IDIAboveExpected},
		{40, IDIAsExpected},
		{20, IDIBelowExpected},
		{19.5, IDIWellBelow},
	}
	for _, tc := range cases {
		if got := ClassifyIDI(tc.percentage); got != tc.want {
			t.Fatalf("percentage %v: expected %q, got %q", tc.percentage, tc.want, got)
		}
	}
}

func TestQuarterlyQuestionKeyCount(t *testing.T) {
	if len(QuarterlyQuestionKeys) != 20 {
		t.Fatalf("expected 20 questions, got %d", len(QuarterlyQuestionKeys))
	}
}
