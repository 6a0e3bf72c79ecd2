package evaluation

import (
	"errors"
	"testing"
)

func fullExperienceAnswers(score float64) map[string]float64 {
	answers := make(map[string]float64, len(ExperienceQuestionKeys))
	for _, key := range ExperienceQuestionKeys {
		answers[key] = score
	}
	return answers
}

func TestScoreExperienceUniformAnswers(t *testing.T) {
	result, err := ScoreExperience(fullExperienceAnswers(8.0))
	if err != nil {
		t.Fatalf("score experience: %v", err)
	}
	if result.FinalScore != 8.0 {
		t.Fatalf("expected final score 8.0, got %v", result.FinalScore)
	}
	if result.Classification != ClassSatisfactory {
		t.Fatalf("expected %q, got %q", ClassSatisfactory, result.Classification)
	}
}

func TestScoreExperienceMeanRounding(t *testing.T) {
	answers := fullExperienceAnswers(7.0)
	answers["adaptacao_q1"] = 7.5
	// 23*7.0 + 7.5 = 168.5; /24 = 7.020833... -> 7.02
	result, err := ScoreExperience(answers)
	if err != nil {
		t.Fatalf("score experience: %v", err)
	}
	if result.FinalScore != 7.02 {
		t.Fatalf("expected 7.02, got %v", result.FinalScore)
	}
}

func TestScoreExperienceRequiresAllQuestions(t *testing.T) {
	answers := fullExperienceAnswers(8.0)
	delete(answers, "disciplina_q15")
	delete(answers, "desenvolvimento_q24")

	_, err := ScoreExperience(answers)
	var missing *MissingAnswersError
	if !errors.As(err, &missing) {
		t.Fatalf("expected MissingAnswersError, got %v", err)
	}
	if len(missing.Missing) != 2 {
		t.Fatalf("expected 2 missing keys, got %v", missing.Missing)
	}
}

func TestScoreExperienceRejectsOutOfRange(t *testing.T) {
	answers := fullExperienceAnswers(8.0)
	answers["iniciativa_q11"] = 3.5

	_, err := ScoreExperience(answers)
	var oor *OutOfRangeError
	if !errors.As(err, &oor) {
		t.Fatalf("expected OutOfRangeError, got %v", err)
	}
	if oor.Key != "iniciativa_q11" {
		t.Fatalf("unexpected key %q", oor.Key)
	}

	answers["iniciativa_q11"] = 10.5
	if _, err := ScoreExperience(answers); err == nil {
		t.Fatal("expected score above 10 to be rejected")
	}
}

func TestScoreExperienceIsDeterministic(t *testing.T) {
	answers := fullExperienceAnswers(9.5)
	first, err := ScoreExperience(answers)
	if err != nil {
		t.Fatalf("score experience: %v", err)
	}
	second, err := ScoreExperience(answers)
	if err != nil {
		t.Fatalf("score experience: %v", err)
	}
	if first != second {
		t.Fatalf("expected identical results, got %+v vs %+v", first, second)
	}
}

func TestClassifyExperienceBoundaries(t *testing.T) {
	cases := []struct {
		score float64
		want  string
	}{
		{9.0, ClassAboveExpectations},
		{8.99, ClassSatisfactory},
		{8.0, ClassSatisfactory},
		{7.0, ClassDevelopment},
		{6.99, ClassBelowCompetencies},
		{4.0, ClassBelowCompetencies},
	}
	for _, tc := range cases {
		if got := ClassifyExperience(tc.score); got != tc.want {
			t.Fatalf("score %v: expected %q, got %q", tc.score, tc.want, got)
		}
	}
}

func TestCompetencyAverages(t *testing.T) {
	answers := fullExperienceAnswers(8.0)
	answers["adaptacao_q1"] = 10.0
	averages := CompetencyAverages(answers)
	if len(averages) != 6 {
		t.Fatalf("expected 6 competencies, got %d", len(averages))
	}
	adaptacao := averages["Adaptação / Sociabilidade e Trabalho em Equipe"]
	want := (10.0 + 8.0 + 8.0) / 3
	if adaptacao != want {
		t.Fatalf("expected %v, got %v", want, adaptacao)
	}
}

func TestExperienceQuestionKeyCount(t *testing.T) {
	if len(ExperienceQuestionKeys) != 24 {
		t.Fatalf("expected 24 questions, got %d", len(ExperienceQuestionKeys))
	}
}
