package indicators

import (
	"testing"
	"time"

	"luiza/internal/domain/evaluation"
	"luiza/internal/domain/movement"
	"luiza/internal/domain/org"
)

var testNow = time.Date(2026, time.June, 15, 12, 0, 0, 0, time.UTC)

func testOptions() BuildOptions {
	return BuildOptions{Now: testNow, WindowMonths: 6}
}

func activeEmployees(n int, unit string) []EmployeeRow {
	out := make([]EmployeeRow, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, EmployeeRow{
			ID:            unit + string(rune('a'+i)),
			Unit:          unit,
			Status:        org.StatusActive,
			AdmissionDate: testNow.AddDate(-1, 0, 0),
		})
	}
	return out
}

func TestBuildTurnoverBaseScenario(t *testing.T) {
	ds := Dataset{
		Employees: activeEmployees(10, "Cristalina"),
		Terminations: []TerminationRow{
			{EmployeeID: "x1", Unit: "Cristalina", TerminationDate: testNow.AddDate(0, 0, -1), RescissionType: movement.RescissaoPedidoDemissao},
			{EmployeeID: "x2", Unit: "Cristalina", TerminationDate: testNow.AddDate(0, 0, -2), RescissionType: movement.RescissaoIniciativaEmpresa, DuringProbation: true},
		},
	}

	set := BuildTurnover(ds, testOptions())
	if set.Geral.Value != 20 {
		t.Fatalf("expected turnover 20, got %v", set.Geral.Value)
	}
	if set.Retencao.Value != 80 {
		t.Fatalf("expected retention 80, got %v", set.Retencao.Value)
	}
	if set.Voluntario.Value != 50 {
		t.Fatalf("expected voluntary split 50, got %v", set.Voluntario.Value)
	}
	if set.Involuntario.Value != 50 {
		t.Fatalf("expected involuntary split 50, got %v", set.Involuntario.Value)
	}
	if set.Experiencia.Value != 50 {
		t.Fatalf("expected probation turnover 50, got %v", set.Experiencia.Value)
	}
	if len(set.Geral.Series) != 6 {
		t.Fatalf("expected a 6-point series, got %d", len(set.Geral.Series))
	}
}

func TestBuildTurnoverEmptyPopulation(t *testing.T) {
	set := BuildTurnover(Dataset{}, testOptions())
	if set.Geral.Value != 0 || set.Voluntario.Value != 0 || set.Experiencia.Value != 0 {
		t.Fatalf("expected all-zero turnover for empty dataset: %+v", set)
	}
	if set.Retencao.Value != 100 {
		t.Fatalf("expected retention 100 for empty dataset, got %v", set.Retencao.Value)
	}
	if set.Geral.Trend != TrendNeutral {
		t.Fatalf("expected neutral trend for flat zero series, got %q", set.Geral.Trend)
	}
	if len(set.Geral.Series) != 6 {
		t.Fatalf("empty buckets must still produce points, got %d", len(set.Geral.Series))
	}
	for _, point := range set.Geral.Series {
		if point.Value != 0 {
			t.Fatalf("expected zero point, got %v", point.Value)
		}
	}
}

func TestBuildTurnoverContractExpiryCountsNeither(t *testing.T) {
	ds := Dataset{
		Employees: activeEmployees(10, "Correntina"),
		Terminations: []TerminationRow{
			{EmployeeID: "x1", Unit: "Correntina", TerminationDate: testNow.AddDate(0, 0, -1), RescissionType: movement.RescissaoTerminoContrato},
		},
	}
	set := BuildTurnover(ds, testOptions())
	if set.Geral.Value != 10 {
		t.Fatalf("expected turnover 10, got %v", set.Geral.Value)
	}
	if set.Voluntario.Value != 0 || set.Involuntario.Value != 0 {
		t.Fatalf("contract expiry must not enter either split: %v / %v", set.Voluntario.Value, set.Involuntario.Value)
	}
}

func TestRankUnitsTieBreaksByName(t *testing.T) {
	ds := Dataset{
		Employees: append(activeEmployees(10, "Papanduva"), activeEmployees(10, "Ibicoara")...),
		Terminations: []TerminationRow{
			{EmployeeID: "x1", Unit: "Papanduva", TerminationDate: testNow, RescissionType: movement.RescissaoPedidoDemissao},
			{EmployeeID: "x2", Unit: "Ibicoara", TerminationDate: testNow, RescissionType: movement.RescissaoJustaCausa},
		},
	}
	ranking := RankUnits(ds)
	if len(ranking) != 2 {
		t.Fatalf("expected 2 units, got %d", len(ranking))
	}
	if ranking[0].Unit != "Ibicoara" || ranking[1].Unit != "Papanduva" {
		t.Fatalf("expected name tie-break Ibicoara before Papanduva, got %q, %q", ranking[0].Unit, ranking[1].Unit)
	}
	if ranking[0].Turnover != 10 {
		t.Fatalf("expected unit turnover 10, got %v", ranking[0].Turnover)
	}
	if ranking[0].Involuntary != 100 || ranking[1].Voluntary != 100 {
		t.Fatalf("unexpected splits: %+v", ranking)
	}
}

func TestRankUnitsOrdersByTurnoverDesc(t *testing.T) {
	ds := Dataset{
		Employees: append(activeEmployees(10, "Cristalina"), activeEmployees(5, "Uberlandia")...),
		Terminations: []TerminationRow{
			{EmployeeID: "x1", Unit: "Cristalina", TerminationDate: testNow, RescissionType: movement.RescissaoPedidoDemissao},
			{EmployeeID: "x2", Unit: "Uberlandia", TerminationDate: testNow, RescissionType: movement.RescissaoPedidoDemissao},
		},
	}
	ranking := RankUnits(ds)
	if ranking[0].Unit != "Uberlandia" {
		t.Fatalf("expected Uberlandia (20%%) first, got %q", ranking[0].Unit)
	}
}

func fullExperienceAnswers(score float64) map[string]float64 {
	answers := make(map[string]float64, len(evaluation.ExperienceQuestionKeys))
	for _, key := range evaluation.ExperienceQuestionKeys {
		answers[key] = score
	}
	return answers
}

func fullQuarterlyAnswers(score int) map[string]int {
	answers := make(map[string]int, len(evaluation.QuarterlyQuestionKeys))
	for _, key := range evaluation.QuarterlyQuestionKeys {
		answers[key] = score
	}
	return answers
}

func TestBuildHRMetrics(t *testing.T) {
	ds := Dataset{
		Employees: []EmployeeRow{
			{ID: "e1", Unit: "Cristalina", Status: org.StatusActive, AdmissionDate: testNow.AddDate(0, 0, -3)},
			{ID: "e2", Unit: "Cristalina", Status: org.StatusActive, AdmissionDate: testNow.AddDate(0, -1, 0)},
		},
		Experience: []ExperienceRow{
			{EmployeeID: "e1", Unit: "Cristalina", EvaluationDate: testNow.AddDate(0, 0, -5), FinalScore: 8, Outcome: evaluation.OutcomeRetained, Answers: fullExperienceAnswers(8)},
			{EmployeeID: "e2", Unit: "Cristalina", EvaluationDate: testNow.AddDate(0, 0, -4), FinalScore: 6, Outcome: evaluation.OutcomeTerminated, Answers: fullExperienceAnswers(6)},
		},
		Quarterly: []QuarterlyRow{
			{EmployeeID: "e1", EvaluationDate: testNow.AddDate(0, 0, -3), Quarter: 2, TotalPoints: 80, Answers: fullQuarterlyAnswers(4)},
			{EmployeeID: "e2", EvaluationDate: testNow.AddDate(0, 0, -2), Quarter: 2, TotalPoints: 60, Answers: fullQuarterlyAnswers(3)},
		},
		Movements: []MovementRow{
			{Motivo: movement.MotivoAumentoQuadro, Unit: "Cristalina", Status: movement.StatusApproved, RequisitionDate: testNow.AddDate(0, 0, -3)},
			{Motivo: movement.MotivoSubstituicao, Unit: "Cristalina", Status: movement.StatusApproved, RequisitionDate: testNow.AddDate(0, 0, -2)},
		},
	}

	metrics := BuildHRMetrics(ds, testOptions())

	if metrics.AverageIDI.Value != 70 {
		t.Fatalf("expected average IDI 70, got %v", metrics.AverageIDI.Value)
	}
	if metrics.TaxaEfetivacao.Value != 50 {
		t.Fatalf("expected taxa efetivação 50, got %v", metrics.TaxaEfetivacao.Value)
	}

	// Experience rows contribute their raw sub-mean (8 and 6); quarterly rows
	// contribute the doubled 5-point mean (8 and 6). Mean of all four is 7.
	if metrics.TrainingIndex.Value != 7 {
		t.Fatalf("expected training index 7, got %v", metrics.TrainingIndex.Value)
	}

	// Satisfaction doubles the comprometimento mean: (4*2 + 3*2) / 2 = 7.
	if metrics.FeedbackSatisfaction.Value != 7 {
		t.Fatalf("expected feedback satisfaction 7, got %v", metrics.FeedbackSatisfaction.Value)
	}

	// Two admission requisitions in the latest month report the fixed cost
	// per admission, not the month's total spend.
	if metrics.AdmissionCost.Value != 2500 {
		t.Fatalf("expected admission cost 2500, got %v", metrics.AdmissionCost.Value)
	}

	if len(metrics.IDIByQuarter) != 4 {
		t.Fatalf("expected 4 quarter points, got %d", len(metrics.IDIByQuarter))
	}
	if metrics.IDIByQuarter[1].Label != "Q2" || metrics.IDIByQuarter[1].Value != 70 {
		t.Fatalf("expected Q2 = 70, got %+v", metrics.IDIByQuarter[1])
	}
	if metrics.IDIByQuarter[0].Value != 0 {
		t.Fatalf("expected empty quarter to report 0, got %v", metrics.IDIByQuarter[0].Value)
	}

	if len(metrics.CompetencyDistribution) != len(evaluation.ExperienceCompetencies) {
		t.Fatalf("expected one distribution entry per competency, got %d", len(metrics.CompetencyDistribution))
	}
}

func TestAdmissionCostTrendIsInverted(t *testing.T) {
	// Cost per admission rose in the latest month (0 -> 2500), so the card
	// must point down.
	ds := Dataset{
		Movements: []MovementRow{
			{Motivo: movement.MotivoAumentoQuadro, Unit: "Cristalina", Status: movement.StatusApproved, RequisitionDate: testNow.AddDate(0, 0, -1)},
		},
	}
	metrics := BuildHRMetrics(ds, testOptions())
	if metrics.AdmissionCost.Trend != TrendDown {
		t.Fatalf("expected inverted trend down, got %q", metrics.AdmissionCost.Trend)
	}
}

func TestAdmissionCostCountsOnlyAdmissionMotivos(t *testing.T) {
	// Promotions and employee admission dates do not drive the card; only
	// headcount-increase and replacement requisitions count, and months
	// without them report 0.
	ds := Dataset{
		Employees: []EmployeeRow{
			{ID: "e1", Status: org.StatusActive, AdmissionDate: testNow.AddDate(0, 0, -1)},
		},
		Movements: []MovementRow{
			{Motivo: movement.MotivoPromocao, Unit: "Cristalina", Status: movement.StatusApproved, RequisitionDate: testNow.AddDate(0, 0, -1)},
			{Motivo: movement.MotivoSubstituicao, Unit: "Cristalina", Status: movement.StatusApproved, RequisitionDate: testNow.AddDate(0, -1, 0)},
		},
	}
	metrics := BuildHRMetrics(ds, testOptions())
	if metrics.AdmissionCost.Value != 0 {
		t.Fatalf("expected 0 for a month without admissions, got %v", metrics.AdmissionCost.Value)
	}
	series := metrics.AdmissionCost.Series
	if len(series) != 6 {
		t.Fatalf("expected a 6-point series, got %d", len(series))
	}
	if series[4].Value != 2500 {
		t.Fatalf("expected 2500 for the replacement month, got %v", series[4].Value)
	}
}

func TestBuildHRIndicators(t *testing.T) {
	closed := testNow.AddDate(0, 0, -10)
	ds := Dataset{
		Movements: []MovementRow{
			{Motivo: movement.MotivoAumentoQuadro, Unit: "Cristalina", Status: movement.StatusApproved, RequisitionDate: testNow.AddDate(0, 0, -30), ClosingDate: &closed},
			{Motivo: movement.MotivoPromocao, Unit: "Cristalina", Status: movement.StatusApproved, RequisitionDate: testNow.AddDate(0, 0, -20)},
		},
		Terminations: []TerminationRow{
			{EmployeeID: "e9", Unit: "Cristalina", AdmissionDate: testNow.AddDate(-1, 0, 0), TerminationDate: testNow, RescissionType: movement.RescissaoPedidoDemissao},
		},
		Experience: []ExperienceRow{
			{EmployeeID: "e1", Unit: "Cristalina", EvaluationDate: testNow, FinalScore: 8.5, Outcome: evaluation.OutcomeRetained, Answers: fullExperienceAnswers(8.5)},
		},
	}

	indicators := BuildHRIndicators(ds, testOptions())

	if indicators.AverageTimeToFillDays.Value != 20 {
		t.Fatalf("expected 20 days to fill, got %v", indicators.AverageTimeToFillDays.Value)
	}
	if indicators.PromotionRate.Value != 50 {
		t.Fatalf("expected promotion rate 50, got %v", indicators.PromotionRate.Value)
	}
	if indicators.MotivoHistogram[movement.MotivoPromocao] != 1 {
		t.Fatalf("expected one promotion in histogram, got %d", indicators.MotivoHistogram[movement.MotivoPromocao])
	}
	// Twelve months of tenure, within rounding of the day-based conversion.
	if indicators.AverageTenureMonths.Value < 11.5 || indicators.AverageTenureMonths.Value > 12.5 {
		t.Fatalf("expected roughly 12 months tenure, got %v", indicators.AverageTenureMonths.Value)
	}
	if indicators.PerUnitPerformance["Cristalina"] != 8.5 {
		t.Fatalf("expected unit performance 8.5, got %v", indicators.PerUnitPerformance["Cristalina"])
	}
}

func TestBuildHRIndicatorsEmpty(t *testing.T) {
	indicators := BuildHRIndicators(Dataset{}, testOptions())
	if indicators.AverageTimeToFillDays.Value != 0 || indicators.PromotionRate.Value != 0 {
		t.Fatalf("expected zero indicators for empty dataset: %+v", indicators)
	}
	if len(indicators.MotivoHistogram) != 0 {
		t.Fatalf("expected empty histogram, got %v", indicators.MotivoHistogram)
	}
}
