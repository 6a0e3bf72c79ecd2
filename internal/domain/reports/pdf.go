package reports

import (
	"fmt"
	"io"
	"sort"

	"github.com/jung-kurt/gofpdf"

	"luiza/internal/domain/evaluation"
	"luiza/internal/domain/indicators"
)

// PDF bodies carry Portuguese product labels, so every report runs through
// the cp1252 translator gofpdf needs for accented text.

func newReportPDF(title string) (*gofpdf.Fpdf, func(string) string) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, tr(title))
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 11)
	return pdf, tr
}

// WriteExperienceEvaluationPDF renders one probation review: header,
// per-competency averages and the outcome block.
func WriteExperienceEvaluationPDF(w io.Writer, employeeName string, eval evaluation.ExperienceEvaluation) error {
	pdf, tr := newReportPDF("Avaliação de Período de Experiência")

	pdf.Cell(0, 7, tr(fmt.Sprintf("Colaborador: %s", employeeName)))
	pdf.Ln(6)
	pdf.Cell(0, 7, tr(fmt.Sprintf("Período: %s", eval.Period)))
	pdf.Ln(6)
	pdf.Cell(0, 7, tr(fmt.Sprintf("Data da avaliação: %s", eval.EvaluationDate.Format("02/01/2006"))))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, tr("Médias por competência"))
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)

	averages := evaluation.CompetencyAverages(eval.Answers)
	for _, competency := range evaluation.ExperienceCompetencies {
		average, ok := averages[competency.Title]
		if !ok {
			continue
		}
		pdf.Cell(150, 7, tr(competency.Title))
		pdf.CellFormat(30, 7, fmt.Sprintf("%.2f", average), "", 0, "R", false, 0, "")
		pdf.Ln(6)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(60, 8, tr("Nota final"))
	pdf.CellFormat(30, 8, fmt.Sprintf("%.2f", eval.FinalScore), "", 0, "R", false, 0, "")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 7, tr(fmt.Sprintf("Classificação: %s", eval.Classification)))
	if eval.Outcome != "" {
		pdf.Ln(6)
		pdf.Cell(0, 7, tr(fmt.Sprintf("Resultado: %s", eval.Outcome)))
	}
	if eval.Observations != "" {
		pdf.Ln(10)
		pdf.MultiCell(0, 6, tr(fmt.Sprintf("Observações: %s", eval.Observations)), "", "L", false)
	}

	return pdf.Output(w)
}

// WriteTurnoverSummaryPDF renders the turnover dashboard: headline numbers,
// the monthly series and the per-unit ranking.
func WriteTurnoverSummaryPDF(w io.Writer, set indicators.TurnoverSet, ranking []indicators.UnitTurnover) error {
	pdf, tr := newReportPDF("Resumo de Turnover e Retenção")

	headline := []struct {
		label string
		value float64
	}{
		{"Turnover geral", set.Geral.Value},
		{"Retenção", set.Retencao.Value},
		{"Turnover voluntário", set.Voluntario.Value},
		{"Turnover involuntário", set.Involuntario.Value},
		{"Turnover no período de experiência", set.Experiencia.Value},
	}
	for _, item := range headline {
		pdf.Cell(120, 7, tr(item.label))
		pdf.CellFormat(30, 7, fmt.Sprintf("%.1f%%", item.value), "", 0, "R", false, 0, "")
		pdf.Ln(6)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, tr("Evolução mensal (turnover geral)"))
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	for _, point := range set.Geral.Series {
		pdf.Cell(40, 6, tr(point.Label))
		pdf.CellFormat(30, 6, fmt.Sprintf("%.1f%%", point.Value), "", 0, "R", false, 0, "")
		pdf.Ln(5)
	}

	if len(ranking) > 0 {
		pdf.Ln(6)
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Cell(0, 8, tr("Ranking por unidade"))
		pdf.Ln(8)
		pdf.SetFont("Helvetica", "B", 10)
		pdf.Cell(60, 6, tr("Unidade"))
		pdf.CellFormat(30, 6, "Turnover", "", 0, "R", false, 0, "")
		pdf.CellFormat(30, 6, tr("Voluntário"), "", 0, "R", false, 0, "")
		pdf.CellFormat(30, 6, tr("Involuntário"), "", 0, "R", false, 0, "")
		pdf.Ln(6)
		pdf.SetFont("Helvetica", "", 10)
		for _, unit := range ranking {
			pdf.Cell(60, 6, tr(unit.Unit))
			pdf.CellFormat(30, 6, fmt.Sprintf("%.1f%%", unit.Turnover), "", 0, "R", false, 0, "")
			pdf.CellFormat(30, 6, fmt.Sprintf("%.1f%%", unit.Voluntary), "", 0, "R", false, 0, "")
			pdf.CellFormat(30, 6, fmt.Sprintf("%.1f%%", unit.Involuntary), "", 0, "R", false, 0, "")
			pdf.Ln(5)
		}
	}

	return pdf.Output(w)
}

// WriteHRMetricsPDF renders the people-analytics cards, including the
// competency distribution in a stable order.
func WriteHRMetricsPDF(w io.Writer, metrics indicators.HRMetrics) error {
	pdf, tr := newReportPDF("Métricas de RH")

	cards := []struct {
		label string
		value string
	}{
		{"IDI médio", fmt.Sprintf("%.1f", metrics.AverageIDI.Value)},
		{"Índice de treinamento", fmt.Sprintf("%.1f", metrics.TrainingIndex.Value)},
		{"Satisfação (feedback)", fmt.Sprintf("%.1f", metrics.FeedbackSatisfaction.Value)},
		{"Taxa de efetivação", fmt.Sprintf("%.1f%%", metrics.TaxaEfetivacao.Value)},
		{"Custo de admissão", fmt.Sprintf("R$ %.2f", metrics.AdmissionCost.Value)},
	}
	for _, card := range cards {
		pdf.Cell(120, 7, tr(card.label))
		pdf.CellFormat(40, 7, tr(card.value), "", 0, "R", false, 0, "")
		pdf.Ln(6)
	}

	if len(metrics.CompetencyDistribution) > 0 {
		pdf.Ln(6)
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Cell(0, 8, tr("Distribuição por competência"))
		pdf.Ln(8)
		pdf.SetFont("Helvetica", "", 11)

		titles := make([]string, 0, len(metrics.CompetencyDistribution))
		for title := range metrics.CompetencyDistribution {
			titles = append(titles, title)
		}
		sort.Strings(titles)
		for _, title := range titles {
			pdf.Cell(150, 6, tr(title))
			pdf.CellFormat(30, 6, fmt.Sprintf("%.1f", metrics.CompetencyDistribution[title]), "", 0, "R", false, 0, "")
			pdf.Ln(5)
		}
	}

	return pdf.Output(w)
}
