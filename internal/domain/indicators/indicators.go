package indicators

import (
	"fmt"
	"sort"
	"time"

	"luiza/internal/domain/evaluation"
	"luiza/internal/domain/movement"
	"luiza/internal/domain/org"
)

// BuildOptions parameterizes one aggregation pass. Zero values fall back to
// the defaults the dashboards use.
type BuildOptions struct {
	Now          time.Time
	WindowMonths int
	CostPerHire  float64
	Trend        TrendFunc
}

const (
	defaultWindowMonths = 6
	defaultCostPerHire  = 2500
)

func (o BuildOptions) normalized() BuildOptions {
	if o.Now.IsZero() {
		o.Now = time.Now().UTC()
	}
	if o.WindowMonths <= 0 {
		o.WindowMonths = defaultWindowMonths
	}
	if o.CostPerHire <= 0 {
		o.CostPerHire = defaultCostPerHire
	}
	if o.Trend == nil {
		o.Trend = Trend
	}
	return o
}

func (o BuildOptions) indicator(value float64, series []Point) Indicator {
	return Indicator{Value: value, Trend: o.Trend(series), Series: series}
}

// BuildTurnover computes the turnover block: overall, retention, the
// voluntary/involuntary splits and probation-period turnover, each with a
// monthly series. An empty population yields all-zero indicators.
func BuildTurnover(ds Dataset, opts BuildOptions) TurnoverSet {
	opts = opts.normalized()
	buckets := MonthBuckets(opts.Now, opts.WindowMonths)

	headcount := activeHeadcount(ds.Employees)
	total := len(ds.Terminations)

	var voluntary, involuntary, probation int
	for _, term := range ds.Terminations {
		if isVoluntary(term.RescissionType) {
			voluntary++
		}
		if isInvoluntary(term.RescissionType) {
			involuntary++
		}
		if term.DuringProbation {
			probation++
		}
	}

	geral := Rate(float64(total), float64(headcount))

	geralSeries := SeriesOver(buckets, func(b MonthBucket) float64 {
		return Rate(float64(countTerminations(ds.Terminations, b, nil)), float64(headcount))
	})
	retencaoSeries := make([]Point, len(geralSeries))
	for i, point := range geralSeries {
		retencaoSeries[i] = Point{Label: point.Label, Value: Round1(100 - point.Value)}
	}

	return TurnoverSet{
		Geral:    opts.indicator(geral, geralSeries),
		Retencao: opts.indicator(Round1(100-geral), retencaoSeries),
		Voluntario: opts.indicator(Rate(float64(voluntary), float64(total)), SeriesOver(buckets, func(b MonthBucket) float64 {
			matched := countTerminations(ds.Terminations, b, func(t TerminationRow) bool { return isVoluntary(t.RescissionType) })
			return Rate(float64(matched), float64(countTerminations(ds.Terminations, b, nil)))
		})),
		Involuntario: opts.indicator(Rate(float64(involuntary), float64(total)), SeriesOver(buckets, func(b MonthBucket) float64 {
			matched := countTerminations(ds.Terminations, b, func(t TerminationRow) bool { return isInvoluntary(t.RescissionType) })
			return Rate(float64(matched), float64(countTerminations(ds.Terminations, b, nil)))
		})),
		Experiencia: opts.indicator(Rate(float64(probation), float64(total)), SeriesOver(buckets, func(b MonthBucket) float64 {
			matched := countTerminations(ds.Terminations, b, func(t TerminationRow) bool { return t.DuringProbation })
			return Rate(float64(matched), float64(countTerminations(ds.Terminations, b, nil)))
		})),
	}
}

// RankUnits orders units by descending turnover; ties break by unit name so
// the ranking is stable across loads.
func RankUnits(ds Dataset) []UnitTurnover {
	type unitAccumulator struct {
		headcount    int
		terminations int
		voluntary    int
		involuntary  int
	}

	accumulators := make(map[string]*unitAccumulator, len(org.CompanyUnits))
	ensure := func(unit string) *unitAccumulator {
		if unit == "" {
			return nil
		}
		acc, ok := accumulators[unit]
		if !ok {
			acc = &unitAccumulator{}
			accumulators[unit] = acc
		}
		return acc
	}

	for _, emp := range ds.Employees {
		if acc := ensure(emp.Unit); acc != nil && emp.Status != org.StatusTerminated {
			acc.headcount++
		}
	}
	for _, term := range ds.Terminations {
		acc := ensure(term.Unit)
		if acc == nil {
			continue
		}
		acc.terminations++
		if isVoluntary(term.RescissionType) {
			acc.voluntary++
		}
		if isInvoluntary(term.RescissionType) {
			acc.involuntary++
		}
	}

	ranking := make([]UnitTurnover, 0, len(accumulators))
	for unit, acc := range accumulators {
		ranking = append(ranking, UnitTurnover{
			Unit:         unit,
			Turnover:     Rate(float64(acc.terminations), float64(acc.headcount)),
			Voluntary:    Rate(float64(acc.voluntary), float64(acc.terminations)),
			Involuntary:  Rate(float64(acc.involuntary), float64(acc.terminations)),
			Terminations: acc.terminations,
			Headcount:    acc.headcount,
		})
	}
	sort.Slice(ranking, func(i, j int) bool {
		if ranking[i].Turnover == ranking[j].Turnover {
			return ranking[i].Unit < ranking[j].Unit
		}
		return ranking[i].Turnover > ranking[j].Turnover
	})
	return ranking
}

// Training-index sources: three technical-growth questions from the probation
// form (10-point scale, weight 1) and two technical questions from the
// quarterly form (5-point scale, doubled onto the same 10-point scale).
var trainingExperienceKeys = []string{"conhecimento_q5", "iniciativa_q12", "desenvolvimento_q22"}
var trainingQuarterlyKeys = []string{"conhecimento_2b", "conhecimento_2c"}

var satisfactionKeys = []string{"comprometimento_4a", "comprometimento_4b", "comprometimento_4c"}

// BuildHRMetrics computes the evaluation-driven cards.
func BuildHRMetrics(ds Dataset, opts BuildOptions) HRMetrics {
	opts = opts.normalized()
	buckets := MonthBuckets(opts.Now, opts.WindowMonths)

	idiSeries := SeriesOver(buckets, func(b MonthBucket) float64 {
		return meanQuarterlyPoints(ds.Quarterly, &b)
	})

	trainingSeries := SeriesOver(buckets, func(b MonthBucket) float64 {
		return trainingIndex(ds, &b)
	})

	satisfactionSeries := SeriesOver(buckets, func(b MonthBucket) float64 {
		return feedbackSatisfaction(ds.Quarterly, &b)
	})

	var retained int
	for _, exp := range ds.Experience {
		if exp.Outcome == evaluation.OutcomeRetained {
			retained++
		}
	}
	taxaSeries := SeriesOver(buckets, func(b MonthBucket) float64 {
		var total, kept int
		for _, exp := range ds.Experience {
			if !b.Contains(exp.EvaluationDate) {
				continue
			}
			total++
			if exp.Outcome == evaluation.OutcomeRetained {
				kept++
			}
		}
		return Rate(float64(kept), float64(total))
	})

	// Cost per admission over the admission-driven requisitions. Months
	// without admissions report 0, and the headline is the latest month.
	costSeries := SeriesOver(buckets, func(b MonthBucket) float64 {
		var admissions int
		for _, mv := range ds.Movements {
			if mv.Motivo != movement.MotivoAumentoQuadro && mv.Motivo != movement.MotivoSubstituicao {
				continue
			}
			if b.Contains(mv.RequisitionDate) {
				admissions++
			}
		}
		return Rate(float64(admissions)*opts.CostPerHire, float64(admissions))
	})
	var latestCost float64
	if len(costSeries) > 0 {
		latestCost = costSeries[len(costSeries)-1].Value
	}
	// Rising cost per admission is the unfavorable direction.
	costOpts := opts
	costOpts.Trend = InvertTrend(opts.Trend)

	return HRMetrics{
		AverageIDI:             opts.indicator(meanQuarterlyPoints(ds.Quarterly, nil), idiSeries),
		TrainingIndex:          opts.indicator(trainingIndex(ds, nil), trainingSeries),
		FeedbackSatisfaction:   opts.indicator(feedbackSatisfaction(ds.Quarterly, nil), satisfactionSeries),
		TaxaEfetivacao:         opts.indicator(Rate(float64(retained), float64(len(ds.Experience))), taxaSeries),
		AdmissionCost:          costOpts.indicator(latestCost, costSeries),
		CompetencyDistribution: competencyDistribution(ds.Experience),
		IDIByQuarter:           idiByQuarter(ds.Quarterly),
	}
}

// BuildHRIndicators computes the requisition-flow cards.
func BuildHRIndicators(ds Dataset, opts BuildOptions) HRIndicators {
	opts = opts.normalized()
	buckets := MonthBuckets(opts.Now, opts.WindowMonths)

	fillSeries := SeriesOver(buckets, func(b MonthBucket) float64 {
		return averageTimeToFill(ds.Movements, &b)
	})
	tenureSeries := SeriesOver(buckets, func(b MonthBucket) float64 {
		return averageTenureMonths(ds.Terminations, &b)
	})

	var promotions int
	histogram := make(map[string]int, len(movement.Motivos))
	for _, mv := range ds.Movements {
		histogram[mv.Motivo]++
		if mv.Motivo == movement.MotivoPromocao {
			promotions++
		}
	}
	promotionSeries := SeriesOver(buckets, func(b MonthBucket) float64 {
		var total, promoted int
		for _, mv := range ds.Movements {
			if !b.Contains(mv.RequisitionDate) {
				continue
			}
			total++
			if mv.Motivo == movement.MotivoPromocao {
				promoted++
			}
		}
		return Rate(float64(promoted), float64(total))
	})

	performance := make(map[string]float64)
	counts := make(map[string]int)
	for _, exp := range ds.Experience {
		if exp.Unit == "" {
			continue
		}
		performance[exp.Unit] += exp.FinalScore
		counts[exp.Unit]++
	}
	for unit, sum := range performance {
		performance[unit] = Round1(sum / float64(counts[unit]))
	}

	return HRIndicators{
		AverageTimeToFillDays: opts.indicator(averageTimeToFill(ds.Movements, nil), fillSeries),
		AverageTenureMonths:   opts.indicator(averageTenureMonths(ds.Terminations, nil), tenureSeries),
		PromotionRate:         opts.indicator(Rate(float64(promotions), float64(len(ds.Movements))), promotionSeries),
		MotivoHistogram:       histogram,
		PerUnitPerformance:    performance,
	}
}

func activeHeadcount(employees []EmployeeRow) int {
	var count int
	for _, emp := range employees {
		if emp.Status != org.StatusTerminated {
			count++
		}
	}
	return count
}

func isVoluntary(rescissionType string) bool {
	return rescissionType == movement.RescissaoPedidoDemissao
}

func isInvoluntary(rescissionType string) bool {
	return rescissionType == movement.RescissaoIniciativaEmpresa || rescissionType == movement.RescissaoJustaCausa
}

func countTerminations(terminations []TerminationRow, bucket MonthBucket, match func(TerminationRow) bool) int {
	var count int
	for _, term := range terminations {
		if !bucket.Contains(term.TerminationDate) {
			continue
		}
		if match == nil || match(term) {
			count++
		}
	}
	return count
}

func meanQuarterlyPoints(rows []QuarterlyRow, bucket *MonthBucket) float64 {
	var sum float64
	var count int
	for _, row := range rows {
		if bucket != nil && !bucket.Contains(row.EvaluationDate) {
			continue
		}
		sum += float64(row.TotalPoints)
		count++
	}
	if count == 0 {
		return 0
	}
	return Round1(sum / float64(count))
}

func trainingIndex(ds Dataset, bucket *MonthBucket) float64 {
	var sum float64
	var count int
	for _, exp := range ds.Experience {
		if bucket != nil && !bucket.Contains(exp.EvaluationDate) {
			continue
		}
		contribution, ok := meanOfFloatKeys(exp.Answers, trainingExperienceKeys)
		if !ok {
			continue
		}
		sum += contribution
		count++
	}
	for _, q := range ds.Quarterly {
		if bucket != nil && !bucket.Contains(q.EvaluationDate) {
			continue
		}
		contribution, ok := meanOfIntKeys(q.Answers, trainingQuarterlyKeys)
		if !ok {
			continue
		}
		sum += contribution * 2
		count++
	}
	if count == 0 {
		return 0
	}
	return Round1(sum / float64(count))
}

func feedbackSatisfaction(rows []QuarterlyRow, bucket *MonthBucket) float64 {
	var sum float64
	var count int
	for _, row := range rows {
		if bucket != nil && !bucket.Contains(row.EvaluationDate) {
			continue
		}
		contribution, ok := meanOfIntKeys(row.Answers, satisfactionKeys)
		if !ok {
			continue
		}
		sum += contribution * 2
		count++
	}
	if count == 0 {
		return 0
	}
	return Round1(sum / float64(count))
}

func competencyDistribution(rows []ExperienceRow) map[string]float64 {
	sums := make(map[string]float64)
	counts := make(map[string]int)
	for _, row := range rows {
		for title, average := range evaluation.CompetencyAverages(row.Answers) {
			sums[title] += average
			counts[title]++
		}
	}
	distribution := make(map[string]float64, len(sums))
	for title, sum := range sums {
		distribution[title] = Round1(sum / float64(counts[title]))
	}
	return distribution
}

func idiByQuarter(rows []QuarterlyRow) []Point {
	sums := [4]float64{}
	counts := [4]int{}
	for _, row := range rows {
		if row.Quarter < 1 || row.Quarter > 4 {
			continue
		}
		sums[row.Quarter-1] += float64(row.TotalPoints)
		counts[row.Quarter-1]++
	}
	series := make([]Point, 0, 4)
	for i := 0; i < 4; i++ {
		var value float64
		if counts[i] > 0 {
			value = Round1(sums[i] / float64(counts[i]))
		}
		series = append(series, Point{Label: fmt.Sprintf("Q%d", i+1), Value: value})
	}
	return series
}

func averageTimeToFill(movements []MovementRow, bucket *MonthBucket) float64 {
	var totalDays float64
	var count int
	for _, mv := range movements {
		if mv.ClosingDate == nil {
			continue
		}
		if bucket != nil && !bucket.Contains(mv.RequisitionDate) {
			continue
		}
		totalDays += mv.ClosingDate.Sub(mv.RequisitionDate).Hours() / 24
		count++
	}
	if count == 0 {
		return 0
	}
	return Round1(totalDays / float64(count))
}

func averageTenureMonths(terminations []TerminationRow, bucket *MonthBucket) float64 {
	const daysPerMonth = 30.44
	var totalMonths float64
	var count int
	for _, term := range terminations {
		if term.AdmissionDate.IsZero() {
			continue
		}
		if bucket != nil && !bucket.Contains(term.TerminationDate) {
			continue
		}
		totalMonths += term.TerminationDate.Sub(term.AdmissionDate).Hours() / 24 / daysPerMonth
		count++
	}
	if count == 0 {
		return 0
	}
	return Round1(totalMonths / float64(count))
}

func meanOfFloatKeys(answers map[string]float64, keys []string) (float64, bool) {
	var sum float64
	for _, key := range keys {
		value, ok := answers[key]
		if !ok {
			return 0, false
		}
		sum += value
	}
	return sum / float64(len(keys)), true
}

func meanOfIntKeys(answers map[string]int, keys []string) (float64, bool) {
	var sum float64
	for _, key := range keys {
		value, ok := answers[key]
		if !ok {
			return 0, false
		}
		sum += float64(value)
	}
	return sum / float64(len(keys)), true
}
