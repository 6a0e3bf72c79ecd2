package indicators

import "time"

// Input rows are flat projections of the fetched records. They carry only
// what the formulas read, so the builders stay pure and trivially testable.

type EmployeeRow struct {
	ID            string
	Unit          string
	Sector        string
	Status        string
	AdmissionDate time.Time
}

type TerminationRow struct {
	EmployeeID      string
	Unit            string
	AdmissionDate   time.Time
	TerminationDate time.Time
	RescissionType  string
	DuringProbation bool
}

type ExperienceRow struct {
	EmployeeID     string
	Unit           string
	EvaluationDate time.Time
	FinalScore     float64
	Outcome        string
	Answers        map[string]float64
}

type QuarterlyRow struct {
	EmployeeID     string
	Unit           string
	EvaluationDate time.Time
	Quarter        int
	TotalPoints    int
	Answers        map[string]int
}

type MovementRow struct {
	Motivo          string
	Unit            string
	Status          string
	RequisitionDate time.Time
	ClosingDate     *time.Time
}

// Dataset is everything one dashboard load aggregates over. Each load builds
// its own instance; nothing here is shared between loads.
type Dataset struct {
	Employees    []EmployeeRow
	Terminations []TerminationRow
	Experience   []ExperienceRow
	Quarterly    []QuarterlyRow
	Movements    []MovementRow
}

type Filter struct {
	Unit   string
	Sector string
	From   time.Time
	To     time.Time
}

type Point struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

type Indicator struct {
	Value  float64 `json:"value"`
	Trend  string  `json:"trend"`
	Series []Point `json:"series"`
}

// TurnoverSet is the turnover dashboard block.
type TurnoverSet struct {
	Geral        Indicator `json:"geral"`
	Retencao     Indicator `json:"retencao"`
	Voluntario   Indicator `json:"voluntario"`
	Involuntario Indicator `json:"involuntario"`
	Experiencia  Indicator `json:"experiencia"`
}

type UnitTurnover struct {
	Unit         string  `json:"unit"`
	Turnover     float64 `json:"turnover"`
	Voluntary    float64 `json:"voluntary"`
	Involuntary  float64 `json:"involuntary"`
	Terminations int     `json:"terminations"`
	Headcount    int     `json:"headcount"`
}

// HRMetrics covers the people-analytics cards fed by evaluations.
type HRMetrics struct {
	AverageIDI             Indicator          `json:"averageIdi"`
	TrainingIndex          Indicator          `json:"trainingIndex"`
	FeedbackSatisfaction   Indicator          `json:"feedbackSatisfaction"`
	TaxaEfetivacao         Indicator          `json:"taxaEfetivacao"`
	AdmissionCost          Indicator          `json:"admissionCost"`
	CompetencyDistribution map[string]float64 `json:"competencyDistribution"`
	IDIByQuarter           []Point            `json:"idiByQuarter"`
}

// HRIndicators covers the requisition-flow cards fed by movements.
type HRIndicators struct {
	AverageTimeToFillDays Indicator          `json:"averageTimeToFillDays"`
	AverageTenureMonths   Indicator          `json:"averageTenureMonths"`
	PromotionRate         Indicator          `json:"promotionRate"`
	MotivoHistogram       map[string]int     `json:"motivoHistogram"`
	PerUnitPerformance    map[string]float64 `json:"perUnitPerformance"`
}
