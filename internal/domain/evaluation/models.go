package evaluation

import "time"

type ExperienceEvaluation struct {
	ID              string             `json:"id"`
	EmployeeID      string             `json:"employeeId"`
	EvaluatorID     string             `json:"evaluatorId"`
	Period          string             `json:"period"`
	EvaluationDate  time.Time          `json:"evaluationDate"`
	Answers         map[string]float64 `json:"answers"`
	FinalScore      float64            `json:"finalScore"`
	Classification  string             `json:"classification"`
	Outcome         string             `json:"outcome,omitempty"`
	EmployeeNotes   string             `json:"employeeNotes,omitempty"`
	SupervisorNotes string             `json:"supervisorNotes,omitempty"`
	Observations    string             `json:"observations,omitempty"`
	CreatedAt       time.Time          `json:"createdAt"`
}

type QuarterlyEvaluation struct {
	ID              string         `json:"id"`
	EmployeeID      string         `json:"employeeId"`
	EvaluatorID     string         `json:"evaluatorId"`
	Quarter         int            `json:"quarter"`
	EvaluationDate  time.Time      `json:"evaluationDate"`
	Answers         map[string]int `json:"answers"`
	TotalPoints     int            `json:"totalPoints"`
	PercentageIndex float64        `json:"percentageIndex"`
	Classification  string         `json:"classification"`
	Observations    string         `json:"observations,omitempty"`
	EmployeeAgreed  bool           `json:"employeeAgreed"`
	CreatedAt       time.Time      `json:"createdAt"`
}

type SupervisorEvaluation struct {
	ID              string             `json:"id"`
	EmployeeID      string             `json:"employeeId"`
	SupervisorID    string             `json:"supervisorId"`
	Unit            string             `json:"unit"`
	ReviewPeriod    string             `json:"reviewPeriod"`
	EvaluationDate  time.Time          `json:"evaluationDate"`
	RubricVersion   string             `json:"rubricVersion"`
	Answers         map[string]float64 `json:"answers"`
	TotalPoints     float64            `json:"totalPoints"`
	PercentualFinal float64            `json:"percentualFinal"`
	Classification  string             `json:"classification"`
	CreatedAt       time.Time          `json:"createdAt"`
}
