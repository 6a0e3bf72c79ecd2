package movement

import "time"

// Movement is a unified requisition record: hirings, transfers, promotions
// and terminations all share the envelope and differ by motivo plus an
// optional sub-block.
type Movement struct {
	ID              string              `json:"id"`
	Motivo          string              `json:"motivo"`
	Unit            string              `json:"unit"`
	Sector          string              `json:"sector,omitempty"`
	PositionTitle   string              `json:"positionTitle,omitempty"`
	RequesterID     string              `json:"requesterId"`
	EmployeeID      string              `json:"employeeId,omitempty"`
	Status          string              `json:"status"`
	RequisitionDate time.Time           `json:"requisitionDate"`
	ClosingDate     *time.Time          `json:"closingDate,omitempty"`
	Termination     *TerminationDetails `json:"termination,omitempty"`
	Promotion       *PromotionDetails   `json:"promotion,omitempty"`
	Notes           string              `json:"notes,omitempty"`
	CreatedAt       time.Time           `json:"createdAt"`
	UpdatedAt       time.Time           `json:"updatedAt"`
}

type TerminationDetails struct {
	RescissionType  string    `json:"rescissionType"`
	TerminationDate time.Time `json:"terminationDate"`
	NoticeWorked    bool      `json:"noticeWorked"`
	RehireEligible  bool      `json:"rehireEligible"`
	DuringProbation bool      `json:"duringProbation"`
}

type PromotionDetails struct {
	CurrentSalary  float64 `json:"currentSalary"`
	CurrentBonus   float64 `json:"currentBonus"`
	ProposedSalary float64 `json:"proposedSalary"`
	ProposedBonus  float64 `json:"proposedBonus"`
	// Derived; recomputed on every write.
	Compensation CompensationSummary `json:"compensation"`
}
