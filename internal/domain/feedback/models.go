package feedback

import "time"

// Feedback is the written record of a one-on-one conversation: the agenda
// discussed, how the employee positioned themselves, and the agreed follow-up.
type Feedback struct {
	ID                  string    `json:"id"`
	EmployeeID          string    `json:"employeeId"`
	RecorderID          string    `json:"recorderId"`
	FeedbackDate        time.Time `json:"feedbackDate"`
	Pauta               string    `json:"pauta"`
	EmployeePositioning string    `json:"employeePositioning"`
	Observations        string    `json:"observations,omitempty"`
	ActionPlan          string    `json:"actionPlan,omitempty"`
	CreatedAt           time.Time `json:"createdAt"`
}
