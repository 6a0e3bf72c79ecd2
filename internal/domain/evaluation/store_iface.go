package evaluation

import "context"

type StoreAPI interface {
	CreateExperience(ctx context.Context, eval ExperienceEvaluation) (string, error)
	ListExperience(ctx context.Context, employeeID string) ([]ExperienceEvaluation, error)
	CreateQuarterly(ctx context.Context, eval QuarterlyEvaluation) (string, error)
	ListQuarterly(ctx context.Context, employeeID string) ([]QuarterlyEvaluation, error)
	CreateSupervisor(ctx context.Context, eval SupervisorEvaluation) (string, error)
	ListSupervisor(ctx context.Context, employeeID string) ([]SupervisorEvaluation, error)
	GetExperience(ctx context.Context, evaluationID string) (ExperienceEvaluation, error)
}
