package evaluation

import (
	"context"
	"fmt"
	"time"
)

type Service struct {
	Store StoreAPI
}

func NewService(store StoreAPI) *Service {
	return &Service{Store: store}
}

// CreateExperience scores and persists a probation review. Derived fields are
// always recomputed from the answers; values supplied by the caller are
// ignored.
func (s *Service) CreateExperience(ctx context.Context, eval ExperienceEvaluation) (ExperienceEvaluation, error) {
	score, err := ScoreExperience(eval.Answers)
	if err != nil {
		return ExperienceEvaluation{}, err
	}
	eval.FinalScore = score.FinalScore
	eval.Classification = score.Classification
	if eval.EvaluationDate.IsZero() {
		eval.EvaluationDate = time.Now()
	}
	if eval.Outcome != "" && eval.Outcome != OutcomeRetained && eval.Outcome != OutcomeTerminated {
		return ExperienceEvaluation{}, fmt.Errorf("invalid outcome %q", eval.Outcome)
	}

	id, err := s.Store.CreateExperience(ctx, eval)
	if err != nil {
		return ExperienceEvaluation{}, err
	}
	eval.ID = id
	return eval, nil
}

func (s *Service) GetExperience(ctx context.Context, evaluationID string) (ExperienceEvaluation, error) {
	return s.Store.GetExperience(ctx, evaluationID)
}

func (s *Service) ListExperience(ctx context.Context, employeeID string) ([]ExperienceEvaluation, error) {
	return s.Store.ListExperience(ctx, employeeID)
}

func (s *Service) CreateQuarterly(ctx context.Context, eval QuarterlyEvaluation) (QuarterlyEvaluation, error) {
	score, err := ScoreQuarterly(eval.Answers)
	if err != nil {
		return QuarterlyEvaluation{}, err
	}
	eval.TotalPoints = score.TotalPoints
	eval.PercentageIndex = score.PercentageIndex
	eval.Classification = score.Classification
	if eval.Quarter < 1 || eval.Quarter > 4 {
		return QuarterlyEvaluation{}, fmt.Errorf("invalid quarter %d", eval.Quarter)
	}
	if eval.EvaluationDate.IsZero() {
		eval.EvaluationDate = time.Now()
	}

	id, err := s.Store.CreateQuarterly(ctx, eval)
	if err != nil {
		return QuarterlyEvaluation{}, err
	}
	eval.ID = id
	return eval, nil
}

func (s *Service) ListQuarterly(ctx context.Context, employeeID string) ([]QuarterlyEvaluation, error) {
	return s.Store.ListQuarterly(ctx, employeeID)
}

func (s *Service) CreateSupervisor(ctx context.Context, eval SupervisorEvaluation) (SupervisorEvaluation, error) {
	rubric, err := RubricByVersion(eval.RubricVersion)
	if err != nil {
		return SupervisorEvaluation{}, err
	}
	score, err := ScoreSupervisor(rubric, eval.Answers)
	if err != nil {
		return SupervisorEvaluation{}, err
	}
	eval.RubricVersion = rubric.Version
	eval.TotalPoints = score.TotalPoints
	eval.PercentualFinal = score.PercentualFinal
	eval.Classification = score.Classification
	if eval.EvaluationDate.IsZero() {
		eval.EvaluationDate = time.Now()
	}

	id, err := s.Store.CreateSupervisor(ctx, eval)
	if err != nil {
		return SupervisorEvaluation{}, err
	}
	eval.ID = id
	return eval, nil
}

func (s *Service) ListSupervisor(ctx context.Context, employeeID string) ([]SupervisorEvaluation, error) {
	return s.Store.ListSupervisor(ctx, employeeID)
}
