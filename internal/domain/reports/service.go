package reports

import (
	"context"
	"io"

	"luiza/internal/domain/evaluation"
	"luiza/internal/domain/indicators"
	"luiza/internal/domain/org"
)

type EmployeeGetter interface {
	GetEmployee(ctx context.Context, id string) (org.Employee, error)
}

type IndicatorSource interface {
	Turnover(ctx context.Context, filter indicators.Filter) (indicators.TurnoverSet, error)
	UnitRanking(ctx context.Context, filter indicators.Filter) ([]indicators.UnitTurnover, error)
	HRMetrics(ctx context.Context, filter indicators.Filter) (indicators.HRMetrics, error)
}

type Service struct {
	Evaluations evaluation.StoreAPI
	Employees   EmployeeGetter
	Indicators  IndicatorSource
}

func NewService(evaluations evaluation.StoreAPI, employees EmployeeGetter, source IndicatorSource) *Service {
	return &Service{Evaluations: evaluations, Employees: employees, Indicators: source}
}

func (s *Service) ExperienceEvaluationPDF(ctx context.Context, evaluationID string, w io.Writer) error {
	eval, err := s.Evaluations.GetExperience(ctx, evaluationID)
	if err != nil {
		return err
	}
	employee, err := s.Employees.GetEmployee(ctx, eval.EmployeeID)
	if err != nil {
		return err
	}
	return WriteExperienceEvaluationPDF(w, employee.Name, eval)
}

func (s *Service) TurnoverSummaryPDF(ctx context.Context, filter indicators.Filter, w io.Writer) error {
	set, err := s.Indicators.Turnover(ctx, filter)
	if err != nil {
		return err
	}
	ranking, err := s.Indicators.UnitRanking(ctx, filter)
	if err != nil {
		return err
	}
	return WriteTurnoverSummaryPDF(w, set, ranking)
}

func (s *Service) HRMetricsPDF(ctx context.Context, filter indicators.Filter, w io.Writer) error {
	metrics, err := s.Indicators.HRMetrics(ctx, filter)
	if err != nil {
		return err
	}
	return WriteHRMetricsPDF(w, metrics)
}
