package indicators

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"
)

type StoreAPI interface {
	Employees(ctx context.Context, filter Filter) ([]EmployeeRow, error)
	Terminations(ctx context.Context, filter Filter) ([]TerminationRow, error)
	ExperienceEvaluations(ctx context.Context, filter Filter) ([]ExperienceRow, error)
	QuarterlyEvaluations(ctx context.Context, filter Filter) ([]QuarterlyRow, error)
	Movements(ctx context.Context, filter Filter) ([]MovementRow, error)
}

type Service struct {
	Store        StoreAPI
	FetchTimeout time.Duration
	WindowMonths int
	CostPerHire  float64
}

func NewService(store StoreAPI, fetchTimeout time.Duration, windowMonths int, costPerHire float64) *Service {
	return &Service{
		Store:        store,
		FetchTimeout: fetchTimeout,
		WindowMonths: windowMonths,
		CostPerHire:  costPerHire,
	}
}

// fetch loads the five record kinds concurrently. One failed fetch cancels
// the rest and the dashboard load fails as a whole; the caller never sees a
// partially-populated dataset.
func (s *Service) fetch(ctx context.Context, filter Filter) (Dataset, error) {
	if s.FetchTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.FetchTimeout)
		defer cancel()
	}

	var ds Dataset
	group, ctx := errgroup.WithContext(ctx)
	group.Go(func() (err error) {
		ds.Employees, err = s.Store.Employees(ctx, filter)
		return err
	})
	group.Go(func() (err error) {
		ds.Terminations, err = s.Store.Terminations(ctx, filter)
		return err
	})
	group.Go(func() (err error) {
		ds.Experience, err = s.Store.ExperienceEvaluations(ctx, filter)
		return err
	})
	group.Go(func() (err error) {
		ds.Quarterly, err = s.Store.QuarterlyEvaluations(ctx, filter)
		return err
	})
	group.Go(func() (err error) {
		ds.Movements, err = s.Store.Movements(ctx, filter)
		return err
	})
	if err := group.Wait(); err != nil {
		return Dataset{}, fmt.Errorf("indicator data unavailable: %w", err)
	}
	return ds, nil
}

func (s *Service) options() BuildOptions {
	return BuildOptions{
		WindowMonths: s.WindowMonths,
		CostPerHire:  s.CostPerHire,
	}
}

func (s *Service) Turnover(ctx context.Context, filter Filter) (TurnoverSet, error) {
	ds, err := s.fetch(ctx, filter)
	if err != nil {
		return TurnoverSet{}, err
	}
	return BuildTurnover(ds, s.options()), nil
}

func (s *Service) UnitRanking(ctx context.Context, filter Filter) ([]UnitTurnover, error) {
	ds, err := s.fetch(ctx, filter)
	if err != nil {
		return nil, err
	}
	return RankUnits(ds), nil
}

func (s *Service) HRMetrics(ctx context.Context, filter Filter) (HRMetrics, error) {
	ds, err := s.fetch(ctx, filter)
	if err != nil {
		return HRMetrics{}, err
	}
	return BuildHRMetrics(ds, s.options()), nil
}

func (s *Service) HRIndicators(ctx context.Context, filter Filter) (HRIndicators, error) {
	ds, err := s.fetch(ctx, filter)
	if err != nil {
		return HRIndicators{}, err
	}
	return BuildHRIndicators(ds, s.options()), nil
}

// MonthlyHistory is the turnover series alone, for the history chart.
func (s *Service) MonthlyHistory(ctx context.Context, filter Filter) ([]Point, error) {
	set, err := s.Turnover(ctx, filter)
	if err != nil {
		return nil, err
	}
	return set.Geral.Series, nil
}
