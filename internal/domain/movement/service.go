package movement

import (
	"context"
	"errors"
	"fmt"
	"time"
)

var (
	ErrInvalidMotivo         = errors.New("invalid motivo")
	ErrInvalidRescissionType = errors.New("invalid rescission type")
	ErrMissingSubBlock       = errors.New("motivo requires its detail block")
)

type StoreAPI interface {
	Create(ctx context.Context, mv Movement) (string, error)
	Get(ctx context.Context, id string) (Movement, error)
	List(ctx context.Context, filter ListFilter) ([]Movement, error)
	SetStatus(ctx context.Context, id, status string, closedAt time.Time) error
}

// EmployeeStatusSetter lets an approved termination flip the employee record
// without the movement package importing the org domain.
type EmployeeStatusSetter interface {
	UpdateEmployeeStatus(ctx context.Context, employeeID, status string) error
}

type Service struct {
	Store     StoreAPI
	Employees EmployeeStatusSetter
}

func NewService(store StoreAPI, employees EmployeeStatusSetter) *Service {
	return &Service{Store: store, Employees: employees}
}

func (s *Service) Create(ctx context.Context, mv Movement) (Movement, error) {
	if !ValidMotivo(mv.Motivo) {
		return Movement{}, ErrInvalidMotivo
	}
	switch mv.Motivo {
	case MotivoDemissao:
		if mv.Termination == nil {
			return Movement{}, fmt.Errorf("%w: %s needs a termination block", ErrMissingSubBlock, mv.Motivo)
		}
		if !ValidRescissionType(mv.Termination.RescissionType) {
			return Movement{}, ErrInvalidRescissionType
		}
		if mv.Termination.TerminationDate.IsZero() {
			mv.Termination.TerminationDate = time.Now().UTC()
		}
	case MotivoPromocao:
		if mv.Promotion == nil {
			return Movement{}, fmt.Errorf("%w: %s needs a promotion block", ErrMissingSubBlock, mv.Motivo)
		}
		mv.Promotion.Compensation = ComputeCompensation(
			mv.Promotion.CurrentSalary,
			mv.Promotion.CurrentBonus,
			mv.Promotion.ProposedSalary,
			mv.Promotion.ProposedBonus,
		)
	}

	mv.Status = StatusPending
	if mv.RequisitionDate.IsZero() {
		mv.RequisitionDate = time.Now().UTC()
	}

	id, err := s.Store.Create(ctx, mv)
	if err != nil {
		return Movement{}, err
	}
	return s.Store.Get(ctx, id)
}

func (s *Service) Get(ctx context.Context, id string) (Movement, error) {
	return s.Store.Get(ctx, id)
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]Movement, error) {
	return s.Store.List(ctx, filter)
}

// Approve closes the requisition. Approving a termination also marks the
// employee terminated when the record carries an employee id.
func (s *Service) Approve(ctx context.Context, id string) (Movement, error) {
	mv, err := s.Store.Get(ctx, id)
	if err != nil {
		return Movement{}, err
	}
	if err := s.Store.SetStatus(ctx, id, StatusApproved, time.Now().UTC()); err != nil {
		return Movement{}, err
	}
	if mv.Motivo == MotivoDemissao && mv.EmployeeID != "" && s.Employees != nil {
		if err := s.Employees.UpdateEmployeeStatus(ctx, mv.EmployeeID, "terminated"); err != nil {
			return Movement{}, fmt.Errorf("mark employee terminated: %w", err)
		}
	}
	return s.Store.Get(ctx, id)
}

func (s *Service) Reject(ctx context.Context, id string) (Movement, error) {
	if err := s.Store.SetStatus(ctx, id, StatusRejected, time.Now().UTC()); err != nil {
		return Movement{}, err
	}
	return s.Store.Get(ctx, id)
}
