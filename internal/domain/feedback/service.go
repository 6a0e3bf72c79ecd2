package feedback

import (
	"context"
	"errors"
	"time"
)

var ErrMissingFields = errors.New("employeeId, pauta and employeePositioning are required")

type StoreAPI interface {
	Create(ctx context.Context, fb Feedback) (string, error)
	Get(ctx context.Context, id string) (Feedback, error)
	ListByEmployee(ctx context.Context, employeeID string, limit, offset int) ([]Feedback, error)
	List(ctx context.Context, limit, offset int) ([]Feedback, error)
}

type Service struct {
	Store StoreAPI
}

func NewService(store StoreAPI) *Service {
	return &Service{Store: store}
}

func (s *Service) Create(ctx context.Context, fb Feedback) (Feedback, error) {
	if fb.EmployeeID == "" || fb.Pauta == "" || fb.EmployeePositioning == "" {
		return Feedback{}, ErrMissingFields
	}
	if fb.FeedbackDate.IsZero() {
		fb.FeedbackDate = time.Now().UTC()
	}
	id, err := s.Store.Create(ctx, fb)
	if err != nil {
		return Feedback{}, err
	}
	return s.Store.Get(ctx, id)
}

func (s *Service) Get(ctx context.Context, id string) (Feedback, error) {
	return s.Store.Get(ctx, id)
}

func (s *Service) ListByEmployee(ctx context.Context, employeeID string, limit, offset int) ([]Feedback, error) {
	return s.Store.ListByEmployee(ctx, employeeID, limit, offset)
}

func (s *Service) List(ctx context.Context, limit, offset int) ([]Feedback, error) {
	return s.Store.List(ctx, limit, offset)
}
