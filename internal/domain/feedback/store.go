package feedback

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrFeedbackNotFound = errors.New("feedback not found")

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

func (s *Store) Create(ctx context.Context, fb Feedback) (string, error) {
	var id string
	err := s.DB.QueryRow(ctx, `
    INSERT INTO feedbacks (employee_id, recorder_id, feedback_date, pauta, employee_positioning, observations, action_plan)
    VALUES ($1, $2, $3, $4, $5, $6, $7)
    RETURNING id
  `, fb.EmployeeID, fb.RecorderID, fb.FeedbackDate, fb.Pauta, fb.EmployeePositioning, fb.Observations, fb.ActionPlan).Scan(&id)
	return id, err
}

func (s *Store) Get(ctx context.Context, id string) (Feedback, error) {
	row := s.DB.QueryRow(ctx, `
    SELECT id, employee_id, recorder_id, feedback_date, pauta, employee_positioning,
           COALESCE(observations, ''), COALESCE(action_plan, ''), created_at
    FROM feedbacks
    WHERE id = $1
  `, id)
	fb, err := scanFeedback(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return Feedback{}, ErrFeedbackNotFound
	}
	return fb, err
}

func (s *Store) ListByEmployee(ctx context.Context, employeeID string, limit, offset int) ([]Feedback, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, employee_id, recorder_id, feedback_date, pauta, employee_positioning,
           COALESCE(observations, ''), COALESCE(action_plan, ''), created_at
    FROM feedbacks
    WHERE employee_id = $1
    ORDER BY feedback_date DESC
    LIMIT $2 OFFSET $3
  `, employeeID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectFeedbacks(rows)
}

func (s *Store) List(ctx context.Context, limit, offset int) ([]Feedback, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, employee_id, recorder_id, feedback_date, pauta, employee_positioning,
           COALESCE(observations, ''), COALESCE(action_plan, ''), created_at
    FROM feedbacks
    ORDER BY feedback_date DESC
    LIMIT $1 OFFSET $2
  `, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectFeedbacks(rows)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanFeedback(row rowScanner) (Feedback, error) {
	var fb Feedback
	err := row.Scan(
		&fb.ID,
		&fb.EmployeeID,
		&fb.RecorderID,
		&fb.FeedbackDate,
		&fb.Pauta,
		&fb.EmployeePositioning,
		&fb.Observations,
		&fb.ActionPlan,
		&fb.CreatedAt,
	)
	return fb, err
}

func collectFeedbacks(rows pgx.Rows) ([]Feedback, error) {
	var out []Feedback
	for rows.Next() {
		fb, err := scanFeedback(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, fb)
	}
	return out, rows.Err()
}
