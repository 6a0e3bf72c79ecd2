package indicators

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Store projects persisted records into the flat rows the builders consume.
// Filters apply at the query so a unit dashboard never materializes the
// whole company.
type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

func (s *Store) Employees(ctx context.Context, filter Filter) ([]EmployeeRow, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, COALESCE(unit, ''), COALESCE(sector, ''), status, admission_date
    FROM employees
    WHERE ($1 = '' OR unit = $1)
      AND ($2 = '' OR sector = $2)
  `, filter.Unit, filter.Sector)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []EmployeeRow
	for rows.Next() {
		var row EmployeeRow
		if err := rows.Scan(&row.ID, &row.Unit, &row.Sector, &row.Status, &row.AdmissionDate); err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

// Terminations joins approved termination movements with the employee rows
// they closed, so tenure and probation splits use the stable employee id.
func (s *Store) Terminations(ctx context.Context, filter Filter) ([]TerminationRow, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT COALESCE(m.employee_id::text, ''), m.unit, COALESCE(e.admission_date, 'epoch'::timestamptz),
           COALESCE(m.closing_date, m.requisition_date),
           COALESCE(m.termination->>'rescissionType', ''),
           COALESCE((m.termination->>'duringProbation')::boolean, FALSE)
    FROM movements m
    LEFT JOIN employees e ON e.id = m.employee_id
    WHERE m.motivo = 'Demissão'
      AND m.status = 'approved'
      AND ($1 = '' OR m.unit = $1)
      AND ($2::timestamptz IS NULL OR COALESCE(m.closing_date, m.requisition_date) >= $2)
      AND ($3::timestamptz IS NULL OR COALESCE(m.closing_date, m.requisition_date) < $3)
  `, filter.Unit, nullableTime(filter.From), nullableTime(filter.To))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []TerminationRow
	for rows.Next() {
		var row TerminationRow
		if err := rows.Scan(&row.EmployeeID, &row.Unit, &row.AdmissionDate, &row.TerminationDate, &row.RescissionType, &row.DuringProbation); err != nil {
			return nil, err
		}
		if row.AdmissionDate.Unix() == 0 {
			row.AdmissionDate = time.Time{}
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

func (s *Store) ExperienceEvaluations(ctx context.Context, filter Filter) ([]ExperienceRow, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT x.employee_id, COALESCE(e.unit, ''), x.evaluation_date, x.final_score, x.outcome, x.answers
    FROM experience_evaluations x
    JOIN employees e ON e.id = x.employee_id
    WHERE ($1 = '' OR e.unit = $1)
      AND ($2 = '' OR e.sector = $2)
      AND ($3::timestamptz IS NULL OR x.evaluation_date >= $3)
      AND ($4::timestamptz IS NULL OR x.evaluation_date < $4)
  `, filter.Unit, filter.Sector, nullableTime(filter.From), nullableTime(filter.To))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []ExperienceRow
	for rows.Next() {
		var row ExperienceRow
		var answers []byte
		if err := rows.Scan(&row.EmployeeID, &row.Unit, &row.EvaluationDate, &row.FinalScore, &row.Outcome, &answers); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(answers, &row.Answers); err != nil {
			return nil, fmt.Errorf("decode experience answers: %w", err)
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

func (s *Store) QuarterlyEvaluations(ctx context.Context, filter Filter) ([]QuarterlyRow, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT q.employee_id, COALESCE(e.unit, ''), q.evaluation_date, q.quarter, q.total_points, q.answers
    FROM quarterly_evaluations q
    JOIN employees e ON e.id = q.employee_id
    WHERE ($1 = '' OR e.unit = $1)
      AND ($2 = '' OR e.sector = $2)
      AND ($3::timestamptz IS NULL OR q.evaluation_date >= $3)
      AND ($4::timestamptz IS NULL OR q.evaluation_date < $4)
  `, filter.Unit, filter.Sector, nullableTime(filter.From), nullableTime(filter.To))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []QuarterlyRow
	for rows.Next() {
		var row QuarterlyRow
		var answers []byte
		if err := rows.Scan(&row.EmployeeID, &row.Unit, &row.EvaluationDate, &row.Quarter, &row.TotalPoints, &answers); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(answers, &row.Answers); err != nil {
			return nil, fmt.Errorf("decode quarterly answers: %w", err)
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

func (s *Store) Movements(ctx context.Context, filter Filter) ([]MovementRow, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT motivo, unit, status, requisition_date, closing_date
    FROM movements
    WHERE ($1 = '' OR unit = $1)
      AND ($2::timestamptz IS NULL OR requisition_date >= $2)
      AND ($3::timestamptz IS NULL OR requisition_date < $3)
  `, filter.Unit, nullableTime(filter.From), nullableTime(filter.To))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []MovementRow
	for rows.Next() {
		var row MovementRow
		if err := rows.Scan(&row.Motivo, &row.Unit, &row.Status, &row.RequisitionDate, &row.ClosingDate); err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

func nullableTime(t time.Time) any {
	if t.IsZero() {
		return nil
	}
	return t
}
