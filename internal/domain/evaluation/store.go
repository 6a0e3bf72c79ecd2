package evaluation

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrEvaluationNotFound = errors.New("evaluation not found")

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

func (s *Store) CreateExperience(ctx context.Context, eval ExperienceEvaluation) (string, error) {
	answers, err := json.Marshal(eval.Answers)
	if err != nil {
		return "", err
	}
	var id string
	err = s.DB.QueryRow(ctx, `
    INSERT INTO experience_evaluations
      (employee_id, evaluator_id, period, evaluation_date, answers, final_score, classification, outcome,
       employee_notes, supervisor_notes, observations)
    VALUES ($1, $2, $3, $4, $5, $6, $7, NULLIF($8, ''), NULLIF($9, ''), NULLIF($10, ''), NULLIF($11, ''))
    RETURNING id
  `, eval.EmployeeID, eval.EvaluatorID, eval.Period, eval.EvaluationDate, answers,
		eval.FinalScore, eval.Classification, eval.Outcome,
		eval.EmployeeNotes, eval.SupervisorNotes, eval.Observations).Scan(&id)
	return id, err
}

func (s *Store) GetExperience(ctx context.Context, evaluationID string) (ExperienceEvaluation, error) {
	row := s.DB.QueryRow(ctx, `
    SELECT id, employee_id, evaluator_id, period, evaluation_date, answers, final_score, classification,
           COALESCE(outcome, ''), COALESCE(employee_notes, ''), COALESCE(supervisor_notes, ''),
           COALESCE(observations, ''), created_at
    FROM experience_evaluations
    WHERE id = $1
  `, evaluationID)
	eval, err := scanExperience(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return ExperienceEvaluation{}, ErrEvaluationNotFound
	}
	return eval, err
}

func (s *Store) ListExperience(ctx context.Context, employeeID string) ([]ExperienceEvaluation, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, employee_id, evaluator_id, period, evaluation_date, answers, final_score, classification,
           COALESCE(outcome, ''), COALESCE(employee_notes, ''), COALESCE(supervisor_notes, ''),
           COALESCE(observations, ''), created_at
    FROM experience_evaluations
    WHERE ($1 = '' OR employee_id::text = $1)
    ORDER BY created_at DESC
  `, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var evals []ExperienceEvaluation
	for rows.Next() {
		eval, err := scanExperience(rows)
		if err != nil {
			return nil, err
		}
		evals = append(evals, eval)
	}
	return evals, rows.Err()
}

func (s *Store) CreateQuarterly(ctx context.Context, eval QuarterlyEvaluation) (string, error) {
	answers, err := json.Marshal(eval.Answers)
	if err != nil {
		return "", err
	}
	var id string
	err = s.DB.QueryRow(ctx, `
    INSERT INTO quarterly_evaluations
      (employee_id, evaluator_id, quarter, evaluation_date, answers, total_points, percentage_index,
       classification, observations, employee_agreed)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NULLIF($9, ''), $10)
    RETURNING id
  `, eval.EmployeeID, eval.EvaluatorID, eval.Quarter, eval.EvaluationDate, answers,
		eval.TotalPoints, eval.PercentageIndex, eval.Classification, eval.Observations, eval.EmployeeAgreed).Scan(&id)
	return id, err
}

func (s *Store) ListQuarterly(ctx context.Context, employeeID string) ([]QuarterlyEvaluation, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, employee_id, evaluator_id, quarter, evaluation_date, answers, total_points, percentage_index,
           classification, COALESCE(observations, ''), employee_agreed, created_at
    FROM quarterly_evaluations
    WHERE ($1 = '' OR employee_id::text = $1)
    ORDER BY created_at DESC
  `, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var evals []QuarterlyEvaluation
	for rows.Next() {
		var eval QuarterlyEvaluation
		var answers []byte
		if err := rows.Scan(
			&eval.ID, &eval.EmployeeID, &eval.EvaluatorID, &eval.Quarter, &eval.EvaluationDate, &answers,
			&eval.TotalPoints, &eval.PercentageIndex, &eval.Classification, &eval.Observations,
			&eval.EmployeeAgreed, &eval.CreatedAt,
		); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(answers, &eval.Answers); err != nil {
			return nil, err
		}
		evals = append(evals, eval)
	}
	return evals, rows.Err()
}

func (s *Store) CreateSupervisor(ctx context.Context, eval SupervisorEvaluation) (string, error) {
	answers, err := json.Marshal(eval.Answers)
	if err != nil {
		return "", err
	}
	var id string
	err = s.DB.QueryRow(ctx, `
    INSERT INTO supervisor_evaluations
      (employee_id, supervisor_id, unit, review_period, evaluation_date, rubric_version, answers,
       total_points, percentual_final, classification)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
    RETURNING id
  `, eval.EmployeeID, eval.SupervisorID, eval.Unit, eval.ReviewPeriod, eval.EvaluationDate,
		eval.RubricVersion, answers, eval.TotalPoints, eval.PercentualFinal, eval.Classification).Scan(&id)
	return id, err
}

func (s *Store) ListSupervisor(ctx context.Context, employeeID string) ([]SupervisorEvaluation, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, employee_id, supervisor_id, unit, review_period, evaluation_date, rubric_version, answers,
           total_points, percentual_final, classification, created_at
    FROM supervisor_evaluations
    WHERE ($1 = '' OR employee_id::text = $1)
    ORDER BY created_at DESC
  `, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var evals []SupervisorEvaluation
	for rows.Next() {
		var eval SupervisorEvaluation
		var answers []byte
		if err := rows.Scan(
			&eval.ID, &eval.EmployeeID, &eval.SupervisorID, &eval.Unit, &eval.ReviewPeriod,
			&eval.EvaluationDate, &eval.RubricVersion, &answers,
			&eval.TotalPoints, &eval.PercentualFinal, &eval.Classification, &eval.CreatedAt,
		); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(answers, &eval.Answers); err != nil {
			return nil, err
		}
		evals = append(evals, eval)
	}
	return evals, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanExperience(row rowScanner) (ExperienceEvaluation, error) {
	var eval ExperienceEvaluation
	var answers []byte
	err := row.Scan(
		&eval.ID, &eval.EmployeeID, &eval.EvaluatorID, &eval.Period, &eval.EvaluationDate, &answers,
		&eval.FinalScore, &eval.Classification, &eval.Outcome,
		&eval.EmployeeNotes, &eval.SupervisorNotes, &eval.Observations, &eval.CreatedAt,
	)
	if err != nil {
		return ExperienceEvaluation{}, err
	}
	if err := json.Unmarshal(answers, &eval.Answers); err != nil {
		return ExperienceEvaluation{}, err
	}
	return eval, nil
}
