package movement

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrMovementNotFound = errors.New("movement not found")

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

type ListFilter struct {
	Unit   string
	Motivo string
	Status string
	From   time.Time
	To     time.Time
	Limit  int
	Offset int
}

func (s *Store) Create(ctx context.Context, mv Movement) (string, error) {
	termination, err := marshalOptional(mv.Termination)
	if err != nil {
		return "", fmt.Errorf("encode termination: %w", err)
	}
	promotion, err := marshalOptional(mv.Promotion)
	if err != nil {
		return "", fmt.Errorf("encode promotion: %w", err)
	}

	var id string
	err = s.DB.QueryRow(ctx, `
    INSERT INTO movements (motivo, unit, sector, position_title, requester_id, employee_id,
                           status, requisition_date, termination, promotion, notes)
    VALUES ($1, $2, $3, $4, $5, NULLIF($6, '')::uuid, $7, $8, $9, $10, $11)
    RETURNING id
  `, mv.Motivo, mv.Unit, mv.Sector, mv.PositionTitle, mv.RequesterID, mv.EmployeeID,
		mv.Status, mv.RequisitionDate, termination, promotion, mv.Notes).Scan(&id)
	return id, err
}

func (s *Store) Get(ctx context.Context, id string) (Movement, error) {
	row := s.DB.QueryRow(ctx, `
    SELECT id, motivo, unit, COALESCE(sector, ''), COALESCE(position_title, ''),
           requester_id, COALESCE(employee_id::text, ''), status, requisition_date,
           closing_date, termination, promotion, COALESCE(notes, ''), created_at, updated_at
    FROM movements
    WHERE id = $1
  `, id)
	mv, err := scanMovement(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return Movement{}, ErrMovementNotFound
	}
	return mv, err
}

func (s *Store) List(ctx context.Context, filter ListFilter) ([]Movement, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, motivo, unit, COALESCE(sector, ''), COALESCE(position_title, ''),
           requester_id, COALESCE(employee_id::text, ''), status, requisition_date,
           closing_date, termination, promotion, COALESCE(notes, ''), created_at, updated_at
    FROM movements
    WHERE ($1 = '' OR unit = $1)
      AND ($2 = '' OR motivo = $2)
      AND ($3 = '' OR status = $3)
      AND ($4::timestamptz IS NULL OR requisition_date >= $4)
      AND ($5::timestamptz IS NULL OR requisition_date < $5)
    ORDER BY requisition_date DESC
    LIMIT $6 OFFSET $7
  `, filter.Unit, filter.Motivo, filter.Status,
		nullableTime(filter.From), nullableTime(filter.To), filter.Limit, filter.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Movement
	for rows.Next() {
		mv, err := scanMovement(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, mv)
	}
	return out, rows.Err()
}

// SetStatus closes a pending requisition. Approval and rejection both stamp
// the closing date; only pending movements can transition.
func (s *Store) SetStatus(ctx context.Context, id, status string, closedAt time.Time) error {
	tag, err := s.DB.Exec(ctx, `
    UPDATE movements
    SET status = $2, closing_date = $3, updated_at = NOW()
    WHERE id = $1 AND status = $4
  `, id, status, closedAt, StatusPending)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrMovementNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMovement(row rowScanner) (Movement, error) {
	var mv Movement
	var termination, promotion []byte
	err := row.Scan(
		&mv.ID,
		&mv.Motivo,
		&mv.Unit,
		&mv.Sector,
		&mv.PositionTitle,
		&mv.RequesterID,
		&mv.EmployeeID,
		&mv.Status,
		&mv.RequisitionDate,
		&mv.ClosingDate,
		&termination,
		&promotion,
		&mv.Notes,
		&mv.CreatedAt,
		&mv.UpdatedAt,
	)
	if err != nil {
		return Movement{}, err
	}
	if len(termination) > 0 {
		mv.Termination = &TerminationDetails{}
		if err := json.Unmarshal(termination, mv.Termination); err != nil {
			return Movement{}, fmt.Errorf("decode termination: %w", err)
		}
	}
	if len(promotion) > 0 {
		mv.Promotion = &PromotionDetails{}
		if err := json.Unmarshal(promotion, mv.Promotion); err != nil {
			return Movement{}, fmt.Errorf("decode promotion: %w", err)
		}
	}
	return mv, nil
}

func marshalOptional(v any) ([]byte, error) {
	switch value := v.(type) {
	case *TerminationDetails:
		if value == nil {
			return nil, nil
		}
	case *PromotionDetails:
		if value == nil {
			return nil, nil
		}
	}
	return json.Marshal(v)
}

func nullableTime(t time.Time) any {
	if t.IsZero() {
		return nil
	}
	return t
}
