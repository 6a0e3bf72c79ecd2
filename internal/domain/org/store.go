package org

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

func (s *Store) ListUnits(ctx context.Context, onlyActive bool) ([]Unit, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, name, active, created_at
    FROM units
    WHERE ($1 = FALSE OR active = TRUE)
    ORDER BY name
  `, onlyActive)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var units []Unit
	for rows.Next() {
		var unit Unit
		if err := rows.Scan(&unit.ID, &unit.Name, &unit.Active, &unit.CreatedAt); err != nil {
			return nil, err
		}
		units = append(units, unit)
	}
	return units, rows.Err()
}

func (s *Store) CreateUnit(ctx context.Context, name string) (string, error) {
	var id string
	err := s.DB.QueryRow(ctx, "INSERT INTO units (name) VALUES ($1) RETURNING id", name).Scan(&id)
	return id, err
}

func (s *Store) SetUnitActive(ctx context.Context, unitID string, active bool) error {
	tag, err := s.DB.Exec(ctx, "UPDATE units SET active = $2 WHERE id = $1", unitID, active)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrUnitNotFound
	}
	return nil
}

func (s *Store) ListSectors(ctx context.Context, onlyActive bool) ([]Sector, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, name, COALESCE(unit_id::text, ''), active, created_at
    FROM sectors
    WHERE ($1 = FALSE OR active = TRUE)
    ORDER BY name
  `, onlyActive)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sectors []Sector
	for rows.Next() {
		var sector Sector
		if err := rows.Scan(&sector.ID, &sector.Name, &sector.UnitID, &sector.Active, &sector.CreatedAt); err != nil {
			return nil, err
		}
		sectors = append(sectors, sector)
	}
	return sectors, rows.Err()
}

func (s *Store) CreateSector(ctx context.Context, name string, unitID *string) (string, error) {
	var id string
	err := s.DB.QueryRow(ctx, "INSERT INTO sectors (name, unit_id) VALUES ($1, $2) RETURNING id", name, unitID).Scan(&id)
	return id, err
}

func (s *Store) SetSectorActive(ctx context.Context, sectorID string, active bool) error {
	tag, err := s.DB.Exec(ctx, "UPDATE sectors SET active = $2 WHERE id = $1", sectorID, active)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrSectorNotFound
	}
	return nil
}

func (s *Store) ListPositions(ctx context.Context) ([]Position, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, code, name, COALESCE(description, ''), technical_skills, behavioral_skills, base_salary, created_at, updated_at
    FROM positions
    ORDER BY name
  `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var positions []Position
	for rows.Next() {
		var position Position
		if err := rows.Scan(
			&position.ID, &position.Code, &position.Name, &position.Description,
			&position.TechnicalSkills, &position.BehavioralSkills, &position.BaseSalary,
			&position.CreatedAt, &position.UpdatedAt,
		); err != nil {
			return nil, err
		}
		positions = append(positions, position)
	}
	return positions, rows.Err()
}

func (s *Store) CreatePosition(ctx context.Context, position Position) (string, error) {
	var id string
	err := s.DB.QueryRow(ctx, `
    INSERT INTO positions (code, name, description, technical_skills, behavioral_skills, base_salary)
    VALUES ($1, $2, $3, $4, $5, $6)
    RETURNING id
  `, position.Code, position.Name, position.Description, position.TechnicalSkills, position.BehavioralSkills, position.BaseSalary).Scan(&id)
	return id, err
}

func (s *Store) UpdatePosition(ctx context.Context, position Position) error {
	tag, err := s.DB.Exec(ctx, `
    UPDATE positions
    SET code = $2, name = $3, description = $4, technical_skills = $5, behavioral_skills = $6, base_salary = $7, updated_at = now()
    WHERE id = $1
  `, position.ID, position.Code, position.Name, position.Description, position.TechnicalSkills, position.BehavioralSkills, position.BaseSalary)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrPositionNotFound
	}
	return nil
}

func (s *Store) GetEmployee(ctx context.Context, employeeID string) (Employee, error) {
	row := s.DB.QueryRow(ctx, `
    SELECT id, name, COALESCE(email, ''), sector, COALESCE(unit, ''), COALESCE(position_id::text, ''),
           admission_date, status, COALESCE(manager_id::text, ''), created_at, updated_at
    FROM employees
    WHERE id = $1
  `, employeeID)
	return scanEmployee(row)
}

func (s *Store) ListEmployees(ctx context.Context, unit, sector, status string) ([]Employee, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, name, COALESCE(email, ''), sector, COALESCE(unit, ''), COALESCE(position_id::text, ''),
           admission_date, status, COALESCE(manager_id::text, ''), created_at, updated_at
    FROM employees
    WHERE ($1 = '' OR unit = $1)
      AND ($2 = '' OR sector = $2)
      AND ($3 = '' OR status = $3)
    ORDER BY name
  `, unit, sector, status)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var employees []Employee
	for rows.Next() {
		employee, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, employee)
	}
	return employees, rows.Err()
}

func (s *Store) CreateEmployee(ctx context.Context, employee Employee) (string, error) {
	var id string
	err := s.DB.QueryRow(ctx, `
    INSERT INTO employees (name, email, sector, unit, position_id, admission_date, status, manager_id)
    VALUES ($1, NULLIF($2, ''), $3, NULLIF($4, ''), NULLIF($5, '')::uuid, $6, $7, NULLIF($8, '')::uuid)
    RETURNING id
  `, employee.Name, employee.Email, employee.Sector, employee.Unit, employee.PositionID,
		employee.AdmissionDate, employee.Status, employee.ManagerID).Scan(&id)
	return id, err
}

func (s *Store) UpdateEmployee(ctx context.Context, employee Employee) error {
	tag, err := s.DB.Exec(ctx, `
    UPDATE employees
    SET name = $2, email = NULLIF($3, ''), sector = $4, unit = NULLIF($5, ''),
        position_id = NULLIF($6, '')::uuid, admission_date = $7, status = $8,
        manager_id = NULLIF($9, '')::uuid, updated_at = now()
    WHERE id = $1
  `, employee.ID, employee.Name, employee.Email, employee.Sector, employee.Unit,
		employee.PositionID, employee.AdmissionDate, employee.Status, employee.ManagerID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrEmployeeNotFound
	}
	return nil
}

func (s *Store) UpdateEmployeeStatus(ctx context.Context, employeeID, status string) error {
	tag, err := s.DB.Exec(ctx, "UPDATE employees SET status = $2, updated_at = now() WHERE id = $1", employeeID, status)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrEmployeeNotFound
	}
	return nil
}

// DeleteEmployee removes dependent evaluation and feedback rows first so the
// employee row never leaves dangling references behind.
func (s *Store) DeleteEmployee(ctx context.Context, employeeID string) error {
	tx, err := s.DB.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	dependents := []string{
		"DELETE FROM experience_evaluations WHERE employee_id = $1",
		"DELETE FROM quarterly_evaluations WHERE employee_id = $1",
		"DELETE FROM supervisor_evaluations WHERE employee_id = $1",
		"DELETE FROM feedbacks WHERE employee_id = $1",
	}
	for _, stmt := range dependents {
		if _, err := tx.Exec(ctx, stmt, employeeID); err != nil {
			return err
		}
	}

	tag, err := tx.Exec(ctx, "DELETE FROM employees WHERE id = $1", employeeID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrEmployeeNotFound
	}
	return tx.Commit(ctx)
}

func (s *Store) CountActiveEmployees(ctx context.Context, unit, sector string) (int, error) {
	var count int
	err := s.DB.QueryRow(ctx, `
    SELECT COUNT(1)
    FROM employees
    WHERE status = $1
      AND ($2 = '' OR unit = $2)
      AND ($3 = '' OR sector = $3)
  `, StatusActive, unit, sector).Scan(&count)
	return count, err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEmployee(row rowScanner) (Employee, error) {
	var employee Employee
	var admission time.Time
	err := row.Scan(
		&employee.ID, &employee.Name, &employee.Email, &employee.Sector, &employee.Unit,
		&employee.PositionID, &admission, &employee.Status, &employee.ManagerID,
		&employee.CreatedAt, &employee.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return Employee{}, ErrEmployeeNotFound
	}
	if err != nil {
		return Employee{}, err
	}
	employee.AdmissionDate = admission
	return employee, nil
}
