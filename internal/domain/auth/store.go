package auth

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrSessionNotFound = errors.New("session not found")
)

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

func (s *Store) FindActiveUser(ctx context.Context, name, phone string) (User, error) {
	row := s.DB.QueryRow(ctx, `
    SELECT id, name, phone, role, COALESCE(employee_id::text, ''), active, last_login, created_at, updated_at
    FROM users
    WHERE active = TRUE AND name ILIKE $1 AND phone = $2
  `, name, phone)
	return scanUser(row)
}

func (s *Store) GetUser(ctx context.Context, userID string) (User, error) {
	row := s.DB.QueryRow(ctx, `
    SELECT id, name, phone, role, COALESCE(employee_id::text, ''), active, last_login, created_at, updated_at
    FROM users
    WHERE id = $1
  `, userID)
	return scanUser(row)
}

func (s *Store) ListUsers(ctx context.Context) ([]User, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, name, phone, role, COALESCE(employee_id::text, ''), active, last_login, created_at, updated_at
    FROM users
    ORDER BY name
  `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, rows.Err()
}

func (s *Store) CreateUser(ctx context.Context, name, phone, role string, employeeID *string, active bool) (string, error) {
	var id string
	err := s.DB.QueryRow(ctx, `
    INSERT INTO users (name, phone, role, employee_id, active)
    VALUES ($1, $2, $3, $4, $5)
    RETURNING id
  `, name, phone, role, employeeID, active).Scan(&id)
	return id, err
}

func (s *Store) UpdateUser(ctx context.Context, userID, name, phone, role string, employeeID *string, active bool) error {
	tag, err := s.DB.Exec(ctx, `
    UPDATE users
    SET name = $2, phone = $3, role = $4, employee_id = $5, active = $6, updated_at = now()
    WHERE id = $1
  `, userID, name, phone, role, employeeID, active)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (s *Store) DeactivateUser(ctx context.Context, userID string) error {
	tag, err := s.DB.Exec(ctx, "UPDATE users SET active = FALSE, updated_at = now() WHERE id = $1", userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (s *Store) UpdateLastLogin(ctx context.Context, userID string) error {
	_, err := s.DB.Exec(ctx, "UPDATE users SET last_login = now() WHERE id = $1", userID)
	return err
}

func (s *Store) CreateSession(ctx context.Context, sessionID, userID, tokenHash string, expires time.Time) error {
	_, err := s.DB.Exec(ctx, `
    INSERT INTO sessions (id, user_id, token_hash, expires_at)
    VALUES ($1, $2, $3, $4)
  `, sessionID, userID, tokenHash, expires)
	return err
}

func (s *Store) SessionByID(ctx context.Context, sessionID string) (userID, tokenHash string, expires time.Time, err error) {
	err = s.DB.QueryRow(ctx, `
    SELECT user_id, token_hash, expires_at
    FROM sessions
    WHERE id = $1 AND revoked_at IS NULL
  `, sessionID).Scan(&userID, &tokenHash, &expires)
	if errors.Is(err, pgx.ErrNoRows) {
		err = ErrSessionNotFound
	}
	return userID, tokenHash, expires, err
}

func (s *Store) RevokeSession(ctx context.Context, sessionID string) error {
	_, err := s.DB.Exec(ctx, "UPDATE sessions SET revoked_at = now() WHERE id = $1 AND revoked_at IS NULL", sessionID)
	return err
}

func (s *Store) RotateSession(ctx context.Context, oldID, newID, userID, newHash string, expires time.Time) error {
	tx, err := s.DB.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, "UPDATE sessions SET revoked_at = now() WHERE id = $1 AND revoked_at IS NULL", oldID); err != nil {
		return err
	}
	if _, err := tx.Exec(ctx, `
    INSERT INTO sessions (id, user_id, token_hash, expires_at)
    VALUES ($1, $2, $3, $4)
  `, newID, userID, newHash, expires); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (User, error) {
	var user User
	var employeeID string
	err := row.Scan(&user.ID, &user.Name, &user.Phone, &user.Role, &employeeID, &user.Active, &user.LastLogin, &user.CreatedAt, &user.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return User{}, ErrUserNotFound
	}
	if err != nil {
		return User{}, err
	}
	user.EmployeeID = employeeID
	return user, nil
}
