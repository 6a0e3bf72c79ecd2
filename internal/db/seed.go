package db

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"luiza/internal/domain/auth"
	"luiza/internal/domain/org"
	"luiza/internal/platform/config"
)

type seedConn interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func Seed(ctx context.Context, pool *pgxpool.Pool, cfg config.Config) error {
	if err := ensureUnits(ctx, pool); err != nil {
		return err
	}
	return ensureAdminUser(ctx, pool, cfg.SeedAdminName, cfg.SeedAdminPhone)
}

func ensureUnits(ctx context.Context, conn seedConn) error {
	for _, unit := range org.CompanyUnits {
		_, err := conn.Exec(ctx, "INSERT INTO units (name) VALUES ($1) ON CONFLICT (name) DO NOTHING", unit)
		if err != nil {
			return err
		}
	}
	return nil
}

func ensureAdminUser(ctx context.Context, conn seedConn, name, phone string) error {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(phone) == "" {
		return nil
	}

	var id string
	err := conn.QueryRow(ctx, "SELECT id FROM users WHERE name ILIKE $1 AND phone = $2", name, phone).Scan(&id)
	if err == nil {
		return nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return err
	}

	return conn.QueryRow(ctx,
		"INSERT INTO users (name, phone, role) VALUES ($1, $2, $3) RETURNING id",
		name, phone, auth.RoleHR,
	).Scan(&id)
}
