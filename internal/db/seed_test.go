package db

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type fakeRow struct {
	err error
}

func (r fakeRow) Scan(...any) error { return r.err }

type fakeConn struct {
	selectErr error
	inserts   []string
}

func (c *fakeConn) Exec(_ context.Context, sql string, _ ...any) (pgconn.CommandTag, error) {
	c.inserts = append(c.inserts, sql)
	return pgconn.CommandTag{}, nil
}

func (c *fakeConn) QueryRow(_ context.Context, sql string, _ ...any) pgx.Row {
	if strings.HasPrefix(sql, "SELECT") {
		return fakeRow{err: c.selectErr}
	}
	c.inserts = append(c.inserts, sql)
	return fakeRow{}
}

func TestEnsureAdminUserPropagatesLookupError(t *testing.T) {
	lookupErr := errors.New("connection reset")
	conn := &fakeConn{selectErr: lookupErr}

	err := ensureAdminUser(context.Background(), conn, "Administrador RH", "11999990000")
	if !errors.Is(err, lookupErr) {
		t.Fatalf("expected lookup error to surface, got %v", err)
	}
	if len(conn.inserts) != 0 {
		t.Fatalf("a failed lookup must not insert, got %d writes", len(conn.inserts))
	}
}

func TestEnsureAdminUserInsertsWhenMissing(t *testing.T) {
	conn := &fakeConn{selectErr: pgx.ErrNoRows}

	if err := ensureAdminUser(context.Background(), conn, "Administrador RH", "11999990000"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(conn.inserts) != 1 {
		t.Fatalf("expected one insert, got %d", len(conn.inserts))
	}
}

func TestEnsureAdminUserSkipsExisting(t *testing.T) {
	conn := &fakeConn{}

	if err := ensureAdminUser(context.Background(), conn, "Administrador RH", "11999990000"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(conn.inserts) != 0 {
		t.Fatalf("existing admin must not be re-inserted, got %d writes", len(conn.inserts))
	}
}

func TestEnsureAdminUserSkipsBlankConfig(t *testing.T) {
	conn := &fakeConn{selectErr: pgx.ErrNoRows}

	if err := ensureAdminUser(context.Background(), conn, "", ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(conn.inserts) != 0 {
		t.Fatalf("blank seed config must be a no-op, got %d writes", len(conn.inserts))
	}
}
