// Package postgres contains the PostgreSQL implementations of the store
// interfaces.
package postgres

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/user/tierlist-go/store"
)

// PgxPool is a minimal abstraction over a Postgres connection pool, used by
// the stores. It is implemented by *pgxpool.Pool and pgxmock.PgxPoolIface.
type PgxPool interface {
	// Exec executes a SQL command and returns the command tag.
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	// Query executes a SELECT and returns a rows iterator.
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	// QueryRow executes a query expected to return at most one row.
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	// Close shuts down the pool and frees resources.
	Close()
}

// DB wraps a PgxPool to satisfy store constructors and allow testing.
type DB struct{ Pool PgxPool }

// New wraps an established pgx pool.
func New(pool *pgxpool.Pool) *DB {
	return &DB{Pool: pool}
}

// Close closes the underlying pool.
func (db *DB) Close() { db.Pool.Close() }

const pgUniqueViolation = "23505"

// uniqueViolationError maps a unique constraint violation to the matching
// store sentinel by constraint name, or returns nil for other errors.
func uniqueViolationError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != pgUniqueViolation {
		return nil
	}
	if strings.Contains(pgErr.ConstraintName, "username") {
		return store.ErrUsernameTaken
	}
	if strings.Contains(pgErr.ConstraintName, "email") {
		return store.ErrEmailTaken
	}
	return nil
}
