package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/user/tierlist-go/model"
	"github.com/user/tierlist-go/store"
)

// UserStore implements store.UserStore using PostgreSQL.
type UserStore struct{ db *DB }

// NewUserStore constructs a user store.
func NewUserStore(db *DB) *UserStore { return &UserStore{db: db} }

// Insert stores a new user row. Uniqueness of username and email is owned
// by the table constraints, not by a pre-insert check, so two concurrent
// registrations with the same username cannot both succeed.
func (s *UserStore) Insert(ctx context.Context, u *model.User) error {
	const q = `
INSERT INTO users (id, username, email, password, role)
VALUES ($1, $2, $3, $4, $5)
RETURNING created_at`
	err := s.db.Pool.QueryRow(ctx, q, u.ID, u.Username, u.Email, u.Password, u.Role).Scan(&u.CreatedAt)
	if err != nil {
		if sentinel := uniqueViolationError(err); sentinel != nil {
			return sentinel
		}
		return err
	}
	return nil
}

// FindByID selects a user by ID.
func (s *UserStore) FindByID(ctx context.Context, id string) (*model.User, error) {
	const q = `
SELECT id, username, email, password, role, created_at
FROM users WHERE id = $1`
	return s.scanUser(s.db.Pool.QueryRow(ctx, q, id))
}

// FindByUsername selects a user by username.
func (s *UserStore) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	const q = `
SELECT id, username, email, password, role, created_at
FROM users WHERE username = $1`
	return s.scanUser(s.db.Pool.QueryRow(ctx, q, username))
}

// Update applies the non-nil fields of upd and returns the updated row.
func (s *UserStore) Update(ctx context.Context, id string, upd store.UserUpdate) (*model.User, error) {
	var setClauses []string
	var args []any
	argID := 1

	if upd.Username != nil {
		setClauses = append(setClauses, fmt.Sprintf("username = $%d", argID))
		args = append(args, *upd.Username)
		argID++
	}
	if upd.Email != nil {
		setClauses = append(setClauses, fmt.Sprintf("email = $%d", argID))
		args = append(args, *upd.Email)
		argID++
	}
	if upd.Password != nil {
		setClauses = append(setClauses, fmt.Sprintf("password = $%d", argID))
		args = append(args, *upd.Password)
		argID++
	}

	if len(setClauses) == 0 {
		return s.FindByID(ctx, id)
	}

	args = append(args, id)
	q := fmt.Sprintf(`
UPDATE users SET %s WHERE id = $%d
RETURNING id, username, email, password, role, created_at`,
		strings.Join(setClauses, ", "), argID)

	u, err := s.scanUser(s.db.Pool.QueryRow(ctx, q, args...))
	if err != nil {
		if sentinel := uniqueViolationError(err); sentinel != nil {
			return nil, sentinel
		}
		return nil, err
	}
	return u, nil
}

func (s *UserStore) scanUser(row pgx.Row) (*model.User, error) {
	var u model.User
	err := row.Scan(&u.ID, &u.Username, &u.Email, &u.Password, &u.Role, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, store.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}
