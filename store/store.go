// Package store defines the storage interfaces implemented by concrete
// backends, along with the sentinel errors services map to client-facing
// failures.
package store

import (
	"context"
	"errors"

	"github.com/user/tierlist-go/model"
)

// Sentinel errors shared by all store implementations.
var (
	// ErrNotFound indicates the requested record does not exist.
	ErrNotFound = errors.New("not found")

	// ErrUsernameTaken indicates a unique violation on the username.
	ErrUsernameTaken = errors.New("username taken")

	// ErrEmailTaken indicates a unique violation on the email.
	ErrEmailTaken = errors.New("email taken")
)

// UserUpdate describes a partial user update. Nil fields are left untouched.
// Password, when set, must already be hashed.
type UserUpdate struct {
	Username *string
	Email    *string
	Password *string
}

// UserStore provides persistence for user records.
type UserStore interface {
	// Insert stores a new user. Duplicate username/email surfaces as
	// ErrUsernameTaken/ErrEmailTaken via the store's unique constraints.
	Insert(ctx context.Context, u *model.User) error
	// FindByID loads a user by ID.
	FindByID(ctx context.Context, id string) (*model.User, error)
	// FindByUsername loads a user by username.
	FindByUsername(ctx context.Context, username string) (*model.User, error)
	// Update applies a partial update and returns the updated record.
	Update(ctx context.Context, id string, upd UserUpdate) (*model.User, error)
}

// TierlistStore provides persistence for tierlists.
type TierlistStore interface {
	// Insert stores a new tierlist.
	Insert(ctx context.Context, tl *model.Tierlist) error
	// FindByID loads a tierlist by ID.
	FindByID(ctx context.Context, id string) (*model.Tierlist, error)
	// FindByOwner lists all tierlists owned by the given user, newest first.
	FindByOwner(ctx context.Context, userID string) ([]model.Tierlist, error)
}
