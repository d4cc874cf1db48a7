package users

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/user/tierlist-go/apperror"
	"github.com/user/tierlist-go/config"
	"github.com/user/tierlist-go/crypto"
	"github.com/user/tierlist-go/model"
	"github.com/user/tierlist-go/store"
	"github.com/user/tierlist-go/validation"
)

// Service provides profile operations on top of the user store.
type Service struct {
	users  store.UserStore
	cfg    config.AuthConfig
	logger *zap.Logger
}

// NewService constructs the users service.
func NewService(users store.UserStore, cfg config.AuthConfig, logger *zap.Logger) *Service {
	return &Service{users: users, cfg: cfg, logger: logger}
}

// Me returns the profile of the user with the given id.
func (s *Service) Me(ctx context.Context, userID string) (*model.User, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, apperror.NewNotFoundError("User not found", nil)
		}
		s.logger.Error("find user by id", zap.Error(err))
		return nil, apperror.NewDatabaseError("Failed to get user", err)
	}
	return user, nil
}

// Update applies a partial profile update. A new password is re-hashed
// before it is stored; the old password stops verifying from then on.
func (s *Service) Update(ctx context.Context, userID string, req UpdateUserRequest) (*model.User, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	upd := store.UserUpdate{Username: req.Username}
	if req.Email != nil {
		email := strings.ToLower(*req.Email)
		upd.Email = &email
	}
	if req.Password != nil {
		hashed, err := crypto.Hash(*req.Password, s.cfg.BcryptCost)
		if err != nil {
			return nil, apperror.NewInternalError("Failed to update user", err)
		}
		upd.Password = &hashed
	}

	user, err := s.users.Update(ctx, userID, upd)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			return nil, apperror.NewNotFoundError("User not found", nil)
		case errors.Is(err, store.ErrUsernameTaken):
			return nil, apperror.NewConflictError("The Username is already taken", nil)
		case errors.Is(err, store.ErrEmailTaken):
			return nil, apperror.NewConflictError("The Email is already taken", nil)
		default:
			s.logger.Error("update user", zap.Error(err))
			return nil, apperror.NewDatabaseError("Failed to update user", err)
		}
	}
	return user, nil
}
