package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/gofrs/uuid/v5"
	"go.uber.org/zap"

	"github.com/user/tierlist-go/apperror"
	"github.com/user/tierlist-go/config"
	"github.com/user/tierlist-go/crypto"
	"github.com/user/tierlist-go/model"
	"github.com/user/tierlist-go/store"
	"github.com/user/tierlist-go/validation"
)

// invalidCredentialsMessage is shared by the unknown-user and wrong-password
// paths so login failures reveal nothing about which part was wrong.
const invalidCredentialsMessage = "Username or Password is invalid"

// defaultRole is assigned to every newly registered user.
const defaultRole = "user"

// Service implements registration and login on top of the user store.
type Service struct {
	users  store.UserStore
	cfg    config.AuthConfig
	logger *zap.Logger
}

// NewService constructs the auth service with its dependencies.
func NewService(users store.UserStore, cfg config.AuthConfig, logger *zap.Logger) *Service {
	return &Service{users: users, cfg: cfg, logger: logger}
}

// Register validates the payload, hashes the password and persists the new
// user. The returned record serializes without the password hash.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (*model.User, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	hashed, err := crypto.Hash(req.Password, s.cfg.BcryptCost)
	if err != nil {
		return nil, apperror.NewInternalError("Registration failed", err)
	}
	id, err := uuid.NewV4()
	if err != nil {
		return nil, apperror.NewInternalError("Registration failed", err)
	}

	user := &model.User{
		ID:       id.String(),
		Username: req.Username,
		Email:    strings.ToLower(req.Email),
		Password: hashed,
		Role:     defaultRole,
	}

	if err := s.users.Insert(ctx, user); err != nil {
		switch {
		case errors.Is(err, store.ErrUsernameTaken):
			return nil, apperror.NewConflictError("The Username is already taken", nil)
		case errors.Is(err, store.ErrEmailTaken):
			return nil, apperror.NewConflictError("The Email is already taken", nil)
		default:
			s.logger.Error("insert user", zap.Error(err))
			return nil, apperror.NewDatabaseError("Registration failed", err)
		}
	}
	return user, nil
}

// Login verifies the credentials and issues a session. Unknown usernames
// and wrong passwords fail with the same message.
func (s *Service) Login(ctx context.Context, req LoginRequest) (*SessionResponse, time.Time, error) {
	if err := validation.Struct(req); err != nil {
		return nil, time.Time{}, apperror.NewBadRequestError(invalidCredentialsMessage, nil)
	}

	user, err := s.users.FindByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, time.Time{}, apperror.NewBadRequestError(invalidCredentialsMessage, nil)
		}
		s.logger.Error("find user by username", zap.Error(err))
		return nil, time.Time{}, apperror.NewDatabaseError("Login failed", err)
	}

	if !crypto.Verify(req.Password, user.Password) {
		return nil, time.Time{}, apperror.NewBadRequestError(invalidCredentialsMessage, nil)
	}

	token, expiresAt, err := IssueToken(&s.cfg, user.ID, user.Username)
	if err != nil {
		return nil, time.Time{}, apperror.NewInternalError("Login failed", err)
	}

	return &SessionResponse{
		ID:       user.ID,
		Username: user.Username,
		Token:    token,
	}, expiresAt, nil
}
