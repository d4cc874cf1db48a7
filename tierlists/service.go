// Package tierlists implements saving and fetching tierlists. Saving and
// listing are tied to the session identity; fetching by id is public.
package tierlists

import (
	"context"
	"errors"

	"github.com/gofrs/uuid/v5"
	"go.uber.org/zap"

	"github.com/user/tierlist-go/apperror"
	"github.com/user/tierlist-go/model"
	"github.com/user/tierlist-go/store"
	"github.com/user/tierlist-go/validation"
)

// SaveRequest is the payload for POST /tierlist. Owner and id are assigned
// server-side, never taken from the client.
type SaveRequest struct {
	Tiers []model.Tier `json:"tiers" validate:"required,dive"`
}

// Service provides tierlist operations on top of the tierlist store.
type Service struct {
	tierlists store.TierlistStore
	logger    *zap.Logger
}

// NewService constructs the tierlists service.
func NewService(tierlists store.TierlistStore, logger *zap.Logger) *Service {
	return &Service{tierlists: tierlists, logger: logger}
}

// Save validates the tierlist shape and persists it under the given owner.
// Nothing reaches the store unless the whole payload validates, including
// the per-tier variant homogeneity rule.
func (s *Service) Save(ctx context.Context, userID string, req SaveRequest) (*model.Tierlist, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	id, err := uuid.NewV4()
	if err != nil {
		return nil, apperror.NewInternalError("Failed to save tierlist", err)
	}

	tl := &model.Tierlist{
		ID:     id.String(),
		UserID: userID,
		Tiers:  req.Tiers,
	}
	if err := s.tierlists.Insert(ctx, tl); err != nil {
		s.logger.Error("insert tierlist", zap.Error(err))
		return nil, apperror.NewDatabaseError("Failed to save tierlist", err)
	}
	return tl, nil
}

// List returns all tierlists owned by the given user. The result is never
// nil, so an owner without tierlists serializes as an empty array.
func (s *Service) List(ctx context.Context, userID string) ([]model.Tierlist, error) {
	lists, err := s.tierlists.FindByOwner(ctx, userID)
	if err != nil {
		s.logger.Error("list tierlists", zap.Error(err))
		return nil, apperror.NewDatabaseError("Failed to list tierlists", err)
	}
	if lists == nil {
		lists = make([]model.Tierlist, 0)
	}
	return lists, nil
}

// Get returns a single tierlist by id, whoever owns it.
func (s *Service) Get(ctx context.Context, id string) (*model.Tierlist, error) {
	tl, err := s.tierlists.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, apperror.NewNotFoundError("Tierlist doesn't exist", nil)
		}
		s.logger.Error("get tierlist", zap.Error(err))
		return nil, apperror.NewDatabaseError("Failed to get tierlist", err)
	}
	return tl, nil
}
