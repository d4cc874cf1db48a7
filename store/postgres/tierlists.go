package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/user/tierlist-go/model"
	"github.com/user/tierlist-go/store"
)

// TierlistStore implements store.TierlistStore using PostgreSQL. Tiers are
// stored as a JSONB document alongside the owning user id.
type TierlistStore struct{ db *DB }

// NewTierlistStore constructs a tierlist store.
func NewTierlistStore(db *DB) *TierlistStore { return &TierlistStore{db: db} }

// Insert stores a new tierlist row.
func (s *TierlistStore) Insert(ctx context.Context, tl *model.Tierlist) error {
	tiers, err := json.Marshal(tl.Tiers)
	if err != nil {
		return fmt.Errorf("marshal tiers: %w", err)
	}
	const q = `
INSERT INTO tierlists (id, user_id, tiers)
VALUES ($1, $2, $3)
RETURNING created_at`
	return s.db.Pool.QueryRow(ctx, q, tl.ID, tl.UserID, tiers).Scan(&tl.CreatedAt)
}

// FindByID selects a tierlist by ID.
func (s *TierlistStore) FindByID(ctx context.Context, id string) (*model.Tierlist, error) {
	const q = `
SELECT id, user_id, tiers, created_at
FROM tierlists WHERE id = $1`
	var tl model.Tierlist
	var tiers []byte
	err := s.db.Pool.QueryRow(ctx, q, id).Scan(&tl.ID, &tl.UserID, &tiers, &tl.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, store.ErrNotFound
		}
		return nil, err
	}
	if err := json.Unmarshal(tiers, &tl.Tiers); err != nil {
		return nil, fmt.Errorf("unmarshal tiers: %w", err)
	}
	return &tl, nil
}

// FindByOwner lists all tierlists owned by userID, newest first.
func (s *TierlistStore) FindByOwner(ctx context.Context, userID string) ([]model.Tierlist, error) {
	const q = `
SELECT id, user_id, tiers, created_at
FROM tierlists WHERE user_id = $1
ORDER BY created_at DESC`
	rows, err := s.db.Pool.Query(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	lists := make([]model.Tierlist, 0)
	for rows.Next() {
		var tl model.Tierlist
		var tiers []byte
		if err := rows.Scan(&tl.ID, &tl.UserID, &tiers, &tl.CreatedAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(tiers, &tl.Tiers); err != nil {
			return nil, fmt.Errorf("unmarshal tiers: %w", err)
		}
		lists = append(lists, tl)
	}
	return lists, rows.Err()
}
