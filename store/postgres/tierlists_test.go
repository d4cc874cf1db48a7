package postgres

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/require"

	"github.com/user/tierlist-go/model"
	"github.com/user/tierlist-go/store"
)

func sampleTierlist() *model.Tierlist {
	return &model.Tierlist{
		ID:     "tl-1",
		UserID: "user-1",
		Tiers: []model.Tier{
			{ID: 1, Name: "S", Nested: []model.TierEntry{
				{ID: "c1", Name: "Diluc", Type: "character", Weapon: "claymore",
				Nested: []model.Weapon{{ID: "w1", Name: "Wolf's Gravestone", Type: "weapon", WeaponType: "claymore"}}},
			}},
			{ID: 2, Name: "A"},
		},
	}
}

func tiersJSON(t *testing.T, tiers []model.Tier) []byte {
	t.Helper()
	b, err := json.Marshal(tiers)
	require.NoError(t, err)
	return b
}

func TestTierlistStore_Insert(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	s := NewTierlistStore(db)
	ctx := context.Background()
	tl := sampleTierlist()
	createdAt := time.Now()

	mock.ExpectQuery(`INSERT INTO tierlists \(id, user_id, tiers\)`).
		WithArgs(tl.ID, tl.UserID, tiersJSON(t, tl.Tiers)).
		WillReturnRows(pgxmock.NewRows([]string{"created_at"}).AddRow(createdAt))

	require.NoError(t, s.Insert(ctx, tl))
	require.Equal(t, createdAt, tl.CreatedAt)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTierlistStore_FindByID(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	s := NewTierlistStore(db)
	ctx := context.Background()
	tl := sampleTierlist()

	mock.ExpectQuery(`FROM tierlists WHERE id = \$1`).
		WithArgs(tl.ID).
		WillReturnRows(pgxmock.NewRows([]string{"id", "user_id", "tiers", "created_at"}).
			AddRow(tl.ID, tl.UserID, tiersJSON(t, tl.Tiers), time.Now()))

	got, err := s.FindByID(ctx, tl.ID)
	require.NoError(t, err)
	require.Equal(t, tl.UserID, got.UserID)
	require.Len(t, got.Tiers, 2)
	require.Equal(t, "Diluc", got.Tiers[0].Nested[0].Name)

	mock.ExpectQuery(`FROM tierlists WHERE id = \$1`).
		WithArgs("missing").
		WillReturnError(pgx.ErrNoRows)
	_, err = s.FindByID(ctx, "missing")
	require.ErrorIs(t, err, store.ErrNotFound)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTierlistStore_FindByOwner(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	s := NewTierlistStore(db)
	ctx := context.Background()
	tl := sampleTierlist()

	mock.ExpectQuery(`FROM tierlists WHERE user_id = \$1\s+ORDER BY created_at DESC`).
		WithArgs(tl.UserID).
		WillReturnRows(pgxmock.NewRows([]string{"id", "user_id", "tiers", "created_at"}).
			AddRow("tl-2", tl.UserID, tiersJSON(t, tl.Tiers), time.Now()).
			AddRow("tl-1", tl.UserID, tiersJSON(t, tl.Tiers), time.Now().Add(-time.Hour)))

	lists, err := s.FindByOwner(ctx, tl.UserID)
	require.NoError(t, err)
	require.Len(t, lists, 2)
	require.Equal(t, "tl-2", lists[0].ID)

	// No rows for an owner is an empty slice, not nil.
	mock.ExpectQuery(`FROM tierlists WHERE user_id = \$1`).
		WithArgs("other").
		WillReturnRows(pgxmock.NewRows([]string{"id", "user_id", "tiers", "created_at"}))
	lists, err = s.FindByOwner(ctx, "other")
	require.NoError(t, err)
	require.NotNil(t, lists)
	require.Empty(t, lists)

	require.NoError(t, mock.ExpectationsWereMet())
}
