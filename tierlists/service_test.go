package tierlists

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/user/tierlist-go/apperror"
	"github.com/user/tierlist-go/model"
	"github.com/user/tierlist-go/store/memory"
)

func newTestService() (*Service, *memory.TierlistStore) {
	tierlists := memory.NewTierlistStore()
	return NewService(tierlists, zap.NewNop()), tierlists
}

func characterEntry(id string) model.TierEntry {
	return model.TierEntry{
		ID:     id,
		Name:   "Diluc",
		Type:   "character",
		Weapon: "claymore",
		Nested: []model.Weapon{
			{ID: "w1", Name: "Wolf's Gravestone", Type: "weapon", WeaponType: "claymore"},
		},
	}
}

func weaponEntry(id string) model.TierEntry {
	return model.TierEntry{
		ID:         id,
		Name:       "Skyward Blade",
		Type:       "weapon",
		WeaponType: "sword",
	}
}

func validTiers() []model.Tier {
	return []model.Tier{
		{ID: 1, Name: "S", Nested: []model.TierEntry{characterEntry("c1")}},
		{ID: 2, Name: "A", Nested: []model.TierEntry{weaponEntry("w1")}},
	}
}

func TestSave_AssignsIDAndOwner(t *testing.T) {
	t.Parallel()
	svc, tierlists := newTestService()
	ctx := context.Background()

	saved, err := svc.Save(ctx, "owner-1", SaveRequest{Tiers: validTiers()})
	require.NoError(t, err)
	require.NotEmpty(t, saved.ID)
	require.Equal(t, "owner-1", saved.UserID)

	stored, err := tierlists.FindByID(ctx, saved.ID)
	require.NoError(t, err)
	require.Equal(t, "owner-1", stored.UserID)
	require.Len(t, stored.Tiers, 2)
}

func TestSave_InvalidShapeNeverPersisted(t *testing.T) {
	t.Parallel()
	svc, tierlists := newTestService()
	ctx := context.Background()

	cases := map[string]SaveRequest{
		"no tiers": {},
		"mixed variants in one tier": {Tiers: []model.Tier{
			{ID: 1, Name: "S", Nested: []model.TierEntry{characterEntry("c1"), weaponEntry("w1")}},
		}},
		"tier without name": {Tiers: []model.Tier{{ID: 1}}},
		"entry without id or name": {Tiers: []model.Tier{
			{ID: 1, Name: "S", Nested: []model.TierEntry{{Type: "weapon", WeaponType: "sword"}}},
		}},
	}

	for name, req := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := svc.Save(ctx, "owner-1", req)
			require.True(t, apperror.IsValidationError(err))
		})
	}

	require.Zero(t, tierlists.Len(), "rejected tierlists must not reach the store")
}

func TestList_NewestFirstAndNeverNil(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService()
	ctx := context.Background()

	lists, err := svc.List(ctx, "owner-1")
	require.NoError(t, err)
	require.NotNil(t, lists)
	require.Empty(t, lists)

	first, err := svc.Save(ctx, "owner-1", SaveRequest{Tiers: validTiers()})
	require.NoError(t, err)
	second, err := svc.Save(ctx, "owner-1", SaveRequest{Tiers: validTiers()})
	require.NoError(t, err)
	_, err = svc.Save(ctx, "owner-2", SaveRequest{Tiers: validTiers()})
	require.NoError(t, err)

	lists, err = svc.List(ctx, "owner-1")
	require.NoError(t, err)
	require.Len(t, lists, 2, "only the owner's tierlists are listed")
	require.Equal(t, second.ID, lists[0].ID)
	require.Equal(t, first.ID, lists[1].ID)
}

func TestGet(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService()
	ctx := context.Background()

	saved, err := svc.Save(ctx, "owner-1", SaveRequest{Tiers: validTiers()})
	require.NoError(t, err)

	got, err := svc.Get(ctx, saved.ID)
	require.NoError(t, err)
	require.Equal(t, saved.ID, got.ID)

	_, err = svc.Get(ctx, "missing")
	require.True(t, apperror.IsNotFound(err))

	appErr, ok := apperror.FromError(err)
	require.True(t, ok)
	require.Equal(t, "Tierlist doesn't exist", appErr.Message)
}
