package validation

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/user/tierlist-go/apperror"
	"github.com/user/tierlist-go/model"
)

type registerPayload struct {
	Username string `validate:"required,min=3"`
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=6,max=50"`
}

type updatePayload struct {
	Username *string `validate:"omitempty,min=3"`
	Email    *string `validate:"omitempty,email"`
	Password *string `validate:"omitempty,min=6,max=50"`
}

func strPtr(s string) *string { return &s }

func TestStruct_UserRules(t *testing.T) {
	t.Parallel()

	require.NoError(t, Struct(registerPayload{Username: "alice", Email: "a@x.com", Password: "secret1"}))

	cases := []struct {
		name    string
		payload registerPayload
		message string
	}{
		{"short username", registerPayload{Username: "ab", Email: "a@x.com", Password: "secret1"},
			"Username must be at least 3 characters"},
		{"bad email", registerPayload{Username: "alice", Email: "not-an-email", Password: "secret1"},
			"Email must be a valid email address"},
		{"short password", registerPayload{Username: "alice", Email: "a@x.com", Password: "short"},
			"Password must be at least 6 characters"},
		{"long password", registerPayload{Username: "alice", Email: "a@x.com",
			Password: "0123456789012345678901234567890123456789012345678901"},
			"Password must not contain more than 50 characters"},
		{"missing username", registerPayload{Email: "a@x.com", Password: "secret1"},
			"Username is required"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := Struct(tc.payload)
			require.True(t, apperror.IsValidationError(err))
			appErr, ok := apperror.FromError(err)
			require.True(t, ok)
			require.Equal(t, tc.message, appErr.Message)
		})
	}
}

func TestStruct_PartialUpdateSkipsAbsentFields(t *testing.T) {
	t.Parallel()

	// All fields absent: nothing to validate.
	require.NoError(t, Struct(updatePayload{}))

	// Present fields still follow the full-schema rules.
	require.NoError(t, Struct(updatePayload{Password: strPtr("newpass1")}))
	require.Error(t, Struct(updatePayload{Password: strPtr("short")}))
	require.Error(t, Struct(updatePayload{Username: strPtr("ab")}))
	require.Error(t, Struct(updatePayload{Email: strPtr("nope")}))
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

func TestStruct_TierVariants(t *testing.T) {
	t.Parallel()

	t.Run("homogeneous tiers pass", func(t *testing.T) {
		tl := model.Tierlist{
			ID:     "t1",
			UserID: "u1",
			Tiers: []model.Tier{
				{ID: 1, Name: "S", Nested: []model.TierEntry{characterEntry("c1"), characterEntry("c2")}},
				{ID: 2, Name: "A", Nested: []model.TierEntry{weaponEntry("w1"), weaponEntry("w2")}},
				{ID: 3, Name: "B"}, // empty tier is fine
			},
		}
		require.NoError(t, Struct(tl))
	})

	t.Run("mixed tier rejected", func(t *testing.T) {
		tl := model.Tierlist{
			ID:     "t1",
			UserID: "u1",
			Tiers: []model.Tier{
				{ID: 1, Name: "S", Nested: []model.TierEntry{characterEntry("c1"), weaponEntry("w1")}},
			},
		}
		err := Struct(tl)
		require.True(t, apperror.IsValidationError(err))
	})

	t.Run("entry matching neither variant rejected", func(t *testing.T) {
		tl := model.Tierlist{
			ID:     "t1",
			UserID: "u1",
			Tiers: []model.Tier{
				{ID: 1, Name: "S", Nested: []model.TierEntry{{ID: "x", Name: "mystery"}}},
			},
		}
		require.True(t, apperror.IsValidationError(Struct(tl)))
	})

	t.Run("entry matching both variants rejected", func(t *testing.T) {
		both := characterEntry("c1")
		both.WeaponType = "sword"
		tl := model.Tierlist{
			ID:     "t1",
			UserID: "u1",
			Tiers:  []model.Tier{{ID: 1, Name: "S", Nested: []model.TierEntry{both}}},
		}
		require.True(t, apperror.IsValidationError(Struct(tl)))
	})

	t.Run("entry without id or name rejected", func(t *testing.T) {
		tl := model.Tierlist{
			ID:     "t1",
			UserID: "u1",
			Tiers: []model.Tier{
				{ID: 1, Name: "S", Nested: []model.TierEntry{{Type: "weapon", WeaponType: "sword"}}},
			},
		}
		require.True(t, apperror.IsValidationError(Struct(tl)))
	})

	t.Run("nested weapon missing its fields rejected", func(t *testing.T) {
		entry := characterEntry("c1")
		entry.Nested = []model.Weapon{{ID: "w1", Name: "Wolf's Gravestone", Type: "weapon"}}
		tl := model.Tierlist{
			ID:     "t1",
			UserID: "u1",
			Tiers:  []model.Tier{{ID: 1, Name: "S", Nested: []model.TierEntry{entry}}},
		}
		require.True(t, apperror.IsValidationError(Struct(tl)))
	})

	t.Run("character without a nested list rejected", func(t *testing.T) {
		entry := characterEntry("c1")
		entry.Nested = nil
		tl := model.Tierlist{
			ID:     "t1",
			UserID: "u1",
			Tiers:  []model.Tier{{ID: 1, Name: "S", Nested: []model.TierEntry{entry}}},
		}
		require.True(t, apperror.IsValidationError(Struct(tl)))
	})

	t.Run("character with an unknown type rejected", func(t *testing.T) {
		entry := characterEntry("c1")
		entry.Type = "boss"
		tl := model.Tierlist{
			ID:     "t1",
			UserID: "u1",
			Tiers:  []model.Tier{{ID: 1, Name: "S", Nested: []model.TierEntry{entry}}},
		}
		require.True(t, apperror.IsValidationError(Struct(tl)))
	})

	t.Run("tier without name rejected", func(t *testing.T) {
		tl := model.Tierlist{
			ID:     "t1",
			UserID: "u1",
			Tiers:  []model.Tier{{ID: 1}},
		}
		require.True(t, apperror.IsValidationError(Struct(tl)))
	})
}
