package model

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTierEntryKind(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		entry TierEntry
		want  EntryKind
	}{
		{
			"weapon entry",
			TierEntry{ID: "w1", Name: "Skyward Blade", Type: "weapon", WeaponType: "sword"},
			KindWeapon,
		},
		{
			"character entry",
			TierEntry{ID: "c1", Name: "Diluc", Type: "character", Weapon: "claymore",
				Nested: []Weapon{{ID: "w1", Name: "Wolf's Gravestone", Type: "weapon", WeaponType: "claymore"}}},
			KindCharacter,
		},
		{
			"character with empty nested list",
			TierEntry{ID: "c1", Name: "Diluc", Type: "character", Weapon: "claymore", Nested: []Weapon{}},
			KindCharacter,
		},
		{
			"character without a nested list",
			TierEntry{ID: "c1", Name: "Diluc", Type: "character", Weapon: "claymore"},
			KindInvalid,
		},
		{
			"character with an unknown type",
			TierEntry{ID: "c1", Name: "Diluc", Type: "boss", Weapon: "claymore", Nested: []Weapon{}},
			KindInvalid,
		},
		{
			"neither variant",
			TierEntry{ID: "x", Name: "mystery", Type: "character"},
			KindInvalid,
		},
		{
			"both variants",
			TierEntry{ID: "c1", Name: "Diluc", Type: "character", Weapon: "claymore",
				Nested: []Weapon{}, WeaponType: "sword"},
			KindInvalid,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, tc.entry.Kind())
		})
	}
}
