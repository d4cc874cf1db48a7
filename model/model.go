// Package model defines the domain types shared by stores, services and
// handlers.
package model

import "time"

// User represents a registered account. The JSON projection of this struct
// is the "no-sensitive" view: the stored password hash is never serialized.
type User struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Password  string    `json:"-"` // bcrypt hash, never exposed
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// Tierlist is an ordered ranking owned by exactly one user.
type Tierlist struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Tiers     []Tier    `json:"tiers" validate:"required,dive"`
	CreatedAt time.Time `json:"created_at"`
}

// Tier is one row of a tierlist. Nested, when present, must be homogeneous:
// either all character entries or all weapon entries. That rule is enforced
// by a struct-level hook in the validation package.
type Tier struct {
	ID     int         `json:"id"`
	Name   string      `json:"name" validate:"required"`
	Color  *string     `json:"color,omitempty"`
	Nested []TierEntry `json:"nested,omitempty" validate:"omitempty,dive"`
	Modal  *bool       `json:"modal,omitempty"`
}

// TierEntry is one of two variants. A weapon entry carries weaponType; a
// character entry carries a weapon reference plus its nested weapons list.
// The variant is classified from those discriminating fields.
type TierEntry struct {
	ID   string `json:"id" validate:"required"`
	Name string `json:"name" validate:"required"`
	Type string `json:"type" validate:"required"`

	// character variant
	Weapon string   `json:"weapon,omitempty"`
	Nested []Weapon `json:"nested,omitempty" validate:"dive"`

	// weapon variant
	WeaponType string `json:"weaponType,omitempty"`
}

// Weapon is a weapon nested inside a character entry.
type Weapon struct {
	ID         string `json:"id" validate:"required"`
	Name       string `json:"name" validate:"required"`
	Type       string `json:"type" validate:"required"`
	WeaponType string `json:"weaponType" validate:"required"`
}

// EntryKind identifies the variant of a TierEntry.
type EntryKind int

const (
	// KindInvalid marks an entry that matches neither variant, or both.
	KindInvalid EntryKind = iota
	// KindCharacter is an entry with a weapon reference and nested weapons.
	KindCharacter
	// KindWeapon is an entry with a weaponType.
	KindWeapon
)

// Kind classifies the entry by its discriminating fields. A character entry
// needs the weapon reference, a nested weapons list (possibly empty, but the
// key must be present) and a type of character or weapon; a weapon entry
// needs weaponType and neither character field.
func (e *TierEntry) Kind() EntryKind {
	hasWeaponType := e.WeaponType != ""
	isCharacterShape := e.Weapon != "" && e.Nested != nil &&
		(e.Type == "character" || e.Type == "weapon")
	switch {
	case hasWeaponType && e.Weapon == "" && e.Nested == nil:
		return KindWeapon
	case !hasWeaponType && isCharacterShape:
		return KindCharacter
	default:
		return KindInvalid
	}
}
