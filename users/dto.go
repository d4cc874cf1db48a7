// Package users implements profile retrieval and partial profile updates
// for the authenticated user.
package users

// UpdateUserRequest is the partial-update payload for PATCH /user/me.
// Pointer fields distinguish "absent" from "set"; absent fields keep their
// stored values, present ones are validated with the registration rules.
type UpdateUserRequest struct {
	Username *string `json:"username,omitempty" validate:"omitempty,min=3"`
	Email    *string `json:"email,omitempty" validate:"omitempty,email"`
	Password *string `json:"password,omitempty" validate:"omitempty,min=6,max=50"`
}
