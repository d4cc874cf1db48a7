package users

import (
	"encoding/json"
	"net/http"

	"github.com/user/tierlist-go/apperror"
	"github.com/user/tierlist-go/auth"
)

// Handlers provides the HTTP handlers for the /user/me routes. Both routes
// sit behind the session middleware, which put the claims in the context.
type Handlers struct {
	service *Service
}

// NewHandlers creates the users handlers.
func NewHandlers(service *Service) *Handlers {
	return &Handlers{service: service}
}

// HandleMe handles GET /user/me.
func (h *Handlers) HandleMe() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := auth.ClaimsFromContext(r.Context())
		if !ok {
			auth.WriteError(w, r, apperror.NewAuthError("You have to login before doing that", nil))
			return
		}

		user, err := h.service.Me(r.Context(), claims.UserID)
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}
		auth.WriteJSON(w, http.StatusOK, user)
	}
}

// HandleUpdateMe handles PATCH /user/me.
func (h *Handlers) HandleUpdateMe() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := auth.ClaimsFromContext(r.Context())
		if !ok {
			auth.WriteError(w, r, apperror.NewAuthError("You have to login before doing that", nil))
			return
		}

		var req UpdateUserRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			auth.WriteError(w, r, apperror.NewBadRequestError("Invalid request body", err))
			return
		}
		defer r.Body.Close()

		user, err := h.service.Update(r.Context(), claims.UserID, req)
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}
		auth.WriteJSON(w, http.StatusOK, user)
	}
}
