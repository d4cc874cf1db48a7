package tierlists

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/user/tierlist-go/apperror"
	"github.com/user/tierlist-go/auth"
)

// Handlers provides the HTTP handlers for the /tierlist routes.
type Handlers struct {
	service *Service
}

// NewHandlers creates the tierlist handlers.
func NewHandlers(service *Service) *Handlers {
	return &Handlers{service: service}
}

// HandleSave handles POST /tierlist. Requires a session; ownership comes
// from the session claims.
func (h *Handlers) HandleSave() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := auth.ClaimsFromContext(r.Context())
		if !ok {
			auth.WriteError(w, r, apperror.NewAuthError("You have to login before doing that", nil))
			return
		}

		var req SaveRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			auth.WriteError(w, r, apperror.NewNotFoundError("Tierlist is invalid", err))
			return
		}
		defer r.Body.Close()

		tl, err := h.service.Save(r.Context(), claims.UserID, req)
		if err != nil {
			// Route contract: a tierlist that fails validation answers 404,
			// unlike the 400 used by the user payloads.
			if apperror.IsValidationError(err) {
				err = apperror.NewNotFoundError("Tierlist is invalid", err)
			}
			auth.WriteError(w, r, err)
			return
		}

		auth.WriteJSON(w, http.StatusOK, tl)
	}
}

// HandleList handles GET /tierlist, listing the caller's tierlists.
func (h *Handlers) HandleList() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := auth.ClaimsFromContext(r.Context())
		if !ok {
			auth.WriteError(w, r, apperror.NewAuthError("You have to login before doing that", nil))
			return
		}

		lists, err := h.service.List(r.Context(), claims.UserID)
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}
		auth.WriteJSON(w, http.StatusOK, lists)
	}
}

// HandleGet handles GET /tierlist/{id}. Public: any valid API client can
// fetch a tierlist by id without a session.
func (h *Handlers) HandleGet() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tl, err := h.service.Get(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}
		auth.WriteJSON(w, http.StatusOK, tl)
	}
}
