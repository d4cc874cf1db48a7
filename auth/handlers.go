package auth

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/user/tierlist-go/apperror"
	"github.com/user/tierlist-go/config"
)

// sessionCookieName is the cookie carrying the session token.
const sessionCookieName = "access_token"

// Handlers wraps the auth Service with HTTP handlers for registration,
// login and logout.
type Handlers struct {
	service *Service
	server  *config.ServerConfig
}

// NewHandlers creates the auth handlers.
func NewHandlers(service *Service, server *config.ServerConfig) *Handlers {
	return &Handlers{service: service, server: server}
}

// HandleRegister handles POST /user/register.
func (h *Handlers) HandleRegister() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			WriteError(w, r, apperror.NewBadRequestError("Invalid request body", err))
			return
		}
		defer r.Body.Close()

		user, err := h.service.Register(r.Context(), req)
		if err != nil {
			WriteError(w, r, err)
			return
		}
		WriteJSON(w, http.StatusCreated, user)
	}
}

// HandleLogin handles POST /user/login. On success it sets the http-only
// session cookie and returns the session payload.
func (h *Handlers) HandleLogin() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			WriteError(w, r, apperror.NewBadRequestError("Invalid request body", err))
			return
		}
		defer r.Body.Close()

		session, expiresAt, err := h.service.Login(r.Context(), req)
		if err != nil {
			WriteError(w, r, err)
			return
		}

		http.SetCookie(w, h.sessionCookie(session.Token, expiresAt))
		WriteJSON(w, http.StatusOK, session)
	}
}

// HandleLogout handles GET|POST /user/logout. Sessions are stateless, so
// logging out is clearing the cookie; an already issued token stays valid
// until it expires.
func (h *Handlers) HandleLogout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cookie := h.sessionCookie("", time.Time{})
		cookie.MaxAge = -1
		http.SetCookie(w, cookie)
		WriteJSON(w, http.StatusOK, apperror.StatusMessage{
			Success: true,
			Message: "Logout successful",
		})
	}
}

// sessionCookie builds the session cookie. In production the cookie is
// Secure with SameSite=None so browser clients on another origin can send
// it; elsewhere SameSite=Strict keeps local development honest.
func (h *Handlers) sessionCookie(token string, expiresAt time.Time) *http.Cookie {
	cookie := &http.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	}
	if h.server.Production {
		cookie.Secure = true
		cookie.SameSite = http.SameSiteNoneMode
	}
	if !expiresAt.IsZero() {
		cookie.Expires = expiresAt
	}
	return cookie
}

// WriteJSON serializes data to the response with the given status. Shared
// by every handler package so the Content-Type and encode-failure handling
// live in one place.
func WriteJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			http.Error(w, `{"success":false,"message":"Failed to encode response"}`, http.StatusInternalServerError)
		}
	}
}

// WriteError renders any error as a StatusMessage with the right HTTP
// status. Errors that are not *apperror.AppError become a generic internal
// failure so no raw fault detail reaches the client.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	appErr, ok := apperror.FromError(err)
	if !ok {
		appErr = apperror.NewInternalError("Something went wrong", err)
	}
	WriteJSON(w, appErr.StatusCode(), appErr.ToResponse())
}
