package auth

import (
	"net/http"

	"github.com/user/tierlist-go/apperror"
	"github.com/user/tierlist-go/config"
)

// loginRequiredMessage is the single message used for every rejected
// session: missing cookie, bad signature, expired or malformed token.
const loginRequiredMessage = "You have to login before doing that"

// SessionMiddleware verifies the session cookie and puts the decoded
// claims into the request context. All failure modes answer the same 401.
func SessionMiddleware(cfg *config.AuthConfig) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(sessionCookieName)
			if err != nil {
				WriteError(w, r, apperror.NewAuthError(loginRequiredMessage, nil))
				return
			}

			claims, err := VerifyToken(cfg, cookie.Value)
			if err != nil {
				WriteError(w, r, apperror.NewAuthError(loginRequiredMessage, nil))
				return
			}

			ctx := NewContextWithClaims(r.Context(), claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
