package auth

import (
	"crypto/subtle"
	"net/http"

	"github.com/user/tierlist-go/apperror"
	"github.com/user/tierlist-go/config"
)

// accessKeyHeader is the shared-secret header checked before any routing.
const accessKeyHeader = "x-access-key"

// AccessGate rejects every request whose x-access-key header does not match
// the configured shared secret. This is a coarse API-wide gate, orthogonal
// to per-user sessions; it applies to public routes too.
func AccessGate(cfg *config.AuthConfig) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := r.Header.Get(accessKeyHeader)
			if subtle.ConstantTimeCompare([]byte(key), []byte(cfg.AccessKey)) != 1 {
				WriteError(w, r, apperror.NewForbiddenError("API access denied", nil))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
