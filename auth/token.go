// Package auth is responsible for authentication: registration, login,
// session token issuance and verification, the session middleware, and the
// API access gate.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/user/tierlist-go/config"
)

// ErrInvalidSession is returned by VerifyToken for every failure mode:
// missing, tampered, expired or malformed tokens. Callers must not be able
// to distinguish these cases.
var ErrInvalidSession = errors.New("invalid session")

// SessionClaims is the payload of a session token.
type SessionClaims struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// IssueToken mints a signed HS256 session token for the given identity,
// valid for the configured session duration. It returns the token and its
// expiry time.
func IssueToken(cfg *config.AuthConfig, userID, username string) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(cfg.SessionDuration)
	claims := &SessionClaims{
		UserID:   userID,
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    "tierlist-api",
			Subject:   userID,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(cfg.JWTSecret))
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}
	return tokenString, expiresAt, nil
}

// VerifyToken checks signature integrity and expiry and returns the decoded
// claims. Every invalid token, whatever the reason, yields ErrInvalidSession.
func VerifyToken(cfg *config.AuthConfig, tokenString string) (*SessionClaims, error) {
	claims := &SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(cfg.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidSession
	}
	if claims.UserID == "" {
		return nil, ErrInvalidSession
	}
	return claims, nil
}
