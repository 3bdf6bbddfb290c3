package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SessionClaims are the claims carried by a session cookie.
type SessionClaims struct {
	SessionID string `json:"sid"`
	jwt.RegisteredClaims
}

// SessionTokenService signs and verifies the token stored in the session cookie.
// The token only carries the opaque session id; whether that id is still
// current is decided by the user store.
type SessionTokenService interface {
	// Issue signs a token for the given session id.
	Issue(sessionID string) (token string, expiresAt time.Time, err error)

	// Parse verifies the signature and expiry and returns the session id.
	Parse(token string) (string, error)

	// TTL returns how long issued tokens stay valid.
	TTL() time.Duration
}
