package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"punchclock/config"
	"punchclock/internal/domain/service"
	"punchclock/internal/errors"
)

// ErrInvalidSessionToken is returned for any token that fails verification.
var ErrInvalidSessionToken = errors.New("invalid session token")

// jwtSessionService signs session ids into HS256 tokens.
type jwtSessionService struct {
	secret []byte
	issuer string
	ttl    time.Duration
	clock  service.Clock
}

// NewSessionTokenService is the constructor for the cookie token service.
func NewSessionTokenService(cfg *config.Config, clock service.Clock) (service.SessionTokenService, error) {
	if cfg.SecretKey.Session == "" {
		return nil, errors.New("session secret must be provided")
	}

	return &jwtSessionService{
		secret: []byte(cfg.SecretKey.Session),
		issuer: cfg.Env.ServiceName,
		ttl:    cfg.Auth.SessionTTL,
		clock:  clock,
	}, nil
}

// Issue signs a token for the given session id.
func (s *jwtSessionService) Issue(sessionID string) (string, time.Time, error) {
	now := s.clock.Now()
	expiresAt := now.Add(s.ttl)

	claims := service.SessionClaims{
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, errors.Wrap(err, "sign session token")
	}

	return token, expiresAt, nil
}

// Parse verifies the signature and expiry and returns the session id.
func (s *jwtSessionService) Parse(tokenString string) (string, error) {
	claims := &service.SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.clock.Now),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !token.Valid {
		return "", errors.Wrap(ErrInvalidSessionToken, "parse session token")
	}

	if claims.SessionID == "" {
		return "", errors.Wrap(ErrInvalidSessionToken, "missing sid claim")
	}

	return claims.SessionID, nil
}

// TTL returns how long issued tokens stay valid.
func (s *jwtSessionService) TTL() time.Duration {
	return s.ttl
}
