package middleware

import (
	"strings"

	"punchclock/config"
	deliverycontext "punchclock/internal/delivery/context"
	"punchclock/internal/domain/entity"
	domainerrors "punchclock/internal/domain/errors"
	"punchclock/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const bearerPrefix = "Bearer "

// AuthMiddleware resolves the session cookie to the current user.
type AuthMiddleware struct {
	userUC     usecase.UserUsecase
	cookieName string
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(userUC usecase.UserUsecase, cfg *config.Config) *AuthMiddleware {
	return &AuthMiddleware{
		userUC:     userUC,
		cookieName: cfg.Auth.CookieName,
	}
}

// Authenticate rejects requests without a current session.
// The session token is read from the cookie, or from a Bearer header for API clients.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token := m.sessionToken(c)
		if token == "" {
			return errors.WithStack(domainerrors.ErrUnauthenticated)
		}

		user, err := m.userUC.ResolveSession(c.Request().Context(), token)
		if err != nil {
			return errors.WithStack(err)
		}

		deliverycontext.SetUser(c, user)

		return next(c)
	}
}

func (m *AuthMiddleware) sessionToken(c echo.Context) string {
	if cookie, err := c.Cookie(m.cookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if token, ok := strings.CutPrefix(header, bearerPrefix); ok {
		return strings.TrimSpace(token)
	}

	return ""
}

// CurrentUser returns the user set by Authenticate.
func CurrentUser(c echo.Context) (*entity.User, error) {
	user := deliverycontext.GetUser(c)
	if user == nil {
		return nil, errors.WithStack(domainerrors.ErrUnauthenticated)
	}

	return user, nil
}
