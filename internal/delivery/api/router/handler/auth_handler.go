// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"time"

	"punchclock/config"
	"punchclock/internal/delivery/api/middleware"
	"punchclock/internal/delivery/api/response"
	"punchclock/internal/delivery/api/validator"
	"punchclock/internal/domain/entity"
	domainerrors "punchclock/internal/domain/errors"
	"punchclock/internal/infra/metrics"
	"punchclock/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	UserUC  usecase.UserUsecase
	Config  *config.Config
	Metrics *metrics.Metrics
	Logger  *slog.Logger
}

// AuthHandler serves registration, login, logout and account deletion.
type AuthHandler struct {
	userUC       usecase.UserUsecase
	cookieName   string
	cookieSecure bool
	metrics      *metrics.Metrics
	logger       *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler.
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		userUC:       params.UserUC,
		cookieName:   params.Config.Auth.CookieName,
		cookieSecure: params.Config.Auth.CookieSecure,
		metrics:      params.Metrics,
		logger:       params.Logger,
	}
}

// UserResponse is the public view of an account.
type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// LoginResponse is returned alongside the session cookie.
type LoginResponse struct {
	User      UserResponse `json:"user"`
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expires_at"`
}

func toUserResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	}
}

// Register handles the user registration request.
func (h *AuthHandler) Register(c echo.Context) error {
	var input usecase.RegisterInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "Invalid registration input")
	}

	if err := c.Validate(&input); err != nil {
		return response.BadRequestWithDetails(c, domainerrors.ErrInvalidInput.ErrorCode(), "Invalid registration input", validator.FieldErrors(err))
	}

	user, err := h.userUC.Register(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toUserResponse(user), "User registered successfully")
}

// Login handles the user login request and sets the session cookie.
func (h *AuthHandler) Login(c echo.Context) error {
	var input usecase.LoginInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "Invalid login input")
	}

	if err := c.Validate(&input); err != nil {
		return response.BadRequestWithDetails(c, domainerrors.ErrInvalidInput.ErrorCode(), "Invalid login input", validator.FieldErrors(err))
	}

	output, err := h.userUC.Login(c.Request().Context(), &input)
	if err != nil {
		h.metrics.ObserveLogin("failure")

		return errors.WithStack(err)
	}
	h.metrics.ObserveLogin("success")

	c.SetCookie(h.sessionCookie(output.Token, output.ExpiresAt))

	return response.Success(c, http.StatusOK, LoginResponse{
		User:      toUserResponse(output.User),
		Token:     output.Token,
		ExpiresAt: output.ExpiresAt,
	}, "Login successful")
}

// Logout clears the session slot and expires the cookie.
func (h *AuthHandler) Logout(c echo.Context) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return err
	}

	if err := h.userUC.Logout(c.Request().Context(), user.ID); err != nil {
		return errors.WithStack(err)
	}

	c.SetCookie(h.expiredCookie())

	return response.Success(c, http.StatusOK, nil, "Logout successful")
}

// DeleteAccount removes the current user and all of their entries.
func (h *AuthHandler) DeleteAccount(c echo.Context) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return err
	}

	if err := h.userUC.DeleteAccount(c.Request().Context(), user.ID); err != nil {
		return errors.WithStack(err)
	}

	c.SetCookie(h.expiredCookie())

	return response.Success(c, http.StatusOK, nil, "Account deleted")
}

func (h *AuthHandler) sessionCookie(token string, expiresAt time.Time) *http.Cookie {
	return &http.Cookie{
		Name:     h.cookieName,
		Value:    token,
		Path:     "/",
		Expires:  expiresAt,
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	}
}

func (h *AuthHandler) expiredCookie() *http.Cookie {
	return &http.Cookie{
		Name:     h.cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	}
}
