package usecase

import (
	"context"
	"time"

	"punchclock/internal/domain/entity"

	"github.com/google/uuid"
)

// RegisterInput defines the data required to register a new user.
type RegisterInput struct {
	Email    string `json:"email" validate:"required,email,max=254"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginOutput carries the signed session token for the cookie.
type LoginOutput struct {
	Token     string
	ExpiresAt time.Time
	User      *entity.User
}

// UserUsecase defines the account operations.
type UserUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*entity.User, error)
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
	Logout(ctx context.Context, userID uuid.UUID) error
	// ResolveSession maps a session token to its user. Any failure is ErrUnauthenticated.
	ResolveSession(ctx context.Context, token string) (*entity.User, error)
	DeleteAccount(ctx context.Context, userID uuid.UUID) error
}
