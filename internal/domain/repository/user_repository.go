// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"punchclock/internal/domain/entity"
	"punchclock/internal/errors"

	"github.com/google/uuid"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address, case-insensitively.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindBySessionID resolves an opaque session id to the user holding it.
	FindBySessionID(ctx context.Context, sessionID string) (*entity.User, error)

	// Create persists a new user entity to the storage. A taken email yields
	// domain errors.ErrUserAlreadyExists.
	Create(ctx context.Context, user *entity.User) error

	// UpdateSessionID overwrites the user's session slot. A nil id logs the user out.
	UpdateSessionID(ctx context.Context, id uuid.UUID, sessionID *string) error

	// Delete removes the user; their time entries are removed with them.
	Delete(ctx context.Context, id uuid.UUID) error
}
