// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is an account that owns time entries.
// A user holds at most one login session at a time: SessionID is overwritten
// on every login and cleared on logout.
type User struct {
	ID           uuid.UUID // The Global Unique Identifier (GUID) for the user.
	Email        string    // Lower-cased login email, unique across users.
	PasswordHash string    // bcrypt hash of the user's password.
	SessionID    *string   // Opaque id of the current login session, nil when logged out.
	CreatedAt    time.Time // Timestamp of when this user account was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this user's data.
}

// HasSession reports whether the user currently holds the given session id.
func (u *User) HasSession(sessionID string) bool {
	return u.SessionID != nil && sessionID != "" && *u.SessionID == sessionID
}
