// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// ClockInInput defines the data required to open a work session.
type ClockInInput struct {
	UserID   uuid.UUID
	Timezone string
}

// ClockOutInput defines the data required to close the open work session.
// Automatic closes skip the blackout check.
type ClockOutInput struct {
	UserID    uuid.UUID
	Automatic bool
}

// --- Output DTOs ---

// ClockInOutput describes the newly opened entry.
type ClockInOutput struct {
	ID        uuid.UUID `json:"id"`
	StartTime time.Time `json:"start_time"`
}

// ClockOutOutput describes the closed entry.
type ClockOutOutput struct {
	ID            uuid.UUID `json:"id"`
	StartTime     time.Time `json:"start_time"`
	EndTime       time.Time `json:"end_time"`
	DurationHours float64   `json:"duration_hours"`
}

// CurrentSession describes the open entry as seen at read time.
type CurrentSession struct {
	StartTime      time.Time `json:"start_time"`
	Timezone       string    `json:"timezone"`
	ElapsedSeconds int64     `json:"elapsed_seconds"`
}

// StatusOutput is the dashboard view of a user's clock.
type StatusOutput struct {
	IsWorking      bool            `json:"is_working"`
	CurrentSession *CurrentSession `json:"current_session"`
	YearTotalHours float64         `json:"year_total_hours"`
}

// ClockUsecase owns the open/closed state machine of a user's work sessions.
type ClockUsecase interface {
	ClockIn(ctx context.Context, input *ClockInInput) (*ClockInOutput, error)
	ClockOut(ctx context.Context, input *ClockOutInput) (*ClockOutOutput, error)
	Status(ctx context.Context, userID uuid.UUID) (*StatusOutput, error)
}
