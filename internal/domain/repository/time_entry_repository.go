package repository

import (
	"context"
	"time"

	"punchclock/internal/domain/entity"
	"punchclock/internal/errors"

	"github.com/google/uuid"
)

// ErrTimeEntryNotFound is returned when the user has no open entry.
var ErrTimeEntryNotFound = errors.New("time entry not found")

// TimeEntryRepository defines the persistence operations for work sessions.
// Aggregates only ever consider closed entries.
type TimeEntryRepository interface {
	// FindOpenEntry returns the user's single open entry or ErrTimeEntryNotFound.
	FindOpenEntry(ctx context.Context, userID uuid.UUID) (*entity.TimeEntry, error)

	// InsertEntry creates an open entry. It returns domain errors.ErrAlreadyClockedIn
	// when the user already holds one.
	InsertEntry(ctx context.Context, entry *entity.TimeEntry) error

	// CloseEntry sets the end time of an entry that is still open. It reports
	// false when the entry was already closed or does not exist.
	CloseEntry(ctx context.Context, id uuid.UUID, end time.Time) (bool, error)

	// SumHoursInRange sums the durations, in hours, of closed entries whose
	// start lies in [from, to).
	SumHoursInRange(ctx context.Context, userID uuid.UUID, from, to time.Time) (float64, error)

	// SumHoursGroupedByDate sums closed entry hours per UTC start date for
	// entries whose start lies in [from, to). Days are returned in order.
	SumHoursGroupedByDate(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]entity.DailyHours, error)

	// ListClosed returns all closed entries of the user, oldest first.
	ListClosed(ctx context.Context, userID uuid.UUID) ([]*entity.TimeEntry, error)
}
