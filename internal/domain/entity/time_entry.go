package entity

import (
	"time"

	"github.com/google/uuid"
)

// TimeEntry is one work session of a user.
// An entry with a nil EndTime is open; it is closed exactly once and never reopened.
type TimeEntry struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	StartTime     time.Time
	EndTime       *time.Time
	StartTimezone string // IANA zone name supplied at clock-in, reused by the clock-out blackout check.
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// IsOpen reports whether the entry has not been closed yet.
func (e *TimeEntry) IsOpen() bool {
	return e.EndTime == nil
}

// Duration returns the length of a closed entry, or zero for an open one.
func (e *TimeEntry) Duration() time.Duration {
	if e.EndTime == nil {
		return 0
	}

	return e.EndTime.Sub(e.StartTime)
}

// DailyHours is the summed duration of closed entries that started on one UTC calendar day.
type DailyHours struct {
	Day   string // YYYY-MM-DD
	Hours float64
}
