// Package clock provides the wall-time source used by the session rules.
package clock

import (
	"time"

	"punchclock/internal/domain/service"
)

type systemClock struct{}

// NewSystemClock returns a Clock reading the system time in UTC.
func NewSystemClock() service.Clock {
	return systemClock{}
}

func (systemClock) Now() time.Time {
	return time.Now().UTC()
}
