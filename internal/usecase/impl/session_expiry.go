package impl

import (
	"context"
	"log/slog"
	"time"

	"punchclock/internal/domain/entity"
	domainerrors "punchclock/internal/domain/errors"
	"punchclock/internal/domain/repository"
	"punchclock/internal/domain/service"
	"punchclock/internal/domain/worktime"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const (
	minReportYear = 1970
	maxReportYear = 9999
)

// expiryCloser closes open entries that reached the shift cap. Reads call it
// before they look at a user's entries, so an expired session is never
// reported as running.
type expiryCloser struct {
	policy  worktime.Policy
	metrics service.ClockMetrics
}

// openEntry returns the user's open entry, or nil when there is none left
// after expiry. Losing the close to a concurrent writer is not an error.
func (c *expiryCloser) openEntry(
	ctx context.Context,
	logger *slog.Logger,
	entryRepo repository.TimeEntryRepository,
	userID uuid.UUID,
	now time.Time,
) (*entity.TimeEntry, error) {
	entry, err := entryRepo.FindOpenEntry(ctx, userID)
	if errors.Is(err, repository.ErrTimeEntryNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find open entry")
	}

	if !c.policy.IsExpired(entry.StartTime, now) {
		return entry, nil
	}

	end := c.policy.CloseTime(entry.StartTime, now)
	closed, err := entryRepo.CloseEntry(ctx, entry.ID, end)
	if err != nil {
		c.metrics.ObserveClockOut(service.OutcomeError, true)

		return nil, errors.Wrap(err, "failed to close expired entry")
	}

	if closed {
		hours := worktime.Hours(end.Sub(entry.StartTime))
		c.metrics.ObserveClockOut(service.OutcomeOK, true)
		c.metrics.ObserveHoursRecorded(hours)
		logger.Info("Closed expired entry",
			slog.Any("entryID", entry.ID),
			slog.Time("start", entry.StartTime),
			slog.Time("end", end),
			slog.Float64("hours", hours),
		)
	}

	return nil, nil
}

func validateYear(year int) error {
	if year < minReportYear || year > maxReportYear {
		return errors.WithStack(domainerrors.ErrInvalidInput.WithDetails("year must be between 1970 and 9999"))
	}

	return nil
}
