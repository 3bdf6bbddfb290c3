// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"punchclock/config"
	deliverycontext "punchclock/internal/delivery/context"
	"punchclock/internal/domain/entity"
	domainerrors "punchclock/internal/domain/errors"
	"punchclock/internal/domain/repository"
	"punchclock/internal/domain/service"
	"punchclock/internal/domain/worktime"
	"punchclock/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// maxTimezoneLength bounds the zone name stored with an entry.
const maxTimezoneLength = 64

// clockService implements the ClockUsecase interface.
type clockService struct {
	txManager repository.TransactionManager
	reports   usecase.ReportUsecase
	clock     service.Clock
	metrics   service.ClockMetrics
	policy    worktime.Policy
	logger    *slog.Logger
}

// ClockServiceParams holds dependencies for ClockService, injected by Fx.
type ClockServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Reports   usecase.ReportUsecase
	Clock     service.Clock
	Metrics   service.ClockMetrics
	Config    *config.Config
	Logger    *slog.Logger
}

// NewClockService is the constructor for clockService.
func NewClockService(params ClockServiceParams) usecase.ClockUsecase {
	policy := worktime.DefaultPolicy()
	if params.Config != nil {
		policy = params.Config.WorktimePolicy()
	}

	return &clockService{
		txManager: params.TxManager,
		reports:   params.Reports,
		clock:     params.Clock,
		metrics:   params.Metrics,
		policy:    policy,
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *clockService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ClockIn opens a work session unless the blackout window applies or one is already open.
func (srv *clockService) ClockIn(ctx context.Context, input *usecase.ClockInInput) (*usecase.ClockInOutput, error) {
	timezone := strings.TrimSpace(input.Timezone)
	if timezone == "" || len(timezone) > maxTimezoneLength {
		return nil, errors.WithStack(domainerrors.ErrInvalidInput.WithDetails("timezone must be 1 to 64 characters"))
	}

	// Postgres stores microseconds; the response must match later reads.
	now := srv.clock.Now().Truncate(time.Microsecond)

	if restricted, reason := srv.policy.IsRestricted(timezone, now); restricted {
		srv.metrics.ObserveClockIn(service.OutcomeBlocked)
		srv.log(ctx).Info("Clock-in blocked", slog.Any("userID", input.UserID), slog.String("timezone", timezone), slog.String("reason", reason))

		return nil, errors.WithStack(domainerrors.ErrClockInBlocked.WithDetails(reason))
	}

	var created *entity.TimeEntry
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		entryRepo := repoFactory.NewTimeEntryRepository()

		_, err := entryRepo.FindOpenEntry(ctx, input.UserID)
		if err == nil {
			return errors.WithStack(domainerrors.ErrAlreadyClockedIn)
		}
		if !errors.Is(err, repository.ErrTimeEntryNotFound) {
			return errors.Wrap(err, "failed to find open entry")
		}

		entry := &entity.TimeEntry{
			UserID:        input.UserID,
			StartTime:     now,
			StartTimezone: timezone,
		}
		if err := entryRepo.InsertEntry(ctx, entry); err != nil {
			return errors.Wrap(err, "failed to insert entry")
		}

		created = entry

		return nil
	})
	if err != nil {
		srv.metrics.ObserveClockIn(outcomeOf(err))
		srv.log(ctx).Warn("Clock-in failed", slog.Any("userID", input.UserID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to clock in")
	}

	srv.metrics.ObserveClockIn(service.OutcomeOK)
	srv.log(ctx).Debug("Clocked in", slog.Any("userID", input.UserID), slog.Any("entryID", created.ID))

	return &usecase.ClockInOutput{
		ID:        created.ID,
		StartTime: created.StartTime,
	}, nil
}

// ClockOut closes the open session, capping it at the maximum shift length.
func (srv *clockService) ClockOut(ctx context.Context, input *usecase.ClockOutInput) (*usecase.ClockOutOutput, error) {
	now := srv.clock.Now().Truncate(time.Microsecond)

	var output *usecase.ClockOutOutput
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		entryRepo := repoFactory.NewTimeEntryRepository()

		entry, err := entryRepo.FindOpenEntry(ctx, input.UserID)
		if errors.Is(err, repository.ErrTimeEntryNotFound) {
			return errors.WithStack(domainerrors.ErrNotClockedIn)
		}
		if err != nil {
			return errors.Wrap(err, "failed to find open entry")
		}

		// The zone captured at clock-in decides, not the caller's current one.
		if !input.Automatic {
			if restricted, reason := srv.policy.IsRestricted(entry.StartTimezone, now); restricted {
				return errors.WithStack(domainerrors.ErrClockOutBlocked.WithDetails(reason))
			}
		}

		end := srv.policy.CloseTime(entry.StartTime, now)
		closed, err := entryRepo.CloseEntry(ctx, entry.ID, end)
		if err != nil {
			return errors.Wrap(err, "failed to close entry")
		}
		if !closed {
			return errors.WithStack(domainerrors.ErrNotClockedIn)
		}

		output = &usecase.ClockOutOutput{
			ID:            entry.ID,
			StartTime:     entry.StartTime,
			EndTime:       end,
			DurationHours: worktime.Hours(end.Sub(entry.StartTime)),
		}

		return nil
	})
	if err != nil {
		srv.metrics.ObserveClockOut(outcomeOf(err), input.Automatic)
		srv.log(ctx).Warn("Clock-out failed", slog.Any("userID", input.UserID), slog.Bool("automatic", input.Automatic), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to clock out")
	}

	srv.metrics.ObserveClockOut(service.OutcomeOK, input.Automatic)
	srv.metrics.ObserveHoursRecorded(output.DurationHours)
	srv.log(ctx).Debug("Clocked out", slog.Any("userID", input.UserID), slog.Any("entryID", output.ID), slog.Float64("hours", output.DurationHours))

	return output, nil
}

// Status reports whether the user is working and their total for the current UTC year.
// Both reads go through the report usecase, which closes an expired entry first.
func (srv *clockService) Status(ctx context.Context, userID uuid.UUID) (*usecase.StatusOutput, error) {
	year := srv.clock.Now().UTC().Year()

	session, err := srv.reports.CurrentElapsed(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load current session")
	}

	total, err := srv.reports.YearTotal(ctx, userID, year)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load year total")
	}

	return &usecase.StatusOutput{
		IsWorking:      session != nil,
		CurrentSession: session,
		YearTotalHours: total,
	}, nil
}

// outcomeOf classifies a failed transition for metrics.
func outcomeOf(err error) string {
	switch {
	case errors.Is(err, domainerrors.ErrAlreadyClockedIn), errors.Is(err, domainerrors.ErrNotClockedIn):
		return service.OutcomeConflict
	case errors.Is(err, domainerrors.ErrClockInBlocked), errors.Is(err, domainerrors.ErrClockOutBlocked):
		return service.OutcomeBlocked
	default:
		return service.OutcomeError
	}
}
