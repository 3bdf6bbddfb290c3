package impl

import (
	"context"
	"encoding/csv"
	"io"
	"log/slog"
	"strconv"
	"time"

	"punchclock/config"
	deliverycontext "punchclock/internal/delivery/context"
	"punchclock/internal/domain/repository"
	"punchclock/internal/domain/service"
	"punchclock/internal/domain/worktime"
	"punchclock/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

var exportHeader = []string{"id", "start_time", "end_time", "timezone", "duration_hours"}

// reportService implements the ReportUsecase interface.
type reportService struct {
	entryRepo repository.TimeEntryRepository
	clock     service.Clock
	expiry    *expiryCloser
	logger    *slog.Logger
}

// ReportServiceParams holds dependencies for ReportService, injected by Fx.
type ReportServiceParams struct {
	fx.In

	EntryRepo repository.TimeEntryRepository
	Clock     service.Clock
	Metrics   service.ClockMetrics
	Config    *config.Config
	Logger    *slog.Logger
}

// NewReportService is the constructor for reportService.
func NewReportService(params ReportServiceParams) usecase.ReportUsecase {
	policy := worktime.DefaultPolicy()
	if params.Config != nil {
		policy = params.Config.WorktimePolicy()
	}

	return &reportService{
		entryRepo: params.EntryRepo,
		clock:     params.Clock,
		expiry:    &expiryCloser{policy: policy, metrics: params.Metrics},
		logger:    params.Logger,
	}
}

func (srv *reportService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// settle closes an expired open entry and returns the read time.
func (srv *reportService) settle(ctx context.Context, userID uuid.UUID) (time.Time, error) {
	now := srv.clock.Now()
	if _, err := srv.expiry.openEntry(ctx, srv.log(ctx), srv.entryRepo, userID, now); err != nil {
		return now, errors.Wrap(err, "failed to settle open entry")
	}

	return now, nil
}

// CurrentElapsed returns the running session, or nil when the user is not working.
func (srv *reportService) CurrentElapsed(ctx context.Context, userID uuid.UUID) (*usecase.CurrentSession, error) {
	now := srv.clock.Now()

	entry, err := srv.expiry.openEntry(ctx, srv.log(ctx), srv.entryRepo, userID, now)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load open entry")
	}
	if entry == nil {
		return nil, nil
	}

	return &usecase.CurrentSession{
		StartTime:      entry.StartTime,
		Timezone:       entry.StartTimezone,
		ElapsedSeconds: worktime.ElapsedSeconds(entry.StartTime, now),
	}, nil
}

// YearTotal sums closed entries started in the given UTC year.
func (srv *reportService) YearTotal(ctx context.Context, userID uuid.UUID, year int) (float64, error) {
	if err := validateYear(year); err != nil {
		return 0, err
	}

	if _, err := srv.settle(ctx, userID); err != nil {
		return 0, err
	}

	from, to := worktime.YearBounds(year)
	hours, err := srv.entryRepo.SumHoursInRange(ctx, userID, from, to)
	if err != nil {
		return 0, errors.Wrap(err, "failed to sum hours")
	}

	return worktime.RoundHours(hours), nil
}

// Heatmap returns per-day totals for the given UTC year.
func (srv *reportService) Heatmap(ctx context.Context, userID uuid.UUID, year *int) (*usecase.HeatmapOutput, error) {
	if year != nil {
		if err := validateYear(*year); err != nil {
			return nil, err
		}
	}

	now, err := srv.settle(ctx, userID)
	if err != nil {
		return nil, err
	}

	selected := now.UTC().Year()
	if year != nil {
		selected = *year
	}

	from, to := worktime.YearBounds(selected)
	daily, err := srv.entryRepo.SumHoursGroupedByDate(ctx, userID, from, to)
	if err != nil {
		return nil, errors.Wrap(err, "failed to group hours by date")
	}

	days := make(map[string]float64, len(daily))
	for _, d := range daily {
		days[d.Day] = worktime.RoundHours(d.Hours)
	}

	return &usecase.HeatmapOutput{Year: selected, Days: days}, nil
}

// Export writes all closed entries as CSV.
func (srv *reportService) Export(ctx context.Context, userID uuid.UUID, w io.Writer) error {
	if _, err := srv.settle(ctx, userID); err != nil {
		return err
	}

	entries, err := srv.entryRepo.ListClosed(ctx, userID)
	if err != nil {
		return errors.Wrap(err, "failed to list closed entries")
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(exportHeader); err != nil {
		return errors.Wrap(err, "failed to write csv header")
	}

	for _, entry := range entries {
		record := []string{
			entry.ID.String(),
			entry.StartTime.UTC().Format(time.RFC3339),
			entry.EndTime.UTC().Format(time.RFC3339),
			entry.StartTimezone,
			strconv.FormatFloat(worktime.Hours(entry.Duration()), 'f', 2, 64),
		}
		if err := cw.Write(record); err != nil {
			return errors.Wrap(err, "failed to write csv record")
		}
	}

	cw.Flush()

	return errors.Wrap(cw.Error(), "failed to flush csv")
}
