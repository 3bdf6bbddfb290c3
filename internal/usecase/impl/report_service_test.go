package impl

import (
	"bytes"
	"context"
	"testing"
	"time"

	"punchclock/internal/domain/entity"
	domainerrors "punchclock/internal/domain/errors"
	"punchclock/internal/domain/repository"
	"punchclock/internal/domain/service"
	mockRepo "punchclock/internal/mocks/repository"
	mockSvc "punchclock/internal/mocks/service"
	"punchclock/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type reportServiceFixtures struct {
	service   usecase.ReportUsecase
	entryRepo *mockRepo.MockTimeEntryRepository
	metrics   *mockSvc.MockClockMetrics
}

func createTestReportService(t *testing.T, now time.Time) reportServiceFixtures {
	entryRepo := mockRepo.NewMockTimeEntryRepository(t)
	clock := mockSvc.NewMockClock(t)
	metrics := mockSvc.NewMockClockMetrics(t)

	clock.EXPECT().Now().Return(now).Maybe()

	svc := NewReportService(ReportServiceParams{
		EntryRepo: entryRepo,
		Clock:     clock,
		Metrics:   metrics,
		Config:    newTestConfig(),
		Logger:    newDiscardLogger(),
	})

	return reportServiceFixtures{service: svc, entryRepo: entryRepo, metrics: metrics}
}

func TestReportService_CurrentElapsed(t *testing.T) {
	now := mustTime("2024-03-04T10:30:15Z")
	fx := createTestReportService(t, now)
	userID := uuid.New()
	entry := openEntry(userID, mustTime("2024-03-04T09:00:00Z"), "Asia/Tokyo")

	fx.entryRepo.EXPECT().FindOpenEntry(mock.Anything, userID).Return(entry, nil)

	session, err := fx.service.CurrentElapsed(context.Background(), userID)

	require.NoError(t, err)
	require.NotNil(t, session)
	assert.Equal(t, int64(5415), session.ElapsedSeconds)
	assert.Equal(t, "Asia/Tokyo", session.Timezone)
}

func TestReportService_CurrentElapsed_NotWorking(t *testing.T) {
	fx := createTestReportService(t, mustTime("2024-03-04T10:30:00Z"))
	userID := uuid.New()

	fx.entryRepo.EXPECT().FindOpenEntry(mock.Anything, userID).Return(nil, repository.ErrTimeEntryNotFound)

	session, err := fx.service.CurrentElapsed(context.Background(), userID)

	require.NoError(t, err)
	assert.Nil(t, session)
}

func TestReportService_CurrentElapsed_AutoTimeoutIsIdempotent(t *testing.T) {
	now := mustTime("2024-03-05T05:00:00Z")
	fx := createTestReportService(t, now)
	userID := uuid.New()
	entry := openEntry(userID, mustTime("2024-03-04T09:00:00Z"), "UTC")
	capped := mustTime("2024-03-05T00:00:00Z")

	// First read closes the expired entry, the second finds nothing to close.
	fx.entryRepo.EXPECT().FindOpenEntry(mock.Anything, userID).Return(entry, nil).Once()
	fx.entryRepo.EXPECT().FindOpenEntry(mock.Anything, userID).Return(nil, repository.ErrTimeEntryNotFound).Once()
	fx.entryRepo.EXPECT().CloseEntry(mock.Anything, entry.ID, capped).Return(true, nil).Once()
	fx.metrics.EXPECT().ObserveClockOut(service.OutcomeOK, true).Once()
	fx.metrics.EXPECT().ObserveHoursRecorded(15.0).Once()

	for range 2 {
		session, err := fx.service.CurrentElapsed(context.Background(), userID)

		require.NoError(t, err)
		assert.Nil(t, session)
	}
}

func TestReportService_CurrentElapsed_LostAutoTimeoutRace(t *testing.T) {
	now := mustTime("2024-03-05T05:00:00Z")
	fx := createTestReportService(t, now)
	userID := uuid.New()
	entry := openEntry(userID, mustTime("2024-03-04T09:00:00Z"), "UTC")

	fx.entryRepo.EXPECT().FindOpenEntry(mock.Anything, userID).Return(entry, nil)
	fx.entryRepo.EXPECT().CloseEntry(mock.Anything, entry.ID, mock.Anything).Return(false, nil)

	session, err := fx.service.CurrentElapsed(context.Background(), userID)

	require.NoError(t, err)
	assert.Nil(t, session)
}

func TestReportService_YearTotal_ClosesExpiredEntryFirst(t *testing.T) {
	now := mustTime("2024-03-05T06:00:00Z")
	fx := createTestReportService(t, now)
	userID := uuid.New()
	entry := openEntry(userID, mustTime("2024-03-04T08:00:00Z"), "UTC")
	from, to := mustTime("2024-01-01T00:00:00Z"), mustTime("2025-01-01T00:00:00Z")

	fx.entryRepo.EXPECT().FindOpenEntry(mock.Anything, userID).Return(entry, nil)
	fx.entryRepo.EXPECT().CloseEntry(mock.Anything, entry.ID, mustTime("2024-03-04T23:00:00Z")).Return(true, nil)
	fx.entryRepo.EXPECT().SumHoursInRange(mock.Anything, userID, from, to).Return(23.504999, nil)
	fx.metrics.EXPECT().ObserveClockOut(service.OutcomeOK, true).Once()
	fx.metrics.EXPECT().ObserveHoursRecorded(15.0).Once()

	total, err := fx.service.YearTotal(context.Background(), userID, 2024)

	require.NoError(t, err)
	assert.InDelta(t, 23.5, total, 1e-9)
}

func TestReportService_YearTotal_InvalidYear(t *testing.T) {
	fx := createTestReportService(t, mustTime("2024-03-04T10:00:00Z"))

	for _, year := range []int{1969, 10000} {
		_, err := fx.service.YearTotal(context.Background(), uuid.New(), year)

		assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)
	}
}

func TestReportService_Heatmap_DefaultsToCurrentYear(t *testing.T) {
	now := mustTime("2024-07-01T12:00:00Z")
	fx := createTestReportService(t, now)
	userID := uuid.New()
	from, to := mustTime("2024-01-01T00:00:00Z"), mustTime("2025-01-01T00:00:00Z")

	fx.entryRepo.EXPECT().FindOpenEntry(mock.Anything, userID).Return(nil, repository.ErrTimeEntryNotFound)
	fx.entryRepo.EXPECT().SumHoursGroupedByDate(mock.Anything, userID, from, to).Return([]entity.DailyHours{
		{Day: "2024-03-04", Hours: 3.0 + 1.25},
		{Day: "2024-03-05", Hours: 1.0 / 3.0},
	}, nil)

	heatmap, err := fx.service.Heatmap(context.Background(), userID, nil)

	require.NoError(t, err)
	assert.Equal(t, 2024, heatmap.Year)
	assert.Equal(t, map[string]float64{"2024-03-04": 4.25, "2024-03-05": 0.33}, heatmap.Days)
}

func TestReportService_Heatmap_ExplicitYear(t *testing.T) {
	fx := createTestReportService(t, mustTime("2024-07-01T12:00:00Z"))
	userID := uuid.New()
	year := 2023
	from, to := mustTime("2023-01-01T00:00:00Z"), mustTime("2024-01-01T00:00:00Z")

	fx.entryRepo.EXPECT().FindOpenEntry(mock.Anything, userID).Return(nil, repository.ErrTimeEntryNotFound)
	fx.entryRepo.EXPECT().SumHoursGroupedByDate(mock.Anything, userID, from, to).Return(nil, nil)

	heatmap, err := fx.service.Heatmap(context.Background(), userID, &year)

	require.NoError(t, err)
	assert.Equal(t, 2023, heatmap.Year)
	assert.Empty(t, heatmap.Days)
}

func TestReportService_Heatmap_InvalidYear(t *testing.T) {
	fx := createTestReportService(t, mustTime("2024-07-01T12:00:00Z"))
	year := 1900

	_, err := fx.service.Heatmap(context.Background(), uuid.New(), &year)

	assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)
}

func TestReportService_Export(t *testing.T) {
	fx := createTestReportService(t, mustTime("2024-07-01T12:00:00Z"))
	userID := uuid.New()
	firstID := uuid.MustParse("0190b1a2-0000-7000-8000-000000000001")
	secondID := uuid.MustParse("0190b1a2-0000-7000-8000-000000000002")
	firstEnd := mustTime("2024-03-04T17:30:00Z")
	secondEnd := mustTime("2024-03-05T10:20:00Z")

	fx.entryRepo.EXPECT().FindOpenEntry(mock.Anything, userID).Return(nil, repository.ErrTimeEntryNotFound)
	fx.entryRepo.EXPECT().ListClosed(mock.Anything, userID).Return([]*entity.TimeEntry{
		{ID: firstID, UserID: userID, StartTime: mustTime("2024-03-04T09:00:00Z"), EndTime: &firstEnd, StartTimezone: "Europe/Berlin"},
		{ID: secondID, UserID: userID, StartTime: mustTime("2024-03-05T09:00:00Z"), EndTime: &secondEnd, StartTimezone: "America/New_York"},
	}, nil)

	var buf bytes.Buffer
	err := fx.service.Export(context.Background(), userID, &buf)

	require.NoError(t, err)
	assert.Equal(t,
		"id,start_time,end_time,timezone,duration_hours\n"+
			"0190b1a2-0000-7000-8000-000000000001,2024-03-04T09:00:00Z,2024-03-04T17:30:00Z,Europe/Berlin,8.50\n"+
			"0190b1a2-0000-7000-8000-000000000002,2024-03-05T09:00:00Z,2024-03-05T10:20:00Z,America/New_York,1.33\n",
		buf.String(),
	)
}
