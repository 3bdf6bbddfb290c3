package impl

import (
	"context"
	"strings"
	"testing"
	"time"

	"punchclock/internal/domain/entity"
	domainerrors "punchclock/internal/domain/errors"
	"punchclock/internal/domain/repository"
	"punchclock/internal/domain/service"
	mockRepo "punchclock/internal/mocks/repository"
	mockSvc "punchclock/internal/mocks/service"
	mockUsecase "punchclock/internal/mocks/usecase"
	"punchclock/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// clockServiceFixtures holds all test dependencies for clock service tests.
type clockServiceFixtures struct {
	service   usecase.ClockUsecase
	txManager *mockRepo.MockTransactionManager
	factory   *mockRepo.MockRepositoryFactory
	entryRepo *mockRepo.MockTimeEntryRepository
	reports   *mockUsecase.MockReportUsecase
	clock     *mockSvc.MockClock
	metrics   *mockSvc.MockClockMetrics
}

func createTestClockService(t *testing.T, now time.Time) clockServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	entryRepo := mockRepo.NewMockTimeEntryRepository(t)
	reports := mockUsecase.NewMockReportUsecase(t)
	clock := mockSvc.NewMockClock(t)
	metrics := mockSvc.NewMockClockMetrics(t)

	clock.EXPECT().Now().Return(now).Maybe()

	svc := NewClockService(ClockServiceParams{
		TxManager: txManager,
		Reports:   reports,
		Clock:     clock,
		Metrics:   metrics,
		Config:    newTestConfig(),
		Logger:    newDiscardLogger(),
	})

	return clockServiceFixtures{
		service:   svc,
		txManager: txManager,
		factory:   factory,
		entryRepo: entryRepo,
		reports:   reports,
		clock:     clock,
		metrics:   metrics,
	}
}

func openEntry(userID uuid.UUID, start time.Time, timezone string) *entity.TimeEntry {
	return &entity.TimeEntry{
		ID:            uuid.New(),
		UserID:        userID,
		StartTime:     start,
		StartTimezone: timezone,
	}
}

func TestClockService_ClockIn_Success(t *testing.T) {
	now := mustTime("2024-03-04T09:00:00Z") // Monday
	fx := createTestClockService(t, now)
	ctx := context.Background()
	userID := uuid.New()
	entryID := uuid.New()

	expectTransaction(fx.txManager, fx.factory, fx.entryRepo)
	fx.entryRepo.EXPECT().FindOpenEntry(mock.Anything, userID).Return(nil, repository.ErrTimeEntryNotFound)
	fx.entryRepo.EXPECT().
		InsertEntry(mock.Anything, mock.MatchedBy(func(e *entity.TimeEntry) bool {
			return e.UserID == userID && e.StartTime.Equal(now) && e.StartTimezone == "Europe/Berlin" && e.EndTime == nil
		})).
		RunAndReturn(func(_ context.Context, e *entity.TimeEntry) error {
			e.ID = entryID

			return nil
		})
	fx.metrics.EXPECT().ObserveClockIn(service.OutcomeOK).Once()

	output, err := fx.service.ClockIn(ctx, &usecase.ClockInInput{UserID: userID, Timezone: "Europe/Berlin"})

	require.NoError(t, err)
	assert.Equal(t, entryID, output.ID)
	assert.True(t, output.StartTime.Equal(now))
}

func TestClockService_ClockIn_BlockedOnSunday(t *testing.T) {
	// Sunday 10:00 in New York.
	now := mustTime("2024-06-02T14:00:00Z")
	fx := createTestClockService(t, now)

	fx.metrics.EXPECT().ObserveClockIn(service.OutcomeBlocked).Once()

	output, err := fx.service.ClockIn(context.Background(), &usecase.ClockInInput{
		UserID:   uuid.New(),
		Timezone: "America/New_York",
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrClockInBlocked)
	fx.txManager.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

func TestClockService_ClockIn_UnknownZoneFailsOpen(t *testing.T) {
	now := mustTime("2024-06-02T14:00:00Z") // Sunday in UTC
	fx := createTestClockService(t, now)
	userID := uuid.New()

	expectTransaction(fx.txManager, fx.factory, fx.entryRepo)
	fx.entryRepo.EXPECT().FindOpenEntry(mock.Anything, userID).Return(nil, repository.ErrTimeEntryNotFound)
	fx.entryRepo.EXPECT().InsertEntry(mock.Anything, mock.Anything).Return(nil)
	fx.metrics.EXPECT().ObserveClockIn(service.OutcomeOK).Once()

	_, err := fx.service.ClockIn(context.Background(), &usecase.ClockInInput{UserID: userID, Timezone: "Mars/Olympus_Mons"})

	require.NoError(t, err)
}

func TestClockService_ClockIn_AlreadyClockedIn(t *testing.T) {
	now := mustTime("2024-03-04T09:00:00Z")
	fx := createTestClockService(t, now)
	userID := uuid.New()

	expectTransaction(fx.txManager, fx.factory, fx.entryRepo)
	fx.entryRepo.EXPECT().FindOpenEntry(mock.Anything, userID).Return(openEntry(userID, now.Add(-time.Hour), "UTC"), nil)
	fx.metrics.EXPECT().ObserveClockIn(service.OutcomeConflict).Once()

	_, err := fx.service.ClockIn(context.Background(), &usecase.ClockInInput{UserID: userID, Timezone: "UTC"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrAlreadyClockedIn)
	fx.entryRepo.AssertNotCalled(t, "InsertEntry", mock.Anything, mock.Anything)
}

func TestClockService_ClockIn_ConcurrentInsertLoses(t *testing.T) {
	now := mustTime("2024-03-04T09:00:00Z")
	fx := createTestClockService(t, now)
	userID := uuid.New()

	expectTransaction(fx.txManager, fx.factory, fx.entryRepo)
	fx.entryRepo.EXPECT().FindOpenEntry(mock.Anything, userID).Return(nil, repository.ErrTimeEntryNotFound)
	fx.entryRepo.EXPECT().InsertEntry(mock.Anything, mock.Anything).
		Return(domainerrors.ErrAlreadyClockedIn.WrapMessage("open entry already exists"))
	fx.metrics.EXPECT().ObserveClockIn(service.OutcomeConflict).Once()

	_, err := fx.service.ClockIn(context.Background(), &usecase.ClockInInput{UserID: userID, Timezone: "UTC"})

	assert.True(t, domainerrors.HasCode(err, "ALREADY_CLOCKED_IN"))
}

func TestClockService_ClockIn_InvalidTimezone(t *testing.T) {
	tests := []struct {
		name     string
		timezone string
	}{
		{name: "empty", timezone: ""},
		{name: "blank", timezone: "   "},
		{name: "too long", timezone: "Europe/" + strings.Repeat("x", 64)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestClockService(t, mustTime("2024-03-04T09:00:00Z"))
			_, err := fx.service.ClockIn(context.Background(), &usecase.ClockInInput{UserID: uuid.New(), Timezone: tt.timezone})

			assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)
		})
	}
}

func TestClockService_ClockOut(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name      string
		start     string
		now       string
		timezone  string
		wantEnd   string
		wantHours float64
	}{
		{
			name:      "normal shift",
			start:     "2024-03-04T09:00:00Z",
			now:       "2024-03-04T17:30:00Z",
			timezone:  "Europe/Berlin",
			wantEnd:   "2024-03-04T17:30:00Z",
			wantHours: 8.5,
		},
		{
			name:      "capped at fifteen hours",
			start:     "2024-03-04T08:00:00Z",
			now:       "2024-03-04T23:59:00Z",
			timezone:  "America/Los_Angeles",
			wantEnd:   "2024-03-04T23:00:00Z",
			wantHours: 15.0,
		},
		{
			name:      "clock skew closes at start",
			start:     "2024-03-04T09:00:00Z",
			now:       "2024-03-04T08:59:00Z",
			timezone:  "UTC",
			wantEnd:   "2024-03-04T09:00:00Z",
			wantHours: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestClockService(t, mustTime(tt.now))
			entry := openEntry(userID, mustTime(tt.start), tt.timezone)
			wantEnd := mustTime(tt.wantEnd)

			expectTransaction(fx.txManager, fx.factory, fx.entryRepo)
			fx.entryRepo.EXPECT().FindOpenEntry(mock.Anything, userID).Return(entry, nil)
			fx.entryRepo.EXPECT().
				CloseEntry(mock.Anything, entry.ID, mock.MatchedBy(func(end time.Time) bool { return end.Equal(wantEnd) })).
				Return(true, nil)
			fx.metrics.EXPECT().ObserveClockOut(service.OutcomeOK, false).Once()
			fx.metrics.EXPECT().ObserveHoursRecorded(tt.wantHours).Once()

			output, err := fx.service.ClockOut(context.Background(), &usecase.ClockOutInput{UserID: userID})

			require.NoError(t, err)
			assert.Equal(t, entry.ID, output.ID)
			assert.True(t, output.EndTime.Equal(wantEnd))
			assert.False(t, output.EndTime.Before(output.StartTime))
			assert.LessOrEqual(t, output.EndTime.Sub(output.StartTime), 15*time.Hour)
			assert.InDelta(t, tt.wantHours, output.DurationHours, 1e-9)
		})
	}
}

func TestClockService_ClockOut_BlockedUsesStoredTimezone(t *testing.T) {
	// Sunday 08:00 in Berlin, still Saturday afternoon in Los Angeles.
	now := mustTime("2024-06-02T06:00:00Z")
	fx := createTestClockService(t, now)
	userID := uuid.New()
	entry := openEntry(userID, now.Add(-2*time.Hour), "Europe/Berlin")

	expectTransaction(fx.txManager, fx.factory, fx.entryRepo)
	fx.entryRepo.EXPECT().FindOpenEntry(mock.Anything, userID).Return(entry, nil)
	fx.metrics.EXPECT().ObserveClockOut(service.OutcomeBlocked, false).Once()

	_, err := fx.service.ClockOut(context.Background(), &usecase.ClockOutInput{UserID: userID})

	assert.ErrorIs(t, err, domainerrors.ErrClockOutBlocked)
	fx.entryRepo.AssertNotCalled(t, "CloseEntry", mock.Anything, mock.Anything, mock.Anything)
}

func TestClockService_ClockOut_AutomaticIgnoresBlackout(t *testing.T) {
	now := mustTime("2024-06-02T12:00:00Z") // Sunday everywhere in Europe
	fx := createTestClockService(t, now)
	userID := uuid.New()
	entry := openEntry(userID, now.Add(-3*time.Hour), "Europe/Berlin")

	expectTransaction(fx.txManager, fx.factory, fx.entryRepo)
	fx.entryRepo.EXPECT().FindOpenEntry(mock.Anything, userID).Return(entry, nil)
	fx.entryRepo.EXPECT().CloseEntry(mock.Anything, entry.ID, now).Return(true, nil)
	fx.metrics.EXPECT().ObserveClockOut(service.OutcomeOK, true).Once()
	fx.metrics.EXPECT().ObserveHoursRecorded(3.0).Once()

	output, err := fx.service.ClockOut(context.Background(), &usecase.ClockOutInput{UserID: userID, Automatic: true})

	require.NoError(t, err)
	assert.InDelta(t, 3.0, output.DurationHours, 1e-9)
}

func TestClockService_ClockOut_NotClockedIn(t *testing.T) {
	now := mustTime("2024-03-04T17:00:00Z")
	fx := createTestClockService(t, now)
	userID := uuid.New()

	expectTransaction(fx.txManager, fx.factory, fx.entryRepo)
	fx.entryRepo.EXPECT().FindOpenEntry(mock.Anything, userID).Return(nil, repository.ErrTimeEntryNotFound)
	fx.metrics.EXPECT().ObserveClockOut(service.OutcomeConflict, false).Once()

	_, err := fx.service.ClockOut(context.Background(), &usecase.ClockOutInput{UserID: userID})

	assert.ErrorIs(t, err, domainerrors.ErrNotClockedIn)
}

func TestClockService_ClockOut_AlreadyClosedByAnotherRequest(t *testing.T) {
	now := mustTime("2024-03-04T17:00:00Z")
	fx := createTestClockService(t, now)
	userID := uuid.New()
	entry := openEntry(userID, now.Add(-time.Hour), "UTC")

	expectTransaction(fx.txManager, fx.factory, fx.entryRepo)
	fx.entryRepo.EXPECT().FindOpenEntry(mock.Anything, userID).Return(entry, nil)
	fx.entryRepo.EXPECT().CloseEntry(mock.Anything, entry.ID, now).Return(false, nil)
	fx.metrics.EXPECT().ObserveClockOut(service.OutcomeConflict, false).Once()

	_, err := fx.service.ClockOut(context.Background(), &usecase.ClockOutInput{UserID: userID})

	assert.ErrorIs(t, err, domainerrors.ErrNotClockedIn)
}

func TestClockService_ClockOut_DatabaseError(t *testing.T) {
	now := mustTime("2024-03-04T17:00:00Z")
	fx := createTestClockService(t, now)
	userID := uuid.New()

	expectTransaction(fx.txManager, fx.factory, fx.entryRepo)
	fx.entryRepo.EXPECT().FindOpenEntry(mock.Anything, userID).
		Return(nil, domainerrors.NewDatabaseExecuteError(errors.New("connection reset"), "failed to find open entry"))
	fx.metrics.EXPECT().ObserveClockOut(service.OutcomeError, false).Once()

	_, err := fx.service.ClockOut(context.Background(), &usecase.ClockOutInput{UserID: userID})

	assert.True(t, domainerrors.HasCode(err, "DATABASE_EXECUTE_FAILED"))
}

func TestClockService_ClockIn_TruncatesToStoredPrecision(t *testing.T) {
	now := mustTime("2024-03-04T09:00:00Z").Add(123456789 * time.Nanosecond)
	stored := mustTime("2024-03-04T09:00:00Z").Add(123456 * time.Microsecond)
	fx := createTestClockService(t, now)
	userID := uuid.New()

	expectTransaction(fx.txManager, fx.factory, fx.entryRepo)
	fx.entryRepo.EXPECT().FindOpenEntry(mock.Anything, userID).Return(nil, repository.ErrTimeEntryNotFound)
	fx.entryRepo.EXPECT().
		InsertEntry(mock.Anything, mock.MatchedBy(func(e *entity.TimeEntry) bool { return e.StartTime.Equal(stored) })).
		Return(nil)
	fx.metrics.EXPECT().ObserveClockIn(service.OutcomeOK).Once()

	output, err := fx.service.ClockIn(context.Background(), &usecase.ClockInInput{UserID: userID, Timezone: "UTC"})

	require.NoError(t, err)
	assert.True(t, output.StartTime.Equal(stored))
}

func TestClockService_Status_Working(t *testing.T) {
	now := mustTime("2024-03-04T10:30:00Z")
	fx := createTestClockService(t, now)
	userID := uuid.New()
	session := &usecase.CurrentSession{
		StartTime:      mustTime("2024-03-04T09:00:00Z"),
		Timezone:       "Europe/Berlin",
		ElapsedSeconds: 5400,
	}

	fx.reports.EXPECT().CurrentElapsed(mock.Anything, userID).Return(session, nil).Once()
	fx.reports.EXPECT().YearTotal(mock.Anything, userID, 2024).Return(12.35, nil).Once()

	status, err := fx.service.Status(context.Background(), userID)

	require.NoError(t, err)
	assert.True(t, status.IsWorking)
	assert.Equal(t, session, status.CurrentSession)
	assert.InDelta(t, 12.35, status.YearTotalHours, 1e-9)
}

func TestClockService_Status_NotWorking(t *testing.T) {
	now := mustTime("2024-12-31T23:59:00Z")
	fx := createTestClockService(t, now)
	userID := uuid.New()

	fx.reports.EXPECT().CurrentElapsed(mock.Anything, userID).Return(nil, nil).Once()
	fx.reports.EXPECT().YearTotal(mock.Anything, userID, 2024).Return(15.0, nil).Once()

	status, err := fx.service.Status(context.Background(), userID)

	require.NoError(t, err)
	assert.False(t, status.IsWorking)
	assert.Nil(t, status.CurrentSession)
	assert.InDelta(t, 15.0, status.YearTotalHours, 1e-9)
}

func TestClockService_Status_ReportError(t *testing.T) {
	fx := createTestClockService(t, mustTime("2024-03-04T10:30:00Z"))
	userID := uuid.New()

	fx.reports.EXPECT().CurrentElapsed(mock.Anything, userID).
		Return(nil, domainerrors.NewDatabaseExecuteError(errors.New("connection reset"), "failed to find open entry"))

	_, err := fx.service.Status(context.Background(), userID)

	assert.True(t, domainerrors.HasCode(err, "DATABASE_EXECUTE_FAILED"))
	fx.reports.AssertNotCalled(t, "YearTotal", mock.Anything, mock.Anything, mock.Anything)
}
