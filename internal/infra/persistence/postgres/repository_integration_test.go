package postgres

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"punchclock/internal/domain/entity"
	domainerrors "punchclock/internal/domain/errors"
	"punchclock/internal/domain/repository"
	"punchclock/internal/infra/persistence/migrations"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm"
)

var (
	integrationOnce sync.Once
	integrationDB   *gorm.DB
	integrationErr  error
)

// integrationDatabase starts one migrated Postgres container per test binary.
func integrationDatabase(t *testing.T) *gorm.DB {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping postgres container test in short mode")
	}

	integrationOnce.Do(func() {
		ctx := context.Background()
		container, err := tcpostgres.Run(ctx,
			"postgres:16-alpine",
			tcpostgres.WithDatabase("punchclock"),
			tcpostgres.WithUsername("punchclock"),
			tcpostgres.WithPassword("punchclock"),
			testcontainers.WithWaitStrategy(
				wait.ForLog("database system is ready to accept connections").
					WithOccurrence(2).
					WithStartupTimeout(60*time.Second),
			),
		)
		if err != nil {
			integrationErr = err

			return
		}

		dsn, err := container.ConnectionString(ctx, "sslmode=disable")
		if err != nil {
			integrationErr = err

			return
		}

		db, err := OpenDSN(dsn, slog.New(slog.NewTextHandler(io.Discard, nil)))
		if err != nil {
			integrationErr = err

			return
		}

		sqlDB, err := db.DB()
		if err != nil {
			integrationErr = err

			return
		}
		integrationErr = migrations.Up(ctx, sqlDB)
		integrationDB = db
	})

	if integrationErr != nil {
		t.Skipf("postgres container unavailable: %v", integrationErr)
	}

	return integrationDB
}

func createUser(t *testing.T, db *gorm.DB) *entity.User {
	t.Helper()

	user := &entity.User{
		Email:        uuid.NewString() + "@Example.com",
		PasswordHash: "hash",
	}
	require.NoError(t, NewUserRepository(db).Create(context.Background(), user))

	return user
}

func closedEntry(t *testing.T, db *gorm.DB, userID uuid.UUID, start time.Time, duration time.Duration) {
	t.Helper()

	repo := NewTimeEntryRepository(db)
	entry := &entity.TimeEntry{UserID: userID, StartTime: start, StartTimezone: "UTC"}
	require.NoError(t, repo.InsertEntry(context.Background(), entry))

	closed, err := repo.CloseEntry(context.Background(), entry.ID, start.Add(duration))
	require.NoError(t, err)
	require.True(t, closed)
}

func TestIntegration_UserLifecycle(t *testing.T) {
	db := integrationDatabase(t)
	ctx := context.Background()
	repo := NewUserRepository(db)

	user := createUser(t, db)
	assert.NotEqual(t, uuid.Nil, user.ID)

	found, err := repo.FindByEmail(ctx, user.Email)
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)

	// Emails are unique regardless of case.
	err = repo.Create(ctx, &entity.User{Email: found.Email, PasswordHash: "x"})
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)

	sid := uuid.NewString()
	require.NoError(t, repo.UpdateSessionID(ctx, user.ID, &sid))
	bySession, err := repo.FindBySessionID(ctx, sid)
	require.NoError(t, err)
	assert.Equal(t, user.ID, bySession.ID)

	require.NoError(t, repo.UpdateSessionID(ctx, user.ID, nil))
	_, err = repo.FindBySessionID(ctx, sid)
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestIntegration_SingleOpenEntry(t *testing.T) {
	db := integrationDatabase(t)
	ctx := context.Background()
	user := createUser(t, db)
	repo := NewTimeEntryRepository(db)

	start := time.Date(2024, time.June, 3, 9, 0, 0, 0, time.UTC)
	first := &entity.TimeEntry{UserID: user.ID, StartTime: start, StartTimezone: "Europe/Berlin"}
	require.NoError(t, repo.InsertEntry(ctx, first))

	second := &entity.TimeEntry{UserID: user.ID, StartTime: start.Add(time.Minute), StartTimezone: "Europe/Berlin"}
	err := repo.InsertEntry(ctx, second)
	assert.ErrorIs(t, err, domainerrors.ErrAlreadyClockedIn)

	open, err := repo.FindOpenEntry(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, first.ID, open.ID)

	closed, err := repo.CloseEntry(ctx, first.ID, start.Add(8*time.Hour+30*time.Minute))
	require.NoError(t, err)
	assert.True(t, closed)

	// A second close is a no-op.
	closed, err = repo.CloseEntry(ctx, first.ID, start.Add(9*time.Hour))
	require.NoError(t, err)
	assert.False(t, closed)

	_, err = repo.FindOpenEntry(ctx, user.ID)
	assert.ErrorIs(t, err, repository.ErrTimeEntryNotFound)
}

func TestIntegration_ConcurrentClockIn(t *testing.T) {
	db := integrationDatabase(t)
	user := createUser(t, db)
	repo := NewTimeEntryRepository(db)
	start := time.Date(2024, time.June, 4, 9, 0, 0, 0, time.UTC)

	const workers = 8
	results := make(chan error, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results <- repo.InsertEntry(context.Background(), &entity.TimeEntry{
				UserID: user.ID, StartTime: start, StartTimezone: "UTC",
			})
		}()
	}
	wg.Wait()
	close(results)

	succeeded := 0
	for err := range results {
		if err == nil {
			succeeded++

			continue
		}
		assert.ErrorIs(t, err, domainerrors.ErrAlreadyClockedIn)
	}
	assert.Equal(t, 1, succeeded)
}

func TestIntegration_CheckConstraintsBackstop(t *testing.T) {
	db := integrationDatabase(t)
	ctx := context.Background()
	user := createUser(t, db)
	repo := NewTimeEntryRepository(db)

	start := time.Date(2024, time.June, 5, 9, 0, 0, 0, time.UTC)
	entry := &entity.TimeEntry{UserID: user.ID, StartTime: start, StartTimezone: "UTC"}
	require.NoError(t, repo.InsertEntry(ctx, entry))

	_, err := repo.CloseEntry(ctx, entry.ID, start.Add(16*time.Hour))
	assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)

	_, err = repo.CloseEntry(ctx, entry.ID, start.Add(-time.Minute))
	assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)
}

func TestIntegration_Aggregates(t *testing.T) {
	db := integrationDatabase(t)
	ctx := context.Background()
	user := createUser(t, db)
	repo := NewTimeEntryRepository(db)

	day := time.Date(2024, time.March, 4, 8, 0, 0, 0, time.UTC)
	closedEntry(t, db, user.ID, day, 3*time.Hour)
	closedEntry(t, db, user.ID, day.Add(5*time.Hour), time.Hour+15*time.Minute)
	closedEntry(t, db, user.ID, day.AddDate(0, 0, 1), 8*time.Hour)
	// Outside the year.
	closedEntry(t, db, user.ID, time.Date(2023, time.December, 31, 20, 0, 0, 0, time.UTC), 6*time.Hour)
	// Open entries never count.
	require.NoError(t, repo.InsertEntry(ctx, &entity.TimeEntry{UserID: user.ID, StartTime: day.AddDate(0, 0, 2), StartTimezone: "UTC"}))

	from := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(1, 0, 0)

	total, err := repo.SumHoursInRange(ctx, user.ID, from, to)
	require.NoError(t, err)
	assert.InDelta(t, 12.25, total, 1e-9)

	days, err := repo.SumHoursGroupedByDate(ctx, user.ID, from, to)
	require.NoError(t, err)
	require.Len(t, days, 2)
	assert.Equal(t, "2024-03-04", days[0].Day)
	assert.InDelta(t, 4.25, days[0].Hours, 1e-9)
	assert.Equal(t, "2024-03-05", days[1].Day)

	closed, err := repo.ListClosed(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, closed, 4)
	assert.True(t, closed[0].StartTime.Before(closed[1].StartTime))
}

func TestIntegration_DeleteCascades(t *testing.T) {
	db := integrationDatabase(t)
	ctx := context.Background()
	user := createUser(t, db)
	closedEntry(t, db, user.ID, time.Date(2024, time.April, 1, 9, 0, 0, 0, time.UTC), time.Hour)

	var txErr error
	tm := NewTransactionManager(db)
	txErr = tm.Execute(ctx, func(f repository.RepositoryFactory) error {
		return f.NewUserRepository().Delete(ctx, user.ID)
	})
	require.NoError(t, txErr)

	entries, err := NewTimeEntryRepository(db).ListClosed(ctx, user.ID)
	require.NoError(t, err)
	assert.Empty(t, entries)

	_, err = NewUserRepository(db).FindByID(ctx, user.ID)
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestIntegration_TransactionRollsBack(t *testing.T) {
	db := integrationDatabase(t)
	ctx := context.Background()
	user := createUser(t, db)

	err := NewTransactionManager(db).Execute(ctx, func(f repository.RepositoryFactory) error {
		entry := &entity.TimeEntry{UserID: user.ID, StartTime: time.Now().UTC(), StartTimezone: "UTC"}
		if err := f.NewTimeEntryRepository().InsertEntry(ctx, entry); err != nil {
			return err
		}

		return domainerrors.ErrInternalError
	})
	assert.ErrorIs(t, err, domainerrors.ErrInternalError)

	_, err = NewTimeEntryRepository(db).FindOpenEntry(ctx, user.ID)
	assert.ErrorIs(t, err, repository.ErrTimeEntryNotFound)
}
