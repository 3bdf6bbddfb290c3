package postgres

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	domainerrors "punchclock/internal/domain/errors"
	"punchclock/internal/domain/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	pgDriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(pgDriver.New(pgDriver.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Discard,
	})
	require.NoError(t, err)

	return db, mock
}

func TestTimeEntryRepository_CloseEntry(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTimeEntryRepository(db)
	id := uuid.New()
	end := time.Date(2024, time.June, 3, 17, 30, 0, 0, time.UTC)

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "time_entries" SET "end_time"=$1`) + `.*` + regexp.QuoteMeta(`WHERE id = $`) + `\d` + regexp.QuoteMeta(` AND end_time IS NULL`)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	closed, err := repo.CloseEntry(context.Background(), id, end)
	require.NoError(t, err)
	assert.True(t, closed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTimeEntryRepository_CloseEntry_AlreadyClosed(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTimeEntryRepository(db)

	mock.ExpectExec(`UPDATE "time_entries"`).WillReturnResult(sqlmock.NewResult(0, 0))

	closed, err := repo.CloseEntry(context.Background(), uuid.New(), time.Now())
	require.NoError(t, err)
	assert.False(t, closed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTimeEntryRepository_CloseEntry_CheckViolation(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTimeEntryRepository(db)

	mock.ExpectExec(`UPDATE "time_entries"`).
		WillReturnError(&pgconn.PgError{Code: codeCheckViolation, ConstraintName: "chk_time_entries_max_shift"})

	closed, err := repo.CloseEntry(context.Background(), uuid.New(), time.Now())
	assert.False(t, closed)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidInput))
}

func TestTimeEntryRepository_FindOpenEntry(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTimeEntryRepository(db)
	userID := uuid.New()
	entryID := uuid.New()
	start := time.Date(2024, time.June, 3, 9, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows([]string{"id", "user_id", "start_time", "end_time", "start_timezone", "created_at", "updated_at"}).
		AddRow(entryID.String(), userID.String(), start, nil, "Europe/Berlin", start, start)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "time_entries" WHERE user_id = $1 AND end_time IS NULL`)).
		WillReturnRows(rows)

	entry, err := repo.FindOpenEntry(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, entryID, entry.ID)
	assert.True(t, entry.IsOpen())
	assert.Equal(t, "Europe/Berlin", entry.StartTimezone)
	assert.True(t, entry.StartTime.Equal(start))
}

func TestTimeEntryRepository_FindOpenEntry_None(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTimeEntryRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "time_entries"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.FindOpenEntry(context.Background(), uuid.New())
	assert.ErrorIs(t, err, repository.ErrTimeEntryNotFound)
}

func TestTimeEntryRepository_FindOpenEntry_DBError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTimeEntryRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "time_entries"`).WillReturnError(errors.New("connection reset"))

	_, err := repo.FindOpenEntry(context.Background(), uuid.New())
	assert.True(t, domainerrors.HasCode(err, "DATABASE_EXECUTE_FAILED"))
}

func TestTimeEntryRepository_SumHoursInRange(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTimeEntryRepository(db)
	from := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(1, 0, 0)
	userID := uuid.New()

	mock.ExpectQuery(`SELECT COALESCE\(SUM\(EXTRACT\(EPOCH FROM \(end_time - start_time\)\)\), 0\)`).
		WithArgs(userID, from, to).
		WillReturnRows(sqlmock.NewRows([]string{"hours"}).AddRow(12.75))

	hours, err := repo.SumHoursInRange(context.Background(), userID, from, to)
	require.NoError(t, err)
	assert.Equal(t, 12.75, hours)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTimeEntryRepository_SumHoursGroupedByDate(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTimeEntryRepository(db)
	from := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`GROUP BY day`).
		WillReturnRows(sqlmock.NewRows([]string{"day", "hours"}).
			AddRow("2024-03-04", 4.25).
			AddRow("2024-03-05", 8.0))

	days, err := repo.SumHoursGroupedByDate(context.Background(), uuid.New(), from, from.AddDate(1, 0, 0))
	require.NoError(t, err)
	require.Len(t, days, 2)
	assert.Equal(t, "2024-03-04", days[0].Day)
	assert.Equal(t, 4.25, days[0].Hours)
	assert.Equal(t, 8.0, days[1].Hours)
}

func TestUserRepository_UpdateSessionID_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "users" SET "session_id"=$1`)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateSessionID(context.Background(), uuid.New(), nil)
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestUserRepository_FindBySessionID_Empty(t *testing.T) {
	db, _ := newMockDB(t)
	repo := NewUserRepository(db)

	_, err := repo.FindBySessionID(context.Background(), "")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestUserRepository_FindByEmail(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)
	id := uuid.New()
	now := time.Now().UTC()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "users" WHERE lower(email) = $1`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "password_hash", "session_id", "created_at", "updated_at"}).
			AddRow(id.String(), "alice@example.com", "hash", nil, now, now))

	user, err := repo.FindByEmail(context.Background(), "Alice@Example.COM")
	require.NoError(t, err)
	assert.Equal(t, id, user.ID)
	assert.Nil(t, user.SessionID)
}

func TestConstraintHelpers(t *testing.T) {
	openViolation := &pgconn.PgError{Code: codeUniqueViolation, ConstraintName: constraintOpenEntryPerUser}
	emailViolation := &pgconn.PgError{Code: codeUniqueViolation, ConstraintName: constraintUserEmail}

	assert.True(t, isUniqueConstraintViolation(openViolation))
	assert.True(t, violatesConstraint(openViolation, constraintOpenEntryPerUser))
	assert.False(t, violatesConstraint(emailViolation, constraintOpenEntryPerUser))
	assert.True(t, violatesConstraint(gorm.ErrDuplicatedKey, constraintOpenEntryPerUser))
	assert.True(t, isForeignKeyConstraintViolation(&pgconn.PgError{Code: codeForeignKeyViolation}))
	assert.True(t, isNotNullConstraintViolation(&pgconn.PgError{Code: codeNotNullViolation}))
	assert.False(t, isCheckConstraintViolation(errors.New("boom")))
}

func TestStatementVerb(t *testing.T) {
	assert.Equal(t, "select", statementVerb(`SELECT * FROM "users"`))
	assert.Equal(t, "update", statementVerb("  UPDATE time_entries SET end_time = now()"))
	assert.Equal(t, "other", statementVerb("WITH x AS (SELECT 1) SELECT * FROM x"))
	assert.Equal(t, "unknown", statementVerb(""))
}
