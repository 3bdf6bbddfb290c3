package postgres

import (
	"context"
	"time"

	"punchclock/internal/domain/entity"
	domainerrors "punchclock/internal/domain/errors"
	"punchclock/internal/domain/repository"
	"punchclock/internal/errors"
	"punchclock/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	sumHoursInRangeSQL = `SELECT COALESCE(SUM(EXTRACT(EPOCH FROM (end_time - start_time))), 0)::float8 / 3600.0 AS hours
FROM time_entries
WHERE user_id = ? AND end_time IS NOT NULL AND start_time >= ? AND start_time < ?`

	sumHoursByDateSQL = `SELECT to_char(start_time AT TIME ZONE 'UTC', 'YYYY-MM-DD') AS day,
	SUM(EXTRACT(EPOCH FROM (end_time - start_time)))::float8 / 3600.0 AS hours
FROM time_entries
WHERE user_id = ? AND end_time IS NOT NULL AND start_time >= ? AND start_time < ?
GROUP BY day
ORDER BY day`
)

// timeEntryRepository implements repository.TimeEntryRepository using GORM.
type timeEntryRepository struct {
	db *gorm.DB
}

// NewTimeEntryRepository is the constructor for timeEntryRepository.
func NewTimeEntryRepository(db *gorm.DB) repository.TimeEntryRepository {
	return &timeEntryRepository{db: db}
}

// FindOpenEntry returns the user's open entry.
func (repo *timeEntryRepository) FindOpenEntry(ctx context.Context, userID uuid.UUID) (*entity.TimeEntry, error) {
	var entryM model.TimeEntryModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ? AND end_time IS NULL", userID).
		Take(&entryM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTimeEntryNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find open entry")
	}

	return toTimeEntryDomain(&entryM), nil
}

// InsertEntry creates an open entry. The partial unique index rejects a second open entry.
func (repo *timeEntryRepository) InsertEntry(ctx context.Context, entry *entity.TimeEntry) error {
	if entry.ID == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return errors.Wrap(err, "generate entry id")
		}
		entry.ID = id
	}

	entryM := fromTimeEntryDomain(entry)
	entryM.EndTime = nil

	if err := repo.db.WithContext(ctx).Create(entryM).Error; err != nil {
		if isUniqueConstraintViolation(err) && violatesConstraint(err, constraintOpenEntryPerUser) {
			return domainerrors.ErrAlreadyClockedIn.WrapMessage("open entry already exists")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUnauthenticated.WrapMessage("entry owner does not exist")
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrInvalidInput.WithDetails("entry violates a check constraint")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to insert entry")
	}

	entry.EndTime = nil
	entry.CreatedAt = entryM.CreatedAt
	entry.UpdatedAt = entryM.UpdatedAt

	return nil
}

// CloseEntry sets end_time only while the entry is still open, so an entry closes exactly once.
func (repo *timeEntryRepository) CloseEntry(ctx context.Context, id uuid.UUID, end time.Time) (bool, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.TimeEntryModel{}).
		Where("id = ? AND end_time IS NULL", id).
		Update("end_time", end.UTC())
	if result.Error != nil {
		if isCheckConstraintViolation(result.Error) {
			return false, domainerrors.ErrInvalidInput.WithDetails("end time violates entry bounds")
		}

		return false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to close entry")
	}

	return result.RowsAffected == 1, nil
}

// SumHoursInRange sums closed entry hours with start in [from, to).
func (repo *timeEntryRepository) SumHoursInRange(ctx context.Context, userID uuid.UUID, from, to time.Time) (float64, error) {
	var hours float64
	err := repo.db.WithContext(ctx).
		Raw(sumHoursInRangeSQL, userID, from.UTC(), to.UTC()).
		Scan(&hours).Error
	if err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "failed to sum hours")
	}

	return hours, nil
}

// SumHoursGroupedByDate sums closed entry hours per UTC start date.
func (repo *timeEntryRepository) SumHoursGroupedByDate(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]entity.DailyHours, error) {
	var rows []model.DailyHoursRow
	err := repo.db.WithContext(ctx).
		Raw(sumHoursByDateSQL, userID, from.UTC(), to.UTC()).
		Scan(&rows).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to sum hours by date")
	}

	days := make([]entity.DailyHours, 0, len(rows))
	for _, row := range rows {
		days = append(days, entity.DailyHours{Day: row.Day, Hours: row.Hours})
	}

	return days, nil
}

// ListClosed returns the user's closed entries, oldest first.
func (repo *timeEntryRepository) ListClosed(ctx context.Context, userID uuid.UUID) ([]*entity.TimeEntry, error) {
	var entriesM []model.TimeEntryModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ? AND end_time IS NOT NULL", userID).
		Order("start_time ASC").
		Find(&entriesM).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list entries")
	}

	entries := make([]*entity.TimeEntry, 0, len(entriesM))
	for i := range entriesM {
		entries = append(entries, toTimeEntryDomain(&entriesM[i]))
	}

	return entries, nil
}

// --- Mapper Functions ---

func toTimeEntryDomain(data *model.TimeEntryModel) *entity.TimeEntry {
	if data == nil {
		return nil
	}

	entry := &entity.TimeEntry{
		ID:            data.ID,
		UserID:        data.UserID,
		StartTime:     data.StartTime.UTC(),
		StartTimezone: data.StartTimezone,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
	if data.EndTime != nil {
		end := data.EndTime.UTC()
		entry.EndTime = &end
	}

	return entry
}

func fromTimeEntryDomain(data *entity.TimeEntry) *model.TimeEntryModel {
	if data == nil {
		return nil
	}

	entryM := &model.TimeEntryModel{
		ID:            data.ID,
		UserID:        data.UserID,
		StartTime:     data.StartTime.UTC(),
		StartTimezone: data.StartTimezone,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
	if data.EndTime != nil {
		end := data.EndTime.UTC()
		entryM.EndTime = &end
	}

	return entryM
}
