package model

import (
	"time"

	"github.com/google/uuid"
)

// TimeEntryModel mirrors the 'time_entries' table. A NULL end_time marks the open entry;
// the partial unique index uniq_time_entries_open_per_user allows one per user.
type TimeEntryModel struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey"`
	UserID        uuid.UUID  `gorm:"type:uuid;not null"`
	StartTime     time.Time  `gorm:"type:timestamptz;not null"`
	EndTime       *time.Time `gorm:"type:timestamptz"`
	StartTimezone string     `gorm:"type:varchar(64);not null"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (TimeEntryModel) TableName() string {
	return "time_entries"
}

// DailyHoursRow is the scan target of the per-day aggregate.
type DailyHoursRow struct {
	Day   string
	Hours float64
}
