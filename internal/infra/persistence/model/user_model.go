package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. Email uniqueness is enforced on lower(email).
type UserModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email        string    `gorm:"type:varchar(255);not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	SessionID    *string   `gorm:"type:varchar(64)"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
