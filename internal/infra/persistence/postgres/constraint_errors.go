package postgres

import (
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"punchclock/internal/errors"
)

// PostgreSQL SQLSTATE codes for integrity violations.
const (
	codeNotNullViolation    = "23502"
	codeForeignKeyViolation = "23503"
	codeUniqueViolation     = "23505"
	codeCheckViolation      = "23514"
)

// Constraint names declared by the migrations.
const (
	constraintOpenEntryPerUser = "uniq_time_entries_open_per_user"
	constraintUserEmail        = "uniq_users_email_lower"
)

func asPgError(err error) (*pgconn.PgError, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr, true
	}

	return nil, false
}

func hasSQLState(err error, code string) bool {
	pgErr, ok := asPgError(err)

	return ok && pgErr.Code == code
}

// Helper functions for PostgreSQL error checking
func isUniqueConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey) || hasSQLState(err, codeUniqueViolation)
}

func isForeignKeyConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrForeignKeyViolated) || hasSQLState(err, codeForeignKeyViolation)
}

func isNotNullConstraintViolation(err error) bool {
	return hasSQLState(err, codeNotNullViolation)
}

func isCheckConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrCheckConstraintViolated) || hasSQLState(err, codeCheckViolation)
}

// violatesConstraint reports whether err was raised by the named constraint.
// Translated GORM errors carry no name, so they match any constraint of their kind.
func violatesConstraint(err error, name string) bool {
	if pgErr, ok := asPgError(err); ok {
		return pgErr.ConstraintName == name
	}

	return errors.Is(err, gorm.ErrDuplicatedKey)
}
