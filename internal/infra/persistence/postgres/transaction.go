package postgres

import (
	"context"

	"punchclock/internal/domain/repository"
	"punchclock/internal/errors"

	"gorm.io/gorm"
)

type gormTransactionManager struct {
	db *gorm.DB
}

// txRepositories binds every repository it creates to one GORM transaction.
type txRepositories struct {
	tx *gorm.DB
}

func (f *txRepositories) NewUserRepository() repository.UserRepository {
	return NewUserRepository(f.tx)
}

func (f *txRepositories) NewTimeEntryRepository() repository.TimeEntryRepository {
	return NewTimeEntryRepository(f.tx)
}

func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &gormTransactionManager{db: db}
}

// Execute delegates to gorm's Transaction, which rolls back on error or panic.
// Errors from fn pass through untouched so AppError codes survive; only
// begin and commit failures are wrapped here.
func (tm *gormTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	var fnErr error

	err := tm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		fnErr = fn(&txRepositories{tx: tx})

		return fnErr
	})
	if fnErr != nil {
		return fnErr
	}
	if err != nil {
		return errors.Wrap(err, "failed to run transaction")
	}

	return nil
}
