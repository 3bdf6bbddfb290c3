package repository

import "context"

// TransactionManager runs a unit of work atomically. Clock transitions use it
// so the open-entry check and the insert or close happen in one transaction.
type TransactionManager interface {
	// Execute commits when fn returns nil and rolls back otherwise.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory hands out repositories bound to the running transaction.
type RepositoryFactory interface {
	NewUserRepository() UserRepository
	NewTimeEntryRepository() TimeEntryRepository
}
