package impl

import (
	"context"
	"io"
	"log/slog"
	"time"

	"punchclock/config"
	"punchclock/internal/domain/repository"
	mockRepo "punchclock/internal/mocks/repository"

	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Worktime: &config.WorktimeConfig{
			MaxShift:           15 * time.Hour,
			SaturdayCutoffHour: 18,
		},
	}
}

// expectTransaction runs the transaction body against a factory that hands out entryRepo.
func expectTransaction(
	txManager *mockRepo.MockTransactionManager,
	factory *mockRepo.MockRepositoryFactory,
	entryRepo repository.TimeEntryRepository,
) {
	factory.EXPECT().NewTimeEntryRepository().Return(entryRepo)

	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}

func mustTime(value string) time.Time {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		panic(err)
	}

	return t
}
