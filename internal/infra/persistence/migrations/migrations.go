// Package migrations embeds the SQL schema and applies it with goose.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"
	"sync"

	"punchclock/internal/errors"

	"github.com/pressly/goose/v3"
)

//go:embed sql/*.sql
var embedded embed.FS

const dialect = "postgres"

var setupOnce sync.Once

// setup points goose at the embedded schema. goose keeps this as package state.
func setup() {
	setupOnce.Do(func() {
		sub, err := fs.Sub(embedded, "sql")
		if err != nil {
			panic(err)
		}
		goose.SetBaseFS(sub)
		if err := goose.SetDialect(dialect); err != nil {
			panic(err)
		}
	})
}

// Up applies all pending migrations.
func Up(ctx context.Context, db *sql.DB) error {
	setup()

	if err := goose.UpContext(ctx, db, "."); err != nil {
		return errors.Wrap(err, "goose up")
	}

	return nil
}

// Down rolls back the most recent migration.
func Down(ctx context.Context, db *sql.DB) error {
	setup()

	if err := goose.DownContext(ctx, db, "."); err != nil {
		return errors.Wrap(err, "goose down")
	}

	return nil
}

// Status logs the applied state of every migration.
func Status(ctx context.Context, db *sql.DB) error {
	setup()

	if err := goose.StatusContext(ctx, db, "."); err != nil {
		return errors.Wrap(err, "goose status")
	}

	return nil
}

// Version returns the current schema version.
func Version(ctx context.Context, db *sql.DB) (int64, error) {
	setup()

	version, err := goose.GetDBVersionContext(ctx, db)
	if err != nil {
		return 0, errors.Wrap(err, "goose version")
	}

	return version, nil
}

// SetLogger routes goose output through slog.
func SetLogger(logger *slog.Logger) {
	goose.SetLogger(&slogAdapter{logger: logger})
}

type slogAdapter struct {
	logger *slog.Logger
}

func (a *slogAdapter) Fatalf(format string, v ...any) {
	a.logger.Error("goose fatal", slog.String("detail", sprintf(format, v...)))
}

func (a *slogAdapter) Printf(format string, v ...any) {
	a.logger.Info("goose", slog.String("detail", sprintf(format, v...)))
}

func sprintf(format string, v ...any) string {
	return strings.TrimSpace(fmt.Sprintf(format, v...))
}
