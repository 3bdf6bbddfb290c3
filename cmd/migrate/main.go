package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"time"

	"punchclock/config"
	logs "punchclock/internal/infra/log"
	"punchclock/internal/infra/persistence/migrations"
	"punchclock/internal/infra/persistence/postgres"

	"github.com/pkg/errors"
	pgLib "github.com/slighter12/go-lib/database/postgres"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

const commandTimeout = 5 * time.Minute

type rootFlags struct {
	dsn string
}

func main() {
	flags := &rootFlags{}

	root := &cobra.Command{
		Use:           "migrate",
		Short:         "Manage the punchclock database schema",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&flags.dsn, "dsn", os.Getenv("DATABASE_URL"),
		"PostgreSQL connection string; defaults to the postgres section of the config")

	root.AddCommand(
		newRunCommand(flags, "up", "Apply all pending migrations", migrations.Up),
		newRunCommand(flags, "down", "Roll back the most recent migration", migrations.Down),
		newRunCommand(flags, "status", "Print the state of every migration", migrations.Status),
		newVersionCommand(flags),
	)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

type migrateFunc func(ctx context.Context, db *sql.DB) error

func newRunCommand(flags *rootFlags, use, short string, run migrateFunc) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), commandTimeout)
			defer cancel()

			sqlDB, closeDB, err := openDatabase(flags)
			if err != nil {
				return err
			}
			defer closeDB()

			return errors.Wrapf(run(ctx, sqlDB), "migrate %s", use)
		},
	}
}

func newVersionCommand(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the current schema version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), commandTimeout)
			defer cancel()

			sqlDB, closeDB, err := openDatabase(flags)
			if err != nil {
				return err
			}
			defer closeDB()

			version, err := migrations.Version(ctx, sqlDB)
			if err != nil {
				return errors.Wrap(err, "read schema version")
			}
			fmt.Fprintln(cmd.OutOrStdout(), version)

			return nil
		},
	}
}

func openDatabase(flags *rootFlags) (*sql.DB, func(), error) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	var (
		db  *gorm.DB
		err error
	)
	if flags.dsn != "" {
		db, err = postgres.OpenDSN(flags.dsn, logger)
	} else {
		var cfg *config.Config
		cfg, err = config.New()
		if err != nil {
			return nil, nil, errors.Wrap(err, "load config")
		}
		if cfgLogger, logErr := logs.NewWithWriter(cfg, os.Stderr); logErr == nil {
			logger = cfgLogger
		}
		db, err = pgLib.New(cfg.Postgres)
	}
	if err != nil {
		return nil, nil, errors.Wrap(err, "connect to PostgreSQL")
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, nil, errors.Wrap(err, "get sql.DB")
	}
	migrations.SetLogger(logger)

	return sqlDB, func() { _ = sqlDB.Close() }, nil
}
