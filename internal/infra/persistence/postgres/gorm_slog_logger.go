package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"punchclock/config"
	deliverycontext "punchclock/internal/delivery/context"
	"punchclock/internal/errors"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const defaultGormSlowThreshold = 200 * time.Millisecond

// dbObserver receives the duration of every statement.
type dbObserver interface {
	ObserveDB(operation string, elapsed time.Duration, err error)
}

type gormSlogLogger struct {
	logger                     *slog.Logger
	observer                   dbObserver
	level                      logger.LogLevel
	slowThreshold              time.Duration
	ignoreRecordNotFoundErrors bool
}

func newGormSlogLogger(baseLogger *slog.Logger, cfg *config.Config, observer dbObserver) logger.Interface {
	level := logger.Warn
	if cfg != nil && cfg.Env.Debug {
		level = logger.Info
	}

	return &gormSlogLogger{
		logger:                     baseLogger,
		observer:                   observer,
		level:                      level,
		slowThreshold:              defaultGormSlowThreshold,
		ignoreRecordNotFoundErrors: true,
	}
}

func (l *gormSlogLogger) LogMode(level logger.LogLevel) logger.Interface {
	cloned := *l
	cloned.level = level

	return &cloned
}

// loggerFor prefers the request-scoped logger so statements carry the request id.
func (l *gormSlogLogger) loggerFor(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, l.logger)
}

func (l *gormSlogLogger) Info(ctx context.Context, msg string, args ...any) {
	l.logf(ctx, logger.Info, slog.LevelInfo, "GORM info", msg, args...)
}

func (l *gormSlogLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.logf(ctx, logger.Warn, slog.LevelWarn, "GORM warn", msg, args...)
}

func (l *gormSlogLogger) Error(ctx context.Context, msg string, args ...any) {
	l.logf(ctx, logger.Error, slog.LevelError, "GORM error", msg, args...)
}

func (l *gormSlogLogger) logf(ctx context.Context, min logger.LogLevel, level slog.Level, title, msg string, args ...any) {
	log := l.loggerFor(ctx)
	if l.level < min || log == nil {
		return
	}

	log.LogAttrs(ctx, level, title, slog.String("message", fmt.Sprintf(msg, args...)))
}

func (l *gormSlogLogger) Trace(ctx context.Context, begin time.Time, sqlAndRowsFn func() (string, int64), err error) {
	elapsed := time.Since(begin)

	if l.observer != nil {
		sql, _ := sqlAndRowsFn()
		l.observer.ObserveDB(statementVerb(sql), elapsed, observedError(err))
	}

	log := l.loggerFor(ctx)
	if log == nil || l.level == logger.Silent {
		return
	}

	if l.shouldLogError(err) {
		attrs := slices.Clone(l.buildQueryAttrs(sqlAndRowsFn, elapsed))
		attrs = append(attrs, slog.String("error", err.Error()))

		// Constraint conflicts are expected outcomes mapped to domain errors.
		level := slog.LevelError
		if isUniqueConstraintViolation(err) {
			level = slog.LevelDebug
		}
		log.LogAttrs(ctx, level, "GORM query failed", attrs...)

		return
	}

	if l.shouldLogSlow(elapsed) {
		attrs := slices.Clone(l.buildQueryAttrs(sqlAndRowsFn, elapsed))
		attrs = append(attrs, slog.Duration("slowThreshold", l.slowThreshold))
		log.LogAttrs(ctx, slog.LevelWarn, "GORM slow query", attrs...)

		return
	}

	if l.level >= logger.Info {
		log.LogAttrs(ctx, slog.LevelDebug, "GORM query", l.buildQueryAttrs(sqlAndRowsFn, elapsed)...)
	}
}

func (l *gormSlogLogger) buildQueryAttrs(sqlAndRowsFn func() (string, int64), elapsed time.Duration) []slog.Attr {
	sql, rows := sqlAndRowsFn()

	return []slog.Attr{
		slog.Duration("elapsed", elapsed),
		slog.Int64("rows", rows),
		slog.String("sql", sql),
	}
}

func (l *gormSlogLogger) shouldLogError(err error) bool {
	if err == nil || l.level < logger.Error {
		return false
	}

	if l.ignoreRecordNotFoundErrors && errors.Is(err, gorm.ErrRecordNotFound) {
		return false
	}

	return true
}

func (l *gormSlogLogger) shouldLogSlow(elapsed time.Duration) bool {
	return l.slowThreshold > 0 && elapsed > l.slowThreshold && l.level >= logger.Warn
}

// statementVerb labels a statement by its leading keyword.
func statementVerb(sql string) string {
	fields := strings.Fields(sql)
	if len(fields) == 0 {
		return "unknown"
	}

	switch verb := strings.ToLower(fields[0]); verb {
	case "select", "insert", "update", "delete", "begin", "commit", "rollback", "savepoint":
		return verb
	default:
		return "other"
	}
}

func observedError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}

	return err
}
