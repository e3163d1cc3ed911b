package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"marketplace/config"
	"marketplace/internal/errors"

	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// queryLogger routes GORM output into slog. Failed statements are logged at
// error level, except lookups that simply found nothing, which the
// repositories already translate into domain not-found errors.
type queryLogger struct {
	logger *slog.Logger
	level  gormlogger.LogLevel
	slow   time.Duration
	now    func() time.Time
}

func newQueryLogger(logger *slog.Logger, cfg *config.Config) gormlogger.Interface {
	level := gormlogger.Warn
	if cfg.Env.Debug {
		level = gormlogger.Info
	}

	return &queryLogger{
		logger: logger,
		level:  level,
		slow:   cfg.Database.SlowQueryThreshold,
		now:    time.Now,
	}
}

func (l *queryLogger) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	cp := *l
	cp.level = level

	return &cp
}

func (l *queryLogger) Info(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, gormlogger.Info, slog.LevelInfo, msg, args)
}

func (l *queryLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, gormlogger.Warn, slog.LevelWarn, msg, args)
}

func (l *queryLogger) Error(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, gormlogger.Error, slog.LevelError, msg, args)
}

func (l *queryLogger) printf(ctx context.Context, threshold gormlogger.LogLevel, level slog.Level, msg string, args []any) {
	if l.logger == nil || l.level < threshold {
		return
	}
	l.logger.Log(ctx, level, "gorm", slog.String("message", fmt.Sprintf(msg, args...)))
}

func (l *queryLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.logger == nil || l.level <= gormlogger.Silent {
		return
	}
	elapsed := l.now().Sub(begin)

	switch {
	case err != nil && l.level >= gormlogger.Error && !errors.Is(err, gorm.ErrRecordNotFound):
		l.logger.LogAttrs(ctx, slog.LevelError, "Query failed", append(queryAttrs(fc, elapsed), slog.Any("error", err))...)
	case l.slow > 0 && elapsed > l.slow && l.level >= gormlogger.Warn:
		l.logger.LogAttrs(ctx, slog.LevelWarn, "Slow query", append(queryAttrs(fc, elapsed), slog.Duration("threshold", l.slow))...)
	case l.level >= gormlogger.Info:
		l.logger.LogAttrs(ctx, slog.LevelDebug, "Query", queryAttrs(fc, elapsed)...)
	}
}

func queryAttrs(fc func() (string, int64), elapsed time.Duration) []slog.Attr {
	sql, rows := fc()

	return []slog.Attr{
		slog.String("sql", sql),
		slog.Int64("rows", rows),
		slog.Duration("elapsed", elapsed),
	}
}
