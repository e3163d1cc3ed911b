package postgres

import (
	"bytes"
	"context"
	"database/sql"
	"log/slog"
	"testing"
	"time"

	"marketplace/config"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func bufferLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer

	return slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})), &buf
}

func testQueryLogger(logger *slog.Logger, debug bool) *queryLogger {
	cfg := &config.Config{}
	cfg.Env.Debug = debug
	cfg.Database = &config.DatabaseConfig{SlowQueryThreshold: 100 * time.Millisecond}

	l := newQueryLogger(logger, cfg).(*queryLogger)
	l.now = func() time.Time { return time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC) }

	return l
}

func stmt() (string, int64) {
	return `SELECT * FROM "products" WHERE id = 'p-1'`, 1
}

func TestQueryLogger_Trace(t *testing.T) {
	end := time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)

	tests := []struct {
		name    string
		debug   bool
		elapsed time.Duration
		err     error
		want    string
	}{
		{name: "failure", elapsed: time.Millisecond, err: errors.New("deadlock detected"), want: "Query failed"},
		{name: "slow", elapsed: 250 * time.Millisecond, want: "Slow query"},
		{name: "fast without debug is quiet", elapsed: time.Millisecond},
		{name: "not found is quiet", elapsed: time.Millisecond, err: gorm.ErrRecordNotFound},
		{name: "fast with debug", debug: true, elapsed: time.Millisecond, want: "msg=Query "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, buf := bufferLogger()
			l := testQueryLogger(logger, tt.debug)

			l.Trace(context.Background(), end.Add(-tt.elapsed), stmt, tt.err)

			if tt.want == "" {
				assert.Empty(t, buf.String())

				return
			}
			assert.Contains(t, buf.String(), tt.want)
			assert.Contains(t, buf.String(), "products")
		})
	}
}

func TestQueryLogger_LogModeSilences(t *testing.T) {
	logger, buf := bufferLogger()
	l := testQueryLogger(logger, true).LogMode(gormlogger.Silent)

	l.Trace(context.Background(), time.Time{}, stmt, errors.New("boom"))
	l.Warn(context.Background(), "pool %s", "exhausted")

	assert.Empty(t, buf.String())
}

func TestPoolWatcher_Report(t *testing.T) {
	logger, buf := bufferLogger()
	w := &poolWatcher{logger: logger, warnAt: 50 * time.Millisecond}

	w.report(context.Background(), sql.DBStats{WaitCount: 3}, sql.DBStats{WaitCount: 3})
	assert.Empty(t, buf.String())

	w.report(context.Background(),
		sql.DBStats{WaitCount: 3, WaitDuration: time.Second},
		sql.DBStats{WaitCount: 5, WaitDuration: time.Second + 200*time.Millisecond, InUse: 50, MaxOpenConnections: 50},
	)
	out := buf.String()
	assert.Contains(t, out, "level=WARN")
	assert.Contains(t, out, "waits=2")
	assert.Contains(t, out, "avgWait=100ms")
}
