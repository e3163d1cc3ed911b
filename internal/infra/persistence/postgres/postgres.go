package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"marketplace/config"
	"marketplace/internal/domain/lifecycle"
	"marketplace/internal/errors"
	"marketplace/internal/infra/metrics"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
	// Metrics is absent in the CLI, which runs without an HTTP surface.
	Metrics *metrics.Registry `optional:"true"`
}

// New opens the primary/replica pool and ties its lifetime to the fx app.
func New(params Params) (*gorm.DB, error) {
	db, err := pgLib.New(params.Config.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open postgres")
	}

	// Multi-step writes go through TransactionManager.Execute, so GORM's
	// implicit per-statement transaction is only overhead.
	db = db.Session(&gorm.Session{
		SkipDefaultTransaction: true,
		Logger:                 newQueryLogger(params.Logger, params.Config),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to unwrap postgres pool")
	}
	if params.Metrics != nil {
		params.Metrics.WatchDB(sqlDB, "primary")
	}

	watcher := newPoolWatcher(params.Logger, sqlDB, params.Config.Database)
	stopWatch := func() {}

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "postgres is unreachable")
			}

			watchCtx, cancelWatch := context.WithCancel(context.Background())
			stopWatch = cancelWatch
			go watcher.run(watchCtx)

			return nil
		},
		OnStop: func(_ context.Context) error {
			stopWatch()

			return sqlDB.Close()
		},
	})

	return db, nil
}

// poolWatcher reports callers that had to wait for a free connection, which
// is the first sign that maxOpenConns is too low for checkout traffic.
type poolWatcher struct {
	logger *slog.Logger
	stats    func() sql.DBStats
	interval time.Duration
	warnAt   time.Duration
}

func newPoolWatcher(logger *slog.Logger, sqlDB *sql.DB, cfg *config.DatabaseConfig) *poolWatcher {
	return &poolWatcher{
		logger:   logger,
		stats:    sqlDB.Stats,
		interval: cfg.PoolMonitorInterval,
		warnAt:   cfg.PoolWaitWarn,
	}
}

func (w *poolWatcher) run(ctx context.Context) {
	if w.logger == nil || w.interval <= 0 {
		return
	}

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	prev := w.stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cur := w.stats()
			w.report(ctx, prev, cur)
			prev = cur
		}
	}
}

func (w *poolWatcher) report(ctx context.Context, prev, cur sql.DBStats) {
	waits := cur.WaitCount - prev.WaitCount
	if waits <= 0 {
		return
	}
	waited := cur.WaitDuration - prev.WaitDuration

	level := slog.LevelDebug
	if waited >= w.warnAt {
		level = slog.LevelWarn
	}

	w.logger.LogAttrs(ctx, level, "Postgres pool saturated",
		slog.Int64("waits", waits),
		slog.Duration("waited", waited),
		slog.Duration("avgWait", waited/time.Duration(waits)),
		slog.Int("inUse", cur.InUse),
		slog.Int("idle", cur.Idle),
		slog.Int("maxOpen", cur.MaxOpenConnections),
	)
}
