// Package worker is the push endpoint that turns order events into device
// notifications.
package worker

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"marketplace/config"
	"marketplace/internal/delivery"
	"marketplace/internal/delivery/middleware"
	"marketplace/internal/delivery/worker/handler"
	"marketplace/internal/domain/lifecycle"
	"marketplace/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// PushPath is where Pub/Sub, or the local publisher, posts order events.
const PushPath = "/pubsub/push"

const healthTimeout = 2 * time.Second

// pinger is satisfied by *sql.DB.
type pinger interface {
	PingContext(ctx context.Context) error
}

type ServerParams struct {
	fx.In

	Lc          fx.Lifecycle
	Cfg         *config.Config
	Logger      *slog.Logger
	DB          *gorm.DB
	Metrics     *metrics.Registry `optional:"true"`
	PushHandler *handler.PushHandler
}

type server struct {
	port   int
	logger *slog.Logger
	echo   *echo.Echo
}

func NewServer(params ServerParams) (delivery.Delivery, error) {
	sqlDB, err := params.DB.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to unwrap postgres pool")
	}

	srv := &server{
		port:   params.Cfg.Worker.Port,
		logger: params.Logger,
		echo:   newEcho(params.Cfg, params.Logger, params.Metrics, sqlDB, params.PushHandler.HandlePush),
	}
	params.Lc.Append(fx.StopHook(srv.shutdown))

	return srv, nil
}

// newEcho wires the worker routes. Pub/Sub retries anything that is not a
// 2xx, so the chain stays short: no body limit or CORS, only recovery,
// request scope and access logs.
func newEcho(cfg *config.Config, logger *slog.Logger, registry *metrics.Registry, db pinger, push echo.HandlerFunc) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadHeaderTimeout = cfg.HTTP.Timeouts.ReadHeaderTimeout

	e.Use(echomiddleware.Recover())
	e.Use(middleware.NewRequestScope(logger).Process)
	e.Use(middleware.NewLoggerMiddleware(logger, cfg).Handle)
	if registry != nil && cfg.Metrics.Enabled {
		e.Use(registry.Middleware())
		e.GET(cfg.Metrics.Path, echo.WrapHandler(registry.Handler()))
	}

	e.GET("/health", func(c echo.Context) error {
		ctx, cancel := context.WithTimeout(c.Request().Context(), healthTimeout)
		defer cancel()

		if err := db.PingContext(ctx); err != nil {
			return c.JSON(http.StatusServiceUnavailable, map[string]string{"status": "degraded", "database": "unreachable"})
		}

		return c.JSON(http.StatusOK, map[string]string{"status": "ok", "database": "ok"})
	})
	e.POST(PushPath, push)

	return e
}

func (s *server) Serve(_ context.Context) error {
	addr := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.port))
	s.logger.Info("Worker listening", slog.String("addr", addr), slog.String("push", PushPath))

	if err := s.echo.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.Wrap(err, "worker server stopped")
	}

	return nil
}

func (s *server) shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	return errors.Wrap(s.echo.Shutdown(ctx), "worker shutdown")
}
