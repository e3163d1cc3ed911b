// Package api is the public REST server.
package api

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"strconv"

	"marketplace/config"
	"marketplace/internal/delivery"
	apimiddleware "marketplace/internal/delivery/api/middleware"
	"marketplace/internal/delivery/api/router"
	"marketplace/internal/delivery/api/validator"
	"marketplace/internal/delivery/middleware"
	"marketplace/internal/domain/lifecycle"
	"marketplace/internal/errors"
	"marketplace/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
	"golang.org/x/net/http2"
)

// uploadsPath serves file:// buckets in local development.
const uploadsPath = "/uploads"

type ServerParams struct {
	fx.In

	Lc           fx.Lifecycle
	Cfg          *config.Config
	Logger       *slog.Logger
	Metrics      *metrics.Registry
	RouterParams router.RouterParams
}

type apiServer struct {
	addr   string
	h2     *http2.Server
	logger *slog.Logger
	echo   *echo.Echo
}

func NewServer(params ServerParams) (delivery.Delivery, error) {
	e := newEcho(params.Cfg, params.Logger, params.Metrics)
	router.NewRouter(params.RouterParams).RegisterRoutes(e)
	if dir, ok := localUploadDir(params.Cfg.Storage.BucketURL); ok {
		e.Static(uploadsPath, dir)
	}

	srv := &apiServer{
		addr:   net.JoinHostPort("0.0.0.0", strconv.Itoa(params.Cfg.HTTP.Port)),
		h2:     &http2.Server{IdleTimeout: params.Cfg.HTTP.Timeouts.IdleTimeout},
		logger: params.Logger,
		echo:   e,
	}
	params.Lc.Append(fx.StopHook(srv.stop))

	return srv, nil
}

func newEcho(cfg *config.Config, logger *slog.Logger, registry *metrics.Registry) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	timeouts := cfg.HTTP.Timeouts
	e.Server.ReadTimeout = timeouts.ReadTimeout
	e.Server.ReadHeaderTimeout = timeouts.ReadHeaderTimeout
	e.Server.WriteTimeout = timeouts.WriteTimeout
	e.Server.IdleTimeout = timeouts.IdleTimeout

	e.HTTPErrorHandler = apimiddleware.NewErrorMiddleware(logger, cfg).HandleHTTPError
	e.Validator = validator.New()
	e.Use(chain(cfg, logger, registry)...)

	return e
}

// chain is ordered: panics are recovered first and every later stage logs
// with the request id the scope assigns.
func chain(cfg *config.Config, logger *slog.Logger, registry *metrics.Registry) []echo.MiddlewareFunc {
	cors := echomiddleware.DefaultCORSConfig
	if len(cfg.HTTP.AllowOrigins) > 0 {
		cors.AllowOrigins = cfg.HTTP.AllowOrigins
		cors.AllowCredentials = true
	}

	mws := []echo.MiddlewareFunc{
		echomiddleware.Recover(),
		middleware.NewRequestScope(logger).Process,
		middleware.NewLoggerMiddleware(logger, cfg).Handle,
	}
	if registry != nil && cfg.Metrics.Enabled {
		mws = append(mws, registry.Middleware())
	}

	return append(mws,
		echomiddleware.CORSWithConfig(cors),
		echomiddleware.BodyLimit(cfg.HTTP.MaxRequestBodySize),
	)
}

// localUploadDir returns the directory behind a file:// bucket URL.
func localUploadDir(bucketURL string) (string, bool) {
	u, err := url.Parse(bucketURL)
	if err != nil || u.Scheme != "file" || u.Path == "" {
		return "", false
	}

	return u.Path, true
}

// Serve speaks HTTP/1.1 and cleartext HTTP/2 on the same port.
func (s *apiServer) Serve(_ context.Context) error {
	s.logger.Info("API listening", slog.String("addr", s.addr))

	if err := s.echo.StartH2CServer(s.addr, s.h2); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.Wrap(err, "api server stopped")
	}

	return nil
}

func (s *apiServer) stop(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down API server")

	return errors.Wrap(s.echo.Shutdown(ctx), "api shutdown")
}
