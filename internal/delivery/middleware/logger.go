package middleware

import (
	"log/slog"

	"marketplace/config"
	deliverycontext "marketplace/internal/delivery/context"

	"github.com/labstack/echo/v4"
	slogecho "github.com/samber/slog-echo"
)

// LoggerMiddleware writes one access log line per request through slog-echo,
// tagged with the request id from the request scope. Health and metrics scrapes are not logged.
type LoggerMiddleware struct {
	access echo.MiddlewareFunc
}

func NewLoggerMiddleware(logger *slog.Logger, cfg *config.Config) *LoggerMiddleware {
	skipPaths := []string{"/health"}
	if cfg.Metrics != nil && cfg.Metrics.Path != "" {
		skipPaths = append(skipPaths, cfg.Metrics.Path)
	}

	return &LoggerMiddleware{
		access: slogecho.NewWithConfig(logger, slogecho.Config{
			DefaultLevel:     slog.LevelInfo,
			ClientErrorLevel: slog.LevelWarn,
			ServerErrorLevel: slog.LevelError,
			// Debug adds the user agent and headers; bodies stay out of logs.
			WithUserAgent:     cfg.Env.Debug,
			WithRequestHeader: cfg.Env.Debug,
			Filters:           []slogecho.Filter{slogecho.IgnorePath(skipPaths...)},
		}),
	}
}

func (m *LoggerMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return m.access(func(c echo.Context) error {
		if id := deliverycontext.RequestID(c.Request().Context()); id != "" {
			slogecho.AddCustomAttributes(c, slog.String("request_id", id))
		}

		return next(c)
	})
}
