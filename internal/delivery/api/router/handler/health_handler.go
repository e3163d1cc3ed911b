package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"marketplace/internal/delivery/api/response"
	deliverycontext "marketplace/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const healthPingTimeout = 2 * time.Second

// Pinger reports whether a backing store is reachable. *sql.DB satisfies it.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// HealthHandlerParams holds dependencies for HealthHandler, injected by Fx.
type HealthHandlerParams struct {
	fx.In

	DB     Pinger
	Logger *slog.Logger
}

// HealthHandler reports process and database health.
type HealthHandler struct {
	db     Pinger
	logger *slog.Logger
}

// NewHealthHandler is the constructor for HealthHandler.
func NewHealthHandler(params HealthHandlerParams) *HealthHandler {
	return &HealthHandler{
		db:     params.DB,
		logger: params.Logger,
	}
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}

// HealthCheck answers 200 when the database is reachable and 503 otherwise.
func (h *HealthHandler) HealthCheck(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), healthPingTimeout)
	defer cancel()

	if err := h.db.PingContext(ctx); err != nil {
		deliverycontext.LoggerOr(ctx, h.logger).Warn("Health check database ping failed", slog.Any("error", err))

		return response.Success(c, http.StatusServiceUnavailable, HealthResponse{Status: "degraded", Database: "unreachable"})
	}

	return response.OK(c, HealthResponse{Status: "ok", Database: "ok"})
}
