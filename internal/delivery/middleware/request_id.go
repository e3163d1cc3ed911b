// Package middleware holds echo middleware shared by the API and the worker.
package middleware

import (
	"log/slog"

	deliverycontext "marketplace/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const maxRequestIDLength = 128

// RequestScope opens the request scope every use case logs through: the
// request id, a logger tagged with it, and the client address and agent.
type RequestScope struct {
	logger *slog.Logger
}

func NewRequestScope(logger *slog.Logger) *RequestScope {
	return &RequestScope{logger: logger}
}

// Process trusts an incoming X-Request-Id only when it is short enough to be
// an id; anything else is replaced with a fresh UUID.
func (m *RequestScope) Process(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := c.Request()

		requestID := req.Header.Get(deliverycontext.HeaderXRequestID)
		if requestID == "" || len(requestID) > maxRequestIDLength {
			requestID = uuid.NewString()
		}
		c.Response().Header().Set(deliverycontext.HeaderXRequestID, requestID)

		ctx := deliverycontext.WithRequestID(req.Context(), requestID)
		ctx = deliverycontext.WithLogger(ctx, m.logger.With(slog.String("request_id", requestID)))
		ctx = deliverycontext.WithClient(ctx, deliverycontext.Client{
			IP:        c.RealIP(),
			UserAgent: req.UserAgent(),
		})
		c.SetRequest(req.WithContext(ctx))

		return next(c)
	}
}
