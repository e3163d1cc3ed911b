// Package context carries request-scoped values from the delivery layer into
// the use cases: the request id, a logger tagged with it, and who the client
// is as far as the edge could tell.
package context

import (
	"context"
	"log/slog"

	"github.com/labstack/echo/v4"
)

// HeaderXRequestID is echoed back on every response.
const HeaderXRequestID = "X-Request-Id"

// Client identifies the caller at the network edge. Sessions record it so
// users can tell their signed-in devices apart.
type Client struct {
	IP        string
	UserAgent string
}

type scopeKey struct{}

// scope is stored once per request; the With* helpers copy it so a derived
// context never mutates its parent.
type scope struct {
	requestID string
	logger    *slog.Logger
	client    Client
}

func from(ctx context.Context) scope {
	if s, ok := ctx.Value(scopeKey{}).(scope); ok {
		return s
	}

	return scope{}
}

func with(ctx context.Context, mutate func(*scope)) context.Context {
	s := from(ctx)
	mutate(&s)

	return context.WithValue(ctx, scopeKey{}, s)
}

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return with(ctx, func(s *scope) { s.requestID = requestID })
}

// RequestID is empty outside of a request.
func RequestID(ctx context.Context) string {
	return from(ctx).requestID
}

func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return with(ctx, func(s *scope) { s.logger = logger })
}

// LoggerOr returns the request logger, or fallback when ctx has none.
func LoggerOr(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger := from(ctx).logger; logger != nil {
		return logger
	}

	return fallback
}

func WithClient(ctx context.Context, client Client) context.Context {
	return with(ctx, func(s *scope) { s.client = client })
}

func ClientOf(ctx context.Context) Client {
	return from(ctx).client
}

// EchoRequestID reads the id the request middleware stored on the request.
func EchoRequestID(c echo.Context) string {
	return RequestID(c.Request().Context())
}
