package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"marketplace/config"
	domainerrors "marketplace/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLimiter(enabled bool, perMinute, burst int) *RateLimitMiddleware {
	return NewRateLimitMiddleware(&config.Config{
		Auth: &config.AuthConfig{
			RateLimit: config.RateLimitConfig{
				Enabled:           enabled,
				RequestsPerMinute: perMinute,
				Burst:             burst,
			},
		},
	})
}

func hit(h echo.HandlerFunc, remoteAddr string) error {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", nil)
	req.RemoteAddr = remoteAddr

	return h(e.NewContext(req, httptest.NewRecorder()))
}

func noContent(c echo.Context) error {
	return c.NoContent(http.StatusNoContent)
}

func TestRateLimit_BurstThenReject(t *testing.T) {
	m := newTestLimiter(true, 60, 2)
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return now }
	h := m.Handle(noContent)

	require.NoError(t, hit(h, "203.0.113.7:4000"))
	require.NoError(t, hit(h, "203.0.113.7:4001"))
	assert.ErrorIs(t, hit(h, "203.0.113.7:4002"), domainerrors.ErrTooManyRequests)

	// another client has its own bucket
	require.NoError(t, hit(h, "198.51.100.2:5000"))

	// one token refills per second at 60/min
	now = now.Add(time.Second)
	require.NoError(t, hit(h, "203.0.113.7:4003"))
	assert.ErrorIs(t, hit(h, "203.0.113.7:4004"), domainerrors.ErrTooManyRequests)
}

func TestRateLimit_Disabled(t *testing.T) {
	m := newTestLimiter(false, 1, 1)
	h := m.Handle(noContent)

	for range 5 {
		require.NoError(t, hit(h, "203.0.113.7:4000"))
	}
}

func TestRateLimit_SweepsIdleVisitors(t *testing.T) {
	m := newTestLimiter(true, 60, 1)
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return now }

	assert.True(t, m.allow("203.0.113.7"))
	assert.True(t, m.allow("198.51.100.2"))
	require.Len(t, m.visitors, 2)

	now = now.Add(limiterIdleTTL + time.Minute)
	assert.True(t, m.allow("198.51.100.2"))
	assert.Len(t, m.visitors, 1)
}
