package context

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestScope_Empty(t *testing.T) {
	ctx := context.Background()
	fallback := slog.Default()

	assert.Empty(t, RequestID(ctx))
	assert.Equal(t, Client{}, ClientOf(ctx))
	assert.Same(t, fallback, LoggerOr(ctx, fallback))
}

func TestScope_LayersDoNotLeakIntoParent(t *testing.T) {
	reqLogger := slog.Default().With(slog.String("request_id", "req-1"))

	parent := WithRequestID(context.Background(), "req-1")
	child := WithLogger(parent, reqLogger)
	child = WithClient(child, Client{IP: "203.0.113.7", UserAgent: "curl/8.5"})

	assert.Equal(t, "req-1", RequestID(child))
	assert.Same(t, reqLogger, LoggerOr(child, nil))
	assert.Equal(t, "203.0.113.7", ClientOf(child).IP)

	assert.Nil(t, LoggerOr(parent, nil))
	assert.Empty(t, ClientOf(parent).UserAgent)
}

func TestEchoRequestID(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/products", nil)
	req = req.WithContext(WithRequestID(req.Context(), "req-9"))
	c := echo.New().NewContext(req, httptest.NewRecorder())

	assert.Equal(t, "req-9", EchoRequestID(c))
}
