package api

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"marketplace/config"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func testConfig() *config.Config {
	cfg := &config.Config{Metrics: &config.MetricsConfig{}}
	cfg.HTTP.MaxRequestBodySize = "1KB"
	cfg.HTTP.AllowOrigins = []string{"https://shop.example.com"}

	return cfg
}

func TestLocalUploadDir(t *testing.T) {
	dir, ok := localUploadDir("file:///var/lib/marketplace/uploads")
	assert.True(t, ok)
	assert.Equal(t, "/var/lib/marketplace/uploads", dir)

	for _, bucket := range []string{"", "gs://market-images", "s3://bucket?region=eu-west-1"} {
		_, ok := localUploadDir(bucket)
		assert.False(t, ok, bucket)
	}
}

func TestNewEcho_Chain(t *testing.T) {
	e := newEcho(testConfig(), slog.New(slog.NewTextHandler(io.Discard, nil)), nil)
	e.POST("/echo", func(c echo.Context) error {
		body, err := io.ReadAll(c.Request().Body)
		if err != nil {
			return err
		}

		return c.String(http.StatusOK, string(body))
	})
	e.GET("/panic", func(echo.Context) error { panic("boom") })

	t.Run("body limit", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader(strings.Repeat("x", 2048)))
		e.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	})

	t.Run("cors and request id", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader("hi"))
		req.Header.Set(echo.HeaderOrigin, "https://shop.example.com")
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "https://shop.example.com", rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
		assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))
	})

	t.Run("panic recovered", func(t *testing.T) {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/panic", nil))
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}
