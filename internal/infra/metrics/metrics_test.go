package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"marketplace/config"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRegistry() *Registry {
	cfg := &config.Config{}
	cfg.Env.ServiceName = "test"

	return NewRegistry(cfg)
}

func TestRegistry_Middleware(t *testing.T) {
	r := newTestRegistry()
	e := echo.New()
	e.Use(r.Middleware())
	e.GET("/products/:id", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	e.GET("/boom", func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusInternalServerError, "boom")
	})

	for _, path := range []string{"/products/1", "/products/2", "/boom"} {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	}

	assert.Equal(t, 2.0, testutil.ToFloat64(r.requests.WithLabelValues("test", http.MethodGet, "/products/:id", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.requests.WithLabelValues("test", http.MethodGet, "/boom", "500")))
	assert.Equal(t, 2.0, testutil.ToFloat64(r.statusCategory.WithLabelValues("test", "2xx")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.statusCategory.WithLabelValues("test", "5xx")))
}

func TestOrderMetrics(t *testing.T) {
	r := newTestRegistry()
	m := NewOrderMetrics(r)

	m.OrderCreated(decimal.RequireFromString("216"))
	m.OrderCreated(decimal.RequireFromString("10.5"))
	m.OrderFailed("EMPTY_CART")
	m.OrderStatusChanged("shipped")

	assert.Equal(t, 2.0, testutil.ToFloat64(r.ordersCreated))
	assert.InDelta(t, 226.5, testutil.ToFloat64(r.orderRevenue), 0.0001)
	assert.Equal(t, 1.0, testutil.ToFloat64(r.ordersFailed.WithLabelValues("EMPTY_CART")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.statusChanges.WithLabelValues("shipped")))
}

func TestRegistry_Handler(t *testing.T) {
	r := newTestRegistry()
	NewOrderMetrics(r).OrderCreated(decimal.NewFromInt(1))

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "marketplace_orders_created_total 1"))
}

func TestStatusCategory(t *testing.T) {
	assert.Equal(t, "2xx", statusCategory(201))
	assert.Equal(t, "4xx", statusCategory(404))
	assert.Equal(t, "5xx", statusCategory(503))
	assert.Equal(t, "", statusCategory(302))
}
