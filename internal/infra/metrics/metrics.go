// Package metrics exposes Prometheus collectors for HTTP traffic and the order flow.
package metrics

import (
	"database/sql"
	"net/http"
	"strconv"
	"time"

	"marketplace/config"
	"marketplace/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/shopspring/decimal"
)

const namespace = "marketplace"

// Registry owns every collector of the process. Each fx app gets its own
// registry so tests can build several without duplicate registration panics.
type Registry struct {
	registry *prometheus.Registry
	service  string

	requests       *prometheus.CounterVec
	duration       *prometheus.HistogramVec
	statusCategory *prometheus.CounterVec

	ordersCreated prometheus.Counter
	orderRevenue  prometheus.Counter
	ordersFailed  *prometheus.CounterVec
	statusChanges *prometheus.CounterVec
}

// NewRegistry registers the HTTP and order collectors plus the Go runtime collectors.
func NewRegistry(cfg *config.Config) *Registry {
	serviceName := cfg.Env.ServiceName
	if serviceName == "" {
		serviceName = namespace
	}

	r := &Registry{
		registry: prometheus.NewRegistry(),
		service:  serviceName,
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"service", "method", "path", "status"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "Duration of HTTP requests in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"service", "method", "path", "status"},
		),
		statusCategory: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_status_category_total",
				Help:      "Total number of responses by status category (2xx, 4xx, 5xx)",
			},
			[]string{"service", "category"},
		),
		ordersCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "orders_created_total",
			Help:      "Total number of orders placed",
		}),
		orderRevenue: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "order_revenue_total",
			Help:      "Sum of order totals at creation time",
		}),
		ordersFailed: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "orders_failed_total",
				Help:      "Order placements rejected, by error code",
			},
			[]string{"reason"},
		),
		statusChanges: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "order_status_changes_total",
				Help:      "Order status transitions, by target status",
			},
			[]string{"status"},
		),
	}

	r.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		r.requests,
		r.duration,
		r.statusCategory,
		r.ordersCreated,
		r.orderRevenue,
		r.ordersFailed,
		r.statusChanges,
	)

	return r
}

// Middleware records count, latency and status class of every request.
// The route pattern is used as the path label to keep cardinality bounded.
func (r *Registry) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				// Let the error handler write the response so the status is final.
				c.Error(err)
			}

			status := c.Response().Status
			path := c.Path()
			if path == "" {
				path = "unmatched"
			}
			statusStr := strconv.Itoa(status)
			method := c.Request().Method

			r.requests.WithLabelValues(r.service, method, path, statusStr).Inc()
			r.duration.WithLabelValues(r.service, method, path, statusStr).Observe(time.Since(start).Seconds())
			if category := statusCategory(status); category != "" {
				r.statusCategory.WithLabelValues(r.service, category).Inc()
			}

			return nil
		}
	}
}

// Handler serves the registry in the Prometheus exposition format.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}

// WatchDB exports the connection pool statistics of db under the given name.
func (r *Registry) WatchDB(db *sql.DB, name string) {
	r.registry.MustRegister(collectors.NewDBStatsCollector(db, name))
}

// Gatherer exposes the registry for tests.
func (r *Registry) Gatherer() prometheus.Gatherer {
	return r.registry
}

func statusCategory(status int) string {
	switch {
	case status >= 200 && status < 300:
		return "2xx"
	case status >= 400 && status < 500:
		return "4xx"
	case status >= 500 && status < 600:
		return "5xx"
	default:
		return ""
	}
}

// orderMetrics adapts the registry to the OrderMetrics port.
type orderMetrics struct {
	r *Registry
}

// NewOrderMetrics returns the order counters of the registry.
func NewOrderMetrics(r *Registry) service.OrderMetrics {
	return &orderMetrics{r: r}
}

func (m *orderMetrics) OrderCreated(total decimal.Decimal) {
	m.r.ordersCreated.Inc()
	m.r.orderRevenue.Add(total.InexactFloat64())
}

func (m *orderMetrics) OrderFailed(reason string) {
	m.r.ordersFailed.WithLabelValues(reason).Inc()
}

func (m *orderMetrics) OrderStatusChanged(status string) {
	m.r.statusChanges.WithLabelValues(status).Inc()
}
