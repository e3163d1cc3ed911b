package middleware

import (
	"sync"
	"time"

	"marketplace/config"
	domainerrors "marketplace/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

// limiters idle longer than this are dropped on the next sweep
const limiterIdleTTL = 10 * time.Minute

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimitMiddleware is a per client IP token bucket.
type RateLimitMiddleware struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	limit    rate.Limit
	burst    int
	enabled  bool
	now       func() time.Time
	lastSweep time.Time
}

// NewRateLimitMiddleware builds the limiter from auth.rateLimit.
func NewRateLimitMiddleware(cfg *config.Config) *RateLimitMiddleware {
	rl := cfg.Auth.RateLimit
	burst := max(rl.Burst, 1)

	return &RateLimitMiddleware{
		visitors: make(map[string]*visitor),
		limit:    rate.Every(time.Minute / time.Duration(max(rl.RequestsPerMinute, 1))),
		burst:    burst,
		enabled:  rl.Enabled,
		now:      time.Now,
	}
}

func (m *RateLimitMiddleware) allow(ip string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	if now.Sub(m.lastSweep) > limiterIdleTTL {
		for key, v := range m.visitors {
			if now.Sub(v.lastSeen) > limiterIdleTTL {
				delete(m.visitors, key)
			}
		}
		m.lastSweep = now
	}

	v, ok := m.visitors[ip]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(m.limit, m.burst)}
		m.visitors[ip] = v
	}
	v.lastSeen = now

	return v.limiter.AllowN(now, 1)
}

// Handle rejects requests over the limit with 429.
func (m *RateLimitMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	if !m.enabled {
		return next
	}

	return func(c echo.Context) error {
		if !m.allow(c.RealIP()) {
			return domainerrors.ErrTooManyRequests
		}

		return next(c)
	}
}
