package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	deliverycontext "marketplace/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestScope_Process(t *testing.T) {
	tests := []struct {
		name     string
		incoming string
		keep     bool
	}{
		{name: "reuses client id", incoming: "checkout-7f3a", keep: true},
		{name: "generates when missing"},
		{name: "replaces oversized id", incoming: strings.Repeat("x", 129)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodPost, "/api/v1/orders", nil)
			req.RemoteAddr = "198.51.100.4:5123"
			req.Header.Set("User-Agent", "MarketApp/2.1 (iOS)")
			if tt.incoming != "" {
				req.Header.Set(deliverycontext.HeaderXRequestID, tt.incoming)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			var seenID string
			var seenClient deliverycontext.Client
			handler := NewRequestScope(slog.New(slog.NewTextHandler(io.Discard, nil))).Process(func(c echo.Context) error {
				ctx := c.Request().Context()
				seenID = deliverycontext.RequestID(ctx)
				seenClient = deliverycontext.ClientOf(ctx)
				assert.NotNil(t, deliverycontext.LoggerOr(ctx, nil))

				return c.NoContent(http.StatusNoContent)
			})

			require.NoError(t, handler(c))
			assert.Equal(t, seenID, rec.Header().Get(deliverycontext.HeaderXRequestID))
			if tt.keep {
				assert.Equal(t, tt.incoming, seenID)
			} else {
				_, err := uuid.Parse(seenID)
				assert.NoError(t, err)
			}
			assert.Equal(t, "198.51.100.4", seenClient.IP)
			assert.Equal(t, "MarketApp/2.1 (iOS)", seenClient.UserAgent)
		})
	}
}
