package middleware

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"marketplace/config"
	"marketplace/internal/delivery/api/response"
	"marketplace/internal/delivery/api/validator"
	"marketplace/internal/domain/constants"
	domainerrors "marketplace/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signupForm struct {
	Email string `json:"email" validate:"required,email"`
	Age   int    `json:"age" validate:"gte=18"`
}

func handleError(t *testing.T, env string, err error) (int, response.ErrorResponse) {
	t.Helper()

	cfg := &config.Config{}
	cfg.Env.Env = env
	m := NewErrorMiddleware(slog.New(slog.DiscardHandler), cfg)

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodPost, "/api/v1/things", nil), rec)
	m.HandleHTTPError(err, c)

	var body response.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return rec.Code, body
}

func TestErrorMiddleware_AppError(t *testing.T) {
	err := errors.Wrap(domainerrors.ErrOrderNotFound, "failed to load order")

	code, body := handleError(t, constants.EnvProduction, err)

	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "ORDER_NOT_FOUND", body.Code)
	assert.Equal(t, "Order not found", body.Message)
}

func TestErrorMiddleware_ValidationFields(t *testing.T) {
	verr := validator.New().Validate(&signupForm{Email: "nope", Age: 12})

	code, body := handleError(t, constants.EnvProduction, verr)

	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "VALIDATION_FAILED", body.Code)
	assert.Equal(t, map[string]any{
		"email": "must be a valid email address",
		"age":   "must be greater than or equal to 18",
	}, body.Details)
}

func TestErrorMiddleware_EchoHTTPError(t *testing.T) {
	code, body := handleError(t, constants.EnvProduction, echo.NewHTTPError(http.StatusMethodNotAllowed, "method not allowed"))

	assert.Equal(t, http.StatusMethodNotAllowed, code)
	assert.Equal(t, "HTTP_ERROR", body.Code)
	assert.Equal(t, "method not allowed", body.Message)
}

func TestErrorMiddleware_Unhandled(t *testing.T) {
	boom := errors.New("connection reset by peer")

	t.Run("production hides the cause", func(t *testing.T) {
		code, body := handleError(t, constants.EnvProduction, boom)

		assert.Equal(t, http.StatusInternalServerError, code)
		assert.Equal(t, domainerrors.ErrInternalError.ErrorCode(), body.Code)
		assert.NotContains(t, body.Message, "connection reset")
		assert.Empty(t, body.Stack)
	})

	t.Run("develop includes the stack", func(t *testing.T) {
		_, body := handleError(t, constants.EnvDevelop, boom)

		assert.Contains(t, body.Stack, "connection reset by peer")
	})
}

func TestErrorMiddleware_CommittedResponse(t *testing.T) {
	m := NewErrorMiddleware(slog.New(slog.DiscardHandler), &config.Config{})
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	require.NoError(t, c.String(http.StatusAccepted, "done"))

	m.HandleHTTPError(domainerrors.ErrForbidden, c)

	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Equal(t, "done", rec.Body.String())
}
