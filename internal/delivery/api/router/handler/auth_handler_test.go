package handler

import (
	"net/http"
	"testing"
	"time"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	mockUsecase "marketplace/internal/mocks/usecase"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type authHandlerFixtures struct {
	e         *echo.Echo
	userID    uuid.UUID
	authUC    *mockUsecase.MockAuthUsecase
	sessionUC *mockUsecase.MockSessionUsecase
}

func createTestAuthHandler(t *testing.T) authHandlerFixtures {
	fx := authHandlerFixtures{
		e:         newTestEcho(),
		userID:    uuid.New(),
		authUC:    mockUsecase.NewMockAuthUsecase(t),
		sessionUC: mockUsecase.NewMockSessionUsecase(t),
	}

	h := NewAuthHandler(AuthHandlerParams{AuthUC: fx.authUC, SessionUC: fx.sessionUC, Logger: discardLogger})
	public := fx.e.Group("/api/v1/auth")
	public.POST("/login", h.Login)
	public.GET("/verify-email", h.VerifyEmail)

	g := fx.e.Group("/api/v1/auth", asCaller(fx.userID, entity.RoleCustomer))
	g.POST("/logout", h.Logout)
	g.GET("/sessions", h.ListSessions)
	g.DELETE("/sessions/:id", h.RevokeSession)

	return fx
}

func TestAuthHandler_Login(t *testing.T) {
	fx := createTestAuthHandler(t)
	expires := time.Date(2026, 3, 1, 12, 15, 0, 0, time.UTC)

	fx.authUC.EXPECT().Login(mock.Anything, &usecase.LoginInput{Email: "ana@example.com", Password: "s3cret!"}).
		Return(&usecase.AuthOutput{
			AccessToken:     "access",
			AccessExpiresAt: expires,
			RefreshToken:    "refresh",
			User:            &entity.User{ID: fx.userID},
		}, nil)

	rec := doRequest(fx.e, http.MethodPost, "/api/v1/auth/login", `{"email":"ana@example.com","password":"s3cret!"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	got := decodeData[AuthResponse](t, rec)
	assert.Equal(t, "Bearer", got.TokenType)
	assert.Equal(t, "refresh", got.RefreshToken)
	assert.True(t, expires.Equal(got.ExpiresAt))
}

func TestAuthHandler_Login_BadCredentials(t *testing.T) {
	fx := createTestAuthHandler(t)

	fx.authUC.EXPECT().Login(mock.Anything, mock.Anything).Return(nil, errors.WithStack(domainerrors.ErrInvalidCredentials))

	rec := doRequest(fx.e, http.MethodPost, "/api/v1/auth/login", `{"email":"ana@example.com","password":"wrong"}`)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "INVALID_CREDENTIALS", decodeEnvelope(t, rec).Code)
}

func TestAuthHandler_VerifyEmail_RequiresToken(t *testing.T) {
	fx := createTestAuthHandler(t)

	rec := doRequest(fx.e, http.MethodGet, "/api/v1/auth/verify-email", "")

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Verification token is required", decodeEnvelope(t, rec).Message)
}

func TestAuthHandler_Logout_AllDevices(t *testing.T) {
	fx := createTestAuthHandler(t)

	fx.authUC.EXPECT().Logout(mock.Anything, &usecase.LogoutInput{UserID: fx.userID, AllDevices: true}).Return(nil)

	rec := doRequest(fx.e, http.MethodPost, "/api/v1/auth/logout", `{"all_devices":true}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Logged out successfully", decodeData[map[string]string](t, rec)["message"])
}

func TestAuthHandler_ListSessions(t *testing.T) {
	fx := createTestAuthHandler(t)
	sessionID := uuid.New()

	fx.sessionUC.EXPECT().ListSessions(mock.Anything, fx.userID).Return([]*usecase.SessionInfo{
		{ID: sessionID, UserAgent: "Firefox/128", ClientIP: "203.0.113.7"},
	}, nil)

	rec := doRequest(fx.e, http.MethodGet, "/api/v1/auth/sessions", "")

	require.Equal(t, http.StatusOK, rec.Code)
	got := decodeData[[]usecase.SessionInfo](t, rec)
	require.Len(t, got, 1)
	assert.Equal(t, sessionID, got[0].ID)
	assert.Equal(t, "203.0.113.7", got[0].ClientIP)
}

func TestAuthHandler_RevokeSession(t *testing.T) {
	sessionID := uuid.New()

	t.Run("revoked", func(t *testing.T) {
		fx := createTestAuthHandler(t)
		fx.sessionUC.EXPECT().RevokeSession(mock.Anything, fx.userID, sessionID).Return(nil)

		rec := doRequest(fx.e, http.MethodDelete, "/api/v1/auth/sessions/"+sessionID.String(), "")

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("not the caller's session", func(t *testing.T) {
		fx := createTestAuthHandler(t)
		fx.sessionUC.EXPECT().RevokeSession(mock.Anything, fx.userID, sessionID).
			Return(errors.WithStack(domainerrors.ErrNotFound))

		rec := doRequest(fx.e, http.MethodDelete, "/api/v1/auth/sessions/"+sessionID.String(), "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
