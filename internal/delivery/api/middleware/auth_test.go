package middleware

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"marketplace/internal/delivery/api/response"
	"marketplace/internal/domain/entity"
	"marketplace/internal/domain/repository"
	"marketplace/internal/domain/service"
	mockRepo "marketplace/internal/mocks/repository"
	mockService "marketplace/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type authFixtures struct {
	mw       *AuthMiddleware
	tokenSvc *mockService.MockTokenService
	userRepo *mockRepo.MockUserRepository
}

func createTestAuthMiddleware(t *testing.T) authFixtures {
	fx := authFixtures{
		tokenSvc: mockService.NewMockTokenService(t),
		userRepo: mockRepo.NewMockUserRepository(t),
	}
	fx.mw = NewAuthMiddleware(AuthMiddlewareParams{
		TokenSvc: fx.tokenSvc,
		UserRepo: fx.userRepo,
		Logger:   slog.New(slog.DiscardHandler),
	})

	return fx
}

// whoAmI echoes the caller recorded by the middleware.
func whoAmI(c echo.Context) error {
	userID, ok := GetUserID(c)
	if !ok {
		return c.String(http.StatusOK, "anonymous")
	}
	role, _ := GetRole(c)

	return c.String(http.StatusOK, userID.String()+" "+role.String())
}

func serve(handler echo.HandlerFunc, authHeader string) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()
	_ = handler(e.NewContext(req, rec))

	return rec
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var body response.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, response.StatusError, body.Status)

	return body.Code
}

func TestAuthenticate(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name     string
		header   string
		setup    func(fx authFixtures)
		wantCode int
		wantErr  string
		wantBody string
	}{
		{
			name:     "missing header",
			wantCode: http.StatusUnauthorized,
			wantErr:  "UNAUTHORIZED",
		},
		{
			name:     "not a bearer token",
			header:   "Basic Zm9vOmJhcg==",
			wantCode: http.StatusUnauthorized,
			wantErr:  "UNAUTHORIZED",
		},
		{
			name:   "invalid token",
			header: "Bearer broken",
			setup: func(fx authFixtures) {
				fx.tokenSvc.EXPECT().Verify("broken").Return(nil, errors.New("signature is invalid"))
			},
			wantCode: http.StatusUnauthorized,
			wantErr:  "INVALID_TOKEN",
		},
		{
			name:   "refresh token rejected",
			header: "Bearer refresh",
			setup: func(fx authFixtures) {
				fx.tokenSvc.EXPECT().Verify("refresh").Return(&service.Claims{UserID: userID, Type: service.TokenTypeRefresh}, nil)
			},
			wantCode: http.StatusUnauthorized,
			wantErr:  "INVALID_TOKEN",
		},
		{
			name:   "deleted user",
			header: "Bearer access",
			setup: func(fx authFixtures) {
				fx.tokenSvc.EXPECT().Verify("access").Return(&service.Claims{UserID: userID, Type: service.TokenTypeAccess}, nil)
				fx.userRepo.EXPECT().FindByID(mock.Anything, userID).Return(nil, repository.ErrUserNotFound)
			},
			wantCode: http.StatusUnauthorized,
			wantErr:  "UNAUTHORIZED",
		},
		{
			name:   "inactive user",
			header: "Bearer access",
			setup: func(fx authFixtures) {
				fx.tokenSvc.EXPECT().Verify("access").Return(&service.Claims{UserID: userID, Type: service.TokenTypeAccess}, nil)
				fx.userRepo.EXPECT().FindByID(mock.Anything, userID).Return(&entity.User{ID: userID}, nil)
			},
			wantCode: http.StatusUnauthorized,
			wantErr:  "USER_INACTIVE",
		},
		{
			name:   "role read from the user record",
			header: "Bearer access",
			setup: func(fx authFixtures) {
				fx.tokenSvc.EXPECT().Verify("access").Return(&service.Claims{UserID: userID, Role: "customer", Type: service.TokenTypeAccess}, nil)
				fx.userRepo.EXPECT().FindByID(mock.Anything, userID).Return(&entity.User{
					ID:       userID,
					IsActive: true,
					Role:     &entity.Role{Name: entity.RoleSeller},
				}, nil)
			},
			wantCode: http.StatusOK,
			wantBody: userID.String() + " seller",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestAuthMiddleware(t)
			if tt.setup != nil {
				tt.setup(fx)
			}

			rec := serve(fx.mw.Authenticate(whoAmI), tt.header)

			assert.Equal(t, tt.wantCode, rec.Code)
			if tt.wantErr != "" {
				assert.Equal(t, tt.wantErr, errorCode(t, rec))
			}
			if tt.wantBody != "" {
				assert.Equal(t, tt.wantBody, rec.Body.String())
			}
		})
	}
}

func TestOptionalAuthenticate(t *testing.T) {
	t.Run("anonymous passes through", func(t *testing.T) {
		fx := createTestAuthMiddleware(t)

		rec := serve(fx.mw.OptionalAuthenticate(whoAmI), "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "anonymous", rec.Body.String())
	})

	t.Run("bad token is still rejected", func(t *testing.T) {
		fx := createTestAuthMiddleware(t)
		fx.tokenSvc.EXPECT().Verify("expired").Return(nil, errors.New("token is expired"))

		rec := serve(fx.mw.OptionalAuthenticate(whoAmI), "Bearer expired")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "INVALID_TOKEN", errorCode(t, rec))
	})
}

func TestRequireRole(t *testing.T) {
	fx := createTestAuthMiddleware(t)
	staffOnly := fx.mw.RequireRole(entity.RoleAdmin, entity.RoleSupport)

	tests := []struct {
		name     string
		role     entity.RoleName
		anon     bool
		wantCode int
	}{
		{name: "admin", role: entity.RoleAdmin, wantCode: http.StatusOK},
		{name: "support", role: entity.RoleSupport, wantCode: http.StatusOK},
		{name: "customer", role: entity.RoleCustomer, wantCode: http.StatusForbidden},
		{name: "no caller", anon: true, wantCode: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
			if !tt.anon {
				SetCaller(c, uuid.New(), tt.role)
			}

			_ = staffOnly(whoAmI)(c)

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestGetActor(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	_, ok := GetActor(c)
	assert.False(t, ok)

	userID := uuid.New()
	SetCaller(c, userID, entity.RoleCustomer)

	actor, ok := GetActor(c)
	require.True(t, ok)
	assert.Equal(t, userID, actor.UserID)
	assert.Equal(t, entity.RoleCustomer, actor.Role)
}
