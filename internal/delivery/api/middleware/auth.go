package middleware

import (
	"log/slog"
	"strings"

	"marketplace/internal/delivery/api/response"
	deliverycontext "marketplace/internal/delivery/context"
	"marketplace/internal/domain/entity"
	"marketplace/internal/domain/repository"
	"marketplace/internal/domain/service"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const (
	ctxKeyUserID = "userID"
	ctxKeyRole   = "role"
)

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	TokenSvc service.TokenService
	UserRepo repository.UserRepository
	Logger   *slog.Logger
}

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	userRepo repository.UserRepository
	logger   *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{
		tokenSvc: params.TokenSvc,
		userRepo: params.UserRepo,
		logger:   params.Logger,
	}
}

// Authenticate validates the bearer access token and loads the caller.
// The role is read from the user record so approvals and role changes apply
// without waiting for the token to expire.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.Unauthorized(c, "UNAUTHORIZED", "Not authorized to access this route")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader || tokenString == "" {
			return response.Unauthorized(c, "UNAUTHORIZED", "Invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.Verify(tokenString)
		if err != nil || claims.Type != service.TokenTypeAccess {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
		}

		ctx := c.Request().Context()
		user, err := m.userRepo.FindByID(ctx, claims.UserID)
		if err != nil {
			deliverycontext.LoggerOr(ctx, m.logger).Debug("Token user lookup failed",
				slog.Any("userID", claims.UserID), slog.Any("error", err))

			return response.Unauthorized(c, "UNAUTHORIZED", "User no longer exists")
		}
		if !user.IsActive {
			return response.Unauthorized(c, "USER_INACTIVE", "Account has been deactivated")
		}

		SetCaller(c, user.ID, user.RoleName())

		return next(c)
	}
}

// OptionalAuthenticate authenticates the caller when an Authorization header
// is present and lets anonymous requests through untouched.
func (m *AuthMiddleware) OptionalAuthenticate(next echo.HandlerFunc) echo.HandlerFunc {
	authenticated := m.Authenticate(next)

	return func(c echo.Context) error {
		if c.Request().Header.Get(echo.HeaderAuthorization) == "" {
			return next(c)
		}

		return authenticated(c)
	}
}

// RequireRole allows the request when the caller holds any of the roles.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(roles ...entity.RoleName) echo.MiddlewareFunc {
	allowed := entity.RoleNames(roles)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, ok := GetRole(c)
			if !ok {
				return response.Forbidden(c, "FORBIDDEN", "Permission denied: role information missing")
			}

			if !allowed.Contains(role) {
				return response.Forbidden(c, "FORBIDDEN", "User role '"+role.String()+"' is not authorized to access this route")
			}

			return next(c)
		}
	}
}

// SetCaller records the authenticated user on the echo context.
func SetCaller(c echo.Context, userID uuid.UUID, role entity.RoleName) {
	c.Set(ctxKeyUserID, userID)
	c.Set(ctxKeyRole, role)
}

// GetUserID returns the authenticated user id.
func GetUserID(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get(ctxKeyUserID).(uuid.UUID)

	return userID, ok
}

// GetRole returns the authenticated user's role.
func GetRole(c echo.Context) (entity.RoleName, bool) {
	role, ok := c.Get(ctxKeyRole).(entity.RoleName)

	return role, ok
}

// GetActor returns the caller as a use case actor.
func GetActor(c echo.Context) (usecase.Actor, bool) {
	userID, ok := GetUserID(c)
	if !ok {
		return usecase.Actor{}, false
	}
	role, _ := GetRole(c)

	return usecase.Actor{UserID: userID, Role: role}, true
}
