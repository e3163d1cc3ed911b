package handler

import (
	"net/http"
	"testing"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	mockUsecase "marketplace/internal/mocks/usecase"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type userHandlerFixtures struct {
	e      *echo.Echo
	actor  usecase.Actor
	userUC *mockUsecase.MockUserUsecase
}

func createTestUserHandler(t *testing.T, role entity.RoleName) userHandlerFixtures {
	fx := userHandlerFixtures{
		e:      newTestEcho(),
		actor:  usecase.Actor{UserID: uuid.New(), Role: role},
		userUC: mockUsecase.NewMockUserUsecase(t),
	}

	h := NewUserHandler(UserHandlerParams{UserUC: fx.userUC, Logger: discardLogger})
	g := fx.e.Group("/api/v1/users", asCaller(fx.actor.UserID, role))
	g.PUT("/profile", h.UpdateProfile)
	g.POST("/avatar", h.UploadAvatar)
	g.GET("", h.ListUsers)
	g.GET("/:id", h.GetUser)
	g.PUT("/:id/role", h.AssignRole)
	g.DELETE("/:id", h.DeleteUser)

	return fx
}

func TestUserHandler_UpdateProfile(t *testing.T) {
	fx := createTestUserHandler(t, entity.RoleCustomer)
	first := "Grace"

	fx.userUC.EXPECT().UpdateProfile(mock.Anything, fx.actor.UserID, &usecase.UpdateProfileInput{FirstName: &first}).
		Return(&entity.User{ID: fx.actor.UserID, FirstName: "Grace"}, nil)

	rec := doRequest(fx.e, http.MethodPut, "/api/v1/users/profile", `{"first_name":"Grace"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Grace", decodeData[entity.User](t, rec).FirstName)
}

func TestUserHandler_UploadAvatar(t *testing.T) {
	t.Run("single file", func(t *testing.T) {
		fx := createTestUserHandler(t, entity.RoleCustomer)
		fx.userUC.EXPECT().UploadAvatar(mock.Anything, fx.actor.UserID, mock.MatchedBy(func(f *usecase.FileUpload) bool {
			return f.Filename == "me.png" && f.Size == int64(len("png-bytes"))
		})).Return(&entity.User{ID: fx.actor.UserID, Avatar: "https://cdn.example.com/avatars/me.png"}, nil)

		rec := doMultipart(t, fx.e, "/api/v1/users/avatar", "avatar", map[string]string{"me.png": "png-bytes"})

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "https://cdn.example.com/avatars/me.png", decodeData[entity.User](t, rec).Avatar)
	})

	t.Run("missing file", func(t *testing.T) {
		fx := createTestUserHandler(t, entity.RoleCustomer)

		rec := doMultipart(t, fx.e, "/api/v1/users/avatar", "photo", map[string]string{"me.png": "png-bytes"})

		require.Equal(t, http.StatusBadRequest, rec.Code)
		_, detail := errorDetail(t, rec)
		assert.Equal(t, "no files uploaded in 'avatar'", detail)
	})
}

func TestUserHandler_ListUsers(t *testing.T) {
	fx := createTestUserHandler(t, entity.RoleSupport)

	fx.userUC.EXPECT().ListUsers(mock.Anything,
		repository.UserFilter{Role: entity.RoleSeller, Search: "lima"},
		entity.Pagination{Page: 1, Limit: 12},
	).Return(entity.NewPage([]*entity.User{{ID: uuid.New()}}, 1, entity.Pagination{Page: 1, Limit: 12}), nil)

	rec := doRequest(fx.e, http.MethodGet, "/api/v1/users?role=seller&search=lima", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(1), decodeData[entity.Page[*entity.User]](t, rec).Total)
}

func TestUserHandler_GetUser_NotFound(t *testing.T) {
	fx := createTestUserHandler(t, entity.RoleAdmin)
	userID := uuid.New()

	fx.userUC.EXPECT().GetUser(mock.Anything, userID).Return(nil, errors.WithStack(domainerrors.ErrUserNotFound))

	rec := doRequest(fx.e, http.MethodGet, "/api/v1/users/"+userID.String(), "")

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "USER_NOT_FOUND", decodeEnvelope(t, rec).Code)
}

func TestUserHandler_AssignRole(t *testing.T) {
	userID := uuid.New()

	t.Run("unknown role", func(t *testing.T) {
		fx := createTestUserHandler(t, entity.RoleAdmin)

		rec := doRequest(fx.e, http.MethodPut, "/api/v1/users/"+userID.String()+"/role", `{"role":"owner"}`)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "must be one of: customer, seller, admin, support", decodeEnvelope(t, rec).Details["role"])
	})

	t.Run("passes actor and role", func(t *testing.T) {
		fx := createTestUserHandler(t, entity.RoleAdmin)
		fx.userUC.EXPECT().AssignRole(mock.Anything, fx.actor, userID, entity.RoleSupport).
			Return(&entity.User{ID: userID}, nil)

		rec := doRequest(fx.e, http.MethodPut, "/api/v1/users/"+userID.String()+"/role", `{"role":"support"}`)

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestUserHandler_DeleteUser(t *testing.T) {
	t.Run("removes the account", func(t *testing.T) {
		fx := createTestUserHandler(t, entity.RoleAdmin)
		userID := uuid.New()
		fx.userUC.EXPECT().DeleteUser(mock.Anything, fx.actor, userID).Return(nil)

		rec := doRequest(fx.e, http.MethodDelete, "/api/v1/users/"+userID.String(), "")

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("own account", func(t *testing.T) {
		fx := createTestUserHandler(t, entity.RoleAdmin)
		fx.userUC.EXPECT().DeleteUser(mock.Anything, fx.actor, fx.actor.UserID).
			Return(errors.Wrap(domainerrors.ErrForbidden.WithMessage("You cannot delete your own account"), "delete user"))

		rec := doRequest(fx.e, http.MethodDelete, "/api/v1/users/"+fx.actor.UserID.String(), "")

		require.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, "You cannot delete your own account", decodeEnvelope(t, rec).Message)
	})
}
