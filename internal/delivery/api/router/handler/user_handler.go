package handler

import (
	"log/slog"
	"net/http"

	"marketplace/internal/delivery/api/response"
	"marketplace/internal/domain/entity"
	"marketplace/internal/domain/repository"
	"marketplace/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// UserHandlerParams holds dependencies for UserHandler, injected by Fx.
type UserHandlerParams struct {
	fx.In

	UserUC usecase.UserUsecase
	Logger *slog.Logger
}

// UserHandler serves profile and admin user management endpoints.
type UserHandler struct {
	userUC usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler.
func NewUserHandler(params UserHandlerParams) *UserHandler {
	return &UserHandler{
		userUC: params.UserUC,
		logger: params.Logger,
	}
}

// UpdateProfileRequest is the body of PUT /users/profile.
type UpdateProfileRequest struct {
	FirstName *string `json:"first_name" validate:"omitempty,min=1,max=50"`
	LastName  *string `json:"last_name" validate:"omitempty,min=1,max=50"`
	Phone     *string `json:"phone" validate:"omitempty,max=20"`
}

// AssignRoleRequest is the body of PUT /users/:id/role.
type AssignRoleRequest struct {
	Role string `json:"role" validate:"required,role"`
}

// UpdateProfile edits the caller's own profile.
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req UpdateProfileRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	user, err := h.userUC.UpdateProfile(c.Request().Context(), userID, &usecase.UpdateProfileInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, user)
}

// UploadAvatar stores the multipart "avatar" file as the caller's avatar.
func (h *UserHandler) UploadAvatar(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	files, cleanup, err := formFiles(c, "avatar", 1)
	defer cleanup()
	if err != nil {
		return err
	}

	user, err := h.userUC.UploadAvatar(c.Request().Context(), userID, files[0])
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, user)
}

// ListUsers pages through users, filtered by role and name or email.
func (h *UserHandler) ListUsers(c echo.Context) error {
	filter := repository.UserFilter{
		Role:   entity.RoleName(c.QueryParam("role")),
		Search: c.QueryParam("search"),
	}

	page, err := h.userUC.ListUsers(c.Request().Context(), filter, pagination(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, page)
}

// GetUser returns one user.
func (h *UserHandler) GetUser(c echo.Context) error {
	userID, err := paramUUID(c, "id")
	if err != nil {
		return err
	}

	user, err := h.userUC.GetUser(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, user)
}

// AssignRole changes a user's role.
func (h *UserHandler) AssignRole(c echo.Context) error {
	actor, err := currentActor(c)
	if err != nil {
		return err
	}
	userID, err := paramUUID(c, "id")
	if err != nil {
		return err
	}

	var req AssignRoleRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	user, err := h.userUC.AssignRole(c.Request().Context(), actor, userID, entity.RoleName(req.Role))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, user)
}

// DeleteUser removes a user outright.
func (h *UserHandler) DeleteUser(c echo.Context) error {
	actor, err := currentActor(c)
	if err != nil {
		return err
	}
	userID, err := paramUUID(c, "id")
	if err != nil {
		return err
	}

	if err := h.userUC.DeleteUser(c.Request().Context(), actor, userID); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
