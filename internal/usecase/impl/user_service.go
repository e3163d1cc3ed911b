package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "marketplace/internal/delivery/context"
	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/domain/service"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const avatarFolder = "avatars"

// userService implements the UserUsecase interface.
type userService struct {
	userRepo repository.UserRepository
	roleRepo repository.RoleRepository
	storage  service.ImageStorage
	logger   *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo repository.UserRepository
	RoleRepo repository.RoleRepository
	Storage  service.ImageStorage
	Logger   *slog.Logger
}

// NewUserService is the constructor for userService.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		userRepo: params.UserRepo,
		roleRepo: params.RoleRepo,
		storage:  params.Storage,
		logger:   params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.LoggerOr(ctx, srv.logger)
}

// UpdateProfile applies the non-nil fields to the caller's account.
func (srv *userService) UpdateProfile(ctx context.Context, userID uuid.UUID, input *usecase.UpdateProfileInput) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, translate(err, "failed to find user")
	}

	if input.FirstName != nil {
		user.FirstName = strings.TrimSpace(*input.FirstName)
	}
	if input.LastName != nil {
		user.LastName = strings.TrimSpace(*input.LastName)
	}
	if input.Phone != nil {
		user.Phone = *input.Phone
	}

	if err := srv.userRepo.Update(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to update profile")
	}

	return user, nil
}

// UploadAvatar stores the image and replaces the previous avatar URL.
func (srv *userService) UploadAvatar(ctx context.Context, userID uuid.UUID, file *usecase.FileUpload) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, translate(err, "failed to find user")
	}

	obj, err := srv.storage.Upload(ctx, avatarFolder, file.Filename, file.ContentType, file.Content)
	if err != nil {
		return nil, errors.Wrap(err, "failed to upload avatar")
	}

	user.Avatar = obj.URL
	if err := srv.userRepo.Update(ctx, user); err != nil {
		if delErr := srv.storage.Delete(ctx, obj.Key); delErr != nil {
			srv.log(ctx).Warn("Failed to remove orphaned avatar", slog.String("key", obj.Key), slog.Any("error", delErr))
		}

		return nil, errors.Wrap(err, "failed to save avatar")
	}
	srv.log(ctx).Debug("Avatar updated", slog.Any("userID", userID), slog.Int64("size", obj.Size))

	return user, nil
}

// ListUsers returns one page of accounts.
func (srv *userService) ListUsers(ctx context.Context, filter repository.UserFilter, page entity.Pagination) (*entity.Page[*entity.User], error) {
	users, total, err := srv.userRepo.List(ctx, filter, page)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	return entity.NewPage(users, total, page), nil
}

// GetUser returns a single account.
func (srv *userService) GetUser(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, translate(err, "failed to find user")
	}

	return user, nil
}

// AssignRole changes another user's role. Admins cannot demote themselves.
func (srv *userService) AssignRole(ctx context.Context, actor usecase.Actor, userID uuid.UUID, roleName entity.RoleName) (*entity.User, error) {
	if !actor.IsAdmin() {
		return nil, errors.Wrap(domainerrors.ErrForbidden, "only admins may assign roles")
	}
	if !roleName.IsValid() {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed.WithMessage("Invalid role"), string(roleName))
	}
	if actor.UserID == userID && roleName != entity.RoleAdmin {
		return nil, errors.Wrap(domainerrors.ErrForbidden.WithMessage("You cannot change your own role"), "assign role")
	}

	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, translate(err, "failed to find user")
	}

	role, err := srv.roleRepo.FindByName(ctx, roleName)
	if err != nil {
		return nil, translate(err, "failed to find role")
	}

	user.RoleID = role.ID
	user.Role = role
	if err := srv.userRepo.Update(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to update user role")
	}
	srv.log(ctx).Info("Role assigned", slog.Any("userID", userID), slog.String("role", roleName.String()), slog.Any("by", actor.UserID))

	return user, nil
}

// DeleteUser removes an account. Admins cannot delete themselves.
func (srv *userService) DeleteUser(ctx context.Context, actor usecase.Actor, userID uuid.UUID) error {
	if !actor.IsAdmin() {
		return errors.Wrap(domainerrors.ErrForbidden, "only admins may delete users")
	}
	if actor.UserID == userID {
		return errors.Wrap(domainerrors.ErrForbidden.WithMessage("You cannot delete your own account"), "delete user")
	}

	if err := srv.userRepo.Delete(ctx, userID); err != nil {
		return translate(err, "failed to delete user")
	}
	srv.log(ctx).Info("User deleted", slog.Any("userID", userID), slog.Any("by", actor.UserID))

	return nil
}
