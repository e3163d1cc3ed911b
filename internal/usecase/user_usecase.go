package usecase

import (
	"context"

	"marketplace/internal/domain/entity"
	"marketplace/internal/domain/repository"

	"github.com/google/uuid"
)

// UpdateProfileInput holds the editable profile fields; nil leaves a field unchanged.
type UpdateProfileInput struct {
	FirstName *string
	LastName  *string
	Phone     *string
}

// UserUsecase covers self-service profile edits and admin user management.
type UserUsecase interface {
	UpdateProfile(ctx context.Context, userID uuid.UUID, input *UpdateProfileInput) (*entity.User, error)
	UploadAvatar(ctx context.Context, userID uuid.UUID, file *FileUpload) (*entity.User, error)
	ListUsers(ctx context.Context, filter repository.UserFilter, page entity.Pagination) (*entity.Page[*entity.User], error)
	GetUser(ctx context.Context, id uuid.UUID) (*entity.User, error)
	AssignRole(ctx context.Context, actor Actor, userID uuid.UUID, role entity.RoleName) (*entity.User, error)
	DeleteUser(ctx context.Context, actor Actor, userID uuid.UUID) error
}
