package repository

import (
	"context"
	"errors"

	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserFilter narrows the admin user listing.
type UserFilter struct {
	Role   entity.RoleName
	Search string
}

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByID retrieves a single user with its role by ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a single user with its role by email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByVerificationDigest finds the user holding an email verification token digest.
	FindByVerificationDigest(ctx context.Context, digest string) (*entity.User, error)

	// FindByResetDigest finds the user holding a password reset token digest.
	FindByResetDigest(ctx context.Context, digest string) (*entity.User, error)

	// List returns one page of users.
	List(ctx context.Context, filter UserFilter, page entity.Pagination) ([]*entity.User, int64, error)

	// Create persists a new user entity to the storage.
	Create(ctx context.Context, user *entity.User) error

	// Update modifies an existing user entity in the storage.
	Update(ctx context.Context, user *entity.User) error

	// Delete removes the user outright.
	Delete(ctx context.Context, id uuid.UUID) error
}

// ErrRoleNotFound is returned when a role name or id is unknown.
var ErrRoleNotFound = errors.New("role not found")

// RoleRepository reads the static role and permission reference data.
type RoleRepository interface {
	FindByName(ctx context.Context, name entity.RoleName) (*entity.Role, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Role, error)
	List(ctx context.Context) ([]*entity.Role, error)

	// Upsert creates or refreshes a role and its permission set by name. Used by seeding.
	Upsert(ctx context.Context, role *entity.Role) error
}
