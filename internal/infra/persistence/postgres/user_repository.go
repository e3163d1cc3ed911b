package postgres

import (
	"context"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// userRepository implements the repository.UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
// It returns the repository as a repository.UserRepository interface, adhering to dependency inversion.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{
		db: db,
	}
}

// FindByID retrieves a single user by their unique ID, preloading the role and its permissions.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return repo.findOne(ctx, "failed to find user by id", "users.id = ?", id)
}

// FindByEmail retrieves a single user by their email address.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return repo.findOne(ctx, "failed to find user by email", "users.email = ?", email)
}

// FindByVerificationDigest finds the user holding the email verification digest.
func (repo *userRepository) FindByVerificationDigest(ctx context.Context, digest string) (*entity.User, error) {
	return repo.findOne(ctx, "failed to find user by verification token", "users.email_verification_digest = ?", digest)
}

// FindByResetDigest finds the user holding the password reset digest.
func (repo *userRepository) FindByResetDigest(ctx context.Context, digest string) (*entity.User, error) {
	return repo.findOne(ctx, "failed to find user by reset token", "users.password_reset_digest = ?", digest)
}

func (repo *userRepository) findOne(ctx context.Context, errMsg, query string, args ...any) (*entity.User, error) {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).
		Preload("Role.Permissions").
		Where(query, args...).
		First(&userM).Error; err != nil {
		// If the error is 'record not found', return a domain-specific error.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, errMsg)
	}

	// Map the persistence model back to a pure domain entity before returning.
	return toUserDomain(&userM), nil
}

// List returns one page of users, newest first.
func (repo *userRepository) List(ctx context.Context, filter repository.UserFilter, page entity.Pagination) ([]*entity.User, int64, error) {
	query := repo.db.WithContext(ctx).Model(&model.UserModel{})

	if filter.Role != "" {
		query = query.Joins("JOIN roles ON roles.id = users.role_id").Where("roles.name = ?", string(filter.Role))
	}
	if filter.Search != "" {
		pattern := likePattern(filter.Search)
		query = query.Where("users.first_name ILIKE ? OR users.last_name ILIKE ? OR users.email ILIKE ?", pattern, pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count users")
	}

	var userModels []*model.UserModel
	if err := query.
		Preload("Role").
		Order("users.created_at DESC").
		Scopes(paginate(page)).
		Find(&userModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list users")
	}

	users := make([]*entity.User, 0, len(userModels))
	for _, userM := range userModels {
		users = append(users, toUserDomain(userM))
	}

	return users, total, nil
}

// Create persists a new user entity to the database.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	user.ID = newID(user.ID)
	// Map the pure domain entity to a GORM persistence model.
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Omit("Role").Create(userM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrUserAlreadyExists
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrUserCreationFailed.WrapMessage("missing required user information")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserCreationFailed.WrapMessage("invalid role reference")
		}
		// For other database errors, return a generic database error
		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// Update modifies an existing user entity in the database.
func (repo *userRepository) Update(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Omit("Role", "Authentications", "RefreshTokens").Save(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrUserAlreadyExists
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrUserUpdateFailed.WrapMessage("missing required user information")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserUpdateFailed.WrapMessage("invalid role reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update user")
	}

	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// Delete removes a user; credentials and sessions cascade.
func (repo *userRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.UserModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete user")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toUserDomain converts a GORM UserModel to a domain User entity.
func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:                      data.ID,
		FirstName:               data.FirstName,
		LastName:                data.LastName,
		Email:                   data.Email,
		Phone:                   data.Phone,
		Avatar:                  data.Avatar,
		RoleID:                  data.RoleID,
		Role:                    toRoleDomain(data.Role),
		IsEmailVerified:         data.IsEmailVerified,
		EmailVerificationDigest: data.EmailVerificationDigest,
		EmailVerificationExpiry: data.EmailVerificationExpiry,
		PasswordResetDigest:     data.PasswordResetDigest,
		PasswordResetExpiry:     data.PasswordResetExpiry,
		LastLogin:               data.LastLogin,
		IsActive:                data.IsActive,
		CreatedAt:               data.CreatedAt,
		UpdatedAt:               data.UpdatedAt,
	}
}

// fromUserDomain converts a domain User entity to a GORM UserModel.
func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	return &model.UserModel{
		ID:                      data.ID,
		FirstName:               data.FirstName,
		LastName:                data.LastName,
		Email:                   data.Email,
		Phone:                   data.Phone,
		Avatar:                  data.Avatar,
		RoleID:                  data.RoleID,
		IsEmailVerified:         data.IsEmailVerified,
		EmailVerificationDigest: data.EmailVerificationDigest,
		EmailVerificationExpiry: data.EmailVerificationExpiry,
		PasswordResetDigest:     data.PasswordResetDigest,
		PasswordResetExpiry:     data.PasswordResetExpiry,
		LastLogin:               data.LastLogin,
		IsActive:                data.IsActive,
		CreatedAt:               data.CreatedAt,
		UpdatedAt:               data.UpdatedAt,
	}
}
