// Package postgres implements the repository ports on GORM and PostgreSQL.
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

type authRepository struct {
	db *gorm.DB
}

func NewAuthRepository(db *gorm.DB) repository.AuthRepository {
	return &authRepository{db: db}
}

// CreateAuthentication reports a taken identity as ErrUserAlreadyExists.
func (repo *authRepository) CreateAuthentication(ctx context.Context, auth *entity.Authentication) error {
	row := model.AuthenticationModel{
		ID:             newID(auth.ID),
		UserID:         auth.UserID,
		Provider:       auth.Provider,
		ProviderUserID: auth.ProviderUserID,
		PasswordHash:   auth.PasswordHash,
	}

	if err := repo.db.WithContext(ctx).Create(&row).Error; err != nil {
		switch {
		case isUniqueConstraintViolation(err):
			return domainerrors.ErrUserAlreadyExists
		case isForeignKeyConstraintViolation(err):
			return domainerrors.ErrUserCreationFailed.WrapMessage("invalid user reference")
		case isNotNullConstraintViolation(err):
			return domainerrors.ErrUserCreationFailed.WrapMessage("missing required authentication information")
		default:
			return domainerrors.NewDatabaseExecuteError(err, "failed to create authentication")
		}
	}

	auth.ID = row.ID
	auth.CreatedAt = row.CreatedAt
	auth.UpdatedAt = row.UpdatedAt

	return nil
}

func (repo *authRepository) FindAuthentication(ctx context.Context, provider string, providerUserID string) (*entity.Authentication, error) {
	var row model.AuthenticationModel

	err := repo.db.WithContext(ctx).
		Where(&model.AuthenticationModel{Provider: provider, ProviderUserID: providerUserID}).
		Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAuthNotFound
		}

		return nil, errors.Wrap(err, "failed to find authentication")
	}

	return &entity.Authentication{
		ID:             row.ID,
		UserID:         row.UserID,
		Provider:       row.Provider,
		ProviderUserID: row.ProviderUserID,
		PasswordHash:   row.PasswordHash,
		CreatedAt:      row.CreatedAt,
		UpdatedAt:      row.UpdatedAt,
	}, nil
}

func (repo *authRepository) UpdatePasswordHash(ctx context.Context, userID uuid.UUID, passwordHash string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.AuthenticationModel{}).
		Where("user_id = ? AND provider = ?", userID, entity.ProviderTypeEmail).
		Update("password_hash", passwordHash)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update password")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAuthNotFound
	}

	return nil
}
