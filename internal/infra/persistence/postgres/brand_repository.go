package postgres

import (
	"context"
	"time"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type brandRepository struct {
	db *gorm.DB
}

// NewBrandRepository is the constructor for brandRepository.
func NewBrandRepository(db *gorm.DB) repository.BrandRepository {
	return &brandRepository{db: db}
}

// Create persists a brand. Names and slugs are unique.
func (repo *brandRepository) Create(ctx context.Context, brand *entity.Brand) error {
	brand.ID = newID(brand.ID)
	brandM := fromBrandDomain(brand)

	if err := repo.db.WithContext(ctx).Select("*").Create(brandM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return brandConflict(err)
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create brand")
	}

	brand.CreatedAt = brandM.CreatedAt
	brand.UpdatedAt = brandM.UpdatedAt

	return nil
}

// FindByID retrieves a brand.
func (repo *brandRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Brand, error) {
	var brandM model.BrandModel

	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&brandM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBrandNotFound
		}

		return nil, errors.Wrap(err, "failed to find brand")
	}

	return toBrandDomain(&brandM), nil
}

// List returns brands by name.
func (repo *brandRepository) List(ctx context.Context, activeOnly bool) ([]*entity.Brand, error) {
	query := repo.db.WithContext(ctx).Model(&model.BrandModel{})
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}

	var brandModels []*model.BrandModel
	if err := query.Order("name ASC").Find(&brandModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list brands")
	}

	brands := make([]*entity.Brand, 0, len(brandModels))
	for _, brandM := range brandModels {
		brands = append(brands, toBrandDomain(brandM))
	}

	return brands, nil
}

// Update saves every mutable column.
func (repo *brandRepository) Update(ctx context.Context, brand *entity.Brand) error {
	brandM := fromBrandDomain(brand)
	brandM.UpdatedAt = time.Now()

	result := repo.db.WithContext(ctx).
		Model(&model.BrandModel{}).
		Where("id = ?", brand.ID).
		Select("*").Omit("id", "created_at").
		Updates(brandM)
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return brandConflict(result.Error)
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update brand")
	}
	if result.RowsAffected == 0 {
		return repository.ErrBrandNotFound
	}

	brand.UpdatedAt = brandM.UpdatedAt

	return nil
}

// brandConflict names the clashing field. The slug is derived from the name,
// so a slug clash is reported against the name.
func brandConflict(err error) error {
	column := conflictingColumn(err, "brands", "name")
	if column == "slug" {
		column = "name"
	}

	return domainerrors.ConflictError(fieldLabel(column))
}

// Delete removes a brand and clears it from products.
func (repo *brandRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.ProductModel{}).
			Where("brand_id = ?", id).
			UpdateColumn("brand_id", nil).Error; err != nil {
			return errors.Wrap(err, "failed to detach brand from products")
		}

		result := tx.Where("id = ?", id).Delete(&model.BrandModel{})
		if result.Error != nil {
			return errors.Wrap(result.Error, "failed to delete brand")
		}
		if result.RowsAffected == 0 {
			return repository.ErrBrandNotFound
		}

		return nil
	})
}

// --- Mapper Functions ---

func toBrandDomain(data *model.BrandModel) *entity.Brand {
	if data == nil {
		return nil
	}

	return &entity.Brand{
		ID:          data.ID,
		Name:        data.Name,
		Slug:        data.Slug,
		Description: data.Description,
		Logo:        data.Logo,
		Website:     data.Website,
		IsFeatured:  data.IsFeatured,
		IsActive:    data.IsActive,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromBrandDomain(data *entity.Brand) *model.BrandModel {
	return &model.BrandModel{
		ID:          data.ID,
		Name:        data.Name,
		Slug:        data.Slug,
		Description: data.Description,
		Logo:        data.Logo,
		Website:     data.Website,
		IsFeatured:  data.IsFeatured,
		IsActive:    data.IsActive,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
