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

type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository is the constructor for categoryRepository.
func NewCategoryRepository(db *gorm.DB) repository.CategoryRepository {
	return &categoryRepository{db: db}
}

// Create persists a category.
func (repo *categoryRepository) Create(ctx context.Context, category *entity.Category) error {
	category.ID = newID(category.ID)
	categoryM := fromCategoryDomain(category)

	if err := repo.db.WithContext(ctx).Select("*").Create(categoryM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ConflictError(fieldLabel(conflictingColumn(err, "categories", "slug")))
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create category")
	}

	category.CreatedAt = categoryM.CreatedAt
	category.UpdatedAt = categoryM.UpdatedAt

	return nil
}

// FindByID retrieves a category.
func (repo *categoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	return repo.findOne(ctx, "id = ?", id)
}

// FindBySlug retrieves a category by slug.
func (repo *categoryRepository) FindBySlug(ctx context.Context, slug string) (*entity.Category, error) {
	return repo.findOne(ctx, "slug = ?", slug)
}

func (repo *categoryRepository) findOne(ctx context.Context, query string, args ...any) (*entity.Category, error) {
	var categoryM model.CategoryModel

	if err := repo.db.WithContext(ctx).Where(query, args...).First(&categoryM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCategoryNotFound
		}

		return nil, errors.Wrap(err, "failed to find category")
	}

	return toCategoryDomain(&categoryM), nil
}

// List returns categories ordered for display.
func (repo *categoryRepository) List(ctx context.Context, activeOnly bool) ([]*entity.Category, error) {
	query := repo.db.WithContext(ctx).Model(&model.CategoryModel{})
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}

	var categoryModels []*model.CategoryModel
	if err := query.Order("sort_order ASC, name ASC").Find(&categoryModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	categories := make([]*entity.Category, 0, len(categoryModels))
	for _, categoryM := range categoryModels {
		categories = append(categories, toCategoryDomain(categoryM))
	}

	return categories, nil
}

// Update saves every mutable column.
func (repo *categoryRepository) Update(ctx context.Context, category *entity.Category) error {
	categoryM := fromCategoryDomain(category)
	categoryM.UpdatedAt = time.Now()

	result := repo.db.WithContext(ctx).
		Model(&model.CategoryModel{}).
		Where("id = ?", category.ID).
		Select("*").Omit("id", "created_at").
		Updates(categoryM)
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return domainerrors.ConflictError(fieldLabel(conflictingColumn(result.Error, "categories", "slug")))
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update category")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCategoryNotFound
	}

	category.UpdatedAt = categoryM.UpdatedAt

	return nil
}

// Delete removes a category. Child categories are promoted to roots and product links dropped.
func (repo *categoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.CategoryModel{}).
			Where("parent_id = ?", id).
			Updates(map[string]any{"parent_id": nil, "level": 0}).Error; err != nil {
			return errors.Wrap(err, "failed to detach child categories")
		}
		if err := tx.Exec("DELETE FROM product_categories WHERE category_id = ?", id).Error; err != nil {
			return errors.Wrap(err, "failed to unlink category products")
		}

		result := tx.Where("id = ?", id).Delete(&model.CategoryModel{})
		if result.Error != nil {
			return errors.Wrap(result.Error, "failed to delete category")
		}
		if result.RowsAffected == 0 {
			return repository.ErrCategoryNotFound
		}

		return nil
	})
}

// --- Mapper Functions ---

func toCategoryDomain(data *model.CategoryModel) *entity.Category {
	if data == nil {
		return nil
	}

	return &entity.Category{
		ID:          data.ID,
		Name:        data.Name,
		Slug:        data.Slug,
		Description: data.Description,
		Image:       data.Image,
		ParentID:    data.ParentID,
		Level:       data.Level,
		SortOrder:   data.SortOrder,
		IsFeatured:  data.IsFeatured,
		IsActive:    data.IsActive,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromCategoryDomain(data *entity.Category) *model.CategoryModel {
	return &model.CategoryModel{
		ID:          data.ID,
		Name:        data.Name,
		Slug:        data.Slug,
		Description: data.Description,
		Image:       data.Image,
		ParentID:    data.ParentID,
		Level:       data.Level,
		SortOrder:   data.SortOrder,
		IsFeatured:  data.IsFeatured,
		IsActive:    data.IsActive,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
