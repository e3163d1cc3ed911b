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

type variantRepository struct {
	db *gorm.DB
}

// NewVariantRepository is the constructor for variantRepository.
func NewVariantRepository(db *gorm.DB) repository.VariantRepository {
	return &variantRepository{db: db}
}

// Create persists a variant. SKUs are unique across the catalog.
func (repo *variantRepository) Create(ctx context.Context, variant *entity.ProductVariant) error {
	variant.ID = newID(variant.ID)
	variantM := fromVariantDomain(variant)

	if err := repo.db.WithContext(ctx).Select("*").Create(variantM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ConflictError("SKU")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrProductNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create variant")
	}

	variant.CreatedAt = variantM.CreatedAt
	variant.UpdatedAt = variantM.UpdatedAt

	return nil
}

// FindByID retrieves a variant.
func (repo *variantRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.ProductVariant, error) {
	var variantM model.ProductVariantModel

	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&variantM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrVariantNotFound
		}

		return nil, errors.Wrap(err, "failed to find variant")
	}

	return toVariantDomain(&variantM), nil
}

// ListByProduct returns the variants of a product, default first.
func (repo *variantRepository) ListByProduct(ctx context.Context, productID uuid.UUID) ([]*entity.ProductVariant, error) {
	var variantModels []*model.ProductVariantModel

	if err := repo.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("is_default DESC, created_at ASC").
		Find(&variantModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list variants")
	}

	variants := make([]*entity.ProductVariant, 0, len(variantModels))
	for _, variantM := range variantModels {
		variants = append(variants, toVariantDomain(variantM))
	}

	return variants, nil
}

// ClearDefault unsets the default flag on every variant of the product.
func (repo *variantRepository) ClearDefault(ctx context.Context, productID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Model(&model.ProductVariantModel{}).
		Where("product_id = ? AND is_default = ?", productID, true).
		Update("is_default", false).Error; err != nil {
		return errors.Wrap(err, "failed to clear default variant")
	}

	return nil
}

// --- Mapper Functions ---

func toVariantDomain(data *model.ProductVariantModel) *entity.ProductVariant {
	attrs := make([]entity.VariantAttribute, 0, len(data.Attributes))
	for _, a := range data.Attributes {
		attrs = append(attrs, entity.VariantAttribute{Name: a.Name, Value: a.Value})
	}

	return &entity.ProductVariant{
		ID:            data.ID,
		ProductID:     data.ProductID,
		SKU:           data.SKU,
		Attributes:    attrs,
		Price:         data.Price,
		StockQuantity: data.StockQuantity,
		Weight:        data.Weight,
		Barcode:       data.Barcode,
		IsDefault:     data.IsDefault,
		IsActive:      data.IsActive,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

func fromVariantDomain(data *entity.ProductVariant) *model.ProductVariantModel {
	attrs := make([]model.AttributeJSON, 0, len(data.Attributes))
	for _, a := range data.Attributes {
		attrs = append(attrs, model.AttributeJSON{Name: a.Name, Value: a.Value})
	}

	return &model.ProductVariantModel{
		ID:            data.ID,
		ProductID:     data.ProductID,
		SKU:           data.SKU,
		Attributes:    attrs,
		Price:         data.Price,
		StockQuantity: data.StockQuantity,
		Weight:        data.Weight,
		Barcode:       data.Barcode,
		IsDefault:     data.IsDefault,
		IsActive:      data.IsActive,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}
