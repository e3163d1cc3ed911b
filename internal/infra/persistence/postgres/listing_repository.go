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

type listingRepository struct {
	db *gorm.DB
}

// NewListingRepository is the constructor for listingRepository.
func NewListingRepository(db *gorm.DB) repository.ListingRepository {
	return &listingRepository{db: db}
}

// Create persists a listing. Every column is written so an unavailable listing stays unavailable.
func (repo *listingRepository) Create(ctx context.Context, listing *entity.ProductListing) error {
	listing.ID = newID(listing.ID)
	listingM := fromListingDomain(listing)

	if err := repo.db.WithContext(ctx).Select("*").Create(listingM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrProductNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create listing")
	}

	listing.CreatedAt = listingM.CreatedAt
	listing.UpdatedAt = listingM.UpdatedAt

	return nil
}

// FindByID retrieves a listing.
func (repo *listingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.ProductListing, error) {
	var listingM model.ProductListingModel

	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&listingM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrListingNotFound
		}

		return nil, errors.Wrap(err, "failed to find listing")
	}

	return toListingDomain(&listingM), nil
}

// ListByProduct returns every seller offer of a product, cheapest first.
func (repo *listingRepository) ListByProduct(ctx context.Context, productID uuid.UUID) ([]*entity.ProductListing, error) {
	var listingModels []*model.ProductListingModel

	if err := repo.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("price ASC").
		Find(&listingModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list listings")
	}

	listings := make([]*entity.ProductListing, 0, len(listingModels))
	for _, listingM := range listingModels {
		listings = append(listings, toListingDomain(listingM))
	}

	return listings, nil
}

// Update saves price, stock and availability.
func (repo *listingRepository) Update(ctx context.Context, listing *entity.ProductListing) error {
	listing.UpdatedAt = time.Now()

	result := repo.db.WithContext(ctx).
		Model(&model.ProductListingModel{}).
		Where("id = ?", listing.ID).
		Updates(map[string]any{
			"price":          listing.Price,
			"stock_quantity": listing.StockQuantity,
			"is_available":   listing.IsAvailable,
			"updated_at":     listing.UpdatedAt,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update listing")
	}
	if result.RowsAffected == 0 {
		return repository.ErrListingNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toListingDomain(data *model.ProductListingModel) *entity.ProductListing {
	return &entity.ProductListing{
		ID:            data.ID,
		ProductID:     data.ProductID,
		VariantID:     data.VariantID,
		SellerID:      data.SellerID,
		Price:         data.Price,
		StockQuantity: data.StockQuantity,
		IsAvailable:   data.IsAvailable,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

func fromListingDomain(data *entity.ProductListing) *model.ProductListingModel {
	return &model.ProductListingModel{
		ID:            data.ID,
		ProductID:     data.ProductID,
		VariantID:     data.VariantID,
		SellerID:      data.SellerID,
		Price:         data.Price,
		StockQuantity: data.StockQuantity,
		IsAvailable:   data.IsAvailable,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}
