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
	"gorm.io/gorm/clause"
)

type wishlistRepository struct {
	db *gorm.DB
}

// NewWishlistRepository is the constructor for wishlistRepository.
func NewWishlistRepository(db *gorm.DB) repository.WishlistRepository {
	return &wishlistRepository{db: db}
}

// List returns the saved products, most recent first.
func (repo *wishlistRepository) List(ctx context.Context, userID uuid.UUID) ([]*entity.WishlistItem, error) {
	var itemModels []*model.WishlistItemModel

	if err := repo.db.WithContext(ctx).
		Preload("Product").
		Where("user_id = ?", userID).
		Order("added_at DESC").
		Find(&itemModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list wishlist")
	}

	items := make([]*entity.WishlistItem, 0, len(itemModels))
	for _, itemM := range itemModels {
		items = append(items, &entity.WishlistItem{
			ProductID: itemM.ProductID,
			Product:   toProductDomain(itemM.Product),
			AddedAt:   itemM.AddedAt,
		})
	}

	return items, nil
}

// Add saves a product. Saving it twice keeps the original timestamp.
func (repo *wishlistRepository) Add(ctx context.Context, userID, productID uuid.UUID) error {
	itemM := &model.WishlistItemModel{
		UserID:    userID,
		ProductID: productID,
		AddedAt:   time.Now(),
	}

	if err := repo.db.WithContext(ctx).
		Omit("Product").
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(itemM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrProductNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to add wishlist item")
	}

	return nil
}

// Remove deletes a saved product. Removing an absent product is not an error.
func (repo *wishlistRepository) Remove(ctx context.Context, userID, productID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Delete(&model.WishlistItemModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to remove wishlist item")
	}

	return nil
}

// Clear empties the wishlist.
func (repo *wishlistRepository) Clear(ctx context.Context, userID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&model.WishlistItemModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to clear wishlist")
	}

	return nil
}
