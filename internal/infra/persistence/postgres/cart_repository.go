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

type cartRepository struct {
	db *gorm.DB
}

// NewCartRepository is the constructor for cartRepository.
func NewCartRepository(db *gorm.DB) repository.CartRepository {
	return &cartRepository{db: db}
}

// FindByUserID loads the user's cart with its lines in insertion order.
func (repo *cartRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Cart, error) {
	return repo.find(ctx, userID, false)
}

// FindByUserIDForUpdate takes a row lock on the cart header. Callers must be inside a transaction.
func (repo *cartRepository) FindByUserIDForUpdate(ctx context.Context, userID uuid.UUID) (*entity.Cart, error) {
	return repo.find(ctx, userID, true)
}

func (repo *cartRepository) find(ctx context.Context, userID uuid.UUID, forUpdate bool) (*entity.Cart, error) {
	var cartM model.CartModel

	query := repo.db.WithContext(ctx)
	if forUpdate {
		query = query.Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate})
	}

	if err := query.
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Where("user_id = ?", userID).
		First(&cartM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCartNotFound
		}

		return nil, errors.Wrap(err, "failed to find cart")
	}

	return toCartDomain(&cartM), nil
}

// Create persists an empty cart. A concurrent create for the same user surfaces as a conflict.
func (repo *cartRepository) Create(ctx context.Context, cart *entity.Cart) error {
	cart.ID = newID(cart.ID)
	cartM := fromCartDomain(cart)

	if err := repo.db.WithContext(ctx).Omit("Items").Create(cartM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WithDetails("cart already exists")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create cart")
	}

	return repo.insertItems(repo.db.WithContext(ctx), cartM)
}

// Save writes totals and replaces every line of the cart.
func (repo *cartRepository) Save(ctx context.Context, cart *entity.Cart) error {
	cart.UpdatedAt = time.Now()
	cartM := fromCartDomain(cart)

	return repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&model.CartModel{}).
			Where("id = ?", cart.ID).
			Updates(map[string]any{
				"subtotal":   cartM.Subtotal,
				"tax":        cartM.Tax,
				"total":      cartM.Total,
				"updated_at": cartM.UpdatedAt,
			})
		if result.Error != nil {
			return domainerrors.NewDatabaseExecuteError(result.Error, "failed to save cart")
		}
		if result.RowsAffected == 0 {
			return repository.ErrCartNotFound
		}

		if err := tx.Where("cart_id = ?", cart.ID).Delete(&model.CartItemModel{}).Error; err != nil {
			return errors.Wrap(err, "failed to clear cart items")
		}

		return repo.insertItems(tx, cartM)
	})
}

func (repo *cartRepository) insertItems(db *gorm.DB, cartM *model.CartModel) error {
	if len(cartM.Items) == 0 {
		return nil
	}
	if err := db.Create(&cartM.Items).Error; err != nil {
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WithDetails("quantity must be at least 1")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to write cart items")
	}

	return nil
}

// --- Mapper Functions ---

func toCartDomain(data *model.CartModel) *entity.Cart {
	cart := &entity.Cart{
		ID:        data.ID,
		UserID:    data.UserID,
		Items:     make([]*entity.CartItem, 0, len(data.Items)),
		Subtotal:  data.Subtotal,
		Tax:       data.Tax,
		Total:     data.Total,
		ExpiresAt: data.ExpiresAt,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}

	for i := range data.Items {
		item := &data.Items[i]
		cart.Items = append(cart.Items, &entity.CartItem{
			ID:          item.ID,
			CartID:      item.CartID,
			ProductID:   item.ProductID,
			ListingID:   item.ListingID,
			VariantID:   item.VariantID,
			SellerID:    item.SellerID,
			ProductName: item.ProductName,
			Image:       item.Image,
			Quantity:    item.Quantity,
			Price:       item.Price,
			AddedAt:     item.AddedAt,
		})
	}

	return cart
}

func fromCartDomain(data *entity.Cart) *model.CartModel {
	cartM := &model.CartModel{
		ID:        data.ID,
		UserID:    data.UserID,
		Items:     make([]model.CartItemModel, 0, len(data.Items)),
		Subtotal:  data.Subtotal,
		Tax:       data.Tax,
		Total:     data.Total,
		ExpiresAt: data.ExpiresAt,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}

	for i, item := range data.Items {
		item.ID = newID(item.ID)
		item.CartID = data.ID
		cartM.Items = append(cartM.Items, model.CartItemModel{
			ID:          item.ID,
			CartID:      data.ID,
			ProductID:   item.ProductID,
			ListingID:   item.ListingID,
			VariantID:   item.VariantID,
			SellerID:    item.SellerID,
			ProductName: item.ProductName,
			Image:       item.Image,
			Quantity:    item.Quantity,
			Price:       item.Price,
			Position:    i,
			AddedAt:     item.AddedAt,
		})
	}

	return cartM
}
