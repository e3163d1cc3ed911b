package repository

import (
	"context"
	"errors"

	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrCartNotFound is returned when the user has no cart yet.
var ErrCartNotFound = errors.New("cart not found")

// CartRepository persists a cart together with its lines.
type CartRepository interface {
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Cart, error)

	// FindByUserIDForUpdate loads the cart and row-locks it until the transaction ends.
	// Concurrent checkouts of one cart serialise on this lock.
	FindByUserIDForUpdate(ctx context.Context, userID uuid.UUID) (*entity.Cart, error)

	Create(ctx context.Context, cart *entity.Cart) error

	// Save writes the cart totals and replaces its lines.
	Save(ctx context.Context, cart *entity.Cart) error
}

// WishlistRepository persists per-user saved products.
type WishlistRepository interface {
	List(ctx context.Context, userID uuid.UUID) ([]*entity.WishlistItem, error)

	// Add is a no-op when the product is already saved.
	Add(ctx context.Context, userID, productID uuid.UUID) error
	Remove(ctx context.Context, userID, productID uuid.UUID) error
	Clear(ctx context.Context, userID uuid.UUID) error
}
