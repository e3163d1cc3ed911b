package usecase

import (
	"context"

	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
)

// WishlistUsecase manages saved products.
type WishlistUsecase interface {
	GetWishlist(ctx context.Context, userID uuid.UUID) (*entity.Wishlist, error)
	AddToWishlist(ctx context.Context, userID, productID uuid.UUID) (*entity.Wishlist, error)
	RemoveFromWishlist(ctx context.Context, userID, productID uuid.UUID) (*entity.Wishlist, error)
	ClearWishlist(ctx context.Context, userID uuid.UUID) error
	// MoveToCart adds one unit to the cart and drops the product from the wishlist.
	MoveToCart(ctx context.Context, userID, productID uuid.UUID) (*entity.Cart, error)
}
