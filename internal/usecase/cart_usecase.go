package usecase

import (
	"context"

	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
)

// AddCartItemInput adds a product, or a seller listing of it, to the cart.
type AddCartItemInput struct {
	ProductID uuid.UUID
	ListingID *uuid.UUID
	Quantity  int
}

// SyncCartItem is one line of a client-held cart.
type SyncCartItem struct {
	ProductID *uuid.UUID
	ListingID *uuid.UUID
	Quantity  int
}

// CartUsecase defines the per-user cart operations. Every mutation re-derives the totals.
type CartUsecase interface {
	GetCart(ctx context.Context, userID uuid.UUID) (*entity.Cart, error)
	AddItem(ctx context.Context, userID uuid.UUID, input *AddCartItemInput) (*entity.Cart, error)
	// UpdateItemQuantity removes the line when quantity <= 0.
	UpdateItemQuantity(ctx context.Context, userID uuid.UUID, ref entity.CartItemRef, quantity int) (*entity.Cart, error)
	RemoveItem(ctx context.Context, userID uuid.UUID, ref entity.CartItemRef) (*entity.Cart, error)
	ClearCart(ctx context.Context, userID uuid.UUID) (*entity.Cart, error)
	ItemCount(ctx context.Context, userID uuid.UUID) (int, error)
	// SyncCart merges client lines, skipping inactive or under-stocked products.
	SyncCart(ctx context.Context, userID uuid.UUID, items []SyncCartItem) (*entity.Cart, error)
}
