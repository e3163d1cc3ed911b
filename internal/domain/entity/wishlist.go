package entity

import (
	"time"

	"github.com/google/uuid"
)

// WishlistItem is a saved product.
type WishlistItem struct {
	ProductID uuid.UUID `json:"product_id"`
	Product   *Product  `json:"product,omitempty"`
	AddedAt   time.Time `json:"added_at"`
}

// Wishlist is the per-user set of saved products.
type Wishlist struct {
	UserID uuid.UUID       `json:"user_id"`
	Items  []*WishlistItem `json:"items"`
}
