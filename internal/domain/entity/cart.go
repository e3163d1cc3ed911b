package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CartRefKind tells which catalog entity a cart line points at.
type CartRefKind int

const (
	RefByProduct CartRefKind = iota + 1
	RefByListing
)

// CartItemRef identifies a cart line either by product or by listing.
type CartItemRef struct {
	Kind CartRefKind
	ID   uuid.UUID
}

// ByProduct references the cart line holding a product without a listing.
func ByProduct(id uuid.UUID) CartItemRef {
	return CartItemRef{Kind: RefByProduct, ID: id}
}

// ByListing references the cart line holding a seller listing.
func ByListing(id uuid.UUID) CartItemRef {
	return CartItemRef{Kind: RefByListing, ID: id}
}

// Matches reports whether the item is the line this reference names.
func (r CartItemRef) Matches(item *CartItem) bool {
	switch r.Kind {
	case RefByListing:
		return item.ListingID != nil && *item.ListingID == r.ID
	case RefByProduct:
		return item.ListingID == nil && item.ProductID == r.ID
	default:
		return false
	}
}

// CartItem is one line of a cart. Price is captured when the line is first added.
type CartItem struct {
	ID          uuid.UUID       `json:"id"`
	CartID      uuid.UUID       `json:"cart_id"`
	ProductID   uuid.UUID       `json:"product_id"`
	ListingID   *uuid.UUID      `json:"listing_id,omitempty"`
	VariantID   *uuid.UUID      `json:"variant_id,omitempty"`
	SellerID    uuid.UUID       `json:"seller_id"`
	ProductName string          `json:"product_name"`
	Image       string          `json:"image,omitempty"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
	AddedAt     time.Time       `json:"added_at"`
}

// LineTotal is price times quantity.
func (i *CartItem) LineTotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Ref returns the tagged reference naming this line.
func (i *CartItem) Ref() CartItemRef {
	if i.ListingID != nil {
		return ByListing(*i.ListingID)
	}

	return ByProduct(i.ProductID)
}

// Cart is the per-user mutable line collection with derived totals.
type Cart struct {
	ID        uuid.UUID       `json:"id"`
	UserID    uuid.UUID       `json:"user_id"`
	Items     []*CartItem     `json:"items"`
	Subtotal  decimal.Decimal `json:"subtotal"`
	Tax       decimal.Decimal `json:"tax"`
	Total     decimal.Decimal `json:"total"`
	ExpiresAt time.Time       `json:"expires_at"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// NewCart builds an empty cart for the user expiring ttl after now.
func NewCart(userID uuid.UUID, now time.Time, ttl time.Duration) *Cart {
	return &Cart{
		ID:        uuid.New(),
		UserID:    userID,
		Items:     []*CartItem{},
		Subtotal:  decimal.Zero,
		Tax:       decimal.Zero,
		Total:     decimal.Zero,
		ExpiresAt: now.Add(ttl),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// ItemCount is the sum of line quantities.
func (c *Cart) ItemCount() int {
	count := 0
	for _, item := range c.Items {
		count += item.Quantity
	}

	return count
}

// Find returns the line matching ref, or nil.
func (c *Cart) Find(ref CartItemRef) *CartItem {
	for _, item := range c.Items {
		if ref.Matches(item) {
			return item
		}
	}

	return nil
}

// Remove drops the line matching ref and reports whether one was removed.
func (c *Cart) Remove(ref CartItemRef) bool {
	for i, item := range c.Items {
		if ref.Matches(item) {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)

			return true
		}
	}

	return false
}

// Clear empties the cart and zeroes its totals.
func (c *Cart) Clear() {
	c.Items = []*CartItem{}
	c.Subtotal = decimal.Zero
	c.Tax = decimal.Zero
	c.Total = decimal.Zero
}

// Recalculate re-derives subtotal, tax and total. Tax is rounded to cents.
func (c *Cart) Recalculate(taxRate decimal.Decimal) {
	subtotal := decimal.Zero
	for _, item := range c.Items {
		subtotal = subtotal.Add(item.LineTotal())
	}

	c.Subtotal = subtotal
	c.Tax = subtotal.Mul(taxRate).Round(2)
	c.Total = c.Subtotal.Add(c.Tax)
}
