package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CartModel mirrors the 'carts' table. One row per user.
type CartModel struct {
	ID        uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID    uuid.UUID       `gorm:"type:uuid;not null;unique"`
	Items     []CartItemModel `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE"`
	Subtotal  decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`
	Tax       decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`
	Total     decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`
	ExpiresAt time.Time       `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (CartModel) TableName() string {
	return "carts"
}

// CartItemModel mirrors the 'cart_items' table.
type CartItemModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	CartID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID   uuid.UUID       `gorm:"type:uuid;not null"`
	ListingID   *uuid.UUID      `gorm:"type:uuid"`
	VariantID   *uuid.UUID      `gorm:"type:uuid"`
	SellerID    uuid.UUID       `gorm:"type:uuid;not null"`
	ProductName string          `gorm:"type:varchar(200);not null"`
	Image       string          `gorm:"type:varchar(500)"`
	Quantity    int             `gorm:"not null;check:chk_cart_items_quantity,quantity >= 1"`
	Price       decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Position    int             `gorm:"not null;default:0"`
	AddedAt     time.Time       `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (CartItemModel) TableName() string {
	return "cart_items"
}

// WishlistItemModel mirrors the 'wishlist_items' table. (user, product) is unique.
type WishlistItemModel struct {
	UserID    uuid.UUID     `gorm:"type:uuid;primaryKey"`
	ProductID uuid.UUID     `gorm:"type:uuid;primaryKey"`
	Product   *ProductModel `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	AddedAt   time.Time     `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (WishlistItemModel) TableName() string {
	return "wishlist_items"
}
