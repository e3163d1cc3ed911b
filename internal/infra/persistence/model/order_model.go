package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderAddressColumns is embedded twice in OrderModel with shipping_ and billing_ prefixes.
type OrderAddressColumns struct {
	FullName     string `gorm:"type:varchar(100)"`
	Phone        string `gorm:"type:varchar(30)"`
	AddressLine1 string `gorm:"type:varchar(255)"`
	AddressLine2 string `gorm:"type:varchar(255)"`
	City         string `gorm:"type:varchar(100)"`
	State        string `gorm:"type:varchar(100)"`
	Country      string `gorm:"type:varchar(100)"`
	ZipCode      string `gorm:"type:varchar(20)"`
}

// OrderModel mirrors the 'orders' table.
type OrderModel struct {
	ID                   uuid.UUID           `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OrderNumber          string              `gorm:"type:varchar(32);not null;unique"`
	UserID               uuid.UUID           `gorm:"type:uuid;not null;index"`
	Items                []OrderItemModel    `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	Shipping             OrderAddressColumns `gorm:"embedded;embeddedPrefix:shipping_"`
	Billing              OrderAddressColumns `gorm:"embedded;embeddedPrefix:billing_"`
	PaymentMethod        string              `gorm:"type:varchar(20);not null"`
	PaymentStatus        string              `gorm:"type:varchar(20);not null;default:'pending'"`
	PaymentTransactionID string              `gorm:"type:varchar(255)"`
	PaidAt               *time.Time
	Subtotal             decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Tax                  decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`
	ShippingCost         decimal.Decimal `gorm:"column:shipping;type:numeric(12,2);not null;default:0"`
	Discount             decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`
	Total                decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	OrderStatus          string          `gorm:"type:varchar(20);not null;default:'pending';index"`
	Notes                string          `gorm:"type:text"`
	CancellationReason   string          `gorm:"type:text"`
	CancelledAt          *time.Time
	CreatedAt            time.Time `gorm:"index"`
	UpdatedAt            time.Time
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// OrderItemModel mirrors the 'order_items' table.
type OrderItemModel struct {
	ID              uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OrderID         uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	ListingID       *uuid.UUID      `gorm:"type:uuid"`
	VariantID       *uuid.UUID      `gorm:"type:uuid"`
	SellerID        uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductName     string          `gorm:"type:varchar(200);not null"`
	VariantName     string          `gorm:"type:varchar(200)"`
	Quantity        int             `gorm:"not null"`
	PriceAtPurchase decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Status          string          `gorm:"type:varchar(20);not null;default:'pending'"`
	TrackingNumber  string          `gorm:"type:varchar(100)"`
	Position        int             `gorm:"not null;default:0"`
	ShippedAt       *time.Time
	DeliveredAt     *time.Time
}

// TableName explicitly sets the table name for GORM.
func (OrderItemModel) TableName() string {
	return "order_items"
}

// OrderSequenceModel mirrors the 'order_sequences' table: one counter row per calendar day.
type OrderSequenceModel struct {
	Day   time.Time `gorm:"type:date;primaryKey"`
	Value int64     `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (OrderSequenceModel) TableName() string {
	return "order_sequences"
}
