package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// VariantAttribute is a name/value pair such as color=red.
type VariantAttribute struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// ProductVariant is a SKU-level child of a product. At most one variant per product is default.
type ProductVariant struct {
	ID            uuid.UUID          `json:"id"`
	ProductID     uuid.UUID          `json:"product_id"`
	SKU           string             `json:"sku"`
	Attributes    []VariantAttribute `json:"attributes"`
	Price         decimal.Decimal    `json:"price"`
	StockQuantity int                `json:"stock_quantity"`
	Weight        float64            `json:"weight,omitempty"`
	Barcode       string             `json:"barcode,omitempty"`
	IsDefault     bool               `json:"is_default"`
	IsActive      bool               `json:"is_active"`
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`
}

// NormalizeSKU upper-cases and trims a SKU.
func NormalizeSKU(sku string) string {
	return strings.ToUpper(strings.TrimSpace(sku))
}

// DisplayName joins attribute values, e.g. "Red / XL".
func (v *ProductVariant) DisplayName() string {
	values := make([]string, 0, len(v.Attributes))
	for _, a := range v.Attributes {
		values = append(values, a.Value)
	}

	return strings.Join(values, " / ")
}

// StockOperation selects how a listing stock update applies its quantity.
type StockOperation string

const (
	StockAdd      StockOperation = "add"
	StockSubtract StockOperation = "subtract"
	StockSet      StockOperation = "set"
)

// ProductListing is a seller's sellable offer of a variant.
type ProductListing struct {
	ID            uuid.UUID       `json:"id"`
	ProductID     uuid.UUID       `json:"product_id"`
	VariantID     *uuid.UUID      `json:"variant_id,omitempty"`
	SellerID      uuid.UUID       `json:"seller_id"`
	Price         decimal.Decimal `json:"price"`
	StockQuantity int             `json:"stock_quantity"`
	IsAvailable   bool            `json:"is_available"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// ApplyStock updates the stock quantity, never going below zero, and keeps
// IsAvailable false whenever the quantity is zero.
func (l *ProductListing) ApplyStock(qty int, op StockOperation) {
	switch op {
	case StockAdd:
		l.StockQuantity += qty
	case StockSubtract:
		l.StockQuantity = max(l.StockQuantity-qty, 0)
	case StockSet:
		l.StockQuantity = max(qty, 0)
	}

	if l.StockQuantity == 0 {
		l.IsAvailable = false
	} else if op == StockAdd || op == StockSet {
		l.IsAvailable = true
	}
}
