package entity

import (
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductImage is one stored image of a product.
type ProductImage struct {
	Key       string `json:"key"`
	URL       string `json:"url"`
	IsPrimary bool   `json:"is_primary"`
}

// Product is a catalog entry owned by a seller.
type Product struct {
	ID               uuid.UUID         `json:"id"`
	Name             string            `json:"name"`
	Slug             string            `json:"slug"`
	Description      string            `json:"description"`
	ShortDescription string            `json:"short_description,omitempty"`
	SellerID         uuid.UUID         `json:"seller_id"`
	BrandID          *uuid.UUID        `json:"brand_id,omitempty"`
	Brand            *Brand            `json:"brand,omitempty"`
	Categories       []*Category       `json:"categories,omitempty"`
	CategoryIDs      []uuid.UUID       `json:"category_ids"`
	Price            decimal.Decimal   `json:"price"`
	CompareAtPrice   *decimal.Decimal  `json:"compare_at_price,omitempty"`
	Stock            int               `json:"stock"`
	SKU              string            `json:"sku,omitempty"`
	Images           []ProductImage    `json:"images"`
	Tags             []string          `json:"tags,omitempty"`
	AverageRating    float64           `json:"average_rating"`
	TotalReviews     int               `json:"total_reviews"`
	TotalSold        int               `json:"total_sold"`
	Views            int               `json:"views"`
	IsFeatured       bool              `json:"is_featured"`
	IsActive         bool              `json:"is_active"`
	Variants         []*ProductVariant `json:"variants,omitempty"`
	CreatedAt        time.Time         `json:"created_at"`
	UpdatedAt        time.Time         `json:"updated_at"`
}

// IsPurchasable reports whether the product can currently be added to a cart.
func (p *Product) IsPurchasable() bool {
	return p.IsActive
}

// HasStock reports whether at least qty units are available.
func (p *Product) HasStock(qty int) bool {
	return p.Stock >= qty
}

// EnsurePrimaryImage marks the first image primary when none is, and clears
// extra primary flags so exactly one image is primary.
func (p *Product) EnsurePrimaryImage() {
	if len(p.Images) == 0 {
		return
	}

	primary := -1
	for i := range p.Images {
		if p.Images[i].IsPrimary && primary == -1 {
			primary = i

			continue
		}
		p.Images[i].IsPrimary = false
	}
	if primary == -1 {
		p.Images[0].IsPrimary = true
	}
}

// PrimaryImage returns the primary image URL or "".
func (p *Product) PrimaryImage() string {
	for _, img := range p.Images {
		if img.IsPrimary {
			return img.URL
		}
	}

	return ""
}

// RatingSummary is the aggregate of approved reviews for one product or seller.
type RatingSummary struct {
	Average float64
	Count   int
}

// RoundRating rounds a mean rating to one decimal place.
func RoundRating(mean float64) float64 {
	return math.Round(mean*10) / 10
}

// ProductFilter narrows a product listing.
type ProductFilter struct {
	Search     string
	CategoryID *uuid.UUID
	BrandID    *uuid.UUID
	SellerID   *uuid.UUID
	MinPrice   *decimal.Decimal
	MaxPrice   *decimal.Decimal
	MinRating  float64
	InStock    bool
	Featured   bool
	// IncludeInactive lists deactivated products too (seller dashboards).
	IncludeInactive bool
	Sort            string
}
