package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// ImageJSON is one element of a product's image column.
type ImageJSON struct {
	Key       string `json:"key"`
	URL       string `json:"url"`
	IsPrimary bool   `json:"is_primary"`
}

// ProductModel mirrors the 'products' table. Stock is the single sellable counter.
type ProductModel struct {
	ID               uuid.UUID                      `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name             string                         `gorm:"type:varchar(200);not null"`
	Slug             string                         `gorm:"type:varchar(255);not null;unique"`
	Description      string                         `gorm:"type:text;not null"`
	ShortDescription string                         `gorm:"type:varchar(500)"`
	SellerID         uuid.UUID                      `gorm:"type:uuid;not null;index"`
	BrandID          *uuid.UUID                     `gorm:"type:uuid;index"`
	Brand            *BrandModel                    `gorm:"foreignKey:BrandID"`
	Categories       []*CategoryModel               `gorm:"many2many:product_categories;joinForeignKey:ProductID;joinReferences:CategoryID"`
	Price            decimal.Decimal                `gorm:"type:numeric(12,2);not null"`
	CompareAtPrice   *decimal.Decimal               `gorm:"type:numeric(12,2)"`
	Stock            int                            `gorm:"not null;default:0;check:chk_products_stock,stock >= 0"`
	SKU              string                         `gorm:"type:varchar(64);index"`
	Images           datatypes.JSONSlice[ImageJSON] `gorm:"type:jsonb"`
	Tags             datatypes.JSONSlice[string]    `gorm:"type:jsonb"`
	AverageRating    float64                        `gorm:"type:numeric(2,1);not null;default:0;index"`
	TotalReviews     int                            `gorm:"not null;default:0"`
	TotalSold        int                            `gorm:"not null;default:0"`
	Views            int                            `gorm:"not null;default:0"`
	IsFeatured       bool                           `gorm:"not null;default:false;index"`
	IsActive         bool                           `gorm:"not null;default:true;index"`
	CreatedAt        time.Time                      `gorm:"index"`
	UpdatedAt        time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}

// AttributeJSON is one element of a variant's attribute column.
type AttributeJSON struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// ProductVariantModel mirrors the 'product_variants' table.
type ProductVariantModel struct {
	ID            uuid.UUID                          `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ProductID     uuid.UUID                          `gorm:"type:uuid;not null;index"`
	SKU           string                             `gorm:"type:varchar(64);not null;unique"`
	Attributes    datatypes.JSONSlice[AttributeJSON] `gorm:"type:jsonb"`
	Price         decimal.Decimal                    `gorm:"type:numeric(12,2);not null"`
	StockQuantity int                                `gorm:"not null;default:0"`
	Weight        float64
	Barcode       string `gorm:"type:varchar(64)"`
	IsDefault     bool   `gorm:"not null;default:false"`
	IsActive      bool   `gorm:"not null;default:true"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductVariantModel) TableName() string {
	return "product_variants"
}

// ProductListingModel mirrors the 'product_listings' table.
type ProductListingModel struct {
	ID            uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ProductID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	VariantID     *uuid.UUID      `gorm:"type:uuid;index"`
	SellerID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	Price         decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	StockQuantity int             `gorm:"not null;default:0"`
	IsAvailable   bool            `gorm:"not null;default:true"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductListingModel) TableName() string {
	return "product_listings"
}

// CategoryModel mirrors the 'categories' table.
type CategoryModel struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name        string     `gorm:"type:varchar(100);not null"`
	Slug        string     `gorm:"type:varchar(120);not null;unique"`
	Description string     `gorm:"type:text"`
	Image       string     `gorm:"type:varchar(500)"`
	ParentID    *uuid.UUID `gorm:"type:uuid;index"`
	Level       int        `gorm:"not null;default:0"`
	SortOrder   int        `gorm:"not null;default:0"`
	IsFeatured  bool       `gorm:"not null;default:false"`
	IsActive    bool       `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (CategoryModel) TableName() string {
	return "categories"
}

// BrandModel mirrors the 'brands' table.
type BrandModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name        string    `gorm:"type:varchar(100);not null;unique"`
	Slug        string    `gorm:"type:varchar(120);not null;unique"`
	Description string    `gorm:"type:text"`
	Logo        string    `gorm:"type:varchar(500)"`
	Website     string    `gorm:"type:varchar(255)"`
	IsFeatured  bool      `gorm:"not null;default:false"`
	IsActive    bool      `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (BrandModel) TableName() string {
	return "brands"
}
