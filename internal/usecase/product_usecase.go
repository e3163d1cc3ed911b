package usecase

import (
	"context"

	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateProductInput defines a new catalog entry.
type CreateProductInput struct {
	Name             string
	Description      string
	ShortDescription string
	// SellerID is honoured for admins only; sellers always create under their own profile.
	SellerID       *uuid.UUID
	BrandID        *uuid.UUID
	CategoryIDs    []uuid.UUID
	Price          decimal.Decimal
	CompareAtPrice *decimal.Decimal
	Stock          int
	SKU            string
	Tags           []string
	Images         []entity.ProductImage
	IsFeatured     bool
}

// UpdateProductInput holds the editable fields; nil leaves a field unchanged.
type UpdateProductInput struct {
	Name             *string
	Description      *string
	ShortDescription *string
	BrandID          *uuid.UUID
	CategoryIDs      []uuid.UUID
	Price            *decimal.Decimal
	CompareAtPrice   *decimal.Decimal
	Stock            *int
	SKU              *string
	Tags             []string
	Images           []entity.ProductImage
	IsFeatured       *bool
}

// CreateVariantInput defines a SKU-level child of a product.
type CreateVariantInput struct {
	SKU           string
	Attributes    []entity.VariantAttribute
	Price         decimal.Decimal
	StockQuantity int
	Weight        float64
	Barcode       string
	IsDefault     bool
}

// CreateListingInput defines a seller offer of a product or one of its variants.
type CreateListingInput struct {
	VariantID     *uuid.UUID
	Price         decimal.Decimal
	StockQuantity int
}

// ProductUsecase defines catalog operations on products, variants and listings.
type ProductUsecase interface {
	CreateProduct(ctx context.Context, actor Actor, input *CreateProductInput) (*entity.Product, error)
	// GetProduct resolves an id or a slug and bumps the view counter best-effort.
	GetProduct(ctx context.Context, idOrSlug string) (*entity.Product, error)
	ListProducts(ctx context.Context, filter entity.ProductFilter, page entity.Pagination) (*entity.Page[*entity.Product], error)
	SearchProducts(ctx context.Context, text string, page entity.Pagination) (*entity.Page[*entity.Product], error)
	FeaturedProducts(ctx context.Context, limit int) ([]*entity.Product, error)
	RelatedProducts(ctx context.Context, productID uuid.UUID, limit int) ([]*entity.Product, error)
	// MyProducts lists the caller's own products including inactive ones.
	MyProducts(ctx context.Context, actor Actor, page entity.Pagination) (*entity.Page[*entity.Product], error)
	UpdateProduct(ctx context.Context, actor Actor, productID uuid.UUID, input *UpdateProductInput) (*entity.Product, error)
	// ToggleActive sets isActive to active, or flips it when active is nil.
	ToggleActive(ctx context.Context, actor Actor, productID uuid.UUID, active *bool) (*entity.Product, error)
	DeleteProduct(ctx context.Context, actor Actor, productID uuid.UUID) error
	CreateVariant(ctx context.Context, actor Actor, productID uuid.UUID, input *CreateVariantInput) (*entity.ProductVariant, error)
	// UploadImages appends images; the first image of a product without images becomes primary.
	UploadImages(ctx context.Context, actor Actor, productID uuid.UUID, files []*FileUpload) (*entity.Product, error)
	CreateListing(ctx context.Context, actor Actor, productID uuid.UUID, input *CreateListingInput) (*entity.ProductListing, error)
	UpdateListingStock(ctx context.Context, actor Actor, listingID uuid.UUID, quantity int, op entity.StockOperation) (*entity.ProductListing, error)
}
