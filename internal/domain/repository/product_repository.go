package repository

import (
	"context"
	"errors"

	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for catalog persistence.
var (
	ErrProductNotFound  = errors.New("product not found")
	ErrVariantNotFound  = errors.New("variant not found")
	ErrListingNotFound  = errors.New("listing not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrBrandNotFound    = errors.New("brand not found")

	// ErrInsufficientStock is returned by a conditional stock decrement that matched no row.
	ErrInsufficientStock = errors.New("insufficient stock")
)

// ProductRepository persists products and owns the stock counter.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	FindBySlug(ctx context.Context, slug string) (*entity.Product, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id uuid.UUID) error

	// List applies the filter in SQL, including price bounds over variant prices, then paginates.
	List(ctx context.Context, filter entity.ProductFilter, page entity.Pagination) ([]*entity.Product, int64, error)

	// Related returns active products sharing a category with the product, excluding it.
	Related(ctx context.Context, productID uuid.UUID, limit int) ([]*entity.Product, error)

	// IncrementViews bumps the view counter without reading it first and
	// returns the new value.
	IncrementViews(ctx context.Context, id uuid.UUID) (int, error)

	// DecrementStock subtracts qty only when stock >= qty and adds qty to total sold.
	// Returns ErrInsufficientStock when the predicate fails.
	DecrementStock(ctx context.Context, id uuid.UUID, qty int) error

	// RestoreStock adds qty back and reverses the sold counter.
	RestoreStock(ctx context.Context, id uuid.UUID, qty int) error

	// UpdateRating stores the aggregate of approved reviews.
	UpdateRating(ctx context.Context, id uuid.UUID, summary entity.RatingSummary) error

	CountBySeller(ctx context.Context, sellerID uuid.UUID) (int64, error)
}

// VariantRepository persists product variants.
type VariantRepository interface {
	Create(ctx context.Context, variant *entity.ProductVariant) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.ProductVariant, error)
	ListByProduct(ctx context.Context, productID uuid.UUID) ([]*entity.ProductVariant, error)

	// ClearDefault unsets isDefault on every variant of the product.
	ClearDefault(ctx context.Context, productID uuid.UUID) error
}

// ListingRepository persists seller listings.
type ListingRepository interface {
	Create(ctx context.Context, listing *entity.ProductListing) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.ProductListing, error)
	ListByProduct(ctx context.Context, productID uuid.UUID) ([]*entity.ProductListing, error)
	Update(ctx context.Context, listing *entity.ProductListing) error
}

// CategoryRepository persists the category tree.
type CategoryRepository interface {
	Create(ctx context.Context, category *entity.Category) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error)
	FindBySlug(ctx context.Context, slug string) (*entity.Category, error)
	List(ctx context.Context, activeOnly bool) ([]*entity.Category, error)
	Update(ctx context.Context, category *entity.Category) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// BrandRepository persists brands.
type BrandRepository interface {
	Create(ctx context.Context, brand *entity.Brand) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Brand, error)
	List(ctx context.Context, activeOnly bool) ([]*entity.Brand, error)
	Update(ctx context.Context, brand *entity.Brand) error
	Delete(ctx context.Context, id uuid.UUID) error
}
