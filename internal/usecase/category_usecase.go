package usecase

import (
	"context"

	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
)

// CategoryInput defines a category; on update nil pointer fields are left unchanged.
type CategoryInput struct {
	Name        *string
	Description *string
	Image       *string
	ParentID    *uuid.UUID
	// ClearParent moves the category to the root on update.
	ClearParent bool
	SortOrder   *int
	IsFeatured  *bool
	IsActive    *bool
}

// BrandInput defines a brand; on update nil pointer fields are left unchanged.
type BrandInput struct {
	Name        *string
	Description *string
	Logo        *string
	Website     *string
	IsFeatured  *bool
	IsActive    *bool
}

// CategoryUsecase manages the category tree.
type CategoryUsecase interface {
	CreateCategory(ctx context.Context, input *CategoryInput) (*entity.Category, error)
	GetCategory(ctx context.Context, idOrSlug string) (*entity.Category, error)
	// ListCategories returns a flat list, or root nodes with nested children when tree is set.
	ListCategories(ctx context.Context, activeOnly, tree bool) ([]*entity.Category, error)
	UpdateCategory(ctx context.Context, id uuid.UUID, input *CategoryInput) (*entity.Category, error)
	DeleteCategory(ctx context.Context, id uuid.UUID) error
}

// BrandUsecase manages brands.
type BrandUsecase interface {
	CreateBrand(ctx context.Context, input *BrandInput) (*entity.Brand, error)
	GetBrand(ctx context.Context, id uuid.UUID) (*entity.Brand, error)
	ListBrands(ctx context.Context, activeOnly bool) ([]*entity.Brand, error)
	UpdateBrand(ctx context.Context, id uuid.UUID, input *BrandInput) (*entity.Brand, error)
	DeleteBrand(ctx context.Context, id uuid.UUID) error
}
