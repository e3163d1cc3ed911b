package repository

import (
	"context"
	"errors"

	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for seller persistence.
var (
	ErrSellerNotFound       = errors.New("seller not found")
	ErrSellerReviewNotFound = errors.New("seller review not found")
)

// SellerFilter narrows the admin seller listing.
type SellerFilter struct {
	Status     entity.SellerStatus
	IsVerified *bool
}

// SellerRepository persists seller profiles and seller reviews.
type SellerRepository interface {
	Create(ctx context.Context, seller *entity.Seller) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Seller, error)

	// FindByUserID returns ErrSellerNotFound when the user never applied.
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Seller, error)
	Update(ctx context.Context, seller *entity.Seller) error
	List(ctx context.Context, filter SellerFilter, page entity.Pagination) ([]*entity.Seller, int64, error)

	CreateReview(ctx context.Context, review *entity.SellerReview) error
	FindReviewByID(ctx context.Context, id uuid.UUID) (*entity.SellerReview, error)
	UpdateReview(ctx context.Context, review *entity.SellerReview) error

	// RatingSummary aggregates the approved reviews of a seller.
	RatingSummary(ctx context.Context, sellerID uuid.UUID) (entity.RatingSummary, error)

	// UpdateRating stores the seller's aggregate rating.
	UpdateRating(ctx context.Context, sellerID uuid.UUID, summary entity.RatingSummary) error
}
