package repository

import (
	"context"
	"errors"

	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for review persistence.
var (
	ErrReviewNotFound = errors.New("review not found")
	// ErrDuplicateReview is returned when the (product, user) uniqueness constraint fails.
	ErrDuplicateReview = errors.New("review already exists for product and user")
)

// ReviewFilter narrows a product's review listing.
type ReviewFilter struct {
	Rating       int
	ApprovedOnly bool
}

// ReviewRepository persists product reviews with their votes.
type ReviewRepository interface {
	Create(ctx context.Context, review *entity.Review) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Review, error)
	FindByProductAndUser(ctx context.Context, productID, userID uuid.UUID) (*entity.Review, error)

	// Update writes the review fields and replaces its votes.
	Update(ctx context.Context, review *entity.Review) error
	Delete(ctx context.Context, id uuid.UUID) error

	ListByProduct(ctx context.Context, productID uuid.UUID, filter ReviewFilter, page entity.Pagination) ([]*entity.Review, int64, error)
	ListPending(ctx context.Context, page entity.Pagination) ([]*entity.Review, int64, error)

	// RatingSummary aggregates approved reviews of the product.
	RatingSummary(ctx context.Context, productID uuid.UUID) (entity.RatingSummary, error)

	// Distribution counts approved reviews per star value.
	Distribution(ctx context.Context, productID uuid.UUID) (entity.RatingDistribution, error)
}
