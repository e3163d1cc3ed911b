package usecase

import (
	"context"

	"marketplace/internal/domain/entity"
	"marketplace/internal/domain/repository"

	"github.com/google/uuid"
)

// CreateReviewInput defines a new product review.
type CreateReviewInput struct {
	ProductID uuid.UUID
	Rating    int
	Title     string
	Comment   string
}

// UpdateReviewInput holds the editable review fields; nil leaves a field unchanged.
type UpdateReviewInput struct {
	Rating  *int
	Title   *string
	Comment *string
}

// ProductReviews is one page of approved reviews with the star distribution.
type ProductReviews struct {
	*entity.Page[*entity.Review]
	Distribution entity.RatingDistribution `json:"distribution"`
}

// ReviewUsecase defines product review, moderation and voting operations.
type ReviewUsecase interface {
	// CreateReview fails with a conflict when the user already reviewed the product.
	CreateReview(ctx context.Context, userID uuid.UUID, input *CreateReviewInput) (*entity.Review, error)
	// UpdateReview resets approval so the edited review is moderated again.
	UpdateReview(ctx context.Context, userID, reviewID uuid.UUID, input *UpdateReviewInput) (*entity.Review, error)
	DeleteReview(ctx context.Context, actor Actor, reviewID uuid.UUID) error
	ApproveReview(ctx context.Context, reviewID uuid.UUID) (*entity.Review, error)
	VoteReview(ctx context.Context, userID, reviewID uuid.UUID, vote entity.VoteType) (*entity.Review, error)
	// RespondToReview lets the seller owning the product reply.
	RespondToReview(ctx context.Context, actor Actor, reviewID uuid.UUID, comment string) (*entity.Review, error)
	AddReviewImages(ctx context.Context, userID, reviewID uuid.UUID, files []*FileUpload) (*entity.Review, error)
	ListProductReviews(ctx context.Context, productID uuid.UUID, filter repository.ReviewFilter, page entity.Pagination) (*ProductReviews, error)
	ListPendingReviews(ctx context.Context, page entity.Pagination) (*entity.Page[*entity.Review], error)
}
