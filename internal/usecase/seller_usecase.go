package usecase

import (
	"context"

	"marketplace/internal/domain/entity"
	"marketplace/internal/domain/repository"

	"github.com/google/uuid"
)

// SellerProfileInput carries seller application and profile data.
// On update nil pointer fields are left unchanged.
type SellerProfileInput struct {
	BusinessName    *string
	BusinessEmail   *string
	BusinessPhone   *string
	Description     *string
	Logo            *string
	TaxID           *string
	BusinessLicense *string
	BusinessAddress *entity.BusinessAddress
}

// RegisterSellerInput files a seller application. An authenticated caller
// passes UserID; otherwise Account creates a new customer first.
type RegisterSellerInput struct {
	UserID  *uuid.UUID
	Account *RegisterInput
	Profile SellerProfileInput
}

// CreateSellerReviewInput defines customer feedback about a seller.
type CreateSellerReviewInput struct {
	OrderID *uuid.UUID
	Rating  int
	Comment string
}

// SellerUsecase defines seller onboarding and moderation.
type SellerUsecase interface {
	// RegisterSeller files a pending application. The user keeps the customer role until approval.
	RegisterSeller(ctx context.Context, input *RegisterSellerInput) (*entity.Seller, error)
	GetProfile(ctx context.Context, userID uuid.UUID) (*entity.Seller, error)
	GetSeller(ctx context.Context, sellerID uuid.UUID) (*entity.Seller, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, input *SellerProfileInput) (*entity.Seller, error)
	Stats(ctx context.Context, userID uuid.UUID) (*entity.SellerStats, error)
	ListSellers(ctx context.Context, filter repository.SellerFilter, page entity.Pagination) (*entity.Page[*entity.Seller], error)
	// ApproveSeller verifies the profile and grants the seller role.
	ApproveSeller(ctx context.Context, sellerID uuid.UUID) (*entity.Seller, error)
	RejectSeller(ctx context.Context, sellerID uuid.UUID, reason string) (*entity.Seller, error)
	SuspendSeller(ctx context.Context, sellerID uuid.UUID, reason string) (*entity.Seller, error)
	CreateSellerReview(ctx context.Context, userID, sellerID uuid.UUID, input *CreateSellerReviewInput) (*entity.SellerReview, error)
	// ApproveSellerReview publishes the review and refreshes the seller rating.
	ApproveSellerReview(ctx context.Context, reviewID uuid.UUID) (*entity.SellerReview, error)
}
