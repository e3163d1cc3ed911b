package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "marketplace/internal/delivery/context"
	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/domain/service"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const reviewImageFolder = "reviews"

// reviewService implements the ReviewUsecase interface.
type reviewService struct {
	txManager   repository.TransactionManager
	reviewRepo  repository.ReviewRepository
	productRepo repository.ProductRepository
	orderRepo   repository.OrderRepository
	sellerRepo  repository.SellerRepository
	storage     service.ImageStorage
	cache       service.ProductCache
	logger      *slog.Logger
	clock       clock
}

// ReviewServiceParams holds dependencies for ReviewService, injected by Fx.
type ReviewServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	ReviewRepo  repository.ReviewRepository
	ProductRepo repository.ProductRepository
	OrderRepo   repository.OrderRepository
	SellerRepo  repository.SellerRepository
	Storage     service.ImageStorage
	Cache       service.ProductCache
	Logger      *slog.Logger
}

// NewReviewService is the constructor for reviewService.
func NewReviewService(params ReviewServiceParams) usecase.ReviewUsecase {
	return &reviewService{
		txManager:   params.TxManager,
		reviewRepo:  params.ReviewRepo,
		productRepo: params.ProductRepo,
		orderRepo:   params.OrderRepo,
		sellerRepo:  params.SellerRepo,
		storage:     params.Storage,
		cache:       params.Cache,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *reviewService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.LoggerOr(ctx, srv.logger)
}

func validateRating(rating int) error {
	if rating < 1 || rating > 5 {
		return errors.Wrap(domainerrors.ErrValidationFailed.WithMessage("Rating must be between 1 and 5"), "invalid rating")
	}

	return nil
}

// refreshProductRating recomputes the product aggregate from approved reviews.
func refreshProductRating(ctx context.Context, repoFactory repository.RepositoryFactory, productID uuid.UUID) error {
	summary, err := repoFactory.NewReviewRepository().RatingSummary(ctx, productID)
	if err != nil {
		return errors.Wrap(err, "failed to aggregate ratings")
	}
	summary.Average = entity.RoundRating(summary.Average)

	if err := repoFactory.NewProductRepository().UpdateRating(ctx, productID, summary); err != nil {
		return translate(err, "failed to update product rating")
	}

	return nil
}

// CreateReview stores a pending review, flagged verified when the user received the product.
func (srv *reviewService) CreateReview(ctx context.Context, userID uuid.UUID, input *usecase.CreateReviewInput) (*entity.Review, error) {
	if err := validateRating(input.Rating); err != nil {
		return nil, err
	}

	if _, err := srv.productRepo.FindByID(ctx, input.ProductID); err != nil {
		return nil, translate(err, "failed to find product")
	}

	_, err := srv.reviewRepo.FindByProductAndUser(ctx, input.ProductID, userID)
	if err == nil {
		return nil, errors.Wrap(domainerrors.ErrDuplicateReview, "create review")
	}
	if !errors.Is(err, repository.ErrReviewNotFound) {
		return nil, errors.Wrap(err, "failed to check existing review")
	}

	now := srv.clock.now()
	review := &entity.Review{
		ID:        uuid.New(),
		ProductID: input.ProductID,
		UserID:    userID,
		Rating:    input.Rating,
		Title:     strings.TrimSpace(input.Title),
		Comment:   strings.TrimSpace(input.Comment),
		CreatedAt: now,
		UpdatedAt: now,
	}

	orderID, err := srv.orderRepo.FindDeliveredWithProduct(ctx, userID, input.ProductID)
	switch {
	case err == nil:
		review.OrderID = &orderID
		review.IsVerifiedPurchase = true
	case !errors.Is(err, repository.ErrOrderNotFound):
		return nil, errors.Wrap(err, "failed to check purchase")
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewReviewRepository().Create(ctx, review); err != nil {
			// Covers a concurrent create slipping past the check above.
			return translate(err, "failed to create review")
		}

		return refreshProductRating(ctx, repoFactory, review.ProductID)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute create review transaction")
	}
	invalidateProducts(ctx, srv.cache, srv.log(ctx), review.ProductID)
	srv.log(ctx).Debug("Review created", slog.Any("reviewID", review.ID), slog.Bool("verified", review.IsVerifiedPurchase))

	return review, nil
}

// UpdateReview edits the author's review and sends it back to moderation.
func (srv *reviewService) UpdateReview(ctx context.Context, userID, reviewID uuid.UUID, input *usecase.UpdateReviewInput) (*entity.Review, error) {
	if input.Rating != nil {
		if err := validateRating(*input.Rating); err != nil {
			return nil, err
		}
	}

	var review *entity.Review
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		reviewRepo := repoFactory.NewReviewRepository()

		var err error
		review, err = reviewRepo.FindByID(ctx, reviewID)
		if err != nil {
			return translate(err, "failed to find review")
		}
		if review.UserID != userID {
			return errors.Wrap(domainerrors.ErrForbidden.WithMessage("Not authorized to update this review"), "update review")
		}

		if input.Rating != nil {
			review.Rating = *input.Rating
		}
		if input.Title != nil {
			review.Title = strings.TrimSpace(*input.Title)
		}
		if input.Comment != nil {
			review.Comment = strings.TrimSpace(*input.Comment)
		}
		review.ResetApproval()
		review.UpdatedAt = srv.clock.now()

		if err := reviewRepo.Update(ctx, review); err != nil {
			return errors.Wrap(err, "failed to update review")
		}

		return refreshProductRating(ctx, repoFactory, review.ProductID)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute update review transaction")
	}
	invalidateProducts(ctx, srv.cache, srv.log(ctx), review.ProductID)

	return review, nil
}

// DeleteReview removes a review; the author or an admin may do so.
func (srv *reviewService) DeleteReview(ctx context.Context, actor usecase.Actor, reviewID uuid.UUID) error {
	var review *entity.Review
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		reviewRepo := repoFactory.NewReviewRepository()

		var err error
		review, err = reviewRepo.FindByID(ctx, reviewID)
		if err != nil {
			return translate(err, "failed to find review")
		}
		if review.UserID != actor.UserID && !actor.IsAdmin() {
			return errors.Wrap(domainerrors.ErrForbidden.WithMessage("Not authorized to delete this review"), "delete review")
		}

		if err := reviewRepo.Delete(ctx, reviewID); err != nil {
			return translate(err, "failed to delete review")
		}

		return refreshProductRating(ctx, repoFactory, review.ProductID)
	})
	if err != nil {
		return errors.Wrap(err, "failed to execute delete review transaction")
	}
	invalidateProducts(ctx, srv.cache, srv.log(ctx), review.ProductID)

	for _, img := range review.Images {
		if err := srv.storage.Delete(ctx, img.Key); err != nil {
			srv.log(ctx).Warn("Failed to delete review image", slog.String("key", img.Key), slog.Any("error", err))
		}
	}

	return nil
}

// ApproveReview publishes a review and refreshes the product rating.
func (srv *reviewService) ApproveReview(ctx context.Context, reviewID uuid.UUID) (*entity.Review, error) {
	var review *entity.Review
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		reviewRepo := repoFactory.NewReviewRepository()

		var err error
		review, err = reviewRepo.FindByID(ctx, reviewID)
		if err != nil {
			return translate(err, "failed to find review")
		}

		now := srv.clock.now()
		review.Approve(now)
		review.UpdatedAt = now
		if err := reviewRepo.Update(ctx, review); err != nil {
			return errors.Wrap(err, "failed to approve review")
		}

		return refreshProductRating(ctx, repoFactory, review.ProductID)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute approve review transaction")
	}
	invalidateProducts(ctx, srv.cache, srv.log(ctx), review.ProductID)
	srv.log(ctx).Info("Review approved", slog.Any("reviewID", reviewID))

	return review, nil
}

// VoteReview records the user's helpfulness vote, replacing any earlier one.
func (srv *reviewService) VoteReview(ctx context.Context, userID, reviewID uuid.UUID, vote entity.VoteType) (*entity.Review, error) {
	if !vote.IsValid() {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed.WithMessage("Vote must be helpful or not_helpful"), string(vote))
	}

	var review *entity.Review
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		reviewRepo := repoFactory.NewReviewRepository()

		var err error
		review, err = reviewRepo.FindByID(ctx, reviewID)
		if err != nil {
			return translate(err, "failed to find review")
		}

		review.ApplyVote(userID, vote)

		return errors.Wrap(reviewRepo.Update(ctx, review), "failed to save vote")
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute vote transaction")
	}

	return review, nil
}

// RespondToReview stores the reply of the seller owning the reviewed product.
func (srv *reviewService) RespondToReview(ctx context.Context, actor usecase.Actor, reviewID uuid.UUID, comment string) (*entity.Review, error) {
	comment = strings.TrimSpace(comment)
	if comment == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed.WithMessage("Response comment is required"), "respond to review")
	}

	review, err := srv.reviewRepo.FindByID(ctx, reviewID)
	if err != nil {
		return nil, translate(err, "failed to find review")
	}

	product, err := srv.productRepo.FindByID(ctx, review.ProductID)
	if err != nil {
		return nil, translate(err, "failed to find product")
	}
	if err := authorizeSellerResource(ctx, srv.sellerRepo, actor, product.SellerID); err != nil {
		return nil, err
	}

	now := srv.clock.now()
	review.Respond(comment, now)
	review.UpdatedAt = now
	if err := srv.reviewRepo.Update(ctx, review); err != nil {
		return nil, errors.Wrap(err, "failed to save seller response")
	}

	return review, nil
}

// AddReviewImages uploads images and attaches them to the author's review.
func (srv *reviewService) AddReviewImages(ctx context.Context, userID, reviewID uuid.UUID, files []*usecase.FileUpload) (*entity.Review, error) {
	if len(files) == 0 {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed.WithMessage("At least one image is required"), "add review images")
	}

	review, err := srv.reviewRepo.FindByID(ctx, reviewID)
	if err != nil {
		return nil, translate(err, "failed to find review")
	}
	if review.UserID != userID {
		return nil, errors.Wrap(domainerrors.ErrForbidden.WithMessage("Not authorized to update this review"), "add review images")
	}

	stored, err := uploadAll(ctx, srv.storage, srv.log(ctx), reviewImageFolder+"/"+reviewID.String(), files)
	if err != nil {
		return nil, err
	}

	for _, obj := range stored {
		review.Images = append(review.Images, entity.ReviewImage{Key: obj.Key, URL: obj.URL})
	}
	review.UpdatedAt = srv.clock.now()

	if err := srv.reviewRepo.Update(ctx, review); err != nil {
		for _, obj := range stored {
			if delErr := srv.storage.Delete(ctx, obj.Key); delErr != nil {
				srv.log(ctx).Warn("Failed to remove orphaned review image", slog.String("key", obj.Key), slog.Any("error", delErr))
			}
		}

		return nil, errors.Wrap(err, "failed to save review images")
	}

	return review, nil
}

// ListProductReviews returns approved reviews with the star distribution.
func (srv *reviewService) ListProductReviews(ctx context.Context, productID uuid.UUID, filter repository.ReviewFilter, page entity.Pagination) (*usecase.ProductReviews, error) {
	filter.ApprovedOnly = true

	reviews, total, err := srv.reviewRepo.ListByProduct(ctx, productID, filter, page)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list reviews")
	}

	distribution, err := srv.reviewRepo.Distribution(ctx, productID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load rating distribution")
	}

	return &usecase.ProductReviews{
		Page:         entity.NewPage(reviews, total, page),
		Distribution: distribution,
	}, nil
}

// ListPendingReviews returns reviews awaiting moderation.
func (srv *reviewService) ListPendingReviews(ctx context.Context, page entity.Pagination) (*entity.Page[*entity.Review], error) {
	reviews, total, err := srv.reviewRepo.ListPending(ctx, page)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list pending reviews")
	}

	return entity.NewPage(reviews, total, page), nil
}
