package postgres

import (
	"context"
	"time"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type reviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository is the constructor for reviewRepository.
func NewReviewRepository(db *gorm.DB) repository.ReviewRepository {
	return &reviewRepository{db: db}
}

// Create persists a review. The (product, user) unique index turns a second review into ErrDuplicateReview.
func (repo *reviewRepository) Create(ctx context.Context, review *entity.Review) error {
	review.ID = newID(review.ID)
	reviewM := fromReviewDomain(review)

	if err := repo.db.WithContext(ctx).Select("*").Create(reviewM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateReview
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WithDetails("rating must be between 1 and 5")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create review")
	}

	review.CreatedAt = reviewM.CreatedAt
	review.UpdatedAt = reviewM.UpdatedAt

	return nil
}

// FindByID retrieves a review.
func (repo *reviewRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Review, error) {
	return repo.findOne(ctx, "id = ?", id)
}

// FindByProductAndUser retrieves the user's review of a product.
func (repo *reviewRepository) FindByProductAndUser(ctx context.Context, productID, userID uuid.UUID) (*entity.Review, error) {
	return repo.findOne(ctx, "product_id = ? AND user_id = ?", productID, userID)
}

func (repo *reviewRepository) findOne(ctx context.Context, query string, args ...any) (*entity.Review, error) {
	var reviewM model.ReviewModel

	if err := repo.db.WithContext(ctx).Where(query, args...).First(&reviewM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrReviewNotFound
		}

		return nil, errors.Wrap(err, "failed to find review")
	}

	return toReviewDomain(&reviewM), nil
}

// Update writes every mutable column, votes included.
func (repo *reviewRepository) Update(ctx context.Context, review *entity.Review) error {
	reviewM := fromReviewDomain(review)
	reviewM.UpdatedAt = time.Now()

	result := repo.db.WithContext(ctx).
		Model(&model.ReviewModel{}).
		Where("id = ?", review.ID).
		Select("*").Omit("id", "product_id", "user_id", "created_at").
		Updates(reviewM)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update review")
	}
	if result.RowsAffected == 0 {
		return repository.ErrReviewNotFound
	}

	review.UpdatedAt = reviewM.UpdatedAt

	return nil
}

// Delete removes a review.
func (repo *reviewRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.ReviewModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete review")
	}
	if result.RowsAffected == 0 {
		return repository.ErrReviewNotFound
	}

	return nil
}

// ListByProduct returns a page of a product's reviews, newest first.
func (repo *reviewRepository) ListByProduct(ctx context.Context, productID uuid.UUID, filter repository.ReviewFilter, page entity.Pagination) ([]*entity.Review, int64, error) {
	query := repo.db.WithContext(ctx).Model(&model.ReviewModel{}).Where("product_id = ?", productID)

	if filter.ApprovedOnly {
		query = query.Where("is_approved = ?", true)
	}
	if filter.Rating > 0 {
		query = query.Where("rating = ?", filter.Rating)
	}

	return repo.list(query, page)
}

// ListPending returns reviews awaiting moderation, oldest first.
func (repo *reviewRepository) ListPending(ctx context.Context, page entity.Pagination) ([]*entity.Review, int64, error) {
	query := repo.db.WithContext(ctx).Model(&model.ReviewModel{}).Where("is_approved = ?", false)

	return repo.list(query.Order("created_at ASC"), page)
}

func (repo *reviewRepository) list(query *gorm.DB, page entity.Pagination) ([]*entity.Review, int64, error) {
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count reviews")
	}

	var reviewModels []*model.ReviewModel
	if err := query.Scopes(paginate(page)).Order("created_at DESC").Find(&reviewModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list reviews")
	}

	reviews := make([]*entity.Review, 0, len(reviewModels))
	for _, reviewM := range reviewModels {
		reviews = append(reviews, toReviewDomain(reviewM))
	}

	return reviews, total, nil
}

// RatingSummary aggregates the approved reviews of a product.
func (repo *reviewRepository) RatingSummary(ctx context.Context, productID uuid.UUID) (entity.RatingSummary, error) {
	var row struct {
		Average float64
		Count   int
	}

	if err := repo.db.WithContext(ctx).
		Model(&model.ReviewModel{}).
		Select("COALESCE(AVG(rating), 0) AS average, COUNT(*) AS count").
		Where("product_id = ? AND is_approved = ?", productID, true).
		Scan(&row).Error; err != nil {
		return entity.RatingSummary{}, errors.Wrap(err, "failed to aggregate product rating")
	}

	return entity.RatingSummary{Average: row.Average, Count: row.Count}, nil
}

// Distribution counts approved reviews per star value. Every star from 1 to 5 is present.
func (repo *reviewRepository) Distribution(ctx context.Context, productID uuid.UUID) (entity.RatingDistribution, error) {
	var rows []struct {
		Rating int
		Count  int64
	}

	if err := repo.db.WithContext(ctx).
		Model(&model.ReviewModel{}).
		Select("rating, COUNT(*) AS count").
		Where("product_id = ? AND is_approved = ?", productID, true).
		Group("rating").
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to aggregate rating distribution")
	}

	dist := entity.RatingDistribution{1: 0, 2: 0, 3: 0, 4: 0, 5: 0}
	for _, row := range rows {
		dist[row.Rating] = row.Count
	}

	return dist, nil
}

// --- Mapper Functions ---

func toReviewDomain(data *model.ReviewModel) *entity.Review {
	review := &entity.Review{
		ID:                 data.ID,
		ProductID:          data.ProductID,
		UserID:             data.UserID,
		OrderID:            data.OrderID,
		Rating:             data.Rating,
		Title:              data.Title,
		Comment:            data.Comment,
		IsVerifiedPurchase: data.IsVerifiedPurchase,
		IsApproved:         data.IsApproved,
		ApprovedAt:         data.ApprovedAt,
		HelpfulCount:       data.HelpfulCount,
		NotHelpfulCount:    data.NotHelpfulCount,
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}

	for _, img := range data.Images {
		review.Images = append(review.Images, entity.ReviewImage{Key: img.Key, URL: img.URL})
	}
	for _, v := range data.Votes {
		review.Votes = append(review.Votes, entity.ReviewVote{UserID: v.UserID, Vote: entity.VoteType(v.Vote)})
	}
	if data.SellerRespondedAt != nil {
		review.SellerResponse = &entity.SellerResponse{Comment: data.SellerResponse, RespondedAt: *data.SellerRespondedAt}
	}

	return review
}

func fromReviewDomain(data *entity.Review) *model.ReviewModel {
	reviewM := &model.ReviewModel{
		ID:                 data.ID,
		ProductID:          data.ProductID,
		UserID:             data.UserID,
		OrderID:            data.OrderID,
		Rating:             data.Rating,
		Title:              data.Title,
		Comment:            data.Comment,
		Images:             make([]model.ReviewImageJSON, 0, len(data.Images)),
		IsVerifiedPurchase: data.IsVerifiedPurchase,
		IsApproved:         data.IsApproved,
		ApprovedAt:         data.ApprovedAt,
		HelpfulCount:       data.HelpfulCount,
		NotHelpfulCount:    data.NotHelpfulCount,
		Votes:              make([]model.VoteJSON, 0, len(data.Votes)),
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}

	for _, img := range data.Images {
		reviewM.Images = append(reviewM.Images, model.ReviewImageJSON{Key: img.Key, URL: img.URL})
	}
	for _, v := range data.Votes {
		reviewM.Votes = append(reviewM.Votes, model.VoteJSON{UserID: v.UserID, Vote: string(v.Vote)})
	}
	if data.SellerResponse != nil {
		respondedAt := data.SellerResponse.RespondedAt
		reviewM.SellerResponse = data.SellerResponse.Comment
		reviewM.SellerRespondedAt = &respondedAt
	}

	return reviewM
}
