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

type sellerRepository struct {
	db *gorm.DB
}

// NewSellerRepository is the constructor for sellerRepository.
func NewSellerRepository(db *gorm.DB) repository.SellerRepository {
	return &sellerRepository{db: db}
}

// Create persists a seller application.
func (repo *sellerRepository) Create(ctx context.Context, seller *entity.Seller) error {
	seller.ID = newID(seller.ID)
	sellerM := fromSellerDomain(seller)

	if err := repo.db.WithContext(ctx).Create(sellerM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			column := conflictingColumn(err, "sellers", "user_id")
			if column == "user_id" {
				return domainerrors.ErrSellerAlreadyExists
			}

			return domainerrors.ConflictError(fieldLabel(column))
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("invalid user reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create seller")
	}

	seller.CreatedAt = sellerM.CreatedAt
	seller.UpdatedAt = sellerM.UpdatedAt

	return nil
}

// FindByID retrieves a seller profile by id.
func (repo *sellerRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Seller, error) {
	return repo.findOne(ctx, "id = ?", id)
}

// FindByUserID retrieves the seller profile owned by a user.
func (repo *sellerRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Seller, error) {
	return repo.findOne(ctx, "user_id = ?", userID)
}

func (repo *sellerRepository) findOne(ctx context.Context, query string, args ...any) (*entity.Seller, error) {
	var sellerM model.SellerModel

	if err := repo.db.WithContext(ctx).Where(query, args...).First(&sellerM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSellerNotFound
		}

		return nil, errors.Wrap(err, "failed to find seller")
	}

	return toSellerDomain(&sellerM), nil
}

// Update saves every mutable column of the profile.
func (repo *sellerRepository) Update(ctx context.Context, seller *entity.Seller) error {
	sellerM := fromSellerDomain(seller)
	sellerM.UpdatedAt = time.Now()

	result := repo.db.WithContext(ctx).
		Model(&model.SellerModel{}).
		Where("id = ?", seller.ID).
		Select("*").Omit("id", "user_id", "created_at").
		Updates(sellerM)
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return domainerrors.ConflictError(fieldLabel(conflictingColumn(result.Error, "sellers", "tax_id")))
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update seller")
	}
	if result.RowsAffected == 0 {
		return repository.ErrSellerNotFound
	}

	seller.UpdatedAt = sellerM.UpdatedAt

	return nil
}

// List returns a page of sellers, newest first.
func (repo *sellerRepository) List(ctx context.Context, filter repository.SellerFilter, page entity.Pagination) ([]*entity.Seller, int64, error) {
	query := repo.db.WithContext(ctx).Model(&model.SellerModel{})

	if filter.Status != "" {
		query = query.Where("status = ?", string(filter.Status))
	}
	if filter.IsVerified != nil {
		query = query.Where("is_verified = ?", *filter.IsVerified)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count sellers")
	}

	var sellerModels []*model.SellerModel
	if err := query.Scopes(paginate(page)).Order("created_at DESC").Find(&sellerModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list sellers")
	}

	sellers := make([]*entity.Seller, 0, len(sellerModels))
	for _, sellerM := range sellerModels {
		sellers = append(sellers, toSellerDomain(sellerM))
	}

	return sellers, total, nil
}

// CreateReview persists a review of a seller.
func (repo *sellerRepository) CreateReview(ctx context.Context, review *entity.SellerReview) error {
	review.ID = newID(review.ID)
	reviewM := fromSellerReviewDomain(review)

	if err := repo.db.WithContext(ctx).Create(reviewM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrSellerNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create seller review")
	}

	review.CreatedAt = reviewM.CreatedAt
	review.UpdatedAt = reviewM.UpdatedAt

	return nil
}

// FindReviewByID retrieves a seller review.
func (repo *sellerRepository) FindReviewByID(ctx context.Context, id uuid.UUID) (*entity.SellerReview, error) {
	var reviewM model.SellerReviewModel

	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&reviewM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSellerReviewNotFound
		}

		return nil, errors.Wrap(err, "failed to find seller review")
	}

	return toSellerReviewDomain(&reviewM), nil
}

// UpdateReview saves the mutable columns of a seller review.
func (repo *sellerRepository) UpdateReview(ctx context.Context, review *entity.SellerReview) error {
	result := repo.db.WithContext(ctx).
		Model(&model.SellerReviewModel{}).
		Where("id = ?", review.ID).
		Updates(map[string]any{
			"rating":      review.Rating,
			"comment":     review.Comment,
			"is_approved": review.IsApproved,
			"approved_at": review.ApprovedAt,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update seller review")
	}
	if result.RowsAffected == 0 {
		return repository.ErrSellerReviewNotFound
	}

	return nil
}

// RatingSummary aggregates the approved reviews of a seller.
func (repo *sellerRepository) RatingSummary(ctx context.Context, sellerID uuid.UUID) (entity.RatingSummary, error) {
	var row struct {
		Average float64
		Count   int
	}

	if err := repo.db.WithContext(ctx).
		Model(&model.SellerReviewModel{}).
		Select("COALESCE(AVG(rating), 0) AS average, COUNT(*) AS count").
		Where("seller_id = ? AND is_approved = ?", sellerID, true).
		Scan(&row).Error; err != nil {
		return entity.RatingSummary{}, errors.Wrap(err, "failed to aggregate seller rating")
	}

	return entity.RatingSummary{Average: row.Average, Count: row.Count}, nil
}

// UpdateRating stores the seller's aggregate rating.
func (repo *sellerRepository) UpdateRating(ctx context.Context, sellerID uuid.UUID, summary entity.RatingSummary) error {
	if err := repo.db.WithContext(ctx).
		Model(&model.SellerModel{}).
		Where("id = ?", sellerID).
		Updates(map[string]any{
			"rating_average": entity.RoundRating(summary.Average),
			"total_reviews":  summary.Count,
		}).Error; err != nil {
		return errors.Wrap(err, "failed to update seller rating")
	}

	return nil
}

// --- Mapper Functions ---

func toSellerDomain(data *model.SellerModel) *entity.Seller {
	if data == nil {
		return nil
	}

	return &entity.Seller{
		ID:              data.ID,
		UserID:          data.UserID,
		BusinessName:    data.BusinessName,
		BusinessEmail:   data.BusinessEmail,
		BusinessPhone:   data.BusinessPhone,
		Description:     data.Description,
		Logo:            data.Logo,
		TaxID:           data.TaxID,
		BusinessLicense: data.BusinessLicense,
		BusinessAddress: entity.BusinessAddress{
			AddressLine1: data.AddressLine1,
			AddressLine2: data.AddressLine2,
			City:         data.City,
			State:        data.State,
			Country:      data.Country,
			ZipCode:      data.ZipCode,
		},
		Status:          entity.SellerStatus(data.Status),
		IsVerified:      data.IsVerified,
		VerifiedAt:      data.VerifiedAt,
		RejectionReason: data.RejectionReason,
		RatingAverage:   data.RatingAverage,
		TotalReviews:    data.TotalReviews,
		CommissionRate:  data.CommissionRate,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

func fromSellerDomain(data *entity.Seller) *model.SellerModel {
	if data == nil {
		return nil
	}

	status := data.Status
	if status == "" {
		status = entity.SellerStatusPending
	}

	return &model.SellerModel{
		ID:              data.ID,
		UserID:          data.UserID,
		BusinessName:    data.BusinessName,
		BusinessEmail:   data.BusinessEmail,
		BusinessPhone:   data.BusinessPhone,
		Description:     data.Description,
		Logo:            data.Logo,
		TaxID:           data.TaxID,
		BusinessLicense: data.BusinessLicense,
		AddressLine1:    data.BusinessAddress.AddressLine1,
		AddressLine2:    data.BusinessAddress.AddressLine2,
		City:            data.BusinessAddress.City,
		State:           data.BusinessAddress.State,
		Country:         data.BusinessAddress.Country,
		ZipCode:         data.BusinessAddress.ZipCode,
		Status:          string(status),
		IsVerified:      data.IsVerified,
		VerifiedAt:      data.VerifiedAt,
		RejectionReason: data.RejectionReason,
		RatingAverage:   data.RatingAverage,
		TotalReviews:    data.TotalReviews,
		CommissionRate:  data.CommissionRate,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

func toSellerReviewDomain(data *model.SellerReviewModel) *entity.SellerReview {
	return &entity.SellerReview{
		ID:         data.ID,
		SellerID:   data.SellerID,
		UserID:     data.UserID,
		OrderID:    data.OrderID,
		Rating:     data.Rating,
		Comment:    data.Comment,
		IsApproved: data.IsApproved,
		ApprovedAt: data.ApprovedAt,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}

func fromSellerReviewDomain(data *entity.SellerReview) *model.SellerReviewModel {
	return &model.SellerReviewModel{
		ID:         data.ID,
		SellerID:   data.SellerID,
		UserID:     data.UserID,
		OrderID:    data.OrderID,
		Rating:     data.Rating,
		Comment:    data.Comment,
		IsApproved: data.IsApproved,
		ApprovedAt: data.ApprovedAt,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}
