package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "marketplace/internal/delivery/context"
	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// sellerService implements the SellerUsecase interface.
type sellerService struct {
	txManager   repository.TransactionManager
	sellerRepo  repository.SellerRepository
	userRepo    repository.UserRepository
	productRepo repository.ProductRepository
	orderRepo   repository.OrderRepository
	auth        usecase.AuthUsecase
	logger      *slog.Logger
	clock       clock
}

// SellerServiceParams holds dependencies for SellerService, injected by Fx.
type SellerServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	SellerRepo  repository.SellerRepository
	UserRepo    repository.UserRepository
	ProductRepo repository.ProductRepository
	OrderRepo   repository.OrderRepository
	Auth        usecase.AuthUsecase
	Logger      *slog.Logger
}

// NewSellerService is the constructor for sellerService.
func NewSellerService(params SellerServiceParams) usecase.SellerUsecase {
	return &sellerService{
		txManager:   params.TxManager,
		sellerRepo:  params.SellerRepo,
		userRepo:    params.UserRepo,
		productRepo: params.ProductRepo,
		orderRepo:   params.OrderRepo,
		auth:        params.Auth,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *sellerService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.LoggerOr(ctx, srv.logger)
}

func applySellerProfile(seller *entity.Seller, input *usecase.SellerProfileInput) {
	if input.BusinessName != nil {
		seller.BusinessName = strings.TrimSpace(*input.BusinessName)
	}
	if input.BusinessEmail != nil {
		seller.BusinessEmail = normalizeEmail(*input.BusinessEmail)
	}
	if input.BusinessPhone != nil {
		seller.BusinessPhone = *input.BusinessPhone
	}
	if input.Description != nil {
		seller.Description = *input.Description
	}
	if input.Logo != nil {
		seller.Logo = *input.Logo
	}
	if input.TaxID != nil {
		seller.TaxID = strings.TrimSpace(*input.TaxID)
	}
	if input.BusinessLicense != nil {
		seller.BusinessLicense = *input.BusinessLicense
	}
	if input.BusinessAddress != nil {
		seller.BusinessAddress = *input.BusinessAddress
	}
}

func validateSellerProfile(seller *entity.Seller) error {
	var missing []string
	if seller.BusinessName == "" {
		missing = append(missing, "business_name")
	}
	if seller.BusinessEmail == "" {
		missing = append(missing, "business_email")
	}
	if seller.TaxID == "" {
		missing = append(missing, "tax_id")
	}
	if len(missing) > 0 {
		return errors.Wrap(
			domainerrors.ErrValidationFailed.WithMessage("Missing required seller fields").WithDetails(strings.Join(missing, ", ")),
			"invalid seller profile",
		)
	}

	return nil
}

// RegisterSeller files a pending application for an existing user or a freshly created account.
func (srv *sellerService) RegisterSeller(ctx context.Context, input *usecase.RegisterSellerInput) (*entity.Seller, error) {
	now := srv.clock.now()
	seller := &entity.Seller{
		ID:        uuid.New(),
		Status:    entity.SellerStatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
	applySellerProfile(seller, &input.Profile)
	if err := validateSellerProfile(seller); err != nil {
		return nil, err
	}

	switch {
	case input.UserID != nil:
		if _, err := srv.userRepo.FindByID(ctx, *input.UserID); err != nil {
			return nil, translate(err, "failed to find user")
		}
		seller.UserID = *input.UserID
	case input.Account != nil:
		output, err := srv.auth.Register(ctx, input.Account)
		if err != nil {
			return nil, errors.Wrap(err, "failed to create seller account")
		}
		seller.UserID = output.User.ID
	default:
		return nil, errors.Wrap(domainerrors.ErrValidationFailed.WithMessage("Account details are required"), "register seller")
	}

	if _, err := srv.sellerRepo.FindByUserID(ctx, seller.UserID); err == nil {
		return nil, errors.Wrap(domainerrors.ErrSellerAlreadyExists, "register seller")
	} else if !errors.Is(err, repository.ErrSellerNotFound) {
		return nil, errors.Wrap(err, "failed to check seller profile")
	}

	if err := srv.sellerRepo.Create(ctx, seller); err != nil {
		return nil, errors.Wrap(err, "failed to create seller profile")
	}
	srv.log(ctx).Info("Seller application filed", slog.Any("sellerID", seller.ID), slog.Any("userID", seller.UserID))

	return seller, nil
}

// GetProfile returns the caller's own seller profile.
func (srv *sellerService) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.Seller, error) {
	seller, err := srv.sellerRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, translate(err, "failed to find seller profile")
	}

	return seller, nil
}

// GetSeller returns a seller by id.
func (srv *sellerService) GetSeller(ctx context.Context, sellerID uuid.UUID) (*entity.Seller, error) {
	seller, err := srv.sellerRepo.FindByID(ctx, sellerID)
	if err != nil {
		return nil, translate(err, "failed to find seller")
	}

	return seller, nil
}

// UpdateProfile edits the caller's seller profile. Status is not editable here.
func (srv *sellerService) UpdateProfile(ctx context.Context, userID uuid.UUID, input *usecase.SellerProfileInput) (*entity.Seller, error) {
	seller, err := srv.sellerRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, translate(err, "failed to find seller profile")
	}

	applySellerProfile(seller, input)
	if err := validateSellerProfile(seller); err != nil {
		return nil, err
	}
	seller.UpdatedAt = srv.clock.now()

	if err := srv.sellerRepo.Update(ctx, seller); err != nil {
		return nil, errors.Wrap(err, "failed to update seller profile")
	}

	return seller, nil
}

// Stats summarises the caller's catalog, orders and rating.
func (srv *sellerService) Stats(ctx context.Context, userID uuid.UUID) (*entity.SellerStats, error) {
	seller, err := srv.sellerRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, translate(err, "failed to find seller profile")
	}

	products, err := srv.productRepo.CountBySeller(ctx, seller.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count products")
	}

	summary, err := srv.orderRepo.SellerSummary(ctx, seller.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to summarise orders")
	}

	return &entity.SellerStats{
		TotalProducts: products,
		TotalOrders:   summary.TotalOrders,
		PendingOrders: summary.PendingOrders,
		TotalRevenue:  summary.Revenue,
		Rating:        seller.RatingAverage,
		TotalReviews:  int64(seller.TotalReviews),
		Seller:        seller,
	}, nil
}

// ListSellers returns one page of seller profiles.
func (srv *sellerService) ListSellers(ctx context.Context, filter repository.SellerFilter, page entity.Pagination) (*entity.Page[*entity.Seller], error) {
	sellers, total, err := srv.sellerRepo.List(ctx, filter, page)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list sellers")
	}

	return entity.NewPage(sellers, total, page), nil
}

// transition moves a seller along the status machine inside a transaction.
func (srv *sellerService) transition(ctx context.Context, sellerID uuid.UUID, next entity.SellerStatus, apply func(repoFactory repository.RepositoryFactory, seller *entity.Seller) error) (*entity.Seller, error) {
	var seller *entity.Seller

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		sellerRepo := repoFactory.NewSellerRepository()

		var err error
		seller, err = sellerRepo.FindByID(ctx, sellerID)
		if err != nil {
			return translate(err, "failed to find seller")
		}
		if !seller.Status.CanTransitionTo(next) {
			return errors.Wrap(
				domainerrors.ErrIllegalSellerTransition.WithDetails(string(seller.Status)+" -> "+string(next)),
				"seller transition",
			)
		}

		seller.Status = next
		seller.UpdatedAt = srv.clock.now()
		if apply != nil {
			if err := apply(repoFactory, seller); err != nil {
				return err
			}
		}

		return errors.Wrap(sellerRepo.Update(ctx, seller), "failed to update seller")
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute seller transition")
	}
	srv.log(ctx).Info("Seller status changed", slog.Any("sellerID", sellerID), slog.String("status", string(next)))

	return seller, nil
}

// ApproveSeller verifies the profile and upgrades the user to the seller role.
func (srv *sellerService) ApproveSeller(ctx context.Context, sellerID uuid.UUID) (*entity.Seller, error) {
	return srv.transition(ctx, sellerID, entity.SellerStatusApproved, func(repoFactory repository.RepositoryFactory, seller *entity.Seller) error {
		now := seller.UpdatedAt
		seller.IsVerified = true
		seller.VerifiedAt = &now
		seller.RejectionReason = ""

		userRepo := repoFactory.NewUserRepository()
		user, err := userRepo.FindByID(ctx, seller.UserID)
		if err != nil {
			return translate(err, "failed to find seller user")
		}
		// Staff keep their higher role.
		if user.RoleName() == entity.RoleAdmin || user.RoleName() == entity.RoleSupport {
			return nil
		}

		role, err := repoFactory.NewRoleRepository().FindByName(ctx, entity.RoleSeller)
		if err != nil {
			return translate(err, "failed to load seller role")
		}
		user.RoleID = role.ID
		user.Role = role

		return errors.Wrap(userRepo.Update(ctx, user), "failed to grant seller role")
	})
}

// RejectSeller declines a pending application with a reason shown at login.
func (srv *sellerService) RejectSeller(ctx context.Context, sellerID uuid.UUID, reason string) (*entity.Seller, error) {
	return srv.transition(ctx, sellerID, entity.SellerStatusRejected, func(_ repository.RepositoryFactory, seller *entity.Seller) error {
		seller.RejectionReason = strings.TrimSpace(reason)

		return nil
	})
}

// SuspendSeller blocks an approved seller from signing in.
func (srv *sellerService) SuspendSeller(ctx context.Context, sellerID uuid.UUID, reason string) (*entity.Seller, error) {
	return srv.transition(ctx, sellerID, entity.SellerStatusSuspended, func(_ repository.RepositoryFactory, seller *entity.Seller) error {
		seller.RejectionReason = strings.TrimSpace(reason)

		return nil
	})
}

// CreateSellerReview stores pending feedback about a seller. A linked order must
// belong to the reviewer and contain a line of the seller.
func (srv *sellerService) CreateSellerReview(ctx context.Context, userID, sellerID uuid.UUID, input *usecase.CreateSellerReviewInput) (*entity.SellerReview, error) {
	if err := validateRating(input.Rating); err != nil {
		return nil, err
	}

	seller, err := srv.sellerRepo.FindByID(ctx, sellerID)
	if err != nil {
		return nil, translate(err, "failed to find seller")
	}
	if seller.UserID == userID {
		return nil, errors.Wrap(domainerrors.ErrForbidden.WithMessage("You cannot review your own store"), "create seller review")
	}

	if input.OrderID != nil {
		order, err := srv.orderRepo.FindByID(ctx, *input.OrderID)
		if err != nil {
			return nil, translate(err, "failed to find order")
		}
		if order.UserID != userID || !order.HasSeller(sellerID) {
			return nil, errors.Wrap(domainerrors.ErrValidationFailed.WithMessage("Order does not include this seller"), "create seller review")
		}
	}

	now := srv.clock.now()
	review := &entity.SellerReview{
		ID:        uuid.New(),
		SellerID:  sellerID,
		UserID:    userID,
		OrderID:   input.OrderID,
		Rating:    input.Rating,
		Comment:   strings.TrimSpace(input.Comment),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := srv.sellerRepo.CreateReview(ctx, review); err != nil {
		return nil, errors.Wrap(err, "failed to create seller review")
	}

	return review, nil
}

// ApproveSellerReview publishes the review and refreshes the seller aggregate.
func (srv *sellerService) ApproveSellerReview(ctx context.Context, reviewID uuid.UUID) (*entity.SellerReview, error) {
	var review *entity.SellerReview

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		sellerRepo := repoFactory.NewSellerRepository()

		var err error
		review, err = sellerRepo.FindReviewByID(ctx, reviewID)
		if err != nil {
			return translate(err, "failed to find seller review")
		}

		now := srv.clock.now()
		review.IsApproved = true
		review.ApprovedAt = &now
		review.UpdatedAt = now
		if err := sellerRepo.UpdateReview(ctx, review); err != nil {
			return errors.Wrap(err, "failed to approve seller review")
		}

		summary, err := sellerRepo.RatingSummary(ctx, review.SellerID)
		if err != nil {
			return errors.Wrap(err, "failed to aggregate seller ratings")
		}
		summary.Average = entity.RoundRating(summary.Average)

		return translate(sellerRepo.UpdateRating(ctx, review.SellerID, summary), "failed to update seller rating")
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute approve seller review transaction")
	}

	return review, nil
}
