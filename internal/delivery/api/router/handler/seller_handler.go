package handler

import (
	"log/slog"

	"marketplace/internal/delivery/api/response"
	"marketplace/internal/domain/entity"
	"marketplace/internal/domain/repository"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SellerHandlerParams holds dependencies for SellerHandler, injected by Fx.
type SellerHandlerParams struct {
	fx.In

	SellerUC usecase.SellerUsecase
	Logger   *slog.Logger
}

// SellerHandler serves seller onboarding, profiles and moderation.
type SellerHandler struct {
	sellerUC usecase.SellerUsecase
	logger   *slog.Logger
}

// NewSellerHandler is the constructor for SellerHandler.
func NewSellerHandler(params SellerHandlerParams) *SellerHandler {
	return &SellerHandler{
		sellerUC: params.SellerUC,
		logger:   params.Logger,
	}
}

// SellerProfileRequest carries the seller's business details.
type SellerProfileRequest struct {
	BusinessName    *string                 `json:"business_name" validate:"omitempty,min=1,max=100"`
	BusinessEmail   *string                 `json:"business_email" validate:"omitempty,email"`
	BusinessPhone   *string                 `json:"business_phone" validate:"omitempty,max=20"`
	Description     *string                 `json:"description" validate:"omitempty,max=2000"`
	Logo            *string                 `json:"logo" validate:"omitempty,url"`
	TaxID           *string                 `json:"tax_id" validate:"omitempty,max=50"`
	BusinessLicense *string                 `json:"business_license" validate:"omitempty,max=100"`
	BusinessAddress *entity.BusinessAddress `json:"business_address"`
}

func (r *SellerProfileRequest) input() usecase.SellerProfileInput {
	return usecase.SellerProfileInput{
		BusinessName:    r.BusinessName,
		BusinessEmail:   r.BusinessEmail,
		BusinessPhone:   r.BusinessPhone,
		Description:     r.Description,
		Logo:            r.Logo,
		TaxID:           r.TaxID,
		BusinessLicense: r.BusinessLicense,
		BusinessAddress: r.BusinessAddress,
	}
}

// RegisterSellerRequest is the body of POST /sellers/register. Anonymous
// callers supply account to create the underlying user.
type RegisterSellerRequest struct {
	SellerProfileRequest
	Account *RegisterRequest `json:"account" validate:"omitempty"`
}

// ModerationRequest carries the reason for a reject or suspend.
type ModerationRequest struct {
	Reason string `json:"reason" validate:"required,max=500"`
}

// CreateSellerReviewRequest is the body of POST /sellers/:id/reviews.
type CreateSellerReviewRequest struct {
	OrderID *uuid.UUID `json:"order_id"`
	Rating  int        `json:"rating" validate:"required,min=1,max=5"`
	Comment string     `json:"comment" validate:"max=2000"`
}

// Register files a seller application.
func (h *SellerHandler) Register(c echo.Context) error {
	var req RegisterSellerRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	input := &usecase.RegisterSellerInput{Profile: req.input()}
	if userID, ok := callerID(c); ok {
		input.UserID = &userID
	} else if req.Account != nil {
		input.Account = &usecase.RegisterInput{
			FirstName: req.Account.FirstName,
			LastName:  req.Account.LastName,
			Email:     req.Account.Email,
			Password:  req.Account.Password,
			Phone:     req.Account.Phone,
		}
	}

	seller, err := h.sellerUC.RegisterSeller(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Created(c, seller)
}

// GetProfile returns the caller's seller profile.
func (h *SellerHandler) GetProfile(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	seller, err := h.sellerUC.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, seller)
}

// UpdateProfile edits the caller's seller profile.
func (h *SellerHandler) UpdateProfile(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req SellerProfileRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	input := req.input()
	seller, err := h.sellerUC.UpdateProfile(c.Request().Context(), userID, &input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, seller)
}

// Stats returns the caller's sales dashboard figures.
func (h *SellerHandler) Stats(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	stats, err := h.sellerUC.Stats(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, stats)
}

// GetSeller returns a seller profile by id.
func (h *SellerHandler) GetSeller(c echo.Context) error {
	sellerID, err := paramUUID(c, "id")
	if err != nil {
		return err
	}

	seller, err := h.sellerUC.GetSeller(c.Request().Context(), sellerID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, seller)
}

// ListSellers pages through seller profiles for admins.
func (h *SellerHandler) ListSellers(c echo.Context) error {
	filter := repository.SellerFilter{Status: entity.SellerStatus(c.QueryParam("status"))}
	if raw := c.QueryParam("is_verified"); raw != "" {
		verified := queryBool(c, "is_verified")
		filter.IsVerified = &verified
	}

	page, err := h.sellerUC.ListSellers(c.Request().Context(), filter, pagination(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, page)
}

// Approve verifies a seller and grants the seller role.
func (h *SellerHandler) Approve(c echo.Context) error {
	sellerID, err := paramUUID(c, "id")
	if err != nil {
		return err
	}

	seller, err := h.sellerUC.ApproveSeller(c.Request().Context(), sellerID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, seller)
}

// Reject turns down a seller application.
func (h *SellerHandler) Reject(c echo.Context) error {
	sellerID, err := paramUUID(c, "id")
	if err != nil {
		return err
	}

	var req ModerationRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	seller, err := h.sellerUC.RejectSeller(c.Request().Context(), sellerID, req.Reason)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, seller)
}

// Suspend blocks an approved seller.
func (h *SellerHandler) Suspend(c echo.Context) error {
	sellerID, err := paramUUID(c, "id")
	if err != nil {
		return err
	}

	var req ModerationRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	seller, err := h.sellerUC.SuspendSeller(c.Request().Context(), sellerID, req.Reason)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, seller)
}

// CreateReview leaves feedback about a seller.
func (h *SellerHandler) CreateReview(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	sellerID, err := paramUUID(c, "id")
	if err != nil {
		return err
	}

	var req CreateSellerReviewRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	review, err := h.sellerUC.CreateSellerReview(c.Request().Context(), userID, sellerID, &usecase.CreateSellerReviewInput{
		OrderID: req.OrderID,
		Rating:  req.Rating,
		Comment: req.Comment,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Created(c, review)
}

// ApproveReview publishes a seller review and refreshes the seller rating.
func (h *SellerHandler) ApproveReview(c echo.Context) error {
	reviewID, err := paramUUID(c, "id")
	if err != nil {
		return err
	}

	review, err := h.sellerUC.ApproveSellerReview(c.Request().Context(), reviewID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, review)
}
