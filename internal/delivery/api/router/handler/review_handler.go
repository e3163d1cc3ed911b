package handler

import (
	"log/slog"
	"net/http"

	"marketplace/internal/delivery/api/response"
	"marketplace/internal/domain/entity"
	"marketplace/internal/domain/repository"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const maxReviewImages = 5

// ReviewHandlerParams holds dependencies for ReviewHandler, injected by Fx.
type ReviewHandlerParams struct {
	fx.In

	ReviewUC usecase.ReviewUsecase
	Logger   *slog.Logger
}

// ReviewHandler serves product reviews, moderation and votes.
type ReviewHandler struct {
	reviewUC usecase.ReviewUsecase
	logger   *slog.Logger
}

// NewReviewHandler is the constructor for ReviewHandler.
func NewReviewHandler(params ReviewHandlerParams) *ReviewHandler {
	return &ReviewHandler{
		reviewUC: params.ReviewUC,
		logger:   params.Logger,
	}
}

// CreateReviewRequest is the body of POST /reviews.
type CreateReviewRequest struct {
	ProductID uuid.UUID `json:"product_id" validate:"required"`
	Rating    int       `json:"rating" validate:"required,min=1,max=5"`
	Title     string    `json:"title" validate:"max=100"`
	Comment   string    `json:"comment" validate:"required,max=2000"`
}

// UpdateReviewRequest is the body of PUT /reviews/:id.
type UpdateReviewRequest struct {
	Rating  *int    `json:"rating" validate:"omitempty,min=1,max=5"`
	Title   *string `json:"title" validate:"omitempty,max=100"`
	Comment *string `json:"comment" validate:"omitempty,min=1,max=2000"`
}

// VoteReviewRequest is the body of POST /reviews/:id/vote.
type VoteReviewRequest struct {
	Vote string `json:"vote" validate:"required,oneof=helpful not_helpful"`
}

// RespondReviewRequest is the body of POST /reviews/:id/respond.
type RespondReviewRequest struct {
	Comment string `json:"comment" validate:"required,max=1000"`
}

// CreateReview submits a pending review.
func (h *ReviewHandler) CreateReview(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req CreateReviewRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	review, err := h.reviewUC.CreateReview(c.Request().Context(), userID, &usecase.CreateReviewInput{
		ProductID: req.ProductID,
		Rating:    req.Rating,
		Title:     req.Title,
		Comment:   req.Comment,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Created(c, review)
}

// UpdateReview edits the caller's own review.
func (h *ReviewHandler) UpdateReview(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	reviewID, err := paramUUID(c, "id")
	if err != nil {
		return err
	}

	var req UpdateReviewRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	review, err := h.reviewUC.UpdateReview(c.Request().Context(), userID, reviewID, &usecase.UpdateReviewInput{
		Rating:  req.Rating,
		Title:   req.Title,
		Comment: req.Comment,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, review)
}

// DeleteReview removes a review owned by the caller, or any review for staff.
func (h *ReviewHandler) DeleteReview(c echo.Context) error {
	actor, err := currentActor(c)
	if err != nil {
		return err
	}
	reviewID, err := paramUUID(c, "id")
	if err != nil {
		return err
	}

	if err := h.reviewUC.DeleteReview(c.Request().Context(), actor, reviewID); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// ApproveReview publishes a pending review.
func (h *ReviewHandler) ApproveReview(c echo.Context) error {
	reviewID, err := paramUUID(c, "id")
	if err != nil {
		return err
	}

	review, err := h.reviewUC.ApproveReview(c.Request().Context(), reviewID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, review)
}

// VoteReview records or replaces the caller's helpfulness vote.
func (h *ReviewHandler) VoteReview(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	reviewID, err := paramUUID(c, "id")
	if err != nil {
		return err
	}

	var req VoteReviewRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	review, err := h.reviewUC.VoteReview(c.Request().Context(), userID, reviewID, entity.VoteType(req.Vote))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, review)
}

// RespondToReview attaches the seller's reply.
func (h *ReviewHandler) RespondToReview(c echo.Context) error {
	actor, err := currentActor(c)
	if err != nil {
		return err
	}
	reviewID, err := paramUUID(c, "id")
	if err != nil {
		return err
	}

	var req RespondReviewRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	review, err := h.reviewUC.RespondToReview(c.Request().Context(), actor, reviewID, req.Comment)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, review)
}

// AddImages uploads the multipart "images" files to the caller's review.
func (h *ReviewHandler) AddImages(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	reviewID, err := paramUUID(c, "id")
	if err != nil {
		return err
	}

	files, cleanup, err := formFiles(c, "images", maxReviewImages)
	defer cleanup()
	if err != nil {
		return err
	}

	review, err := h.reviewUC.AddReviewImages(c.Request().Context(), userID, reviewID, files)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, review)
}

// ListProductReviews pages through the approved reviews of a product.
func (h *ReviewHandler) ListProductReviews(c echo.Context) error {
	productID, err := paramUUID(c, "productId")
	if err != nil {
		return err
	}

	filter := repository.ReviewFilter{
		Rating:       queryInt(c, "rating", 0),
		ApprovedOnly: true,
	}
	reviews, err := h.reviewUC.ListProductReviews(c.Request().Context(), productID, filter, pagination(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, reviews)
}

// ListPendingReviews pages through the moderation queue.
func (h *ReviewHandler) ListPendingReviews(c echo.Context) error {
	reviews, err := h.reviewUC.ListPendingReviews(c.Request().Context(), pagination(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, reviews)
}
