package handler

import (
	"net/http"
	"testing"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	mockUsecase "marketplace/internal/mocks/usecase"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type reviewHandlerFixtures struct {
	e        *echo.Echo
	actor    usecase.Actor
	reviewUC *mockUsecase.MockReviewUsecase
}

func createTestReviewHandler(t *testing.T, role entity.RoleName) reviewHandlerFixtures {
	fx := reviewHandlerFixtures{
		e:        newTestEcho(),
		actor:    usecase.Actor{UserID: uuid.New(), Role: role},
		reviewUC: mockUsecase.NewMockReviewUsecase(t),
	}

	h := NewReviewHandler(ReviewHandlerParams{ReviewUC: fx.reviewUC, Logger: discardLogger})
	fx.e.GET("/api/v1/reviews/product/:productId", h.ListProductReviews)
	fx.e.POST("/api/v1/anonymous/reviews", h.CreateReview)

	g := fx.e.Group("/api/v1/reviews", asCaller(fx.actor.UserID, role))
	g.POST("", h.CreateReview)
	g.PUT("/:id", h.UpdateReview)
	g.DELETE("/:id", h.DeleteReview)
	g.PUT("/:id/approve", h.ApproveReview)
	g.POST("/:id/vote", h.VoteReview)
	g.POST("/:id/images", h.AddImages)

	return fx
}

func TestReviewHandler_CreateReview(t *testing.T) {
	fx := createTestReviewHandler(t, entity.RoleCustomer)
	productID := uuid.New()
	review := &entity.Review{ID: uuid.New(), ProductID: productID, UserID: fx.actor.UserID, Rating: 4, Title: "Solid", IsVerifiedPurchase: true}

	fx.reviewUC.EXPECT().CreateReview(mock.Anything, fx.actor.UserID, &usecase.CreateReviewInput{
		ProductID: productID,
		Rating:    4,
		Title:     "Solid",
		Comment:   "Battery lasts two days",
	}).Return(review, nil)

	rec := doRequest(fx.e, http.MethodPost, "/api/v1/reviews",
		`{"product_id":"`+productID.String()+`","rating":4,"title":"Solid","comment":"Battery lasts two days"}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.Equal(t, "success", env.Status)
	got := decodeData[entity.Review](t, rec)
	assert.Equal(t, review.ID, got.ID)
	assert.True(t, got.IsVerifiedPurchase)
	assert.False(t, got.IsApproved)
}

func TestReviewHandler_CreateReview_Duplicate(t *testing.T) {
	fx := createTestReviewHandler(t, entity.RoleCustomer)
	productID := uuid.New()

	fx.reviewUC.EXPECT().CreateReview(mock.Anything, fx.actor.UserID, mock.Anything).
		Return(nil, errors.Wrap(domainerrors.ErrDuplicateReview, "failed to create review"))

	rec := doRequest(fx.e, http.MethodPost, "/api/v1/reviews",
		`{"product_id":"`+productID.String()+`","rating":5,"comment":"Again"}`)

	require.Equal(t, http.StatusConflict, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.Equal(t, "error", env.Status)
	assert.Equal(t, "DUPLICATE_REVIEW", env.Code)
	assert.Equal(t, "You have already reviewed this product", env.Message)
}

func TestReviewHandler_CreateReview_Invalid(t *testing.T) {
	fx := createTestReviewHandler(t, entity.RoleCustomer)

	rec := doRequest(fx.e, http.MethodPost, "/api/v1/reviews", `{"rating":6,"comment":""}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.Equal(t, "VALIDATION_FAILED", env.Code)
	assert.Equal(t, "is required", env.Details["product_id"])
	assert.Equal(t, "must be at most 5", env.Details["rating"])
	assert.Equal(t, "is required", env.Details["comment"])
}

func TestReviewHandler_CreateReview_Anonymous(t *testing.T) {
	fx := createTestReviewHandler(t, entity.RoleCustomer)

	rec := doRequest(fx.e, http.MethodPost, "/api/v1/anonymous/reviews", `{"product_id":"`+uuid.NewString()+`","rating":5,"comment":"x"}`)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "UNAUTHORIZED", decodeEnvelope(t, rec).Code)
}

func TestReviewHandler_UpdateReview_NotAuthor(t *testing.T) {
	fx := createTestReviewHandler(t, entity.RoleCustomer)
	reviewID := uuid.New()
	rating := 2

	fx.reviewUC.EXPECT().UpdateReview(mock.Anything, fx.actor.UserID, reviewID, &usecase.UpdateReviewInput{Rating: &rating}).
		Return(nil, errors.WithStack(domainerrors.ErrForbidden))

	rec := doRequest(fx.e, http.MethodPut, "/api/v1/reviews/"+reviewID.String(), `{"rating":2}`)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestReviewHandler_DeleteReview_PassesActor(t *testing.T) {
	fx := createTestReviewHandler(t, entity.RoleAdmin)
	reviewID := uuid.New()

	fx.reviewUC.EXPECT().DeleteReview(mock.Anything, fx.actor, reviewID).Return(nil)

	rec := doRequest(fx.e, http.MethodDelete, "/api/v1/reviews/"+reviewID.String(), "")

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestReviewHandler_ApproveReview(t *testing.T) {
	fx := createTestReviewHandler(t, entity.RoleSupport)
	reviewID := uuid.New()

	fx.reviewUC.EXPECT().ApproveReview(mock.Anything, reviewID).Return(&entity.Review{ID: reviewID, IsApproved: true}, nil)

	rec := doRequest(fx.e, http.MethodPut, "/api/v1/reviews/"+reviewID.String()+"/approve", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, decodeData[entity.Review](t, rec).IsApproved)
}

func TestReviewHandler_VoteReview(t *testing.T) {
	reviewID := uuid.New()

	t.Run("helpful", func(t *testing.T) {
		fx := createTestReviewHandler(t, entity.RoleCustomer)
		fx.reviewUC.EXPECT().VoteReview(mock.Anything, fx.actor.UserID, reviewID, entity.VoteHelpful).
			Return(&entity.Review{ID: reviewID, HelpfulCount: 3}, nil)

		rec := doRequest(fx.e, http.MethodPost, "/api/v1/reviews/"+reviewID.String()+"/vote", `{"vote":"helpful"}`)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, 3, decodeData[entity.Review](t, rec).HelpfulCount)
	})

	t.Run("unknown vote", func(t *testing.T) {
		fx := createTestReviewHandler(t, entity.RoleCustomer)

		rec := doRequest(fx.e, http.MethodPost, "/api/v1/reviews/"+reviewID.String()+"/vote", `{"vote":"meh"}`)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "must be one of: helpful, not_helpful", decodeEnvelope(t, rec).Details["vote"])
	})
}

func TestReviewHandler_AddImages(t *testing.T) {
	reviewID := uuid.New()

	t.Run("uploads every file", func(t *testing.T) {
		fx := createTestReviewHandler(t, entity.RoleCustomer)
		fx.reviewUC.EXPECT().AddReviewImages(mock.Anything, fx.actor.UserID, reviewID, mock.MatchedBy(func(files []*usecase.FileUpload) bool {
			return len(files) == 2
		})).Return(&entity.Review{ID: reviewID}, nil)

		rec := doMultipart(t, fx.e, "/api/v1/reviews/"+reviewID.String()+"/images", "images",
			map[string]string{"front.jpg": "jpeg-a", "back.jpg": "jpeg-b"})

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("too many files", func(t *testing.T) {
		fx := createTestReviewHandler(t, entity.RoleCustomer)
		files := map[string]string{}
		for _, name := range []string{"1.jpg", "2.jpg", "3.jpg", "4.jpg", "5.jpg", "6.jpg"} {
			files[name] = "jpeg"
		}

		rec := doMultipart(t, fx.e, "/api/v1/reviews/"+reviewID.String()+"/images", "images", files)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		code, detail := errorDetail(t, rec)
		assert.Equal(t, "VALIDATION_FAILED", code)
		assert.Equal(t, "at most 5 files", detail)
	})
}

func TestReviewHandler_ListProductReviews(t *testing.T) {
	fx := createTestReviewHandler(t, entity.RoleCustomer)
	productID := uuid.New()
	page := entity.Pagination{Page: 1, Limit: 12}

	fx.reviewUC.EXPECT().ListProductReviews(mock.Anything, productID,
		repository.ReviewFilter{Rating: 4, ApprovedOnly: true}, page,
	).Return(&usecase.ProductReviews{
		Page:         entity.NewPage([]*entity.Review{{ID: uuid.New(), Rating: 4}}, 1, page),
		Distribution: entity.RatingDistribution{4: 1},
	}, nil)

	rec := doRequest(fx.e, http.MethodGet, "/api/v1/reviews/product/"+productID.String()+"?rating=4", "")

	require.Equal(t, http.StatusOK, rec.Code)
	got := decodeData[struct {
		Items        []*entity.Review          `json:"items"`
		Distribution entity.RatingDistribution `json:"distribution"`
	}](t, rec)
	assert.Len(t, got.Items, 1)
	assert.Equal(t, int64(1), got.Distribution[4])
}
