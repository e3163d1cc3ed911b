package impl

import (
	"context"
	"strings"
	"testing"
	"time"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/domain/service"
	mockRepo "marketplace/internal/mocks/repository"
	mockSvc "marketplace/internal/mocks/service"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// reviewServiceFixtures holds all test dependencies for review service tests.
type reviewServiceFixtures struct {
	service     usecase.ReviewUsecase
	txManager   *mockRepo.MockTransactionManager
	factory     *mockRepo.MockRepositoryFactory
	reviewRepo  *mockRepo.MockReviewRepository
	productRepo *mockRepo.MockProductRepository
	orderRepo   *mockRepo.MockOrderRepository
	sellerRepo  *mockRepo.MockSellerRepository
	storage     *mockSvc.MockImageStorage
	cache       *mockSvc.MockProductCache
}

func createTestReviewService(t *testing.T) reviewServiceFixtures {
	fx := reviewServiceFixtures{
		txManager:   mockRepo.NewMockTransactionManager(t),
		factory:     mockRepo.NewMockRepositoryFactory(t),
		reviewRepo:  mockRepo.NewMockReviewRepository(t),
		productRepo: mockRepo.NewMockProductRepository(t),
		orderRepo:   mockRepo.NewMockOrderRepository(t),
		sellerRepo:  mockRepo.NewMockSellerRepository(t),
		storage:     mockSvc.NewMockImageStorage(t),
		cache:       mockSvc.NewMockProductCache(t),
	}

	srv := NewReviewService(ReviewServiceParams{
		TxManager:   fx.txManager,
		ReviewRepo:  fx.reviewRepo,
		ProductRepo: fx.productRepo,
		OrderRepo:   fx.orderRepo,
		SellerRepo:  fx.sellerRepo,
		Storage:     fx.storage,
		Cache:       fx.cache,
		Logger:      newDiscardLogger(),
	})
	srv.(*reviewService).clock = fixedClock()
	fx.service = srv

	return fx
}

// expectRatingRefresh covers the aggregate recomputation run inside review
// transactions and the cached product being dropped once it commits.
func (fx reviewServiceFixtures) expectRatingRefresh(productID uuid.UUID, summary, stored entity.RatingSummary) {
	fx.factory.EXPECT().NewReviewRepository().Return(fx.reviewRepo)
	fx.factory.EXPECT().NewProductRepository().Return(fx.productRepo)
	fx.reviewRepo.EXPECT().RatingSummary(mock.Anything, productID).Return(summary, nil)
	fx.productRepo.EXPECT().UpdateRating(mock.Anything, productID, stored).Return(nil)
	fx.cache.EXPECT().Invalidate(mock.Anything, productID, "").Return(nil).Once()
}

func TestReviewService_CreateReview_VerifiedPurchase(t *testing.T) {
	fx := createTestReviewService(t)
	ctx := context.Background()
	userID := uuid.New()
	productID := uuid.New()
	orderID := uuid.New()

	fx.productRepo.EXPECT().FindByID(ctx, productID).Return(&entity.Product{ID: productID}, nil)
	fx.reviewRepo.EXPECT().FindByProductAndUser(ctx, productID, userID).Return(nil, repository.ErrReviewNotFound)
	fx.orderRepo.EXPECT().FindDeliveredWithProduct(ctx, userID, productID).Return(orderID, nil)

	expectTx(fx.txManager, fx.factory)
	fx.reviewRepo.EXPECT().
		Create(mock.Anything, mock.MatchedBy(func(r *entity.Review) bool {
			return r.IsVerifiedPurchase && !r.IsApproved && r.OrderID != nil && *r.OrderID == orderID
		})).
		Return(nil)
	fx.expectRatingRefresh(productID, entity.RatingSummary{Average: 4.25, Count: 4}, entity.RatingSummary{Average: 4.3, Count: 4})

	review, err := fx.service.CreateReview(ctx, userID, &usecase.CreateReviewInput{
		ProductID: productID,
		Rating:    5,
		Title:     "  Great  ",
		Comment:   "Works as described",
	})
	require.NoError(t, err)
	assert.Equal(t, "Great", review.Title)
	assert.True(t, review.IsVerifiedPurchase)
	assert.Equal(t, testNow, review.CreatedAt)
}

func TestReviewService_CreateReview_Duplicate(t *testing.T) {
	fx := createTestReviewService(t)
	ctx := context.Background()
	userID := uuid.New()
	productID := uuid.New()

	fx.productRepo.EXPECT().FindByID(ctx, productID).Return(&entity.Product{ID: productID}, nil)
	fx.reviewRepo.EXPECT().FindByProductAndUser(ctx, productID, userID).Return(&entity.Review{ID: uuid.New()}, nil)

	review, err := fx.service.CreateReview(ctx, userID, &usecase.CreateReviewInput{ProductID: productID, Rating: 4})
	assert.Nil(t, review)
	assert.ErrorIs(t, err, domainerrors.ErrDuplicateReview)
}

func TestReviewService_CreateReview_DuplicateRace(t *testing.T) {
	fx := createTestReviewService(t)
	ctx := context.Background()
	userID := uuid.New()
	productID := uuid.New()

	fx.productRepo.EXPECT().FindByID(ctx, productID).Return(&entity.Product{ID: productID}, nil)
	fx.reviewRepo.EXPECT().FindByProductAndUser(ctx, productID, userID).Return(nil, repository.ErrReviewNotFound)
	fx.orderRepo.EXPECT().FindDeliveredWithProduct(ctx, userID, productID).Return(uuid.Nil, repository.ErrOrderNotFound)
	expectTx(fx.txManager, fx.factory)
	fx.factory.EXPECT().NewReviewRepository().Return(fx.reviewRepo)
	fx.reviewRepo.EXPECT().Create(mock.Anything, mock.AnythingOfType("*entity.Review")).Return(repository.ErrDuplicateReview)

	_, err := fx.service.CreateReview(ctx, userID, &usecase.CreateReviewInput{ProductID: productID, Rating: 4})
	assert.ErrorIs(t, err, domainerrors.ErrDuplicateReview)
}

func TestReviewService_CreateReview_InvalidRating(t *testing.T) {
	for _, rating := range []int{0, 6, -1} {
		fx := createTestReviewService(t)

		_, err := fx.service.CreateReview(context.Background(), uuid.New(), &usecase.CreateReviewInput{ProductID: uuid.New(), Rating: rating})
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed, "rating %d", rating)
	}
}

func TestReviewService_UpdateReview_ResetsApproval(t *testing.T) {
	fx := createTestReviewService(t)
	ctx := context.Background()
	userID := uuid.New()
	approvedAt := testNow.Add(-72 * time.Hour)
	existing := &entity.Review{
		ID:         uuid.New(),
		ProductID:  uuid.New(),
		UserID:     userID,
		Rating:     2,
		IsApproved: true,
		ApprovedAt: &approvedAt,
	}
	rating := 4

	expectTx(fx.txManager, fx.factory)
	fx.reviewRepo.EXPECT().FindByID(mock.Anything, existing.ID).Return(existing, nil)
	fx.reviewRepo.EXPECT().Update(mock.Anything, existing).Return(nil)
	fx.expectRatingRefresh(existing.ProductID, entity.RatingSummary{}, entity.RatingSummary{})

	review, err := fx.service.UpdateReview(ctx, userID, existing.ID, &usecase.UpdateReviewInput{Rating: &rating})
	require.NoError(t, err)
	assert.Equal(t, 4, review.Rating)
	assert.False(t, review.IsApproved)
	assert.Nil(t, review.ApprovedAt)
}

func TestReviewService_UpdateReview_NotAuthor(t *testing.T) {
	fx := createTestReviewService(t)
	existing := &entity.Review{ID: uuid.New(), UserID: uuid.New()}

	expectTx(fx.txManager, fx.factory)
	fx.factory.EXPECT().NewReviewRepository().Return(fx.reviewRepo)
	fx.reviewRepo.EXPECT().FindByID(mock.Anything, existing.ID).Return(existing, nil)

	_, err := fx.service.UpdateReview(context.Background(), uuid.New(), existing.ID, &usecase.UpdateReviewInput{})
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestReviewService_ApproveReview_RefreshesRating(t *testing.T) {
	fx := createTestReviewService(t)
	existing := &entity.Review{ID: uuid.New(), ProductID: uuid.New(), Rating: 3}

	expectTx(fx.txManager, fx.factory)
	fx.reviewRepo.EXPECT().FindByID(mock.Anything, existing.ID).Return(existing, nil)
	fx.reviewRepo.EXPECT().Update(mock.Anything, existing).Return(nil)
	fx.expectRatingRefresh(existing.ProductID, entity.RatingSummary{Average: 11.0 / 3.0, Count: 3}, entity.RatingSummary{Average: 3.7, Count: 3})

	review, err := fx.service.ApproveReview(context.Background(), existing.ID)
	require.NoError(t, err)
	assert.True(t, review.IsApproved)
	require.NotNil(t, review.ApprovedAt)
	assert.Equal(t, testNow, *review.ApprovedAt)
}

func TestReviewService_ApproveReview_CacheFailureKeepsApproval(t *testing.T) {
	fx := createTestReviewService(t)
	existing := &entity.Review{ID: uuid.New(), ProductID: uuid.New(), Rating: 5}

	expectTx(fx.txManager, fx.factory)
	fx.reviewRepo.EXPECT().FindByID(mock.Anything, existing.ID).Return(existing, nil)
	fx.reviewRepo.EXPECT().Update(mock.Anything, existing).Return(nil)
	fx.factory.EXPECT().NewReviewRepository().Return(fx.reviewRepo)
	fx.factory.EXPECT().NewProductRepository().Return(fx.productRepo)
	fx.reviewRepo.EXPECT().RatingSummary(mock.Anything, existing.ProductID).Return(entity.RatingSummary{Average: 5, Count: 1}, nil)
	fx.productRepo.EXPECT().UpdateRating(mock.Anything, existing.ProductID, entity.RatingSummary{Average: 5, Count: 1}).Return(nil)
	fx.cache.EXPECT().Invalidate(mock.Anything, existing.ProductID, "").Return(errors.New("redis: connection refused"))

	review, err := fx.service.ApproveReview(context.Background(), existing.ID)
	require.NoError(t, err)
	assert.True(t, review.IsApproved)
}

func TestReviewService_VoteReview_ReplacesPreviousVote(t *testing.T) {
	fx := createTestReviewService(t)
	voter := uuid.New()
	other := uuid.New()
	existing := &entity.Review{
		ID: uuid.New(),
		Votes: []entity.ReviewVote{
			{UserID: voter, Vote: entity.VoteHelpful},
			{UserID: other, Vote: entity.VoteHelpful},
		},
		HelpfulCount: 2,
	}

	expectTx(fx.txManager, fx.factory)
	fx.factory.EXPECT().NewReviewRepository().Return(fx.reviewRepo)
	fx.reviewRepo.EXPECT().FindByID(mock.Anything, existing.ID).Return(existing, nil)
	fx.reviewRepo.EXPECT().Update(mock.Anything, existing).Return(nil)

	review, err := fx.service.VoteReview(context.Background(), voter, existing.ID, entity.VoteNotHelpful)
	require.NoError(t, err)
	assert.Equal(t, 1, review.HelpfulCount)
	assert.Equal(t, 1, review.NotHelpfulCount)
	assert.Len(t, review.Votes, 2)
}

func TestReviewService_VoteReview_InvalidVote(t *testing.T) {
	fx := createTestReviewService(t)

	_, err := fx.service.VoteReview(context.Background(), uuid.New(), uuid.New(), "meh")
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestReviewService_DeleteReview(t *testing.T) {
	t.Run("admin removes review and images", func(t *testing.T) {
		fx := createTestReviewService(t)
		existing := &entity.Review{
			ID:        uuid.New(),
			ProductID: uuid.New(),
			UserID:    uuid.New(),
			Images:    []entity.ReviewImage{{Key: "reviews/a.jpg"}, {Key: "reviews/b.jpg"}},
		}

		expectTx(fx.txManager, fx.factory)
		fx.reviewRepo.EXPECT().FindByID(mock.Anything, existing.ID).Return(existing, nil)
		fx.reviewRepo.EXPECT().Delete(mock.Anything, existing.ID).Return(nil)
		fx.expectRatingRefresh(existing.ProductID, entity.RatingSummary{}, entity.RatingSummary{})
		fx.storage.EXPECT().Delete(mock.Anything, "reviews/a.jpg").Return(errors.New("bucket unavailable"))
		fx.storage.EXPECT().Delete(mock.Anything, "reviews/b.jpg").Return(nil)

		err := fx.service.DeleteReview(context.Background(), usecase.Actor{UserID: uuid.New(), Role: entity.RoleAdmin}, existing.ID)
		require.NoError(t, err)
	})

	t.Run("stranger is rejected", func(t *testing.T) {
		fx := createTestReviewService(t)
		existing := &entity.Review{ID: uuid.New(), UserID: uuid.New()}

		expectTx(fx.txManager, fx.factory)
		fx.factory.EXPECT().NewReviewRepository().Return(fx.reviewRepo)
		fx.reviewRepo.EXPECT().FindByID(mock.Anything, existing.ID).Return(existing, nil)

		err := fx.service.DeleteReview(context.Background(), usecase.Actor{UserID: uuid.New(), Role: entity.RoleCustomer}, existing.ID)
		assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	})
}

func TestReviewService_RespondToReview(t *testing.T) {
	ctx := context.Background()
	sellerUser := uuid.New()
	sellerID := uuid.New()
	actor := usecase.Actor{UserID: sellerUser, Role: entity.RoleSeller}

	t.Run("owning seller", func(t *testing.T) {
		fx := createTestReviewService(t)
		existing := &entity.Review{ID: uuid.New(), ProductID: uuid.New()}

		fx.reviewRepo.EXPECT().FindByID(ctx, existing.ID).Return(existing, nil)
		fx.productRepo.EXPECT().FindByID(ctx, existing.ProductID).Return(&entity.Product{ID: existing.ProductID, SellerID: sellerID}, nil)
		fx.sellerRepo.EXPECT().FindByUserID(ctx, sellerUser).Return(&entity.Seller{ID: sellerID, Status: entity.SellerStatusApproved}, nil)
		fx.reviewRepo.EXPECT().Update(ctx, existing).Return(nil)

		review, err := fx.service.RespondToReview(ctx, actor, existing.ID, " Thanks for the feedback! ")
		require.NoError(t, err)
		require.NotNil(t, review.SellerResponse)
		assert.Equal(t, "Thanks for the feedback!", review.SellerResponse.Comment)
	})

	t.Run("other seller", func(t *testing.T) {
		fx := createTestReviewService(t)
		existing := &entity.Review{ID: uuid.New(), ProductID: uuid.New()}

		fx.reviewRepo.EXPECT().FindByID(ctx, existing.ID).Return(existing, nil)
		fx.productRepo.EXPECT().FindByID(ctx, existing.ProductID).Return(&entity.Product{ID: existing.ProductID, SellerID: uuid.New()}, nil)
		fx.sellerRepo.EXPECT().FindByUserID(ctx, sellerUser).Return(&entity.Seller{ID: sellerID, Status: entity.SellerStatusApproved}, nil)

		_, err := fx.service.RespondToReview(ctx, actor, existing.ID, "Not yours")
		assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	})

	t.Run("blank comment", func(t *testing.T) {
		fx := createTestReviewService(t)

		_, err := fx.service.RespondToReview(ctx, actor, uuid.New(), "   ")
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})
}

func TestReviewService_AddReviewImages_RollsBackOnFailure(t *testing.T) {
	fx := createTestReviewService(t)
	ctx := context.Background()
	userID := uuid.New()
	existing := &entity.Review{ID: uuid.New(), UserID: userID}
	folder := "reviews/" + existing.ID.String()

	fx.reviewRepo.EXPECT().FindByID(ctx, existing.ID).Return(existing, nil)
	fx.storage.EXPECT().
		Upload(ctx, folder, "one.jpg", "image/jpeg", mock.Anything).
		Return(&service.StoredObject{Key: folder + "/one.jpg", URL: "https://cdn.example.com/one.jpg"}, nil)
	fx.storage.EXPECT().
		Upload(ctx, folder, "two.jpg", "image/jpeg", mock.Anything).
		Return(nil, errors.New("quota exceeded"))
	fx.storage.EXPECT().Delete(ctx, folder+"/one.jpg").Return(nil)

	files := []*usecase.FileUpload{
		{Filename: "one.jpg", ContentType: "image/jpeg", Content: strings.NewReader("1")},
		{Filename: "two.jpg", ContentType: "image/jpeg", Content: strings.NewReader("2")},
	}

	_, err := fx.service.AddReviewImages(ctx, userID, existing.ID, files)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "quota exceeded")
	assert.Empty(t, existing.Images)
}

func TestReviewService_ListProductReviews_ApprovedOnly(t *testing.T) {
	fx := createTestReviewService(t)
	ctx := context.Background()
	productID := uuid.New()
	page := entity.Pagination{Page: 1, Limit: 10}
	reviews := []*entity.Review{{ID: uuid.New(), IsApproved: true}}
	distribution := entity.RatingDistribution{5: 1}

	fx.reviewRepo.EXPECT().
		ListByProduct(ctx, productID, repository.ReviewFilter{ApprovedOnly: true}, page).
		Return(reviews, int64(1), nil)
	fx.reviewRepo.EXPECT().Distribution(ctx, productID).Return(distribution, nil)

	result, err := fx.service.ListProductReviews(ctx, productID, repository.ReviewFilter{}, page)
	require.NoError(t, err)
	assert.Equal(t, reviews, result.Items)
	assert.Equal(t, int64(1), result.Total)
	assert.Equal(t, distribution, result.Distribution)
}
