package impl

import (
	"context"
	"testing"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	mockRepo "marketplace/internal/mocks/repository"
	mockUsecase "marketplace/internal/mocks/usecase"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type wishlistServiceFixtures struct {
	service      usecase.WishlistUsecase
	wishlistRepo *mockRepo.MockWishlistRepository
	productRepo  *mockRepo.MockProductRepository
	cart         *mockUsecase.MockCartUsecase
}

func createTestWishlistService(t *testing.T) wishlistServiceFixtures {
	fx := wishlistServiceFixtures{
		wishlistRepo: mockRepo.NewMockWishlistRepository(t),
		productRepo:  mockRepo.NewMockProductRepository(t),
		cart:         mockUsecase.NewMockCartUsecase(t),
	}
	fx.service = NewWishlistService(WishlistServiceParams{
		WishlistRepo: fx.wishlistRepo,
		ProductRepo:  fx.productRepo,
		Cart:         fx.cart,
		Logger:       newDiscardLogger(),
	})

	return fx
}

func TestWishlistService_GetWishlist_DropsDeletedProducts(t *testing.T) {
	fx := createTestWishlistService(t)
	ctx := context.Background()
	userID := uuid.New()
	kept := newTestProduct("10", 1)
	gone := uuid.New()

	fx.wishlistRepo.EXPECT().List(ctx, userID).Return([]*entity.WishlistItem{
		{ProductID: kept.ID, AddedAt: testNow},
		{ProductID: gone, AddedAt: testNow},
	}, nil)
	fx.productRepo.EXPECT().FindByIDs(ctx, []uuid.UUID{kept.ID, gone}).Return([]*entity.Product{kept}, nil)

	wishlist, err := fx.service.GetWishlist(ctx, userID)
	require.NoError(t, err)
	require.Len(t, wishlist.Items, 1)
	assert.Equal(t, kept, wishlist.Items[0].Product)
}

func TestWishlistService_GetWishlist_Empty(t *testing.T) {
	fx := createTestWishlistService(t)
	userID := uuid.New()

	fx.wishlistRepo.EXPECT().List(mock.Anything, userID).Return(nil, nil)

	wishlist, err := fx.service.GetWishlist(context.Background(), userID)
	require.NoError(t, err)
	assert.Empty(t, wishlist.Items)
	assert.Equal(t, userID, wishlist.UserID)
}

func TestWishlistService_AddToWishlist(t *testing.T) {
	fx := createTestWishlistService(t)
	userID := uuid.New()
	product := newTestProduct("10", 1)

	fx.productRepo.EXPECT().FindByID(mock.Anything, product.ID).Return(product, nil)
	fx.wishlistRepo.EXPECT().Add(mock.Anything, userID, product.ID).Return(nil)
	fx.wishlistRepo.EXPECT().List(mock.Anything, userID).Return([]*entity.WishlistItem{{ProductID: product.ID}}, nil)
	fx.productRepo.EXPECT().FindByIDs(mock.Anything, []uuid.UUID{product.ID}).Return([]*entity.Product{product}, nil)

	wishlist, err := fx.service.AddToWishlist(context.Background(), userID, product.ID)
	require.NoError(t, err)
	assert.Len(t, wishlist.Items, 1)
}

func TestWishlistService_AddToWishlist_Rejections(t *testing.T) {
	t.Run("inactive product", func(t *testing.T) {
		fx := createTestWishlistService(t)
		product := newTestProduct("10", 1)
		product.IsActive = false
		fx.productRepo.EXPECT().FindByID(mock.Anything, product.ID).Return(product, nil)

		_, err := fx.service.AddToWishlist(context.Background(), uuid.New(), product.ID)
		assert.ErrorIs(t, err, domainerrors.ErrProductUnavailable)
	})

	t.Run("unknown product", func(t *testing.T) {
		fx := createTestWishlistService(t)
		productID := uuid.New()
		fx.productRepo.EXPECT().FindByID(mock.Anything, productID).Return(nil, repository.ErrProductNotFound)

		_, err := fx.service.AddToWishlist(context.Background(), uuid.New(), productID)
		assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
	})
}

func TestWishlistService_MoveToCart(t *testing.T) {
	fx := createTestWishlistService(t)
	userID := uuid.New()
	productID := uuid.New()
	cart := &entity.Cart{UserID: userID}

	fx.cart.EXPECT().AddItem(mock.Anything, userID, &usecase.AddCartItemInput{ProductID: productID, Quantity: 1}).Return(cart, nil)
	fx.wishlistRepo.EXPECT().Remove(mock.Anything, userID, productID).Return(errors.New("connection reset"))

	got, err := fx.service.MoveToCart(context.Background(), userID, productID)
	require.NoError(t, err)
	assert.Same(t, cart, got)
}

func TestWishlistService_MoveToCart_KeepsItemWhenCartRejects(t *testing.T) {
	fx := createTestWishlistService(t)
	userID := uuid.New()
	productID := uuid.New()

	fx.cart.EXPECT().AddItem(mock.Anything, userID, mock.Anything).Return(nil, domainerrors.ErrInsufficientStock)

	_, err := fx.service.MoveToCart(context.Background(), userID, productID)
	assert.ErrorIs(t, err, domainerrors.ErrInsufficientStock)
	fx.wishlistRepo.AssertNotCalled(t, "Remove", mock.Anything, userID, productID)
}
