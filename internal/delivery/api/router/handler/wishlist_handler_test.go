package handler

import (
	"net/http"
	"testing"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	mockUsecase "marketplace/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type wishlistHandlerFixtures struct {
	e          *echo.Echo
	userID     uuid.UUID
	wishlistUC *mockUsecase.MockWishlistUsecase
}

func createTestWishlistHandler(t *testing.T) wishlistHandlerFixtures {
	fx := wishlistHandlerFixtures{
		e:          newTestEcho(),
		userID:     uuid.New(),
		wishlistUC: mockUsecase.NewMockWishlistUsecase(t),
	}

	h := NewWishlistHandler(WishlistHandlerParams{WishlistUC: fx.wishlistUC, Logger: discardLogger})
	g := fx.e.Group("/api/v1/wishlist", asCaller(fx.userID, entity.RoleCustomer))
	g.GET("", h.GetWishlist)
	g.POST("", h.AddItem)
	g.DELETE("", h.Clear)
	g.DELETE("/:productId", h.RemoveItem)
	g.POST("/:productId/move-to-cart", h.MoveToCart)

	return fx
}

func TestWishlistHandler_AddItem(t *testing.T) {
	fx := createTestWishlistHandler(t)
	productID := uuid.New()

	fx.wishlistUC.EXPECT().AddToWishlist(mock.Anything, fx.userID, productID).Return(&entity.Wishlist{
		UserID: fx.userID,
		Items:  []*entity.WishlistItem{{ProductID: productID}},
	}, nil)

	rec := doRequest(fx.e, http.MethodPost, "/api/v1/wishlist", `{"product_id":"`+productID.String()+`"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	got := decodeData[entity.Wishlist](t, rec)
	require.Len(t, got.Items, 1)
	assert.Equal(t, productID, got.Items[0].ProductID)
}

func TestWishlistHandler_AddItem_MissingProduct(t *testing.T) {
	fx := createTestWishlistHandler(t)

	rec := doRequest(fx.e, http.MethodPost, "/api/v1/wishlist", `{}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "is required", decodeEnvelope(t, rec).Details["product_id"])
}

func TestWishlistHandler_Clear(t *testing.T) {
	fx := createTestWishlistHandler(t)

	fx.wishlistUC.EXPECT().ClearWishlist(mock.Anything, fx.userID).Return(nil)

	rec := doRequest(fx.e, http.MethodDelete, "/api/v1/wishlist", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Wishlist cleared", decodeData[map[string]string](t, rec)["message"])
}

func TestWishlistHandler_MoveToCart(t *testing.T) {
	productID := uuid.New()

	t.Run("moved", func(t *testing.T) {
		fx := createTestWishlistHandler(t)
		fx.wishlistUC.EXPECT().MoveToCart(mock.Anything, fx.userID, productID).
			Return(&entity.Cart{UserID: fx.userID, Items: []*entity.CartItem{{ProductID: productID, Quantity: 1}}}, nil)

		rec := doRequest(fx.e, http.MethodPost, "/api/v1/wishlist/"+productID.String()+"/move-to-cart", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Len(t, decodeData[entity.Cart](t, rec).Items, 1)
	})

	t.Run("out of stock", func(t *testing.T) {
		fx := createTestWishlistHandler(t)
		fx.wishlistUC.EXPECT().MoveToCart(mock.Anything, fx.userID, productID).
			Return(nil, errors.WithStack(domainerrors.ErrInsufficientStock))

		rec := doRequest(fx.e, http.MethodPost, "/api/v1/wishlist/"+productID.String()+"/move-to-cart", "")

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "INSUFFICIENT_STOCK", decodeEnvelope(t, rec).Code)
	})
}

func TestWishlistHandler_RemoveItem_BadProductID(t *testing.T) {
	fx := createTestWishlistHandler(t)

	rec := doRequest(fx.e, http.MethodDelete, "/api/v1/wishlist/shoe", "")

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid productId format", decodeEnvelope(t, rec).Message)
}
