package handler

import (
	"net/http"
	"testing"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	mockUsecase "marketplace/internal/mocks/usecase"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type cartHandlerFixtures struct {
	e      *echo.Echo
	userID uuid.UUID
	cartUC *mockUsecase.MockCartUsecase
}

func createTestCartHandler(t *testing.T) cartHandlerFixtures {
	fx := cartHandlerFixtures{
		e:      newTestEcho(),
		userID: uuid.New(),
		cartUC: mockUsecase.NewMockCartUsecase(t),
	}

	h := NewCartHandler(CartHandlerParams{CartUC: fx.cartUC, Logger: discardLogger})
	g := fx.e.Group("/api/v1/cart", asCaller(fx.userID, entity.RoleCustomer))
	g.GET("", h.GetCart)
	g.POST("/add", h.AddItem)
	g.PUT("/:id", h.UpdateItem)
	g.DELETE("/:id", h.RemoveItem)
	g.GET("/count", h.ItemCount)
	g.POST("/sync", h.SyncCart)

	anon := fx.e.Group("/anon/cart")
	anon.GET("", h.GetCart)

	return fx
}

func TestCartHandler_GetCart(t *testing.T) {
	fx := createTestCartHandler(t)
	cart := &entity.Cart{ID: uuid.New(), UserID: fx.userID, Items: []*entity.CartItem{}, Total: decimal.NewFromInt(0)}

	fx.cartUC.EXPECT().GetCart(mock.Anything, fx.userID).Return(cart, nil)

	rec := doRequest(fx.e, http.MethodGet, "/api/v1/cart", "")

	require.Equal(t, http.StatusOK, rec.Code)
	got := decodeData[entity.Cart](t, rec)
	assert.Equal(t, cart.ID, got.ID)
	assert.Equal(t, fx.userID, got.UserID)
}

func TestCartHandler_GetCart_Anonymous(t *testing.T) {
	fx := createTestCartHandler(t)

	rec := doRequest(fx.e, http.MethodGet, "/anon/cart", "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "UNAUTHORIZED", decodeEnvelope(t, rec).Code)
}

func TestCartHandler_AddItem(t *testing.T) {
	fx := createTestCartHandler(t)
	productID := uuid.New()
	listingID := uuid.New()

	fx.cartUC.EXPECT().AddItem(mock.Anything, fx.userID, &usecase.AddCartItemInput{
		ProductID: productID,
		ListingID: &listingID,
		Quantity:  2,
	}).Return(&entity.Cart{UserID: fx.userID}, nil)

	rec := doRequest(fx.e, http.MethodPost, "/api/v1/cart/add",
		`{"product_id":"`+productID.String()+`","listing_id":"`+listingID.String()+`","quantity":2}`)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCartHandler_AddItem_Validation(t *testing.T) {
	fx := createTestCartHandler(t)

	rec := doRequest(fx.e, http.MethodPost, "/api/v1/cart/add", `{"product_id":"`+uuid.NewString()+`","quantity":0}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.Equal(t, "VALIDATION_FAILED", env.Code)
	assert.Contains(t, env.Details, "quantity")
}

func TestCartHandler_AddItem_InsufficientStock(t *testing.T) {
	fx := createTestCartHandler(t)

	fx.cartUC.EXPECT().AddItem(mock.Anything, fx.userID, mock.Anything).
		Return(nil, errors.WithStack(domainerrors.ErrInsufficientStock))

	rec := doRequest(fx.e, http.MethodPost, "/api/v1/cart/add", `{"product_id":"`+uuid.NewString()+`","quantity":99}`)

	assert.Equal(t, domainerrors.ErrInsufficientStock.HTTPCode(), rec.Code)
	assert.Equal(t, domainerrors.ErrInsufficientStock.ErrorCode(), decodeEnvelope(t, rec).Code)
}

func TestCartHandler_UpdateItem_Ref(t *testing.T) {
	id := uuid.New()

	tests := []struct {
		name  string
		query string
		want  entity.CartItemRef
	}{
		{name: "product line", query: "", want: entity.ByProduct(id)},
		{name: "listing line", query: "?by=listing", want: entity.ByListing(id)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestCartHandler(t)
			fx.cartUC.EXPECT().UpdateItemQuantity(mock.Anything, fx.userID, tt.want, 0).Return(&entity.Cart{}, nil)

			rec := doRequest(fx.e, http.MethodPut, "/api/v1/cart/"+id.String()+tt.query, `{"quantity":0}`)

			assert.Equal(t, http.StatusOK, rec.Code)
		})
	}
}

func TestCartHandler_RemoveItem_BadID(t *testing.T) {
	fx := createTestCartHandler(t)

	rec := doRequest(fx.e, http.MethodDelete, "/api/v1/cart/not-a-uuid", "")

	require.Equal(t, http.StatusBadRequest, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.Equal(t, "VALIDATION_FAILED", env.Code)
	assert.Equal(t, "Invalid id format", env.Message)
}

func TestCartHandler_ItemCount(t *testing.T) {
	fx := createTestCartHandler(t)

	fx.cartUC.EXPECT().ItemCount(mock.Anything, fx.userID).Return(7, nil)

	rec := doRequest(fx.e, http.MethodGet, "/api/v1/cart/count", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, CartCountResponse{Count: 7}, decodeData[CartCountResponse](t, rec))
}

func TestCartHandler_SyncCart(t *testing.T) {
	fx := createTestCartHandler(t)
	productID := uuid.New()

	fx.cartUC.EXPECT().SyncCart(mock.Anything, fx.userID, []usecase.SyncCartItem{
		{ProductID: &productID, Quantity: 3},
	}).Return(&entity.Cart{}, nil)

	rec := doRequest(fx.e, http.MethodPost, "/api/v1/cart/sync", `{"items":[{"product_id":"`+productID.String()+`","quantity":3}]}`)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCartHandler_SyncCart_InvalidLine(t *testing.T) {
	fx := createTestCartHandler(t)

	rec := doRequest(fx.e, http.MethodPost, "/api/v1/cart/sync", `{"items":[{"product_id":"`+uuid.NewString()+`","quantity":0}]}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "must be at least 1", decodeEnvelope(t, rec).Details["items[0].quantity"])
}
