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

type orderHandlerFixtures struct {
	e       *echo.Echo
	actor   usecase.Actor
	orderUC *mockUsecase.MockOrderUsecase
}

func createTestOrderHandler(t *testing.T, role entity.RoleName) orderHandlerFixtures {
	fx := orderHandlerFixtures{
		e:       newTestEcho(),
		actor:   usecase.Actor{UserID: uuid.New(), Role: role},
		orderUC: mockUsecase.NewMockOrderUsecase(t),
	}

	h := NewOrderHandler(OrderHandlerParams{OrderUC: fx.orderUC, Logger: discardLogger})
	g := fx.e.Group("/api/v1/orders", asCaller(fx.actor.UserID, role))
	g.POST("", h.CreateOrder)
	g.GET("", h.ListMyOrders)
	g.GET("/seller/:sellerId", h.ListSellerOrders)
	g.GET("/:id", h.GetOrder)
	g.GET("/:id/qr", h.OrderQR)
	g.POST("/:id/cancel", h.CancelOrder)
	g.PUT("/:id/status", h.UpdateStatus)
	g.POST("/:id/pay", h.MarkAsPaid)

	return fx
}

func TestOrderHandler_CreateOrder(t *testing.T) {
	fx := createTestOrderHandler(t, entity.RoleCustomer)
	addressID := uuid.New()
	order := &entity.Order{ID: uuid.New(), OrderNumber: "ORD-20260301-0001", UserID: fx.actor.UserID, Status: entity.OrderStatusPending}

	fx.orderUC.EXPECT().CreateOrder(mock.Anything, fx.actor.UserID, &usecase.CreateOrderInput{
		ShippingAddressID: &addressID,
		PaymentMethod:     entity.PaymentMethodCOD,
		Notes:             "leave at the door",
	}).Return(order, nil)

	rec := doRequest(fx.e, http.MethodPost, "/api/v1/orders",
		`{"shipping_address_id":"`+addressID.String()+`","payment":{"method":"cod"},"notes":"leave at the door"}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	got := decodeData[entity.Order](t, rec)
	assert.Equal(t, "ORD-20260301-0001", got.OrderNumber)
	assert.Equal(t, entity.OrderStatusPending, got.Status)
}

func TestOrderHandler_CreateOrder_InlineAddress(t *testing.T) {
	fx := createTestOrderHandler(t, entity.RoleCustomer)

	fx.orderUC.EXPECT().CreateOrder(mock.Anything, fx.actor.UserID, mock.MatchedBy(func(in *usecase.CreateOrderInput) bool {
		return in.ShippingAddress != nil &&
			in.ShippingAddress.City == "Lyon" &&
			in.ShippingAddressID == nil &&
			in.PaymentMethod == entity.PaymentMethodCard
	})).Return(&entity.Order{}, nil)

	rec := doRequest(fx.e, http.MethodPost, "/api/v1/orders",
		`{"shipping_address":{"full_name":"Marie Curie","phone":"+33 4 00 00 00","address_line1":"1 Rue X","city":"Lyon","state":"ARA","country":"FR","zip_code":"69001"},"payment":{"method":"card"}}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestOrderHandler_CreateOrder_BadPaymentMethod(t *testing.T) {
	fx := createTestOrderHandler(t, entity.RoleCustomer)

	rec := doRequest(fx.e, http.MethodPost, "/api/v1/orders", `{"payment":{"method":"bitcoin"}}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.Equal(t, "VALIDATION_FAILED", env.Code)
	assert.Equal(t, "must be one of: card, paypal, stripe, cod", env.Details["payment.method"])
}

func TestOrderHandler_CreateOrder_EmptyCart(t *testing.T) {
	fx := createTestOrderHandler(t, entity.RoleCustomer)

	fx.orderUC.EXPECT().CreateOrder(mock.Anything, fx.actor.UserID, mock.Anything).
		Return(nil, errors.WithStack(domainerrors.ErrEmptyCart))

	rec := doRequest(fx.e, http.MethodPost, "/api/v1/orders", `{"payment":{"method":"card"}}`)

	assert.Equal(t, domainerrors.ErrEmptyCart.HTTPCode(), rec.Code)
	assert.Equal(t, domainerrors.ErrEmptyCart.ErrorCode(), decodeEnvelope(t, rec).Code)
}

func TestOrderHandler_GetOrder_PassesActor(t *testing.T) {
	fx := createTestOrderHandler(t, entity.RoleSupport)
	orderID := uuid.New()

	fx.orderUC.EXPECT().GetOrder(mock.Anything, fx.actor, orderID).Return(nil, errors.WithStack(domainerrors.ErrForbidden))

	rec := doRequest(fx.e, http.MethodGet, "/api/v1/orders/"+orderID.String(), "")

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestOrderHandler_ListMyOrders(t *testing.T) {
	fx := createTestOrderHandler(t, entity.RoleCustomer)
	page := entity.NewPage([]*entity.Order{{ID: uuid.New()}}, 1, entity.Pagination{Page: 2, Limit: 100})

	fx.orderUC.EXPECT().ListMyOrders(mock.Anything, fx.actor.UserID,
		repository.OrderFilter{Status: entity.OrderStatusShipped},
		entity.Pagination{Page: 2, Limit: 100},
	).Return(page, nil)

	rec := doRequest(fx.e, http.MethodGet, "/api/v1/orders?status=shipped&page=2&limit=500", "")

	require.Equal(t, http.StatusOK, rec.Code)
	got := decodeData[entity.Page[*entity.Order]](t, rec)
	assert.Len(t, got.Items, 1)
	assert.Equal(t, 2, got.Page)
}

func TestOrderHandler_ListSellerOrders_BadSellerID(t *testing.T) {
	fx := createTestOrderHandler(t, entity.RoleSeller)

	rec := doRequest(fx.e, http.MethodGet, "/api/v1/orders/seller/42", "")

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid sellerId format", decodeEnvelope(t, rec).Message)
}

func TestOrderHandler_CancelOrder(t *testing.T) {
	fx := createTestOrderHandler(t, entity.RoleCustomer)
	orderID := uuid.New()

	fx.orderUC.EXPECT().CancelOrder(mock.Anything, fx.actor.UserID, orderID, "changed my mind").
		Return(&entity.Order{ID: orderID, Status: entity.OrderStatusCancelled}, nil)

	rec := doRequest(fx.e, http.MethodPost, "/api/v1/orders/"+orderID.String()+"/cancel", `{"reason":"changed my mind"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, entity.OrderStatusCancelled, decodeData[entity.Order](t, rec).Status)
}

func TestOrderHandler_UpdateStatus(t *testing.T) {
	orderID := uuid.New()

	t.Run("unknown status", func(t *testing.T) {
		fx := createTestOrderHandler(t, entity.RoleSeller)

		rec := doRequest(fx.e, http.MethodPut, "/api/v1/orders/"+orderID.String()+"/status", `{"status":"teleported"}`)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "must be a valid order status", decodeEnvelope(t, rec).Details["status"])
	})

	t.Run("illegal transition", func(t *testing.T) {
		fx := createTestOrderHandler(t, entity.RoleSeller)
		fx.orderUC.EXPECT().UpdateOrderStatus(mock.Anything, fx.actor, orderID, entity.OrderStatusDelivered).
			Return(nil, errors.WithStack(domainerrors.ErrIllegalStatusTransition))

		rec := doRequest(fx.e, http.MethodPut, "/api/v1/orders/"+orderID.String()+"/status", `{"status":"delivered"}`)

		assert.Equal(t, domainerrors.ErrIllegalStatusTransition.HTTPCode(), rec.Code)
	})
}

func TestOrderHandler_MarkAsPaid_RequiresTransaction(t *testing.T) {
	fx := createTestOrderHandler(t, entity.RoleAdmin)

	rec := doRequest(fx.e, http.MethodPost, "/api/v1/orders/"+uuid.NewString()+"/pay", `{}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "is required", decodeEnvelope(t, rec).Details["transaction_id"])
}

func TestOrderHandler_OrderQR(t *testing.T) {
	fx := createTestOrderHandler(t, entity.RoleCustomer)
	orderID := uuid.New()
	png := []byte{0x89, 'P', 'N', 'G'}

	fx.orderUC.EXPECT().OrderQR(mock.Anything, fx.actor, orderID).Return(png, nil)

	rec := doRequest(fx.e, http.MethodGet, "/api/v1/orders/"+orderID.String()+"/qr", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, png, rec.Body.Bytes())
}
