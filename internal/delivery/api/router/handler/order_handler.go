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

// OrderHandlerParams holds dependencies for OrderHandler, injected by Fx.
type OrderHandlerParams struct {
	fx.In

	OrderUC usecase.OrderUsecase
	Logger  *slog.Logger
}

// OrderHandler serves checkout and the order lifecycle.
type OrderHandler struct {
	orderUC usecase.OrderUsecase
	logger  *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler.
func NewOrderHandler(params OrderHandlerParams) *OrderHandler {
	return &OrderHandler{
		orderUC: params.OrderUC,
		logger:  params.Logger,
	}
}

// CreateOrderRequest is the body of POST /orders.
type CreateOrderRequest struct {
	ShippingAddress   *entity.OrderAddress `json:"shipping_address"`
	ShippingAddressID *uuid.UUID           `json:"shipping_address_id"`
	BillingAddress    *entity.OrderAddress `json:"billing_address"`
	Payment           PaymentRequest       `json:"payment"`
	Notes             string               `json:"notes" validate:"max=1000"`
}

// PaymentRequest selects the payment method.
type PaymentRequest struct {
	Method string `json:"method" validate:"required,oneof=card paypal stripe cod"`
}

// CancelOrderRequest is the body of POST /orders/:id/cancel.
type CancelOrderRequest struct {
	Reason string `json:"reason" validate:"max=500"`
}

// UpdateOrderStatusRequest is the body of PUT /orders/:id/status.
type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required,order_status"`
}

// MarkAsPaidRequest is the body of POST /orders/:id/pay.
type MarkAsPaidRequest struct {
	TransactionID string `json:"transaction_id" validate:"required,max=128"`
}

// CreateOrder checks out the caller's cart.
func (h *OrderHandler) CreateOrder(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req CreateOrderRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	order, err := h.orderUC.CreateOrder(c.Request().Context(), userID, &usecase.CreateOrderInput{
		ShippingAddress:   req.ShippingAddress,
		ShippingAddressID: req.ShippingAddressID,
		BillingAddress:    req.BillingAddress,
		PaymentMethod:     entity.PaymentMethod(req.Payment.Method),
		Notes:             req.Notes,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Created(c, order)
}

// GetOrder returns an order the caller may view.
func (h *OrderHandler) GetOrder(c echo.Context) error {
	actor, err := currentActor(c)
	if err != nil {
		return err
	}
	orderID, err := paramUUID(c, "id")
	if err != nil {
		return err
	}

	order, err := h.orderUC.GetOrder(c.Request().Context(), actor, orderID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, order)
}

// ListMyOrders pages through the caller's orders.
func (h *OrderHandler) ListMyOrders(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	filter := repository.OrderFilter{Status: entity.OrderStatus(c.QueryParam("status"))}
	page, err := h.orderUC.ListMyOrders(c.Request().Context(), userID, filter, pagination(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, page)
}

// ListSellerOrders pages through the orders holding a seller's lines.
func (h *OrderHandler) ListSellerOrders(c echo.Context) error {
	actor, err := currentActor(c)
	if err != nil {
		return err
	}
	sellerID, err := paramUUID(c, "sellerId")
	if err != nil {
		return err
	}

	filter := repository.OrderFilter{Status: entity.OrderStatus(c.QueryParam("status"))}
	page, err := h.orderUC.ListSellerOrders(c.Request().Context(), actor, sellerID, filter, pagination(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, page)
}

// CancelOrder cancels one of the caller's orders and restores stock.
func (h *OrderHandler) CancelOrder(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	orderID, err := paramUUID(c, "id")
	if err != nil {
		return err
	}

	var req CancelOrderRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	order, err := h.orderUC.CancelOrder(c.Request().Context(), userID, orderID, req.Reason)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, order)
}

// UpdateStatus moves an order forward in its lifecycle.
func (h *OrderHandler) UpdateStatus(c echo.Context) error {
	actor, err := currentActor(c)
	if err != nil {
		return err
	}
	orderID, err := paramUUID(c, "id")
	if err != nil {
		return err
	}

	var req UpdateOrderStatusRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	order, err := h.orderUC.UpdateOrderStatus(c.Request().Context(), actor, orderID, entity.OrderStatus(req.Status))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, order)
}

// MarkAsPaid records a completed payment.
func (h *OrderHandler) MarkAsPaid(c echo.Context) error {
	orderID, err := paramUUID(c, "id")
	if err != nil {
		return err
	}

	var req MarkAsPaidRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	order, err := h.orderUC.MarkAsPaid(c.Request().Context(), orderID, req.TransactionID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, order)
}

// OrderQR renders the order lookup QR code as a PNG.
func (h *OrderHandler) OrderQR(c echo.Context) error {
	actor, err := currentActor(c)
	if err != nil {
		return err
	}
	orderID, err := paramUUID(c, "id")
	if err != nil {
		return err
	}

	png, err := h.orderUC.OrderQR(c.Request().Context(), actor, orderID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
