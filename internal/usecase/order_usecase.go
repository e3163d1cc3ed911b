package usecase

import (
	"context"

	"marketplace/internal/domain/entity"
	"marketplace/internal/domain/repository"

	"github.com/google/uuid"
)

// CreateOrderInput defines checkout data. When ShippingAddress is nil the
// saved address ShippingAddressID, or else the default address, is used.
type CreateOrderInput struct {
	ShippingAddress   *entity.OrderAddress
	ShippingAddressID *uuid.UUID
	// BillingAddress defaults to the shipping address.
	BillingAddress *entity.OrderAddress
	PaymentMethod  entity.PaymentMethod
	Notes          string
}

// OrderUsecase defines the order lifecycle.
type OrderUsecase interface {
	// CreateOrder turns the caller's cart into an order in one transaction.
	CreateOrder(ctx context.Context, userID uuid.UUID, input *CreateOrderInput) (*entity.Order, error)
	// GetOrder is allowed for the owner, staff, and sellers holding a line of the order.
	GetOrder(ctx context.Context, actor Actor, orderID uuid.UUID) (*entity.Order, error)
	ListMyOrders(ctx context.Context, userID uuid.UUID, filter repository.OrderFilter, page entity.Pagination) (*entity.Page[*entity.Order], error)
	// ListSellerOrders lets sellers list their own orders and admins any seller's.
	ListSellerOrders(ctx context.Context, actor Actor, sellerID uuid.UUID, filter repository.OrderFilter, page entity.Pagination) (*entity.Page[*entity.Order], error)
	CancelOrder(ctx context.Context, userID, orderID uuid.UUID, reason string) (*entity.Order, error)
	UpdateOrderStatus(ctx context.Context, actor Actor, orderID uuid.UUID, status entity.OrderStatus) (*entity.Order, error)
	MarkAsPaid(ctx context.Context, orderID uuid.UUID, transactionID string) (*entity.Order, error)
	// OrderQR renders a PNG QR code for an order the actor may view.
	OrderQR(ctx context.Context, actor Actor, orderID uuid.UUID) ([]byte, error)
}
