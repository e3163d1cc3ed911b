package repository

import (
	"context"
	"errors"
	"time"

	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ErrOrderNotFound is returned when an order id is unknown.
var ErrOrderNotFound = errors.New("order not found")

// OrderFilter narrows order listings.
type OrderFilter struct {
	Status entity.OrderStatus
}

// SellerOrderSummary aggregates the orders holding at least one line of a seller.
type SellerOrderSummary struct {
	TotalOrders   int64
	PendingOrders int64
	// Revenue sums the seller's own lines of processing, shipped and delivered orders.
	Revenue decimal.Decimal
}

// OrderRepository persists orders with their lines.
type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// FindByIDForUpdate loads the order and row-locks it until the transaction ends.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// Update writes status, payment and cancellation fields and every line status.
	Update(ctx context.Context, order *entity.Order) error

	ListByUser(ctx context.Context, userID uuid.UUID, filter OrderFilter, page entity.Pagination) ([]*entity.Order, int64, error)
	ListBySeller(ctx context.Context, sellerID uuid.UUID, filter OrderFilter, page entity.Pagination) ([]*entity.Order, int64, error)

	// NextSequence atomically increments and returns the counter for the given day.
	NextSequence(ctx context.Context, day time.Time) (int64, error)

	// FindDeliveredWithProduct returns the id of a delivered order of the user containing the product.
	// Returns ErrOrderNotFound when none exists.
	FindDeliveredWithProduct(ctx context.Context, userID, productID uuid.UUID) (uuid.UUID, error)

	SellerSummary(ctx context.Context, sellerID uuid.UUID) (SellerOrderSummary, error)
}
