package entity

import (
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderStatus is shared by the order and each of its lines.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusConfirmed  OrderStatus = "confirmed"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
	OrderStatusReturned   OrderStatus = "returned"
)

// fulfilment pipeline order; terminal states are not ranked.
var orderStatusRank = map[OrderStatus]int{
	OrderStatusPending:    0,
	OrderStatusConfirmed:  1,
	OrderStatusProcessing: 2,
	OrderStatusShipped:    3,
	OrderStatusDelivered:  4,
}

// IsValid reports whether s is a known status.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusProcessing, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled, OrderStatusReturned:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further transition is allowed.
func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusCancelled || s == OrderStatusReturned
}

// IsCancellableByOwner reports whether the buyer may still cancel.
func (s OrderStatus) IsCancellableByOwner() bool {
	return s == OrderStatusPending || s == OrderStatusConfirmed
}

// CanTransitionTo validates an administrative status change.
// Terminal states are final, delivered may only become returned, and
// fulfilment never moves backwards.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	if !next.IsValid() || s.IsTerminal() || s == next {
		return false
	}
	if s == OrderStatusDelivered {
		return next == OrderStatusReturned
	}
	if next.IsTerminal() {
		return true
	}

	return orderStatusRank[next] > orderStatusRank[s]
}

// PaymentMethod is how the buyer intends to pay.
type PaymentMethod string

const (
	PaymentMethodCard   PaymentMethod = "card"
	PaymentMethodPaypal PaymentMethod = "paypal"
	PaymentMethodStripe PaymentMethod = "stripe"
	PaymentMethodCOD    PaymentMethod = "cod"
)

// PaymentStatus is a passive field; no gateway drives it.
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
	PaymentStatusRefunded  PaymentStatus = "refunded"
)

// Payment is the payment sub-record of an order.
type Payment struct {
	Method        PaymentMethod `json:"method"`
	Status        PaymentStatus `json:"status"`
	TransactionID string        `json:"transaction_id,omitempty"`
	PaidAt        *time.Time    `json:"paid_at,omitempty"`
}

// Pricing is frozen from the cart at creation time.
type Pricing struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	Tax      decimal.Decimal `json:"tax"`
	Shipping decimal.Decimal `json:"shipping"`
	Discount decimal.Decimal `json:"discount"`
	Total    decimal.Decimal `json:"total"`
}

// OrderAddress is an address snapshot stored with the order.
type OrderAddress struct {
	FullName     string `json:"full_name"`
	Phone        string `json:"phone"`
	AddressLine1 string `json:"address_line1"`
	AddressLine2 string `json:"address_line2,omitempty"`
	City         string `json:"city"`
	State        string `json:"state"`
	Country      string `json:"country"`
	ZipCode      string `json:"zip_code"`
}

// IsZero reports whether no field is set.
func (a OrderAddress) IsZero() bool {
	return a == OrderAddress{}
}

// OrderItem is a frozen copy of a cart line.
type OrderItem struct {
	ID              uuid.UUID       `json:"id"`
	OrderID         uuid.UUID       `json:"order_id"`
	ProductID       uuid.UUID       `json:"product_id"`
	ListingID       *uuid.UUID      `json:"listing_id,omitempty"`
	VariantID       *uuid.UUID      `json:"variant_id,omitempty"`
	SellerID        uuid.UUID       `json:"seller_id"`
	ProductName     string          `json:"product_name"`
	VariantName     string          `json:"variant_name,omitempty"`
	Quantity        int             `json:"quantity"`
	PriceAtPurchase decimal.Decimal `json:"price_at_purchase"`
	Status          OrderStatus     `json:"status"`
	TrackingNumber  string          `json:"tracking_number,omitempty"`
	ShippedAt       *time.Time      `json:"shipped_at,omitempty"`
	DeliveredAt     *time.Time      `json:"delivered_at,omitempty"`
}

// Order is the immutable-after-creation record of a purchase.
type Order struct {
	ID                 uuid.UUID    `json:"id"`
	OrderNumber        string       `json:"order_number"`
	UserID             uuid.UUID    `json:"user_id"`
	Items              []*OrderItem `json:"items"`
	ShippingAddress    OrderAddress `json:"shipping_address"`
	BillingAddress     OrderAddress `json:"billing_address"`
	Payment            Payment      `json:"payment"`
	Pricing            Pricing      `json:"pricing"`
	Status             OrderStatus  `json:"order_status"`
	Notes              string       `json:"notes,omitempty"`
	CancellationReason string       `json:"cancellation_reason,omitempty"`
	CancelledAt        *time.Time   `json:"cancelled_at,omitempty"`
	CreatedAt          time.Time    `json:"created_at"`
	UpdatedAt          time.Time    `json:"updated_at"`
}

// FormatOrderNumber renders PREFIX-YYYYMMDD-NNNN.
func FormatOrderNumber(prefix string, day time.Time, seq int64) string {
	return fmt.Sprintf("%s-%s-%04d", prefix, day.Format("20060102"), seq)
}

// ApplyStatus sets the order status and mirrors it onto every line.
func (o *Order) ApplyStatus(status OrderStatus, now time.Time) {
	o.Status = status
	o.UpdatedAt = now
	for _, item := range o.Items {
		item.Status = status
		switch status {
		case OrderStatusShipped:
			item.ShippedAt = &now
		case OrderStatusDelivered:
			item.DeliveredAt = &now
		}
	}
}

// Cancel moves the order and its lines to cancelled.
func (o *Order) Cancel(reason string, now time.Time) {
	o.ApplyStatus(OrderStatusCancelled, now)
	o.CancellationReason = reason
	o.CancelledAt = &now
}

// MarkAsPaid completes the payment and confirms the order.
func (o *Order) MarkAsPaid(transactionID string, now time.Time) {
	o.Payment.Status = PaymentStatusCompleted
	o.Payment.TransactionID = transactionID
	o.Payment.PaidAt = &now
	o.ApplyStatus(OrderStatusConfirmed, now)
}

// SellerIDs lists the distinct sellers of the order lines.
func (o *Order) SellerIDs() []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(o.Items))
	for _, item := range o.Items {
		if !slices.Contains(ids, item.SellerID) {
			ids = append(ids, item.SellerID)
		}
	}

	return ids
}

// HasSeller reports whether any line belongs to the seller.
func (o *Order) HasSeller(sellerID uuid.UUID) bool {
	return slices.Contains(o.SellerIDs(), sellerID)
}

// ContainsProduct reports whether any line is for the product.
func (o *Order) ContainsProduct(productID uuid.UUID) bool {
	for _, item := range o.Items {
		if item.ProductID == productID {
			return true
		}
	}

	return false
}
