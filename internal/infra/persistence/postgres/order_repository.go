package postgres

import (
	"context"
	"time"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// nextSequenceSQL increments the day's counter in one statement; the first order of a day starts at 1.
const nextSequenceSQL = `INSERT INTO order_sequences (day, value) VALUES (?::date, 1)
ON CONFLICT (day) DO UPDATE SET value = order_sequences.value + 1
RETURNING value`

// sellerSummarySQL aggregates a seller's lines. Revenue only counts fulfilled or in-flight orders.
const sellerSummarySQL = `SELECT
	COUNT(DISTINCT o.id) FILTER (WHERE o.order_status IN ('processing', 'shipped', 'delivered')) AS total_orders,
	COUNT(DISTINCT o.id) FILTER (WHERE o.order_status = 'pending') AS pending_orders,
	COALESCE(SUM(oi.price_at_purchase * oi.quantity) FILTER (WHERE o.order_status IN ('processing', 'shipped', 'delivered')), 0) AS revenue
FROM order_items oi
JOIN orders o ON o.id = oi.order_id
WHERE oi.seller_id = ?`

type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{db: db}
}

// Create persists the order header and its lines.
func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	order.ID = newID(order.ID)
	orderM := fromOrderDomain(order)

	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WithDetails("order number already issued")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	order.CreatedAt = orderM.CreatedAt
	order.UpdatedAt = orderM.UpdatedAt

	return nil
}

// FindByID loads an order with its lines.
func (repo *orderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	return repo.find(repo.db.WithContext(ctx), id)
}

// FindByIDForUpdate row-locks the order header until the transaction ends.
func (repo *orderRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	return repo.find(repo.db.WithContext(ctx).Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}), id)
}

func (repo *orderRepository) find(db *gorm.DB, id uuid.UUID) (*entity.Order, error) {
	var orderM model.OrderModel

	if err := db.
		Preload("Items", orderItemsByPosition).
		Where("id = ?", id).
		First(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order")
	}

	return toOrderDomain(&orderM), nil
}

// Update writes the mutable parts of an order. Line snapshots are never rewritten.
func (repo *orderRepository) Update(ctx context.Context, order *entity.Order) error {
	order.UpdatedAt = time.Now()

	return repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&model.OrderModel{}).
			Where("id = ?", order.ID).
			Updates(map[string]any{
				"order_status":           string(order.Status),
				"payment_status":         string(order.Payment.Status),
				"payment_transaction_id": order.Payment.TransactionID,
				"paid_at":                order.Payment.PaidAt,
				"cancellation_reason":    order.CancellationReason,
				"cancelled_at":           order.CancelledAt,
				"updated_at":             order.UpdatedAt,
			})
		if result.Error != nil {
			return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update order")
		}
		if result.RowsAffected == 0 {
			return repository.ErrOrderNotFound
		}

		for _, item := range order.Items {
			if err := tx.Model(&model.OrderItemModel{}).
				Where("id = ?", item.ID).
				Updates(map[string]any{
					"status":          string(item.Status),
					"tracking_number": item.TrackingNumber,
					"shipped_at":      item.ShippedAt,
					"delivered_at":    item.DeliveredAt,
				}).Error; err != nil {
				return domainerrors.NewDatabaseExecuteError(err, "failed to update order item")
			}
		}

		return nil
	})
}

// ListByUser returns a page of the user's orders, newest first.
func (repo *orderRepository) ListByUser(ctx context.Context, userID uuid.UUID, filter repository.OrderFilter, page entity.Pagination) ([]*entity.Order, int64, error) {
	query := repo.db.WithContext(ctx).Model(&model.OrderModel{}).Where("orders.user_id = ?", userID)

	return repo.list(query, filter, page)
}

// ListBySeller returns a page of orders holding at least one line of the seller.
func (repo *orderRepository) ListBySeller(ctx context.Context, sellerID uuid.UUID, filter repository.OrderFilter, page entity.Pagination) ([]*entity.Order, int64, error) {
	query := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("EXISTS (SELECT 1 FROM order_items oi WHERE oi.order_id = orders.id AND oi.seller_id = ?)", sellerID)

	return repo.list(query, filter, page)
}

func (repo *orderRepository) list(query *gorm.DB, filter repository.OrderFilter, page entity.Pagination) ([]*entity.Order, int64, error) {
	if filter.Status != "" {
		query = query.Where("orders.order_status = ?", string(filter.Status))
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count orders")
	}

	var orderModels []*model.OrderModel
	if err := query.
		Preload("Items", orderItemsByPosition).
		Scopes(paginate(page)).
		Order("orders.created_at DESC").
		Find(&orderModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list orders")
	}

	orders := make([]*entity.Order, 0, len(orderModels))
	for _, orderM := range orderModels {
		orders = append(orders, toOrderDomain(orderM))
	}

	return orders, total, nil
}

// NextSequence atomically increments and returns the counter for the calendar day.
func (repo *orderRepository) NextSequence(ctx context.Context, day time.Time) (int64, error) {
	var value int64

	if err := repo.db.WithContext(ctx).
		Raw(nextSequenceSQL, day.Format(time.DateOnly)).
		Scan(&value).Error; err != nil {
		return 0, errors.Wrap(err, "failed to advance order sequence")
	}

	return value, nil
}

// FindDeliveredWithProduct returns the most recent delivered order of the user containing the product.
func (repo *orderRepository) FindDeliveredWithProduct(ctx context.Context, userID, productID uuid.UUID) (uuid.UUID, error) {
	var ids []uuid.UUID

	if err := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Joins("JOIN order_items oi ON oi.order_id = orders.id").
		Where("orders.user_id = ? AND oi.product_id = ? AND orders.order_status = ?", userID, productID, string(entity.OrderStatusDelivered)).
		Order("orders.created_at DESC").
		Limit(1).
		Pluck("orders.id", &ids).Error; err != nil {
		return uuid.Nil, errors.Wrap(err, "failed to look up delivered order")
	}
	if len(ids) == 0 {
		return uuid.Nil, repository.ErrOrderNotFound
	}

	return ids[0], nil
}

// SellerSummary aggregates order counts and revenue over the seller's own lines.
func (repo *orderRepository) SellerSummary(ctx context.Context, sellerID uuid.UUID) (repository.SellerOrderSummary, error) {
	var row struct {
		TotalOrders   int64
		PendingOrders int64
		Revenue       decimal.Decimal
	}

	if err := repo.db.WithContext(ctx).Raw(sellerSummarySQL, sellerID).Scan(&row).Error; err != nil {
		return repository.SellerOrderSummary{}, errors.Wrap(err, "failed to summarise seller orders")
	}

	return repository.SellerOrderSummary{
		TotalOrders:   row.TotalOrders,
		PendingOrders: row.PendingOrders,
		Revenue:       row.Revenue,
	}, nil
}

func orderItemsByPosition(db *gorm.DB) *gorm.DB {
	return db.Order("position ASC")
}

// --- Mapper Functions ---

func toOrderAddress(data model.OrderAddressColumns) entity.OrderAddress {
	return entity.OrderAddress{
		FullName:     data.FullName,
		Phone:        data.Phone,
		AddressLine1: data.AddressLine1,
		AddressLine2: data.AddressLine2,
		City:         data.City,
		State:        data.State,
		Country:      data.Country,
		ZipCode:      data.ZipCode,
	}
}

func fromOrderAddress(data entity.OrderAddress) model.OrderAddressColumns {
	return model.OrderAddressColumns{
		FullName:     data.FullName,
		Phone:        data.Phone,
		AddressLine1: data.AddressLine1,
		AddressLine2: data.AddressLine2,
		City:         data.City,
		State:        data.State,
		Country:      data.Country,
		ZipCode:      data.ZipCode,
	}
}

func toOrderDomain(data *model.OrderModel) *entity.Order {
	order := &entity.Order{
		ID:              data.ID,
		OrderNumber:     data.OrderNumber,
		UserID:          data.UserID,
		Items:           make([]*entity.OrderItem, 0, len(data.Items)),
		ShippingAddress: toOrderAddress(data.Shipping),
		BillingAddress:  toOrderAddress(data.Billing),
		Payment: entity.Payment{
			Method:        entity.PaymentMethod(data.PaymentMethod),
			Status:        entity.PaymentStatus(data.PaymentStatus),
			TransactionID: data.PaymentTransactionID,
			PaidAt:        data.PaidAt,
		},
		Pricing: entity.Pricing{
			Subtotal: data.Subtotal,
			Tax:      data.Tax,
			Shipping: data.ShippingCost,
			Discount: data.Discount,
			Total:    data.Total,
		},
		Status:             entity.OrderStatus(data.OrderStatus),
		Notes:              data.Notes,
		CancellationReason: data.CancellationReason,
		CancelledAt:        data.CancelledAt,
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}

	for i := range data.Items {
		item := &data.Items[i]
		order.Items = append(order.Items, &entity.OrderItem{
			ID:              item.ID,
			OrderID:         item.OrderID,
			ProductID:       item.ProductID,
			ListingID:       item.ListingID,
			VariantID:       item.VariantID,
			SellerID:        item.SellerID,
			ProductName:     item.ProductName,
			VariantName:     item.VariantName,
			Quantity:        item.Quantity,
			PriceAtPurchase: item.PriceAtPurchase,
			Status:          entity.OrderStatus(item.Status),
			TrackingNumber:  item.TrackingNumber,
			ShippedAt:       item.ShippedAt,
			DeliveredAt:     item.DeliveredAt,
		})
	}

	return order
}

func fromOrderDomain(data *entity.Order) *model.OrderModel {
	orderM := &model.OrderModel{
		ID:                   data.ID,
		OrderNumber:          data.OrderNumber,
		UserID:               data.UserID,
		Items:                make([]model.OrderItemModel, 0, len(data.Items)),
		Shipping:             fromOrderAddress(data.ShippingAddress),
		Billing:              fromOrderAddress(data.BillingAddress),
		PaymentMethod:        string(data.Payment.Method),
		PaymentStatus:        string(data.Payment.Status),
		PaymentTransactionID: data.Payment.TransactionID,
		PaidAt:               data.Payment.PaidAt,
		Subtotal:             data.Pricing.Subtotal,
		Tax:                  data.Pricing.Tax,
		ShippingCost:         data.Pricing.Shipping,
		Discount:             data.Pricing.Discount,
		Total:                data.Pricing.Total,
		OrderStatus:          string(data.Status),
		Notes:                data.Notes,
		CancellationReason:   data.CancellationReason,
		CancelledAt:          data.CancelledAt,
		CreatedAt:            data.CreatedAt,
		UpdatedAt:            data.UpdatedAt,
	}

	for i, item := range data.Items {
		item.ID = newID(item.ID)
		item.OrderID = data.ID
		orderM.Items = append(orderM.Items, model.OrderItemModel{
			ID:              item.ID,
			OrderID:         data.ID,
			ProductID:       item.ProductID,
			ListingID:       item.ListingID,
			VariantID:       item.VariantID,
			SellerID:        item.SellerID,
			ProductName:     item.ProductName,
			VariantName:     item.VariantName,
			Quantity:        item.Quantity,
			PriceAtPurchase: item.PriceAtPurchase,
			Status:          string(item.Status),
			TrackingNumber:  item.TrackingNumber,
			Position:        i,
			ShippedAt:       item.ShippedAt,
			DeliveredAt:     item.DeliveredAt,
		})
	}

	return orderM
}
