package impl

import (
	"context"
	"log/slog"
	"time"

	"marketplace/config"
	deliverycontext "marketplace/internal/delivery/context"
	"marketplace/internal/domain/constants"
	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/domain/service"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

const defaultOrderNumberPrefix = "ORD"

// Failure reasons recorded on the orders_failed counter.
const (
	failureEmptyCart         = "empty_cart"
	failureInsufficientStock = "insufficient_stock"
	failureInvalidInput      = "invalid_input"
	failureInternal          = "internal"
)

// orderService implements the OrderUsecase interface.
type orderService struct {
	txManager   repository.TransactionManager
	orderRepo   repository.OrderRepository
	userRepo    repository.UserRepository
	addressRepo repository.AddressRepository
	sellerRepo  repository.SellerRepository
	publisher   service.EventPublisher
	mailer      service.Mailer
	metrics     service.OrderMetrics
	qrService   service.QRCodeService
	cache       service.ProductCache
	prefix      string
	logger      *slog.Logger
	clock       clock
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	OrderRepo   repository.OrderRepository
	UserRepo    repository.UserRepository
	AddressRepo repository.AddressRepository
	SellerRepo  repository.SellerRepository
	Publisher   service.EventPublisher
	Mailer      service.Mailer
	Metrics     service.OrderMetrics
	QRService   service.QRCodeService
	Cache       service.ProductCache
	Config      *config.Config
	Logger      *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	prefix := defaultOrderNumberPrefix
	if params.Config != nil && params.Config.Shop != nil && params.Config.Shop.OrderNumberPrefix != "" {
		prefix = params.Config.Shop.OrderNumberPrefix
	}

	return &orderService{
		txManager:   params.TxManager,
		orderRepo:   params.OrderRepo,
		userRepo:    params.UserRepo,
		addressRepo: params.AddressRepo,
		sellerRepo:  params.SellerRepo,
		publisher:   params.Publisher,
		mailer:      params.Mailer,
		metrics:     params.Metrics,
		qrService:   params.QRService,
		cache:       params.Cache,
		prefix:      prefix,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.LoggerOr(ctx, srv.logger)
}

func validPaymentMethod(m entity.PaymentMethod) bool {
	switch m {
	case entity.PaymentMethodCard, entity.PaymentMethodPaypal, entity.PaymentMethodStripe, entity.PaymentMethodCOD:
		return true
	default:
		return false
	}
}

// CreateOrder converts the locked cart into an order. Stock decrement, numbering,
// order insert and cart clear commit or roll back together.
func (srv *orderService) CreateOrder(ctx context.Context, userID uuid.UUID, input *usecase.CreateOrderInput) (*entity.Order, error) {
	if !validPaymentMethod(input.PaymentMethod) {
		srv.metrics.OrderFailed(failureInvalidInput)

		return nil, errors.Wrap(domainerrors.ErrValidationFailed.WithMessage("Payment method must be card, paypal, stripe or cod"), "create order")
	}

	shipping, err := srv.resolveShippingAddress(ctx, userID, input)
	if err != nil {
		srv.metrics.OrderFailed(failureInvalidInput)

		return nil, err
	}
	billing := shipping
	if input.BillingAddress != nil && !input.BillingAddress.IsZero() {
		billing = *input.BillingAddress
	}

	var order *entity.Order
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		cartRepo := repoFactory.NewCartRepository()
		productRepo := repoFactory.NewProductRepository()
		orderRepo := repoFactory.NewOrderRepository()

		// The row lock makes a concurrent checkout of the same cart wait, then see it empty.
		cart, err := cartRepo.FindByUserIDForUpdate(ctx, userID)
		if errors.Is(err, repository.ErrCartNotFound) {
			return errors.Wrap(domainerrors.ErrEmptyCart, "no cart")
		}
		if err != nil {
			return errors.Wrap(err, "failed to lock cart")
		}
		if cart.IsEmpty() {
			return errors.Wrap(domainerrors.ErrEmptyCart, "cart has no items")
		}

		for _, item := range cart.Items {
			if err := productRepo.DecrementStock(ctx, item.ProductID, item.Quantity); err != nil {
				if errors.Is(err, repository.ErrInsufficientStock) {
					return errors.Wrap(domainerrors.ErrInsufficientStock.WithDetails(item.ProductName), "stock decrement failed")
				}

				return translate(err, "failed to decrement stock")
			}
		}

		now := srv.clock.now()
		seq, err := orderRepo.NextSequence(ctx, now)
		if err != nil {
			return errors.Wrap(err, "failed to allocate order number")
		}

		order = buildOrder(cart, userID, now)
		order.OrderNumber = entity.FormatOrderNumber(srv.prefix, now, seq)
		order.ShippingAddress = shipping
		order.BillingAddress = billing
		order.Payment = entity.Payment{Method: input.PaymentMethod, Status: entity.PaymentStatusPending}
		order.Notes = input.Notes

		if err := orderRepo.Create(ctx, order); err != nil {
			return errors.Wrap(err, "failed to create order")
		}

		cart.Clear()
		cart.UpdatedAt = now

		return errors.Wrap(cartRepo.Save(ctx, cart), "failed to clear cart")
	})
	if err != nil {
		srv.metrics.OrderFailed(orderFailureReason(err))
		srv.log(ctx).Warn("Order creation failed", slog.Any("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute create order transaction")
	}

	invalidateProducts(ctx, srv.cache, srv.log(ctx), orderProductIDs(order)...)
	srv.metrics.OrderCreated(order.Pricing.Total)
	srv.log(ctx).Info("Order created", slog.Any("orderID", order.ID), slog.String("orderNumber", order.OrderNumber))

	srv.notify(ctx, order, constants.EventOrderCreated, "")

	return order, nil
}

func orderFailureReason(err error) string {
	switch {
	case errors.Is(err, domainerrors.ErrEmptyCart):
		return failureEmptyCart
	case errors.Is(err, domainerrors.ErrInsufficientStock):
		return failureInsufficientStock
	default:
		return failureInternal
	}
}

// buildOrder snapshots the cart lines and totals.
func buildOrder(cart *entity.Cart, userID uuid.UUID, now time.Time) *entity.Order {
	order := &entity.Order{
		ID:     uuid.New(),
		UserID: userID,
		Items:  make([]*entity.OrderItem, 0, len(cart.Items)),
		Pricing: entity.Pricing{
			Subtotal: cart.Subtotal,
			Tax:      cart.Tax,
			Shipping: decimal.Zero,
			Discount: decimal.Zero,
			Total:    cart.Total,
		},
		Status:    entity.OrderStatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}

	for _, item := range cart.Items {
		order.Items = append(order.Items, &entity.OrderItem{
			ID:              uuid.New(),
			OrderID:         order.ID,
			ProductID:       item.ProductID,
			ListingID:       item.ListingID,
			VariantID:       item.VariantID,
			SellerID:        item.SellerID,
			ProductName:     item.ProductName,
			Quantity:        item.Quantity,
			PriceAtPurchase: item.Price,
			Status:          entity.OrderStatusPending,
		})
	}

	return order
}

// resolveShippingAddress prefers an inline address, then a saved one, then the default.
func (srv *orderService) resolveShippingAddress(ctx context.Context, userID uuid.UUID, input *usecase.CreateOrderInput) (entity.OrderAddress, error) {
	if input.ShippingAddress != nil && !input.ShippingAddress.IsZero() {
		return *input.ShippingAddress, nil
	}

	if input.ShippingAddressID != nil {
		address, err := srv.addressRepo.FindAddressByID(ctx, *input.ShippingAddressID)
		if err != nil {
			return entity.OrderAddress{}, translate(err, "failed to find shipping address")
		}
		if address.UserID != userID {
			return entity.OrderAddress{}, errors.Wrap(domainerrors.ErrAddressNotFound, "address belongs to another user")
		}

		return address.Snapshot(), nil
	}

	address, err := srv.addressRepo.FindDefaultAddressByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrAddressNotFound) {
			return entity.OrderAddress{}, errors.Wrap(domainerrors.ErrValidationFailed.WithMessage("Shipping address is required"), "no default address")
		}

		return entity.OrderAddress{}, errors.Wrap(err, "failed to find default address")
	}

	return address.Snapshot(), nil
}

// notify sends the buyer email and publishes the event. Neither failure reaches the caller.
func (srv *orderService) notify(ctx context.Context, order *entity.Order, eventType, reason string) {
	user, err := srv.userRepo.FindByID(ctx, order.UserID)
	if err != nil {
		srv.log(ctx).Warn("Failed to load order owner for email", slog.Any("orderID", order.ID), slog.Any("error", err))
	} else {
		payload := service.OrderConfirmation{
			OrderID:     order.ID.String(),
			OrderNumber: order.OrderNumber,
			Total:       order.Pricing.Total.StringFixed(2),
			Status:      string(order.Status),
		}

		if eventType == constants.EventOrderCreated {
			err = srv.mailer.SendOrderConfirmation(ctx, user.Email, payload)
		} else {
			err = srv.mailer.SendOrderStatusUpdate(ctx, user.Email, payload)
		}
		if err != nil {
			srv.log(ctx).Warn("Failed to send order email", slog.Any("orderID", order.ID), slog.Any("error", err))
		}
	}

	event := &service.OrderEvent{
		RequestID:   deliverycontext.RequestID(ctx),
		Type:        eventType,
		OrderID:     order.ID.String(),
		OrderNumber: order.OrderNumber,
		UserID:      order.UserID.String(),
		Status:      string(order.Status),
		Total:       order.Pricing.Total.StringFixed(2),
		Reason:      reason,
	}
	if err := srv.publisher.PublishOrderEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish order event", slog.Any("orderID", order.ID), slog.String("type", eventType), slog.Any("error", err))
	}
}

// canView reports whether the actor may read the order.
func (srv *orderService) canView(ctx context.Context, actor usecase.Actor, order *entity.Order) (bool, error) {
	if order.UserID == actor.UserID || actor.IsStaff() {
		return true, nil
	}
	if actor.Role != entity.RoleSeller {
		return false, nil
	}

	seller, err := srv.sellerRepo.FindByUserID(ctx, actor.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrSellerNotFound) {
			return false, nil
		}

		return false, errors.Wrap(err, "failed to find seller profile")
	}

	return order.HasSeller(seller.ID), nil
}

// GetOrder returns an order visible to the actor.
func (srv *orderService) GetOrder(ctx context.Context, actor usecase.Actor, orderID uuid.UUID) (*entity.Order, error) {
	order, err := srv.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, translate(err, "failed to find order")
	}

	ok, err := srv.canView(ctx, actor, order)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errors.Wrap(domainerrors.ErrForbidden.WithMessage("Not authorized to view this order"), "get order")
	}

	return order, nil
}

// ListMyOrders returns the buyer's orders, newest first.
func (srv *orderService) ListMyOrders(ctx context.Context, userID uuid.UUID, filter repository.OrderFilter, page entity.Pagination) (*entity.Page[*entity.Order], error) {
	orders, total, err := srv.orderRepo.ListByUser(ctx, userID, filter, page)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return entity.NewPage(orders, total, page), nil
}

// ListSellerOrders returns orders holding a line of the seller.
func (srv *orderService) ListSellerOrders(ctx context.Context, actor usecase.Actor, sellerID uuid.UUID, filter repository.OrderFilter, page entity.Pagination) (*entity.Page[*entity.Order], error) {
	if err := authorizeSellerResource(ctx, srv.sellerRepo, actor, sellerID); err != nil {
		return nil, err
	}

	orders, total, err := srv.orderRepo.ListBySeller(ctx, sellerID, filter, page)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list seller orders")
	}

	return entity.NewPage(orders, total, page), nil
}

// CancelOrder lets the buyer cancel a pending or confirmed order and restores product stock.
func (srv *orderService) CancelOrder(ctx context.Context, userID, orderID uuid.UUID, reason string) (*entity.Order, error) {
	var order *entity.Order

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		orderRepo := repoFactory.NewOrderRepository()

		var err error
		order, err = orderRepo.FindByIDForUpdate(ctx, orderID)
		if err != nil {
			return translate(err, "failed to find order")
		}
		if order.UserID != userID {
			return errors.Wrap(domainerrors.ErrForbidden.WithMessage("Not authorized to cancel this order"), "cancel order")
		}
		if !order.Status.IsCancellableByOwner() {
			return errors.Wrap(domainerrors.ErrOrderNotCancellable.WithDetails("order is "+string(order.Status)), "cancel order")
		}

		if err := restoreStock(ctx, repoFactory.NewProductRepository(), order); err != nil {
			return err
		}
		order.Cancel(reason, srv.clock.now())

		return errors.Wrap(orderRepo.Update(ctx, order), "failed to update order")
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute cancel order transaction")
	}

	invalidateProducts(ctx, srv.cache, srv.log(ctx), orderProductIDs(order)...)
	srv.metrics.OrderStatusChanged(string(entity.OrderStatusCancelled))
	srv.log(ctx).Info("Order cancelled", slog.Any("orderID", orderID), slog.String("reason", reason))
	srv.notify(ctx, order, constants.EventOrderCancelled, reason)

	return order, nil
}

func restoreStock(ctx context.Context, productRepo repository.ProductRepository, order *entity.Order) error {
	for _, item := range order.Items {
		if err := productRepo.RestoreStock(ctx, item.ProductID, item.Quantity); err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				// Deleted products have no stock to restore.
				continue
			}

			return errors.Wrap(err, "failed to restore stock")
		}
	}

	return nil
}

// UpdateOrderStatus moves an order forward, or to a terminal state. Sellers must own a line.
func (srv *orderService) UpdateOrderStatus(ctx context.Context, actor usecase.Actor, orderID uuid.UUID, status entity.OrderStatus) (*entity.Order, error) {
	if !status.IsValid() {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed.WithMessage("Invalid order status"), string(status))
	}

	var order *entity.Order
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		orderRepo := repoFactory.NewOrderRepository()

		var err error
		order, err = orderRepo.FindByIDForUpdate(ctx, orderID)
		if err != nil {
			return translate(err, "failed to find order")
		}

		if !actor.IsAdmin() {
			sellerID, err := resolveSellerID(ctx, repoFactory.NewSellerRepository(), actor, nil)
			if err != nil {
				return err
			}
			if !order.HasSeller(sellerID) {
				return errors.Wrap(domainerrors.ErrForbidden.WithMessage("Not authorized to update this order"), "update order status")
			}
		}

		if !order.Status.CanTransitionTo(status) {
			return errors.Wrap(
				domainerrors.ErrIllegalStatusTransition.WithDetails(string(order.Status)+" -> "+string(status)),
				"update order status",
			)
		}

		now := srv.clock.now()
		if status == entity.OrderStatusCancelled {
			if err := restoreStock(ctx, repoFactory.NewProductRepository(), order); err != nil {
				return err
			}
			order.Cancel(order.CancellationReason, now)
		} else {
			order.ApplyStatus(status, now)
		}

		return errors.Wrap(orderRepo.Update(ctx, order), "failed to update order")
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute update order status transaction")
	}

	if status == entity.OrderStatusCancelled {
		invalidateProducts(ctx, srv.cache, srv.log(ctx), orderProductIDs(order)...)
	}
	srv.metrics.OrderStatusChanged(string(status))
	srv.log(ctx).Info("Order status updated", slog.Any("orderID", orderID), slog.String("status", string(status)), slog.Any("by", actor.UserID))
	srv.notify(ctx, order, constants.EventOrderStatusChanged, "")

	return order, nil
}

// MarkAsPaid completes the payment. A pending order becomes confirmed.
func (srv *orderService) MarkAsPaid(ctx context.Context, orderID uuid.UUID, transactionID string) (*entity.Order, error) {
	var (
		order         *entity.Order
		statusChanged bool
	)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		orderRepo := repoFactory.NewOrderRepository()

		var err error
		order, err = orderRepo.FindByIDForUpdate(ctx, orderID)
		if err != nil {
			return translate(err, "failed to find order")
		}
		if order.Status.IsTerminal() {
			return errors.Wrap(domainerrors.ErrIllegalStatusTransition.WithDetails("order is "+string(order.Status)), "mark as paid")
		}
		if order.Payment.Status == entity.PaymentStatusCompleted {
			return errors.Wrap(domainerrors.ErrConflict.WithMessage("Order is already paid"), "mark as paid")
		}

		now := srv.clock.now()
		if order.Status == entity.OrderStatusPending {
			order.MarkAsPaid(transactionID, now)
			statusChanged = true
		} else {
			order.Payment.Status = entity.PaymentStatusCompleted
			order.Payment.TransactionID = transactionID
			order.Payment.PaidAt = &now
			order.UpdatedAt = now
		}

		return errors.Wrap(orderRepo.Update(ctx, order), "failed to update order")
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute mark as paid transaction")
	}

	srv.log(ctx).Info("Order paid", slog.Any("orderID", orderID))
	if statusChanged {
		srv.metrics.OrderStatusChanged(string(entity.OrderStatusConfirmed))
		srv.notify(ctx, order, constants.EventOrderStatusChanged, "")
	}

	return order, nil
}

// OrderQR renders a lookup QR code for an order the actor may view.
func (srv *orderService) OrderQR(ctx context.Context, actor usecase.Actor, orderID uuid.UUID) ([]byte, error) {
	order, err := srv.GetOrder(ctx, actor, orderID)
	if err != nil {
		return nil, err
	}

	png, err := srv.qrService.OrderLabelPNG(service.OrderLabel{ID: order.ID, Number: order.OrderNumber})
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate order QR code")
	}

	return png, nil
}
