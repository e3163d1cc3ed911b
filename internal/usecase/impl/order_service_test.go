package impl

import (
	"context"
	"sync"
	"testing"
	"time"

	"marketplace/internal/domain/constants"
	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/domain/service"
	mockRepo "marketplace/internal/mocks/repository"
	mockSvc "marketplace/internal/mocks/service"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// orderServiceFixtures holds all test dependencies for order service tests.
type orderServiceFixtures struct {
	service     usecase.OrderUsecase
	store       *memStore
	userRepo    *mockRepo.MockUserRepository
	addressRepo *mockRepo.MockAddressRepository
	sellerRepo  *mockRepo.MockSellerRepository
	publisher   *mockSvc.MockEventPublisher
	mailer      *mockSvc.MockMailer
	metrics     *mockSvc.MockOrderMetrics
	qr          *mockSvc.MockQRCodeService
	cache       *mockSvc.MockProductCache
}

func createTestOrderService(t *testing.T) orderServiceFixtures {
	store := newMemStore()
	fx := orderServiceFixtures{
		store:       store,
		userRepo:    mockRepo.NewMockUserRepository(t),
		addressRepo: mockRepo.NewMockAddressRepository(t),
		sellerRepo:  mockRepo.NewMockSellerRepository(t),
		publisher:   mockSvc.NewMockEventPublisher(t),
		mailer:      mockSvc.NewMockMailer(t),
		metrics:     mockSvc.NewMockOrderMetrics(t),
		qr:          mockSvc.NewMockQRCodeService(t),
		cache:       mockSvc.NewMockProductCache(t),
	}
	store.sellers = fx.sellerRepo
	fx.cache.EXPECT().Invalidate(mock.Anything, mock.AnythingOfType("uuid.UUID"), "").Return(nil).Maybe()

	srv := NewOrderService(OrderServiceParams{
		TxManager:   store,
		OrderRepo:   memOrderRepo{store: store},
		UserRepo:    fx.userRepo,
		AddressRepo: fx.addressRepo,
		SellerRepo:  fx.sellerRepo,
		Publisher:   fx.publisher,
		Mailer:      fx.mailer,
		Metrics:     fx.metrics,
		QRService:   fx.qr,
		Cache:       fx.cache,
		Config:      newTestConfig(0),
		Logger:      newDiscardLogger(),
	})
	srv.(*orderService).clock = fixedClock()
	fx.service = srv

	return fx
}

// expectNotify covers the best-effort email and event publish that follow a committed change.
func (fx orderServiceFixtures) expectNotify(eventType string, times int) {
	fx.userRepo.EXPECT().
		FindByID(mock.Anything, mock.AnythingOfType("uuid.UUID")).
		RunAndReturn(func(_ context.Context, id uuid.UUID) (*entity.User, error) {
			return &entity.User{ID: id, Email: "buyer@example.com"}, nil
		}).
		Times(times)
	if eventType == constants.EventOrderCreated {
		fx.mailer.EXPECT().SendOrderConfirmation(mock.Anything, "buyer@example.com", mock.Anything).Return(nil).Times(times)
	} else {
		fx.mailer.EXPECT().SendOrderStatusUpdate(mock.Anything, "buyer@example.com", mock.Anything).Return(nil).Times(times)
	}
	fx.publisher.EXPECT().
		PublishOrderEvent(mock.Anything, mock.MatchedBy(func(e *service.OrderEvent) bool { return e.Type == eventType })).
		Return(nil).
		Times(times)
}

// seedCart stores a cart with the given lines for the user.
func (fx orderServiceFixtures) seedCart(userID uuid.UUID, lines ...*entity.CartItem) *entity.Cart {
	cart := entity.NewCart(userID, testNow, time.Hour)
	for _, line := range lines {
		line.CartID = cart.ID
		cart.Items = append(cart.Items, line)
	}
	cart.Recalculate(decimal.RequireFromString("0.08"))
	fx.store.putCart(cart)

	return cart
}

func lineFor(product *entity.Product, qty int) *entity.CartItem {
	return &entity.CartItem{
		ID:          uuid.New(),
		ProductID:   product.ID,
		SellerID:    product.SellerID,
		ProductName: product.Name,
		Quantity:    qty,
		Price:       product.Price,
	}
}

func checkoutInput() *usecase.CreateOrderInput {
	return &usecase.CreateOrderInput{
		ShippingAddress: &entity.OrderAddress{
			FullName:     "Ada Lovelace",
			Phone:        "+44 20 7946 0000",
			AddressLine1: "12 St James's Square",
			City:         "London",
			State:        "London",
			Country:      "GB",
			ZipCode:      "SW1Y 4JH",
		},
		PaymentMethod: entity.PaymentMethodCard,
	}
}

func TestOrderService_CreateOrder_Success(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	userID := uuid.New()
	product := newTestProduct("100", 5)
	fx.store.putProduct(product)
	fx.seedCart(userID, lineFor(product, 3))

	fx.metrics.EXPECT().OrderCreated(mock.AnythingOfType("decimal.Decimal")).Return()
	fx.expectNotify(constants.EventOrderCreated, 1)

	order, err := fx.service.CreateOrder(ctx, userID, checkoutInput())
	require.NoError(t, err)

	assert.Equal(t, "ORD-20250314-0001", order.OrderNumber)
	assert.Equal(t, entity.OrderStatusPending, order.Status)
	assert.Equal(t, entity.PaymentStatusPending, order.Payment.Status)
	assert.Equal(t, order.ShippingAddress, order.BillingAddress)
	require.Len(t, order.Items, 1)
	assert.True(t, order.Items[0].PriceAtPurchase.Equal(product.Price))
	assert.Equal(t, "300", order.Pricing.Subtotal.String())
	assert.Equal(t, "24", order.Pricing.Tax.String())
	assert.Equal(t, "324", order.Pricing.Total.String())

	assert.Equal(t, 2, fx.store.product(product.ID).Stock)
	assert.Equal(t, 3, fx.store.product(product.ID).TotalSold)
	assert.True(t, fx.store.cart(userID).IsEmpty())
	assert.Equal(t, 1, fx.store.orderCount())
	fx.cache.AssertCalled(t, "Invalidate", mock.Anything, product.ID, "")
}

func TestOrderService_CreateOrder_InsufficientStockRollsBack(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	userID := uuid.New()
	plenty := newTestProduct("10", 10)
	scarce := newTestProduct("10", 1)
	scarce.Name = "Limited Edition Print"
	fx.store.putProduct(plenty)
	fx.store.putProduct(scarce)
	fx.seedCart(userID, lineFor(plenty, 4), lineFor(scarce, 2))

	fx.metrics.EXPECT().OrderFailed(failureInsufficientStock).Return()

	order, err := fx.service.CreateOrder(ctx, userID, checkoutInput())
	assert.Nil(t, order)
	require.ErrorIs(t, err, domainerrors.ErrInsufficientStock)

	var appErr *domainerrors.BaseError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "Limited Edition Print", appErr.Details())

	assert.Equal(t, 10, fx.store.product(plenty.ID).Stock)
	assert.Equal(t, 1, fx.store.product(scarce.ID).Stock)
	assert.Len(t, fx.store.cart(userID).Items, 2)
	assert.Zero(t, fx.store.orderCount())
}

func TestOrderService_CreateOrder_EmptyCart(t *testing.T) {
	t.Run("no cart", func(t *testing.T) {
		fx := createTestOrderService(t)
		fx.metrics.EXPECT().OrderFailed(failureEmptyCart).Return()

		_, err := fx.service.CreateOrder(context.Background(), uuid.New(), checkoutInput())
		assert.ErrorIs(t, err, domainerrors.ErrEmptyCart)
	})

	t.Run("cart without lines", func(t *testing.T) {
		fx := createTestOrderService(t)
		userID := uuid.New()
		fx.seedCart(userID)
		fx.metrics.EXPECT().OrderFailed(failureEmptyCart).Return()

		_, err := fx.service.CreateOrder(context.Background(), userID, checkoutInput())
		assert.ErrorIs(t, err, domainerrors.ErrEmptyCart)
	})
}

func TestOrderService_CreateOrder_ConcurrentCheckoutOfOneCart(t *testing.T) {
	fx := createTestOrderService(t)
	userID := uuid.New()
	product := newTestProduct("100", 5)
	fx.store.putProduct(product)
	fx.seedCart(userID, lineFor(product, 3))

	fx.metrics.EXPECT().OrderCreated(mock.AnythingOfType("decimal.Decimal")).Return().Once()
	fx.metrics.EXPECT().OrderFailed(failureEmptyCart).Return().Once()
	fx.expectNotify(constants.EventOrderCreated, 1)

	var (
		wg     sync.WaitGroup
		start  = make(chan struct{})
		errs   = make([]error, 2)
		orders = make([]*entity.Order, 2)
	)
	for i := range 2 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			orders[i], errs[i] = fx.service.CreateOrder(context.Background(), userID, checkoutInput())
		}()
	}
	close(start)
	wg.Wait()

	succeeded, emptyCart := 0, 0
	for i := range errs {
		switch {
		case errs[i] == nil:
			succeeded++
			assert.NotNil(t, orders[i])
		case errors.Is(errs[i], domainerrors.ErrEmptyCart):
			emptyCart++
		default:
			t.Fatalf("unexpected error: %v", errs[i])
		}
	}
	assert.Equal(t, 1, succeeded)
	assert.Equal(t, 1, emptyCart)
	assert.Equal(t, 1, fx.store.orderCount())
	assert.Equal(t, 2, fx.store.product(product.ID).Stock)
}

func TestOrderService_CreateOrder_NumbersAreUniqueUnderLoad(t *testing.T) {
	const buyers = 20

	fx := createTestOrderService(t)
	product := newTestProduct("5", buyers)
	fx.store.putProduct(product)

	users := make([]uuid.UUID, buyers)
	for i := range users {
		users[i] = uuid.New()
		fx.seedCart(users[i], lineFor(product, 1))
	}

	fx.metrics.EXPECT().OrderCreated(mock.AnythingOfType("decimal.Decimal")).Return().Times(buyers)
	fx.expectNotify(constants.EventOrderCreated, buyers)

	var (
		mu      sync.Mutex
		wg      sync.WaitGroup
		numbers = make(map[string]struct{}, buyers)
	)
	for _, userID := range users {
		wg.Add(1)
		go func() {
			defer wg.Done()
			order, err := fx.service.CreateOrder(context.Background(), userID, checkoutInput())
			if !assert.NoError(t, err) {
				return
			}
			mu.Lock()
			numbers[order.OrderNumber] = struct{}{}
			mu.Unlock()
		}()
	}
	wg.Wait()

	assert.Len(t, numbers, buyers)
	assert.Contains(t, numbers, "ORD-20250314-0001")
	assert.Contains(t, numbers, "ORD-20250314-0020")
	assert.Zero(t, fx.store.product(product.ID).Stock)
}

func TestOrderService_CreateOrder_InvalidPaymentMethod(t *testing.T) {
	fx := createTestOrderService(t)
	fx.metrics.EXPECT().OrderFailed(failureInvalidInput).Return()

	input := checkoutInput()
	input.PaymentMethod = "barter"

	_, err := fx.service.CreateOrder(context.Background(), uuid.New(), input)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestOrderService_CreateOrder_UsesDefaultAddress(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	userID := uuid.New()
	product := newTestProduct("10", 5)
	fx.store.putProduct(product)
	fx.seedCart(userID, lineFor(product, 1))

	fx.addressRepo.EXPECT().FindDefaultAddressByUser(mock.Anything, userID).Return(&entity.Address{
		ID:           uuid.New(),
		UserID:       userID,
		FullName:     "Ada Lovelace",
		AddressLine1: "1 Main St",
		City:         "Springfield",
		Country:      "US",
		ZipCode:      "12345",
		IsDefault:    true,
	}, nil)
	fx.metrics.EXPECT().OrderCreated(mock.AnythingOfType("decimal.Decimal")).Return()
	fx.expectNotify(constants.EventOrderCreated, 1)

	order, err := fx.service.CreateOrder(ctx, userID, &usecase.CreateOrderInput{PaymentMethod: entity.PaymentMethodCOD})
	require.NoError(t, err)
	assert.Equal(t, "1 Main St", order.ShippingAddress.AddressLine1)
	assert.Equal(t, "Springfield", order.BillingAddress.City)
}

func TestOrderService_CreateOrder_MissingAddress(t *testing.T) {
	fx := createTestOrderService(t)
	userID := uuid.New()

	fx.addressRepo.EXPECT().FindDefaultAddressByUser(mock.Anything, userID).Return(nil, repository.ErrAddressNotFound)
	fx.metrics.EXPECT().OrderFailed(failureInvalidInput).Return()

	_, err := fx.service.CreateOrder(context.Background(), userID, &usecase.CreateOrderInput{PaymentMethod: entity.PaymentMethodCard})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

// seedOrder stores an order of qty units of product in the given status.
func (fx orderServiceFixtures) seedOrder(userID uuid.UUID, product *entity.Product, qty int, status entity.OrderStatus) *entity.Order {
	order := &entity.Order{
		ID:          uuid.New(),
		OrderNumber: "ORD-20250313-0007",
		UserID:      userID,
		Items: []*entity.OrderItem{{
			ID:              uuid.New(),
			ProductID:       product.ID,
			SellerID:        product.SellerID,
			ProductName:     product.Name,
			Quantity:        qty,
			PriceAtPurchase: product.Price,
			Status:          status,
		}},
		Payment: entity.Payment{Method: entity.PaymentMethodCard, Status: entity.PaymentStatusPending},
		Pricing: entity.Pricing{Total: product.Price.Mul(decimal.NewFromInt(int64(qty)))},
		Status:  status,
	}
	fx.store.putOrder(order)

	return order
}

func TestOrderService_CancelOrder(t *testing.T) {
	t.Run("pending order restores stock", func(t *testing.T) {
		fx := createTestOrderService(t)
		userID := uuid.New()
		product := newTestProduct("10", 2)
		fx.store.putProduct(product)
		order := fx.seedOrder(userID, product, 3, entity.OrderStatusPending)

		fx.metrics.EXPECT().OrderStatusChanged("cancelled").Return()
		fx.expectNotify(constants.EventOrderCancelled, 1)

		cancelled, err := fx.service.CancelOrder(context.Background(), userID, order.ID, "changed my mind")
		require.NoError(t, err)
		assert.Equal(t, entity.OrderStatusCancelled, cancelled.Status)
		assert.Equal(t, entity.OrderStatusCancelled, cancelled.Items[0].Status)
		assert.Equal(t, "changed my mind", cancelled.CancellationReason)
		require.NotNil(t, cancelled.CancelledAt)
		assert.Equal(t, 5, fx.store.product(product.ID).Stock)
		fx.cache.AssertCalled(t, "Invalidate", mock.Anything, product.ID, "")
	})

	t.Run("processing order is not cancellable", func(t *testing.T) {
		fx := createTestOrderService(t)
		userID := uuid.New()
		product := newTestProduct("10", 2)
		fx.store.putProduct(product)
		order := fx.seedOrder(userID, product, 3, entity.OrderStatusProcessing)

		_, err := fx.service.CancelOrder(context.Background(), userID, order.ID, "too slow")
		assert.ErrorIs(t, err, domainerrors.ErrOrderNotCancellable)
		fx.cache.AssertNotCalled(t, "Invalidate", mock.Anything, product.ID, "")

		stored, err := memOrderRepo{store: fx.store}.FindByID(context.Background(), order.ID)
		require.NoError(t, err)
		assert.Equal(t, entity.OrderStatusProcessing, stored.Status)
		assert.Equal(t, 2, fx.store.product(product.ID).Stock)
	})

	t.Run("other user's order", func(t *testing.T) {
		fx := createTestOrderService(t)
		product := newTestProduct("10", 2)
		fx.store.putProduct(product)
		order := fx.seedOrder(uuid.New(), product, 1, entity.OrderStatusPending)

		_, err := fx.service.CancelOrder(context.Background(), uuid.New(), order.ID, "")
		assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	})

	t.Run("unknown order", func(t *testing.T) {
		fx := createTestOrderService(t)

		_, err := fx.service.CancelOrder(context.Background(), uuid.New(), uuid.New(), "")
		assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
	})
}

func TestOrderService_UpdateOrderStatus(t *testing.T) {
	admin := usecase.Actor{UserID: uuid.New(), Role: entity.RoleAdmin}

	tests := []struct {
		name    string
		from    entity.OrderStatus
		to      entity.OrderStatus
		wantErr error
	}{
		{name: "forward", from: entity.OrderStatusConfirmed, to: entity.OrderStatusShipped},
		{name: "backwards", from: entity.OrderStatusShipped, to: entity.OrderStatusConfirmed, wantErr: domainerrors.ErrIllegalStatusTransition},
		{name: "from terminal", from: entity.OrderStatusCancelled, to: entity.OrderStatusPending, wantErr: domainerrors.ErrIllegalStatusTransition},
		{name: "delivered to returned", from: entity.OrderStatusDelivered, to: entity.OrderStatusReturned},
		{name: "delivered to cancelled", from: entity.OrderStatusDelivered, to: entity.OrderStatusCancelled, wantErr: domainerrors.ErrIllegalStatusTransition},
		{name: "unknown status", from: entity.OrderStatusPending, to: "lost", wantErr: domainerrors.ErrValidationFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestOrderService(t)
			product := newTestProduct("10", 2)
			fx.store.putProduct(product)
			order := fx.seedOrder(uuid.New(), product, 1, tt.from)

			if tt.wantErr == nil {
				fx.metrics.EXPECT().OrderStatusChanged(string(tt.to)).Return()
				fx.expectNotify(constants.EventOrderStatusChanged, 1)
			}

			updated, err := fx.service.UpdateOrderStatus(context.Background(), admin, order.ID, tt.to)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.to, updated.Status)
			for _, item := range updated.Items {
				assert.Equal(t, tt.to, item.Status)
			}
		})
	}
}

func TestOrderService_UpdateOrderStatus_AdminCancelRestoresStock(t *testing.T) {
	fx := createTestOrderService(t)
	admin := usecase.Actor{UserID: uuid.New(), Role: entity.RoleAdmin}
	product := newTestProduct("10", 0)
	fx.store.putProduct(product)
	order := fx.seedOrder(uuid.New(), product, 2, entity.OrderStatusShipped)

	fx.metrics.EXPECT().OrderStatusChanged("cancelled").Return()
	fx.expectNotify(constants.EventOrderStatusChanged, 1)

	_, err := fx.service.UpdateOrderStatus(context.Background(), admin, order.ID, entity.OrderStatusCancelled)
	require.NoError(t, err)
	assert.Equal(t, 2, fx.store.product(product.ID).Stock)
	fx.cache.AssertCalled(t, "Invalidate", mock.Anything, product.ID, "")
}

func TestOrderService_UpdateOrderStatus_SellerScope(t *testing.T) {
	fx := createTestOrderService(t)
	product := newTestProduct("10", 2)
	fx.store.putProduct(product)
	order := fx.seedOrder(uuid.New(), product, 1, entity.OrderStatusConfirmed)

	owner := usecase.Actor{UserID: uuid.New(), Role: entity.RoleSeller}
	stranger := usecase.Actor{UserID: uuid.New(), Role: entity.RoleSeller}

	fx.sellerRepo.EXPECT().FindByUserID(mock.Anything, stranger.UserID).
		Return(&entity.Seller{ID: uuid.New(), UserID: stranger.UserID, Status: entity.SellerStatusApproved}, nil)
	fx.sellerRepo.EXPECT().FindByUserID(mock.Anything, owner.UserID).
		Return(&entity.Seller{ID: product.SellerID, UserID: owner.UserID, Status: entity.SellerStatusApproved}, nil)

	_, err := fx.service.UpdateOrderStatus(context.Background(), stranger, order.ID, entity.OrderStatusProcessing)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)

	fx.metrics.EXPECT().OrderStatusChanged("processing").Return()
	fx.expectNotify(constants.EventOrderStatusChanged, 1)

	updated, err := fx.service.UpdateOrderStatus(context.Background(), owner, order.ID, entity.OrderStatusProcessing)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusProcessing, updated.Status)
}

func TestOrderService_MarkAsPaid(t *testing.T) {
	t.Run("pending becomes confirmed", func(t *testing.T) {
		fx := createTestOrderService(t)
		product := newTestProduct("10", 2)
		fx.store.putProduct(product)
		order := fx.seedOrder(uuid.New(), product, 1, entity.OrderStatusPending)

		fx.metrics.EXPECT().OrderStatusChanged("confirmed").Return()
		fx.expectNotify(constants.EventOrderStatusChanged, 1)

		paid, err := fx.service.MarkAsPaid(context.Background(), order.ID, "txn_123")
		require.NoError(t, err)
		assert.Equal(t, entity.OrderStatusConfirmed, paid.Status)
		assert.Equal(t, entity.PaymentStatusCompleted, paid.Payment.Status)
		assert.Equal(t, "txn_123", paid.Payment.TransactionID)
		require.NotNil(t, paid.Payment.PaidAt)
		assert.Equal(t, testNow, *paid.Payment.PaidAt)
	})

	t.Run("later status keeps status", func(t *testing.T) {
		fx := createTestOrderService(t)
		product := newTestProduct("10", 2)
		fx.store.putProduct(product)
		order := fx.seedOrder(uuid.New(), product, 1, entity.OrderStatusShipped)

		paid, err := fx.service.MarkAsPaid(context.Background(), order.ID, "txn_456")
		require.NoError(t, err)
		assert.Equal(t, entity.OrderStatusShipped, paid.Status)
		assert.Equal(t, entity.PaymentStatusCompleted, paid.Payment.Status)

		_, err = fx.service.MarkAsPaid(context.Background(), order.ID, "txn_789")
		assert.ErrorIs(t, err, domainerrors.ErrConflict)
	})

	t.Run("cancelled order", func(t *testing.T) {
		fx := createTestOrderService(t)
		product := newTestProduct("10", 2)
		fx.store.putProduct(product)
		order := fx.seedOrder(uuid.New(), product, 1, entity.OrderStatusCancelled)

		_, err := fx.service.MarkAsPaid(context.Background(), order.ID, "txn")
		assert.ErrorIs(t, err, domainerrors.ErrIllegalStatusTransition)
	})
}

func TestOrderService_GetOrder_Visibility(t *testing.T) {
	fx := createTestOrderService(t)
	buyer := uuid.New()
	product := newTestProduct("10", 2)
	fx.store.putProduct(product)
	order := fx.seedOrder(buyer, product, 1, entity.OrderStatusPending)

	sellerUser := uuid.New()
	otherSellerUser := uuid.New()
	fx.sellerRepo.EXPECT().FindByUserID(mock.Anything, sellerUser).Return(&entity.Seller{ID: product.SellerID}, nil)
	fx.sellerRepo.EXPECT().FindByUserID(mock.Anything, otherSellerUser).Return(&entity.Seller{ID: uuid.New()}, nil)

	tests := []struct {
		name  string
		actor usecase.Actor
		ok    bool
	}{
		{name: "owner", actor: usecase.Actor{UserID: buyer, Role: entity.RoleCustomer}, ok: true},
		{name: "support", actor: usecase.Actor{UserID: uuid.New(), Role: entity.RoleSupport}, ok: true},
		{name: "seller on the order", actor: usecase.Actor{UserID: sellerUser, Role: entity.RoleSeller}, ok: true},
		{name: "other seller", actor: usecase.Actor{UserID: otherSellerUser, Role: entity.RoleSeller}},
		{name: "other customer", actor: usecase.Actor{UserID: uuid.New(), Role: entity.RoleCustomer}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := fx.service.GetOrder(context.Background(), tt.actor, order.ID)
			if tt.ok {
				require.NoError(t, err)
				assert.Equal(t, order.ID, got.ID)

				return
			}
			assert.ErrorIs(t, err, domainerrors.ErrForbidden)
		})
	}
}

func TestOrderService_OrderQR(t *testing.T) {
	fx := createTestOrderService(t)
	buyer := uuid.New()
	product := newTestProduct("10", 2)
	fx.store.putProduct(product)
	order := fx.seedOrder(buyer, product, 1, entity.OrderStatusPending)

	fx.qr.EXPECT().OrderLabelPNG(service.OrderLabel{ID: order.ID, Number: order.OrderNumber}).Return([]byte("png"), nil)

	png, err := fx.service.OrderQR(context.Background(), usecase.Actor{UserID: buyer, Role: entity.RoleCustomer}, order.ID)
	require.NoError(t, err)
	assert.Equal(t, []byte("png"), png)
}
