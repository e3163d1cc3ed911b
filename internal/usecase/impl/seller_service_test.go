package impl

import (
	"context"
	"testing"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	mockRepo "marketplace/internal/mocks/repository"
	mockUsecase "marketplace/internal/mocks/usecase"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// sellerServiceFixtures holds all test dependencies for seller service tests.
type sellerServiceFixtures struct {
	service     usecase.SellerUsecase
	txManager   *mockRepo.MockTransactionManager
	factory     *mockRepo.MockRepositoryFactory
	sellerRepo  *mockRepo.MockSellerRepository
	userRepo    *mockRepo.MockUserRepository
	roleRepo    *mockRepo.MockRoleRepository
	productRepo *mockRepo.MockProductRepository
	orderRepo   *mockRepo.MockOrderRepository
	auth        *mockUsecase.MockAuthUsecase
}

func createTestSellerService(t *testing.T) sellerServiceFixtures {
	fx := sellerServiceFixtures{
		txManager:   mockRepo.NewMockTransactionManager(t),
		factory:     mockRepo.NewMockRepositoryFactory(t),
		sellerRepo:  mockRepo.NewMockSellerRepository(t),
		userRepo:    mockRepo.NewMockUserRepository(t),
		roleRepo:    mockRepo.NewMockRoleRepository(t),
		productRepo: mockRepo.NewMockProductRepository(t),
		orderRepo:   mockRepo.NewMockOrderRepository(t),
		auth:        mockUsecase.NewMockAuthUsecase(t),
	}

	srv := NewSellerService(SellerServiceParams{
		TxManager:   fx.txManager,
		SellerRepo:  fx.sellerRepo,
		UserRepo:    fx.userRepo,
		ProductRepo: fx.productRepo,
		OrderRepo:   fx.orderRepo,
		Auth:        fx.auth,
		Logger:      newDiscardLogger(),
	})
	srv.(*sellerService).clock = fixedClock()
	fx.service = srv

	return fx
}

func strPtr(s string) *string { return &s }

func sellerProfile() usecase.SellerProfileInput {
	return usecase.SellerProfileInput{
		BusinessName:  strPtr("  Acme Goods "),
		BusinessEmail: strPtr("Sales@Acme.example"),
		TaxID:         strPtr("TX-1234"),
	}
}

func TestSellerService_RegisterSeller_ExistingUser(t *testing.T) {
	fx := createTestSellerService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID}, nil)
	fx.sellerRepo.EXPECT().FindByUserID(ctx, userID).Return(nil, repository.ErrSellerNotFound)
	fx.sellerRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(s *entity.Seller) bool {
			return s.UserID == userID && s.Status == entity.SellerStatusPending
		})).
		Return(nil)

	seller, err := fx.service.RegisterSeller(ctx, &usecase.RegisterSellerInput{UserID: &userID, Profile: sellerProfile()})
	require.NoError(t, err)
	assert.Equal(t, "Acme Goods", seller.BusinessName)
	assert.Equal(t, "sales@acme.example", seller.BusinessEmail)
	assert.False(t, seller.IsVerified)
}

func TestSellerService_RegisterSeller_NewAccount(t *testing.T) {
	fx := createTestSellerService(t)
	ctx := context.Background()
	account := &usecase.RegisterInput{FirstName: "Grace", Email: "grace@example.com", Password: "secret1"}
	newUser := &entity.User{ID: uuid.New(), Email: account.Email}

	fx.auth.EXPECT().Register(ctx, account).Return(&usecase.AuthOutput{User: newUser}, nil)
	fx.sellerRepo.EXPECT().FindByUserID(ctx, newUser.ID).Return(nil, repository.ErrSellerNotFound)
	fx.sellerRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Seller")).Return(nil)

	seller, err := fx.service.RegisterSeller(ctx, &usecase.RegisterSellerInput{Account: account, Profile: sellerProfile()})
	require.NoError(t, err)
	assert.Equal(t, newUser.ID, seller.UserID)
	assert.Equal(t, entity.SellerStatusPending, seller.Status)
}

func TestSellerService_RegisterSeller_AlreadyExists(t *testing.T) {
	fx := createTestSellerService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID}, nil)
	fx.sellerRepo.EXPECT().FindByUserID(ctx, userID).Return(&entity.Seller{ID: uuid.New()}, nil)

	_, err := fx.service.RegisterSeller(ctx, &usecase.RegisterSellerInput{UserID: &userID, Profile: sellerProfile()})
	assert.ErrorIs(t, err, domainerrors.ErrSellerAlreadyExists)
}

func TestSellerService_RegisterSeller_MissingFields(t *testing.T) {
	fx := createTestSellerService(t)
	userID := uuid.New()

	_, err := fx.service.RegisterSeller(context.Background(), &usecase.RegisterSellerInput{
		UserID:  &userID,
		Profile: usecase.SellerProfileInput{BusinessName: strPtr("Acme")},
	})
	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	assert.Contains(t, err.Error(), "business_email, tax_id")
}

func TestSellerService_ApproveSeller(t *testing.T) {
	tests := []struct {
		name      string
		role      entity.RoleName
		wantGrant bool
	}{
		{name: "customer becomes seller", role: entity.RoleCustomer, wantGrant: true},
		{name: "admin keeps admin", role: entity.RoleAdmin},
		{name: "support keeps support", role: entity.RoleSupport},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestSellerService(t)
			seller := &entity.Seller{ID: uuid.New(), UserID: uuid.New(), Status: entity.SellerStatusPending, RejectionReason: "old"}
			user := &entity.User{ID: seller.UserID, Role: &entity.Role{Name: tt.role}}
			sellerRole := &entity.Role{ID: uuid.New(), Name: entity.RoleSeller}

			expectTx(fx.txManager, fx.factory)
			fx.factory.EXPECT().NewSellerRepository().Return(fx.sellerRepo)
			fx.factory.EXPECT().NewUserRepository().Return(fx.userRepo)
			fx.sellerRepo.EXPECT().FindByID(mock.Anything, seller.ID).Return(seller, nil)
			fx.userRepo.EXPECT().FindByID(mock.Anything, seller.UserID).Return(user, nil)
			if tt.wantGrant {
				fx.factory.EXPECT().NewRoleRepository().Return(fx.roleRepo)
				fx.roleRepo.EXPECT().FindByName(mock.Anything, entity.RoleSeller).Return(sellerRole, nil)
				fx.userRepo.EXPECT().Update(mock.Anything, user).Return(nil)
			}
			fx.sellerRepo.EXPECT().Update(mock.Anything, seller).Return(nil)

			approved, err := fx.service.ApproveSeller(context.Background(), seller.ID)
			require.NoError(t, err)
			assert.Equal(t, entity.SellerStatusApproved, approved.Status)
			assert.True(t, approved.IsVerified)
			require.NotNil(t, approved.VerifiedAt)
			assert.Equal(t, testNow, *approved.VerifiedAt)
			assert.Empty(t, approved.RejectionReason)

			if tt.wantGrant {
				assert.Equal(t, entity.RoleSeller, user.RoleName())
				assert.Equal(t, sellerRole.ID, user.RoleID)
			} else {
				assert.Equal(t, tt.role, user.RoleName())
			}
		})
	}
}

func TestSellerService_Transitions(t *testing.T) {
	tests := []struct {
		name string
		from entity.SellerStatus
		act     func(usecase.SellerUsecase, uuid.UUID) (*entity.Seller, error)
		want    entity.SellerStatus
		wantErr error
	}{
		{
			name: "reject pending",
			from: entity.SellerStatusPending,
			act: func(s usecase.SellerUsecase, id uuid.UUID) (*entity.Seller, error) {
				return s.RejectSeller(context.Background(), id, " incomplete documents ")
			},
			want: entity.SellerStatusRejected,
		},
		{
			name: "suspend approved",
			from: entity.SellerStatusApproved,
			act: func(s usecase.SellerUsecase, id uuid.UUID) (*entity.Seller, error) {
				return s.SuspendSeller(context.Background(), id, "chargebacks")
			},
			want: entity.SellerStatusSuspended,
		},
		{
			name: "suspend pending",
			from: entity.SellerStatusPending,
			act: func(s usecase.SellerUsecase, id uuid.UUID) (*entity.Seller, error) {
				return s.SuspendSeller(context.Background(), id, "")
			},
			wantErr: domainerrors.ErrIllegalSellerTransition,
		},
		{
			name: "approve rejected",
			from: entity.SellerStatusRejected,
			act: func(s usecase.SellerUsecase, id uuid.UUID) (*entity.Seller, error) {
				return s.ApproveSeller(context.Background(), id)
			},
			wantErr: domainerrors.ErrIllegalSellerTransition,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestSellerService(t)
			seller := &entity.Seller{ID: uuid.New(), UserID: uuid.New(), Status: tt.from}

			expectTx(fx.txManager, fx.factory)
			fx.factory.EXPECT().NewSellerRepository().Return(fx.sellerRepo)
			fx.sellerRepo.EXPECT().FindByID(mock.Anything, seller.ID).Return(seller, nil)
			if tt.wantErr == nil {
				fx.sellerRepo.EXPECT().Update(mock.Anything, seller).Return(nil)
			}

			got, err := tt.act(fx.service, seller.ID)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, tt.from, seller.Status)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Status)
			assert.NotEmpty(t, got.RejectionReason)
		})
	}
}

func TestSellerService_Stats(t *testing.T) {
	fx := createTestSellerService(t)
	ctx := context.Background()
	userID := uuid.New()
	seller := &entity.Seller{ID: uuid.New(), UserID: userID, RatingAverage: 4.6, TotalReviews: 12}

	fx.sellerRepo.EXPECT().FindByUserID(ctx, userID).Return(seller, nil)
	fx.productRepo.EXPECT().CountBySeller(ctx, seller.ID).Return(int64(7), nil)
	fx.orderRepo.EXPECT().SellerSummary(ctx, seller.ID).Return(repository.SellerOrderSummary{
		TotalOrders:   30,
		PendingOrders: 4,
		Revenue:       decimal.RequireFromString("1234.50"),
	}, nil)

	stats, err := fx.service.Stats(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, int64(7), stats.TotalProducts)
	assert.Equal(t, int64(30), stats.TotalOrders)
	assert.Equal(t, int64(4), stats.PendingOrders)
	assert.Equal(t, "1234.5", stats.TotalRevenue.String())
	assert.InDelta(t, 4.6, stats.Rating, 1e-9)
	assert.Equal(t, int64(12), stats.TotalReviews)
}

func TestSellerService_CreateSellerReview(t *testing.T) {
	ctx := context.Background()
	buyer := uuid.New()
	seller := &entity.Seller{ID: uuid.New(), UserID: uuid.New()}

	t.Run("linked order with seller line", func(t *testing.T) {
		fx := createTestSellerService(t)
		order := &entity.Order{ID: uuid.New(), UserID: buyer, Items: []*entity.OrderItem{{SellerID: seller.ID}}}

		fx.sellerRepo.EXPECT().FindByID(ctx, seller.ID).Return(seller, nil)
		fx.orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)
		fx.sellerRepo.EXPECT().CreateReview(ctx, mock.AnythingOfType("*entity.SellerReview")).Return(nil)

		review, err := fx.service.CreateSellerReview(ctx, buyer, seller.ID, &usecase.CreateSellerReviewInput{OrderID: &order.ID, Rating: 5, Comment: " fast shipping "})
		require.NoError(t, err)
		assert.Equal(t, "fast shipping", review.Comment)
		assert.False(t, review.IsApproved)
	})

	t.Run("order without seller line", func(t *testing.T) {
		fx := createTestSellerService(t)
		order := &entity.Order{ID: uuid.New(), UserID: buyer, Items: []*entity.OrderItem{{SellerID: uuid.New()}}}

		fx.sellerRepo.EXPECT().FindByID(ctx, seller.ID).Return(seller, nil)
		fx.orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)

		_, err := fx.service.CreateSellerReview(ctx, buyer, seller.ID, &usecase.CreateSellerReviewInput{OrderID: &order.ID, Rating: 5})
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("own store", func(t *testing.T) {
		fx := createTestSellerService(t)
		fx.sellerRepo.EXPECT().FindByID(ctx, seller.ID).Return(seller, nil)

		_, err := fx.service.CreateSellerReview(ctx, seller.UserID, seller.ID, &usecase.CreateSellerReviewInput{Rating: 5})
		assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	})
}

func TestSellerService_ApproveSellerReview(t *testing.T) {
	fx := createTestSellerService(t)
	review := &entity.SellerReview{ID: uuid.New(), SellerID: uuid.New(), Rating: 4}

	expectTx(fx.txManager, fx.factory)
	fx.factory.EXPECT().NewSellerRepository().Return(fx.sellerRepo)
	fx.sellerRepo.EXPECT().FindReviewByID(mock.Anything, review.ID).Return(review, nil)
	fx.sellerRepo.EXPECT().UpdateReview(mock.Anything, review).Return(nil)
	fx.sellerRepo.EXPECT().RatingSummary(mock.Anything, review.SellerID).Return(entity.RatingSummary{Average: 4.25, Count: 2}, nil)
	fx.sellerRepo.EXPECT().UpdateRating(mock.Anything, review.SellerID, entity.RatingSummary{Average: 4.3, Count: 2}).Return(nil)

	approved, err := fx.service.ApproveSellerReview(context.Background(), review.ID)
	require.NoError(t, err)
	assert.True(t, approved.IsApproved)
}
