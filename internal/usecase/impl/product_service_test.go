package impl

import (
	"context"
	"testing"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
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

type productServiceFixtures struct {
	service      usecase.ProductUsecase
	txManager    *mockRepo.MockTransactionManager
	factory      *mockRepo.MockRepositoryFactory
	productRepo  *mockRepo.MockProductRepository
	variantRepo  *mockRepo.MockVariantRepository
	listingRepo  *mockRepo.MockListingRepository
	categoryRepo *mockRepo.MockCategoryRepository
	brandRepo    *mockRepo.MockBrandRepository
	sellerRepo   *mockRepo.MockSellerRepository
	cache        *mockSvc.MockProductCache
	storage      *mockSvc.MockImageStorage
}

func createTestProductService(t *testing.T) productServiceFixtures {
	fx := productServiceFixtures{
		txManager:    mockRepo.NewMockTransactionManager(t),
		factory:      mockRepo.NewMockRepositoryFactory(t),
		productRepo:  mockRepo.NewMockProductRepository(t),
		variantRepo:  mockRepo.NewMockVariantRepository(t),
		listingRepo:  mockRepo.NewMockListingRepository(t),
		categoryRepo: mockRepo.NewMockCategoryRepository(t),
		brandRepo:    mockRepo.NewMockBrandRepository(t),
		sellerRepo:   mockRepo.NewMockSellerRepository(t),
		cache:        mockSvc.NewMockProductCache(t),
		storage:      mockSvc.NewMockImageStorage(t),
	}

	srv := NewProductService(ProductServiceParams{
		TxManager:    fx.txManager,
		ProductRepo:  fx.productRepo,
		VariantRepo:  fx.variantRepo,
		ListingRepo:  fx.listingRepo,
		CategoryRepo: fx.categoryRepo,
		BrandRepo:    fx.brandRepo,
		SellerRepo:   fx.sellerRepo,
		Cache:        fx.cache,
		Storage:      fx.storage,
		Logger:       newDiscardLogger(),
	})
	srv.(*productService).clock = fixedClock()
	fx.service = srv

	return fx
}

// sellerActor registers an approved seller profile for a fresh user.
func (fx productServiceFixtures) sellerActor(status entity.SellerStatus) (usecase.Actor, *entity.Seller) {
	seller := &entity.Seller{ID: uuid.New(), UserID: uuid.New(), Status: status}
	fx.sellerRepo.EXPECT().FindByUserID(mock.Anything, seller.UserID).Return(seller, nil).Maybe()

	return usecase.Actor{UserID: seller.UserID, Role: entity.RoleSeller}, seller
}

func TestProductService_CreateProduct(t *testing.T) {
	fx := createTestProductService(t)
	actor, seller := fx.sellerActor(entity.SellerStatusApproved)
	brandID := uuid.New()

	fx.brandRepo.EXPECT().FindByID(mock.Anything, brandID).Return(&entity.Brand{ID: brandID}, nil)
	fx.productRepo.EXPECT().Create(mock.Anything, mock.AnythingOfType("*entity.Product")).Return(nil)

	product, err := fx.service.CreateProduct(context.Background(), actor, &usecase.CreateProductInput{
		Name:    "  Noise Cancelling Headphones 2 ",
		BrandID: &brandID,
		Price:   decimal.RequireFromString("199.99"),
		Stock:   12,
		SKU:     " wh-1000 ",
		Images:  []entity.ProductImage{{URL: "a.jpg"}, {URL: "b.jpg"}},
	})
	require.NoError(t, err)
	assert.Equal(t, "Noise Cancelling Headphones 2", product.Name)
	assert.Equal(t, "noise-cancelling-headphones-2", product.Slug)
	assert.Equal(t, "WH-1000", product.SKU)
	assert.Equal(t, seller.ID, product.SellerID)
	assert.True(t, product.IsActive)
	assert.True(t, product.Images[0].IsPrimary)
	assert.False(t, product.Images[1].IsPrimary)
	assert.Equal(t, testNow, product.CreatedAt)
}

func TestProductService_CreateProduct_Rejections(t *testing.T) {
	t.Run("pending seller", func(t *testing.T) {
		fx := createTestProductService(t)
		actor, _ := fx.sellerActor(entity.SellerStatusPending)

		_, err := fx.service.CreateProduct(context.Background(), actor, &usecase.CreateProductInput{Name: "Lamp"})
		assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	})

	t.Run("name without letters", func(t *testing.T) {
		fx := createTestProductService(t)
		actor, _ := fx.sellerActor(entity.SellerStatusApproved)

		_, err := fx.service.CreateProduct(context.Background(), actor, &usecase.CreateProductInput{Name: " -- "})
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("unknown category", func(t *testing.T) {
		fx := createTestProductService(t)
		actor, _ := fx.sellerActor(entity.SellerStatusApproved)
		categoryID := uuid.New()
		fx.categoryRepo.EXPECT().FindByID(mock.Anything, categoryID).Return(nil, repository.ErrCategoryNotFound)

		_, err := fx.service.CreateProduct(context.Background(), actor, &usecase.CreateProductInput{
			Name:        "Lamp",
			CategoryIDs: []uuid.UUID{categoryID},
		})
		assert.ErrorIs(t, err, domainerrors.ErrCategoryNotFound)
	})

	t.Run("slug taken", func(t *testing.T) {
		fx := createTestProductService(t)
		actor, _ := fx.sellerActor(entity.SellerStatusApproved)
		fx.productRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(domainerrors.ConflictError("slug"))

		_, err := fx.service.CreateProduct(context.Background(), actor, &usecase.CreateProductInput{Name: "Lamp"})
		require.ErrorIs(t, err, domainerrors.ErrConflict)
		assert.Contains(t, err.Error(), "slug already exists")
	})
}

func TestProductService_GetProduct_BySlugCountsView(t *testing.T) {
	fx := createTestProductService(t)
	product := &entity.Product{ID: uuid.New(), Slug: "desk-lamp", Views: 4}

	fx.cache.EXPECT().Get(mock.Anything, "desk-lamp").Return(nil, nil)
	fx.productRepo.EXPECT().FindBySlug(mock.Anything, "desk-lamp").Return(product, nil)
	fx.cache.EXPECT().Set(mock.Anything, product).Return(nil)
	fx.productRepo.EXPECT().IncrementViews(mock.Anything, product.ID).Return(5, nil)

	got, err := fx.service.GetProduct(context.Background(), "desk-lamp")
	require.NoError(t, err)
	assert.Equal(t, 5, got.Views)
}

func TestProductService_GetProduct_CacheHitReportsStoredViews(t *testing.T) {
	fx := createTestProductService(t)
	cached := &entity.Product{ID: uuid.New(), Slug: "desk-lamp", Views: 4}

	fx.cache.EXPECT().Get(mock.Anything, "desk-lamp").Return(cached, nil)
	fx.productRepo.EXPECT().IncrementViews(mock.Anything, cached.ID).Return(42, nil)

	got, err := fx.service.GetProduct(context.Background(), "desk-lamp")
	require.NoError(t, err)
	assert.Equal(t, 42, got.Views)
}

func TestProductService_GetProduct_ViewCountFailureIsIgnored(t *testing.T) {
	fx := createTestProductService(t)
	product := &entity.Product{ID: uuid.New(), Slug: "desk-lamp", Views: 4}
	key := product.ID.String()

	fx.cache.EXPECT().Get(mock.Anything, key).Return(product, nil)
	fx.productRepo.EXPECT().IncrementViews(mock.Anything, product.ID).Return(0, errors.New("deadlock detected"))

	got, err := fx.service.GetProduct(context.Background(), key)
	require.NoError(t, err)
	assert.Equal(t, 4, got.Views)
}

func TestProductService_GetProduct_NotFound(t *testing.T) {
	fx := createTestProductService(t)
	id := uuid.New()

	fx.cache.EXPECT().Get(mock.Anything, id.String()).Return(nil, errors.New("connection refused"))
	fx.productRepo.EXPECT().FindByID(mock.Anything, id).Return(nil, repository.ErrProductNotFound)

	_, err := fx.service.GetProduct(context.Background(), id.String())
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestProductService_SearchProducts_RequiresText(t *testing.T) {
	fx := createTestProductService(t)

	_, err := fx.service.SearchProducts(context.Background(), "   ", entity.Pagination{Page: 1, Limit: 10})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestProductService_UpdateProduct_RenameRegeneratesSlug(t *testing.T) {
	fx := createTestProductService(t)
	actor, seller := fx.sellerActor(entity.SellerStatusApproved)
	product := &entity.Product{ID: uuid.New(), Name: "Desk Lamp", Slug: "desk-lamp", SellerID: seller.ID}
	name := "Desk Lamp Pro"

	fx.productRepo.EXPECT().FindByID(mock.Anything, product.ID).Return(product, nil)
	fx.productRepo.EXPECT().Update(mock.Anything, product).Return(nil)
	fx.cache.EXPECT().Invalidate(mock.Anything, product.ID, "desk-lamp-pro").Return(nil).Once()
	fx.cache.EXPECT().Invalidate(mock.Anything, product.ID, "desk-lamp").Return(nil).Once()

	got, err := fx.service.UpdateProduct(context.Background(), actor, product.ID, &usecase.UpdateProductInput{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "desk-lamp-pro", got.Slug)
}

func TestProductService_UpdateProduct_OtherSeller(t *testing.T) {
	fx := createTestProductService(t)
	actor, _ := fx.sellerActor(entity.SellerStatusApproved)
	product := &entity.Product{ID: uuid.New(), SellerID: uuid.New()}
	stock := 3

	fx.productRepo.EXPECT().FindByID(mock.Anything, product.ID).Return(product, nil)

	_, err := fx.service.UpdateProduct(context.Background(), actor, product.ID, &usecase.UpdateProductInput{Stock: &stock})
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestProductService_ToggleActive(t *testing.T) {
	admin := usecase.Actor{UserID: uuid.New(), Role: entity.RoleAdmin}
	inactive := false

	tests := []struct {
		name   string
		active *bool
		want   bool
	}{
		{name: "flip", active: nil, want: false},
		{name: "explicit", active: &inactive, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestProductService(t)
			product := &entity.Product{ID: uuid.New(), Slug: "desk-lamp", IsActive: true}

			fx.productRepo.EXPECT().FindByID(mock.Anything, product.ID).Return(product, nil)
			fx.productRepo.EXPECT().Update(mock.Anything, product).Return(nil)
			fx.cache.EXPECT().Invalidate(mock.Anything, product.ID, "desk-lamp").Return(nil)

			got, err := fx.service.ToggleActive(context.Background(), admin, product.ID, tt.active)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.IsActive)
		})
	}
}

func TestProductService_DeleteProduct_RemovesStoredImages(t *testing.T) {
	fx := createTestProductService(t)
	admin := usecase.Actor{UserID: uuid.New(), Role: entity.RoleAdmin}
	product := &entity.Product{
		ID:   uuid.New(),
		Slug: "desk-lamp",
		Images: []entity.ProductImage{
			{Key: "products/a.jpg", URL: "https://cdn/a.jpg"},
			{URL: "https://elsewhere/b.jpg"},
			{Key: "products/c.jpg", URL: "https://cdn/c.jpg"},
		},
	}

	fx.productRepo.EXPECT().FindByID(mock.Anything, product.ID).Return(product, nil)
	fx.productRepo.EXPECT().Delete(mock.Anything, product.ID).Return(nil)
	fx.cache.EXPECT().Invalidate(mock.Anything, product.ID, "desk-lamp").Return(nil)
	fx.storage.EXPECT().Delete(mock.Anything, "products/a.jpg").Return(errors.New("bucket offline"))
	fx.storage.EXPECT().Delete(mock.Anything, "products/c.jpg").Return(nil)

	require.NoError(t, fx.service.DeleteProduct(context.Background(), admin, product.ID))
}

func TestProductService_CreateVariant_FirstBecomesDefault(t *testing.T) {
	fx := createTestProductService(t)
	actor, seller := fx.sellerActor(entity.SellerStatusApproved)
	product := &entity.Product{ID: uuid.New(), Slug: "tee", SellerID: seller.ID}

	fx.productRepo.EXPECT().FindByID(mock.Anything, product.ID).Return(product, nil)
	expectTx(fx.txManager, fx.factory)
	fx.factory.EXPECT().NewVariantRepository().Return(fx.variantRepo)
	fx.variantRepo.EXPECT().ClearDefault(mock.Anything, product.ID).Return(nil)
	fx.variantRepo.EXPECT().Create(mock.Anything, mock.AnythingOfType("*entity.ProductVariant")).Return(nil)
	fx.cache.EXPECT().Invalidate(mock.Anything, product.ID, "tee").Return(nil)

	variant, err := fx.service.CreateVariant(context.Background(), actor, product.ID, &usecase.CreateVariantInput{
		SKU:           "tee-red-m",
		Price:         decimal.RequireFromString("19.00"),
		StockQuantity: 5,
	})
	require.NoError(t, err)
	assert.Equal(t, "TEE-RED-M", variant.SKU)
	assert.True(t, variant.IsDefault)
}

func TestProductService_CreateVariant_MissingSKU(t *testing.T) {
	fx := createTestProductService(t)
	admin := usecase.Actor{UserID: uuid.New(), Role: entity.RoleAdmin}
	product := &entity.Product{ID: uuid.New()}

	fx.productRepo.EXPECT().FindByID(mock.Anything, product.ID).Return(product, nil)

	_, err := fx.service.CreateVariant(context.Background(), admin, product.ID, &usecase.CreateVariantInput{SKU: "  "})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestProductService_UpdateListingStock(t *testing.T) {
	tests := []struct {
		name          string
		quantity      int
		op            entity.StockOperation
		wantStock     int
		wantAvailable bool
	}{
		{name: "subtract to zero", quantity: 9, op: entity.StockSubtract, wantStock: 0, wantAvailable: false},
		{name: "add", quantity: 2, op: entity.StockAdd, wantStock: 6, wantAvailable: true},
		{name: "set", quantity: 10, op: entity.StockSet, wantStock: 10, wantAvailable: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestProductService(t)
			actor, seller := fx.sellerActor(entity.SellerStatusApproved)
			listing := &entity.ProductListing{ID: uuid.New(), SellerID: seller.ID, StockQuantity: 4, IsAvailable: true}

			fx.listingRepo.EXPECT().FindByID(mock.Anything, listing.ID).Return(listing, nil)
			fx.listingRepo.EXPECT().Update(mock.Anything, listing).Return(nil)

			got, err := fx.service.UpdateListingStock(context.Background(), actor, listing.ID, tt.quantity, tt.op)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStock, got.StockQuantity)
			assert.Equal(t, tt.wantAvailable, got.IsAvailable)
		})
	}
}

func TestProductService_UpdateListingStock_UnknownOperation(t *testing.T) {
	fx := createTestProductService(t)

	_, err := fx.service.UpdateListingStock(context.Background(), usecase.Actor{}, uuid.New(), 1, entity.StockOperation("double"))
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}
