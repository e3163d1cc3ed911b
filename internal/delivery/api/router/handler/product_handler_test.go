package handler

import (
	"net/http"
	"testing"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	mockUsecase "marketplace/internal/mocks/usecase"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type productHandlerFixtures struct {
	e         *echo.Echo
	actor     usecase.Actor
	productUC *mockUsecase.MockProductUsecase
}

func createTestProductHandler(t *testing.T, role entity.RoleName) productHandlerFixtures {
	fx := productHandlerFixtures{
		e:         newTestEcho(),
		actor:     usecase.Actor{UserID: uuid.New(), Role: role},
		productUC: mockUsecase.NewMockProductUsecase(t),
	}

	h := NewProductHandler(ProductHandlerParams{ProductUC: fx.productUC, Logger: discardLogger})
	public := fx.e.Group("/api/v1/products")
	public.GET("", h.ListProducts)
	public.GET("/search", h.SearchProducts)
	public.GET("/featured", h.FeaturedProducts)
	public.GET("/:id", h.GetProduct)
	public.GET("/:id/related", h.RelatedProducts)

	g := fx.e.Group("/api/v1", asCaller(fx.actor.UserID, role))
	g.POST("/products", h.CreateProduct)
	g.PUT("/products/:id", h.UpdateProduct)
	g.PATCH("/products/:id/status", h.ToggleStatus)
	g.DELETE("/products/:id", h.DeleteProduct)
	g.POST("/products/:id/listings", h.CreateListing)
	g.PUT("/listings/:id/stock", h.UpdateListingStock)

	return fx
}

func TestProductHandler_CreateProduct(t *testing.T) {
	fx := createTestProductHandler(t, entity.RoleSeller)
	brandID := uuid.New()

	fx.productUC.EXPECT().CreateProduct(mock.Anything, fx.actor, mock.MatchedBy(func(in *usecase.CreateProductInput) bool {
		return in.Name == "Trail Runner" &&
			in.Price.Equal(decimal.RequireFromString("89.90")) &&
			in.Stock == 12 &&
			in.BrandID != nil && *in.BrandID == brandID
	})).Return(&entity.Product{ID: uuid.New(), Name: "Trail Runner", Slug: "trail-runner", Price: decimal.RequireFromString("89.90")}, nil)

	rec := doRequest(fx.e, http.MethodPost, "/api/v1/products",
		`{"name":"Trail Runner","description":"Grippy outsole","price":"89.90","stock":12,"brand_id":"`+brandID.String()+`"}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	got := decodeData[entity.Product](t, rec)
	assert.Equal(t, "trail-runner", got.Slug)
	assert.True(t, got.Price.Equal(decimal.RequireFromString("89.90")))
}

func TestProductHandler_CreateProduct_Invalid(t *testing.T) {
	fx := createTestProductHandler(t, entity.RoleSeller)

	rec := doRequest(fx.e, http.MethodPost, "/api/v1/products", `{"description":"x","price":"-1","stock":-3}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.Equal(t, "is required", env.Details["name"])
	assert.Equal(t, "must be greater than or equal to 0", env.Details["price"])
	assert.Equal(t, "must be greater than or equal to 0", env.Details["stock"])
}

func TestProductHandler_GetProduct_BySlug(t *testing.T) {
	fx := createTestProductHandler(t, entity.RoleCustomer)

	fx.productUC.EXPECT().GetProduct(mock.Anything, "trail-runner").Return(&entity.Product{Slug: "trail-runner", Views: 42}, nil)

	rec := doRequest(fx.e, http.MethodGet, "/api/v1/products/trail-runner", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 42, decodeData[entity.Product](t, rec).Views)
}

func TestProductHandler_GetProduct_NotFound(t *testing.T) {
	fx := createTestProductHandler(t, entity.RoleCustomer)

	fx.productUC.EXPECT().GetProduct(mock.Anything, "gone").Return(nil, errors.WithStack(domainerrors.ErrProductNotFound))

	rec := doRequest(fx.e, http.MethodGet, "/api/v1/products/gone", "")

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "PRODUCT_NOT_FOUND", decodeEnvelope(t, rec).Code)
}

func TestProductHandler_ListProducts_Filters(t *testing.T) {
	fx := createTestProductHandler(t, entity.RoleCustomer)
	categoryID := uuid.New()

	fx.productUC.EXPECT().ListProducts(mock.Anything, mock.MatchedBy(func(f entity.ProductFilter) bool {
		return f.Search == "shoe" &&
			f.CategoryID != nil && *f.CategoryID == categoryID &&
			f.MinPrice != nil && f.MinPrice.Equal(decimal.NewFromInt(10)) &&
			f.MaxPrice == nil &&
			f.MinRating == 4 &&
			f.InStock &&
			f.Sort == "price_asc"
	}), entity.Pagination{Page: 2, Limit: 24}).Return(entity.NewPage([]*entity.Product{}, 0, entity.Pagination{Page: 2, Limit: 24}), nil)

	rec := doRequest(fx.e, http.MethodGet,
		"/api/v1/products?search=shoe&category="+categoryID.String()+"&min_price=10&min_rating=4&in_stock=true&sort=price_asc&page=2&limit=24", "")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestProductHandler_ListProducts_BadFilter(t *testing.T) {
	tests := []struct {
		name   string
		query  string
		detail string
	}{
		{name: "category", query: "category=shoes", detail: "category must be a valid UUID"},
		{name: "max price", query: "max_price=cheap", detail: "max_price must be a number"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestProductHandler(t, entity.RoleCustomer)

			rec := doRequest(fx.e, http.MethodGet, "/api/v1/products?"+tt.query, "")

			require.Equal(t, http.StatusBadRequest, rec.Code)
			_, detail := errorDetail(t, rec)
			assert.Equal(t, tt.detail, detail)
		})
	}
}

func TestProductHandler_SearchProducts_RequiresQuery(t *testing.T) {
	fx := createTestProductHandler(t, entity.RoleCustomer)

	rec := doRequest(fx.e, http.MethodGet, "/api/v1/products/search?q=%20", "")

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Search query is required", decodeEnvelope(t, rec).Message)
}

func TestProductHandler_FeaturedProducts_DefaultLimit(t *testing.T) {
	fx := createTestProductHandler(t, entity.RoleCustomer)

	fx.productUC.EXPECT().FeaturedProducts(mock.Anything, defaultFeaturedLimit).Return([]*entity.Product{}, nil)

	rec := doRequest(fx.e, http.MethodGet, "/api/v1/products/featured", "")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestProductHandler_ToggleStatus_FlipsWhenOmitted(t *testing.T) {
	fx := createTestProductHandler(t, entity.RoleSeller)
	productID := uuid.New()

	fx.productUC.EXPECT().ToggleActive(mock.Anything, fx.actor, productID, (*bool)(nil)).
		Return(&entity.Product{ID: productID, IsActive: false}, nil)

	rec := doRequest(fx.e, http.MethodPatch, "/api/v1/products/"+productID.String()+"/status", `{}`)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestProductHandler_DeleteProduct_NotOwner(t *testing.T) {
	fx := createTestProductHandler(t, entity.RoleSeller)
	productID := uuid.New()

	fx.productUC.EXPECT().DeleteProduct(mock.Anything, fx.actor, productID).Return(errors.WithStack(domainerrors.ErrForbidden))

	rec := doRequest(fx.e, http.MethodDelete, "/api/v1/products/"+productID.String(), "")

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestProductHandler_CreateListing_PriceMustBePositive(t *testing.T) {
	fx := createTestProductHandler(t, entity.RoleSeller)

	rec := doRequest(fx.e, http.MethodPost, "/api/v1/products/"+uuid.NewString()+"/listings", `{"price":"0","stock_quantity":4}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "must be greater than 0", decodeEnvelope(t, rec).Details["price"])
}

func TestProductHandler_UpdateListingStock(t *testing.T) {
	listingID := uuid.New()

	t.Run("subtract", func(t *testing.T) {
		fx := createTestProductHandler(t, entity.RoleSeller)
		fx.productUC.EXPECT().UpdateListingStock(mock.Anything, fx.actor, listingID, 3, entity.StockSubtract).
			Return(&entity.ProductListing{ID: listingID, StockQuantity: 7, IsAvailable: true}, nil)

		rec := doRequest(fx.e, http.MethodPut, "/api/v1/listings/"+listingID.String()+"/stock", `{"quantity":3,"operation":"subtract"}`)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, 7, decodeData[entity.ProductListing](t, rec).StockQuantity)
	})

	t.Run("below zero", func(t *testing.T) {
		fx := createTestProductHandler(t, entity.RoleSeller)
		fx.productUC.EXPECT().UpdateListingStock(mock.Anything, fx.actor, listingID, 50, entity.StockSubtract).
			Return(nil, errors.WithStack(domainerrors.ErrInsufficientStock))

		rec := doRequest(fx.e, http.MethodPut, "/api/v1/listings/"+listingID.String()+"/stock", `{"quantity":50,"operation":"subtract"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "INSUFFICIENT_STOCK", decodeEnvelope(t, rec).Code)
	})

	t.Run("unknown operation", func(t *testing.T) {
		fx := createTestProductHandler(t, entity.RoleSeller)

		rec := doRequest(fx.e, http.MethodPut, "/api/v1/listings/"+listingID.String()+"/stock", `{"quantity":1,"operation":"multiply"}`)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "must be one of: add, subtract, set", decodeEnvelope(t, rec).Details["operation"])
	})
}
