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
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type categoryHandlerFixtures struct {
	e          *echo.Echo
	categoryUC *mockUsecase.MockCategoryUsecase
	brandUC    *mockUsecase.MockBrandUsecase
}

func createTestCategoryHandler(t *testing.T) categoryHandlerFixtures {
	fx := categoryHandlerFixtures{
		e:          newTestEcho(),
		categoryUC: mockUsecase.NewMockCategoryUsecase(t),
		brandUC:    mockUsecase.NewMockBrandUsecase(t),
	}

	h := NewCategoryHandler(CategoryHandlerParams{CategoryUC: fx.categoryUC, BrandUC: fx.brandUC, Logger: discardLogger})
	api := fx.e.Group("/api/v1", asCaller(uuid.New(), entity.RoleAdmin))
	api.GET("/categories", h.ListCategories)
	api.GET("/categories/:id", h.GetCategory)
	api.POST("/categories", h.CreateCategory)
	api.PUT("/categories/:id", h.UpdateCategory)
	api.DELETE("/categories/:id", h.DeleteCategory)
	api.GET("/brands", h.ListBrands)
	api.GET("/brands/:id", h.GetBrand)
	api.POST("/brands", h.CreateBrand)
	api.PUT("/brands/:id", h.UpdateBrand)
	api.DELETE("/brands/:id", h.DeleteBrand)

	return fx
}

func TestCategoryHandler_ListCategories_Tree(t *testing.T) {
	fx := createTestCategoryHandler(t)
	rootID := uuid.New()

	fx.categoryUC.EXPECT().ListCategories(mock.Anything, true, true).Return([]*entity.Category{
		{ID: rootID, Name: "Audio", Children: []*entity.Category{{Name: "Headphones", ParentID: &rootID, Level: 1}}},
	}, nil)

	rec := doRequest(fx.e, http.MethodGet, "/api/v1/categories?tree=true", "")

	require.Equal(t, http.StatusOK, rec.Code)
	got := decodeData[[]*entity.Category](t, rec)
	require.Len(t, got, 1)
	require.Len(t, got[0].Children, 1)
	assert.Equal(t, "Headphones", got[0].Children[0].Name)
}

func TestCategoryHandler_ListCategories_IncludesInactive(t *testing.T) {
	fx := createTestCategoryHandler(t)

	fx.categoryUC.EXPECT().ListCategories(mock.Anything, false, false).Return([]*entity.Category{}, nil)

	rec := doRequest(fx.e, http.MethodGet, "/api/v1/categories?all=true", "")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCategoryHandler_GetCategory_BySlug(t *testing.T) {
	fx := createTestCategoryHandler(t)

	fx.categoryUC.EXPECT().GetCategory(mock.Anything, "headphones").Return(nil, errors.WithStack(domainerrors.ErrCategoryNotFound))

	rec := doRequest(fx.e, http.MethodGet, "/api/v1/categories/headphones", "")

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "CATEGORY_NOT_FOUND", decodeEnvelope(t, rec).Code)
}

func TestCategoryHandler_UpdateCategory_MoveToRoot(t *testing.T) {
	fx := createTestCategoryHandler(t)
	categoryID := uuid.New()

	fx.categoryUC.EXPECT().UpdateCategory(mock.Anything, categoryID, &usecase.CategoryInput{ClearParent: true}).
		Return(&entity.Category{ID: categoryID, Level: 0}, nil)

	rec := doRequest(fx.e, http.MethodPut, "/api/v1/categories/"+categoryID.String(), `{"clear_parent":true}`)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCategoryHandler_CreateCategory_BadImage(t *testing.T) {
	fx := createTestCategoryHandler(t)

	rec := doRequest(fx.e, http.MethodPost, "/api/v1/categories", `{"name":"Audio","image":"not a url"}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "must be a valid URL", decodeEnvelope(t, rec).Details["image"])
}

func TestCategoryHandler_DeleteCategory_HasChildren(t *testing.T) {
	fx := createTestCategoryHandler(t)
	categoryID := uuid.New()

	fx.categoryUC.EXPECT().DeleteCategory(mock.Anything, categoryID).
		Return(errors.WithStack(domainerrors.ErrValidationFailed.WithMessage("Category has subcategories")))

	rec := doRequest(fx.e, http.MethodDelete, "/api/v1/categories/"+categoryID.String(), "")

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Category has subcategories", decodeEnvelope(t, rec).Message)
}

func TestCategoryHandler_CreateBrand(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		fx := createTestCategoryHandler(t)
		name := "Northwind Audio"
		website := "https://northwind.example"
		fx.brandUC.EXPECT().CreateBrand(mock.Anything, &usecase.BrandInput{Name: &name, Website: &website}).
			Return(&entity.Brand{ID: uuid.New(), Name: name, Slug: "northwind-audio"}, nil)

		rec := doRequest(fx.e, http.MethodPost, "/api/v1/brands", `{"name":"Northwind Audio","website":"https://northwind.example"}`)

		require.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, "northwind-audio", decodeData[entity.Brand](t, rec).Slug)
	})

	t.Run("name taken", func(t *testing.T) {
		fx := createTestCategoryHandler(t)
		fx.brandUC.EXPECT().CreateBrand(mock.Anything, mock.Anything).
			Return(nil, errors.Wrap(domainerrors.ConflictError("Name"), "failed to create brand"))

		rec := doRequest(fx.e, http.MethodPost, "/api/v1/brands", `{"name":"Northwind Audio"}`)

		require.Equal(t, http.StatusConflict, rec.Code)
		code, detail := errorDetail(t, rec)
		assert.Equal(t, "CONFLICT", code)
		assert.Equal(t, "Name", detail)
	})
}

func TestCategoryHandler_ListBrands_ActiveOnly(t *testing.T) {
	fx := createTestCategoryHandler(t)

	fx.brandUC.EXPECT().ListBrands(mock.Anything, true).Return([]*entity.Brand{{Name: "Acme"}}, nil)

	rec := doRequest(fx.e, http.MethodGet, "/api/v1/brands", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeData[[]*entity.Brand](t, rec), 1)
}

func TestCategoryHandler_GetBrand_BadID(t *testing.T) {
	fx := createTestCategoryHandler(t)

	rec := doRequest(fx.e, http.MethodGet, "/api/v1/brands/acme", "")

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid id format", decodeEnvelope(t, rec).Message)
}

func TestCategoryHandler_UpdateAndDeleteBrand(t *testing.T) {
	fx := createTestCategoryHandler(t)
	brandID := uuid.New()
	featured := true

	fx.brandUC.EXPECT().UpdateBrand(mock.Anything, brandID, &usecase.BrandInput{IsFeatured: &featured}).
		Return(&entity.Brand{ID: brandID, IsFeatured: true}, nil)
	fx.brandUC.EXPECT().DeleteBrand(mock.Anything, brandID).Return(nil)

	rec := doRequest(fx.e, http.MethodPut, "/api/v1/brands/"+brandID.String(), `{"is_featured":true}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, decodeData[entity.Brand](t, rec).IsFeatured)

	rec = doRequest(fx.e, http.MethodDelete, "/api/v1/brands/"+brandID.String(), "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
}
