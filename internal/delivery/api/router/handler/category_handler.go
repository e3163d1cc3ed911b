package handler

import (
	"log/slog"
	"net/http"

	"marketplace/internal/delivery/api/response"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CategoryHandlerParams holds dependencies for CategoryHandler, injected by Fx.
type CategoryHandlerParams struct {
	fx.In

	CategoryUC usecase.CategoryUsecase
	BrandUC    usecase.BrandUsecase
	Logger     *slog.Logger
}

// CategoryHandler serves the category tree and brands.
type CategoryHandler struct {
	categoryUC usecase.CategoryUsecase
	brandUC    usecase.BrandUsecase
	logger     *slog.Logger
}

// NewCategoryHandler is the constructor for CategoryHandler.
func NewCategoryHandler(params CategoryHandlerParams) *CategoryHandler {
	return &CategoryHandler{
		categoryUC: params.CategoryUC,
		brandUC:    params.BrandUC,
		logger:     params.Logger,
	}
}

// CategoryRequest is the body of category create and update.
type CategoryRequest struct {
	Name        *string    `json:"name" validate:"omitempty,min=1,max=100"`
	Description *string    `json:"description" validate:"omitempty,max=500"`
	Image       *string    `json:"image" validate:"omitempty,url"`
	ParentID    *uuid.UUID `json:"parent_id"`
	ClearParent bool       `json:"clear_parent"`
	SortOrder   *int       `json:"sort_order"`
	IsFeatured  *bool      `json:"is_featured"`
	IsActive    *bool      `json:"is_active"`
}

func (r *CategoryRequest) input() *usecase.CategoryInput {
	return &usecase.CategoryInput{
		Name:        r.Name,
		Description: r.Description,
		Image:       r.Image,
		ParentID:    r.ParentID,
		ClearParent: r.ClearParent,
		SortOrder:   r.SortOrder,
		IsFeatured:  r.IsFeatured,
		IsActive:    r.IsActive,
	}
}

// BrandRequest is the body of brand create and update.
type BrandRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=100"`
	Description *string `json:"description" validate:"omitempty,max=500"`
	Logo        *string `json:"logo" validate:"omitempty,url"`
	Website     *string `json:"website" validate:"omitempty,url"`
	IsFeatured  *bool   `json:"is_featured"`
	IsActive    *bool   `json:"is_active"`
}

func (r *BrandRequest) input() *usecase.BrandInput {
	return &usecase.BrandInput{
		Name:        r.Name,
		Description: r.Description,
		Logo:        r.Logo,
		Website:     r.Website,
		IsFeatured:  r.IsFeatured,
		IsActive:    r.IsActive,
	}
}

// ListCategories returns active categories, nested when ?tree=true.
// Admins may pass ?all=true to include inactive ones.
func (h *CategoryHandler) ListCategories(c echo.Context) error {
	categories, err := h.categoryUC.ListCategories(c.Request().Context(), !queryBool(c, "all"), queryBool(c, "tree"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, categories)
}

// GetCategory resolves a category by id or slug.
func (h *CategoryHandler) GetCategory(c echo.Context) error {
	category, err := h.categoryUC.GetCategory(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, category)
}

// CreateCategory adds a category.
func (h *CategoryHandler) CreateCategory(c echo.Context) error {
	var req CategoryRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	category, err := h.categoryUC.CreateCategory(c.Request().Context(), req.input())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Created(c, category)
}

// UpdateCategory edits a category.
func (h *CategoryHandler) UpdateCategory(c echo.Context) error {
	categoryID, err := paramUUID(c, "id")
	if err != nil {
		return err
	}

	var req CategoryRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	category, err := h.categoryUC.UpdateCategory(c.Request().Context(), categoryID, req.input())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, category)
}

// DeleteCategory removes a category without children or products.
func (h *CategoryHandler) DeleteCategory(c echo.Context) error {
	categoryID, err := paramUUID(c, "id")
	if err != nil {
		return err
	}

	if err := h.categoryUC.DeleteCategory(c.Request().Context(), categoryID); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// ListBrands returns active brands, or all of them with ?all=true.
func (h *CategoryHandler) ListBrands(c echo.Context) error {
	brands, err := h.brandUC.ListBrands(c.Request().Context(), !queryBool(c, "all"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, brands)
}

// GetBrand returns a brand by id.
func (h *CategoryHandler) GetBrand(c echo.Context) error {
	brandID, err := paramUUID(c, "id")
	if err != nil {
		return err
	}

	brand, err := h.brandUC.GetBrand(c.Request().Context(), brandID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, brand)
}

// CreateBrand adds a brand.
func (h *CategoryHandler) CreateBrand(c echo.Context) error {
	var req BrandRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	brand, err := h.brandUC.CreateBrand(c.Request().Context(), req.input())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Created(c, brand)
}

// UpdateBrand edits a brand.
func (h *CategoryHandler) UpdateBrand(c echo.Context) error {
	brandID, err := paramUUID(c, "id")
	if err != nil {
		return err
	}

	var req BrandRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	brand, err := h.brandUC.UpdateBrand(c.Request().Context(), brandID, req.input())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, brand)
}

// DeleteBrand removes a brand no product references.
func (h *CategoryHandler) DeleteBrand(c echo.Context) error {
	brandID, err := paramUUID(c, "id")
	if err != nil {
		return err
	}

	if err := h.brandUC.DeleteBrand(c.Request().Context(), brandID); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
