package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"marketplace/internal/delivery/api/response"
	"marketplace/internal/domain/entity"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

const (
	maxProductImages     = 10
	defaultFeaturedLimit = 8
	defaultRelatedLimit  = 4
)

// ProductHandlerParams holds dependencies for ProductHandler, injected by Fx.
type ProductHandlerParams struct {
	fx.In

	ProductUC usecase.ProductUsecase
	Logger    *slog.Logger
}

// ProductHandler serves catalog product, variant and listing endpoints.
type ProductHandler struct {
	productUC usecase.ProductUsecase
	logger    *slog.Logger
}

// NewProductHandler is the constructor for ProductHandler.
func NewProductHandler(params ProductHandlerParams) *ProductHandler {
	return &ProductHandler{
		productUC: params.ProductUC,
		logger:    params.Logger,
	}
}

// CreateProductRequest is the body of POST /products.
type CreateProductRequest struct {
	Name             string                `json:"name" validate:"required,max=200"`
	Description      string                `json:"description" validate:"required"`
	ShortDescription string                `json:"short_description" validate:"max=500"`
	SellerID         *uuid.UUID            `json:"seller_id"`
	BrandID          *uuid.UUID            `json:"brand_id"`
	CategoryIDs      []uuid.UUID           `json:"category_ids"`
	Price            decimal.Decimal       `json:"price" validate:"gte=0"`
	CompareAtPrice   *decimal.Decimal      `json:"compare_at_price"`
	Stock            int                   `json:"stock" validate:"gte=0"`
	SKU              string                `json:"sku" validate:"max=64"`
	Tags             []string              `json:"tags"`
	Images           []entity.ProductImage `json:"images"`
	IsFeatured       bool                  `json:"is_featured"`
}

// UpdateProductRequest is the body of PUT /products/:id.
type UpdateProductRequest struct {
	Name             *string               `json:"name" validate:"omitempty,min=1,max=200"`
	Description      *string               `json:"description"`
	ShortDescription *string               `json:"short_description" validate:"omitempty,max=500"`
	BrandID          *uuid.UUID            `json:"brand_id"`
	CategoryIDs      []uuid.UUID           `json:"category_ids"`
	Price            *decimal.Decimal      `json:"price"`
	CompareAtPrice   *decimal.Decimal      `json:"compare_at_price"`
	Stock            *int                  `json:"stock" validate:"omitempty,gte=0"`
	SKU              *string               `json:"sku" validate:"omitempty,max=64"`
	Tags             []string              `json:"tags"`
	Images           []entity.ProductImage `json:"images"`
	IsFeatured       *bool                 `json:"is_featured"`
}

// ToggleStatusRequest is the body of PATCH /products/:id/status. A missing
// is_active flips the current state.
type ToggleStatusRequest struct {
	IsActive *bool `json:"is_active"`
}

// CreateVariantRequest is the body of POST /products/:id/variants.
type CreateVariantRequest struct {
	SKU           string                    `json:"sku" validate:"required,max=64"`
	Attributes    []entity.VariantAttribute `json:"attributes"`
	Price         decimal.Decimal           `json:"price" validate:"gte=0"`
	StockQuantity int                       `json:"stock_quantity" validate:"gte=0"`
	Weight        float64                   `json:"weight" validate:"gte=0"`
	Barcode       string                    `json:"barcode"`
	IsDefault     bool                      `json:"is_default"`
}

// CreateListingRequest is the body of POST /products/:id/listings.
type CreateListingRequest struct {
	VariantID     *uuid.UUID      `json:"variant_id"`
	Price         decimal.Decimal `json:"price" validate:"gt=0"`
	StockQuantity int             `json:"stock_quantity" validate:"gte=0"`
}

// UpdateListingStockRequest is the body of PUT /listings/:id/stock.
type UpdateListingStockRequest struct {
	Quantity  int    `json:"quantity" validate:"gte=0"`
	Operation string `json:"operation" validate:"required,oneof=add subtract set"`
}

// CreateProduct adds a product under the caller's seller profile.
func (h *ProductHandler) CreateProduct(c echo.Context) error {
	actor, err := currentActor(c)
	if err != nil {
		return err
	}

	var req CreateProductRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	product, err := h.productUC.CreateProduct(c.Request().Context(), actor, &usecase.CreateProductInput{
		Name:             req.Name,
		Description:      req.Description,
		ShortDescription: req.ShortDescription,
		SellerID:         req.SellerID,
		BrandID:          req.BrandID,
		CategoryIDs:      req.CategoryIDs,
		Price:            req.Price,
		CompareAtPrice:   req.CompareAtPrice,
		Stock:            req.Stock,
		SKU:              req.SKU,
		Tags:             req.Tags,
		Images:           req.Images,
		IsFeatured:       req.IsFeatured,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Created(c, product)
}

// GetProduct resolves a product by id or slug.
func (h *ProductHandler) GetProduct(c echo.Context) error {
	product, err := h.productUC.GetProduct(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, product)
}

// ListProducts applies the catalog filters.
func (h *ProductHandler) ListProducts(c echo.Context) error {
	filter, err := productFilter(c)
	if err != nil {
		return err
	}

	page, err := h.productUC.ListProducts(c.Request().Context(), filter, pagination(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, page)
}

func productFilter(c echo.Context) (entity.ProductFilter, error) {
	filter := entity.ProductFilter{
		Search:   strings.TrimSpace(c.QueryParam("search")),
		InStock:  queryBool(c, "in_stock"),
		Featured: queryBool(c, "featured"),
		Sort:     c.QueryParam("sort"),
	}

	var err error
	if filter.CategoryID, err = queryUUID(c, "category"); err != nil {
		return filter, err
	}
	if filter.BrandID, err = queryUUID(c, "brand"); err != nil {
		return filter, err
	}
	if filter.SellerID, err = queryUUID(c, "seller"); err != nil {
		return filter, err
	}
	if filter.MinPrice, err = queryDecimal(c, "min_price"); err != nil {
		return filter, err
	}
	if filter.MaxPrice, err = queryDecimal(c, "max_price"); err != nil {
		return filter, err
	}
	if minRating, err := queryDecimal(c, "min_rating"); err != nil {
		return filter, err
	} else if minRating != nil {
		filter.MinRating = minRating.InexactFloat64()
	}

	return filter, nil
}

// SearchProducts runs a free-text search.
func (h *ProductHandler) SearchProducts(c echo.Context) error {
	text := strings.TrimSpace(c.QueryParam("q"))
	if text == "" {
		return response.BadRequest(c, "VALIDATION_FAILED", "Search query is required")
	}

	page, err := h.productUC.SearchProducts(c.Request().Context(), text, pagination(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, page)
}

// FeaturedProducts lists featured active products.
func (h *ProductHandler) FeaturedProducts(c echo.Context) error {
	products, err := h.productUC.FeaturedProducts(c.Request().Context(), queryInt(c, "limit", defaultFeaturedLimit))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, products)
}

// RelatedProducts lists products sharing a category.
func (h *ProductHandler) RelatedProducts(c echo.Context) error {
	productID, err := paramUUID(c, "id")
	if err != nil {
		return err
	}

	products, err := h.productUC.RelatedProducts(c.Request().Context(), productID, queryInt(c, "limit", defaultRelatedLimit))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, products)
}

// MyProducts lists the caller's own products.
func (h *ProductHandler) MyProducts(c echo.Context) error {
	actor, err := currentActor(c)
	if err != nil {
		return err
	}

	page, err := h.productUC.MyProducts(c.Request().Context(), actor, pagination(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, page)
}

// UpdateProduct edits a product the caller owns.
func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	actor, err := currentActor(c)
	if err != nil {
		return err
	}
	productID, err := paramUUID(c, "id")
	if err != nil {
		return err
	}

	var req UpdateProductRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	product, err := h.productUC.UpdateProduct(c.Request().Context(), actor, productID, &usecase.UpdateProductInput{
		Name:             req.Name,
		Description:      req.Description,
		ShortDescription: req.ShortDescription,
		BrandID:          req.BrandID,
		CategoryIDs:      req.CategoryIDs,
		Price:            req.Price,
		CompareAtPrice:   req.CompareAtPrice,
		Stock:            req.Stock,
		SKU:              req.SKU,
		Tags:             req.Tags,
		Images:           req.Images,
		IsFeatured:       req.IsFeatured,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, product)
}

// ToggleStatus activates or deactivates a product.
func (h *ProductHandler) ToggleStatus(c echo.Context) error {
	actor, err := currentActor(c)
	if err != nil {
		return err
	}
	productID, err := paramUUID(c, "id")
	if err != nil {
		return err
	}

	var req ToggleStatusRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	product, err := h.productUC.ToggleActive(c.Request().Context(), actor, productID, req.IsActive)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, product)
}

// DeleteProduct hard-deletes a product.
func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	actor, err := currentActor(c)
	if err != nil {
		return err
	}
	productID, err := paramUUID(c, "id")
	if err != nil {
		return err
	}

	if err := h.productUC.DeleteProduct(c.Request().Context(), actor, productID); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// CreateVariant adds a SKU-level variant.
func (h *ProductHandler) CreateVariant(c echo.Context) error {
	actor, err := currentActor(c)
	if err != nil {
		return err
	}
	productID, err := paramUUID(c, "id")
	if err != nil {
		return err
	}

	var req CreateVariantRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	variant, err := h.productUC.CreateVariant(c.Request().Context(), actor, productID, &usecase.CreateVariantInput{
		SKU:           req.SKU,
		Attributes:    req.Attributes,
		Price:         req.Price,
		StockQuantity: req.StockQuantity,
		Weight:        req.Weight,
		Barcode:       req.Barcode,
		IsDefault:     req.IsDefault,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Created(c, variant)
}

// UploadImages stores the multipart "images" files on the product.
func (h *ProductHandler) UploadImages(c echo.Context) error {
	actor, err := currentActor(c)
	if err != nil {
		return err
	}
	productID, err := paramUUID(c, "id")
	if err != nil {
		return err
	}

	files, cleanup, err := formFiles(c, "images", maxProductImages)
	defer cleanup()
	if err != nil {
		return err
	}

	product, err := h.productUC.UploadImages(c.Request().Context(), actor, productID, files)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, product)
}

// CreateListing offers the product under the caller's seller profile.
func (h *ProductHandler) CreateListing(c echo.Context) error {
	actor, err := currentActor(c)
	if err != nil {
		return err
	}
	productID, err := paramUUID(c, "id")
	if err != nil {
		return err
	}

	var req CreateListingRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	listing, err := h.productUC.CreateListing(c.Request().Context(), actor, productID, &usecase.CreateListingInput{
		VariantID:     req.VariantID,
		Price:         req.Price,
		StockQuantity: req.StockQuantity,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Created(c, listing)
}

// UpdateListingStock adds to, subtracts from or sets a listing's stock.
func (h *ProductHandler) UpdateListingStock(c echo.Context) error {
	actor, err := currentActor(c)
	if err != nil {
		return err
	}
	listingID, err := paramUUID(c, "id")
	if err != nil {
		return err
	}

	var req UpdateListingStockRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	listing, err := h.productUC.UpdateListingStock(c.Request().Context(), actor, listingID, req.Quantity, entity.StockOperation(req.Operation))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, listing)
}
