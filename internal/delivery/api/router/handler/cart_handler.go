package handler

import (
	"log/slog"

	"marketplace/internal/delivery/api/response"
	"marketplace/internal/domain/entity"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CartHandlerParams holds dependencies for CartHandler, injected by Fx.
type CartHandlerParams struct {
	fx.In

	CartUC usecase.CartUsecase
	Logger *slog.Logger
}

// CartHandler serves the caller's shopping cart.
type CartHandler struct {
	cartUC usecase.CartUsecase
	logger *slog.Logger
}

// NewCartHandler is the constructor for CartHandler.
func NewCartHandler(params CartHandlerParams) *CartHandler {
	return &CartHandler{
		cartUC: params.CartUC,
		logger: params.Logger,
	}
}

// AddToCartRequest is the body of POST /cart/add.
type AddToCartRequest struct {
	ProductID uuid.UUID  `json:"product_id" validate:"required"`
	ListingID *uuid.UUID `json:"listing_id"`
	Quantity  int        `json:"quantity" validate:"required,min=1"`
}

// UpdateCartItemRequest is the body of PUT /cart/:id. A quantity of zero removes the line.
type UpdateCartItemRequest struct {
	Quantity int `json:"quantity" validate:"gte=0"`
}

// SyncCartRequest is the body of POST /cart/sync.
type SyncCartRequest struct {
	Items []SyncCartLine `json:"items" validate:"dive"`
}

// SyncCartLine is one line of a client-held cart.
type SyncCartLine struct {
	ProductID *uuid.UUID `json:"product_id"`
	ListingID *uuid.UUID `json:"listing_id"`
	Quantity  int        `json:"quantity" validate:"min=1"`
}

// CartCountResponse is the body of GET /cart/count.
type CartCountResponse struct {
	Count int `json:"count"`
}

// GetCart returns the caller's cart, creating an empty one on first access.
func (h *CartHandler) GetCart(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	cart, err := h.cartUC.GetCart(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, cart)
}

// AddItem adds a product or listing to the cart.
func (h *CartHandler) AddItem(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req AddToCartRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	cart, err := h.cartUC.AddItem(c.Request().Context(), userID, &usecase.AddCartItemInput{
		ProductID: req.ProductID,
		ListingID: req.ListingID,
		Quantity:  req.Quantity,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, cart)
}

// UpdateItem sets the quantity of a cart line.
func (h *CartHandler) UpdateItem(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	ref, err := cartItemRef(c)
	if err != nil {
		return err
	}

	var req UpdateCartItemRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	cart, err := h.cartUC.UpdateItemQuantity(c.Request().Context(), userID, ref, req.Quantity)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, cart)
}

// RemoveItem drops a cart line.
func (h *CartHandler) RemoveItem(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	ref, err := cartItemRef(c)
	if err != nil {
		return err
	}

	cart, err := h.cartUC.RemoveItem(c.Request().Context(), userID, ref)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, cart)
}

// ClearCart empties the cart.
func (h *CartHandler) ClearCart(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	cart, err := h.cartUC.ClearCart(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, cart)
}

// ItemCount returns the total quantity in the cart.
func (h *CartHandler) ItemCount(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	count, err := h.cartUC.ItemCount(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, CartCountResponse{Count: count})
}

// SyncCart merges a client-held cart into the stored one.
func (h *CartHandler) SyncCart(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req SyncCartRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	items := make([]usecase.SyncCartItem, 0, len(req.Items))
	for _, line := range req.Items {
		items = append(items, usecase.SyncCartItem{
			ProductID: line.ProductID,
			ListingID: line.ListingID,
			Quantity:  line.Quantity,
		})
	}

	cart, err := h.cartUC.SyncCart(c.Request().Context(), userID, items)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, cart)
}

// cartItemRef reads the line reference from :id. The id names a product
// unless ?by=listing says it names a seller listing.
func cartItemRef(c echo.Context) (entity.CartItemRef, error) {
	id, err := paramUUID(c, "id")
	if err != nil {
		return entity.CartItemRef{}, err
	}
	if c.QueryParam("by") == "listing" {
		return entity.ByListing(id), nil
	}

	return entity.ByProduct(id), nil
}
