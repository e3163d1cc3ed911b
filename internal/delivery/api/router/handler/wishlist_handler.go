package handler

import (
	"log/slog"

	"marketplace/internal/delivery/api/response"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// WishlistHandlerParams holds dependencies for WishlistHandler, injected by Fx.
type WishlistHandlerParams struct {
	fx.In

	WishlistUC usecase.WishlistUsecase
	Logger     *slog.Logger
}

// WishlistHandler serves the caller's saved products.
type WishlistHandler struct {
	wishlistUC usecase.WishlistUsecase
	logger     *slog.Logger
}

// NewWishlistHandler is the constructor for WishlistHandler.
func NewWishlistHandler(params WishlistHandlerParams) *WishlistHandler {
	return &WishlistHandler{
		wishlistUC: params.WishlistUC,
		logger:     params.Logger,
	}
}

// WishlistItemRequest is the body of POST /wishlist.
type WishlistItemRequest struct {
	ProductID uuid.UUID `json:"product_id" validate:"required"`
}

// GetWishlist returns the caller's wishlist.
func (h *WishlistHandler) GetWishlist(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	wishlist, err := h.wishlistUC.GetWishlist(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, wishlist)
}

// AddItem saves a product.
func (h *WishlistHandler) AddItem(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req WishlistItemRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	wishlist, err := h.wishlistUC.AddToWishlist(c.Request().Context(), userID, req.ProductID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, wishlist)
}

// RemoveItem drops a saved product.
func (h *WishlistHandler) RemoveItem(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	productID, err := paramUUID(c, "productId")
	if err != nil {
		return err
	}

	wishlist, err := h.wishlistUC.RemoveFromWishlist(c.Request().Context(), userID, productID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, wishlist)
}

// Clear empties the wishlist.
func (h *WishlistHandler) Clear(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	if err := h.wishlistUC.ClearWishlist(c.Request().Context(), userID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, "Wishlist cleared")
}

// MoveToCart moves a saved product into the cart.
func (h *WishlistHandler) MoveToCart(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	productID, err := paramUUID(c, "productId")
	if err != nil {
		return err
	}

	cart, err := h.wishlistUC.MoveToCart(c.Request().Context(), userID, productID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, cart)
}
