package handler

import (
	"log/slog"
	"net/http"

	"marketplace/internal/delivery/api/response"
	"marketplace/internal/domain/entity"
	"marketplace/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AddressHandlerParams holds dependencies for AddressHandler, injected by Fx.
type AddressHandlerParams struct {
	fx.In

	AddressUC usecase.AddressUsecase
	Logger    *slog.Logger
}

// AddressHandler serves the caller's saved addresses.
type AddressHandler struct {
	addressUC usecase.AddressUsecase
	logger    *slog.Logger
}

// NewAddressHandler is the constructor for AddressHandler.
func NewAddressHandler(params AddressHandlerParams) *AddressHandler {
	return &AddressHandler{
		addressUC: params.AddressUC,
		logger:    params.Logger,
	}
}

// AddressRequest is the body of address create and update.
type AddressRequest struct {
	FullName     *string `json:"full_name" validate:"omitempty,max=100"`
	Phone        *string `json:"phone" validate:"omitempty,max=20"`
	AddressLine1 *string `json:"address_line1" validate:"omitempty,max=200"`
	AddressLine2 *string `json:"address_line2" validate:"omitempty,max=200"`
	City         *string `json:"city" validate:"omitempty,max=100"`
	State        *string `json:"state" validate:"omitempty,max=100"`
	Country      *string `json:"country" validate:"omitempty,max=100"`
	ZipCode      *string `json:"zip_code" validate:"omitempty,max=20"`
	AddressType  *string `json:"address_type" validate:"omitempty,oneof=home work other"`
	IsDefault    *bool   `json:"is_default"`
}

func (r *AddressRequest) input() *usecase.AddressInput {
	input := &usecase.AddressInput{
		FullName:     r.FullName,
		Phone:        r.Phone,
		AddressLine1: r.AddressLine1,
		AddressLine2: r.AddressLine2,
		City:         r.City,
		State:        r.State,
		Country:      r.Country,
		ZipCode:      r.ZipCode,
		IsDefault:    r.IsDefault,
	}
	if r.AddressType != nil {
		kind := entity.AddressType(*r.AddressType)
		input.AddressType = &kind
	}

	return input
}

// ListAddresses returns the caller's addresses.
func (h *AddressHandler) ListAddresses(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	addresses, err := h.addressUC.ListAddresses(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, addresses)
}

// GetDefault returns the caller's default address.
func (h *AddressHandler) GetDefault(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	address, err := h.addressUC.GetDefaultAddress(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, address)
}

// AddAddress saves a new address.
func (h *AddressHandler) AddAddress(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req AddressRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	address, err := h.addressUC.AddAddress(c.Request().Context(), userID, req.input())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Created(c, address)
}

// UpdateAddress edits one of the caller's addresses.
func (h *AddressHandler) UpdateAddress(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	addressID, err := paramUUID(c, "id")
	if err != nil {
		return err
	}

	var req AddressRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	address, err := h.addressUC.UpdateAddress(c.Request().Context(), userID, addressID, req.input())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, address)
}

// DeleteAddress removes one of the caller's addresses.
func (h *AddressHandler) DeleteAddress(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	addressID, err := paramUUID(c, "id")
	if err != nil {
		return err
	}

	if err := h.addressUC.DeleteAddress(c.Request().Context(), userID, addressID); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// SetDefault makes an address the caller's default.
func (h *AddressHandler) SetDefault(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	addressID, err := paramUUID(c, "id")
	if err != nil {
		return err
	}

	address, err := h.addressUC.SetDefaultAddress(c.Request().Context(), userID, addressID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, address)
}
