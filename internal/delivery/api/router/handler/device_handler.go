package handler

import (
	"log/slog"
	"net/http"

	"marketplace/internal/delivery/api/response"
	"marketplace/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// DeviceHandlerParams holds dependencies for DeviceHandler, injected by Fx.
type DeviceHandlerParams struct {
	fx.In

	DeviceUC usecase.DeviceUsecase
	Logger   *slog.Logger
}

// DeviceHandler serves the push-notification devices of the caller.
type DeviceHandler struct {
	deviceUC usecase.DeviceUsecase
	logger   *slog.Logger
}

// NewDeviceHandler is the constructor for DeviceHandler
func NewDeviceHandler(params DeviceHandlerParams) *DeviceHandler {
	return &DeviceHandler{
		deviceUC: params.DeviceUC,
		logger:   params.Logger,
	}
}

// RegisterDeviceRequest is the body of POST /devices.
type RegisterDeviceRequest struct {
	DeviceID string `json:"device_id" validate:"required,max=255"`
	FCMToken string `json:"fcm_token" validate:"required,max=512"`
	Platform string `json:"platform" validate:"required,oneof=ios android web"`
}

// RefreshTokenRequest is the body of PUT /devices/:id/token.
type RefreshTokenRequest struct {
	FCMToken string `json:"fcm_token" validate:"required,max=512"`
}

// RegisterDevice registers the calling app install, or refreshes it when the
// device id is already known.
func (h *DeviceHandler) RegisterDevice(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req RegisterDeviceRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	device, err := h.deviceUC.RegisterDevice(c.Request().Context(), userID, &usecase.RegisterDeviceInput{
		DeviceID: req.DeviceID,
		FCMToken: req.FCMToken,
		Platform: req.Platform,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Created(c, device)
}

// ListDevices returns the caller's devices that still receive pushes.
func (h *DeviceHandler) ListDevices(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	devices, err := h.deviceUC.ListDevices(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, devices)
}

func (h *DeviceHandler) RefreshToken(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	deviceID, err := paramUUID(c, "id")
	if err != nil {
		return err
	}

	var req RefreshTokenRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if err := h.deviceUC.RefreshToken(c.Request().Context(), userID, deviceID, req.FCMToken); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, "Device token updated")
}

func (h *DeviceHandler) RemoveDevice(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	deviceID, err := paramUUID(c, "id")
	if err != nil {
		return err
	}

	if err := h.deviceUC.RemoveDevice(c.Request().Context(), userID, deviceID); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
