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

type deviceHandlerFixtures struct {
	e        *echo.Echo
	userID   uuid.UUID
	deviceUC *mockUsecase.MockDeviceUsecase
}

func createTestDeviceHandler(t *testing.T) deviceHandlerFixtures {
	fx := deviceHandlerFixtures{
		e:        newTestEcho(),
		userID:   uuid.New(),
		deviceUC: mockUsecase.NewMockDeviceUsecase(t),
	}

	h := NewDeviceHandler(DeviceHandlerParams{DeviceUC: fx.deviceUC, Logger: discardLogger})
	g := fx.e.Group("/api/v1/devices", asCaller(fx.userID, entity.RoleCustomer))
	g.POST("", h.RegisterDevice)
	g.GET("", h.ListDevices)
	g.PUT("/:id/token", h.RefreshToken)
	g.DELETE("/:id", h.RemoveDevice)

	return fx
}

func TestDeviceHandler_RegisterDevice(t *testing.T) {
	fx := createTestDeviceHandler(t)

	fx.deviceUC.EXPECT().RegisterDevice(mock.Anything, fx.userID, &usecase.RegisterDeviceInput{
		DeviceID: "pixel-8-a1b2",
		FCMToken: "fcm:token:1",
		Platform: "android",
	}).Return(&entity.UserDevice{ID: uuid.New(), DeviceID: "pixel-8-a1b2", Platform: entity.PlatformAndroid, IsActive: true}, nil)

	rec := doRequest(fx.e, http.MethodPost, "/api/v1/devices",
		`{"device_id":"pixel-8-a1b2","fcm_token":"fcm:token:1","platform":"android"}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.True(t, decodeData[entity.UserDevice](t, rec).IsActive)
}

func TestDeviceHandler_RegisterDevice_Invalid(t *testing.T) {
	fx := createTestDeviceHandler(t)

	rec := doRequest(fx.e, http.MethodPost, "/api/v1/devices", `{"device_id":"tv-1","platform":"tizen"}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.Equal(t, "is required", env.Details["fcm_token"])
	assert.Equal(t, "must be one of: ios, android, web", env.Details["platform"])
}

func TestDeviceHandler_RefreshToken(t *testing.T) {
	deviceID := uuid.New()

	t.Run("updated", func(t *testing.T) {
		fx := createTestDeviceHandler(t)
		fx.deviceUC.EXPECT().RefreshToken(mock.Anything, fx.userID, deviceID, "fcm:token:2").Return(nil)

		rec := doRequest(fx.e, http.MethodPut, "/api/v1/devices/"+deviceID.String()+"/token", `{"fcm_token":"fcm:token:2"}`)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Device token updated", decodeData[map[string]string](t, rec)["message"])
	})

	t.Run("someone else's device", func(t *testing.T) {
		fx := createTestDeviceHandler(t)
		fx.deviceUC.EXPECT().RefreshToken(mock.Anything, fx.userID, deviceID, "fcm:token:2").
			Return(errors.WithStack(domainerrors.ErrDeviceNotFound))

		rec := doRequest(fx.e, http.MethodPut, "/api/v1/devices/"+deviceID.String()+"/token", `{"fcm_token":"fcm:token:2"}`)

		require.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "DEVICE_NOT_FOUND", decodeEnvelope(t, rec).Code)
	})
}

func TestDeviceHandler_ListAndRemove(t *testing.T) {
	fx := createTestDeviceHandler(t)
	deviceID := uuid.New()

	fx.deviceUC.EXPECT().ListDevices(mock.Anything, fx.userID).Return([]*entity.UserDevice{{ID: deviceID}}, nil)
	fx.deviceUC.EXPECT().RemoveDevice(mock.Anything, fx.userID, deviceID).Return(nil)

	rec := doRequest(fx.e, http.MethodGet, "/api/v1/devices", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeData[[]*entity.UserDevice](t, rec), 1)

	rec = doRequest(fx.e, http.MethodDelete, "/api/v1/devices/"+deviceID.String(), "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
}
