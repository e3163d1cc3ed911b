package usecase

import (
	"context"

	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
)

// RegisterDeviceInput identifies an app install and its current push token.
type RegisterDeviceInput struct {
	DeviceID string
	FCMToken string
	Platform string
}

// DeviceUsecase manages where a buyer's order notifications are pushed.
type DeviceUsecase interface {
	// RegisterDevice is idempotent per client device id.
	RegisterDevice(ctx context.Context, userID uuid.UUID, input *RegisterDeviceInput) (*entity.UserDevice, error)
	RefreshToken(ctx context.Context, userID, deviceID uuid.UUID, fcmToken string) error
	ListDevices(ctx context.Context, userID uuid.UUID) ([]*entity.UserDevice, error)
	RemoveDevice(ctx context.Context, userID, deviceID uuid.UUID) error
}
