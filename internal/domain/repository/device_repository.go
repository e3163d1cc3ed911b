package repository

import (
	"context"

	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrDeviceNotFound is returned when no device row matches.
var ErrDeviceNotFound = errors.New("device not found")

// DeviceRepository stores the push targets of buyers.
type DeviceRepository interface {
	// Upsert inserts the device or, when the user already registered the same
	// client device id, replaces its token and platform and reactivates it.
	// The stored row is written back into device.
	Upsert(ctx context.Context, device *entity.UserDevice) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.UserDevice, error)
	ListActiveByUser(ctx context.Context, userID uuid.UUID) ([]*entity.UserDevice, error)
	UpdateToken(ctx context.Context, id uuid.UUID, fcmToken string) error
	Delete(ctx context.Context, id uuid.UUID) error
	// DeactivateTokens switches off every device holding one of the tokens
	// and returns how many rows changed.
	DeactivateTokens(ctx context.Context, tokens []string) (int64, error)
}
