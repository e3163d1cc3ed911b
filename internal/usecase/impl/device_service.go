package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "marketplace/internal/delivery/context"
	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type deviceService struct {
	deviceRepo repository.DeviceRepository
	logger     *slog.Logger
	clock      clock
}

// NewDeviceService is the constructor for deviceService.
func NewDeviceService(deviceRepo repository.DeviceRepository, logger *slog.Logger) usecase.DeviceUsecase {
	return &deviceService{
		deviceRepo: deviceRepo,
		logger:     logger,
	}
}

func (s *deviceService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.LoggerOr(ctx, s.logger)
}

func (s *deviceService) RegisterDevice(ctx context.Context, userID uuid.UUID, input *usecase.RegisterDeviceInput) (*entity.UserDevice, error) {
	platform, ok := entity.ParsePlatform(input.Platform)
	if !ok {
		return nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("platform must be ios, android or web"))
	}
	deviceID := strings.TrimSpace(input.DeviceID)
	token := strings.TrimSpace(input.FCMToken)
	if deviceID == "" || token == "" {
		return nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("device_id and fcm_token are required"))
	}

	now := s.clock.now()
	device := &entity.UserDevice{
		UserID:     userID,
		DeviceID:   deviceID,
		FCMToken:   token,
		Platform:   platform,
		IsActive:   true,
		LastSeenAt: now,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.deviceRepo.Upsert(ctx, device); err != nil {
		return nil, errors.Wrap(err, "failed to register device")
	}

	s.log(ctx).Debug("Device registered",
		slog.String("userID", userID.String()),
		slog.String("platform", string(platform)),
	)

	return device, nil
}

func (s *deviceService) RefreshToken(ctx context.Context, userID, deviceID uuid.UUID, fcmToken string) error {
	token := strings.TrimSpace(fcmToken)
	if token == "" {
		return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("fcm_token is required"))
	}
	if err := s.authorize(ctx, userID, deviceID); err != nil {
		return err
	}

	if err := s.deviceRepo.UpdateToken(ctx, deviceID, token); err != nil {
		return translate(err, "failed to refresh device token")
	}

	return nil
}

func (s *deviceService) ListDevices(ctx context.Context, userID uuid.UUID) ([]*entity.UserDevice, error) {
	devices, err := s.deviceRepo.ListActiveByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list devices")
	}

	return devices, nil
}

func (s *deviceService) RemoveDevice(ctx context.Context, userID, deviceID uuid.UUID) error {
	if err := s.authorize(ctx, userID, deviceID); err != nil {
		return err
	}

	if err := s.deviceRepo.Delete(ctx, deviceID); err != nil {
		return translate(err, "failed to remove device")
	}

	return nil
}

// authorize hides other users' devices behind not found.
func (s *deviceService) authorize(ctx context.Context, userID, deviceID uuid.UUID) error {
	device, err := s.deviceRepo.FindByID(ctx, deviceID)
	if err != nil {
		return translate(err, "failed to find device")
	}
	if device.UserID != userID {
		return errors.Wrap(domainerrors.ErrDeviceNotFound, "device belongs to another user")
	}

	return nil
}
