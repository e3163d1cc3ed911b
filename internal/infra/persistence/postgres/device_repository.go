package postgres

import (
	"context"
	"time"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type deviceRepository struct {
	db *gorm.DB
}

// NewDeviceRepository is the constructor for deviceRepository.
func NewDeviceRepository(db *gorm.DB) repository.DeviceRepository {
	return &deviceRepository{db: db}
}

// Upsert relies on the (user_id, device_id) unique index.
func (repo *deviceRepository) Upsert(ctx context.Context, device *entity.UserDevice) error {
	device.ID = newID(device.ID)
	if device.LastSeenAt.IsZero() {
		device.LastSeenAt = time.Now().UTC()
	}
	deviceM := fromDeviceDomain(device)

	err := repo.db.WithContext(ctx).
		Clauses(
			clause.OnConflict{
				Columns: []clause.Column{{Name: "user_id"}, {Name: "device_id"}},
				DoUpdates: clause.Assignments(map[string]any{
					"fcm_token":    deviceM.FCMToken,
					"platform":     deviceM.Platform,
					"is_active":    true,
					"last_seen_at": deviceM.LastSeenAt,
					"updated_at":   gorm.Expr("NOW()"),
				}),
			},
			clause.Returning{},
		).
		Create(deviceM).Error
	if err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("invalid user reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert device")
	}

	*device = *toDeviceDomain(deviceM)

	return nil
}

func (repo *deviceRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.UserDevice, error) {
	var deviceM model.UserDeviceModel
	if err := repo.db.WithContext(ctx).First(&deviceM, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDeviceNotFound
		}

		return nil, errors.Wrap(err, "failed to find device")
	}

	return toDeviceDomain(&deviceM), nil
}

// ListActiveByUser returns the most recently seen devices first.
func (repo *deviceRepository) ListActiveByUser(ctx context.Context, userID uuid.UUID) ([]*entity.UserDevice, error) {
	var rows []*model.UserDeviceModel
	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND is_active AND fcm_token <> ''", userID).
		Order("last_seen_at DESC").
		Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list active devices")
	}

	devices := make([]*entity.UserDevice, 0, len(rows))
	for _, row := range rows {
		devices = append(devices, toDeviceDomain(row))
	}

	return devices, nil
}

// UpdateToken also reactivates the device, since a fresh token means the
// install is alive again.
func (repo *deviceRepository) UpdateToken(ctx context.Context, id uuid.UUID, fcmToken string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserDeviceModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"fcm_token":    fcmToken,
			"is_active":    true,
			"last_seen_at": time.Now().UTC(),
		})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update device token")
	}
	if result.RowsAffected == 0 {
		return repository.ErrDeviceNotFound
	}

	return nil
}

func (repo *deviceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Delete(&model.UserDeviceModel{}, "id = ?", id)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete device")
	}
	if result.RowsAffected == 0 {
		return repository.ErrDeviceNotFound
	}

	return nil
}

func (repo *deviceRepository) DeactivateTokens(ctx context.Context, tokens []string) (int64, error) {
	if len(tokens) == 0 {
		return 0, nil
	}

	result := repo.db.WithContext(ctx).
		Model(&model.UserDeviceModel{}).
		Where("fcm_token IN ? AND is_active", tokens).
		Update("is_active", false)
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to deactivate device tokens")
	}

	return result.RowsAffected, nil
}

func toDeviceDomain(m *model.UserDeviceModel) *entity.UserDevice {
	if m == nil {
		return nil
	}

	return &entity.UserDevice{
		ID:         m.ID,
		UserID:     m.UserID,
		DeviceID:   m.DeviceID,
		FCMToken:   m.FCMToken,
		Platform:   entity.DevicePlatform(m.Platform),
		IsActive:   m.IsActive,
		LastSeenAt: m.LastSeenAt,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

func fromDeviceDomain(d *entity.UserDevice) *model.UserDeviceModel {
	return &model.UserDeviceModel{
		ID:         d.ID,
		UserID:     d.UserID,
		DeviceID:   d.DeviceID,
		FCMToken:   d.FCMToken,
		Platform:   string(d.Platform),
		IsActive:   d.IsActive,
		LastSeenAt: d.LastSeenAt,
		CreatedAt:  d.CreatedAt,
		UpdatedAt:  d.UpdatedAt,
	}
}
