package model

import (
	"time"

	"github.com/google/uuid"
)

// UserDeviceModel maps the user_devices table. A client device id appears
// at most once per user so re-registration updates the row in place.
type UserDeviceModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_user_devices_user_device,priority:1"`
	DeviceID   string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_user_devices_user_device,priority:2"`
	FCMToken   string    `gorm:"column:fcm_token;type:varchar(512);not null;index"`
	Platform   string    `gorm:"type:varchar(16);not null"`
	IsActive   bool      `gorm:"not null;default:true"`
	LastSeenAt time.Time `gorm:"not null"`
	CreatedAt  time.Time
	UpdatedAt  time.Time

	User *UserModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

func (UserDeviceModel) TableName() string {
	return "user_devices"
}
