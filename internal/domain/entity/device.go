package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// DevicePlatform is the client OS a push token was issued for.
type DevicePlatform string

const (
	PlatformIOS     DevicePlatform = "ios"
	PlatformAndroid DevicePlatform = "android"
	PlatformWeb     DevicePlatform = "web"
)

// ParsePlatform normalises a client-supplied platform name.
func ParsePlatform(raw string) (DevicePlatform, bool) {
	p := DevicePlatform(strings.ToLower(strings.TrimSpace(raw)))
	switch p {
	case PlatformIOS, PlatformAndroid, PlatformWeb:
		return p, true
	default:
		return "", false
	}
}

// UserDevice is a buyer's app install that receives order push notifications.
// DeviceID is chosen by the client and is unique per user.
type UserDevice struct {
	ID         uuid.UUID      `json:"id"`
	UserID     uuid.UUID      `json:"user_id"`
	DeviceID   string         `json:"device_id"`
	FCMToken   string         `json:"fcm_token"`
	Platform   DevicePlatform `json:"platform"`
	IsActive   bool           `json:"is_active"`
	LastSeenAt time.Time      `json:"last_seen_at"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
}

// Reachable reports whether pushes should be sent to the device.
func (d *UserDevice) Reachable() bool {
	return d.IsActive && d.FCMToken != ""
}
