package model

import (
	"time"

	"github.com/google/uuid"
)

// AuthenticationModel is a sign-in credential. A provider identity maps to
// exactly one user; rows cascade with UserModel.
type AuthenticationModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v7()"`
	UserID         uuid.UUID `gorm:"type:uuid;not null;index"`
	Provider       string    `gorm:"type:varchar(32);not null;uniqueIndex:idx_auth_identity"`
	ProviderUserID string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_auth_identity"`
	PasswordHash   string    `gorm:"type:varchar(255)"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (AuthenticationModel) TableName() string {
	return "user_authentications"
}

// RefreshTokenModel is a session row, looked up by the token digest and
// listed per user in expiry order.
type RefreshTokenModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v7()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index:idx_refresh_tokens_user_expiry,priority:1"`
	TokenHash string    `gorm:"type:char(64);uniqueIndex;not null"`
	UserAgent string    `gorm:"type:varchar(255)"`
	ClientIP  string    `gorm:"type:varchar(45)"`
	ExpiresAt time.Time `gorm:"not null;index:idx_refresh_tokens_user_expiry,priority:2"`
	CreatedAt time.Time
}

func (RefreshTokenModel) TableName() string {
	return "refresh_tokens"
}
