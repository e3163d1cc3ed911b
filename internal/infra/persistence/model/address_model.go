package model

import (
	"time"

	"github.com/google/uuid"
)

// AddressModel is the GORM-specific struct for the 'addresses' table.
type AddressModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;index"`
	FullName     string    `gorm:"type:varchar(100);not null"`
	Phone        string    `gorm:"type:varchar(30);not null"`
	AddressLine1 string    `gorm:"type:varchar(255);not null"`
	AddressLine2 string    `gorm:"type:varchar(255)"`
	City         string    `gorm:"type:varchar(100);not null"`
	State        string    `gorm:"type:varchar(100);not null"`
	Country      string    `gorm:"type:varchar(100);not null"`
	ZipCode      string    `gorm:"type:varchar(20);not null"`
	AddressType  string    `gorm:"type:varchar(10);not null;default:'home'"`
	IsDefault    bool      `gorm:"not null;default:false"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (AddressModel) TableName() string {
	return "addresses"
}
