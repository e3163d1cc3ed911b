package model

import (
	"time"

	"github.com/google/uuid"
)

// SellerModel mirrors the 'sellers' table. UserID is unique: one profile per user.
type SellerModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID          uuid.UUID `gorm:"type:uuid;not null;unique"`
	BusinessName    string    `gorm:"type:varchar(100);not null"`
	BusinessEmail   string    `gorm:"type:varchar(255);not null"`
	BusinessPhone   string    `gorm:"type:varchar(30);not null"`
	Description     string    `gorm:"type:text"`
	Logo            string    `gorm:"type:varchar(500)"`
	TaxID           string    `gorm:"type:varchar(50);not null;unique"`
	BusinessLicense string    `gorm:"type:varchar(100)"`
	AddressLine1    string    `gorm:"type:varchar(255)"`
	AddressLine2    string    `gorm:"type:varchar(255)"`
	City            string    `gorm:"type:varchar(100)"`
	State           string    `gorm:"type:varchar(100)"`
	Country         string    `gorm:"type:varchar(100)"`
	ZipCode         string    `gorm:"type:varchar(20)"`
	Status          string    `gorm:"type:varchar(20);not null;default:'pending';index"`
	IsVerified      bool      `gorm:"not null;default:false"`
	VerifiedAt      *time.Time
	RejectionReason string  `gorm:"type:text"`
	RatingAverage   float64 `gorm:"type:numeric(2,1);not null;default:0"`
	TotalReviews    int     `gorm:"not null;default:0"`
	CommissionRate  float64 `gorm:"type:numeric(5,2);not null;default:10"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (SellerModel) TableName() string {
	return "sellers"
}

// SellerReviewModel mirrors the 'seller_reviews' table.
type SellerReviewModel struct {
	ID         uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	SellerID   uuid.UUID  `gorm:"type:uuid;not null;index"`
	UserID     uuid.UUID  `gorm:"type:uuid;not null;index"`
	OrderID    *uuid.UUID `gorm:"type:uuid"`
	Rating     int        `gorm:"not null"`
	Comment    string     `gorm:"type:text"`
	IsApproved bool       `gorm:"not null;default:false"`
	ApprovedAt *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (SellerReviewModel) TableName() string {
	return "seller_reviews"
}
