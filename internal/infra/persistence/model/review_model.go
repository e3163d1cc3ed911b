package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// VoteJSON is one element of a review's vote column.
type VoteJSON struct {
	UserID uuid.UUID `json:"user_id"`
	Vote   string    `json:"vote"`
}

// ReviewImageJSON is one element of a review's image column.
type ReviewImageJSON struct {
	Key string `json:"key"`
	URL string `json:"url"`
}

// ReviewModel mirrors the 'reviews' table. (product_id, user_id) is unique.
type ReviewModel struct {
	ID                 uuid.UUID                            `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ProductID          uuid.UUID                            `gorm:"type:uuid;not null;uniqueIndex:idx_reviews_product_user"`
	UserID             uuid.UUID                            `gorm:"type:uuid;not null;uniqueIndex:idx_reviews_product_user"`
	OrderID            *uuid.UUID                           `gorm:"type:uuid"`
	Rating             int                                  `gorm:"not null;check:chk_reviews_rating,rating BETWEEN 1 AND 5"`
	Title              string                               `gorm:"type:varchar(100);not null"`
	Comment            string                               `gorm:"type:varchar(2000);not null"`
	Images             datatypes.JSONSlice[ReviewImageJSON] `gorm:"type:jsonb"`
	IsVerifiedPurchase bool                                 `gorm:"not null;default:false"`
	IsApproved         bool                                 `gorm:"not null;default:false;index"`
	ApprovedAt         *time.Time
	HelpfulCount       int                           `gorm:"not null;default:0"`
	NotHelpfulCount    int                           `gorm:"not null;default:0"`
	Votes              datatypes.JSONSlice[VoteJSON] `gorm:"type:jsonb"`
	SellerResponse     string                        `gorm:"type:text"`
	SellerRespondedAt  *time.Time
	CreatedAt          time.Time `gorm:"index"`
	UpdatedAt          time.Time
}

// TableName explicitly sets the table name for GORM.
func (ReviewModel) TableName() string {
	return "reviews"
}
