package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SellerStatus is the onboarding lifecycle of a seller profile.
type SellerStatus string

const (
	SellerStatusPending   SellerStatus = "pending"
	SellerStatusApproved  SellerStatus = "approved"
	SellerStatusRejected  SellerStatus = "rejected"
	SellerStatusSuspended SellerStatus = "suspended"
)

// IsValid checks if the SellerStatus is a valid value.
func (s SellerStatus) IsValid() bool {
	switch s {
	case SellerStatusPending, SellerStatusApproved, SellerStatusRejected, SellerStatusSuspended:
		return true
	default:
		return false
	}
}

// CanTransitionTo encodes pending → {approved, rejected} and approved → suspended.
func (s SellerStatus) CanTransitionTo(next SellerStatus) bool {
	switch s {
	case SellerStatusPending:
		return next == SellerStatusApproved || next == SellerStatusRejected
	case SellerStatusApproved:
		return next == SellerStatusSuspended
	default:
		return false
	}
}

// BusinessAddress is the seller's registered address.
type BusinessAddress struct {
	AddressLine1 string `json:"address_line1,omitempty"`
	AddressLine2 string `json:"address_line2,omitempty"`
	City         string `json:"city,omitempty"`
	State        string `json:"state,omitempty"`
	Country      string `json:"country,omitempty"`
	ZipCode      string `json:"zip_code,omitempty"`
}

// Seller is the business profile attached one-to-one to a User.
type Seller struct {
	ID              uuid.UUID       `json:"id"`
	UserID          uuid.UUID       `json:"user_id"`
	BusinessName    string          `json:"business_name"`
	BusinessEmail   string          `json:"business_email"`
	BusinessPhone   string          `json:"business_phone"`
	Description     string          `json:"description,omitempty"`
	Logo            string          `json:"logo,omitempty"`
	TaxID           string          `json:"tax_id"`
	BusinessLicense string          `json:"business_license,omitempty"`
	BusinessAddress BusinessAddress `json:"business_address"`
	Status          SellerStatus    `json:"status"`
	IsVerified      bool            `json:"is_verified"`
	VerifiedAt      *time.Time      `json:"verified_at,omitempty"`
	RejectionReason string          `json:"rejection_reason,omitempty"`
	RatingAverage   float64         `json:"rating_average"`
	TotalReviews    int             `json:"total_reviews"`
	CommissionRate  float64         `json:"commission_rate"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// BlocksLogin reports whether the seller status forbids signing in.
func (s *Seller) BlocksLogin() bool {
	return s.Status == SellerStatusPending ||
		s.Status == SellerStatusRejected ||
		s.Status == SellerStatusSuspended
}

// SellerReview is customer feedback about a seller, aggregated into the seller rating once approved.
type SellerReview struct {
	ID         uuid.UUID  `json:"id"`
	SellerID   uuid.UUID  `json:"seller_id"`
	UserID     uuid.UUID  `json:"user_id"`
	OrderID    *uuid.UUID `json:"order_id,omitempty"`
	Rating     int        `json:"rating"`
	Comment    string     `json:"comment"`
	IsApproved bool       `json:"is_approved"`
	ApprovedAt *time.Time `json:"approved_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// SellerStats summarises a seller's activity.
type SellerStats struct {
	TotalProducts int64           `json:"total_products"`
	TotalOrders   int64           `json:"total_orders"`
	PendingOrders int64           `json:"pending_orders"`
	TotalRevenue  decimal.Decimal `json:"total_revenue"`
	Rating        float64         `json:"rating"`
	TotalReviews  int64           `json:"total_reviews"`
	Seller        *Seller         `json:"seller"`
}
