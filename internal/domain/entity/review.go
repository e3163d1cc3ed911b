package entity

import (
	"time"

	"github.com/google/uuid"
)

// VoteType is a helpfulness vote on a review.
type VoteType string

const (
	VoteHelpful    VoteType = "helpful"
	VoteNotHelpful VoteType = "not_helpful"
)

// IsValid reports whether v is a known vote.
func (v VoteType) IsValid() bool {
	return v == VoteHelpful || v == VoteNotHelpful
}

// ReviewVote is one user's vote. A user holds at most one vote per review.
type ReviewVote struct {
	UserID uuid.UUID `json:"user_id"`
	Vote   VoteType  `json:"vote"`
}

// SellerResponse is the seller's public reply to a review.
type SellerResponse struct {
	Comment     string    `json:"comment"`
	RespondedAt time.Time `json:"responded_at"`
}

// ReviewImage is an uploaded image attached to a review.
type ReviewImage struct {
	Key string `json:"key"`
	URL string `json:"url"`
}

// Review is a product review, unique per (product, user).
type Review struct {
	ID                 uuid.UUID       `json:"id"`
	ProductID          uuid.UUID       `json:"product_id"`
	UserID             uuid.UUID       `json:"user_id"`
	OrderID            *uuid.UUID      `json:"order_id,omitempty"`
	Rating             int             `json:"rating"`
	Title              string          `json:"title"`
	Comment            string          `json:"comment"`
	Images             []ReviewImage   `json:"images,omitempty"`
	IsVerifiedPurchase bool            `json:"is_verified_purchase"`
	IsApproved         bool            `json:"is_approved"`
	ApprovedAt         *time.Time      `json:"approved_at,omitempty"`
	HelpfulCount       int             `json:"helpful_count"`
	NotHelpfulCount    int             `json:"not_helpful_count"`
	Votes              []ReviewVote    `json:"-"`
	SellerResponse     *SellerResponse `json:"seller_response,omitempty"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
}

// Approve marks the review visible.
func (r *Review) Approve(now time.Time) {
	r.IsApproved = true
	r.ApprovedAt = &now
}

// ResetApproval hides the review again until re-moderated.
func (r *Review) ResetApproval() {
	r.IsApproved = false
	r.ApprovedAt = nil
}

// ApplyVote replaces the user's previous vote and recomputes both counters.
func (r *Review) ApplyVote(userID uuid.UUID, vote VoteType) {
	votes := make([]ReviewVote, 0, len(r.Votes)+1)
	for _, v := range r.Votes {
		if v.UserID != userID {
			votes = append(votes, v)
		}
	}
	votes = append(votes, ReviewVote{UserID: userID, Vote: vote})
	r.Votes = votes

	r.HelpfulCount, r.NotHelpfulCount = 0, 0
	for _, v := range r.Votes {
		switch v.Vote {
		case VoteHelpful:
			r.HelpfulCount++
		case VoteNotHelpful:
			r.NotHelpfulCount++
		}
	}
}

// Respond records the seller's reply.
func (r *Review) Respond(comment string, now time.Time) {
	r.SellerResponse = &SellerResponse{Comment: comment, RespondedAt: now}
}

// RatingDistribution counts approved reviews per star value.
type RatingDistribution map[int]int64
