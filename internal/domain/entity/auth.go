// Package entity contains the core business objects of the marketplace.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// ProviderTypeEmail is the only credential provider: email + password.
const ProviderTypeEmail = "email"

// Authentication is one way a user can sign in. ProviderUserID is the login
// identifier within the provider, which for email is the address itself.
type Authentication struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	Provider       string
	ProviderUserID string
	PasswordHash   string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// RefreshToken is a signed-in session. Only the SHA-256 digest of the raw
// token is kept; UserAgent and ClientIP are what the edge saw at sign-in.
type RefreshToken struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	TokenHash string
	UserAgent string
	ClientIP  string
	ExpiresAt time.Time
	CreatedAt time.Time
}

// IsExpired reports whether the session has passed its expiry.
func (t *RefreshToken) IsExpired(now time.Time) bool {
	return !now.Before(t.ExpiresAt)
}
