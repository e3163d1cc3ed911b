package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Token types carried in Claims.Type.
const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

type Claims struct {
	UserID uuid.UUID `json:"user_id"`
	Role   string    `json:"role"`
	Type   string    `json:"type"`
	jwt.RegisteredClaims
}

// TokenPair is what a successful login or refresh hands to the client.
type TokenPair struct {
	AccessToken      string
	AccessExpiresAt  time.Time
	RefreshToken     string
	RefreshExpiresAt time.Time
}

// TokenService mints and verifies signed tokens. Access tokens carry the
// role; refresh tokens are only good for rotation.
type TokenService interface {
	Issue(userID uuid.UUID, role string) (*TokenPair, error)
	Verify(token string) (*Claims, error)
}
