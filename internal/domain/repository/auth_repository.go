// Package repository declares the persistence ports the use cases depend on.
// Implementations translate driver errors into the sentinels declared here
// or into domain errors.
package repository

import (
	"context"
	"errors"

	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
)

var ErrAuthNotFound = errors.New("authentication method not found")

// AuthRepository stores sign-in credentials. A (provider, provider user id)
// pair belongs to exactly one user.
type AuthRepository interface {
	CreateAuthentication(ctx context.Context, auth *entity.Authentication) error
	FindAuthentication(ctx context.Context, provider string, providerUserID string) (*entity.Authentication, error)
	// UpdatePasswordHash rewrites the email credential of the user.
	UpdatePasswordHash(ctx context.Context, userID uuid.UUID, passwordHash string) error
}
