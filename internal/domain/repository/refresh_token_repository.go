package repository

import (
	"context"
	"time"

	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var ErrRefreshTokenNotFound = errors.New("refresh token not found")

// RefreshTokenRepository stores sessions. Every lookup is by token digest or
// owner; raw tokens never reach this layer.
type RefreshTokenRepository interface {
	Create(ctx context.Context, token *entity.RefreshToken) error
	FindByHash(ctx context.Context, tokenHash string) (*entity.RefreshToken, error)
	// ListActiveByUser returns the sessions still valid at now, oldest first.
	ListActiveByUser(ctx context.Context, userID uuid.UUID, now time.Time) ([]*entity.RefreshToken, error)
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByHash(ctx context.Context, tokenHash string) error
	DeleteByUser(ctx context.Context, userID uuid.UUID) (int64, error)
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}
