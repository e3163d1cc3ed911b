package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// SessionInfo describes one signed-in device.
type SessionInfo struct {
	ID        uuid.UUID `json:"id"`
	UserAgent string    `json:"user_agent,omitempty"`
	ClientIP  string    `json:"client_ip,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// SessionUsecase lists and revokes the caller's refresh-token sessions.
type SessionUsecase interface {
	ListSessions(ctx context.Context, userID uuid.UUID) ([]*SessionInfo, error)
	RevokeSession(ctx context.Context, userID, sessionID uuid.UUID) error
	RevokeAllSessions(ctx context.Context, userID uuid.UUID) error
	// PruneExpiredSessions deletes expired sessions of every user and reports how many went.
	PruneExpiredSessions(ctx context.Context) (int64, error)
}
