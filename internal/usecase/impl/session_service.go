package impl

import (
	"context"
	"log/slog"

	deliverycontext "marketplace/internal/delivery/context"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type sessionService struct {
	refreshRepo repository.RefreshTokenRepository
	logger      *slog.Logger
	clock       clock
}

func NewSessionService(refreshRepo repository.RefreshTokenRepository, logger *slog.Logger) usecase.SessionUsecase {
	return &sessionService{
		refreshRepo: refreshRepo,
		logger:      logger,
	}
}

func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.LoggerOr(ctx, srv.logger)
}

func (srv *sessionService) ListSessions(ctx context.Context, userID uuid.UUID) ([]*usecase.SessionInfo, error) {
	tokens, err := srv.refreshRepo.ListActiveByUser(ctx, userID, srv.clock.now())
	if err != nil {
		return nil, errors.Wrap(err, "failed to list sessions")
	}

	sessions := make([]*usecase.SessionInfo, 0, len(tokens))
	for _, token := range tokens {
		sessions = append(sessions, &usecase.SessionInfo{
			ID:        token.ID,
			UserAgent: token.UserAgent,
			ClientIP:  token.ClientIP,
			CreatedAt: token.CreatedAt,
			ExpiresAt: token.ExpiresAt,
		})
	}

	return sessions, nil
}

// RevokeSession only touches sessions the user owns; anyone else's id is
// reported as not found.
func (srv *sessionService) RevokeSession(ctx context.Context, userID, sessionID uuid.UUID) error {
	tokens, err := srv.refreshRepo.ListActiveByUser(ctx, userID, srv.clock.now())
	if err != nil {
		return errors.Wrap(err, "failed to list sessions")
	}

	owned := false
	for _, token := range tokens {
		if token.ID == sessionID {
			owned = true

			break
		}
	}
	if !owned {
		return errors.Wrap(domainerrors.ErrNotFound.WithMessage("Session not found"), "revoke session")
	}

	if err := srv.refreshRepo.Delete(ctx, sessionID); err != nil && !errors.Is(err, repository.ErrRefreshTokenNotFound) {
		return errors.Wrap(err, "failed to delete session")
	}
	srv.log(ctx).Info("Session revoked", slog.Any("userID", userID), slog.Any("sessionID", sessionID))

	return nil
}

func (srv *sessionService) RevokeAllSessions(ctx context.Context, userID uuid.UUID) error {
	n, err := srv.refreshRepo.DeleteByUser(ctx, userID)
	if err != nil {
		return errors.Wrap(err, "failed to revoke sessions")
	}
	srv.log(ctx).Info("All sessions revoked", slog.Any("userID", userID), slog.Int64("count", n))

	return nil
}

func (srv *sessionService) PruneExpiredSessions(ctx context.Context) (int64, error) {
	n, err := srv.refreshRepo.DeleteExpired(ctx, srv.clock.now())
	if err != nil {
		return 0, errors.Wrap(err, "failed to prune sessions")
	}
	srv.log(ctx).Info("Expired sessions pruned", slog.Int64("count", n))

	return n, nil
}
