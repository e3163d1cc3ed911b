package impl

import (
	"context"
	"testing"
	"time"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	mockRepo "marketplace/internal/mocks/repository"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestSessionService(t *testing.T) (usecase.SessionUsecase, *mockRepo.MockRefreshTokenRepository) {
	repo := mockRepo.NewMockRefreshTokenRepository(t)
	srv := NewSessionService(repo, newDiscardLogger())
	srv.(*sessionService).clock = fixedClock()

	return srv, repo
}

func TestSessionService_ListSessions(t *testing.T) {
	srv, repo := createTestSessionService(t)
	userID := uuid.New()
	token := &entity.RefreshToken{
		ID:        uuid.New(),
		UserID:    userID,
		UserAgent: "MarketApp/2.1 (Android)",
		ClientIP:  "203.0.113.7",
		CreatedAt: testNow.Add(-time.Hour),
		ExpiresAt: testNow.Add(24 * time.Hour),
	}

	repo.EXPECT().ListActiveByUser(mock.Anything, userID, testNow).Return([]*entity.RefreshToken{token}, nil)

	sessions, err := srv.ListSessions(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	assert.Equal(t, token.ID, sessions[0].ID)
	assert.Equal(t, "MarketApp/2.1 (Android)", sessions[0].UserAgent)
	assert.Equal(t, "203.0.113.7", sessions[0].ClientIP)
}

func TestSessionService_RevokeSession(t *testing.T) {
	userID := uuid.New()
	own := &entity.RefreshToken{ID: uuid.New(), UserID: userID}

	t.Run("own session", func(t *testing.T) {
		srv, repo := createTestSessionService(t)
		repo.EXPECT().ListActiveByUser(mock.Anything, userID, testNow).Return([]*entity.RefreshToken{own}, nil)
		repo.EXPECT().Delete(mock.Anything, own.ID).Return(nil)

		require.NoError(t, srv.RevokeSession(context.Background(), userID, own.ID))
	})

	t.Run("already gone is fine", func(t *testing.T) {
		srv, repo := createTestSessionService(t)
		repo.EXPECT().ListActiveByUser(mock.Anything, userID, testNow).Return([]*entity.RefreshToken{own}, nil)
		repo.EXPECT().Delete(mock.Anything, own.ID).Return(repository.ErrRefreshTokenNotFound)

		require.NoError(t, srv.RevokeSession(context.Background(), userID, own.ID))
	})

	t.Run("foreign session", func(t *testing.T) {
		srv, repo := createTestSessionService(t)
		repo.EXPECT().ListActiveByUser(mock.Anything, userID, testNow).Return([]*entity.RefreshToken{own}, nil)

		err := srv.RevokeSession(context.Background(), userID, uuid.New())
		assert.ErrorIs(t, err, domainerrors.ErrNotFound)
	})
}

func TestSessionService_RevokeAllSessions(t *testing.T) {
	srv, repo := createTestSessionService(t)
	userID := uuid.New()

	repo.EXPECT().DeleteByUser(mock.Anything, userID).Return(int64(3), nil)

	require.NoError(t, srv.RevokeAllSessions(context.Background(), userID))
}

func TestSessionService_PruneExpiredSessions(t *testing.T) {
	srv, repo := createTestSessionService(t)

	repo.EXPECT().DeleteExpired(mock.Anything, testNow).Return(int64(12), nil)

	n, err := srv.PruneExpiredSessions(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(12), n)
}
