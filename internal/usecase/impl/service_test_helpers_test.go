package impl

import (
	"context"
	"io"
	"log/slog"
	"time"

	"marketplace/config"
	"marketplace/internal/domain/repository"
	mockRepo "marketplace/internal/mocks/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

var testNow = time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)

func fixedClock() clock {
	return func() time.Time { return testNow }
}

func boolPtr(b bool) *bool { return &b }

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(maxActiveSessions int) *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{
			BcryptCost:        12,
			MaxActiveSessions: maxActiveSessions,
		},
		Shop: &config.ShopConfig{
			TaxRate:           decimal.RequireFromString("0.08"),
			CartTTL:           30 * 24 * time.Hour,
			OrderNumberPrefix: "ORD",
			MaxAddresses:      3,
		},
	}
}

// expectTx makes the mocked transaction manager run the callback against factory
// and return whatever the callback returns.
func expectTx(txManager *mockRepo.MockTransactionManager, factory repository.RepositoryFactory) *mockRepo.MockTransactionManager_Execute_Call {
	return txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}
