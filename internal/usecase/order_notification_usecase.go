package usecase

import (
	"context"

	"marketplace/internal/domain/service"
)

// NotificationResult reports the outcome of fanning out one order event.
type NotificationResult struct {
	Devices       int
	PushSuccess   int
	PushFailure   int
	InvalidTokens int
}

// OrderNotificationUsecase delivers order events to the buyer's devices as push notifications.
type OrderNotificationUsecase interface {
	HandleOrderEvent(ctx context.Context, event *service.OrderEvent) (*NotificationResult, error)
}
