package impl

import (
	"context"
	"fmt"
	"log/slog"

	deliverycontext "marketplace/internal/delivery/context"
	"marketplace/internal/domain/constants"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/domain/service"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type orderNotificationService struct {
	deviceRepo repository.DeviceRepository
	sender     service.PushSender
	logger     *slog.Logger
}

// NewOrderNotificationService creates the service turning order events into pushes.
func NewOrderNotificationService(
	deviceRepo repository.DeviceRepository,
	sender service.PushSender,
	logger *slog.Logger,
) usecase.OrderNotificationUsecase {
	return &orderNotificationService{
		deviceRepo: deviceRepo,
		sender:     sender,
		logger:     logger,
	}
}

func (s *orderNotificationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.LoggerOr(ctx, s.logger)
}

// pushContent renders the title and body shown on the device.
func pushContent(event *service.OrderEvent) (string, string, error) {
	switch event.Type {
	case constants.EventOrderCreated:
		return "Order placed", fmt.Sprintf("Your order %s for %s was received.", event.OrderNumber, event.Total), nil
	case constants.EventOrderStatusChanged:
		return "Order update", fmt.Sprintf("Your order %s is now %s.", event.OrderNumber, event.Status), nil
	case constants.EventOrderCancelled:
		return "Order cancelled", fmt.Sprintf("Your order %s was cancelled.", event.OrderNumber), nil
	default:
		return "", "", errors.Wrap(domainerrors.ErrValidationFailed.WithDetails(event.Type), "unknown order event type")
	}
}

// HandleOrderEvent pushes the event to every reachable device of the buyer
// and deactivates devices whose tokens are no longer registered. A push that
// reached no device is returned as an error so the event is redelivered.
func (s *orderNotificationService) HandleOrderEvent(ctx context.Context, event *service.OrderEvent) (*usecase.NotificationResult, error) {
	userID, err := uuid.Parse(event.UserID)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed.WithDetails("user_id"), "invalid order event")
	}

	title, body, err := pushContent(event)
	if err != nil {
		return nil, err
	}

	devices, err := s.deviceRepo.ListActiveByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch devices")
	}

	result := &usecase.NotificationResult{Devices: len(devices)}

	tokens := make([]string, 0, len(devices))
	for _, device := range devices {
		if device.Reachable() {
			tokens = append(tokens, device.FCMToken)
		}
	}
	if len(tokens) == 0 {
		return result, nil
	}

	report, err := s.sender.Push(ctx, &service.PushMessage{
		Tokens: tokens,
		Title:  title,
		Body:   body,
		Data: map[string]string{
			"type":         event.Type,
			"order_id":     event.OrderID,
			"order_number": event.OrderNumber,
			"status":       event.Status,
		},
		CollapseKey: event.OrderID,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to push order %s", event.OrderNumber)
	}
	result.PushSuccess = report.Sent
	result.PushFailure = report.Failed

	if len(report.InvalidTokens) > 0 {
		n, err := s.deviceRepo.DeactivateTokens(ctx, report.InvalidTokens)
		if err != nil {
			s.log(ctx).Warn("Failed to deactivate invalid device tokens", slog.Int("count", len(report.InvalidTokens)), slog.Any("error", err))
		}
		result.InvalidTokens = int(n)
	}

	s.log(ctx).Info("Order event delivered",
		slog.String("orderID", event.OrderID),
		slog.String("type", event.Type),
		slog.Int("success", result.PushSuccess),
		slog.Int("failure", result.PushFailure),
		slog.Int("invalid", result.InvalidTokens),
	)

	return result, nil
}
