package impl

import (
	"context"
	"fmt"
	"testing"

	"marketplace/internal/domain/constants"
	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/service"
	mockRepo "marketplace/internal/mocks/repository"
	mockService "marketplace/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func devicesFor(userID uuid.UUID, n int) []*entity.UserDevice {
	devices := make([]*entity.UserDevice, 0, n)
	for i := range n {
		devices = append(devices, &entity.UserDevice{
			ID:       uuid.New(),
			UserID:   userID,
			FCMToken: fmt.Sprintf("token-%d", i),
			IsActive: true,
		})
	}

	return devices
}

func orderEvent(userID uuid.UUID, eventType string) *service.OrderEvent {
	return &service.OrderEvent{
		Type:        eventType,
		OrderID:     uuid.NewString(),
		OrderNumber: "ORD-20250314-0007",
		UserID:      userID.String(),
		Status:      "shipped",
		Total:       "324.00",
	}
}

func TestOrderNotificationService_HandleOrderEvent(t *testing.T) {
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	notifier := mockService.NewMockPushSender(t)
	srv := NewOrderNotificationService(deviceRepo, notifier, newDiscardLogger())

	userID := uuid.New()
	event := orderEvent(userID, constants.EventOrderStatusChanged)

	deviceRepo.EXPECT().ListActiveByUser(mock.Anything, userID).Return(devicesFor(userID, 2), nil)
	notifier.EXPECT().
		Push(mock.Anything, mock.MatchedBy(func(msg *service.PushMessage) bool {
			return assert.ObjectsAreEqual([]string{"token-0", "token-1"}, msg.Tokens) &&
				msg.Title == "Order update" &&
				msg.Body == "Your order ORD-20250314-0007 is now shipped." &&
				msg.CollapseKey == event.OrderID &&
				msg.Data["type"] == constants.EventOrderStatusChanged
		})).
		Return(&service.PushReport{Sent: 1, Failed: 1, InvalidTokens: []string{"token-1"}}, nil)
	deviceRepo.EXPECT().DeactivateTokens(mock.Anything, []string{"token-1"}).Return(int64(1), nil)

	result, err := srv.HandleOrderEvent(context.Background(), event)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Devices)
	assert.Equal(t, 1, result.PushSuccess)
	assert.Equal(t, 1, result.PushFailure)
	assert.Equal(t, 1, result.InvalidTokens)
}

func TestOrderNotificationService_HandleOrderEvent_SkipsUnreachable(t *testing.T) {
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	notifier := mockService.NewMockPushSender(t)
	srv := NewOrderNotificationService(deviceRepo, notifier, newDiscardLogger())

	userID := uuid.New()
	devices := devicesFor(userID, 2)
	devices[1].FCMToken = ""

	deviceRepo.EXPECT().ListActiveByUser(mock.Anything, userID).Return(devices, nil)
	notifier.EXPECT().
		Push(mock.Anything, mock.MatchedBy(func(msg *service.PushMessage) bool {
			return len(msg.Tokens) == 1 && msg.Tokens[0] == "token-0"
		})).
		Return(&service.PushReport{Sent: 1}, nil)

	result, err := srv.HandleOrderEvent(context.Background(), orderEvent(userID, constants.EventOrderCreated))
	require.NoError(t, err)
	assert.Equal(t, 2, result.Devices)
	assert.Equal(t, 1, result.PushSuccess)
}

func TestOrderNotificationService_HandleOrderEvent_NothingDelivered(t *testing.T) {
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	notifier := mockService.NewMockPushSender(t)
	srv := NewOrderNotificationService(deviceRepo, notifier, newDiscardLogger())

	userID := uuid.New()
	deviceRepo.EXPECT().ListActiveByUser(mock.Anything, userID).Return(devicesFor(userID, 3), nil)
	notifier.EXPECT().Push(mock.Anything, mock.Anything).
		Return(&service.PushReport{Failed: 3}, errors.New("push delivery failed: unavailable"))

	_, err := srv.HandleOrderEvent(context.Background(), orderEvent(userID, constants.EventOrderCreated))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ORD-20250314-0007")
}

func TestOrderNotificationService_HandleOrderEvent_NoDevices(t *testing.T) {
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	notifier := mockService.NewMockPushSender(t)
	srv := NewOrderNotificationService(deviceRepo, notifier, newDiscardLogger())

	userID := uuid.New()
	deviceRepo.EXPECT().ListActiveByUser(mock.Anything, userID).Return(nil, nil)

	result, err := srv.HandleOrderEvent(context.Background(), orderEvent(userID, constants.EventOrderCancelled))
	require.NoError(t, err)
	assert.Zero(t, result.Devices)
}

func TestOrderNotificationService_HandleOrderEvent_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		event *service.OrderEvent
	}{
		{name: "bad user id", event: &service.OrderEvent{Type: constants.EventOrderCreated, UserID: "nobody"}},
		{name: "unknown type", event: orderEvent(uuid.New(), "order.teleported")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := NewOrderNotificationService(mockRepo.NewMockDeviceRepository(t), mockService.NewMockPushSender(t), newDiscardLogger())

			_, err := srv.HandleOrderEvent(context.Background(), tt.event)
			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		})
	}
}
