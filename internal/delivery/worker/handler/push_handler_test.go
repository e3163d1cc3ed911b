package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"marketplace/config"
	deliverycontext "marketplace/internal/delivery/context"
	"marketplace/internal/domain/constants"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/service"
	"marketplace/internal/infra/pubsub"
	mockUsecase "marketplace/internal/mocks/usecase"
	"marketplace/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"
)

func newTestPushHandler(t *testing.T, provider, env string) (*PushHandler, *mockUsecase.MockOrderNotificationUsecase) {
	notifyUC := mockUsecase.NewMockOrderNotificationUsecase(t)
	cfg := &config.Config{
		PubSub: &config.PubSubConfig{
			Provider:                provider,
			PushAudience:            "https: //worker.example.com/pubsub/push",
			PushServiceAccountEmail: "push@example.iam.gserviceaccount.com",
		},
	}
	cfg.Env.Env = env

	h := NewPushHandler(PushHandlerParams{
		Config:   cfg,
		Logger:   slog.New(slog.DiscardHandler),
		NotifyUC: notifyUC,
	})

	return h, notifyUC
}

func pushBody(t *testing.T, event *service.OrderEvent, attrs map[string]string) string {
	t.Helper()

	data, err := json.Marshal(event)
	require.NoError(t, err)

	var msg pubsub.PushMessage
	msg.Message.Data = data
	msg.Message.MessageID = "msg-1"
	msg.Message.Attributes = attrs
	msg.Subscription = "projects/demo/subscriptions/order-events"

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return string(body)
}

func push(h *PushHandler, body, authHeader string) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/pubsub/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()
	_ = h.HandlePush(e.NewContext(req, rec))

	return rec
}

func shippedEvent() *service.OrderEvent {
	return &service.OrderEvent{
		Type:        "order.status_changed",
		OrderID:     "0e3c1f5e-7d7a-4a8f-9d38-7a3e0b6d0f11",
		OrderNumber: "ORD-20260301-0001",
		UserID:      "5b1f4c8e-2a8e-4f7d-8d9b-3f4f6f1f2a10",
		Status:      "shipped",
	}
}

func TestPushHandler_Delivers(t *testing.T) {
	h, notifyUC := newTestPushHandler(t, constants.PubSubProviderLocal, constants.EnvProduction)

	notifyUC.EXPECT().HandleOrderEvent(mock.Anything, mock.MatchedBy(func(e *service.OrderEvent) bool {
		return e.OrderNumber == "ORD-20260301-0001" && e.Status == "shipped"
	})).RunAndReturn(func(ctx context.Context, _ *service.OrderEvent) (*usecase.NotificationResult, error) {
		assert.Equal(t, "req-42", deliverycontext.RequestID(ctx))

		return &usecase.NotificationResult{Devices: 2, PushSuccess: 2}, nil
	})

	rec := push(h, pushBody(t, shippedEvent(), map[string]string{"request_id": "req-42"}), "")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_FailureClassification(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{name: "bad event is acknowledged", err: errors.WithStack(domainerrors.ErrValidationFailed), wantCode: http.StatusOK},
		{name: "missing order is acknowledged", err: domainerrors.ErrOrderNotFound, wantCode: http.StatusOK},
		{name: "server side app error is retried", err: domainerrors.ErrTransactionFailed, wantCode: http.StatusServiceUnavailable},
		{name: "unknown error is retried", err: errors.New("fcm unavailable"), wantCode: http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, notifyUC := newTestPushHandler(t, constants.PubSubProviderLocal, constants.EnvProduction)
			notifyUC.EXPECT().HandleOrderEvent(mock.Anything, mock.Anything).Return(nil, tt.err)

			rec := push(h, pushBody(t, shippedEvent(), nil), "")

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestPushHandler_MalformedMessages(t *testing.T) {
	h, _ := newTestPushHandler(t, constants.PubSubProviderLocal, constants.EnvProduction)

	tests := []struct {
		name string
		body string
	}{
		{name: "not json", body: "{"},
		{name: "data not base64", body: `{"message":{"data":"***"}}`},
		{name: "data not an event", body: `{"message":{"data":"` + base64.StdEncoding.EncodeToString([]byte("[1,2]")) + `"}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, http.StatusBadRequest, push(h, tt.body, "").Code)
		})
	}
}

func TestPushHandler_VerifiesGoogleToken(t *testing.T) {
	validPayload := func() *idtoken.Payload {
		return &idtoken.Payload{
			Issuer: "https://accounts.google.com",
			Claims: map[string]any{
				"email":          "push@example.iam.gserviceaccount.com",
				"email_verified": true,
			},
		}
	}

	tests := []struct {
		name   string
		header string
		payload  func() *idtoken.Payload
		wantCode int
	}{
		{name: "missing header", wantCode: http.StatusUnauthorized},
		{name: "not bearer", header: "Token abc", wantCode: http.StatusUnauthorized},
		{
			name:   "foreign issuer",
			header: "Bearer jwt",
			payload: func() *idtoken.Payload {
				p := validPayload()
				p.Issuer = "https://evil.example.com"

				return p
			},
			wantCode: http.StatusUnauthorized,
		},
		{
			name:   "wrong service account",
			header: "Bearer jwt",
			payload: func() *idtoken.Payload {
				p := validPayload()
				p.Claims["email"] = "other@example.iam.gserviceaccount.com"

				return p
			},
			wantCode: http.StatusUnauthorized,
		},
		{
			name:   "unverified email",
			header: "Bearer jwt",
			payload: func() *idtoken.Payload {
				p := validPayload()
				p.Claims["email_verified"] = false

				return p
			},
			wantCode: http.StatusUnauthorized,
		},
		{name: "valid", header: "Bearer jwt", payload: validPayload, wantCode: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, notifyUC := newTestPushHandler(t, constants.PubSubProviderGoogle, constants.EnvProduction)
			require.True(t, h.verifyPushAuth)
			h.validate = func(_ context.Context, token, audience string) (*idtoken.Payload, error) {
				assert.Equal(t, "jwt", token)
				assert.Equal(t, "https://worker.example.com/pubsub/push", audience)

				return tt.payload(), nil
			}
			if tt.wantCode == http.StatusOK {
				notifyUC.EXPECT().HandleOrderEvent(mock.Anything, mock.Anything).Return(&usecase.NotificationResult{}, nil)
			}

			rec := push(h, pushBody(t, shippedEvent(), nil), tt.header)

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestPushHandler_DevelopSkipsVerification(t *testing.T) {
	h, _ := newTestPushHandler(t, constants.PubSubProviderGoogle, constants.EnvDevelop)

	assert.False(t, h.verifyPushAuth)
}

func TestExtractRequestID(t *testing.T) {
	var msg pubsub.PushMessage
	event := &service.OrderEvent{RequestID: "from-event"}

	assert.Equal(t, "from-event", extractRequestID(context.Background(), &msg, event))

	msg.Message.Attributes = map[string]string{"request_id": "from-attrs"}
	assert.Equal(t, "from-attrs", extractRequestID(context.Background(), &msg, event))

	ctx := deliverycontext.WithRequestID(context.Background(), "from-ctx")
	assert.Equal(t, "from-ctx", extractRequestID(ctx, &pubsub.PushMessage{}, &service.OrderEvent{}))

	assert.NotEmpty(t, extractRequestID(context.Background(), &pubsub.PushMessage{}, &service.OrderEvent{}))
}
