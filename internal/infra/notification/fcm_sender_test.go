package notification

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"marketplace/config"
	"marketplace/internal/domain/service"

	"firebase.google.com/go/v4/messaging"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMulticaster struct {
	sizes []int
	fail  func(call int) error
	last *messaging.MulticastMessage
}

func (f *fakeMulticaster) SendEachForMulticast(_ context.Context, m *messaging.MulticastMessage) (*messaging.BatchResponse, error) {
	f.sizes = append(f.sizes, len(m.Tokens))
	f.last = m
	if f.fail != nil {
		if err := f.fail(len(f.sizes)); err != nil {
			return nil, err
		}
	}

	responses := make([]*messaging.SendResponse, len(m.Tokens))
	for i := range responses {
		responses[i] = &messaging.SendResponse{Success: true, MessageID: fmt.Sprintf("m-%d", i)}
	}

	return &messaging.BatchResponse{SuccessCount: len(m.Tokens), Responses: responses}, nil
}

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func tokens(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("token-%d", i)
	}

	return out
}

func TestFCMSender_SplitsBatches(t *testing.T) {
	client := &fakeMulticaster{fail: func(call int) error {
		if call == 2 {
			return errors.New("quota exceeded")
		}

		return nil
	}}

	report, err := newFCMSender(client, discard()).Push(context.Background(), &service.PushMessage{
		Tokens:      tokens(1201),
		Title:       "Order update",
		CollapseKey: "order-1",
	})
	require.NoError(t, err)
	assert.Equal(t, []int{500, 500, 201}, client.sizes)
	assert.Equal(t, 701, report.Sent)
	assert.Equal(t, 500, report.Failed)
	assert.Empty(t, report.InvalidTokens)

	require.NotNil(t, client.last.APNS)
	assert.Equal(t, "order-1", client.last.APNS.Headers["apns-collapse-id"])
	assert.Equal(t, "order-1", client.last.Android.CollapseKey)
	assert.Equal(t, orderPushTTL, *client.last.Android.TTL)
}

func TestFCMSender_NothingDelivered(t *testing.T) {
	client := &fakeMulticaster{fail: func(int) error { return errors.New("unavailable") }}

	report, err := newFCMSender(client, discard()).Push(context.Background(), &service.PushMessage{Tokens: tokens(3)})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "push delivery failed")
	assert.Equal(t, 3, report.Failed)
}

func TestFCMSender_NoCollapseKey(t *testing.T) {
	client := &fakeMulticaster{}

	_, err := newFCMSender(client, discard()).Push(context.Background(), &service.PushMessage{Tokens: tokens(1)})
	require.NoError(t, err)
	assert.Nil(t, client.last.APNS)
}

func TestNewPushService_Disabled(t *testing.T) {
	sender, err := NewPushService(PushParams{
		Ctx:    context.Background(),
		Config: &config.Config{Firebase: &config.FirebaseConfig{}},
		Logger: discard(),
	})
	require.NoError(t, err)

	report, err := sender.Push(context.Background(), &service.PushMessage{Tokens: tokens(4)})
	require.NoError(t, err)
	assert.Equal(t, 4, report.Sent)
}
