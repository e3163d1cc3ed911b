package pubsub

import (
	"encoding/json"
	"time"

	"marketplace/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Attribute keys set on every order event so subscriptions can filter on
// them without decoding the payload.
const (
	AttrType      = "type"
	AttrOrderID   = "order_id"
	AttrUserID    = "user_id"
	AttrRequestID = "request_id"
)

// PushMessage is the body Pub/Sub posts to a push subscription. Data is
// base64 on the wire, which encoding/json handles for []byte.
type PushMessage struct {
	Message      PushedMessage `json:"message"`
	Subscription string        `json:"subscription"`
}

type PushedMessage struct {
	Data        []byte            `json:"data"`
	Attributes  map[string]string `json:"attributes,omitempty"`
	MessageID   string            `json:"messageId"`
	PublishTime time.Time         `json:"publishTime"`
}

// NewPushMessage wraps event the way a push subscription would deliver it.
func NewPushMessage(event *service.OrderEvent, subscription string, publishedAt time.Time) (*PushMessage, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode order event")
	}

	return &PushMessage{
		Message: PushedMessage{
			Data:        data,
			Attributes:  eventAttributes(event),
			MessageID:   uuid.NewString(),
			PublishTime: publishedAt.UTC(),
		},
		Subscription: subscription,
	}, nil
}

// OrderEvent decodes the payload.
func (m *PushMessage) OrderEvent() (*service.OrderEvent, error) {
	var event service.OrderEvent
	if err := json.Unmarshal(m.Message.Data, &event); err != nil {
		return nil, errors.Wrap(err, "payload is not an order event")
	}

	return &event, nil
}

func eventAttributes(event *service.OrderEvent) map[string]string {
	attrs := map[string]string{
		AttrType:    event.Type,
		AttrOrderID: event.OrderID,
		AttrUserID:  event.UserID,
	}
	if event.RequestID != "" {
		attrs[AttrRequestID] = event.RequestID
	}

	return attrs
}
