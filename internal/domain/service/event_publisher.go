package service

import (
	"context"
)

// OrderEvent is published after an order transaction commits and is consumed by the worker.
type OrderEvent struct {
	RequestID   string `json:"request_id,omitempty"` // For distributed tracing
	Type        string `json:"type"`                 // order.created, order.status_changed, order.cancelled
	OrderID     string `json:"order_id"`
	OrderNumber string `json:"order_number"`
	UserID      string `json:"user_id"`
	Status      string `json:"status"`
	Total       string `json:"total"`
	Reason      string `json:"reason,omitempty"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishOrderEvent publishes an order lifecycle event for async processing
	PublishOrderEvent(ctx context.Context, event *OrderEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
