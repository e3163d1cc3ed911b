package service

import (
	"context"
)

// PushMessage is one notification fanned out to a set of device tokens.
type PushMessage struct {
	Tokens []string
	Title  string
	Body   string
	Data   map[string]string
	// CollapseKey lets a newer notification replace an older one on the device.
	CollapseKey string
}

// PushReport counts per-token outcomes of a push.
type PushReport struct {
	Sent   int
	Failed int
	// InvalidTokens are tokens the provider no longer recognises.
	InvalidTokens []string
}

// PushSender delivers notifications to devices, splitting the tokens into
// provider sized batches. A batch that fails counts all its tokens as
// failed; an error is returned only when nothing was delivered.
type PushSender interface {
	Push(ctx context.Context, msg *PushMessage) (*PushReport, error)
}

// OrderConfirmation is the payload of the order confirmation email.
type OrderConfirmation struct {
	OrderID     string
	OrderNumber string
	Total       string
	Status      string
}

// Mailer delivers transactional email. Every call is best-effort from the caller's view.
type Mailer interface {
	SendOrderConfirmation(ctx context.Context, email string, order OrderConfirmation) error
	SendOrderStatusUpdate(ctx context.Context, email string, order OrderConfirmation) error
	SendVerificationEmail(ctx context.Context, email, name, token string) error
	SendPasswordReset(ctx context.Context, email, name, token string) error
}
