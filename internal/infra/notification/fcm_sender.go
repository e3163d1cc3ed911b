package notification

import (
	"context"
	"log/slog"
	"slices"
	"time"

	"marketplace/config"
	"marketplace/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/option"
)

const (
	// maxMulticastTokens is the FCM limit per multicast request.
	maxMulticastTokens = 500
	// orderPushTTL drops order updates a device could not receive within a day.
	orderPushTTL = 24 * time.Hour
)

// multicaster is the part of *messaging.Client the sender uses.
type multicaster interface {
	SendEachForMulticast(ctx context.Context, message *messaging.MulticastMessage) (*messaging.BatchResponse, error)
}

type PushParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewPushService returns the FCM sender, or a sender that only logs when no
// credentials are configured.
func NewPushService(params PushParams) (service.PushSender, error) {
	cfg := params.Config.Firebase
	if cfg == nil || cfg.CredentialsPath == "" {
		params.Logger.Info("Firebase not configured, push notifications disabled")

		return &loggingSender{logger: params.Logger}, nil
	}

	var appConfig *firebase.Config
	if cfg.ProjectID != "" {
		appConfig = &firebase.Config{ProjectID: cfg.ProjectID}
	}

	app, err := firebase.NewApp(params.Ctx, appConfig, option.WithCredentialsFile(cfg.CredentialsPath))
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Messaging(params.Ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get messaging client")
	}

	return newFCMSender(client, params.Logger), nil
}

type fcmSender struct {
	client multicaster
	logger *slog.Logger
}

func newFCMSender(client multicaster, logger *slog.Logger) *fcmSender {
	return &fcmSender{client: client, logger: logger}
}

func (s *fcmSender) Push(ctx context.Context, msg *service.PushMessage) (*service.PushReport, error) {
	report := &service.PushReport{}

	var lastErr error
	for batch := range slices.Chunk(msg.Tokens, maxMulticastTokens) {
		resp, err := s.client.SendEachForMulticast(ctx, multicast(msg, batch))
		if err != nil {
			s.logger.Warn("FCM batch failed", slog.Int("tokens", len(batch)), slog.Any("error", err))
			report.Failed += len(batch)
			lastErr = err

			continue
		}

		report.Sent += resp.SuccessCount
		report.Failed += resp.FailureCount
		for i, r := range resp.Responses {
			if r.Error != nil && tokenGone(r.Error) {
				report.InvalidTokens = append(report.InvalidTokens, batch[i])
			}
		}
	}

	if report.Sent == 0 && lastErr != nil {
		return report, errors.Wrap(lastErr, "push delivery failed")
	}

	return report, nil
}

func multicast(msg *service.PushMessage, tokens []string) *messaging.MulticastMessage {
	ttl := orderPushTTL
	m := &messaging.MulticastMessage{
		Tokens: tokens,
		Data:   msg.Data,
		Notification: &messaging.Notification{
			Title: msg.Title,
			Body:  msg.Body,
		},
		Android: &messaging.AndroidConfig{
			Priority:    "high",
			CollapseKey: msg.CollapseKey,
			TTL:         &ttl,
		},
	}
	if msg.CollapseKey != "" {
		m.APNS = &messaging.APNSConfig{
			Headers: map[string]string{"apns-collapse-id": msg.CollapseKey},
		}
	}

	return m
}

// tokenGone reports whether FCM rejected the token itself rather than the send.
func tokenGone(err error) bool {
	return messaging.IsUnregistered(err) || messaging.IsInvalidArgument(err)
}

// loggingSender reports every token as delivered.
type loggingSender struct {
	logger *slog.Logger
}

func (s *loggingSender) Push(ctx context.Context, msg *service.PushMessage) (*service.PushReport, error) {
	s.logger.DebugContext(ctx, "Push skipped, Firebase disabled",
		slog.String("title", msg.Title),
		slog.Int("tokens", len(msg.Tokens)),
	)

	return &service.PushReport{Sent: len(msg.Tokens)}, nil
}
