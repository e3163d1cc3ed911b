// Package pubsub publishes order events for the push worker, either through
// Google Pub/Sub or, in development, by posting straight to the worker.
package pubsub

import (
	"context"
	"log/slog"

	"marketplace/config"
	deliverycontext "marketplace/internal/delivery/context"
	"marketplace/internal/domain/constants"
	"marketplace/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// PublisherParams holds dependencies for EventPublisher, injected by Fx
type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewEventPublisher picks the publisher named by pubsub.provider. An empty
// provider disables events; orders are still placed.
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	publisher, err := open(params.Ctx, params.Config.PubSub, params.Logger)
	if err != nil {
		return nil, err
	}

	params.Lc.Append(fx.StopHook(publisher.Close))

	return publisher, nil
}

func open(ctx context.Context, cfg *config.PubSubConfig, logger *slog.Logger) (service.EventPublisher, error) {
	if cfg == nil {
		cfg = &config.PubSubConfig{}
	}

	switch cfg.Provider {
	case "":
		logger.Info("Order events disabled")

		return discardPublisher{logger: logger}, nil
	case constants.PubSubProviderLocal:
		if cfg.LocalEndpoint == "" {
			return nil, errors.New("pubsub.localEndpoint is required for the local provider")
		}
		logger.Info("Order events pushed to local worker", slog.String("endpoint", cfg.LocalEndpoint))

		return NewLocalHTTPPublisher(cfg.LocalEndpoint, logger), nil
	case constants.PubSubProviderGoogle:
		if cfg.ProjectID == "" || cfg.TopicID == "" {
			return nil, errors.New("pubsub.projectId and pubsub.topicId are required for the google provider")
		}
		logger.Info("Order events published to Pub/Sub",
			slog.String("project", cfg.ProjectID),
			slog.String("topic", cfg.TopicID),
		)

		return NewGooglePublisher(ctx, cfg.ProjectID, cfg.TopicID, logger)
	default:
		return nil, errors.Errorf("unknown pubsub.provider %q", cfg.Provider)
	}
}

type discardPublisher struct {
	logger *slog.Logger
}

func (p discardPublisher) PublishOrderEvent(ctx context.Context, event *service.OrderEvent) error {
	deliverycontext.LoggerOr(ctx, p.logger).Debug("Order event dropped",
		slog.String("type", event.Type),
		slog.String("orderID", event.OrderID),
	)

	return nil
}

func (discardPublisher) Close() error {
	return nil
}
