// Package pubsub publishes order status events for the notification worker.
package pubsub

import (
	"context"
	"log/slog"

	"smartfit/config"
	"smartfit/internal/domain/constants"
	"smartfit/internal/domain/service"
	"smartfit/internal/errors"

	"go.uber.org/fx"
)

const defaultPushAttempts = 3

// disabledPublisher drops events when no transport is configured.
type disabledPublisher struct {
	logger *slog.Logger
}

func (p *disabledPublisher) PublishOrderStatusEvent(ctx context.Context, event *service.OrderStatusEvent) error {
	p.logger.Debug("Event publishing disabled, dropping order status event",
		slog.String("event_id", event.EventID),
		slog.String("order", event.Order.String()),
	)

	return nil
}

func (p *disabledPublisher) Close() error {
	return nil
}

// PublisherParams holds dependencies for EventPublisher, injected by Fx
type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewEventPublisher creates the publisher selected by pubsub.provider and
// closes it on shutdown.
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	publisher, err := newPublisher(params.Ctx, params.Config.PubSub, params.Logger)
	if err != nil {
		return nil, err
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			params.Logger.Info("Closing event publisher")

			return publisher.Close()
		},
	})

	return publisher, nil
}

func newPublisher(ctx context.Context, cfg *config.PubSubConfig, logger *slog.Logger) (service.EventPublisher, error) {
	if cfg == nil || cfg.Provider == "" {
		logger.Info("Pub/Sub not configured, order status events are dropped")

		return &disabledPublisher{logger: logger}, nil
	}

	switch cfg.Provider {
	case constants.PubSubProviderLocal:
		if cfg.LocalEndpoint == "" {
			return nil, errors.New("pubsub.localEndpoint is required for the local provider")
		}
		attempts := cfg.PushAttempts
		if attempts <= 0 {
			attempts = defaultPushAttempts
		}
		logger.Info("Pushing order status events to the local worker",
			slog.String("endpoint", cfg.LocalEndpoint),
			slog.Int("attempts", attempts),
		)

		return NewLocalPublisher(cfg.LocalEndpoint, attempts, logger), nil

	case constants.PubSubProviderGoogle:
		if cfg.ProjectID == "" || cfg.TopicID == "" {
			return nil, errors.New("pubsub.projectId and pubsub.topicId are required for the google provider")
		}
		logger.Info("Publishing order status events to Cloud Pub/Sub",
			slog.String("project_id", cfg.ProjectID),
			slog.String("topic_id", cfg.TopicID),
		)

		return NewGooglePublisher(ctx, cfg.ProjectID, cfg.TopicID, logger)

	default:
		return nil, errors.Errorf("unknown pubsub provider: %s", cfg.Provider)
	}
}

// Module provides the Pub/Sub FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewEventPublisher),
)
