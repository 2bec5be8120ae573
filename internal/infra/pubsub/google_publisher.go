package pubsub

import (
	"context"
	"log/slog"

	"smartfit/internal/domain/service"
	"smartfit/internal/errors"

	"cloud.google.com/go/pubsub/v2"
	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
)

// googlePublisher sends order status events to a Cloud Pub/Sub topic with
// per-order message ordering.
type googlePublisher struct {
	client    *pubsub.Client
	publisher *pubsub.Publisher
	topic     string
	logger    *slog.Logger
}

// NewGooglePublisher connects to projectID and verifies that topicID exists.
func NewGooglePublisher(ctx context.Context, projectID, topicID string, logger *slog.Logger) (service.EventPublisher, error) {
	client, err := pubsub.NewClient(ctx, projectID)
	if err != nil {
		return nil, errors.Wrap(err, "create pubsub client")
	}

	topic := "projects/" + projectID + "/topics/" + topicID
	if _, err := client.TopicAdminClient.GetTopic(ctx, &pubsubpb.GetTopicRequest{Topic: topic}); err != nil {
		_ = client.Close()

		return nil, errors.Wrapf(err, "topic %s is not reachable", topicID)
	}

	publisher := client.Publisher(topicID)
	publisher.EnableMessageOrdering = true

	return &googlePublisher{
		client:    client,
		publisher: publisher,
		topic:     topic,
		logger:    logger,
	}, nil
}

func (p *googlePublisher) PublishOrderStatusEvent(ctx context.Context, event *service.OrderStatusEvent) error {
	msg, err := encodeEvent(event)
	if err != nil {
		return err
	}

	serverID, err := p.publisher.Publish(ctx, &pubsub.Message{
		Data:        msg.data,
		Attributes:  msg.attributes,
		OrderingKey: msg.orderingKey,
	}).Get(ctx)
	if err != nil {
		// An ordering key stays paused after a failure until it is resumed.
		p.publisher.ResumePublish(msg.orderingKey)

		return errors.Wrapf(err, "publish %s to %s", event.EventID, p.topic)
	}

	p.logger.Debug("Order status event published",
		slog.String("event_id", event.EventID),
		slog.String("order", msg.orderingKey),
		slog.String("status", string(event.Status)),
		slog.String("server_id", serverID),
	)

	return nil
}

func (p *googlePublisher) Close() error {
	p.publisher.Stop()

	return errors.WithStack(p.client.Close())
}
