package pubsub

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"fitplan/internal/domain/service"

	"cloud.google.com/go/pubsub/v2"
	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"github.com/pkg/errors"
)

// Upper bound on waiting for the server ack. Callers publish from webhook
// handlers that must answer the provider quickly.
const publishAckTimeout = 10 * time.Second

// googlePubSubPublisher implements EventPublisher using Google Cloud Pub/Sub
type googlePubSubPublisher struct {
	client    *pubsub.Client
	publisher *pubsub.Publisher
	logger    *slog.Logger
}

// NewGooglePubSubPublisher creates a publisher after checking the topic exists.
func NewGooglePubSubPublisher(ctx context.Context, projectID, topicID string, logger *slog.Logger) (service.EventPublisher, error) {
	client, err := pubsub.NewClient(ctx, projectID)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	// The topic must exist before anything is published
	topicPath := fmt.Sprintf("projects/%s/topics/%s", projectID, topicID)
	if _, err := client.TopicAdminClient.GetTopic(ctx, &pubsubpb.GetTopicRequest{Topic: topicPath}); err != nil {
		client.Close()

		return nil, errors.Wrapf(err, "failed to get topic %s", topicID)
	}

	return &googlePubSubPublisher{
		client:    client,
		publisher: client.Publisher(topicID),
		logger:    logger,
	}, nil
}

// PublishEvent publishes the event and waits for the server ack.
func (p *googlePubSubPublisher) PublishEvent(ctx context.Context, event *service.Event) error {
	data, err := json.Marshal(event)
	if err != nil {
		return errors.WithStack(err)
	}

	// Bound the wait for the server ack
	ackCtx, cancel := context.WithTimeout(ctx, publishAckTimeout)
	defer cancel()

	start := time.Now()
	result := p.publisher.Publish(ackCtx, &pubsub.Message{
		Data:       data,
		Attributes: eventAttributes(event),
	})

	// Get blocks until the message is stored or the publish fails
	serverID, err := result.Get(ackCtx)
	if err != nil {
		return errors.Wrapf(err, "failed to publish %s %s", event.Name, event.ID)
	}

	p.logger.InfoContext(ctx, "[GooglePubSub] Event published",
		slog.String("event_id", event.ID),
		slog.String("event_name", event.Name),
		slog.String("server_id", serverID),
		slog.Duration("ack_latency", time.Since(start)),
	)

	return nil
}

// Close releases Pub/Sub client resources
func (p *googlePubSubPublisher) Close() error {
	if p.publisher != nil {
		p.publisher.Stop()
	}
	if p.client != nil {
		return errors.WithStack(p.client.Close())
	}

	return nil
}
