package pubsub

import (
	"context"
	"log/slog"
	"time"

	"fitplan/config"
	deliverycontext "fitplan/internal/delivery/context"
	"fitplan/internal/domain/constants"
	"fitplan/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// droppingPublisher backs pubsub.provider "noop": events are logged and discarded.
type droppingPublisher struct {
	logger *slog.Logger
}

func (p *droppingPublisher) PublishEvent(ctx context.Context, event *service.Event) error {
	p.logger.WarnContext(ctx, "[NoopPubSub] Dropping event",
		slog.String("event_id", event.ID),
		slog.String("event_name", event.Name),
	)

	return nil
}

func (p *droppingPublisher) Close() error {
	return nil
}

// stampingPublisher fills the tracing fields an event source left empty.
type stampingPublisher struct {
	next service.EventPublisher
	now  func() time.Time
}

func (p *stampingPublisher) PublishEvent(ctx context.Context, event *service.Event) error {
	if event.RequestID == "" {
		event.RequestID = deliverycontext.GetRequestIDFromContext(ctx)
	}
	if event.OccurredAt.IsZero() {
		event.OccurredAt = p.now().UTC()
	}

	return p.next.PublishEvent(ctx, event)
}

func (p *stampingPublisher) Close() error {
	return p.next.Close()
}

// PublisherParams holds dependencies for EventPublisher, injected by Fx
type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewEventPublisher builds the publisher selected by pubsub.provider.
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	publisher, err := newTransport(params.Ctx, params.Config.PubSub, params.Logger)
	if err != nil {
		return nil, err
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			params.Logger.Info("Closing EventPublisher")

			return publisher.Close()
		},
	})

	return &stampingPublisher{next: publisher, now: time.Now}, nil
}

func newTransport(ctx context.Context, cfg *config.PubSubConfig, logger *slog.Logger) (service.EventPublisher, error) {
	provider := constants.PubSubProviderNoop
	if cfg != nil && cfg.Provider != "" {
		provider = cfg.Provider
	}

	switch provider {
	case constants.PubSubProviderNoop:
		logger.Warn("PubSub not configured, events will be dropped")

		return &droppingPublisher{logger: logger}, nil

	case constants.PubSubProviderLocal:
		if cfg.LocalEndpoint == "" {
			return nil, errors.New("pubsub.localEndpoint is required for the local provider")
		}
		logger.Info("Using local HTTP publisher", slog.String("endpoint", cfg.LocalEndpoint))

		return NewLocalHTTPPublisher(cfg.LocalEndpoint, logger), nil

	case constants.PubSubProviderGoogle:
		if cfg.ProjectID == "" || cfg.TopicID == "" {
			return nil, errors.New("pubsub.projectId and pubsub.topicId are required for the google provider")
		}
		logger.Info("Using Google Pub/Sub publisher",
			slog.String("project_id", cfg.ProjectID),
			slog.String("topic_id", cfg.TopicID),
		)

		return NewGooglePubSubPublisher(ctx, cfg.ProjectID, cfg.TopicID, logger)

	default:
		return nil, errors.Errorf("unknown pubsub provider: %s", provider)
	}
}

// Module provides the Pub/Sub FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewEventPublisher),
)
