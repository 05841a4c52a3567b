package pubsub

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"fitplan/internal/domain/service"

	"github.com/pkg/errors"
)

const (
	localSubscription    = "projects/local/subscriptions/fitplan-worker"
	localMaxDeliveries   = 5
	localInitialBackoff  = time.Second
	localDeliveryTimeout = 15 * time.Minute
)

// localHTTPPublisher emulates a push subscription for development. Delivery
// happens in the background and a non-2xx answer is redelivered with backoff,
// the way Pub/Sub redelivers a nacked message.
type localHTTPPublisher struct {
	endpoint       string
	httpClient     *http.Client
	logger         *slog.Logger
	maxDeliveries  int
	initialBackoff time.Duration

	wg sync.WaitGroup
}

// NewLocalHTTPPublisher creates a new local HTTP publisher for development
func NewLocalHTTPPublisher(endpoint string, logger *slog.Logger) service.EventPublisher {
	return newLocalHTTPPublisher(endpoint, logger, localMaxDeliveries, localInitialBackoff)
}

func newLocalHTTPPublisher(endpoint string, logger *slog.Logger, maxDeliveries int, backoff time.Duration) *localHTTPPublisher {
	return &localHTTPPublisher{
		endpoint: endpoint,
		httpClient: &http.Client{
			// Workflows run inside the push request.
			Timeout: localDeliveryTimeout,
		},
		logger:         logger,
		maxDeliveries:  maxDeliveries,
		initialBackoff: backoff,
	}
}

// PublishEvent enqueues the event for delivery and returns immediately.
func (p *localHTTPPublisher) PublishEvent(ctx context.Context, event *service.Event) error {
	msg, err := NewPushMessage(event, localSubscription)
	if err != nil {
		return err
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return errors.WithStack(err)
	}

	p.logger.InfoContext(ctx, "[LocalPubSub] Publishing event",
		slog.String("endpoint", p.endpoint),
		slog.String("event_id", event.ID),
		slog.String("event_name", event.Name),
	)

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		p.deliver(context.WithoutCancel(ctx), event, body)
	}()

	return nil
}

func (p *localHTTPPublisher) deliver(ctx context.Context, event *service.Event, body []byte) {
	backoff := p.initialBackoff

	for attempt := 1; attempt <= p.maxDeliveries; attempt++ {
		status, err := p.post(ctx, event, body)
		if err == nil && status >= 200 && status < 300 {
			p.logger.InfoContext(ctx, "[LocalPubSub] Event delivered",
				slog.String("event_id", event.ID),
				slog.Int("attempt", attempt),
			)

			return
		}

		p.logger.WarnContext(ctx, "[LocalPubSub] Delivery failed, redelivering",
			slog.String("event_id", event.ID),
			slog.Int("attempt", attempt),
			slog.Int("status", status),
			slog.Any("error", err),
		)

		if attempt < p.maxDeliveries {
			time.Sleep(backoff)
			backoff *= 2
		}
	}

	p.logger.ErrorContext(ctx, "[LocalPubSub] Event dropped after max deliveries",
		slog.String("event_id", event.ID),
		slog.String("event_name", event.Name),
	)
}

func (p *localHTTPPublisher) post(ctx context.Context, event *service.Event, body []byte) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return 0, errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if event.RequestID != "" {
		req.Header.Set("X-Request-Id", event.RequestID)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return 0, errors.WithStack(err)
	}
	defer resp.Body.Close()

	return resp.StatusCode, nil
}

// Close waits for in-flight deliveries.
func (p *localHTTPPublisher) Close() error {
	p.wg.Wait()

	return nil
}
