package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Event is a named message on the workflow queue. ID is stable across
// redeliveries and is used as the workflow run key.
type Event struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Data       json.RawMessage `json:"data"`
	RequestID  string          `json:"request_id,omitempty"` // For distributed tracing
	OccurredAt time.Time       `json:"occurred_at"`
}

// NewEvent marshals data into a new Event with a fresh id.
func NewEvent(name string, data any, requestID string) (*Event, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}

	return &Event{
		ID:         uuid.New().String(),
		Name:       name,
		Data:       raw,
		RequestID:  requestID,
		OccurredAt: time.Now().UTC(),
	}, nil
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishEvent publishes an event for async processing
	PublishEvent(ctx context.Context, event *Event) error

	// Close releases any resources held by the publisher
	Close() error
}
