package usecase

import (
	"context"

	"fitplan/internal/domain/service"
)

// EventDispatcher routes queue events to the workflow registered for their name.
type EventDispatcher interface {
	// Dispatch returns an error only when the event should be redelivered.
	Dispatch(ctx context.Context, event *service.Event) error
}
