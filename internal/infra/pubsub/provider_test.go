package pubsub

import (
	"context"
	"testing"
	"time"

	"fitplan/config"
	deliverycontext "fitplan/internal/delivery/context"
	"fitplan/internal/domain/constants"
	"fitplan/internal/domain/service"
	mockService "fitplan/internal/mocks/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestStampingPublisher_FillsTracingFields(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	next := mockService.NewMockEventPublisher(t)
	next.EXPECT().PublishEvent(mock.Anything, mock.MatchedBy(func(e *service.Event) bool {
		return e.RequestID == "req-7" && e.OccurredAt.Equal(now)
	})).Return(nil).Once()

	p := &stampingPublisher{next: next, now: func() time.Time { return now }}
	ctx := deliverycontext.WithRequestID(context.Background(), "req-7")

	require.NoError(t, p.PublishEvent(ctx, &service.Event{ID: "evt-1", Name: constants.EventUserCreated}))
}

func TestStampingPublisher_KeepsEventValues(t *testing.T) {
	occurred := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	next := mockService.NewMockEventPublisher(t)
	next.EXPECT().PublishEvent(mock.Anything, mock.MatchedBy(func(e *service.Event) bool {
		return e.RequestID == "from-api" && e.OccurredAt.Equal(occurred)
	})).Return(nil).Once()

	p := &stampingPublisher{next: next, now: time.Now}
	ctx := deliverycontext.WithRequestID(context.Background(), "from-worker")

	require.NoError(t, p.PublishEvent(ctx, &service.Event{
		ID:         "evt-1",
		Name:       constants.EventUserCreated,
		RequestID:  "from-api",
		OccurredAt: occurred,
	}))
}

func TestNewTransport(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *config.PubSubConfig
		wantErr bool
	}{
		{name: "unset is noop", cfg: nil},
		{name: "explicit noop", cfg: &config.PubSubConfig{Provider: constants.PubSubProviderNoop}},
		{name: "local", cfg: &config.PubSubConfig{Provider: constants.PubSubProviderLocal, LocalEndpoint: "http://localhost:8081/push"}},
		{name: "local without endpoint", cfg: &config.PubSubConfig{Provider: constants.PubSubProviderLocal}, wantErr: true},
		{name: "google without topic", cfg: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle, ProjectID: "fitplan"}, wantErr: true},
		{name: "unknown", cfg: &config.PubSubConfig{Provider: "kafka"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			publisher, err := newTransport(context.Background(), tt.cfg, newDiscardLogger())
			if tt.wantErr {
				assert.Error(t, err)

				return
			}
			require.NoError(t, err)
			assert.NotNil(t, publisher)
			assert.NoError(t, publisher.Close())
		})
	}
}
