package pubsub

import (
	"encoding/base64"
	"encoding/json"
	"time"

	"fitplan/internal/domain/service"

	"github.com/pkg/errors"
)

// Message attribute keys set on every published event.
const (
	AttrEventID   = "event_id"
	AttrEventName = "event_name"
	AttrRequestID = "request_id"
)

// PushMessage is the body Pub/Sub POSTs to push subscriptions.
type PushMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// eventAttributes builds the attributes used for filtering and tracing.
func eventAttributes(event *service.Event) map[string]string {
	attributes := map[string]string{
		AttrEventID:   event.ID,
		AttrEventName: event.Name,
	}
	if event.RequestID != "" {
		attributes[AttrRequestID] = event.RequestID
	}

	return attributes
}

// NewPushMessage wraps event the way a push subscription would deliver it.
func NewPushMessage(event *service.Event, subscription string) (*PushMessage, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	msg := &PushMessage{Subscription: subscription}
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.Attributes = eventAttributes(event)
	msg.Message.MessageID = event.ID
	msg.Message.PublishTime = time.Now().UTC().Format(time.RFC3339)

	return msg, nil
}

// DecodeEvent extracts the event from a push message. Attributes fill in
// fields the payload left empty.
func (m *PushMessage) DecodeEvent() (*service.Event, error) {
	data, err := base64.StdEncoding.DecodeString(m.Message.Data)
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode message data")
	}

	var event service.Event
	if err := json.Unmarshal(data, &event); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal event")
	}

	attrs := m.Message.Attributes
	if event.ID == "" {
		event.ID = attrs[AttrEventID]
	}
	if event.ID == "" {
		event.ID = m.Message.MessageID
	}
	if event.Name == "" {
		event.Name = attrs[AttrEventName]
	}
	if event.RequestID == "" {
		event.RequestID = attrs[AttrRequestID]
	}

	if event.ID == "" || event.Name == "" {
		return nil, errors.New("event id and name are required")
	}

	return &event, nil
}
