package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"fitplan/config"
	deliverycontext "fitplan/internal/delivery/context"
	"fitplan/internal/domain/constants"
	"fitplan/internal/domain/service"
	"fitplan/internal/infra/pubsub"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDispatcher struct {
	err       error
	event     *service.Event
	requestID string
}

func (d *fakeDispatcher) Dispatch(ctx context.Context, event *service.Event) error {
	d.event = event
	d.requestID = deliverycontext.GetRequestIDFromContext(ctx)

	return d.err
}

func newTestPushHandler(dispatcher *fakeDispatcher) *PushHandler {
	cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderLocal}}

	return NewPushHandler(PushHandlerParams{
		Config:     cfg,
		Logger:     slog.Default(),
		Dispatcher: dispatcher,
	})
}

func pushBody(t *testing.T, event *service.Event) []byte {
	t.Helper()

	msg, err := pubsub.NewPushMessage(event, "projects/fitplan/subscriptions/worker")
	require.NoError(t, err)
	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return body
}

func servePush(h *PushHandler, body []byte, header http.Header) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", bytes.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for k, v := range header {
		req.Header[k] = v
	}
	rec := httptest.NewRecorder()
	_ = h.HandlePush(e.NewContext(req, rec))

	return rec
}

func TestPushHandler_DispatchesEvent(t *testing.T) {
	dispatcher := &fakeDispatcher{}
	h := newTestPushHandler(dispatcher)

	event, err := service.NewEvent(constants.EventShoppingListGenerate, map[string]int{"weekNumber": 2}, "req-42")
	require.NoError(t, err)

	rec := servePush(h, pushBody(t, event), nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, dispatcher.event)
	assert.Equal(t, event.ID, dispatcher.event.ID)
	assert.Equal(t, constants.EventShoppingListGenerate, dispatcher.event.Name)
	assert.Equal(t, "req-42", dispatcher.requestID)
}

func TestPushHandler_GeneratesRequestID(t *testing.T) {
	dispatcher := &fakeDispatcher{}
	h := newTestPushHandler(dispatcher)

	event, err := service.NewEvent(constants.EventUserCreated, map[string]string{"id": "user_1"}, "")
	require.NoError(t, err)

	rec := servePush(h, pushBody(t, event), nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, dispatcher.requestID)
}

func TestPushHandler_RetryableFailureIsRedelivered(t *testing.T) {
	dispatcher := &fakeDispatcher{err: errors.New("database unavailable")}
	h := newTestPushHandler(dispatcher)

	event, err := service.NewEvent(constants.EventMealPlanRegenerate, map[string]string{"userId": "user_1"}, "")
	require.NoError(t, err)

	rec := servePush(h, pushBody(t, event), nil)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestPushHandler_MalformedMessages(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "not json", body: "{"},
		{name: "data not base64", body: `{"message":{"data":"%%%","messageId":"1"}}`},
		{name: "data not an event", body: `{"message":{"data":"bm90IGpzb24=","messageId":"1"}}`},
		{name: "event without name", body: `{"message":{"data":"e30=","messageId":"1"}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dispatcher := &fakeDispatcher{}
			h := newTestPushHandler(dispatcher)

			rec := servePush(h, []byte(tt.body), nil)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Nil(t, dispatcher.event)
		})
	}
}

func TestPushHandler_VerifiesToken(t *testing.T) {
	dispatcher := &fakeDispatcher{}
	h := newTestPushHandler(dispatcher)
	h.verifyPushAuth = true

	var gotAudience string
	h.validateToken = func(_ context.Context, token, audience string) error {
		gotAudience = audience
		if token != "good" {
			return errors.New("bad token")
		}

		return nil
	}

	event, err := service.NewEvent(constants.EventUserCreated, map[string]string{"id": "user_1"}, "")
	require.NoError(t, err)
	body := pushBody(t, event)

	rec := servePush(h, body, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = servePush(h, body, http.Header{echo.HeaderAuthorization: []string{"Bearer bad"}})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Nil(t, dispatcher.event)

	rec = servePush(h, body, http.Header{
		echo.HeaderAuthorization:   []string{"Bearer good"},
		echo.HeaderXForwardedProto: []string{"https"},
	})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "https://example.com/push", gotAudience)
}

func TestPushHandler_ConfiguredAudience(t *testing.T) {
	h := newTestPushHandler(&fakeDispatcher{})
	h.verifyPushAuth = true
	h.audience = "https://worker.fitplan.cz/push"

	var gotAudience string
	h.validateToken = func(_ context.Context, _, audience string) error {
		gotAudience = audience

		return nil
	}

	event, err := service.NewEvent(constants.EventUserCreated, map[string]string{"id": "user_1"}, "")
	require.NoError(t, err)

	rec := servePush(h, pushBody(t, event), http.Header{echo.HeaderAuthorization: []string{"Bearer token"}})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "https://worker.fitplan.cz/push", gotAudience)
}

func TestNewPushHandler_AuthOnlyForGoogleOutsideDevelop(t *testing.T) {
	tests := []struct {
		name     string
		provider string
		env      string
		want     bool
	}{
		{name: "google production", provider: constants.PubSubProviderGoogle, env: "production", want: true},
		{name: "google develop", provider: constants.PubSubProviderGoogle, env: constants.EnvDevelop, want: false},
		{name: "local production", provider: constants.PubSubProviderLocal, env: "production", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: tt.provider}}
			cfg.Env.Env = tt.env

			h := NewPushHandler(PushHandlerParams{Config: cfg, Logger: slog.Default(), Dispatcher: &fakeDispatcher{}})

			assert.Equal(t, tt.want, h.verifyPushAuth)
		})
	}
}
