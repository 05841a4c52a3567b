package mail

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "fitplan/internal/domain/errors"
	"fitplan/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendGridMailerSend(t *testing.T) {
	var body map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v3/mail/send", r.URL.Path)
		assert.Equal(t, "Bearer sg-key", r.Header.Get("Authorization"))

		raw, _ := io.ReadAll(r.Body)
		assert.NoError(t, json.Unmarshal(raw, &body))
		w.WriteHeader(http.StatusAccepted)
	}))
	defer server.Close()

	mailer := NewSendGridMailer("sg-key", server.URL, "hello@fitplan.local", "FitPlan")
	err := mailer.Send(context.Background(), service.Email{
		ToEmail: "jana@example.com",
		ToName:  "Jana",
		Subject: "Vítejte",
		Text:    "Ahoj",
		HTML:    "<p>Ahoj</p>",
	})
	require.NoError(t, err)

	from, ok := body["from"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "hello@fitplan.local", from["email"])
	assert.Equal(t, "Vítejte", body["subject"])
}

func TestSendGridMailerUpstreamFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"errors":[{"message":"bad key"}]}`))
	}))
	defer server.Close()

	mailer := NewSendGridMailer("bad", server.URL, "hello@fitplan.local", "FitPlan")
	err := mailer.Send(context.Background(), service.Email{ToEmail: "jana@example.com", Subject: "x", Text: "y"})

	var upstream *domainerrors.UpstreamError
	require.True(t, errors.As(err, &upstream))
	assert.Equal(t, "sendgrid", upstream.Service)
}

func TestSendGridMailerRequiresRecipient(t *testing.T) {
	mailer := NewSendGridMailer("k", "http://127.0.0.1:1", "a@b.c", "A")
	err := mailer.Send(context.Background(), service.Email{Subject: "x"})

	var validation *domainerrors.ValidationError
	assert.True(t, errors.As(err, &validation))
}
