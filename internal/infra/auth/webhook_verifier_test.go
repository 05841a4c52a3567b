package auth

import (
	"encoding/base64"
	"net/http"
	"strconv"
	"testing"
	"time"

	domainerrors "fitplan/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	svix "github.com/svix/svix-webhooks/go"
)

var testSecret = "whsec_" + base64.StdEncoding.EncodeToString([]byte("fitplan-webhook-test-secret-0123"))

func signedHeaders(t *testing.T, payload []byte) http.Header {
	t.Helper()

	wh, err := svix.NewWebhook(testSecret)
	require.NoError(t, err)

	msgID := "msg_1"
	ts := time.Now()
	signature, err := wh.Sign(msgID, ts, payload)
	require.NoError(t, err)

	header := http.Header{}
	header.Set("svix-id", msgID)
	header.Set("svix-timestamp", strconv.FormatInt(ts.Unix(), 10))
	header.Set("svix-signature", signature)

	return header
}

func TestWebhookVerifier(t *testing.T) {
	verifier, err := NewWebhookVerifier(testSecret)
	require.NoError(t, err)

	payload := []byte(`{"type":"user.created","data":{"id":"user_1"}}`)

	hook, err := verifier.Verify(payload, signedHeaders(t, payload))
	require.NoError(t, err)
	assert.Equal(t, "user.created", hook.Type)
	assert.JSONEq(t, `{"id":"user_1"}`, string(hook.Data))

	_, err = verifier.Verify([]byte(`{"type":"user.deleted"}`), signedHeaders(t, payload))
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidSignature))
}

func TestRejectingWebhookVerifier(t *testing.T) {
	_, err := rejectingWebhookVerifier{}.Verify([]byte(`{}`), http.Header{})
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidSignature))
}
