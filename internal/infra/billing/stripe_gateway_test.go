package billing

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	domainerrors "fitplan/internal/domain/errors"
	"fitplan/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/webhook"
)

const testWebhookSecret = "whsec_test"

func signedHeader(t *testing.T, payload []byte) http.Header {
	t.Helper()

	signed := webhook.GenerateTestSignedPayload(&webhook.UnsignedPayload{
		Payload:   payload,
		Secret:    testWebhookSecret,
		Timestamp: time.Now(),
	})

	header := http.Header{}
	header.Set("Stripe-Signature", signed.Header)

	return header
}

func TestParseWebhookPaymentSucceeded(t *testing.T) {
	gateway := NewStripeGateway("sk_test", testWebhookSecret, nil)
	payload := []byte(`{
		"id": "evt_1",
		"object": "event",
		"type": "payment_intent.succeeded",
		"api_version": "2020-08-27",
		"data": {"object": {
			"id": "pi_1",
			"object": "payment_intent",
			"amount": 49900,
			"currency": "czk",
			"receipt_email": "jana@example.com",
			"metadata": {"type": "fitness_plan", "userId": "user_1", "planName": "Premium"}
		}}
	}`)

	event, err := gateway.ParseWebhook(payload, signedHeader(t, payload))
	require.NoError(t, err)

	assert.Equal(t, "evt_1", event.ID)
	assert.Equal(t, service.PaymentEventSucceeded, event.Type)
	assert.Equal(t, "pi_1", event.IntentID)
	assert.Equal(t, int64(49900), event.Amount)
	assert.Equal(t, "czk", event.Currency)
	assert.Equal(t, "user_1", event.Metadata[service.PaymentMetadataUserID])
	assert.Equal(t, service.PaymentTypeFitnessPlan, event.Metadata[service.PaymentMetadataType])
	assert.Equal(t, "jana@example.com", event.ReceiptMail)
}

func TestParseWebhookOtherEvent(t *testing.T) {
	gateway := NewStripeGateway("sk_test", testWebhookSecret, nil)
	payload := []byte(`{"id":"evt_2","object":"event","type":"customer.created","data":{"object":{"id":"cus_1"}}}`)

	event, err := gateway.ParseWebhook(payload, signedHeader(t, payload))
	require.NoError(t, err)
	assert.Equal(t, "customer.created", event.Type)
	assert.Empty(t, event.IntentID)
}

func TestParseWebhookBadSignature(t *testing.T) {
	gateway := NewStripeGateway("sk_test", testWebhookSecret, nil)
	payload := []byte(`{"id":"evt_3","object":"event","type":"payment_intent.succeeded"}`)

	header := http.Header{}
	header.Set("Stripe-Signature", "t=1,v1=deadbeef")

	_, err := gateway.ParseWebhook(payload, header)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidSignature))
}

func TestCreatePaymentIntent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/payment_intents", r.URL.Path)
		assert.NoError(t, r.ParseForm())
		assert.Equal(t, "49900", r.PostForm.Get("amount"))
		assert.Equal(t, "czk", r.PostForm.Get("currency"))
		assert.Equal(t, "user_1", r.PostForm.Get("metadata[userId]"))
		assert.Equal(t, "Premium", r.PostForm.Get("metadata[planName]"))
		assert.Equal(t, service.PaymentTypeFitnessPlan, r.PostForm.Get("metadata[type]"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"pi_1","object":"payment_intent","amount":49900,"currency":"czk","client_secret":"pi_1_secret_x"}`))
	}))
	defer server.Close()

	backends := &stripe.Backends{
		API: stripe.GetBackendWithConfig(stripe.APIBackend, &stripe.BackendConfig{
			URL:               stripe.String(server.URL),
			MaxNetworkRetries: stripe.Int64(0),
		}),
	}
	gateway := NewStripeGateway("sk_test", testWebhookSecret, backends)

	intent, err := gateway.CreatePaymentIntent(context.Background(), service.PaymentIntentRequest{
		UserID:   "user_1",
		Amount:   49900,
		Currency: "CZK",
		PlanName: "Premium",
	})
	require.NoError(t, err)
	assert.Equal(t, "pi_1", intent.ID)
	assert.Equal(t, "pi_1_secret_x", intent.ClientSecret)
}

func TestCreatePaymentIntentRejectsNonPositiveAmount(t *testing.T) {
	gateway := NewStripeGateway("sk_test", testWebhookSecret, nil)

	_, err := gateway.CreatePaymentIntent(context.Background(), service.PaymentIntentRequest{Amount: 0})
	var validation *domainerrors.ValidationError
	assert.True(t, errors.As(err, &validation))
}
