package service

import (
	"context"
	"net/http"
)

// Payment webhook event types handled by the billing bridge
const (
	PaymentEventSucceeded = "payment_intent.succeeded"
	PaymentEventFailed    = "payment_intent.payment_failed"
)

// Metadata keys attached to every payment intent
const (
	PaymentMetadataUserID   = "userId"
	PaymentMetadataPlanName = "planName"
	PaymentMetadataType     = "type"
)

// PaymentTypeFitnessPlan tags intents created for plan checkouts. Other
// intents on the same Stripe account are acknowledged and ignored.
const PaymentTypeFitnessPlan = "fitness_plan"

// PaymentIntentRequest describes a checkout for one plan.
type PaymentIntentRequest struct {
	UserID   string
	Amount   int64
	Currency string
	PlanName string
	Email    string
}

// PaymentIntent is the provider side of a checkout.
type PaymentIntent struct {
	ID           string
	ClientSecret string
	Amount       int64
	Currency     string
}

// PaymentEvent is a verified payment webhook.
type PaymentEvent struct {
	ID          string
	Type        string
	IntentID    string
	Amount      int64
	Currency    string
	Metadata    map[string]string
	ReceiptMail string
}

// PaymentGateway is the narrow contract with the payment provider.
type PaymentGateway interface {
	CreatePaymentIntent(ctx context.Context, req PaymentIntentRequest) (*PaymentIntent, error)

	// ParseWebhook verifies the signature header and decodes the event.
	// It returns ErrInvalidSignature when verification fails.
	ParseWebhook(payload []byte, header http.Header) (*PaymentEvent, error)
}
