package billing

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	domainerrors "fitplan/internal/domain/errors"
	"fitplan/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
	"github.com/stripe/stripe-go/v76/webhook"
)

const signatureHeader = "Stripe-Signature"

type stripeGateway struct {
	api           *client.API
	webhookSecret string
}

// NewStripeGateway creates a PaymentGateway. backends may be nil for the public API.
func NewStripeGateway(secretKey, webhookSecret string, backends *stripe.Backends) service.PaymentGateway {
	return &stripeGateway{
		api:           client.New(secretKey, backends),
		webhookSecret: webhookSecret,
	}
}

func (g *stripeGateway) CreatePaymentIntent(ctx context.Context, req service.PaymentIntentRequest) (*service.PaymentIntent, error) {
	if req.Amount <= 0 {
		return nil, domainerrors.NewValidationError("amount", "must be positive")
	}

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(req.Amount),
		Currency: stripe.String(strings.ToLower(req.Currency)),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	if req.Email != "" {
		params.ReceiptEmail = stripe.String(req.Email)
	}
	params.AddMetadata(service.PaymentMetadataType, service.PaymentTypeFitnessPlan)
	params.AddMetadata(service.PaymentMetadataUserID, req.UserID)
	params.AddMetadata(service.PaymentMetadataPlanName, req.PlanName)
	params.Context = ctx

	intent, err := g.api.PaymentIntents.New(params)
	if err != nil {
		return nil, domainerrors.NewUpstreamError("stripe", err)
	}

	return &service.PaymentIntent{
		ID:           intent.ID,
		ClientSecret: intent.ClientSecret,
		Amount:       intent.Amount,
		Currency:     string(intent.Currency),
	}, nil
}

func (g *stripeGateway) ParseWebhook(payload []byte, header http.Header) (*service.PaymentEvent, error) {
	event, err := webhook.ConstructEventWithOptions(payload, header.Get(signatureHeader), g.webhookSecret,
		webhook.ConstructEventOptions{IgnoreAPIVersionMismatch: true})
	if err != nil {
		return nil, domainerrors.ErrInvalidSignature.WithDetails(err.Error())
	}

	result := &service.PaymentEvent{
		ID:   event.ID,
		Type: string(event.Type),
	}

	if !strings.HasPrefix(result.Type, "payment_intent.") || event.Data == nil {
		return result, nil
	}

	var intent stripe.PaymentIntent
	if err := json.Unmarshal(event.Data.Raw, &intent); err != nil {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed.WithDetails("payment intent payload"), err.Error())
	}

	result.IntentID = intent.ID
	result.Amount = intent.Amount
	result.Currency = string(intent.Currency)
	result.Metadata = intent.Metadata
	result.ReceiptMail = intent.ReceiptEmail

	return result, nil
}
