// Package billing adapts the payment provider to service.PaymentGateway.
package billing

import (
	"log/slog"

	"fitplan/config"
	"fitplan/internal/domain/service"

	"go.uber.org/fx"
)

// Params holds dependencies for NewPaymentGateway, injected by Fx
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func NewPaymentGateway(params Params) service.PaymentGateway {
	cfg := params.Config.Stripe
	if cfg.SecretKey == "" {
		params.Logger.Warn("stripe.secretKey is empty, payment intents will fail")
	}

	return NewStripeGateway(cfg.SecretKey, cfg.WebhookSecret, nil)
}

// Module provides the billing FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewPaymentGateway),
)
