package auth

import (
	"log/slog"

	"fitplan/config"
	"fitplan/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Params holds dependencies for the auth providers, injected by Fx
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func NewTokenVerifier(params Params) (service.TokenVerifier, error) {
	cfg := params.Config.Auth
	if cfg.JWTPublicKey == "" {
		return nil, errors.New("auth.jwtPublicKey is required")
	}

	return NewSessionTokenVerifier(cfg.JWTPublicKey, cfg.Issuer, cfg.AuthorizedParties)
}

func NewIdentityWebhookVerifier(params Params) (service.IdentityWebhookVerifier, error) {
	cfg := params.Config.Auth
	if cfg.WebhookSecret == "" {
		params.Logger.Warn("auth.webhookSecret is empty, identity webhooks will be rejected")

		return rejectingWebhookVerifier{}, nil
	}

	return NewWebhookVerifier(cfg.WebhookSecret)
}

// Module provides the auth FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		NewTokenVerifier,
		NewIdentityWebhookVerifier,
	),
)
