// Package mail delivers transactional email.
package mail

import (
	"log/slog"

	"fitplan/config"
	"fitplan/internal/domain/service"

	"go.uber.org/fx"
)

// Params holds dependencies for NewMailer, injected by Fx
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewMailer returns the SendGrid mailer, or a logging stand-in when mail.apiKey is empty.
func NewMailer(params Params) service.Mailer {
	cfg := params.Config.Mail
	if cfg.APIKey == "" {
		params.Logger.Warn("mail.apiKey is empty, outgoing mail is disabled")

		return logMailer{log: params.Logger.Info}
	}

	return NewSendGridMailer(cfg.APIKey, "", cfg.FromEmail, cfg.FromName)
}

// Module provides the mail FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewMailer),
)
