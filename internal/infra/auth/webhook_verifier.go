package auth

import (
	"encoding/json"
	"net/http"

	domainerrors "fitplan/internal/domain/errors"
	"fitplan/internal/domain/service"

	"github.com/pkg/errors"
	svix "github.com/svix/svix-webhooks/go"
)

// svixWebhookVerifier checks the svix-id, svix-timestamp and svix-signature headers.
type svixWebhookVerifier struct {
	wh *svix.Webhook
}

// NewWebhookVerifier creates an IdentityWebhookVerifier for a "whsec_" signing secret.
func NewWebhookVerifier(secret string) (service.IdentityWebhookVerifier, error) {
	wh, err := svix.NewWebhook(secret)
	if err != nil {
		return nil, errors.Wrap(err, "invalid identity webhook secret")
	}

	return &svixWebhookVerifier{wh: wh}, nil
}

func (v *svixWebhookVerifier) Verify(payload []byte, header http.Header) (*service.IdentityWebhook, error) {
	if err := v.wh.Verify(payload, header); err != nil {
		return nil, domainerrors.ErrInvalidSignature.WithDetails(err.Error())
	}

	var hook service.IdentityWebhook
	if err := json.Unmarshal(payload, &hook); err != nil {
		return nil, domainerrors.NewValidationError("body", "malformed webhook payload")
	}

	if hook.Type == "" {
		return nil, domainerrors.NewValidationError("type", "required")
	}

	return &hook, nil
}

// rejectingWebhookVerifier is used when no secret is configured.
type rejectingWebhookVerifier struct{}

func (rejectingWebhookVerifier) Verify([]byte, http.Header) (*service.IdentityWebhook, error) {
	return nil, domainerrors.ErrInvalidSignature.WithDetails("webhook secret not configured")
}
