package service

import (
	"encoding/json"
	"net/http"
)

// IdentityWebhook is a verified auth provider webhook.
type IdentityWebhook struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

// IdentityWebhookVerifier verifies and decodes auth provider webhooks.
type IdentityWebhookVerifier interface {
	// Verify returns ErrInvalidSignature when the payload was not signed with the shared secret.
	Verify(payload []byte, header http.Header) (*IdentityWebhook, error)
}

// SessionClaims are the claims the API relies on from a session token.
type SessionClaims struct {
	UserID string
	Email  string
}

// TokenVerifier validates session tokens issued by the auth provider.
type TokenVerifier interface {
	Verify(token string) (*SessionClaims, error)
}
