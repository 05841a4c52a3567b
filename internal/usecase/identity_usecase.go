package usecase

import (
	"context"
	"net/http"

	"fitplan/internal/domain/entity"
)

// IdentityEmailAddress is one address of an identity provider user.
type IdentityEmailAddress struct {
	ID           string `json:"id"`
	EmailAddress string `json:"email_address"`
}

// IdentityUserData is the user object of a user.created webhook.
type IdentityUserData struct {
	ID                    string                 `json:"id"`
	FirstName             string                 `json:"first_name"`
	LastName              string                 `json:"last_name"`
	PrimaryEmailAddressID string                 `json:"primary_email_address_id"`
	EmailAddresses        []IdentityEmailAddress `json:"email_addresses"`
}

// IdentityUsecase keeps local users in sync with the identity provider.
type IdentityUsecase interface {
	// HandleWebhook verifies the payload and publishes the matching event.
	HandleWebhook(ctx context.Context, payload []byte, header http.Header) error

	// ProvisionUser runs the identity workflow for a created user.
	ProvisionUser(ctx context.Context, runKey string, data *IdentityUserData) (*entity.User, error)
}
