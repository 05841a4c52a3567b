package usecase

import (
	"context"
	"net/http"

	"fitplan/internal/domain/entity"

	"github.com/google/uuid"
)

// CreatePaymentIntentInput starts a checkout for one plan.
type CreatePaymentIntentInput struct {
	UserID         string
	Email          string
	PlanName       string
	AssessmentData entity.AssessmentData
}

type CreatePaymentIntentOutput struct {
	PaymentIntentID string
	ClientSecret    string
	Amount          int64
	Currency        string
}

// BillingUsecase bridges the payment provider to plan generation and invoicing.
type BillingUsecase interface {
	CreatePaymentIntent(ctx context.Context, input *CreatePaymentIntentInput) (*CreatePaymentIntentOutput, error)

	// HandlePaymentWebhook verifies the payload and runs the follow-up actions.
	// Only a verification failure is returned; follow-up failures are logged.
	HandlePaymentWebhook(ctx context.Context, payload []byte, header http.Header) error

	ListInvoices(ctx context.Context, userID string) ([]*entity.Invoice, error)

	// DownloadInvoice returns the invoice with its PDF and records the download.
	DownloadInvoice(ctx context.Context, userID string, invoiceID uuid.UUID) (*entity.Invoice, error)
}
