package repository

import (
	"context"
	"time"

	"fitplan/internal/domain/entity"

	"github.com/google/uuid"
)

// PaymentSessionRepository defines the persistence operations for payment sessions.
type PaymentSessionRepository interface {
	Create(ctx context.Context, session *entity.PaymentSession) error

	// FindByProviderSessionID returns ErrPaymentSessionNotFound when absent.
	FindByProviderSessionID(ctx context.Context, providerSessionID string) (*entity.PaymentSession, error)

	// MarkCompleted is idempotent; completing an already completed session is a no-op.
	MarkCompleted(ctx context.Context, id uuid.UUID, completedAt time.Time) error
}

// InvoiceRepository defines the persistence operations for invoices.
type InvoiceRepository interface {
	Create(ctx context.Context, invoice *entity.Invoice) error

	FindByID(ctx context.Context, id uuid.UUID) (*entity.Invoice, error)

	// FindByPaymentID returns ErrInvoiceNotFound when absent.
	FindByPaymentID(ctx context.Context, paymentID string) (*entity.Invoice, error)

	// FindByUser lists invoices without the PDF blob, newest first.
	FindByUser(ctx context.Context, userID string) ([]*entity.Invoice, error)

	// CountIssuedInYear drives the per-year invoice sequence.
	CountIssuedInYear(ctx context.Context, year int) (int64, error)

	// RecordDownload bumps the download counter and timestamp.
	RecordDownload(ctx context.Context, id uuid.UUID, at time.Time) error
}
