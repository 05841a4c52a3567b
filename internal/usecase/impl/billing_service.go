package impl

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"strings"
	"time"

	"fitplan/config"
	deliverycontext "fitplan/internal/delivery/context"
	"fitplan/internal/domain/constants"
	"fitplan/internal/domain/entity"
	domainerrors "fitplan/internal/domain/errors"
	"fitplan/internal/domain/repository"
	"fitplan/internal/domain/service"
	"fitplan/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultPlanPrice      = 49900
	defaultCurrency       = "czk"
	defaultPlanTitle      = "Osobní fitness plán"
	paymentEventPrefix    = "pi-"
	invoiceNumberAttempts = 3
)

type billingService struct {
	txManager repository.TransactionManager
	gateway   service.PaymentGateway
	renderer  service.InvoiceRenderer
	publisher service.EventPublisher
	planPrice int64
	currency  string
	invoice   config.InvoiceConfig
	now       func() time.Time
	logger    *slog.Logger
}

// BillingServiceParams holds dependencies for BillingService, injected by Fx.
type BillingServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Gateway   service.PaymentGateway
	Renderer  service.InvoiceRenderer
	Publisher service.EventPublisher
	Config    *config.Config
	Logger    *slog.Logger
}

// NewBillingService is the constructor for billingService.
func NewBillingService(params BillingServiceParams) usecase.BillingUsecase {
	srv := &billingService{
		txManager: params.TxManager,
		gateway:   params.Gateway,
		renderer:  params.Renderer,
		publisher: params.Publisher,
		planPrice: defaultPlanPrice,
		currency:  defaultCurrency,
		invoice:   config.InvoiceConfig{NumberPrefix: "FP", VATRate: 0.21},
		now:       time.Now,
		logger:    params.Logger,
	}
	if params.Config != nil && params.Config.Stripe != nil {
		if params.Config.Stripe.PlanPrice > 0 {
			srv.planPrice = params.Config.Stripe.PlanPrice
		}
		if params.Config.Stripe.Currency != "" {
			srv.currency = strings.ToLower(params.Config.Stripe.Currency)
		}
	}
	if params.Config != nil && params.Config.Invoice != nil {
		srv.invoice = *params.Config.Invoice
	}

	return srv
}

func (srv *billingService) log(ctx context.Context) *slog.Logger {
	return requestLogger(ctx, srv.logger)
}

// CreatePaymentIntent starts a checkout and remembers the assessment for the webhook.
func (srv *billingService) CreatePaymentIntent(ctx context.Context, input *usecase.CreatePaymentIntentInput) (*usecase.CreatePaymentIntentOutput, error) {
	if input == nil || strings.TrimSpace(input.UserID) == "" {
		return nil, domainerrors.NewValidationError("userId", "is required")
	}

	planName := strings.TrimSpace(input.PlanName)
	if planName == "" {
		planName = defaultPlanTitle
	}

	intent, err := srv.gateway.CreatePaymentIntent(ctx, service.PaymentIntentRequest{
		UserID:   input.UserID,
		Amount:   srv.planPrice,
		Currency: srv.currency,
		PlanName: planName,
		Email:    input.Email,
	})
	if err != nil {
		return nil, err
	}

	session := &entity.PaymentSession{
		ProviderSessionID: intent.ID,
		UserID:            input.UserID,
		AssessmentData:    input.AssessmentData,
		PlanName:          planName,
		Amount:            intent.Amount,
		Currency:          intent.Currency,
		Status:            entity.PaymentStatusPending,
	}
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.NewPaymentSessionRepository().Create(ctx, session)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to store payment session")
	}

	srv.log(ctx).Info("Payment intent created",
		slog.String("user_id", input.UserID),
		slog.String("payment_intent_id", intent.ID),
		slog.Int64("amount", intent.Amount),
	)

	return &usecase.CreatePaymentIntentOutput{
		PaymentIntentID: intent.ID,
		ClientSecret:    intent.ClientSecret,
		Amount:          intent.Amount,
		Currency:        intent.Currency,
	}, nil
}

// HandlePaymentWebhook verifies the webhook and runs the follow-up actions.
func (srv *billingService) HandlePaymentWebhook(ctx context.Context, payload []byte, header http.Header) error {
	// Nothing in the payload is trusted before the signature check
	event, err := srv.gateway.ParseWebhook(payload, header)
	if err != nil {
		return err
	}

	logger := srv.log(ctx).With(
		slog.String("stripe_event_id", event.ID),
		slog.String("type", event.Type),
		slog.String("payment_intent_id", event.IntentID),
	)

	switch event.Type {
	case service.PaymentEventSucceeded:
		// Only plan checkouts carry our type tag; anything else on the
		// account is acknowledged so Stripe stops redelivering it.
		if kind := event.Metadata[service.PaymentMetadataType]; kind != service.PaymentTypeFitnessPlan {
			logger.InfoContext(ctx, "Ignoring payment of another type", slog.String("metadata_type", kind))

			return nil
		}
		srv.onPaymentSucceeded(ctx, logger, event)
	case service.PaymentEventFailed:
		logger.WarnContext(ctx, "Payment failed", slog.Int64("amount", event.Amount))
	default:
		logger.Debug("Ignoring payment webhook")
	}

	return nil
}

// onPaymentSucceeded runs three independent actions. A failure of one is
// logged and never prevents the others.
func (srv *billingService) onPaymentSucceeded(ctx context.Context, logger *slog.Logger, event *service.PaymentEvent) {
	// 1. Mark the checkout session completed; it holds the assessment
	session, err := srv.completeSession(ctx, event.IntentID)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to complete payment session", slog.Any("error", err))
	}

	// Metadata wins, the session fills the gaps
	userID := event.Metadata[service.PaymentMetadataUserID]
	planName := event.Metadata[service.PaymentMetadataPlanName]
	if session != nil {
		if userID == "" {
			userID = session.UserID
		}
		if planName == "" {
			planName = session.PlanName
		}
	}

	// 2. Issue the invoice
	invoice, err := srv.createInvoice(ctx, event, userID, planName)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to create invoice", slog.Any("error", err))
	} else {
		logger.Info("Invoice issued", slog.String("invoice_number", invoice.Number))
	}

	// 3. Hand plan generation to the worker
	if err := srv.publishPlanGeneration(ctx, event, session, userID, planName); err != nil {
		logger.ErrorContext(ctx, "Failed to publish plan generation", slog.Any("error", err))
	}
}

func (srv *billingService) completeSession(ctx context.Context, intentID string) (*entity.PaymentSession, error) {
	var session *entity.PaymentSession
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		sessionRepo := repoFactory.NewPaymentSessionRepository()

		var err error
		if session, err = sessionRepo.FindByProviderSessionID(ctx, intentID); err != nil {
			return err
		}

		return sessionRepo.MarkCompleted(ctx, session.ID, srv.now().UTC())
	})
	if err != nil {
		return session, err
	}

	return session, nil
}

// createInvoice issues the invoice of a payment once. The per-year sequence
// is re-read when a concurrent insert took the same number.
func (srv *billingService) createInvoice(ctx context.Context, event *service.PaymentEvent, userID, planName string) (*entity.Invoice, error) {
	var invoice *entity.Invoice

	for attempt := 1; ; attempt++ {
		err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
			invoiceRepo := repoFactory.NewInvoiceRepository()

			existing, err := invoiceRepo.FindByPaymentID(ctx, event.IntentID)
			if err == nil {
				invoice = existing

				return nil
			}
			if !errors.Is(err, domainerrors.ErrInvoiceNotFound) {
				return err
			}

			now := srv.now().UTC()
			count, err := invoiceRepo.CountIssuedInYear(ctx, now.Year())
			if err != nil {
				return err
			}

			draft := srv.buildInvoice(event, planName, now, count+1)
			draft.UserID = userID
			draft.Customer = srv.customerSnapshot(ctx, repoFactory, userID, event.ReceiptMail)

			pdf, err := srv.renderer.Render(draft)
			if err != nil {
				return errors.Wrap(err, "failed to render invoice")
			}
			draft.PDF = pdf

			if err := invoiceRepo.Create(ctx, draft); err != nil {
				return err
			}
			invoice = draft

			return nil
		})
		if err == nil {
			return invoice, nil
		}
		if !errors.Is(err, domainerrors.ErrDuplicateRecord) || attempt >= invoiceNumberAttempts {
			return nil, err
		}
	}
}

func (srv *billingService) buildInvoice(event *service.PaymentEvent, planName string, now time.Time, sequence int64) *entity.Invoice {
	if planName == "" {
		planName = defaultPlanTitle
	}

	total := event.Amount
	rate := srv.invoice.VATRate
	subtotal := int64(math.Round(float64(total) / (1 + rate)))
	supplier := srv.invoice.Supplier

	return &entity.Invoice{
		Number:    fmt.Sprintf("%s%d%06d", srv.invoice.NumberPrefix, now.Year(), sequence),
		PaymentID: event.IntentID,
		Supplier: entity.InvoiceParty{
			Name:      supplier.Name,
			Street:    supplier.Street,
			City:      supplier.City,
			ZIP:       supplier.ZIP,
			Country:   supplier.Country,
			CompanyID: supplier.CompanyID,
			VATID:     supplier.VATID,
			IBAN:      supplier.IBAN,
			Email:     supplier.Email,
		},
		Items: []entity.InvoiceItem{{
			Description: planName,
			Quantity:    1,
			UnitPrice:   total,
			VATRate:     rate,
			Total:       total,
		}},
		Subtotal: subtotal,
		VAT:      total - subtotal,
		Total:    total,
		Currency: strings.ToUpper(event.Currency),
		IssuedAt: now,
		PaidAt:   now,
	}
}

// customerSnapshot copies the user onto the invoice, falling back to the receipt address.
func (srv *billingService) customerSnapshot(ctx context.Context, repoFactory repository.RepositoryFactory, userID, receiptEmail string) entity.InvoiceParty {
	party := entity.InvoiceParty{Name: receiptEmail, Email: receiptEmail}
	if userID == "" {
		return party
	}

	user, err := repoFactory.NewUserRepository().FindByID(ctx, userID)
	if err != nil {
		return party
	}

	party.Name = user.Name
	if user.Email != "" {
		party.Email = user.Email
	}

	return party
}

func (srv *billingService) publishPlanGeneration(ctx context.Context, event *service.PaymentEvent, session *entity.PaymentSession, userID, planName string) error {
	if userID == "" {
		return domainerrors.NewValidationError("metadata.userId", "is missing")
	}

	input := usecase.PlanGenerationInput{
		UserID:           userID,
		Email:            event.ReceiptMail,
		PaymentCompleted: true,
		PaymentID:        event.IntentID,
		PlanName:         planName,
	}
	if session != nil {
		input.AssessmentData = session.AssessmentData
	}

	planEvent, err := service.NewEvent(constants.EventFitnessPlanGenerate, input, deliverycontext.GetRequestIDFromContext(ctx))
	if err != nil {
		return errors.Wrap(err, "failed to build plan generation event")
	}
	// Redelivered webhooks map onto the same workflow run.
	planEvent.ID = paymentEventPrefix + event.IntentID

	return srv.publisher.PublishEvent(ctx, planEvent)
}

// ListInvoices returns the invoices of the user without PDFs, newest first.
func (srv *billingService) ListInvoices(ctx context.Context, userID string) ([]*entity.Invoice, error) {
	var invoices []*entity.Invoice
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		invoices, err = repoFactory.NewInvoiceRepository().FindByUser(ctx, userID)

		return err
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list invoices")
	}

	return invoices, nil
}

// DownloadInvoice returns an invoice of the user and records the download.
// Invoices of other users are reported as not found.
func (srv *billingService) DownloadInvoice(ctx context.Context, userID string, invoiceID uuid.UUID) (*entity.Invoice, error) {
	var invoice *entity.Invoice
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		invoiceRepo := repoFactory.NewInvoiceRepository()

		found, err := invoiceRepo.FindByID(ctx, invoiceID)
		if err != nil {
			return err
		}
		if found.UserID != userID {
			return domainerrors.ErrInvoiceNotFound
		}

		now := srv.now().UTC()
		if err := invoiceRepo.RecordDownload(ctx, found.ID, now); err != nil {
			return err
		}
		found.DownloadedAt = &now
		found.DownloadCount++
		invoice = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return invoice, nil
}
