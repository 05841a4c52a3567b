package impl

import (
	"context"
	"testing"
	"time"

	"fitplan/internal/domain/entity"
	domainerrors "fitplan/internal/domain/errors"
	"fitplan/internal/domain/repository"
	"fitplan/internal/domain/service"
	mockRepo "fitplan/internal/mocks/repository"
	mockService "fitplan/internal/mocks/service"
	"fitplan/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type billingRepoFixtures struct {
	service   *billingService
	txManager *mockRepo.MockTransactionManager
	gateway   *mockService.MockPaymentGateway
}

func createTestBillingRepoService(t *testing.T) billingRepoFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	gateway := mockService.NewMockPaymentGateway(t)

	svc := NewBillingService(BillingServiceParams{
		TxManager: txManager,
		Gateway:   gateway,
		Renderer:  mockService.NewMockInvoiceRenderer(t),
		Publisher: mockService.NewMockEventPublisher(t),
		Logger:    newDiscardLogger(),
	}).(*billingService)
	svc.now = func() time.Time { return time.Date(2026, 4, 2, 8, 30, 0, 0, time.UTC) }

	return billingRepoFixtures{service: svc, txManager: txManager, gateway: gateway}
}

func (f billingRepoFixtures) onExecute(t *testing.T, setup func(factory *mockRepo.MockRepositoryFactory)) {
	f.txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			setup(factory)

			return fn(factory)
		}).Once()
}

func TestBillingService_CreatePaymentIntent_StoreFailure(t *testing.T) {
	fx := createTestBillingRepoService(t)
	ctx := context.Background()

	fx.gateway.EXPECT().CreatePaymentIntent(ctx, mock.MatchedBy(func(req service.PaymentIntentRequest) bool {
		return req.Amount == defaultPlanPrice && req.Currency == defaultCurrency && req.PlanName == defaultPlanTitle
	})).Return(&service.PaymentIntent{ID: "pi_9", ClientSecret: "secret", Amount: defaultPlanPrice, Currency: defaultCurrency}, nil)

	fx.onExecute(t, func(factory *mockRepo.MockRepositoryFactory) {
		sessions := mockRepo.NewMockPaymentSessionRepository(t)
		factory.EXPECT().NewPaymentSessionRepository().Return(sessions)
		sessions.EXPECT().Create(ctx, mock.MatchedBy(func(s *entity.PaymentSession) bool {
			return s.ProviderSessionID == "pi_9" && s.Status == entity.PaymentStatusPending
		})).Return(errors.New("db error"))
	})

	out, err := fx.service.CreatePaymentIntent(ctx, &usecase.CreatePaymentIntentInput{UserID: "user_1"})

	require.Error(t, err)
	assert.Nil(t, out)
	assert.Contains(t, err.Error(), "failed to store payment session")
}

func TestBillingService_ListInvoices_Failure(t *testing.T) {
	fx := createTestBillingRepoService(t)
	ctx := context.Background()

	fx.onExecute(t, func(factory *mockRepo.MockRepositoryFactory) {
		invoices := mockRepo.NewMockInvoiceRepository(t)
		factory.EXPECT().NewInvoiceRepository().Return(invoices)
		invoices.EXPECT().FindByUser(ctx, "user_1").Return(nil, errors.New("db error"))
	})

	_, err := fx.service.ListInvoices(ctx, "user_1")

	assert.Contains(t, err.Error(), "failed to list invoices")
}

func TestBillingService_DownloadInvoice_RecordsDownload(t *testing.T) {
	fx := createTestBillingRepoService(t)
	ctx := context.Background()
	invoiceID := uuid.New()
	at := time.Date(2026, 4, 2, 8, 30, 0, 0, time.UTC)

	fx.onExecute(t, func(factory *mockRepo.MockRepositoryFactory) {
		invoices := mockRepo.NewMockInvoiceRepository(t)
		factory.EXPECT().NewInvoiceRepository().Return(invoices)
		invoices.EXPECT().FindByID(ctx, invoiceID).
			Return(&entity.Invoice{ID: invoiceID, UserID: "user_1", DownloadCount: 2, PDF: []byte("%PDF")}, nil)
		invoices.EXPECT().RecordDownload(ctx, invoiceID, at).Return(nil)
	})

	invoice, err := fx.service.DownloadInvoice(ctx, "user_1", invoiceID)

	require.NoError(t, err)
	assert.Equal(t, 3, invoice.DownloadCount)
	require.NotNil(t, invoice.DownloadedAt)
	assert.Equal(t, at, *invoice.DownloadedAt)
}

func TestBillingService_DownloadInvoice_ForeignInvoice(t *testing.T) {
	fx := createTestBillingRepoService(t)
	ctx := context.Background()
	invoiceID := uuid.New()

	fx.onExecute(t, func(factory *mockRepo.MockRepositoryFactory) {
		invoices := mockRepo.NewMockInvoiceRepository(t)
		factory.EXPECT().NewInvoiceRepository().Return(invoices)
		invoices.EXPECT().FindByID(ctx, invoiceID).Return(&entity.Invoice{ID: invoiceID, UserID: "someone_else"}, nil)
	})

	_, err := fx.service.DownloadInvoice(ctx, "user_1", invoiceID)

	assert.True(t, errors.Is(err, domainerrors.ErrInvoiceNotFound))
}
