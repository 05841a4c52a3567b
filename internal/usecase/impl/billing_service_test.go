package impl

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"fitplan/config"
	"fitplan/internal/domain/constants"
	"fitplan/internal/domain/entity"
	domainerrors "fitplan/internal/domain/errors"
	"fitplan/internal/domain/service"
	"fitplan/internal/mocks/memory"
	mockService "fitplan/internal/mocks/service"
	"fitplan/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type billingFixture struct {
	service   *billingService
	store     *memory.Store
	gateway   *mockService.MockPaymentGateway
	renderer  *mockService.MockInvoiceRenderer
	publisher *mockService.MockEventPublisher
}

func createTestBillingService(t *testing.T) *billingFixture {
	t.Helper()

	store := memory.NewStore()
	gateway := mockService.NewMockPaymentGateway(t)
	renderer := mockService.NewMockInvoiceRenderer(t)
	publisher := mockService.NewMockEventPublisher(t)

	cfg := &config.Config{
		Stripe: &config.StripeConfig{PlanPrice: 49900, Currency: "CZK"},
		Invoice: &config.InvoiceConfig{
			NumberPrefix: "FP",
			VATRate:      0.21,
			Supplier:     config.SupplierConfig{Name: "FitPlan s.r.o.", IBAN: "CZ6508000000192000145399"},
		},
	}

	svc := NewBillingService(BillingServiceParams{
		TxManager: store,
		Gateway:   gateway,
		Renderer:  renderer,
		Publisher: publisher,
		Config:    cfg,
		Logger:    newDiscardLogger(),
	}).(*billingService)
	svc.now = func() time.Time { return time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC) }

	return &billingFixture{service: svc, store: store, gateway: gateway, renderer: renderer, publisher: publisher}
}

func succeededEvent() *service.PaymentEvent {
	return &service.PaymentEvent{
		ID:       "evt_1",
		Type:     service.PaymentEventSucceeded,
		IntentID: "pi_123",
		Amount:   49900,
		Currency: "czk",
		Metadata: map[string]string{
			service.PaymentMetadataType:     service.PaymentTypeFitnessPlan,
			service.PaymentMetadataUserID:   "user_1",
			service.PaymentMetadataPlanName: "Plán hubnutí",
		},
		ReceiptMail: "jana@example.com",
	}
}

func (f *billingFixture) seedSession() *entity.PaymentSession {
	session := &entity.PaymentSession{
		ID:                uuid.New(),
		ProviderSessionID: "pi_123",
		UserID:            "user_1",
		AssessmentData:    entity.AssessmentData{Age: 33, FitnessGoal: "WEIGHT_LOSS"},
		PlanName:          "Plán hubnutí",
		Amount:            49900,
		Currency:          "czk",
		Status:            entity.PaymentStatusPending,
	}
	f.store.Sessions[session.ID] = session

	return session
}

func TestBilling_CreatePaymentIntent(t *testing.T) {
	f := createTestBillingService(t)

	f.gateway.EXPECT().CreatePaymentIntent(mock.Anything, service.PaymentIntentRequest{
		UserID:   "user_1",
		Amount:   49900,
		Currency: "czk",
		PlanName: defaultPlanTitle,
		Email:    "jana@example.com",
	}).Return(&service.PaymentIntent{ID: "pi_1", ClientSecret: "pi_1_secret", Amount: 49900, Currency: "czk"}, nil).Once()

	out, err := f.service.CreatePaymentIntent(context.Background(), &usecase.CreatePaymentIntentInput{
		UserID:         "user_1",
		Email:          "jana@example.com",
		AssessmentData: entity.AssessmentData{Age: 33},
	})
	require.NoError(t, err)
	assert.Equal(t, "pi_1_secret", out.ClientSecret)

	require.Len(t, f.store.Sessions, 1)
	for _, session := range f.store.Sessions {
		assert.Equal(t, "pi_1", session.ProviderSessionID)
		assert.Equal(t, entity.PaymentStatusPending, session.Status)
		assert.Equal(t, 33, session.AssessmentData.Age)
	}
}

func TestBilling_WebhookInvalidSignature(t *testing.T) {
	f := createTestBillingService(t)

	f.gateway.EXPECT().ParseWebhook(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrInvalidSignature).Once()

	err := f.service.HandlePaymentWebhook(context.Background(), []byte(`{}`), http.Header{})

	assert.ErrorIs(t, err, domainerrors.ErrInvalidSignature)
	assert.Empty(t, f.store.Invoices)
}

func TestBilling_PaymentSucceeded(t *testing.T) {
	f := createTestBillingService(t)
	session := f.seedSession()
	f.store.Users["user_1"] = &entity.User{ID: "user_1", Email: "jana@fitplan.cz", Name: "Jana Nováková"}

	f.gateway.EXPECT().ParseWebhook(mock.Anything, mock.Anything).Return(succeededEvent(), nil)
	f.renderer.EXPECT().Render(mock.Anything).Return([]byte("%PDF-1.3"), nil).Once()

	var published []*service.Event
	f.publisher.EXPECT().PublishEvent(mock.Anything, mock.Anything).
		Run(func(_ context.Context, event *service.Event) { published = append(published, event) }).
		Return(nil)

	require.NoError(t, f.service.HandlePaymentWebhook(context.Background(), []byte(`{}`), http.Header{}))
	// Stripe retries deliveries; the second one must not issue another invoice.
	require.NoError(t, f.service.HandlePaymentWebhook(context.Background(), []byte(`{}`), http.Header{}))

	assert.Equal(t, entity.PaymentStatusCompleted, f.store.Sessions[session.ID].Status)

	require.Len(t, f.store.Invoices, 1)
	for _, invoice := range f.store.Invoices {
		assert.Equal(t, "FP2026000001", invoice.Number)
		assert.Equal(t, int64(49900), invoice.Total)
		assert.Equal(t, int64(41240), invoice.Subtotal)
		assert.Equal(t, int64(8660), invoice.VAT)
		assert.Equal(t, "CZK", invoice.Currency)
		assert.Equal(t, "Jana Nováková", invoice.Customer.Name)
		assert.Equal(t, "jana@fitplan.cz", invoice.Customer.Email)
		assert.Equal(t, "FitPlan s.r.o.", invoice.Supplier.Name)
		assert.Equal(t, "Plán hubnutí", invoice.Items[0].Description)
		assert.Equal(t, []byte("%PDF-1.3"), invoice.PDF)
	}

	require.Len(t, published, 2)
	assert.Equal(t, "pi-pi_123", published[0].ID)
	assert.Equal(t, published[0].ID, published[1].ID)
	assert.Equal(t, constants.EventFitnessPlanGenerate, published[0].Name)

	var input usecase.PlanGenerationInput
	require.NoError(t, json.Unmarshal(published[0].Data, &input))
	assert.Equal(t, "user_1", input.UserID)
	assert.Equal(t, "Plán hubnutí", input.PlanName)
	assert.True(t, input.PaymentCompleted)
	assert.Equal(t, "pi_123", input.PaymentID)
	assert.Equal(t, 33, input.AssessmentData.Age)
}

func TestBilling_PaymentOfOtherTypeIsIgnored(t *testing.T) {
	for name, kind := range map[string]string{"other type": "gift_card", "untagged": ""} {
		t.Run(name, func(t *testing.T) {
			f := createTestBillingService(t)
			session := f.seedSession()

			event := succeededEvent()
			event.Metadata[service.PaymentMetadataType] = kind
			f.gateway.EXPECT().ParseWebhook(mock.Anything, mock.Anything).Return(event, nil).Once()

			err := f.service.HandlePaymentWebhook(context.Background(), []byte(`{}`), http.Header{})

			require.NoError(t, err)
			assert.Equal(t, entity.PaymentStatusPending, f.store.Sessions[session.ID].Status)
			assert.Empty(t, f.store.Invoices)
			f.publisher.AssertNotCalled(t, "PublishEvent", mock.Anything, mock.Anything)
			f.renderer.AssertNotCalled(t, "Render", mock.Anything)
		})
	}
}

func TestBilling_ActionsAreIndependent(t *testing.T) {
	f := createTestBillingService(t)

	// No session was stored and rendering fails: the plan is still published.
	f.gateway.EXPECT().ParseWebhook(mock.Anything, mock.Anything).Return(succeededEvent(), nil).Once()
	f.renderer.EXPECT().Render(mock.Anything).Return(nil, errors.New("font missing")).Once()
	f.publisher.EXPECT().PublishEvent(mock.Anything, mock.MatchedBy(func(e *service.Event) bool {
		return e.ID == "pi-pi_123"
	})).Return(nil).Once()

	err := f.service.HandlePaymentWebhook(context.Background(), []byte(`{}`), http.Header{})

	require.NoError(t, err)
	assert.Empty(t, f.store.Invoices)
}

func TestBilling_PublishFailureKeepsInvoice(t *testing.T) {
	f := createTestBillingService(t)
	f.seedSession()

	f.gateway.EXPECT().ParseWebhook(mock.Anything, mock.Anything).Return(succeededEvent(), nil).Once()
	f.renderer.EXPECT().Render(mock.Anything).Return([]byte("%PDF"), nil).Once()
	f.publisher.EXPECT().PublishEvent(mock.Anything, mock.Anything).Return(errors.New("queue down")).Once()

	err := f.service.HandlePaymentWebhook(context.Background(), []byte(`{}`), http.Header{})

	require.NoError(t, err)
	require.Len(t, f.store.Invoices, 1)
	for _, invoice := range f.store.Invoices {
		assert.Equal(t, "jana@example.com", invoice.Customer.Email, "falls back to the receipt address")
	}
}

func TestBilling_IgnoresOtherEvents(t *testing.T) {
	f := createTestBillingService(t)

	for _, eventType := range []string{service.PaymentEventFailed, "charge.refunded"} {
		f.gateway.EXPECT().ParseWebhook(mock.Anything, mock.Anything).
			Return(&service.PaymentEvent{ID: "evt", Type: eventType, IntentID: "pi_9"}, nil).Once()

		require.NoError(t, f.service.HandlePaymentWebhook(context.Background(), []byte(`{}`), http.Header{}))
	}

	assert.Empty(t, f.store.Invoices)
}

func TestBilling_InvoiceSequenceContinues(t *testing.T) {
	f := createTestBillingService(t)

	existingID := uuid.New()
	f.store.Invoices[existingID] = &entity.Invoice{
		ID:        existingID,
		Number:    "FP2026000001",
		PaymentID: "pi_old",
		UserID:    "user_2",
		IssuedAt:  time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC),
	}

	f.renderer.EXPECT().Render(mock.Anything).Return([]byte("%PDF"), nil).Once()

	invoice, err := f.service.createInvoice(context.Background(), succeededEvent(), "user_1", "Plán")
	require.NoError(t, err)
	assert.Equal(t, "FP2026000002", invoice.Number)
}

func TestBilling_DownloadInvoice(t *testing.T) {
	f := createTestBillingService(t)

	invoiceID := uuid.New()
	f.store.Invoices[invoiceID] = &entity.Invoice{
		ID:       invoiceID,
		Number:   "FP2026000001",
		UserID:   "user_1",
		PDF:      []byte("%PDF"),
		IssuedAt: time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC),
	}

	_, err := f.service.DownloadInvoice(context.Background(), "user_2", invoiceID)
	assert.ErrorIs(t, err, domainerrors.ErrInvoiceNotFound)

	invoice, err := f.service.DownloadInvoice(context.Background(), "user_1", invoiceID)
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF"), invoice.PDF)
	assert.Equal(t, 1, invoice.DownloadCount)
	assert.Equal(t, 1, f.store.Invoices[invoiceID].DownloadCount)
	require.NotNil(t, f.store.Invoices[invoiceID].DownloadedAt)

	list, err := f.service.ListInvoices(context.Background(), "user_1")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Nil(t, list[0].PDF)
}
