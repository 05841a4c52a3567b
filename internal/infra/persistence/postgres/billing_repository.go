package postgres

import (
	"context"
	"time"

	"fitplan/internal/domain/entity"
	domainerrors "fitplan/internal/domain/errors"
	"fitplan/internal/domain/repository"
	"fitplan/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// paymentSessionRepository implements the repository.PaymentSessionRepository interface.
type paymentSessionRepository struct {
	db *gorm.DB
}

// NewPaymentSessionRepository is the constructor for paymentSessionRepository.
func NewPaymentSessionRepository(db *gorm.DB) repository.PaymentSessionRepository {
	return &paymentSessionRepository{db: db}
}

func (repo *paymentSessionRepository) Create(ctx context.Context, session *entity.PaymentSession) error {
	assignID(&session.ID)
	sessionM := fromPaymentSessionDomain(session)

	if err := repo.db.WithContext(ctx).Create(sessionM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrDuplicateRecord.WithDetails("payment session already exists")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create payment session")
	}

	session.CreatedAt = sessionM.CreatedAt
	session.UpdatedAt = sessionM.UpdatedAt

	return nil
}

func (repo *paymentSessionRepository) FindByProviderSessionID(ctx context.Context, providerSessionID string) (*entity.PaymentSession, error) {
	var sessionM model.PaymentSessionModel

	if err := repo.db.WithContext(ctx).
		Where("provider_session_id = ?", providerSessionID).
		First(&sessionM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrPaymentSessionNotFound
		}

		return nil, errors.Wrap(err, "failed to find payment session")
	}

	return toPaymentSessionDomain(&sessionM), nil
}

// MarkCompleted only touches pending sessions, so a replayed webhook keeps the first completion time.
func (repo *paymentSessionRepository) MarkCompleted(ctx context.Context, id uuid.UUID, completedAt time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.PaymentSessionModel{}).
		Where("id = ? AND status <> ?", id, string(entity.PaymentStatusCompleted)).
		Updates(map[string]any{
			"status":       string(entity.PaymentStatusCompleted),
			"completed_at": completedAt,
		})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to complete payment session")
	}

	return nil
}

// invoiceRepository implements the repository.InvoiceRepository interface.
type invoiceRepository struct {
	db *gorm.DB
}

// NewInvoiceRepository is the constructor for invoiceRepository.
func NewInvoiceRepository(db *gorm.DB) repository.InvoiceRepository {
	return &invoiceRepository{db: db}
}

func (repo *invoiceRepository) Create(ctx context.Context, invoice *entity.Invoice) error {
	assignID(&invoice.ID)
	invoiceM := fromInvoiceDomain(invoice)

	if err := repo.db.WithContext(ctx).Create(invoiceM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrDuplicateRecord.WithDetails("invoice already exists")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create invoice")
	}

	invoice.CreatedAt = invoiceM.CreatedAt

	return nil
}

func (repo *invoiceRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Invoice, error) {
	return repo.findOne(ctx, "id = ?", id)
}

func (repo *invoiceRepository) FindByPaymentID(ctx context.Context, paymentID string) (*entity.Invoice, error) {
	return repo.findOne(ctx, "payment_id = ?", paymentID)
}

func (repo *invoiceRepository) findOne(ctx context.Context, query string, arg any) (*entity.Invoice, error) {
	var invoiceM model.InvoiceModel

	if err := repo.db.WithContext(ctx).Where(query, arg).First(&invoiceM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrInvoiceNotFound
		}

		return nil, errors.Wrap(err, "failed to find invoice")
	}

	return toInvoiceDomain(&invoiceM), nil
}

func (repo *invoiceRepository) FindByUser(ctx context.Context, userID string) ([]*entity.Invoice, error) {
	var invoiceModels []*model.InvoiceModel

	if err := repo.db.WithContext(ctx).
		Omit("pdf").
		Where("user_id = ?", userID).
		Order("issued_at DESC").
		Find(&invoiceModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list invoices")
	}

	invoices := make([]*entity.Invoice, 0, len(invoiceModels))
	for _, invoiceM := range invoiceModels {
		invoices = append(invoices, toInvoiceDomain(invoiceM))
	}

	return invoices, nil
}

func (repo *invoiceRepository) CountIssuedInYear(ctx context.Context, year int) (int64, error) {
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(1, 0, 0)

	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.InvoiceModel{}).
		Where("issued_at >= ? AND issued_at < ?", start, end).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count invoices")
	}

	return count, nil
}

func (repo *invoiceRepository) RecordDownload(ctx context.Context, id uuid.UUID, at time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.InvoiceModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"downloaded_at":  at,
			"download_count": gorm.Expr("download_count + 1"),
		})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to record invoice download")
	}

	if result.RowsAffected == 0 {
		return domainerrors.ErrInvoiceNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toPaymentSessionDomain(data *model.PaymentSessionModel) *entity.PaymentSession {
	return &entity.PaymentSession{
		ID:                data.ID,
		ProviderSessionID: data.ProviderSessionID,
		UserID:            data.UserID,
		AssessmentData:    data.AssessmentData.Data(),
		PlanName:          data.PlanName,
		Amount:            data.Amount,
		Currency:          data.Currency,
		Status:            entity.PaymentStatus(data.Status),
		CompletedAt:       data.CompletedAt,
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}
}

func fromPaymentSessionDomain(data *entity.PaymentSession) *model.PaymentSessionModel {
	status := data.Status
	if status == "" {
		status = entity.PaymentStatusPending
	}

	return &model.PaymentSessionModel{
		ID:                data.ID,
		ProviderSessionID: data.ProviderSessionID,
		UserID:            data.UserID,
		AssessmentData:    datatypes.NewJSONType(data.AssessmentData),
		PlanName:          data.PlanName,
		Amount:            data.Amount,
		Currency:          data.Currency,
		Status:            string(status),
		CompletedAt:       data.CompletedAt,
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}
}

func toInvoiceDomain(data *model.InvoiceModel) *entity.Invoice {
	return &entity.Invoice{
		ID:            data.ID,
		Number:        data.Number,
		PaymentID:     data.PaymentID,
		UserID:        data.UserID,
		Supplier:      data.Supplier.Data(),
		Customer:      data.Customer.Data(),
		Items:         []entity.InvoiceItem(data.Items),
		Subtotal:      data.Subtotal,
		VAT:           data.VAT,
		Total:         data.Total,
		Currency:      data.Currency,
		PDF:           data.PDF,
		IssuedAt:      data.IssuedAt,
		PaidAt:        data.PaidAt,
		DownloadedAt:  data.DownloadedAt,
		DownloadCount: data.DownloadCount,
		CreatedAt:     data.CreatedAt,
	}
}

func fromInvoiceDomain(data *entity.Invoice) *model.InvoiceModel {
	return &model.InvoiceModel{
		ID:            data.ID,
		Number:        data.Number,
		PaymentID:     data.PaymentID,
		UserID:        data.UserID,
		Supplier:      datatypes.NewJSONType(data.Supplier),
		Customer:      datatypes.NewJSONType(data.Customer),
		Items:         datatypes.JSONSlice[entity.InvoiceItem](data.Items),
		Subtotal:      data.Subtotal,
		VAT:           data.VAT,
		Total:         data.Total,
		Currency:      data.Currency,
		PDF:           data.PDF,
		IssuedAt:      data.IssuedAt,
		PaidAt:        data.PaidAt,
		DownloadedAt:  data.DownloadedAt,
		DownloadCount: data.DownloadCount,
		CreatedAt:     data.CreatedAt,
	}
}
