package model

import (
	"time"

	"fitplan/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// PaymentSessionModel mirrors the 'payment_sessions' table.
type PaymentSessionModel struct {
	ID                uuid.UUID                                 `gorm:"type:uuid;primaryKey"`
	ProviderSessionID string                                    `gorm:"type:varchar(255);not null;uniqueIndex"`
	UserID            string                                    `gorm:"type:varchar(64);not null;index"`
	AssessmentData    datatypes.JSONType[entity.AssessmentData] `gorm:"type:jsonb"`
	PlanName          string                                    `gorm:"type:varchar(255)"`
	Amount            int64                                     `gorm:"not null"`
	Currency          string                                    `gorm:"type:varchar(8);not null"`
	Status            string                                    `gorm:"type:varchar(16);not null"`
	CompletedAt       *time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// TableName explicitly sets the table name for GORM.
func (PaymentSessionModel) TableName() string {
	return "payment_sessions"
}

// InvoiceModel mirrors the 'invoices' table. PaymentID is unique so one
// payment can never produce two invoices.
type InvoiceModel struct {
	ID            uuid.UUID                               `gorm:"type:uuid;primaryKey"`
	Number        string                                  `gorm:"type:varchar(32);not null;uniqueIndex"`
	PaymentID     string                                  `gorm:"type:varchar(255);not null;uniqueIndex"`
	UserID        string                                  `gorm:"type:varchar(64);not null;index"`
	Supplier      datatypes.JSONType[entity.InvoiceParty] `gorm:"type:jsonb"`
	Customer      datatypes.JSONType[entity.InvoiceParty] `gorm:"type:jsonb"`
	Items         datatypes.JSONSlice[entity.InvoiceItem] `gorm:"type:jsonb"`
	Subtotal      int64
	VAT           int64
	Total         int64
	Currency      string `gorm:"type:varchar(8);not null"`
	PDF           []byte `gorm:"type:bytea"`
	IssuedAt      time.Time `gorm:"not null;index"`
	PaidAt        time.Time
	DownloadedAt  *time.Time
	DownloadCount int `gorm:"not null;default:0"`
	CreatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (InvoiceModel) TableName() string {
	return "invoices"
}
