package entity

import (
	"time"

	"github.com/google/uuid"
)

// PaymentStatus is the lifecycle of a PaymentSession.
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
)

// PaymentSession keeps the assessment supplied at checkout so an asynchronous
// payment webhook can recover it by the provider session id.
type PaymentSession struct {
	ID                uuid.UUID
	ProviderSessionID string
	UserID            string
	AssessmentData    AssessmentData
	PlanName          string
	Amount            int64 // Smallest currency unit.
	Currency          string
	Status            PaymentStatus
	CompletedAt       *time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// InvoiceParty is a point-in-time snapshot of supplier or customer details.
type InvoiceParty struct {
	Name      string `json:"name"`
	Street    string `json:"street,omitempty"`
	City      string `json:"city,omitempty"`
	ZIP       string `json:"zip,omitempty"`
	Country   string `json:"country,omitempty"`
	CompanyID string `json:"companyId,omitempty"`
	VATID     string `json:"vatId,omitempty"`
	IBAN      string `json:"iban,omitempty"`
	Email     string `json:"email,omitempty"`
}

// InvoiceItem is a single line. Prices are in the smallest currency unit.
type InvoiceItem struct {
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
	UnitPrice   int64   `json:"unitPrice"`
	VATRate     float64 `json:"vatRate"`
	Total       int64   `json:"total"`
}

// Invoice is created once per completed payment. Only the download
// tracking fields change after the PDF has been rendered.
type Invoice struct {
	ID            uuid.UUID
	Number        string
	PaymentID     string
	UserID        string
	Supplier      InvoiceParty
	Customer      InvoiceParty
	Items         []InvoiceItem
	Subtotal      int64
	VAT           int64
	Total         int64
	Currency      string
	PDF           []byte
	IssuedAt      time.Time
	PaidAt        time.Time
	DownloadedAt  *time.Time
	DownloadCount int
	CreatedAt     time.Time
}
