package service

import "fitplan/internal/domain/entity"

// InvoiceRenderer produces the PDF document stored with an invoice.
type InvoiceRenderer interface {
	Render(invoice *entity.Invoice) ([]byte, error)
}
