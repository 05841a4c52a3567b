// Package invoice renders invoice documents.
package invoice

import (
	"bytes"
	"fmt"
	"strings"

	"fitplan/internal/domain/entity"
	"fitplan/internal/domain/service"

	"github.com/go-pdf/fpdf"
	"github.com/pkg/errors"
)

const (
	qrImageName = "payment-qr"
	qrPixels    = 256
	qrSizeMM    = 35.0
	dateLayout  = "02.01.2006"
)

// Czech letters the cp1252 core fonts cannot draw.
var latinFallback = strings.NewReplacer(
	"č", "c", "Č", "C", "ř", "r", "Ř", "R", "ě", "e", "Ě", "E",
	"ů", "u", "Ů", "U", "ň", "n", "Ň", "N", "ť", "t", "Ť", "T",
	"ď", "d", "Ď", "D", "–", "-",
)

type pdfRenderer struct {
	qr *paymentQR
}

// NewPDFRenderer creates an InvoiceRenderer producing A4 PDFs with a payment QR code.
func NewPDFRenderer() service.InvoiceRenderer {
	return &pdfRenderer{qr: newPaymentQR(qrPixels, "M")}
}

func (r *pdfRenderer) Render(inv *entity.Invoice) ([]byte, error) {
	if inv == nil {
		return nil, errors.New("invoice is nil")
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetCompression(true)
	pdf.SetCreationDate(inv.IssuedAt)
	pdf.SetModificationDate(inv.IssuedAt)
	pdf.SetTitle("Faktura "+inv.Number, true)
	pdf.SetAuthor(inv.Supplier.Name, true)

	tr := pdf.UnicodeTranslatorFromDescriptor("")
	text := func(s string) string { return tr(latinFallback.Replace(s)) }

	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 10, text("Faktura - daňový doklad "+inv.Number), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "", 10)
	top := pdf.GetY()
	writeParty(pdf, text, 10, top, "Dodavatel", inv.Supplier)
	writeParty(pdf, text, 110, top, "Odběratel", inv.Customer)
	pdf.SetY(top + 48)

	pdf.CellFormat(0, 6, text("Datum vystavení: "+inv.IssuedAt.Format(dateLayout)), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, text("Datum úhrady: "+inv.PaidAt.Format(dateLayout)), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, text("Variabilní symbol: "+variableSymbol(inv.Number)), "", 1, "L", false, 0, "")
	pdf.Ln(6)

	widths := []float64{80, 20, 30, 20, 40}
	headers := []string{"Položka", "Množství", "Cena/ks", "DPH", "Celkem"}
	pdf.SetFont("Helvetica", "B", 10)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 8, text(h), "B", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	for _, item := range inv.Items {
		pdf.CellFormat(widths[0], 7, text(item.Description), "", 0, "L", false, 0, "")
		pdf.CellFormat(widths[1], 7, fmt.Sprintf("%d", item.Quantity), "", 0, "L", false, 0, "")
		pdf.CellFormat(widths[2], 7, text(FormatMoney(item.UnitPrice, inv.Currency)), "", 0, "L", false, 0, "")
		pdf.CellFormat(widths[3], 7, fmt.Sprintf("%.0f %%", item.VATRate*100), "", 0, "L", false, 0, "")
		pdf.CellFormat(widths[4], 7, text(FormatMoney(item.Total, inv.Currency)), "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)

	summaryX := 130.0
	for _, row := range [][2]string{
		{"Základ daně", FormatMoney(inv.Subtotal, inv.Currency)},
		{"DPH", FormatMoney(inv.VAT, inv.Currency)},
		{"Celkem", FormatMoney(inv.Total, inv.Currency)},
	} {
		pdf.SetX(summaryX)
		pdf.CellFormat(30, 7, text(row[0]), "", 0, "L", false, 0, "")
		pdf.CellFormat(40, 7, text(row[1]), "", 1, "R", false, 0, "")
	}

	if inv.Supplier.IBAN != "" {
		png, err := r.qr.PNG(inv)
		if err != nil {
			return nil, err
		}

		opts := fpdf.ImageOptions{ImageType: "PNG"}
		pdf.RegisterImageOptionsReader(qrImageName, opts, bytes.NewReader(png))
		y := pdf.GetY() + 8
		pdf.ImageOptions(qrImageName, 10, y, qrSizeMM, qrSizeMM, false, opts, 0, "")
		pdf.SetXY(10+qrSizeMM+4, y+qrSizeMM/2-3)
		pdf.CellFormat(0, 6, text("QR platba, IBAN "+inv.Supplier.IBAN), "", 1, "L", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, errors.Wrap(err, "failed to render invoice pdf")
	}

	return buf.Bytes(), nil
}

func writeParty(pdf *fpdf.Fpdf, text func(string) string, x, y float64, title string, party entity.InvoiceParty) {
	pdf.SetXY(x, y)
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(90, 6, text(title), "", 2, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)

	lines := []string{party.Name, party.Street, strings.TrimSpace(party.ZIP + " " + party.City), party.Country}
	if party.CompanyID != "" {
		lines = append(lines, "IČO: "+party.CompanyID)
	}
	if party.VATID != "" {
		lines = append(lines, "DIČ: "+party.VATID)
	}
	if party.Email != "" {
		lines = append(lines, party.Email)
	}

	for _, line := range lines {
		if line == "" {
			continue
		}
		pdf.CellFormat(90, 5, text(line), "", 2, "L", false, 0, "")
	}
}

// FormatMoney prints minor units with a decimal comma, e.g. 49900 CZK -> "499,00 CZK".
func FormatMoney(minor int64, currency string) string {
	sign := ""
	if minor < 0 {
		sign = "-"
		minor = -minor
	}

	return fmt.Sprintf("%s%d,%02d %s", sign, minor/100, minor%100, strings.ToUpper(currency))
}
