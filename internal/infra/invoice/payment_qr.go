package invoice

import (
	"fmt"
	"strings"
	"unicode"

	"fitplan/internal/domain/entity"

	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

const maxSPDMessage = 60

// PaymentString builds a Czech "Short Payment Descriptor" (SPD 1.0) that
// banking apps read from the QR code.
func PaymentString(inv *entity.Invoice) string {
	parts := []string{
		"SPD",
		"1.0",
		"ACC:" + strings.ReplaceAll(strings.ToUpper(inv.Supplier.IBAN), " ", ""),
		"AM:" + fmt.Sprintf("%d.%02d", inv.Total/100, inv.Total%100),
		"CC:" + strings.ToUpper(inv.Currency),
	}

	if vs := variableSymbol(inv.Number); vs != "" {
		parts = append(parts, "X-VS:"+vs)
	}

	msg := spdEscape("Faktura " + inv.Number)
	if len(msg) > maxSPDMessage {
		msg = msg[:maxSPDMessage]
	}
	parts = append(parts, "MSG:"+msg)

	return strings.Join(parts, "*")
}

// variableSymbol keeps the last ten digits of the invoice number.
func variableSymbol(number string) string {
	var digits []rune
	for _, r := range number {
		if unicode.IsDigit(r) {
			digits = append(digits, r)
		}
	}
	if len(digits) > 10 {
		digits = digits[len(digits)-10:]
	}

	return string(digits)
}

func spdEscape(s string) string {
	return strings.ReplaceAll(s, "*", "%2A")
}

// paymentQR encodes the SPD string as a PNG.
type paymentQR struct {
	size  int
	level qrcode.RecoveryLevel
}

func newPaymentQR(size int, level string) *paymentQR {
	var recovery qrcode.RecoveryLevel
	switch level {
	case "L":
		recovery = qrcode.Low
	case "Q":
		recovery = qrcode.High
	case "H":
		recovery = qrcode.Highest
	default:
		recovery = qrcode.Medium
	}

	return &paymentQR{size: size, level: recovery}
}

func (q *paymentQR) PNG(inv *entity.Invoice) ([]byte, error) {
	code, err := qrcode.New(PaymentString(inv), q.level)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create payment QR code")
	}

	png, err := code.PNG(q.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode payment QR code")
	}

	return png, nil
}
