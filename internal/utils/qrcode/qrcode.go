package qrcode

import (
	"encoding/base64"
	"fmt"
	"net/url"

	"github.com/shopspring/decimal"
	qrcode "github.com/skip2/go-qrcode"
)

const (
	// Size сторона PNG в пикселях
	Size = 300

	currency = "INR"
)

// UPIGenerator строит QR-коды UPI-платежей на фиксированного получателя
type UPIGenerator struct {
	upiID     string
	payeeName string
}

// NewUPIGenerator создает генератор для UPI ID и имени получателя
func NewUPIGenerator(upiID, payeeName string) *UPIGenerator {
	return &UPIGenerator{upiID: upiID, payeeName: payeeName}
}

// PaymentURI возвращает upi://pay ссылку на сумму
func (g *UPIGenerator) PaymentURI(amount decimal.Decimal) string {
	q := url.Values{}
	q.Set("pa", g.upiID)
	q.Set("pn", g.payeeName)
	q.Set("am", amount.StringFixed(2))
	q.Set("cu", currency)

	return "upi://pay?" + q.Encode()
}

// PaymentQR возвращает PNG с QR-кодом в виде data URL
func (g *UPIGenerator) PaymentQR(amount decimal.Decimal) (string, error) {
	png, err := qrcode.Encode(g.PaymentURI(amount), qrcode.Medium, Size)
	if err != nil {
		return "", fmt.Errorf("qrcode: failed to encode payment uri: %w", err)
	}

	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}
