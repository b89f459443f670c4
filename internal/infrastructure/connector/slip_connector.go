package connector

import (
	"fmt"

	qrcode "github.com/skip2/go-qrcode"

	"github.com/shopspring/decimal"
)

// SlipConnector renders payment-slip QR codes for wallet top-ups.
type SlipConnector interface {
	// GenerateQR returns the PNG bytes of the slip QR for the top-up.
	GenerateQR(topUpID string, amount decimal.Decimal, currency string) ([]byte, error)
}

type qrSlipConnector struct{}

// NewQRSlipConnector creates a SlipConnector backed by a local QR encoder.
func NewQRSlipConnector() SlipConnector {
	return &qrSlipConnector{}
}

// GenerateQR encodes the top-up reference and amount the payment gateway
// scans to route the transfer.
func (c *qrSlipConnector) GenerateQR(topUpID string, amount decimal.Decimal, currency string) ([]byte, error) {
	payload := fmt.Sprintf("xaosao://topup/%s?amount=%s&currency=%s", topUpID, amount.StringFixed(2), currency)

	png, err := qrcode.Encode(payload, qrcode.Medium, 256)
	if err != nil {
		return nil, fmt.Errorf("failed to encode slip QR: %w", err)
	}
	return png, nil
}
