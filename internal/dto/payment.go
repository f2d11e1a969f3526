package dto

import (
	"time"

	"github.com/dimasprayoga/pos-backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ProcessPaymentRequest settles an existing transaction with the given method.
type ProcessPaymentRequest struct {
	Method     string           `json:"method" binding:"required,paymentmethod"`
	PaidAmount *decimal.Decimal `json:"paidAmount"`
}

// PaymentResultResponse is the outcome of a settlement attempt.
type PaymentResultResponse struct {
	Status       string           `json:"status"`
	ChangeAmount *decimal.Decimal `json:"changeAmount,omitempty"`
	QRCodeURL    string           `json:"qrCodeURL,omitempty"`
	ExpiresAt    *time.Time       `json:"expiresAt,omitempty"`
	Receipt      *domain.Receipt  `json:"receipt,omitempty"`
}

// PaymentWebhookRequest is the confirmation callback payload for
// deferred-settlement methods. The callback implicitly asserts that the
// external provider collected the payment; authenticity verification of
// the caller must be added before wiring a real provider.
type PaymentWebhookRequest struct {
	TransactionID string `json:"transactionID" binding:"required"`
}

// PaymentStatusResponse reports the current payment status of a transaction.
type PaymentStatusResponse struct {
	TransactionID string `json:"transactionID"`
	Status        string `json:"status"`
}

// ToPaymentResultResponse converts a domain PaymentOutcome.
func ToPaymentResultResponse(o *domain.PaymentOutcome) PaymentResultResponse {
	resp := PaymentResultResponse{
		Status:    string(o.Status),
		QRCodeURL: o.QRCodeURL,
		ExpiresAt: o.ExpiresAt,
		Receipt:   o.Receipt,
	}
	if o.Status == domain.PaymentPaid {
		change := o.ChangeAmount
		resp.ChangeAmount = &change
	}
	return resp
}
