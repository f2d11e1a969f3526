package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentOutcome is the result of dispatching a transaction to a
// payment strategy. Immediate-settlement methods fill ChangeAmount and
// Receipt; deferred methods fill QRCodeURL and ExpiresAt and leave the
// transaction PENDING until an external confirmation arrives.
type PaymentOutcome struct {
	Status       PaymentStatus
	ChangeAmount decimal.Decimal
	QRCodeURL    string
	ExpiresAt    *time.Time
	Receipt      *Receipt
}

// Receipt is the printable view of a settled sale.
type Receipt struct {
	Code          string          `json:"code"`
	Date          time.Time       `json:"date"`
	Items         []ReceiptLine   `json:"items"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	Tax           decimal.Decimal `json:"tax"`
	Total         decimal.Decimal `json:"total"`
	PaidAmount    decimal.Decimal `json:"paidAmount"`
	Change        decimal.Decimal `json:"change"`
	Cashier       string          `json:"cashier"`
	PaymentMethod PaymentMethod   `json:"paymentMethod"`
}

// ReceiptLine is one item row on a receipt.
type ReceiptLine struct {
	Name     string          `json:"name"`
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
	Total    decimal.Decimal `json:"total"`
}
