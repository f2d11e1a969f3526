package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentMethod identifies the settlement strategy for a transaction.
type PaymentMethod string

const (
	MethodCash PaymentMethod = "CASH"
	MethodQRIS PaymentMethod = "QRIS"
)

// PaymentStatus is the settlement state of a transaction.
// PENDING transitions to PAID or FAILED exactly once; both are terminal.
type PaymentStatus string

const (
	PaymentPending PaymentStatus = "PENDING"
	PaymentPaid    PaymentStatus = "PAID"
	PaymentFailed  PaymentStatus = "FAILED"
)

// IsTerminal reports whether the status permits no further transition.
func (s PaymentStatus) IsTerminal() bool {
	return s == PaymentPaid || s == PaymentFailed
}

// Transaction is the durable record of one sale. It is created once per
// checkout; only settlement mutates it afterwards (status and payment
// amount fields), and it is never deleted.
type Transaction struct {
	TransactionID string          `json:"transactionID"`
	Code          string          `json:"code"` // Human-readable, TRX-YYYYMMDD-XXXXX
	CashierID     string          `json:"cashierID"`
	CashierName   string          `json:"cashierName,omitempty"` // Joined for display
	Subtotal      decimal.Decimal `json:"subtotal"`
	Tax           decimal.Decimal `json:"tax"`
	Discount      decimal.Decimal `json:"discount"`
	TotalAmount   decimal.Decimal `json:"totalAmount"`
	PaymentMethod PaymentMethod   `json:"paymentMethod"`
	PaymentStatus PaymentStatus   `json:"paymentStatus"`
	PaidAmount    decimal.Decimal `json:"paidAmount"`
	ChangeAmount  decimal.Decimal `json:"changeAmount"`
	QRCodeURL     string          `json:"qrCodeURL,omitempty"` // Set for deferred-settlement methods
	CreatedAt     time.Time       `json:"createdAt"`
	Items         []TransactionItem `json:"items,omitempty"`
}

// TransactionItem is one cart line of a transaction. Price is the unit
// price snapshotted at sale time; later catalog price changes must not
// alter it.
type TransactionItem struct {
	ItemID        string          `json:"itemID"`
	TransactionID string          `json:"transactionID"`
	ProductID     string          `json:"productID"`
	ProductName   string          `json:"productName,omitempty"` // Joined for display
	Quantity      int             `json:"quantity"`
	Price         decimal.Decimal `json:"price"`
	Discount      decimal.Decimal `json:"discount"`
}
