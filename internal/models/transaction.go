package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentMethod identifies the settlement strategy for a transaction.
type PaymentMethod string

// PaymentStatus is the settlement state of a transaction.
type PaymentStatus string

const (
	PaymentPending PaymentStatus = "PENDING"
	PaymentPaid    PaymentStatus = "PAID"
	PaymentFailed  PaymentStatus = "FAILED"
)

// Transaction mirrors the transactions table.
type Transaction struct {
	TransactionID string          `db:"transaction_id"`
	Code          string          `db:"code"`
	CashierID     string          `db:"cashier_id"`
	CashierName   string          `db:"cashier_name"` // Joined from users, not a column
	Subtotal      decimal.Decimal `db:"subtotal"`
	Tax           decimal.Decimal `db:"tax"`
	Discount      decimal.Decimal `db:"discount"`
	TotalAmount   decimal.Decimal `db:"total_amount"`
	PaymentMethod PaymentMethod   `db:"payment_method"`
	PaymentStatus PaymentStatus   `db:"payment_status"`
	PaidAmount    decimal.Decimal `db:"paid_amount"`
	ChangeAmount  decimal.Decimal `db:"change_amount"`
	QRCodeURL     string          `db:"qr_code_url"`
	CreatedAt     time.Time       `db:"created_at"`
}

// TransactionItem mirrors the transaction_items table.
type TransactionItem struct {
	ItemID        string          `db:"item_id"`
	TransactionID string          `db:"transaction_id"`
	ProductID     string          `db:"product_id"`
	ProductName   string          `db:"product_name"` // Joined from products, not a column
	Quantity      int             `db:"quantity"`
	Price         decimal.Decimal `db:"price"`
	Discount      decimal.Decimal `db:"discount"`
}
