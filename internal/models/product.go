package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product mirrors the products table.
// DeletedAt is the soft-delete marker; deleted rows stay out of every
// catalog read, including the bulk resolve used by checkout.
type Product struct {
	ProductID  string          `db:"product_id"`
	CategoryID string          `db:"category_id"`
	SKU        string          `db:"sku"`
	Barcode    string          `db:"barcode"`
	Name       string          `db:"name"`
	Price      decimal.Decimal `db:"price"`
	Stock      int             `db:"stock"`
	DeletedAt  *time.Time      `db:"deleted_at"`
	AuditFields
}
