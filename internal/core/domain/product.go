package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product represents a sellable catalog item.
// Stock is the persisted net of all stock movements for the product;
// checkout must never trust a previously read value without re-checking
// under the commit's isolation boundary.
type Product struct {
	ProductID  string          `json:"productID"`
	CategoryID string          `json:"categoryID"`
	SKU        string          `json:"sku"`
	Barcode    string          `json:"barcode"`
	Name       string          `json:"name"`
	Price      decimal.Decimal `json:"price"`
	Stock      int             `json:"stock"`
	DeletedAt  *time.Time      `json:"deletedAt,omitempty"` // Soft delete marker
	AuditFields
}

// IsDeleted reports whether the product has been soft-deleted.
func (p Product) IsDeleted() bool {
	return p.DeletedAt != nil
}
