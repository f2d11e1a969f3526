package dto

import (
	"github.com/shopspring/decimal"
)

// CheckoutItemRequest is one cart line.
type CheckoutItemRequest struct {
	ProductID string           `json:"productID" binding:"required"`
	Quantity  int              `json:"quantity" binding:"required,gt=0"`
	Discount  *decimal.Decimal `json:"discount"`
}

// CheckoutRequest converts a cart into a sale. PaymentAmount is required
// by immediate-settlement methods; TaxRate and Discount default to the
// configured tax rate and zero respectively.
type CheckoutRequest struct {
	Items         []CheckoutItemRequest `json:"items" binding:"required,min=1,dive"`
	PaymentMethod string                `json:"paymentMethod" binding:"required,paymentmethod"`
	PaymentAmount *decimal.Decimal      `json:"paymentAmount"`
	TaxRate       *decimal.Decimal      `json:"taxRate"`
	Discount      *decimal.Decimal      `json:"discount"`
}

// CheckoutResponse is the result of a checkout: the persisted sale plus
// the payment strategy's outcome.
type CheckoutResponse struct {
	Transaction TransactionResponse    `json:"transaction"`
	Change      decimal.Decimal        `json:"change"`
	Payment     *PaymentResultResponse `json:"payment,omitempty"`
}
