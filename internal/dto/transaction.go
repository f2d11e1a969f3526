package dto

import (
	"time"

	"github.com/dimasprayoga/pos-backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TransactionItemResponse is one line of a sale, with the price that was
// snapshotted at sale time.
type TransactionItemResponse struct {
	ItemID      string          `json:"id"`
	ProductID   string          `json:"productID"`
	ProductName string          `json:"productName,omitempty"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
	Discount    decimal.Decimal `json:"discount"`
}

// TransactionResponse is the public view of a sale.
type TransactionResponse struct {
	TransactionID string                    `json:"id"`
	Code          string                    `json:"code"`
	CashierID     string                    `json:"cashierID"`
	CashierName   string                    `json:"cashierName,omitempty"`
	Subtotal      decimal.Decimal           `json:"subtotal"`
	Tax           decimal.Decimal           `json:"tax"`
	Discount      decimal.Decimal           `json:"discount"`
	TotalAmount   decimal.Decimal           `json:"totalAmount"`
	PaymentMethod string                    `json:"paymentMethod"`
	PaymentStatus string                    `json:"paymentStatus"`
	PaidAmount    decimal.Decimal           `json:"paidAmount"`
	ChangeAmount  decimal.Decimal           `json:"changeAmount"`
	QRCodeURL     string                    `json:"qrCodeURL,omitempty"`
	CreatedAt     time.Time                 `json:"createdAt"`
	Items         []TransactionItemResponse `json:"items,omitempty"`
}

// ListTransactionsParams paginates the sale listing.
type ListTransactionsParams struct {
	Page  int `form:"page,default=1" binding:"omitempty,gte=1"`
	Limit int `form:"limit,default=10" binding:"omitempty,gte=1,lte=100"`
}

// ListTransactionsResponse is a paginated, most-recent-first sale listing.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Meta         Meta                  `json:"meta"`
}

// ToTransactionResponse converts a domain Transaction to its public view.
func ToTransactionResponse(t *domain.Transaction) TransactionResponse {
	items := make([]TransactionItemResponse, len(t.Items))
	for i, item := range t.Items {
		items[i] = TransactionItemResponse{
			ItemID:      item.ItemID,
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			Price:       item.Price,
			Discount:    item.Discount,
		}
	}
	return TransactionResponse{
		TransactionID: t.TransactionID,
		Code:          t.Code,
		CashierID:     t.CashierID,
		CashierName:   t.CashierName,
		Subtotal:      t.Subtotal,
		Tax:           t.Tax,
		Discount:      t.Discount,
		TotalAmount:   t.TotalAmount,
		PaymentMethod: string(t.PaymentMethod),
		PaymentStatus: string(t.PaymentStatus),
		PaidAmount:    t.PaidAmount,
		ChangeAmount:  t.ChangeAmount,
		QRCodeURL:     t.QRCodeURL,
		CreatedAt:     t.CreatedAt,
		Items:         items,
	}
}

// ToTransactionResponses converts a slice of domain Transactions.
func ToTransactionResponses(transactions []domain.Transaction) []TransactionResponse {
	resp := make([]TransactionResponse, len(transactions))
	for i := range transactions {
		resp[i] = ToTransactionResponse(&transactions[i])
	}
	return resp
}
