package mapping

import (
	"github.com/dimasprayoga/pos-backend/internal/core/domain"
	"github.com/dimasprayoga/pos-backend/internal/models"
)

// ToModelTransaction converts a domain Transaction to a model Transaction
func ToModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		TransactionID: d.TransactionID,
		Code:          d.Code,
		CashierID:     d.CashierID,
		CashierName:   d.CashierName,
		Subtotal:      d.Subtotal,
		Tax:           d.Tax,
		Discount:      d.Discount,
		TotalAmount:   d.TotalAmount,
		PaymentMethod: models.PaymentMethod(d.PaymentMethod),
		PaymentStatus: models.PaymentStatus(d.PaymentStatus),
		PaidAmount:    d.PaidAmount,
		ChangeAmount:  d.ChangeAmount,
		QRCodeURL:     d.QRCodeURL,
		CreatedAt:     d.CreatedAt,
	}
}

// ToDomainTransaction converts a model Transaction to a domain Transaction
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		TransactionID: m.TransactionID,
		Code:          m.Code,
		CashierID:     m.CashierID,
		CashierName:   m.CashierName,
		Subtotal:      m.Subtotal,
		Tax:           m.Tax,
		Discount:      m.Discount,
		TotalAmount:   m.TotalAmount,
		PaymentMethod: domain.PaymentMethod(m.PaymentMethod),
		PaymentStatus: domain.PaymentStatus(m.PaymentStatus),
		PaidAmount:    m.PaidAmount,
		ChangeAmount:  m.ChangeAmount,
		QRCodeURL:     m.QRCodeURL,
		CreatedAt:     m.CreatedAt,
	}
}

// ToModelTransactionItem converts a domain TransactionItem to a model TransactionItem
func ToModelTransactionItem(d domain.TransactionItem) models.TransactionItem {
	return models.TransactionItem{
		ItemID:        d.ItemID,
		TransactionID: d.TransactionID,
		ProductID:     d.ProductID,
		ProductName:   d.ProductName,
		Quantity:      d.Quantity,
		Price:         d.Price,
		Discount:      d.Discount,
	}
}

// ToDomainTransactionItem converts a model TransactionItem to a domain TransactionItem
func ToDomainTransactionItem(m models.TransactionItem) domain.TransactionItem {
	return domain.TransactionItem{
		ItemID:        m.ItemID,
		TransactionID: m.TransactionID,
		ProductID:     m.ProductID,
		ProductName:   m.ProductName,
		Quantity:      m.Quantity,
		Price:         m.Price,
		Discount:      m.Discount,
	}
}

// ToDomainTransactionItemSlice converts model TransactionItems to domain TransactionItems
func ToDomainTransactionItemSlice(ms []models.TransactionItem) []domain.TransactionItem {
	ds := make([]domain.TransactionItem, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTransactionItem(m)
	}
	return ds
}
