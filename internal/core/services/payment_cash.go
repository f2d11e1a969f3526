package services

import (
	"context"
	"fmt"
	"time"

	"github.com/dimasprayoga/pos-backend/internal/apperrors"
	"github.com/dimasprayoga/pos-backend/internal/core/domain"
	portsrepo "github.com/dimasprayoga/pos-backend/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
)

// cashStrategy settles immediately: the tendered amount must cover the
// total, change is computed, and the transaction goes straight to PAID.
type cashStrategy struct {
	transactionRepo portsrepo.TransactionWriter
}

// NewCashStrategy creates the CASH payment strategy.
func NewCashStrategy(transactionRepo portsrepo.TransactionWriter) PaymentStrategy {
	return &cashStrategy{transactionRepo: transactionRepo}
}

var _ PaymentStrategy = (*cashStrategy)(nil)

func (s *cashStrategy) Method() domain.PaymentMethod {
	return domain.MethodCash
}

// Validate requires a tendered amount of at least the total.
func (s *cashStrategy) Validate(totalAmount decimal.Decimal, paidAmount *decimal.Decimal) error {
	if paidAmount == nil {
		return fmt.Errorf("%w: cash payment requires a payment amount", apperrors.ErrValidation)
	}
	if paidAmount.LessThan(totalAmount) {
		return fmt.Errorf("%w: paid %s of %s", apperrors.ErrInsufficientPayment, paidAmount.String(), totalAmount.String())
	}
	return nil
}

// Settle transitions the transaction to PAID and produces the receipt.
func (s *cashStrategy) Settle(ctx context.Context, transaction *domain.Transaction, paidAmount *decimal.Decimal) (*domain.PaymentOutcome, error) {
	if err := s.Validate(transaction.TotalAmount, paidAmount); err != nil {
		return nil, err
	}

	change := paidAmount.Sub(transaction.TotalAmount)
	transitioned, err := s.transactionRepo.MarkPaidIfPending(ctx, transaction.TransactionID, *paidAmount, change)
	if err != nil {
		return nil, err
	}
	if !transitioned {
		return nil, apperrors.ErrAlreadyPaid
	}

	return &domain.PaymentOutcome{
		Status:       domain.PaymentPaid,
		ChangeAmount: change,
		Receipt:      buildReceipt(transaction, *paidAmount, change),
	}, nil
}

// buildReceipt renders the printable view of a settled sale.
func buildReceipt(transaction *domain.Transaction, paidAmount, change decimal.Decimal) *domain.Receipt {
	lines := make([]domain.ReceiptLine, len(transaction.Items))
	for i, item := range transaction.Items {
		qty := decimal.NewFromInt(int64(item.Quantity))
		lines[i] = domain.ReceiptLine{
			Name:     item.ProductName,
			Quantity: item.Quantity,
			Price:    item.Price,
			Total:    item.Price.Mul(qty).Sub(item.Discount),
		}
	}

	date := transaction.CreatedAt
	if date.IsZero() {
		date = time.Now()
	}

	return &domain.Receipt{
		Code:          transaction.Code,
		Date:          date,
		Items:         lines,
		Subtotal:      transaction.Subtotal,
		Tax:           transaction.Tax,
		Total:         transaction.TotalAmount,
		PaidAmount:    paidAmount,
		Change:        change,
		Cashier:       transaction.CashierName,
		PaymentMethod: transaction.PaymentMethod,
	}
}
