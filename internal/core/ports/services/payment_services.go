package services

import (
	"context"

	"github.com/dimasprayoga/pos-backend/internal/dto"
)

// PaymentSvcFacade dispatches settlement to the strategy registered for
// a payment method and handles the deferred confirmation path.
type PaymentSvcFacade interface {
	// ProcessPayment settles an existing transaction with the named
	// method. Unregistered methods fail with ErrUnsupportedPaymentMethod.
	ProcessPayment(ctx context.Context, transactionID string, req dto.ProcessPaymentRequest) (*dto.PaymentResultResponse, error)

	// ConfirmPayment finalizes a deferred-settlement transaction
	// (PENDING -> PAID). Idempotent: confirming an already-PAID
	// transaction is a silent no-op.
	ConfirmPayment(ctx context.Context, transactionID string) error

	// CheckStatus returns the current payment status regardless of which
	// strategy produced the transaction.
	CheckStatus(ctx context.Context, transactionID string) (*dto.PaymentStatusResponse, error)
}
