package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dimasprayoga/pos-backend/internal/apperrors"
	"github.com/dimasprayoga/pos-backend/internal/core/domain"
	portsrepo "github.com/dimasprayoga/pos-backend/internal/core/ports/repositories"
	portssvc "github.com/dimasprayoga/pos-backend/internal/core/ports/services"
	"github.com/dimasprayoga/pos-backend/internal/dto"
	"github.com/dimasprayoga/pos-backend/internal/middleware"
	"github.com/shopspring/decimal"
)

// paymentService dispatches settlement to the strategy registered for a
// payment method.
type paymentService struct {
	registry        strategyRegistry
	transactionRepo portsrepo.TransactionRepositoryWithTx
}

// NewPaymentService creates a payment service over the given strategies.
func NewPaymentService(transactionRepo portsrepo.TransactionRepositoryWithTx, strategies ...PaymentStrategy) portssvc.PaymentSvcFacade {
	return &paymentService{
		registry:        newStrategyRegistry(strategies...),
		transactionRepo: transactionRepo,
	}
}

// Ensure paymentService implements the portssvc.PaymentSvcFacade interface
var _ portssvc.PaymentSvcFacade = (*paymentService)(nil)

// ProcessPayment settles an existing transaction with the named method.
func (s *paymentService) ProcessPayment(ctx context.Context, transactionID string, req dto.ProcessPaymentRequest) (*dto.PaymentResultResponse, error) {
	transaction, err := s.transactionRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	if transaction.PaymentStatus == domain.PaymentFailed {
		return nil, apperrors.ErrTransactionFailed
	}
	if transaction.PaymentStatus.IsTerminal() {
		return nil, apperrors.ErrAlreadyPaid
	}

	strategy, ok := s.registry.lookup(domain.PaymentMethod(req.Method))
	if !ok {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrUnsupportedPaymentMethod, req.Method)
	}

	if err := strategy.Validate(transaction.TotalAmount, req.PaidAmount); err != nil {
		return nil, err
	}

	outcome, err := strategy.Settle(ctx, transaction, req.PaidAmount)
	if err != nil {
		return nil, err
	}

	middleware.GetLoggerFromCtx(ctx).Info("Payment processed",
		slog.String("transaction_id", transactionID),
		slog.String("method", req.Method),
		slog.String("status", string(outcome.Status)),
	)

	resp := dto.ToPaymentResultResponse(outcome)
	return &resp, nil
}

// ConfirmPayment finalizes a deferred-settlement transaction. It is
// idempotent: a transaction already PAID is a silent no-op, so replayed
// provider callbacks cannot double-settle.
func (s *paymentService) ConfirmPayment(ctx context.Context, transactionID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	transaction, err := s.transactionRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return err
	}

	if transaction.PaymentStatus == domain.PaymentPaid {
		logger.Info("Payment confirmation replayed, ignoring", slog.String("transaction_id", transactionID))
		return nil
	}
	if transaction.PaymentStatus == domain.PaymentFailed {
		return apperrors.ErrTransactionFailed
	}

	// The provider collected the exact total; there is no overpayment on
	// the deferred path.
	transitioned, err := s.transactionRepo.MarkPaidIfPending(ctx, transactionID, transaction.TotalAmount, decimal.Zero)
	if err != nil {
		return err
	}
	if !transitioned {
		// Lost a race with another confirmation. Re-read to tell a
		// concurrent PAID (fine) from FAILED (not fine).
		current, err := s.transactionRepo.FindTransactionByID(ctx, transactionID)
		if err != nil {
			return err
		}
		if current.PaymentStatus != domain.PaymentPaid {
			return apperrors.ErrTransactionFailed
		}
		return nil
	}

	logger.Info("Payment confirmed", slog.String("transaction_id", transactionID))
	return nil
}

// CheckStatus returns the current payment status of a transaction.
func (s *paymentService) CheckStatus(ctx context.Context, transactionID string) (*dto.PaymentStatusResponse, error) {
	transaction, err := s.transactionRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	return &dto.PaymentStatusResponse{
		TransactionID: transaction.TransactionID,
		Status:        string(transaction.PaymentStatus),
	}, nil
}
