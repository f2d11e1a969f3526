package services

import (
	"context"

	"github.com/dimasprayoga/pos-backend/internal/core/domain"
	portsrepo "github.com/dimasprayoga/pos-backend/internal/core/ports/repositories"
	portssvc "github.com/dimasprayoga/pos-backend/internal/core/ports/services"
	"github.com/dimasprayoga/pos-backend/internal/dto"
)

// transactionService is the read surface over persisted sales.
type transactionService struct {
	transactionRepo portsrepo.TransactionReader
}

// NewTransactionService creates a new transaction query service.
func NewTransactionService(transactionRepo portsrepo.TransactionReader) portssvc.TransactionSvcFacade {
	return &transactionService{transactionRepo: transactionRepo}
}

// Ensure transactionService implements the portssvc.TransactionSvcFacade interface
var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

// GetTransactionByID retrieves one sale with its items.
func (s *transactionService) GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	return s.transactionRepo.FindTransactionByID(ctx, transactionID)
}

// ListTransactions retrieves a most-recent-first page of sales.
func (s *transactionService) ListTransactions(ctx context.Context, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error) {
	if params.Page <= 0 {
		params.Page = 1
	}
	if params.Limit <= 0 {
		params.Limit = 10
	}
	offset := (params.Page - 1) * params.Limit

	transactions, total, err := s.transactionRepo.ListTransactions(ctx, params.Limit, offset)
	if err != nil {
		return nil, err
	}

	return &dto.ListTransactionsResponse{
		Transactions: dto.ToTransactionResponses(transactions),
		Meta:         dto.NewMeta(total, params.Page, params.Limit),
	}, nil
}
