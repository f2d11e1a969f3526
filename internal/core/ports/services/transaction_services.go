package services

import (
	"context"

	"github.com/dimasprayoga/pos-backend/internal/core/domain"
	"github.com/dimasprayoga/pos-backend/internal/dto"
)

// TransactionSvcFacade is the read/query surface over persisted sales.
type TransactionSvcFacade interface {
	GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)
	ListTransactions(ctx context.Context, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error)
}

// DashboardSvcFacade aggregates completed sales for reporting.
type DashboardSvcFacade interface {
	GetStats(ctx context.Context) (*dto.DashboardResponse, error)
}
