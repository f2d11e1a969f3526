package services_test

import (
	"context"
	"testing"

	"github.com/dimasprayoga/pos-backend/internal/apperrors"
	"github.com/dimasprayoga/pos-backend/internal/core/domain"
	"github.com/dimasprayoga/pos-backend/internal/core/services"
	"github.com/dimasprayoga/pos-backend/internal/dto"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactionService_GetTransactionByID(t *testing.T) {
	mockRepo := new(MockTransactionRepository)
	svc := services.NewTransactionService(mockRepo)
	ctx := context.Background()

	transaction := &domain.Transaction{
		TransactionID: uuid.NewString(),
		Code:          "TRX-20260829-AB12C",
		Items: []domain.TransactionItem{
			{ItemID: uuid.NewString(), ProductName: "Americano 250ml", Quantity: 2},
		},
	}
	mockRepo.On("FindTransactionByID", ctx, transaction.TransactionID).Return(transaction, nil).Once()

	got, err := svc.GetTransactionByID(ctx, transaction.TransactionID)

	require.NoError(t, err)
	assert.Equal(t, transaction.Code, got.Code)
	assert.Len(t, got.Items, 1)
}

func TestTransactionService_GetTransactionByID_NotFound(t *testing.T) {
	mockRepo := new(MockTransactionRepository)
	svc := services.NewTransactionService(mockRepo)
	ctx := context.Background()

	unknownID := uuid.NewString()
	mockRepo.On("FindTransactionByID", ctx, unknownID).Return(nil, apperrors.ErrNotFound).Once()

	_, err := svc.GetTransactionByID(ctx, unknownID)

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestTransactionService_ListTransactions_Meta(t *testing.T) {
	mockRepo := new(MockTransactionRepository)
	svc := services.NewTransactionService(mockRepo)
	ctx := context.Background()

	transactions := make([]domain.Transaction, 10)
	for i := range transactions {
		transactions[i] = domain.Transaction{TransactionID: uuid.NewString()}
	}
	mockRepo.On("ListTransactions", ctx, 10, 10).Return(transactions, int64(25), nil).Once()

	resp, err := svc.ListTransactions(ctx, dto.ListTransactionsParams{Page: 2, Limit: 10})

	require.NoError(t, err)
	assert.Len(t, resp.Transactions, 10)
	assert.Equal(t, int64(25), resp.Meta.Total)
	assert.Equal(t, 2, resp.Meta.Page)
	// 25 rows at 10 per page rounds up to 3 pages.
	assert.Equal(t, 3, resp.Meta.TotalPages)
}

func TestTransactionService_ListTransactions_Defaults(t *testing.T) {
	mockRepo := new(MockTransactionRepository)
	svc := services.NewTransactionService(mockRepo)
	ctx := context.Background()

	mockRepo.On("ListTransactions", ctx, 10, 0).Return([]domain.Transaction{}, int64(0), nil).Once()

	resp, err := svc.ListTransactions(ctx, dto.ListTransactionsParams{})

	require.NoError(t, err)
	assert.Empty(t, resp.Transactions)
	assert.Equal(t, 1, resp.Meta.Page)
	assert.Equal(t, 0, resp.Meta.TotalPages)
}

func TestMetaCeiling(t *testing.T) {
	assert.Equal(t, 1, dto.NewMeta(1, 1, 10).TotalPages)
	assert.Equal(t, 1, dto.NewMeta(10, 1, 10).TotalPages)
	assert.Equal(t, 2, dto.NewMeta(11, 1, 10).TotalPages)
}
