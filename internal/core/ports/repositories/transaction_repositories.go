package repositories

import (
	"context"

	"github.com/dimasprayoga/pos-backend/internal/core/domain"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// TransactionWriter defines write operations for sale records. Writes
// happen exclusively through the checkout orchestrator and the payment
// strategies; there is no ad-hoc mutation surface.
type TransactionWriter interface {
	// CreateTransactionInTx inserts the transaction header and all its
	// items inside the given database transaction. Items are inserted in
	// cart order with their snapshotted prices.
	CreateTransactionInTx(ctx context.Context, tx pgx.Tx, transaction domain.Transaction, items []domain.TransactionItem) error

	// MarkPaidIfPending transitions payment_status PENDING -> PAID and
	// records the paid and change amounts. It reports whether the
	// transition happened; false with a nil error means the transaction
	// exists but was already terminal. Returns ErrNotFound for unknown ids.
	MarkPaidIfPending(ctx context.Context, transactionID string, paidAmount, changeAmount decimal.Decimal) (bool, error)

	// UpdateQRCodeURL records the generated display artifact for a
	// deferred-settlement transaction.
	UpdateQRCodeURL(ctx context.Context, transactionID string, qrCodeURL string) error
}

// TransactionReader defines the read/query surface of the sale store.
type TransactionReader interface {
	// FindTransactionByID retrieves a transaction with its line items and
	// the cashier's display name.
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// ListTransactions retrieves a most-recent-first page of transactions
	// (without items) plus the total row count.
	ListTransactions(ctx context.Context, limit, offset int) ([]domain.Transaction, int64, error)
}

// TransactionRepositoryFacade combines all transaction repository interfaces.
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}

// TransactionRepositoryWithTx extends TransactionRepositoryFacade with
// transaction capabilities.
type TransactionRepositoryWithTx interface {
	TransactionRepositoryFacade
	TransactionManager
}
