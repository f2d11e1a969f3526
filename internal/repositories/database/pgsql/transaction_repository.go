package pgsql

import (
	"context"
	"errors"

	"github.com/dimasprayoga/pos-backend/internal/apperrors"
	"github.com/dimasprayoga/pos-backend/internal/core/domain"
	portsrepo "github.com/dimasprayoga/pos-backend/internal/core/ports/repositories"
	"github.com/dimasprayoga/pos-backend/internal/models"
	"github.com/dimasprayoga/pos-backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

const transactionColumns = `t.transaction_id, t.code, t.cashier_id, u.name, t.subtotal, t.tax, t.discount, t.total_amount, t.payment_method, t.payment_status, t.paid_amount, t.change_amount, t.qr_code_url, t.created_at`

type PgxTransactionRepository struct {
	BaseRepository
}

// newPgxTransactionRepository creates a new repository for sale records.
func newPgxTransactionRepository(pool *pgxpool.Pool) portsrepo.TransactionRepositoryWithTx {
	return &PgxTransactionRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxTransactionRepository implements portsrepo.TransactionRepositoryWithTx
var _ portsrepo.TransactionRepositoryWithTx = (*PgxTransactionRepository)(nil)

func scanTransaction(row pgx.Row) (*models.Transaction, error) {
	var m models.Transaction
	err := row.Scan(
		&m.TransactionID,
		&m.Code,
		&m.CashierID,
		&m.CashierName,
		&m.Subtotal,
		&m.Tax,
		&m.Discount,
		&m.TotalAmount,
		&m.PaymentMethod,
		&m.PaymentStatus,
		&m.PaidAmount,
		&m.ChangeAmount,
		&m.QRCodeURL,
		&m.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// CreateTransactionInTx inserts the transaction header and all of its
// items inside the given database transaction. The header insert carries
// the transaction code's unique constraint; collisions surface as
// ErrDuplicate so the caller can regenerate and retry.
func (r *PgxTransactionRepository) CreateTransactionInTx(ctx context.Context, tx pgx.Tx, transaction domain.Transaction, items []domain.TransactionItem) error {
	m := mapping.ToModelTransaction(transaction)

	headerQuery := `
		INSERT INTO transactions (transaction_id, code, cashier_id, subtotal, tax, discount, total_amount, payment_method, payment_status, paid_amount, change_amount, qr_code_url, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err := tx.Exec(ctx, headerQuery,
		m.TransactionID,
		m.Code,
		m.CashierID,
		m.Subtotal,
		m.Tax,
		m.Discount,
		m.TotalAmount,
		m.PaymentMethod,
		m.PaymentStatus,
		m.PaidAmount,
		m.ChangeAmount,
		m.QRCodeURL,
		m.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicate
		}
		return apperrors.NewAppError(500, "failed to insert transaction "+m.TransactionID, err)
	}

	if len(items) == 0 {
		return nil
	}

	itemQuery := `
		INSERT INTO transaction_items (item_id, transaction_id, product_id, quantity, price, discount)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	batch := &pgx.Batch{}
	for _, item := range items {
		im := mapping.ToModelTransactionItem(item)
		batch.Queue(itemQuery,
			im.ItemID,
			im.TransactionID,
			im.ProductID,
			im.Quantity,
			im.Price,
			im.Discount,
		)
	}

	br := tx.SendBatch(ctx, batch)
	defer br.Close()
	for range items {
		if _, err := br.Exec(); err != nil {
			return apperrors.NewAppError(500, "failed to insert transaction item for "+m.TransactionID, err)
		}
	}

	return nil
}

// MarkPaidIfPending transitions payment_status PENDING -> PAID with a
// single conditional update. The WHERE clause is what makes confirmation
// idempotent under concurrent callbacks: only one update can match.
func (r *PgxTransactionRepository) MarkPaidIfPending(ctx context.Context, transactionID string, paidAmount, changeAmount decimal.Decimal) (bool, error) {
	query := `
		UPDATE transactions
		SET payment_status = $2, paid_amount = $3, change_amount = $4
		WHERE transaction_id = $1 AND payment_status = $5;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, transactionID, models.PaymentPaid, paidAmount, changeAmount, models.PaymentPending)
	if err != nil {
		return false, apperrors.NewAppError(500, "failed to mark transaction "+transactionID+" paid", err)
	}
	if cmdTag.RowsAffected() > 0 {
		return true, nil
	}

	// No row transitioned. Distinguish an unknown id from one already
	// terminal.
	var status models.PaymentStatus
	err = r.Pool.QueryRow(ctx, `SELECT payment_status FROM transactions WHERE transaction_id = $1;`, transactionID).Scan(&status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, apperrors.ErrNotFound
		}
		return false, apperrors.NewAppError(500, "failed to check status of transaction "+transactionID, err)
	}
	return false, nil
}

// UpdateQRCodeURL records the generated QR display artifact.
func (r *PgxTransactionRepository) UpdateQRCodeURL(ctx context.Context, transactionID string, qrCodeURL string) error {
	query := `
		UPDATE transactions
		SET qr_code_url = $2
		WHERE transaction_id = $1;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, transactionID, qrCodeURL)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update QR code URL for transaction "+transactionID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("transaction " + transactionID + " not found for QR code update")
	}
	return nil
}

// FindTransactionByID retrieves a transaction with its line items and the
// cashier's display name.
func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions t
		JOIN users u ON u.user_id = t.cashier_id
		WHERE t.transaction_id = $1;
	`
	m, err := scanTransaction(r.Pool.QueryRow(ctx, query, transactionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find transaction "+transactionID, err)
	}

	itemsQuery := `
		SELECT i.item_id, i.transaction_id, i.product_id, p.name, i.quantity, i.price, i.discount
		FROM transaction_items i
		JOIN products p ON p.product_id = i.product_id
		WHERE i.transaction_id = $1
		ORDER BY i.item_id ASC;
	`
	rows, err := r.Pool.Query(ctx, itemsQuery, transactionID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query items for transaction "+transactionID, err)
	}
	defer rows.Close()

	items := []models.TransactionItem{}
	for rows.Next() {
		var im models.TransactionItem
		err := rows.Scan(
			&im.ItemID,
			&im.TransactionID,
			&im.ProductID,
			&im.ProductName,
			&im.Quantity,
			&im.Price,
			&im.Discount,
		)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan transaction item row", err)
		}
		items = append(items, im)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating transaction item rows", err)
	}

	transaction := mapping.ToDomainTransaction(*m)
	transaction.Items = mapping.ToDomainTransactionItemSlice(items)
	return &transaction, nil
}

// ListTransactions retrieves a most-recent-first page of transactions
// without items, plus the total row count for pagination metadata.
func (r *PgxTransactionRepository) ListTransactions(ctx context.Context, limit, offset int) ([]domain.Transaction, int64, error) {
	var total int64
	if err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM transactions;`).Scan(&total); err != nil {
		return nil, 0, apperrors.NewAppError(500, "failed to count transactions", err)
	}

	query := `
		SELECT ` + transactionColumns + `
		FROM transactions t
		JOIN users u ON u.user_id = t.cashier_id
		ORDER BY t.created_at DESC, t.transaction_id DESC
		LIMIT $1 OFFSET $2;
	`
	rows, err := r.Pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, apperrors.NewAppError(500, "failed to query transactions", err)
	}
	defer rows.Close()

	transactions := []domain.Transaction{}
	for rows.Next() {
		m, err := scanTransaction(rows)
		if err != nil {
			return nil, 0, apperrors.NewAppError(500, "failed to scan transaction row", err)
		}
		transactions = append(transactions, mapping.ToDomainTransaction(*m))
	}
	if err := rows.Err(); err != nil {
		return nil, 0, apperrors.NewAppError(500, "error iterating transaction rows", err)
	}

	return transactions, total, nil
}
