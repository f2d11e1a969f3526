package repositories

import (
	"context"

	"github.com/dimasprayoga/pos-backend/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// StockMovementWriter appends movements to the audit log.
type StockMovementWriter interface {
	// InsertMovementInTx appends one movement row inside the given
	// transaction, so the movement commits or rolls back together with
	// the stock change it records.
	InsertMovementInTx(ctx context.Context, tx pgx.Tx, movement domain.StockMovement) error
}

// StockMovementReader reads the movement history.
type StockMovementReader interface {
	// ListMovements retrieves movements newest-first, optionally filtered
	// by product, using token-based keyset pagination.
	ListMovements(ctx context.Context, productID string, limit int, nextToken *string) ([]domain.StockMovement, *string, error)
}

// StockRepositoryFacade combines all stock-movement repository interfaces.
type StockRepositoryFacade interface {
	StockMovementWriter
	StockMovementReader
}
