package services

import (
	"context"

	"github.com/dimasprayoga/pos-backend/internal/core/domain"
	"github.com/dimasprayoga/pos-backend/internal/dto"
	"github.com/jackc/pgx/v5"
)

// StockLedger is the atomic adjust-and-record primitive. It runs inside
// the caller's database transaction so the stock check, the stock
// update, and the movement row commit or roll back as one unit with
// whatever else the caller is writing.
type StockLedger interface {
	// AdjustStockInTx applies one IN/OUT movement to a product and
	// appends the audit row, returning the new stock level. For OUT it
	// fails with ErrInsufficientStock when quantity exceeds the stock
	// observed under the row lock.
	AdjustStockInTx(ctx context.Context, tx pgx.Tx, productID string, movementType domain.MovementType, quantity int, reason string) (int, error)
}

// StockSvcFacade combines the in-transaction ledger primitive with the
// standalone adjustment and history operations exposed over HTTP.
type StockSvcFacade interface {
	StockLedger

	// AdjustStock opens its own transaction around AdjustStockInTx, for
	// manual stock-in/stock-out corrections.
	AdjustStock(ctx context.Context, req dto.AdjustStockRequest) (*dto.AdjustStockResponse, error)

	// ListMovements pages through the movement history, newest first.
	ListMovements(ctx context.Context, params dto.ListMovementsParams) (*dto.ListStockMovementsResponse, error)
}
