package pgsql

import (
	"context"
	"strconv"

	"github.com/dimasprayoga/pos-backend/internal/apperrors"
	"github.com/dimasprayoga/pos-backend/internal/core/domain"
	portsrepo "github.com/dimasprayoga/pos-backend/internal/core/ports/repositories"
	"github.com/dimasprayoga/pos-backend/internal/models"
	"github.com/dimasprayoga/pos-backend/internal/utils/mapping"
	"github.com/dimasprayoga/pos-backend/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxStockRepository struct {
	BaseRepository
}

// newPgxStockRepository creates a new repository for the stock movement log.
func newPgxStockRepository(pool *pgxpool.Pool) portsrepo.StockRepositoryFacade {
	return &PgxStockRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxStockRepository implements portsrepo.StockRepositoryFacade
var _ portsrepo.StockRepositoryFacade = (*PgxStockRepository)(nil)

// InsertMovementInTx appends one movement row inside the given
// transaction. The log is append-only; there is no update or delete path.
func (r *PgxStockRepository) InsertMovementInTx(ctx context.Context, tx pgx.Tx, movement domain.StockMovement) error {
	m := mapping.ToModelStockMovement(movement)
	query := `
		INSERT INTO stock_movements (movement_id, product_id, type, quantity, reason, created_at)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	_, err := tx.Exec(ctx, query,
		m.MovementID,
		m.ProductID,
		m.Type,
		m.Quantity,
		m.Reason,
		m.CreatedAt,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert stock movement for product "+m.ProductID, err)
	}
	return nil
}

// ListMovements retrieves movements newest-first with token-based keyset
// pagination. It fetches one extra row to decide whether a next page exists.
func (r *PgxStockRepository) ListMovements(ctx context.Context, productID string, limit int, nextToken *string) ([]domain.StockMovement, *string, error) {
	filterClause := `WHERE 1=1`
	args := []interface{}{}

	if productID != "" {
		args = append(args, productID)
		filterClause += ` AND m.product_id = $` + strconv.Itoa(len(args))
	}

	if nextToken != nil && *nextToken != "" {
		cursor, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid pagination token", err)
		}
		args = append(args, cursor)
		filterClause += ` AND m.created_at < $` + strconv.Itoa(len(args))
	}

	args = append(args, limit+1)
	query := `
		SELECT m.movement_id, m.product_id, p.name, m.type, m.quantity, m.reason, m.created_at
		FROM stock_movements m
		JOIN products p ON p.product_id = m.product_id
		` + filterClause + `
		ORDER BY m.created_at DESC
		LIMIT $` + strconv.Itoa(len(args)) + `;
	`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to query stock movements", err)
	}
	defer rows.Close()

	movements := []models.StockMovement{}
	for rows.Next() {
		var m models.StockMovement
		err := rows.Scan(
			&m.MovementID,
			&m.ProductID,
			&m.ProductName,
			&m.Type,
			&m.Quantity,
			&m.Reason,
			&m.CreatedAt,
		)
		if err != nil {
			return nil, nil, apperrors.NewAppError(500, "failed to scan stock movement row", err)
		}
		movements = append(movements, m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, apperrors.NewAppError(500, "error iterating stock movement rows", err)
	}

	var newNextToken *string
	if len(movements) > limit {
		movements = movements[:limit]
		token := pagination.EncodeToken(movements[len(movements)-1].CreatedAt)
		newNextToken = &token
	}

	return mapping.ToDomainStockMovementSlice(movements), newNextToken, nil
}
