package pgsql

import (
	portsrepo "github.com/dimasprayoga/pos-backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires all pgx-backed repositories over one pool.
func NewRepositoryProvider(pool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		UserRepo:        newPgxUserRepository(pool),
		CategoryRepo:    newPgxCategoryRepository(pool),
		ProductRepo:     newPgxProductRepository(pool),
		StockRepo:       newPgxStockRepository(pool),
		TransactionRepo: newPgxTransactionRepository(pool),
		ReportingRepo:   newPgxReportingRepository(pool),
	}
}
