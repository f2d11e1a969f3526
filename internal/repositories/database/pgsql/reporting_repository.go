package pgsql

import (
	"context"

	"github.com/dimasprayoga/pos-backend/internal/apperrors"
	"github.com/dimasprayoga/pos-backend/internal/core/domain"
	portsrepo "github.com/dimasprayoga/pos-backend/internal/core/ports/repositories"
	"github.com/dimasprayoga/pos-backend/internal/models"
	"github.com/dimasprayoga/pos-backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxReportingRepository struct {
	BaseRepository
}

// newPgxReportingRepository creates a new repository for dashboard aggregates.
func newPgxReportingRepository(pool *pgxpool.Pool) portsrepo.ReportingRepositoryFacade {
	return &PgxReportingRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxReportingRepository implements portsrepo.ReportingRepositoryFacade
var _ portsrepo.ReportingRepositoryFacade = (*PgxReportingRepository)(nil)

// GetDashboardStats computes revenue and catalog-health aggregates.
// Revenue counts settled transactions only; PENDING and FAILED sales
// never contribute.
func (r *PgxReportingRepository) GetDashboardStats(ctx context.Context, lowStockThreshold int, recentLimit int) (*domain.DashboardStats, error) {
	stats := &domain.DashboardStats{}

	salesQuery := `
		SELECT COALESCE(SUM(total_amount), 0), COUNT(*)
		FROM transactions
		WHERE payment_status = $1;
	`
	if err := r.Pool.QueryRow(ctx, salesQuery, models.PaymentPaid).Scan(&stats.TotalRevenue, &stats.TransactionCount); err != nil {
		return nil, apperrors.NewAppError(500, "failed to aggregate sales", err)
	}

	catalogQuery := `
		SELECT
			COUNT(*) FILTER (WHERE stock <= $1),
			COUNT(*)
		FROM products
		WHERE deleted_at IS NULL;
	`
	if err := r.Pool.QueryRow(ctx, catalogQuery, lowStockThreshold).Scan(&stats.LowStockCount, &stats.ActiveProductCount); err != nil {
		return nil, apperrors.NewAppError(500, "failed to aggregate catalog health", err)
	}

	recentQuery := `
		SELECT ` + transactionColumns + `
		FROM transactions t
		JOIN users u ON u.user_id = t.cashier_id
		ORDER BY t.created_at DESC, t.transaction_id DESC
		LIMIT $1;
	`
	rows, err := r.Pool.Query(ctx, recentQuery, recentLimit)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query recent transactions", err)
	}
	defer rows.Close()

	recent := []domain.Transaction{}
	for rows.Next() {
		m, err := scanTransaction(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan recent transaction row", err)
		}
		recent = append(recent, mapping.ToDomainTransaction(*m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating recent transaction rows", err)
	}
	stats.RecentTransactions = recent

	return stats, nil
}
