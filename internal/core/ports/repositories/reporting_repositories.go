package repositories

import (
	"context"

	"github.com/dimasprayoga/pos-backend/internal/core/domain"
)

// ReportingRepositoryFacade defines read-only aggregate queries over
// completed transactions and catalog state.
type ReportingRepositoryFacade interface {
	// GetDashboardStats computes revenue, transaction, and stock-health
	// aggregates plus the most recent transactions.
	GetDashboardStats(ctx context.Context, lowStockThreshold int, recentLimit int) (*domain.DashboardStats, error)
}
