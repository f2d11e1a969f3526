package dto

import (
	"github.com/dimasprayoga/pos-backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DashboardResponse aggregates sales and catalog health for the dashboard.
type DashboardResponse struct {
	TotalRevenue       decimal.Decimal       `json:"totalRevenue"`
	TransactionCount   int64                 `json:"transactionCount"`
	LowStockCount      int64                 `json:"lowStockCount"`
	ActiveProductCount int64                 `json:"activeProductCount"`
	RecentTransactions []TransactionResponse `json:"recentTransactions"`
}

// ToDashboardResponse converts domain DashboardStats to the public view.
func ToDashboardResponse(s *domain.DashboardStats) DashboardResponse {
	return DashboardResponse{
		TotalRevenue:       s.TotalRevenue,
		TransactionCount:   s.TransactionCount,
		LowStockCount:      s.LowStockCount,
		ActiveProductCount: s.ActiveProductCount,
		RecentTransactions: ToTransactionResponses(s.RecentTransactions),
	}
}
