package domain

import "github.com/shopspring/decimal"

// DashboardStats aggregates completed sales and catalog health for the
// dashboard. Read-only consumer of the transaction store.
type DashboardStats struct {
	TotalRevenue       decimal.Decimal `json:"totalRevenue"`
	TransactionCount   int64           `json:"transactionCount"`
	LowStockCount      int64           `json:"lowStockCount"`
	ActiveProductCount int64           `json:"activeProductCount"`
	RecentTransactions []Transaction   `json:"recentTransactions"`
}
