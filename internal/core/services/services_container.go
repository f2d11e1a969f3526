package services

import (
	portsrepo "github.com/dimasprayoga/pos-backend/internal/core/ports/repositories"
	portssvc "github.com/dimasprayoga/pos-backend/internal/core/ports/services"
	"github.com/dimasprayoga/pos-backend/internal/platform/config"
)

// NewServiceContainer wires all services over the repository provider.
// The payment strategy set is assembled here, once; both checkout and
// the payment service see the same immutable registry.
func NewServiceContainer(repos portsrepo.RepositoryProvider, cfg *config.Config) *portssvc.ServiceContainer {
	stockSvc := NewStockService(repos.ProductRepo, repos.StockRepo)

	cash := NewCashStrategy(repos.TransactionRepo)
	qris := NewQRISStrategy(repos.TransactionRepo, cfg.QRCodeBaseURL, cfg.QRISExpiryDuration)

	return &portssvc.ServiceContainer{
		Auth:        NewAuthService(repos.UserRepo, cfg),
		Category:    NewCategoryService(repos.CategoryRepo),
		Product:     NewProductService(repos.ProductRepo, repos.CategoryRepo, stockSvc),
		Stock:       stockSvc,
		Checkout:    NewCheckoutService(repos.ProductRepo, repos.TransactionRepo, repos.UserRepo, stockSvc, cfg.TaxRate, cash, qris),
		Payment:     NewPaymentService(repos.TransactionRepo, cash, qris),
		Transaction: NewTransactionService(repos.TransactionRepo),
		Dashboard:   NewDashboardService(repos.ReportingRepo, cfg.LowStockThreshold, cfg.DashboardRecentLimit),
	}
}
