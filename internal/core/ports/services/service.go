package services

// ServiceContainer holds all service facades, wired once at startup.
type ServiceContainer struct {
	Auth        AuthSvcFacade
	Category    CategorySvcFacade
	Product     ProductSvcFacade
	Stock       StockSvcFacade
	Checkout    CheckoutSvcFacade
	Payment     PaymentSvcFacade
	Transaction TransactionSvcFacade
	Dashboard   DashboardSvcFacade
}
