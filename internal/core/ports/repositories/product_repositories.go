package repositories

import (
	"context"

	"github.com/dimasprayoga/pos-backend/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// ProductReader defines read operations for catalog data.
// All reads exclude soft-deleted products.
type ProductReader interface {
	// FindProductByID retrieves a single product by its unique identifier.
	FindProductByID(ctx context.Context, productID string) (*domain.Product, error)

	// FindProductBySKU retrieves a product by SKU, used for uniqueness checks.
	FindProductBySKU(ctx context.Context, sku string) (*domain.Product, error)

	// FindProductsByIDs bulk-resolves products in one read. Missing or
	// soft-deleted ids are simply absent from the returned map.
	FindProductsByIDs(ctx context.Context, productIDs []string) (map[string]domain.Product, error)

	// ListProducts retrieves a filtered page of products plus the total
	// count matching the filter, for page-metadata computation.
	ListProducts(ctx context.Context, search, categoryID string, limit, offset int) ([]domain.Product, int64, error)
}

// ProductWriter defines catalog write operations.
type ProductWriter interface {
	SaveProduct(ctx context.Context, product domain.Product) error
	UpdateProduct(ctx context.Context, product domain.Product) error

	// SoftDeleteProduct marks a product deleted without removing the row;
	// historical transaction items keep referencing it.
	SoftDeleteProduct(ctx context.Context, productID string) error
}

// ProductLocker defines the row-locking operations the stock ledger
// uses inside an enclosing database transaction.
type ProductLocker interface {
	// FindProductByIDForUpdate retrieves a product and locks its row
	// until the enclosing transaction completes. Must be called within tx.
	FindProductByIDForUpdate(ctx context.Context, tx pgx.Tx, productID string) (*domain.Product, error)

	// UpdateStockInTx sets the product's stock inside the given transaction.
	UpdateStockInTx(ctx context.Context, tx pgx.Tx, productID string, newStock int) error
}

// ProductRepositoryFacade combines all product-related repository interfaces.
type ProductRepositoryFacade interface {
	ProductReader
	ProductWriter
	ProductLocker
}

// ProductRepositoryWithTx extends ProductRepositoryFacade with transaction capabilities
type ProductRepositoryWithTx interface {
	ProductRepositoryFacade
	TransactionManager
}
