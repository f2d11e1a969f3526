package pgsql

import (
	"errors"
	"fmt"
	"strconv"

	"context"

	"github.com/dimasprayoga/pos-backend/internal/apperrors"
	"github.com/dimasprayoga/pos-backend/internal/core/domain"
	portsrepo "github.com/dimasprayoga/pos-backend/internal/core/ports/repositories"
	"github.com/dimasprayoga/pos-backend/internal/models"
	"github.com/dimasprayoga/pos-backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const productColumns = `product_id, category_id, sku, barcode, name, price, stock, deleted_at, created_at, updated_at`

type PgxProductRepository struct {
	BaseRepository
}

// newPgxProductRepository creates a new repository for catalog product data.
func newPgxProductRepository(pool *pgxpool.Pool) portsrepo.ProductRepositoryWithTx {
	return &PgxProductRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxProductRepository implements portsrepo.ProductRepositoryWithTx
var _ portsrepo.ProductRepositoryWithTx = (*PgxProductRepository)(nil)

func scanProduct(row pgx.Row) (*models.Product, error) {
	var m models.Product
	err := row.Scan(
		&m.ProductID,
		&m.CategoryID,
		&m.SKU,
		&m.Barcode,
		&m.Name,
		&m.Price,
		&m.Stock,
		&m.DeletedAt,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// FindProductByID retrieves a product by its ID, excluding soft-deleted rows.
func (r *PgxProductRepository) FindProductByID(ctx context.Context, productID string) (*domain.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products
		WHERE product_id = $1 AND deleted_at IS NULL;
	`
	m, err := scanProduct(r.Pool.QueryRow(ctx, query, productID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find product by ID "+productID, err)
	}

	product := mapping.ToDomainProduct(*m)
	return &product, nil
}

// FindProductBySKU retrieves a product by SKU, excluding soft-deleted rows.
func (r *PgxProductRepository) FindProductBySKU(ctx context.Context, sku string) (*domain.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products
		WHERE sku = $1 AND deleted_at IS NULL;
	`
	m, err := scanProduct(r.Pool.QueryRow(ctx, query, sku))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find product by SKU "+sku, err)
	}

	product := mapping.ToDomainProduct(*m)
	return &product, nil
}

// FindProductsByIDs bulk-resolves products in one read. Soft-deleted
// products are absent from the result, so callers treat them exactly
// like unknown ids.
func (r *PgxProductRepository) FindProductsByIDs(ctx context.Context, productIDs []string) (map[string]domain.Product, error) {
	if len(productIDs) == 0 {
		return map[string]domain.Product{}, nil
	}

	query := `
		SELECT ` + productColumns + `
		FROM products
		WHERE product_id = ANY($1) AND deleted_at IS NULL;
	`
	rows, err := r.Pool.Query(ctx, query, productIDs)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query products by IDs", err)
	}
	defer rows.Close()

	productsMap := make(map[string]domain.Product)
	for rows.Next() {
		m, err := scanProduct(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan product row", err)
		}
		productsMap[m.ProductID] = mapping.ToDomainProduct(*m)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating product rows", err)
	}

	return productsMap, nil
}

// ListProducts retrieves a filtered page of products plus the total count
// matching the filter.
func (r *PgxProductRepository) ListProducts(ctx context.Context, search, categoryID string, limit, offset int) ([]domain.Product, int64, error) {
	filterClause := `WHERE deleted_at IS NULL`
	args := []interface{}{}

	if search != "" {
		args = append(args, "%"+search+"%")
		n := strconv.Itoa(len(args))
		filterClause += ` AND (name ILIKE $` + n + ` OR sku ILIKE $` + n + ` OR barcode ILIKE $` + n + `)`
	}
	if categoryID != "" {
		args = append(args, categoryID)
		filterClause += ` AND category_id = $` + strconv.Itoa(len(args))
	}

	var total int64
	countQuery := `SELECT COUNT(*) FROM products ` + filterClause + `;`
	if err := r.Pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, apperrors.NewAppError(500, "failed to count products", err)
	}

	args = append(args, limit, offset)
	query := fmt.Sprintf(`
		SELECT `+productColumns+`
		FROM products
		%s
		ORDER BY name ASC
		LIMIT $%d OFFSET $%d;
	`, filterClause, len(args)-1, len(args))

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, apperrors.NewAppError(500, "failed to query products", err)
	}
	defer rows.Close()

	products := []models.Product{}
	for rows.Next() {
		m, err := scanProduct(rows)
		if err != nil {
			return nil, 0, apperrors.NewAppError(500, "failed to scan product row", err)
		}
		products = append(products, *m)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, apperrors.NewAppError(500, "error iterating product rows", err)
	}

	return mapping.ToDomainProductSlice(products), total, nil
}

// SaveProduct inserts a new product row.
func (r *PgxProductRepository) SaveProduct(ctx context.Context, product domain.Product) error {
	m := mapping.ToModelProduct(product)
	query := `
		INSERT INTO products (product_id, category_id, sku, barcode, name, price, stock, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.ProductID,
		m.CategoryID,
		m.SKU,
		m.Barcode,
		m.Name,
		m.Price,
		m.Stock,
		m.CreatedAt,
		m.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: sku %s", apperrors.ErrDuplicate, m.SKU)
		}
		return apperrors.NewAppError(500, "failed to insert product "+m.ProductID, err)
	}
	return nil
}

// UpdateProduct updates catalog fields of a product. Stock is not
// touched here; it only changes through the ledger.
func (r *PgxProductRepository) UpdateProduct(ctx context.Context, product domain.Product) error {
	m := mapping.ToModelProduct(product)
	query := `
		UPDATE products
		SET category_id = $2,
		    sku = $3,
		    barcode = $4,
		    name = $5,
		    price = $6,
		    updated_at = $7
		WHERE product_id = $1 AND deleted_at IS NULL;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		m.ProductID,
		m.CategoryID,
		m.SKU,
		m.Barcode,
		m.Name,
		m.Price,
		m.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: sku %s", apperrors.ErrDuplicate, m.SKU)
		}
		return apperrors.NewAppError(500, "failed to update product "+m.ProductID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("product " + m.ProductID + " not found for update")
	}
	return nil
}

// SoftDeleteProduct marks a product deleted. The row stays so historical
// transaction items keep resolving to a name.
func (r *PgxProductRepository) SoftDeleteProduct(ctx context.Context, productID string) error {
	query := `
		UPDATE products
		SET deleted_at = NOW(), updated_at = NOW()
		WHERE product_id = $1 AND deleted_at IS NULL;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, productID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to soft-delete product "+productID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("product " + productID + " not found for delete")
	}
	return nil
}

// FindProductByIDForUpdate retrieves a product and locks its row until
// the enclosing transaction completes. Must be called within a transaction.
func (r *PgxProductRepository) FindProductByIDForUpdate(ctx context.Context, tx pgx.Tx, productID string) (*domain.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products
		WHERE product_id = $1 AND deleted_at IS NULL
		FOR UPDATE;
	`
	m, err := scanProduct(tx.QueryRow(ctx, query, productID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to lock product "+productID, err)
	}

	product := mapping.ToDomainProduct(*m)
	return &product, nil
}

// UpdateStockInTx sets the product's stock inside the given transaction.
// Callers hold the row lock from FindProductByIDForUpdate, so the write
// cannot race another adjustment.
func (r *PgxProductRepository) UpdateStockInTx(ctx context.Context, tx pgx.Tx, productID string, newStock int) error {
	query := `
		UPDATE products
		SET stock = $2, updated_at = NOW()
		WHERE product_id = $1;
	`
	cmdTag, err := tx.Exec(ctx, query, productID, newStock)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update stock for product "+productID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("product " + productID + " not found for stock update")
	}
	return nil
}
