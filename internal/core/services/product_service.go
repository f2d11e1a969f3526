package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/dimasprayoga/pos-backend/internal/apperrors"
	"github.com/dimasprayoga/pos-backend/internal/core/domain"
	portsrepo "github.com/dimasprayoga/pos-backend/internal/core/ports/repositories"
	portssvc "github.com/dimasprayoga/pos-backend/internal/core/ports/services"
	"github.com/dimasprayoga/pos-backend/internal/dto"
	"github.com/dimasprayoga/pos-backend/internal/middleware"
)

// productService handles catalog product operations. The initial stock
// of a new product is recorded as an IN movement so the ledger accounts
// for every unit the catalog has ever held.
type productService struct {
	productRepo  portsrepo.ProductRepositoryWithTx
	categoryRepo portsrepo.CategoryRepositoryFacade
	stockLedger  portssvc.StockLedger
}

// NewProductService creates a new catalog product service.
func NewProductService(productRepo portsrepo.ProductRepositoryWithTx, categoryRepo portsrepo.CategoryRepositoryFacade, stockLedger portssvc.StockLedger) portssvc.ProductSvcFacade {
	return &productService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		stockLedger:  stockLedger,
	}
}

// Ensure productService implements the portssvc.ProductSvcFacade interface
var _ portssvc.ProductSvcFacade = (*productService)(nil)

// CreateProduct inserts a product and, when it arrives with opening
// stock, records that stock as an IN movement.
func (s *productService) CreateProduct(ctx context.Context, req dto.CreateProductRequest) (*domain.Product, error) {
	if req.Price.IsNegative() {
		return nil, fmt.Errorf("%w: price must not be negative", apperrors.ErrValidation)
	}
	if _, err := s.categoryRepo.FindCategoryByID(ctx, req.CategoryID); err != nil {
		return nil, err
	}

	now := time.Now()
	product := domain.Product{
		ProductID:  uuid.NewString(),
		CategoryID: req.CategoryID,
		SKU:        req.SKU,
		Barcode:    req.Barcode,
		Name:       req.Name,
		Price:      req.Price,
		Stock:      0,
		AuditFields: domain.AuditFields{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	if err := s.productRepo.SaveProduct(ctx, product); err != nil {
		return nil, err
	}

	if req.Stock > 0 {
		tx, err := s.productRepo.Begin(ctx)
		if err != nil {
			return nil, err
		}
		defer func() {
			_ = s.productRepo.Rollback(ctx, tx)
		}()

		newStock, err := s.stockLedger.AdjustStockInTx(ctx, tx, product.ProductID, domain.MovementIn, req.Stock, "Initial stock")
		if err != nil {
			return nil, err
		}
		if err := s.productRepo.Commit(ctx, tx); err != nil {
			return nil, err
		}
		product.Stock = newStock
	}

	middleware.GetLoggerFromCtx(ctx).Info("Product created",
		slog.String("product_id", product.ProductID),
		slog.String("sku", product.SKU),
	)
	return &product, nil
}

// GetProductByID retrieves one product.
func (s *productService) GetProductByID(ctx context.Context, productID string) (*domain.Product, error) {
	return s.productRepo.FindProductByID(ctx, productID)
}

// ListProducts retrieves a filtered, paginated product listing.
func (s *productService) ListProducts(ctx context.Context, params dto.ListProductsParams) (*dto.ListProductsResponse, error) {
	if params.Page <= 0 {
		params.Page = 1
	}
	if params.Limit <= 0 {
		params.Limit = 10
	}
	offset := (params.Page - 1) * params.Limit

	products, total, err := s.productRepo.ListProducts(ctx, params.Search, params.CategoryID, params.Limit, offset)
	if err != nil {
		return nil, err
	}

	return &dto.ListProductsResponse{
		Products: dto.ToProductResponses(products),
		Meta:     dto.NewMeta(total, params.Page, params.Limit),
	}, nil
}

// UpdateProduct applies partial catalog updates. Stock is untouchable
// here; only the ledger moves it.
func (s *productService) UpdateProduct(ctx context.Context, productID string, req dto.UpdateProductRequest) (*domain.Product, error) {
	product, err := s.productRepo.FindProductByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	if req.CategoryID != nil {
		if _, err := s.categoryRepo.FindCategoryByID(ctx, *req.CategoryID); err != nil {
			return nil, err
		}
		product.CategoryID = *req.CategoryID
	}
	if req.SKU != nil {
		product.SKU = *req.SKU
	}
	if req.Barcode != nil {
		product.Barcode = *req.Barcode
	}
	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Price != nil {
		if req.Price.IsNegative() {
			return nil, fmt.Errorf("%w: price must not be negative", apperrors.ErrValidation)
		}
		product.Price = *req.Price
	}
	product.UpdatedAt = time.Now()

	if err := s.productRepo.UpdateProduct(ctx, *product); err != nil {
		return nil, err
	}
	return product, nil
}

// DeleteProduct soft-deletes a product, removing it from the sellable
// catalog while keeping historical sales intact.
func (s *productService) DeleteProduct(ctx context.Context, productID string) error {
	if err := s.productRepo.SoftDeleteProduct(ctx, productID); err != nil {
		return err
	}
	middleware.GetLoggerFromCtx(ctx).Info("Product deleted", slog.String("product_id", productID))
	return nil
}
