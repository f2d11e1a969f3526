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
	"github.com/jackc/pgx/v5"
)

// stockService is the stock ledger: the only code path that changes a
// product's stock. Every change goes through AdjustStockInTx so the
// stock column and the movement log cannot drift apart.
type stockService struct {
	productRepo portsrepo.ProductRepositoryWithTx
	stockRepo   portsrepo.StockRepositoryFacade
}

// NewStockService creates a new stock ledger service.
func NewStockService(productRepo portsrepo.ProductRepositoryWithTx, stockRepo portsrepo.StockRepositoryFacade) portssvc.StockSvcFacade {
	return &stockService{
		productRepo: productRepo,
		stockRepo:   stockRepo,
	}
}

// Ensure stockService implements the portssvc.StockSvcFacade interface
var _ portssvc.StockSvcFacade = (*stockService)(nil)

// AdjustStockInTx applies one movement to a product inside the caller's
// transaction. The product row is locked first, so the stock check and
// the write are serialized against concurrent adjustments; concurrent
// OUT movements cannot drive stock negative.
func (s *stockService) AdjustStockInTx(ctx context.Context, tx pgx.Tx, productID string, movementType domain.MovementType, quantity int, reason string) (int, error) {
	if quantity <= 0 {
		return 0, fmt.Errorf("%w: movement quantity must be positive", apperrors.ErrValidation)
	}

	product, err := s.productRepo.FindProductByIDForUpdate(ctx, tx, productID)
	if err != nil {
		return 0, err
	}

	var newStock int
	switch movementType {
	case domain.MovementIn:
		newStock = product.Stock + quantity
	case domain.MovementOut:
		if product.Stock < quantity {
			return 0, fmt.Errorf("%w: product %s has %d, requested %d", apperrors.ErrInsufficientStock, product.Name, product.Stock, quantity)
		}
		newStock = product.Stock - quantity
	default:
		return 0, fmt.Errorf("%w: unknown movement type %q", apperrors.ErrValidation, movementType)
	}

	if err := s.productRepo.UpdateStockInTx(ctx, tx, productID, newStock); err != nil {
		return 0, err
	}

	movement := domain.StockMovement{
		MovementID: uuid.NewString(),
		ProductID:  productID,
		Type:       movementType,
		Quantity:   quantity,
		Reason:     reason,
		CreatedAt:  time.Now(),
	}
	if err := s.stockRepo.InsertMovementInTx(ctx, tx, movement); err != nil {
		return 0, err
	}

	return newStock, nil
}

// AdjustStock wraps AdjustStockInTx in its own transaction for manual
// stock corrections.
func (s *stockService) AdjustStock(ctx context.Context, req dto.AdjustStockRequest) (*dto.AdjustStockResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	tx, err := s.productRepo.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = s.productRepo.Rollback(ctx, tx)
	}()

	newStock, err := s.AdjustStockInTx(ctx, tx, req.ProductID, domain.MovementType(req.Type), req.Quantity, req.Reason)
	if err != nil {
		return nil, err
	}

	if err := s.productRepo.Commit(ctx, tx); err != nil {
		return nil, err
	}

	logger.Info("Stock adjusted",
		slog.String("product_id", req.ProductID),
		slog.String("type", req.Type),
		slog.Int("quantity", req.Quantity),
		slog.Int("new_stock", newStock),
	)

	return &dto.AdjustStockResponse{ProductID: req.ProductID, NewStock: newStock}, nil
}

// ListMovements pages through the movement history, newest first.
func (s *stockService) ListMovements(ctx context.Context, params dto.ListMovementsParams) (*dto.ListStockMovementsResponse, error) {
	if params.Limit <= 0 {
		params.Limit = 20
	}

	movements, nextToken, err := s.stockRepo.ListMovements(ctx, params.ProductID, params.Limit, params.NextToken)
	if err != nil {
		return nil, err
	}

	return &dto.ListStockMovementsResponse{
		Movements: dto.ToStockMovementResponses(movements),
		NextToken: nextToken,
	}, nil
}
