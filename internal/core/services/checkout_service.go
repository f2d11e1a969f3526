package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/dimasprayoga/pos-backend/internal/apperrors"
	"github.com/dimasprayoga/pos-backend/internal/core/domain"
	portsrepo "github.com/dimasprayoga/pos-backend/internal/core/ports/repositories"
	portssvc "github.com/dimasprayoga/pos-backend/internal/core/ports/services"
	"github.com/dimasprayoga/pos-backend/internal/dto"
	"github.com/dimasprayoga/pos-backend/internal/middleware"
	"github.com/dimasprayoga/pos-backend/internal/utils/trxcode"
	"github.com/shopspring/decimal"
)

// codeRetryLimit bounds how many transaction codes checkout will try
// when the store reports a code collision.
const codeRetryLimit = 2

// checkoutService turns a cart into a durable sale. The transaction
// header, its items, and the stock decrements commit as one atomic
// unit; settlement is dispatched to the payment strategy only after
// that unit has committed.
type checkoutService struct {
	productRepo     portsrepo.ProductRepositoryWithTx
	transactionRepo portsrepo.TransactionRepositoryWithTx
	userRepo        portsrepo.UserReader
	stockLedger     portssvc.StockLedger
	registry        strategyRegistry
	taxRate         decimal.Decimal
	now             func() time.Time
}

// NewCheckoutService creates the checkout orchestrator.
func NewCheckoutService(
	productRepo portsrepo.ProductRepositoryWithTx,
	transactionRepo portsrepo.TransactionRepositoryWithTx,
	userRepo portsrepo.UserReader,
	stockLedger portssvc.StockLedger,
	taxRate decimal.Decimal,
	strategies ...PaymentStrategy,
) portssvc.CheckoutSvcFacade {
	return &checkoutService{
		productRepo:     productRepo,
		transactionRepo: transactionRepo,
		userRepo:        userRepo,
		stockLedger:     stockLedger,
		registry:        newStrategyRegistry(strategies...),
		taxRate:         taxRate,
		now:             time.Now,
	}
}

// Ensure checkoutService implements the portssvc.CheckoutSvcFacade interface
var _ portssvc.CheckoutSvcFacade = (*checkoutService)(nil)

// cartLine is one aggregated cart entry after duplicate product ids are
// merged.
type cartLine struct {
	productID string
	quantity  int
	discount  decimal.Decimal
}

// Checkout validates the cart, snapshots prices, and commits the sale.
// Scenario walkthrough: everything before Begin is fail-fast validation
// that touches nothing durable; everything between Begin and Commit is
// the atomic unit; settlement runs after Commit against the persisted
// transaction.
func (s *checkoutService) Checkout(ctx context.Context, cashierID string, req dto.CheckoutRequest) (*dto.CheckoutResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if len(req.Items) == 0 {
		return nil, apperrors.ErrEmptyCart
	}

	strategy, ok := s.registry.lookup(domain.PaymentMethod(req.PaymentMethod))
	if !ok {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrUnsupportedPaymentMethod, req.PaymentMethod)
	}

	cashier, err := s.userRepo.FindUserByID(ctx, cashierID)
	if err != nil {
		return nil, err
	}

	lines, err := aggregateCart(req.Items)
	if err != nil {
		return nil, err
	}

	productIDs := make([]string, len(lines))
	for i, line := range lines {
		productIDs[i] = line.productID
	}
	products, err := s.productRepo.FindProductsByIDs(ctx, productIDs)
	if err != nil {
		return nil, err
	}
	// Snapshot stock check fails fast before anything is locked. The
	// ledger re-checks under the row lock, which stays authoritative.
	for _, line := range lines {
		product, ok := products[line.productID]
		if !ok {
			return nil, fmt.Errorf("%w: product %s", apperrors.ErrNotFound, line.productID)
		}
		if line.quantity > product.Stock {
			return nil, fmt.Errorf("%w: product %s has %d, requested %d", apperrors.ErrInsufficientStock, product.Name, product.Stock, line.quantity)
		}
	}

	transaction, items := s.buildTransaction(cashier, lines, products, req)

	if err := strategy.Validate(transaction.TotalAmount, req.PaymentAmount); err != nil {
		return nil, err
	}

	// Commit the atomic unit. A transaction code collision aborts the
	// whole database transaction, so the retry restarts it from Begin
	// with a fresh code.
	var commitErr error
	for attempt := 0; attempt < codeRetryLimit; attempt++ {
		code, err := trxcode.Generate(s.now())
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to generate transaction code", err)
		}
		transaction.Code = code

		commitErr = s.commitSale(ctx, &transaction, items)
		if commitErr == nil {
			break
		}
		if !errors.Is(commitErr, apperrors.ErrDuplicate) {
			return nil, commitErr
		}
		logger.Warn("Transaction code collision, retrying", slog.String("code", code))
	}
	if commitErr != nil {
		return nil, apperrors.NewAppError(500, "failed to allocate a unique transaction code", commitErr)
	}

	transaction.Items = items

	outcome, err := strategy.Settle(ctx, &transaction, req.PaymentAmount)
	if err != nil {
		return nil, err
	}
	applyOutcome(&transaction, outcome, req.PaymentAmount)

	logger.Info("Checkout completed",
		slog.String("transaction_id", transaction.TransactionID),
		slog.String("code", transaction.Code),
		slog.String("payment_method", string(transaction.PaymentMethod)),
		slog.String("payment_status", string(transaction.PaymentStatus)),
		slog.String("total", transaction.TotalAmount.String()),
	)

	paymentResp := dto.ToPaymentResultResponse(outcome)
	return &dto.CheckoutResponse{
		Transaction: dto.ToTransactionResponse(&transaction),
		Change:      outcome.ChangeAmount,
		Payment:     &paymentResp,
	}, nil
}

// buildTransaction snapshots prices and computes the money columns.
func (s *checkoutService) buildTransaction(cashier *domain.User, lines []cartLine, products map[string]domain.Product, req dto.CheckoutRequest) (domain.Transaction, []domain.TransactionItem) {
	transactionID := uuid.NewString()

	subtotal := decimal.Zero
	items := make([]domain.TransactionItem, len(lines))
	for i, line := range lines {
		product := products[line.productID]
		qty := decimal.NewFromInt(int64(line.quantity))
		lineTotal := product.Price.Mul(qty).Sub(line.discount)
		subtotal = subtotal.Add(lineTotal)

		items[i] = domain.TransactionItem{
			ItemID:        uuid.NewString(),
			TransactionID: transactionID,
			ProductID:     product.ProductID,
			ProductName:   product.Name,
			Quantity:      line.quantity,
			Price:         product.Price,
			Discount:      line.discount,
		}
	}

	taxRate := s.taxRate
	if req.TaxRate != nil {
		taxRate = *req.TaxRate
	}
	tax := subtotal.Mul(taxRate).Round(2)

	discount := decimal.Zero
	if req.Discount != nil {
		discount = *req.Discount
	}

	total := subtotal.Add(tax).Sub(discount)

	transaction := domain.Transaction{
		TransactionID: transactionID,
		CashierID:     cashier.UserID,
		CashierName:   cashier.Name,
		Subtotal:      subtotal,
		Tax:           tax,
		Discount:      discount,
		TotalAmount:   total,
		PaymentMethod: domain.PaymentMethod(req.PaymentMethod),
		PaymentStatus: domain.PaymentPending,
		PaidAmount:    decimal.Zero,
		ChangeAmount:  decimal.Zero,
		CreatedAt:     s.now(),
	}
	return transaction, items
}

// commitSale runs the atomic unit: stock decrements with their movement
// rows, then the transaction header and items, in one database
// transaction. Any failure rolls everything back.
func (s *checkoutService) commitSale(ctx context.Context, transaction *domain.Transaction, items []domain.TransactionItem) error {
	tx, err := s.transactionRepo.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = s.transactionRepo.Rollback(ctx, tx)
	}()

	// Lock products in id order so concurrent checkouts over overlapping
	// carts cannot deadlock. Items keep their cart order elsewhere.
	locked := make([]domain.TransactionItem, len(items))
	copy(locked, items)
	sort.Slice(locked, func(i, j int) bool { return locked[i].ProductID < locked[j].ProductID })

	reason := "Sale " + transaction.Code
	for _, item := range locked {
		if _, err := s.stockLedger.AdjustStockInTx(ctx, tx, item.ProductID, domain.MovementOut, item.Quantity, reason); err != nil {
			return err
		}
	}

	if err := s.transactionRepo.CreateTransactionInTx(ctx, tx, *transaction, items); err != nil {
		return err
	}

	return s.transactionRepo.Commit(ctx, tx)
}

// aggregateCart merges duplicate product ids so each product is locked
// and decremented once, preserving first-seen order.
func aggregateCart(items []dto.CheckoutItemRequest) ([]cartLine, error) {
	index := make(map[string]int, len(items))
	lines := make([]cartLine, 0, len(items))
	for _, item := range items {
		if item.Quantity <= 0 {
			return nil, fmt.Errorf("%w: quantity must be positive for product %s", apperrors.ErrValidation, item.ProductID)
		}
		discount := decimal.Zero
		if item.Discount != nil {
			if item.Discount.IsNegative() {
				return nil, fmt.Errorf("%w: discount must not be negative for product %s", apperrors.ErrValidation, item.ProductID)
			}
			discount = *item.Discount
		}
		if i, ok := index[item.ProductID]; ok {
			lines[i].quantity += item.Quantity
			lines[i].discount = lines[i].discount.Add(discount)
			continue
		}
		index[item.ProductID] = len(lines)
		lines = append(lines, cartLine{
			productID: item.ProductID,
			quantity:  item.Quantity,
			discount:  discount,
		})
	}
	return lines, nil
}

// applyOutcome folds the settlement outcome back into the in-memory
// transaction so the response reflects what is now persisted.
func applyOutcome(transaction *domain.Transaction, outcome *domain.PaymentOutcome, paidAmount *decimal.Decimal) {
	transaction.PaymentStatus = outcome.Status
	transaction.QRCodeURL = outcome.QRCodeURL
	if outcome.Status == domain.PaymentPaid && paidAmount != nil {
		transaction.PaidAmount = *paidAmount
		transaction.ChangeAmount = outcome.ChangeAmount
	}
}
