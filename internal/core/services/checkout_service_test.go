package services_test

import (
	"context"
	"regexp"
	"testing"

	"github.com/dimasprayoga/pos-backend/internal/apperrors"
	"github.com/dimasprayoga/pos-backend/internal/core/domain"
	portssvc "github.com/dimasprayoga/pos-backend/internal/core/ports/services"
	"github.com/dimasprayoga/pos-backend/internal/core/services"
	"github.com/dimasprayoga/pos-backend/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

var trxCodePattern = regexp.MustCompile(`^TRX-\d{8}-[A-Z0-9]{5}$`)

type CheckoutServiceTestSuite struct {
	suite.Suite
	mockProductRepo     *MockProductRepository
	mockTransactionRepo *MockTransactionRepository
	mockUserRepo        *MockUserRepository
	mockStockLedger     *MockStockLedger
	service             portssvc.CheckoutSvcFacade
	cashier             domain.User
	coffee              domain.Product
	croissant           domain.Product
	tx                  stubTx
}

func (suite *CheckoutServiceTestSuite) SetupTest() {
	suite.mockProductRepo = new(MockProductRepository)
	suite.mockTransactionRepo = new(MockTransactionRepository)
	suite.mockUserRepo = new(MockUserRepository)
	suite.mockStockLedger = new(MockStockLedger)
	suite.tx = stubTx{}

	taxRate := decimal.NewFromFloat(0.11)
	suite.service = services.NewCheckoutService(
		suite.mockProductRepo,
		suite.mockTransactionRepo,
		suite.mockUserRepo,
		suite.mockStockLedger,
		taxRate,
		services.NewCashStrategy(suite.mockTransactionRepo),
		services.NewQRISStrategy(suite.mockTransactionRepo, "https://qr.example.com/render", 0),
	)

	suite.cashier = domain.User{
		UserID: uuid.NewString(),
		Name:   "Dina",
		Role:   domain.RoleCashier,
	}
	suite.coffee = domain.Product{
		ProductID: uuid.NewString(),
		Name:      "Americano 250ml",
		Price:     decimal.NewFromInt(25000),
		Stock:     10,
	}
	suite.croissant = domain.Product{
		ProductID: uuid.NewString(),
		Name:      "Butter Croissant",
		Price:     decimal.NewFromInt(18000),
		Stock:     4,
	}
}

func (suite *CheckoutServiceTestSuite) expectCashier() {
	suite.mockUserRepo.On("FindUserByID", mock.Anything, suite.cashier.UserID).Return(&suite.cashier, nil).Once()
}

func (suite *CheckoutServiceTestSuite) expectProducts(products ...domain.Product) {
	resolved := make(map[string]domain.Product, len(products))
	for _, p := range products {
		resolved[p.ProductID] = p
	}
	suite.mockProductRepo.On("FindProductsByIDs", mock.Anything, mock.AnythingOfType("[]string")).Return(resolved, nil).Once()
}

func (suite *CheckoutServiceTestSuite) TestCheckout_CashSuccess() {
	ctx := context.Background()
	paid := decimal.NewFromInt(100000)
	req := dto.CheckoutRequest{
		Items: []dto.CheckoutItemRequest{
			{ProductID: suite.coffee.ProductID, Quantity: 2},
			{ProductID: suite.croissant.ProductID, Quantity: 1},
		},
		PaymentMethod: "CASH",
		PaymentAmount: &paid,
	}

	suite.expectCashier()
	suite.expectProducts(suite.coffee, suite.croissant)

	suite.mockTransactionRepo.On("Begin", mock.Anything).Return(suite.tx, nil).Once()
	suite.mockStockLedger.On("AdjustStockInTx", mock.Anything, suite.tx, suite.coffee.ProductID, domain.MovementOut, 2, mock.AnythingOfType("string")).Return(8, nil).Once()
	suite.mockStockLedger.On("AdjustStockInTx", mock.Anything, suite.tx, suite.croissant.ProductID, domain.MovementOut, 1, mock.AnythingOfType("string")).Return(3, nil).Once()
	suite.mockTransactionRepo.On("CreateTransactionInTx", mock.Anything, suite.tx, mock.AnythingOfType("domain.Transaction"), mock.AnythingOfType("[]domain.TransactionItem")).Return(nil).Once()
	suite.mockTransactionRepo.On("Commit", mock.Anything, suite.tx).Return(nil).Once()
	suite.mockTransactionRepo.On("Rollback", mock.Anything, suite.tx).Return(nil)
	suite.mockTransactionRepo.On("MarkPaidIfPending", mock.Anything, mock.AnythingOfType("string"), paid, mock.AnythingOfType("decimal.Decimal")).Return(true, nil).Once()

	resp, err := suite.service.Checkout(ctx, suite.cashier.UserID, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(resp)

	// 2x25000 + 1x18000 = 68000; tax 11% = 7480; total 75480.
	suite.True(resp.Transaction.Subtotal.Equal(decimal.NewFromInt(68000)), "subtotal was %s", resp.Transaction.Subtotal)
	suite.True(resp.Transaction.Tax.Equal(decimal.NewFromInt(7480)), "tax was %s", resp.Transaction.Tax)
	suite.True(resp.Transaction.TotalAmount.Equal(decimal.NewFromInt(75480)), "total was %s", resp.Transaction.TotalAmount)
	suite.True(resp.Change.Equal(decimal.NewFromInt(24520)), "change was %s", resp.Change)
	suite.Equal("PAID", resp.Transaction.PaymentStatus)
	suite.Regexp(trxCodePattern, resp.Transaction.Code)
	suite.Len(resp.Transaction.Items, 2)
	suite.True(resp.Transaction.Items[0].Price.Equal(suite.coffee.Price), "price snapshot mismatch")
	suite.Require().NotNil(resp.Payment)
	suite.Require().NotNil(resp.Payment.Receipt)
	suite.Equal(suite.cashier.Name, resp.Payment.Receipt.Cashier)

	suite.mockTransactionRepo.AssertExpectations(suite.T())
	suite.mockStockLedger.AssertExpectations(suite.T())
}

func (suite *CheckoutServiceTestSuite) TestCheckout_EmptyCart() {
	_, err := suite.service.Checkout(context.Background(), suite.cashier.UserID, dto.CheckoutRequest{PaymentMethod: "CASH"})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrEmptyCart)
	suite.mockTransactionRepo.AssertNotCalled(suite.T(), "Begin", mock.Anything)
}

func (suite *CheckoutServiceTestSuite) TestCheckout_UnsupportedPaymentMethod() {
	req := dto.CheckoutRequest{
		Items:         []dto.CheckoutItemRequest{{ProductID: suite.coffee.ProductID, Quantity: 1}},
		PaymentMethod: "STORE_CREDIT",
	}

	_, err := suite.service.Checkout(context.Background(), suite.cashier.UserID, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrUnsupportedPaymentMethod)
	suite.mockTransactionRepo.AssertNotCalled(suite.T(), "Begin", mock.Anything)
}

func (suite *CheckoutServiceTestSuite) TestCheckout_UnknownProduct() {
	req := dto.CheckoutRequest{
		Items:         []dto.CheckoutItemRequest{{ProductID: uuid.NewString(), Quantity: 1}},
		PaymentMethod: "QRIS",
	}

	suite.expectCashier()
	suite.mockProductRepo.On("FindProductsByIDs", mock.Anything, mock.AnythingOfType("[]string")).Return(map[string]domain.Product{}, nil).Once()

	_, err := suite.service.Checkout(context.Background(), suite.cashier.UserID, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockTransactionRepo.AssertNotCalled(suite.T(), "Begin", mock.Anything)
}

func (suite *CheckoutServiceTestSuite) TestCheckout_CashInsufficientPaymentPersistsNothing() {
	paid := decimal.NewFromInt(1000)
	req := dto.CheckoutRequest{
		Items:         []dto.CheckoutItemRequest{{ProductID: suite.coffee.ProductID, Quantity: 1}},
		PaymentMethod: "CASH",
		PaymentAmount: &paid,
	}

	suite.expectCashier()
	suite.expectProducts(suite.coffee)

	_, err := suite.service.Checkout(context.Background(), suite.cashier.UserID, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrInsufficientPayment)
	suite.mockTransactionRepo.AssertNotCalled(suite.T(), "Begin", mock.Anything)
	suite.mockTransactionRepo.AssertNotCalled(suite.T(), "CreateTransactionInTx", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *CheckoutServiceTestSuite) TestCheckout_InsufficientStockFailsFast() {
	paid := decimal.NewFromInt(100000)
	req := dto.CheckoutRequest{
		Items:         []dto.CheckoutItemRequest{{ProductID: suite.croissant.ProductID, Quantity: 5}},
		PaymentMethod: "CASH",
		PaymentAmount: &paid,
	}

	suite.expectCashier()
	suite.expectProducts(suite.croissant)

	// The cart asks for 5 but the snapshot shows 4: checkout must reject
	// before opening the database transaction or taking any row lock.
	_, err := suite.service.Checkout(context.Background(), suite.cashier.UserID, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrInsufficientStock)
	suite.Contains(err.Error(), suite.croissant.Name)
	suite.mockTransactionRepo.AssertNotCalled(suite.T(), "Begin", mock.Anything)
	suite.mockStockLedger.AssertNotCalled(suite.T(), "AdjustStockInTx", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *CheckoutServiceTestSuite) TestCheckout_ConcurrentDrainRollsBack() {
	paid := decimal.NewFromInt(100000)
	req := dto.CheckoutRequest{
		Items:         []dto.CheckoutItemRequest{{ProductID: suite.croissant.ProductID, Quantity: 3}},
		PaymentMethod: "CASH",
		PaymentAmount: &paid,
	}

	suite.expectCashier()
	suite.expectProducts(suite.croissant)

	// The snapshot shows 4 so the pre-check passes, but another sale
	// drained the stock before the row lock: the ledger rejects and the
	// whole unit rolls back.
	suite.mockTransactionRepo.On("Begin", mock.Anything).Return(suite.tx, nil).Once()
	suite.mockStockLedger.On("AdjustStockInTx", mock.Anything, suite.tx, suite.croissant.ProductID, domain.MovementOut, 3, mock.AnythingOfType("string")).Return(0, apperrors.ErrInsufficientStock).Once()
	suite.mockTransactionRepo.On("Rollback", mock.Anything, suite.tx).Return(nil)

	_, err := suite.service.Checkout(context.Background(), suite.cashier.UserID, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrInsufficientStock)
	suite.mockTransactionRepo.AssertNotCalled(suite.T(), "Commit", mock.Anything, mock.Anything)
	suite.mockTransactionRepo.AssertNotCalled(suite.T(), "CreateTransactionInTx", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	suite.mockTransactionRepo.AssertCalled(suite.T(), "Rollback", mock.Anything, suite.tx)
}

func (suite *CheckoutServiceTestSuite) TestCheckout_StockAndPaymentBothShortFailsOnStock() {
	paid := decimal.NewFromInt(1000)
	req := dto.CheckoutRequest{
		Items:         []dto.CheckoutItemRequest{{ProductID: suite.croissant.ProductID, Quantity: 5}},
		PaymentMethod: "CASH",
		PaymentAmount: &paid,
	}

	suite.expectCashier()
	suite.expectProducts(suite.croissant)

	// Stock is checked before the payment amount, so a cart that is short
	// on both reports the stock problem.
	_, err := suite.service.Checkout(context.Background(), suite.cashier.UserID, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrInsufficientStock)
	suite.mockTransactionRepo.AssertNotCalled(suite.T(), "Begin", mock.Anything)
}

func (suite *CheckoutServiceTestSuite) TestCheckout_QRISLeavesTransactionPending() {
	req := dto.CheckoutRequest{
		Items:         []dto.CheckoutItemRequest{{ProductID: suite.coffee.ProductID, Quantity: 1}},
		PaymentMethod: "QRIS",
	}

	suite.expectCashier()
	suite.expectProducts(suite.coffee)

	suite.mockTransactionRepo.On("Begin", mock.Anything).Return(suite.tx, nil).Once()
	suite.mockStockLedger.On("AdjustStockInTx", mock.Anything, suite.tx, suite.coffee.ProductID, domain.MovementOut, 1, mock.AnythingOfType("string")).Return(9, nil).Once()
	suite.mockTransactionRepo.On("CreateTransactionInTx", mock.Anything, suite.tx, mock.AnythingOfType("domain.Transaction"), mock.AnythingOfType("[]domain.TransactionItem")).Return(nil).Once()
	suite.mockTransactionRepo.On("Commit", mock.Anything, suite.tx).Return(nil).Once()
	suite.mockTransactionRepo.On("Rollback", mock.Anything, suite.tx).Return(nil)
	suite.mockTransactionRepo.On("UpdateQRCodeURL", mock.Anything, mock.AnythingOfType("string"), mock.AnythingOfType("string")).Return(nil).Once()

	resp, err := suite.service.Checkout(context.Background(), suite.cashier.UserID, req)

	suite.Require().NoError(err)
	suite.Equal("PENDING", resp.Transaction.PaymentStatus)
	suite.NotEmpty(resp.Transaction.QRCodeURL)
	suite.Require().NotNil(resp.Payment)
	suite.NotNil(resp.Payment.ExpiresAt)
	suite.mockTransactionRepo.AssertNotCalled(suite.T(), "MarkPaidIfPending", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *CheckoutServiceTestSuite) TestCheckout_RetriesOnCodeCollision() {
	paid := decimal.NewFromInt(100000)
	req := dto.CheckoutRequest{
		Items:         []dto.CheckoutItemRequest{{ProductID: suite.coffee.ProductID, Quantity: 1}},
		PaymentMethod: "CASH",
		PaymentAmount: &paid,
	}

	suite.expectCashier()
	suite.expectProducts(suite.coffee)

	suite.mockTransactionRepo.On("Begin", mock.Anything).Return(suite.tx, nil).Twice()
	suite.mockStockLedger.On("AdjustStockInTx", mock.Anything, suite.tx, suite.coffee.ProductID, domain.MovementOut, 1, mock.AnythingOfType("string")).Return(9, nil).Twice()
	suite.mockTransactionRepo.On("CreateTransactionInTx", mock.Anything, suite.tx, mock.AnythingOfType("domain.Transaction"), mock.AnythingOfType("[]domain.TransactionItem")).Return(apperrors.ErrDuplicate).Once()
	suite.mockTransactionRepo.On("CreateTransactionInTx", mock.Anything, suite.tx, mock.AnythingOfType("domain.Transaction"), mock.AnythingOfType("[]domain.TransactionItem")).Return(nil).Once()
	suite.mockTransactionRepo.On("Commit", mock.Anything, suite.tx).Return(nil).Once()
	suite.mockTransactionRepo.On("Rollback", mock.Anything, suite.tx).Return(nil)
	suite.mockTransactionRepo.On("MarkPaidIfPending", mock.Anything, mock.AnythingOfType("string"), paid, mock.AnythingOfType("decimal.Decimal")).Return(true, nil).Once()

	resp, err := suite.service.Checkout(context.Background(), suite.cashier.UserID, req)

	suite.Require().NoError(err)
	suite.Equal("PAID", resp.Transaction.PaymentStatus)
	suite.mockTransactionRepo.AssertExpectations(suite.T())
}

func (suite *CheckoutServiceTestSuite) TestCheckout_MergesDuplicateCartLines() {
	paid := decimal.NewFromInt(100000)
	req := dto.CheckoutRequest{
		Items: []dto.CheckoutItemRequest{
			{ProductID: suite.coffee.ProductID, Quantity: 1},
			{ProductID: suite.coffee.ProductID, Quantity: 2},
		},
		PaymentMethod: "CASH",
		PaymentAmount: &paid,
	}

	suite.expectCashier()
	suite.expectProducts(suite.coffee)

	suite.mockTransactionRepo.On("Begin", mock.Anything).Return(suite.tx, nil).Once()
	// One merged decrement of 3, not two separate ones.
	suite.mockStockLedger.On("AdjustStockInTx", mock.Anything, suite.tx, suite.coffee.ProductID, domain.MovementOut, 3, mock.AnythingOfType("string")).Return(7, nil).Once()
	suite.mockTransactionRepo.On("CreateTransactionInTx", mock.Anything, suite.tx, mock.AnythingOfType("domain.Transaction"), mock.AnythingOfType("[]domain.TransactionItem")).Return(nil).Once()
	suite.mockTransactionRepo.On("Commit", mock.Anything, suite.tx).Return(nil).Once()
	suite.mockTransactionRepo.On("Rollback", mock.Anything, suite.tx).Return(nil)
	suite.mockTransactionRepo.On("MarkPaidIfPending", mock.Anything, mock.AnythingOfType("string"), paid, mock.AnythingOfType("decimal.Decimal")).Return(true, nil).Once()

	resp, err := suite.service.Checkout(context.Background(), suite.cashier.UserID, req)

	suite.Require().NoError(err)
	suite.Require().Len(resp.Transaction.Items, 1)
	suite.Equal(3, resp.Transaction.Items[0].Quantity)
	suite.mockStockLedger.AssertExpectations(suite.T())
}

func (suite *CheckoutServiceTestSuite) TestCheckout_DecrementsStockInProductIDOrder() {
	paid := decimal.NewFromInt(200000)
	first := domain.Product{
		ProductID: "0a-" + uuid.NewString(),
		Name:      "Americano 250ml",
		Price:     decimal.NewFromInt(25000),
		Stock:     10,
	}
	second := domain.Product{
		ProductID: "zz-" + uuid.NewString(),
		Name:      "Butter Croissant",
		Price:     decimal.NewFromInt(18000),
		Stock:     4,
	}
	// Cart order is the reverse of id order.
	req := dto.CheckoutRequest{
		Items: []dto.CheckoutItemRequest{
			{ProductID: second.ProductID, Quantity: 1},
			{ProductID: first.ProductID, Quantity: 2},
		},
		PaymentMethod: "CASH",
		PaymentAmount: &paid,
	}

	suite.expectCashier()
	suite.expectProducts(first, second)

	var lockOrder []string
	suite.mockTransactionRepo.On("Begin", mock.Anything).Return(suite.tx, nil).Once()
	suite.mockStockLedger.On("AdjustStockInTx", mock.Anything, suite.tx, mock.AnythingOfType("string"), domain.MovementOut, mock.AnythingOfType("int"), mock.AnythingOfType("string")).
		Run(func(args mock.Arguments) {
			lockOrder = append(lockOrder, args.String(2))
		}).
		Return(1, nil).Twice()
	suite.mockTransactionRepo.On("CreateTransactionInTx", mock.Anything, suite.tx, mock.AnythingOfType("domain.Transaction"), mock.AnythingOfType("[]domain.TransactionItem")).Return(nil).Once()
	suite.mockTransactionRepo.On("Commit", mock.Anything, suite.tx).Return(nil).Once()
	suite.mockTransactionRepo.On("Rollback", mock.Anything, suite.tx).Return(nil)
	suite.mockTransactionRepo.On("MarkPaidIfPending", mock.Anything, mock.AnythingOfType("string"), paid, mock.AnythingOfType("decimal.Decimal")).Return(true, nil).Once()

	resp, err := suite.service.Checkout(context.Background(), suite.cashier.UserID, req)

	suite.Require().NoError(err)
	// Row locks are always taken in id order so two carts holding the
	// same products in different order cannot deadlock each other.
	suite.Equal([]string{first.ProductID, second.ProductID}, lockOrder)
	// The sale itself keeps the cart's order.
	suite.Require().Len(resp.Transaction.Items, 2)
	suite.Equal(second.ProductID, resp.Transaction.Items[0].ProductID)
	suite.Equal(first.ProductID, resp.Transaction.Items[1].ProductID)
}

func TestCheckoutService(t *testing.T) {
	suite.Run(t, new(CheckoutServiceTestSuite))
}
