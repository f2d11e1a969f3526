package services_test

import (
	"context"
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

type PaymentServiceTestSuite struct {
	suite.Suite
	mockTransactionRepo *MockTransactionRepository
	service             portssvc.PaymentSvcFacade
	pending             domain.Transaction
}

func (suite *PaymentServiceTestSuite) SetupTest() {
	suite.mockTransactionRepo = new(MockTransactionRepository)
	suite.service = services.NewPaymentService(
		suite.mockTransactionRepo,
		services.NewCashStrategy(suite.mockTransactionRepo),
		services.NewQRISStrategy(suite.mockTransactionRepo, "https://qr.example.com/render", 0),
	)

	suite.pending = domain.Transaction{
		TransactionID: uuid.NewString(),
		Code:          "TRX-20260829-7K2PQ",
		TotalAmount:   decimal.NewFromInt(75480),
		PaymentMethod: domain.MethodQRIS,
		PaymentStatus: domain.PaymentPending,
	}
}

func (suite *PaymentServiceTestSuite) TestConfirmPayment_TransitionsPending() {
	ctx := context.Background()

	suite.mockTransactionRepo.On("FindTransactionByID", ctx, suite.pending.TransactionID).Return(&suite.pending, nil).Once()
	suite.mockTransactionRepo.On("MarkPaidIfPending", ctx, suite.pending.TransactionID, suite.pending.TotalAmount, decimal.Zero).Return(true, nil).Once()

	err := suite.service.ConfirmPayment(ctx, suite.pending.TransactionID)

	suite.Require().NoError(err)
	suite.mockTransactionRepo.AssertExpectations(suite.T())
}

func (suite *PaymentServiceTestSuite) TestConfirmPayment_ReplayIsNoOp() {
	ctx := context.Background()
	paid := suite.pending
	paid.PaymentStatus = domain.PaymentPaid

	suite.mockTransactionRepo.On("FindTransactionByID", ctx, paid.TransactionID).Return(&paid, nil).Once()

	err := suite.service.ConfirmPayment(ctx, paid.TransactionID)

	suite.Require().NoError(err)
	suite.mockTransactionRepo.AssertNotCalled(suite.T(), "MarkPaidIfPending", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *PaymentServiceTestSuite) TestConfirmPayment_FailedTransaction() {
	ctx := context.Background()
	failed := suite.pending
	failed.PaymentStatus = domain.PaymentFailed

	suite.mockTransactionRepo.On("FindTransactionByID", ctx, failed.TransactionID).Return(&failed, nil).Once()

	err := suite.service.ConfirmPayment(ctx, failed.TransactionID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrTransactionFailed)
	suite.NotErrorIs(err, apperrors.ErrAlreadyPaid)
	suite.mockTransactionRepo.AssertNotCalled(suite.T(), "MarkPaidIfPending", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *PaymentServiceTestSuite) TestConfirmPayment_UnknownTransaction() {
	ctx := context.Background()
	unknownID := uuid.NewString()

	suite.mockTransactionRepo.On("FindTransactionByID", ctx, unknownID).Return(nil, apperrors.ErrNotFound).Once()

	err := suite.service.ConfirmPayment(ctx, unknownID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *PaymentServiceTestSuite) TestConfirmPayment_LostRaceToConcurrentConfirm() {
	ctx := context.Background()
	paid := suite.pending
	paid.PaymentStatus = domain.PaymentPaid

	// First read sees PENDING, the conditional update loses the race,
	// the re-read sees PAID.
	suite.mockTransactionRepo.On("FindTransactionByID", ctx, suite.pending.TransactionID).Return(&suite.pending, nil).Once()
	suite.mockTransactionRepo.On("MarkPaidIfPending", ctx, suite.pending.TransactionID, suite.pending.TotalAmount, decimal.Zero).Return(false, nil).Once()
	suite.mockTransactionRepo.On("FindTransactionByID", ctx, suite.pending.TransactionID).Return(&paid, nil).Once()

	err := suite.service.ConfirmPayment(ctx, suite.pending.TransactionID)

	suite.Require().NoError(err)
	suite.mockTransactionRepo.AssertExpectations(suite.T())
}

func (suite *PaymentServiceTestSuite) TestProcessPayment_UnsupportedMethod() {
	ctx := context.Background()

	suite.mockTransactionRepo.On("FindTransactionByID", ctx, suite.pending.TransactionID).Return(&suite.pending, nil).Once()

	_, err := suite.service.ProcessPayment(ctx, suite.pending.TransactionID, dto.ProcessPaymentRequest{Method: "CHEQUE"})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrUnsupportedPaymentMethod)
}

func (suite *PaymentServiceTestSuite) TestProcessPayment_AlreadyTerminal() {
	ctx := context.Background()
	paid := suite.pending
	paid.PaymentStatus = domain.PaymentPaid
	amount := decimal.NewFromInt(80000)

	suite.mockTransactionRepo.On("FindTransactionByID", ctx, paid.TransactionID).Return(&paid, nil).Once()

	_, err := suite.service.ProcessPayment(ctx, paid.TransactionID, dto.ProcessPaymentRequest{Method: "CASH", PaidAmount: &amount})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrAlreadyPaid)
	suite.mockTransactionRepo.AssertNotCalled(suite.T(), "MarkPaidIfPending", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *PaymentServiceTestSuite) TestProcessPayment_FailedTransaction() {
	ctx := context.Background()
	failed := suite.pending
	failed.PaymentStatus = domain.PaymentFailed
	amount := decimal.NewFromInt(80000)

	suite.mockTransactionRepo.On("FindTransactionByID", ctx, failed.TransactionID).Return(&failed, nil).Once()

	_, err := suite.service.ProcessPayment(ctx, failed.TransactionID, dto.ProcessPaymentRequest{Method: "CASH", PaidAmount: &amount})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrTransactionFailed)
	suite.mockTransactionRepo.AssertNotCalled(suite.T(), "MarkPaidIfPending", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *PaymentServiceTestSuite) TestProcessPayment_CashSettles() {
	ctx := context.Background()
	amount := decimal.NewFromInt(80000)

	suite.mockTransactionRepo.On("FindTransactionByID", ctx, suite.pending.TransactionID).Return(&suite.pending, nil).Once()
	suite.mockTransactionRepo.On("MarkPaidIfPending", ctx, suite.pending.TransactionID, amount, decimal.NewFromInt(4520)).Return(true, nil).Once()

	resp, err := suite.service.ProcessPayment(ctx, suite.pending.TransactionID, dto.ProcessPaymentRequest{Method: "CASH", PaidAmount: &amount})

	suite.Require().NoError(err)
	suite.Equal("PAID", resp.Status)
	suite.Require().NotNil(resp.ChangeAmount)
	suite.True(resp.ChangeAmount.Equal(decimal.NewFromInt(4520)), "change was %s", resp.ChangeAmount)
}

func (suite *PaymentServiceTestSuite) TestProcessPayment_CashInsufficient() {
	ctx := context.Background()
	amount := decimal.NewFromInt(100)

	suite.mockTransactionRepo.On("FindTransactionByID", ctx, suite.pending.TransactionID).Return(&suite.pending, nil).Once()

	_, err := suite.service.ProcessPayment(ctx, suite.pending.TransactionID, dto.ProcessPaymentRequest{Method: "CASH", PaidAmount: &amount})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrInsufficientPayment)
	suite.mockTransactionRepo.AssertNotCalled(suite.T(), "MarkPaidIfPending", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *PaymentServiceTestSuite) TestCheckStatus() {
	ctx := context.Background()

	suite.mockTransactionRepo.On("FindTransactionByID", ctx, suite.pending.TransactionID).Return(&suite.pending, nil).Once()

	resp, err := suite.service.CheckStatus(ctx, suite.pending.TransactionID)

	suite.Require().NoError(err)
	suite.Equal(suite.pending.TransactionID, resp.TransactionID)
	suite.Equal("PENDING", resp.Status)
}

func TestPaymentService(t *testing.T) {
	suite.Run(t, new(PaymentServiceTestSuite))
}
