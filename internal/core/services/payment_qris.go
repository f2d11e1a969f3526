package services

import (
	"context"
	"net/url"
	"time"

	"github.com/dimasprayoga/pos-backend/internal/core/domain"
	portsrepo "github.com/dimasprayoga/pos-backend/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
)

// qrisStrategy defers settlement: it attaches a scannable QR artifact
// and an advisory expiry, and leaves the transaction PENDING until the
// provider's confirmation callback arrives. Expiry is advisory only;
// nothing auto-fails the transaction when it lapses.
type qrisStrategy struct {
	transactionRepo portsrepo.TransactionWriter
	qrCodeBaseURL   string
	expiry          time.Duration
	now             func() time.Time
}

// NewQRISStrategy creates the QRIS payment strategy.
func NewQRISStrategy(transactionRepo portsrepo.TransactionWriter, qrCodeBaseURL string, expiry time.Duration) PaymentStrategy {
	return &qrisStrategy{
		transactionRepo: transactionRepo,
		qrCodeBaseURL:   qrCodeBaseURL,
		expiry:          expiry,
		now:             time.Now,
	}
}

var _ PaymentStrategy = (*qrisStrategy)(nil)

func (s *qrisStrategy) Method() domain.PaymentMethod {
	return domain.MethodQRIS
}

// Validate accepts any tendered amount; the provider collects the exact
// total out of band.
func (s *qrisStrategy) Validate(totalAmount decimal.Decimal, paidAmount *decimal.Decimal) error {
	return nil
}

// Settle generates the QR display artifact and records it on the
// transaction. The transaction stays PENDING.
func (s *qrisStrategy) Settle(ctx context.Context, transaction *domain.Transaction, paidAmount *decimal.Decimal) (*domain.PaymentOutcome, error) {
	qrCodeURL := s.buildQRCodeURL(transaction)
	if err := s.transactionRepo.UpdateQRCodeURL(ctx, transaction.TransactionID, qrCodeURL); err != nil {
		return nil, err
	}

	expiresAt := s.now().Add(s.expiry)
	return &domain.PaymentOutcome{
		Status:    domain.PaymentPending,
		QRCodeURL: qrCodeURL,
		ExpiresAt: &expiresAt,
	}, nil
}

// buildQRCodeURL renders a QR image URL encoding the transaction code
// and amount, the payload a provider integration would replace.
func (s *qrisStrategy) buildQRCodeURL(transaction *domain.Transaction) string {
	params := url.Values{}
	params.Set("size", "300x300")
	params.Set("data", transaction.Code+"|"+transaction.TotalAmount.String())
	return s.qrCodeBaseURL + "?" + params.Encode()
}
