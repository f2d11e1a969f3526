package services

import (
	"context"

	"github.com/dimasprayoga/pos-backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// PaymentStrategy is one settlement behavior. Checkout validates the
// payment input through the strategy before anything persists, then
// settles through it once the sale has committed.
type PaymentStrategy interface {
	// Method names the payment method this strategy settles.
	Method() domain.PaymentMethod

	// Validate checks the tendered amount against the computed total.
	// It runs before the sale persists, so a rejection here aborts the
	// whole checkout with nothing written.
	Validate(totalAmount decimal.Decimal, paidAmount *decimal.Decimal) error

	// Settle runs against the committed transaction and produces the
	// payment outcome. Immediate methods transition the transaction to
	// PAID here; deferred methods attach their display artifact and
	// leave it PENDING.
	Settle(ctx context.Context, transaction *domain.Transaction, paidAmount *decimal.Decimal) (*domain.PaymentOutcome, error)
}

// strategyRegistry maps payment methods to their strategies. Built once
// at startup and never mutated afterwards, so concurrent lookups need
// no locking.
type strategyRegistry map[domain.PaymentMethod]PaymentStrategy

// newStrategyRegistry indexes the given strategies by method.
func newStrategyRegistry(strategies ...PaymentStrategy) strategyRegistry {
	registry := make(strategyRegistry, len(strategies))
	for _, strategy := range strategies {
		registry[strategy.Method()] = strategy
	}
	return registry
}

// lookup returns the strategy for a method, or false when none is registered.
func (r strategyRegistry) lookup(method domain.PaymentMethod) (PaymentStrategy, bool) {
	strategy, ok := r[method]
	return strategy, ok
}
