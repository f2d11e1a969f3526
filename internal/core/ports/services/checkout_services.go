package services

import (
	"context"

	"github.com/dimasprayoga/pos-backend/internal/dto"
)

// CheckoutSvcFacade turns a cart into a durable sale: one atomic unit
// covering the transaction row, its items, and the stock decrements,
// followed by dispatch to the selected payment strategy.
type CheckoutSvcFacade interface {
	Checkout(ctx context.Context, cashierID string, req dto.CheckoutRequest) (*dto.CheckoutResponse, error)
}
