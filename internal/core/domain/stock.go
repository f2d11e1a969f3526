package domain

import "time"

// MovementType is the direction of a stock movement.
// ADJUSTMENT (absolute restock counts) is intentionally not supported:
// every change to stock is expressed as a signed IN/OUT delta so that
// current stock always equals the accumulated net of movements.
type MovementType string

const (
	MovementIn  MovementType = "IN"
	MovementOut MovementType = "OUT"
)

// StockMovement is one directional change to a product's stock.
// Movements are append-only; they reference a transaction only through
// the free-text reason, never as a foreign key, so the audit trail
// survives any transaction retention policy.
type StockMovement struct {
	MovementID  string       `json:"movementID"`
	ProductID   string       `json:"productID"`
	ProductName string       `json:"productName,omitempty"` // Joined for display, not stored
	Type        MovementType `json:"type"`
	Quantity    int          `json:"quantity"` // Always positive; direction comes from Type
	Reason      string       `json:"reason"`
	CreatedAt   time.Time    `json:"createdAt"`
}
