package models

import "time"

// MovementType is the direction of a stock movement.
type MovementType string

const (
	MovementIn  MovementType = "IN"
	MovementOut MovementType = "OUT"
)

// StockMovement mirrors the stock_movements table. Append-only.
type StockMovement struct {
	MovementID  string       `db:"movement_id"`
	ProductID   string       `db:"product_id"`
	ProductName string       `db:"product_name"` // Joined from products, not a column
	Type        MovementType `db:"type"`
	Quantity    int          `db:"quantity"`
	Reason      string       `db:"reason"`
	CreatedAt   time.Time    `db:"created_at"`
}
