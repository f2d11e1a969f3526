package dto

import (
	"time"

	"github.com/dimasprayoga/pos-backend/internal/core/domain"
)

// AdjustStockRequest applies one manual stock movement.
type AdjustStockRequest struct {
	ProductID string `json:"productID" binding:"required"`
	Type      string `json:"type" binding:"required,oneof=IN OUT"`
	Quantity  int    `json:"quantity" binding:"required,gt=0"`
	Reason    string `json:"reason"`
}

// AdjustStockResponse reports the stock level after an adjustment.
type AdjustStockResponse struct {
	ProductID string `json:"productID"`
	NewStock  int    `json:"newStock"`
}

// ListMovementsParams filters and paginates the movement history.
type ListMovementsParams struct {
	ProductID string  `form:"productID"`
	Limit     int     `form:"limit,default=20" binding:"omitempty,gte=1,lte=100"`
	NextToken *string `form:"nextToken"`
}

// StockMovementResponse is the public view of one movement.
type StockMovementResponse struct {
	MovementID  string    `json:"id"`
	ProductID   string    `json:"productID"`
	ProductName string    `json:"productName,omitempty"`
	Type        string    `json:"type"`
	Quantity    int       `json:"quantity"`
	Reason      string    `json:"reason"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ListStockMovementsResponse is a cursor-paginated movement listing.
type ListStockMovementsResponse struct {
	Movements []StockMovementResponse `json:"movements"`
	NextToken *string                 `json:"nextToken,omitempty"`
}

// ToStockMovementResponses converts domain StockMovements to public views.
func ToStockMovementResponses(movements []domain.StockMovement) []StockMovementResponse {
	resp := make([]StockMovementResponse, len(movements))
	for i, m := range movements {
		resp[i] = StockMovementResponse{
			MovementID:  m.MovementID,
			ProductID:   m.ProductID,
			ProductName: m.ProductName,
			Type:        string(m.Type),
			Quantity:    m.Quantity,
			Reason:      m.Reason,
			CreatedAt:   m.CreatedAt,
		}
	}
	return resp
}
