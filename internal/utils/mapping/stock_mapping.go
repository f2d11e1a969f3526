package mapping

import (
	"github.com/dimasprayoga/pos-backend/internal/core/domain"
	"github.com/dimasprayoga/pos-backend/internal/models"
)

// ToModelStockMovement converts a domain StockMovement to a model StockMovement
func ToModelStockMovement(d domain.StockMovement) models.StockMovement {
	return models.StockMovement{
		MovementID: d.MovementID,
		ProductID:  d.ProductID,
		Type:       models.MovementType(d.Type),
		Quantity:   d.Quantity,
		Reason:     d.Reason,
		CreatedAt:  d.CreatedAt,
	}
}

// ToDomainStockMovement converts a model StockMovement to a domain StockMovement
func ToDomainStockMovement(m models.StockMovement) domain.StockMovement {
	return domain.StockMovement{
		MovementID:  m.MovementID,
		ProductID:   m.ProductID,
		ProductName: m.ProductName,
		Type:        domain.MovementType(m.Type),
		Quantity:    m.Quantity,
		Reason:      m.Reason,
		CreatedAt:   m.CreatedAt,
	}
}

// ToDomainStockMovementSlice converts model StockMovements to domain StockMovements
func ToDomainStockMovementSlice(ms []models.StockMovement) []domain.StockMovement {
	ds := make([]domain.StockMovement, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainStockMovement(m)
	}
	return ds
}
