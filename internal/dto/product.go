package dto

import (
	"github.com/dimasprayoga/pos-backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateProductRequest creates a new catalog product.
type CreateProductRequest struct {
	CategoryID string          `json:"categoryID" binding:"required"`
	SKU        string          `json:"sku" binding:"required"`
	Barcode    string          `json:"barcode"`
	Name       string          `json:"name" binding:"required"`
	Price      decimal.Decimal `json:"price" binding:"required"`
	Stock      int             `json:"stock" binding:"gte=0"`
}

// UpdateProductRequest updates product fields; nil fields are untouched.
// Stock is deliberately absent: stock only changes through the ledger.
type UpdateProductRequest struct {
	CategoryID *string          `json:"categoryID"`
	SKU        *string          `json:"sku"`
	Barcode    *string          `json:"barcode"`
	Name       *string          `json:"name"`
	Price      *decimal.Decimal `json:"price"`
}

// ListProductsParams filters and paginates the product listing.
type ListProductsParams struct {
	Search     string `form:"search"`
	CategoryID string `form:"categoryID"`
	Page       int    `form:"page,default=1" binding:"omitempty,gte=1"`
	Limit      int    `form:"limit,default=10" binding:"omitempty,gte=1,lte=100"`
}

// ProductResponse is the public view of a product.
type ProductResponse struct {
	ProductID  string          `json:"id"`
	CategoryID string          `json:"categoryID"`
	SKU        string          `json:"sku"`
	Barcode    string          `json:"barcode"`
	Name       string          `json:"name"`
	Price      decimal.Decimal `json:"price"`
	Stock      int             `json:"stock"`
}

// ListProductsResponse is a paginated product listing.
type ListProductsResponse struct {
	Products []ProductResponse `json:"products"`
	Meta     Meta              `json:"meta"`
}

// ToProductResponse converts a domain Product to its public view.
func ToProductResponse(p *domain.Product) ProductResponse {
	return ProductResponse{
		ProductID:  p.ProductID,
		CategoryID: p.CategoryID,
		SKU:        p.SKU,
		Barcode:    p.Barcode,
		Name:       p.Name,
		Price:      p.Price,
		Stock:      p.Stock,
	}
}

// ToProductResponses converts a slice of domain Products to public views.
func ToProductResponses(products []domain.Product) []ProductResponse {
	resp := make([]ProductResponse, len(products))
	for i := range products {
		resp[i] = ToProductResponse(&products[i])
	}
	return resp
}
