package dto

import "github.com/dimasprayoga/pos-backend/internal/core/domain"

// CreateCategoryRequest creates a new category.
type CreateCategoryRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

// UpdateCategoryRequest updates category fields; nil fields are untouched.
type UpdateCategoryRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

// CategoryResponse is the public view of a category.
type CategoryResponse struct {
	CategoryID  string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// ToCategoryResponse converts a domain Category to its public view.
func ToCategoryResponse(c *domain.Category) CategoryResponse {
	return CategoryResponse{
		CategoryID:  c.CategoryID,
		Name:        c.Name,
		Description: c.Description,
	}
}
