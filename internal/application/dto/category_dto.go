package dto

import "time"

// CreateCategoryRequest entrada para crear una categoría.
type CreateCategoryRequest struct {
	Name string `json:"name" validate:"required,max=50"`
	Type string `json:"type" validate:"required,catalog_type"`
}

// UpdateCategoryRequest actualización parcial de una categoría.
type UpdateCategoryRequest struct {
	Name     *string `json:"name" validate:"omitempty,min=1,max=50"`
	Type     *string `json:"type" validate:"omitempty,catalog_type"`
	IsActive *bool   `json:"isActive"`
}

// CategoryQuery filtros del listado de categorías.
type CategoryQuery struct {
	PageRequest
	Search   string `query:"search"`
	Type     string `query:"type"`
	IsActive string `query:"isActive"`
}

// CategoryResponse salida de una categoría con su creador resuelto.
type CategoryResponse struct {
	ID        string       `json:"id"`
	Name      string       `json:"name"`
	Type      string       `json:"type"`
	IsActive  bool         `json:"isActive"`
	CreatedBy *UserSummary `json:"createdBy,omitempty"`
	CreatedAt time.Time    `json:"createdAt"`
	UpdatedAt time.Time    `json:"updatedAt"`
}

// CategorySummary referencia embebida a una categoría.
type CategorySummary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
}
