package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto o servicio.
type CreateProductRequest struct {
	Name             string           `json:"name" validate:"required,max=100"`
	CategoryID       string           `json:"category" validate:"required,uuid"`
	Description      string           `json:"description" validate:"max=500"`
	Price            *decimal.Decimal `json:"price" validate:"required,gte=0"`
	Quantity         *int             `json:"quantity" validate:"omitempty,gte=0,max=2147483647"`
	Type             string           `json:"type" validate:"required,catalog_type"`
	SupplierID       string           `json:"supplier" validate:"omitempty,uuid"`
	ReorderThreshold *int             `json:"reorderThreshold" validate:"omitempty,gte=0,max=2147483647"`
}

// UpdateProductRequest actualización parcial. Supplier se gestiona también con link/unlink.
type UpdateProductRequest struct {
	Name             *string          `json:"name" validate:"omitempty,min=1,max=100"`
	CategoryID       *string          `json:"category" validate:"omitempty,uuid"`
	Description      *string          `json:"description" validate:"omitempty,max=500"`
	Price            *decimal.Decimal `json:"price" validate:"omitempty,gte=0"`
	Quantity         *int             `json:"quantity" validate:"omitempty,gte=0,max=2147483647"`
	Type             *string          `json:"type" validate:"omitempty,catalog_type"`
	SupplierID       *string          `json:"supplier" validate:"omitempty,uuid"`
	ReorderThreshold *int             `json:"reorderThreshold" validate:"omitempty,gte=0,max=2147483647"`
}

// ProductQuery parámetros crudos del listado; los inválidos se ignoran al construir el filtro.
type ProductQuery struct {
	PageRequest
	Search   string `query:"search"`
	Type     string `query:"type"`
	Category string `query:"category"`
	Supplier string `query:"supplier"`
	MinPrice string `query:"minPrice"`
	MaxPrice string `query:"maxPrice"`
	LowStock string `query:"lowStock"`
}

// ProductResponse salida de un producto con referencias resueltas y atributos derivados.
type ProductResponse struct {
	ID               string           `json:"id"`
	Name             string           `json:"name"`
	Category         *CategorySummary `json:"category,omitempty"`
	Description      string           `json:"description"`
	Price            decimal.Decimal  `json:"price"`
	Quantity         int              `json:"quantity"`
	Type             string           `json:"type"`
	Supplier         *SupplierSummary `json:"supplier,omitempty"`
	ReorderThreshold int              `json:"reorderThreshold"`
	IsLowStock       bool             `json:"isLowStock"`
	IsOutOfStock     bool             `json:"isOutOfStock"`
	CreatedAt        time.Time        `json:"createdAt"`
	UpdatedAt        time.Time        `json:"updatedAt"`
}
