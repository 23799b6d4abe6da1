package dto

import "time"

// CreateSupplierRequest entrada para crear un proveedor.
type CreateSupplierRequest struct {
	Name          string `json:"name" validate:"required,max=100"`
	ContactPerson string `json:"contactPerson" validate:"required,max=50"`
	Phone         string `json:"phone" validate:"required,phone"`
	Email         string `json:"email" validate:"required,email"`
	Address       string `json:"address" validate:"required,max=200"`
}

// UpdateSupplierRequest actualización parcial de un proveedor.
type UpdateSupplierRequest struct {
	Name          *string `json:"name" validate:"omitempty,min=1,max=100"`
	ContactPerson *string `json:"contactPerson" validate:"omitempty,min=1,max=50"`
	Phone         *string `json:"phone" validate:"omitempty,phone"`
	Email         *string `json:"email" validate:"omitempty,email"`
	Address       *string `json:"address" validate:"omitempty,min=1,max=200"`
}

// LinkProductRequest vincula un producto a un proveedor.
type LinkProductRequest struct {
	SupplierID string `json:"supplierId" validate:"required,uuid"`
	ProductID  string `json:"productId" validate:"required,uuid"`
}

// SupplierQuery filtros del listado de proveedores.
type SupplierQuery struct {
	PageRequest
	Search string `query:"search"`
}

// SupplierResponse salida de un proveedor.
type SupplierResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	ContactPerson string    `json:"contactPerson"`
	Phone         string    `json:"phone"`
	Email         string    `json:"email"`
	Address       string    `json:"address"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// SupplierSummary referencia embebida a un proveedor. Phone y Email solo en el detalle del producto.
type SupplierSummary struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	ContactPerson string `json:"contactPerson"`
	Phone         string `json:"phone,omitempty"`
	Email         string `json:"email,omitempty"`
}

// SupplierStatsResponse agregados de productos de un proveedor.
type SupplierStatsResponse struct {
	TotalProducts      int `json:"totalProducts"`
	TotalServices      int `json:"totalServices"`
	LowStockProducts   int `json:"lowStockProducts"`
	OutOfStockProducts int `json:"outOfStockProducts"`
	TotalItems         int `json:"totalItems"`
}

// SupplierProductsResponse proveedor más la página de sus productos.
type SupplierProductsResponse struct {
	Supplier SupplierSummary   `json:"supplier"`
	Products []ProductResponse `json:"products"`
}
