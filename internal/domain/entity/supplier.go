package entity

import "time"

// Supplier proveedor de productos. No se puede eliminar mientras tenga productos vinculados.
type Supplier struct {
	ID            string
	Name          string
	ContactPerson string
	Phone         string
	Email         string // único, en minúsculas
	Address       string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// SupplierStats agregados de los productos vinculados a un proveedor.
type SupplierStats struct {
	TotalProducts      int
	TotalServices      int
	LowStockProducts   int
	OutOfStockProducts int
	TotalItems         int
}
