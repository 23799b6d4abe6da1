package repository

import "github.com/shopspring/decimal"

// ListOptions paginación y orden ya normalizados por la capa de aplicación.
// SortBy es un nombre lógico (name, price, createdAt, ...); cada adaptador
// lo traduce a su columna o ignora los que no conoce.
type ListOptions struct {
	Limit    int
	Offset   int
	SortBy   string
	SortDesc bool
}

// ProductFilter filtros conjuntivos para listar productos. Campos vacíos no filtran.
type ProductFilter struct {
	Search     string
	Type       string
	CategoryID string
	SupplierID string
	MinPrice   *decimal.Decimal
	MaxPrice   *decimal.Decimal
	LowStock   bool // fuerza Type=product y quantity <= reorder_threshold
	OutOfStock bool // fuerza Type=product y quantity = 0
}

// CategoryFilter filtros para listar categorías.
type CategoryFilter struct {
	Search   string
	Type     string
	IsActive *bool
}

// SupplierFilter filtros para listar proveedores.
type SupplierFilter struct {
	Search string // nombre, contacto o email
}

// UserFilter filtros para listar usuarios.
type UserFilter struct {
	Search string // nombre o email
	Role   string
}
