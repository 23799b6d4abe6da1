package entity

import (
	"math"
	"time"

	"github.com/shopspring/decimal"
)

// DefaultReorderThreshold umbral de reposición cuando no se indica uno.
const DefaultReorderThreshold = 5

// MaxQuantity tope de existencias (columna INTEGER).
const MaxQuantity = math.MaxInt32

// Product representa un producto o servicio del catálogo.
// Los servicios no manejan existencias: Quantity siempre es 0.
type Product struct {
	ID               string
	Name             string
	CategoryID       string
	Description      string
	Price            decimal.Decimal
	Quantity         int
	Type             string // product, service
	SupplierID       string // vacío si no tiene proveedor
	ReorderThreshold int
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Normalize aplica las reglas derivadas antes de persistir.
func (p *Product) Normalize() {
	if p.Type == TypeService {
		p.Quantity = 0
	}
}

// IsLowStock producto físico con cantidad en o por debajo del umbral.
func (p *Product) IsLowStock() bool {
	return p.Type == TypeProduct && p.Quantity <= p.ReorderThreshold
}

// IsOutOfStock producto físico sin existencias.
func (p *Product) IsOutOfStock() bool {
	return p.Type == TypeProduct && p.Quantity == 0
}
