package entity

import "time"

// Tipos de ítem de catálogo, compartidos por Category y Product.
const (
	TypeProduct = "product"
	TypeService = "service"
)

// ValidCatalogType indica si t es product o service.
func ValidCatalogType(t string) bool {
	return t == TypeProduct || t == TypeService
}

// Category agrupa productos o servicios. El borrado es lógico (IsActive).
type Category struct {
	ID        string
	Name      string // único sin distinguir mayúsculas
	Type      string // product, service
	CreatedBy string // user id
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
