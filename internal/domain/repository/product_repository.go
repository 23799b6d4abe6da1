package repository

import (
	"context"

	"github.com/jhoicas/erp-catalog-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	// GetForUpdate bloquea la fila hasta el fin de la transacción (SELECT ... FOR UPDATE).
	GetForUpdate(ctx context.Context, id string) (*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	UpdateQuantity(ctx context.Context, id string, quantity int) error
	// SetSupplier vincula (supplierID != "") o desvincula (supplierID == "") un producto.
	SetSupplier(ctx context.Context, productID, supplierID string) error
	CountBySupplier(ctx context.Context, supplierID string) (int, error)
	List(ctx context.Context, filter ProductFilter, opts ListOptions) ([]*entity.Product, int, error)
	Delete(ctx context.Context, id string) error
}
