package repository

import (
	"context"

	"github.com/jhoicas/erp-catalog-api/internal/domain/entity"
)

// SupplierRepository define el puerto de persistencia para Supplier (DIP).
type SupplierRepository interface {
	Create(ctx context.Context, supplier *entity.Supplier) error
	GetByID(ctx context.Context, id string) (*entity.Supplier, error)
	GetByEmail(ctx context.Context, email string) (*entity.Supplier, error)
	ListByIDs(ctx context.Context, ids []string) ([]*entity.Supplier, error)
	Update(ctx context.Context, supplier *entity.Supplier) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter SupplierFilter, opts ListOptions) ([]*entity.Supplier, int, error)
	Stats(ctx context.Context, id string) (entity.SupplierStats, error)
}
