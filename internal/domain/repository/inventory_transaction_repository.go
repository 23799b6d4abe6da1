package repository

import (
	"context"

	"github.com/jhoicas/erp-catalog-api/internal/domain/entity"
)

// InventoryTransactionRepository define el puerto de persistencia para InventoryTransaction (DIP).
type InventoryTransactionRepository interface {
	Create(ctx context.Context, tx *entity.InventoryTransaction) error
	ListByProduct(ctx context.Context, productID string, opts ListOptions) ([]*entity.InventoryTransaction, int, error)
}
