package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jhoicas/erp-catalog-api/internal/domain/entity"
	"github.com/jhoicas/erp-catalog-api/internal/domain/repository"
)

var _ repository.InventoryTransactionRepository = (*InventoryTransactionRepo)(nil)

// InventoryTransactionRepo persistencia del historial de existencias (usable con pool o tx).
type InventoryTransactionRepo struct {
	q Querier
}

// NewInventoryTransactionRepository construye el adaptador.
func NewInventoryTransactionRepository(q Querier) *InventoryTransactionRepo {
	return &InventoryTransactionRepo{q: q}
}

// Create inserta la transacción. Asigna ID si viene vacío.
func (r *InventoryTransactionRepo) Create(ctx context.Context, t *entity.InventoryTransaction) error {
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	query := `
		INSERT INTO inventory_transactions (id, product_id, type, quantity, previous_quantity, new_quantity, notes, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(ctx, query,
		t.ID, t.ProductID, t.Type, t.Quantity, t.PreviousQuantity, t.NewQuantity,
		t.Notes, nullable(t.CreatedBy), t.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert inventory transaction: %w", err)
	}
	return nil
}

// ListByProduct historial de un producto, paginado.
func (r *InventoryTransactionRepo) ListByProduct(ctx context.Context, productID string, opts repository.ListOptions) ([]*entity.InventoryTransaction, int, error) {
	var total int
	if err := r.q.QueryRow(ctx,
		`SELECT COUNT(*) FROM inventory_transactions WHERE product_id = $1`, productID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count inventory transactions: %w", err)
	}
	dir := "ASC"
	if opts.SortDesc {
		dir = "DESC"
	}
	query := fmt.Sprintf(`
		SELECT id, product_id, type, quantity, previous_quantity, new_quantity, notes, created_by, created_at
		FROM inventory_transactions WHERE product_id = $1
		ORDER BY created_at %s, id %s LIMIT $2 OFFSET $3`, dir, dir)
	rows, err := r.q.Query(ctx, query, productID, opts.Limit, opts.Offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list inventory transactions: %w", err)
	}
	defer rows.Close()
	var list []*entity.InventoryTransaction
	for rows.Next() {
		var t entity.InventoryTransaction
		var createdBy *string
		if err := rows.Scan(&t.ID, &t.ProductID, &t.Type, &t.Quantity, &t.PreviousQuantity,
			&t.NewQuantity, &t.Notes, &createdBy, &t.CreatedAt); err != nil {
			return nil, 0, fmt.Errorf("scan inventory transaction: %w", err)
		}
		t.CreatedBy = deref(createdBy)
		list = append(list, &t)
	}
	return list, total, rows.Err()
}
