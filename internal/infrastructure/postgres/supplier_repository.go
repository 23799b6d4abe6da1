package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/erp-catalog-api/internal/domain"
	"github.com/jhoicas/erp-catalog-api/internal/domain/entity"
	"github.com/jhoicas/erp-catalog-api/internal/domain/repository"
)

var _ repository.SupplierRepository = (*SupplierRepo)(nil)

const supplierColumnsSQL = `id, name, contact_person, phone, email, address, created_at, updated_at`

// SupplierRepo implementación del puerto SupplierRepository sobre PostgreSQL.
type SupplierRepo struct {
	q Querier
}

// NewSupplierRepository construye el adaptador de persistencia para proveedores.
func NewSupplierRepository(q Querier) *SupplierRepo {
	return &SupplierRepo{q: q}
}

func scanSupplier(row pgx.Row) (*entity.Supplier, error) {
	var s entity.Supplier
	err := row.Scan(&s.ID, &s.Name, &s.ContactPerson, &s.Phone, &s.Email, &s.Address, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// Create persiste un nuevo proveedor.
func (r *SupplierRepo) Create(ctx context.Context, s *entity.Supplier) error {
	query := `
		INSERT INTO suppliers (id, name, contact_person, phone, email, address, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		s.ID, s.Name, s.ContactPerson, s.Phone, s.Email, s.Address, s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert supplier: %w", err)
	}
	return nil
}

// GetByID obtiene un proveedor por ID.
func (r *SupplierRepo) GetByID(ctx context.Context, id string) (*entity.Supplier, error) {
	s, err := scanSupplier(r.q.QueryRow(ctx, `SELECT `+supplierColumnsSQL+` FROM suppliers WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get supplier: %w", err)
	}
	return s, nil
}

// GetByEmail obtiene un proveedor por email.
func (r *SupplierRepo) GetByEmail(ctx context.Context, email string) (*entity.Supplier, error) {
	s, err := scanSupplier(r.q.QueryRow(ctx, `SELECT `+supplierColumnsSQL+` FROM suppliers WHERE email = $1`, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get supplier by email: %w", err)
	}
	return s, nil
}

// ListByIDs carga varios proveedores en una sola consulta.
func (r *SupplierRepo) ListByIDs(ctx context.Context, ids []string) ([]*entity.Supplier, error) {
	rows, err := r.q.Query(ctx, `SELECT `+supplierColumnsSQL+` FROM suppliers WHERE id = ANY($1::uuid[])`, ids)
	if err != nil {
		return nil, fmt.Errorf("list suppliers by ids: %w", err)
	}
	return collectSuppliers(rows)
}

// Update actualiza los datos de contacto.
func (r *SupplierRepo) Update(ctx context.Context, s *entity.Supplier) error {
	query := `
		UPDATE suppliers SET name = $2, contact_person = $3, phone = $4, email = $5, address = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query, s.ID, s.Name, s.ContactPerson, s.Phone, s.Email, s.Address, s.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update supplier: %w", err)
	}
	return nil
}

// Delete elimina un proveedor. Si aún hay productos vinculados la FK lo impide.
func (r *SupplierRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM suppliers WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.NewConflict("Cannot delete supplier. Products are linked to this supplier. Please unlink products first.")
		}
		return fmt.Errorf("delete supplier: %w", err)
	}
	return nil
}

// List lista proveedores con búsqueda, orden y paginación.
func (r *SupplierRepo) List(ctx context.Context, f repository.SupplierFilter, opts repository.ListOptions) ([]*entity.Supplier, int, error) {
	w := supplierWhere(f)
	var total int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM suppliers`+w.String(), w.args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count suppliers: %w", err)
	}
	query := `SELECT ` + supplierColumnsSQL + ` FROM suppliers` + w.String() + orderBy(opts, supplierColumns) + w.page(opts)
	rows, err := r.q.Query(ctx, query, w.args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list suppliers: %w", err)
	}
	list, err := collectSuppliers(rows)
	return list, total, err
}

// Stats agrega los productos del proveedor en una sola pasada.
func (r *SupplierRepo) Stats(ctx context.Context, id string) (entity.SupplierStats, error) {
	query := `
		SELECT
			COUNT(*) FILTER (WHERE type = 'product'),
			COUNT(*) FILTER (WHERE type = 'service'),
			COUNT(*) FILTER (WHERE type = 'product' AND quantity <= reorder_threshold),
			COUNT(*) FILTER (WHERE type = 'product' AND quantity = 0),
			COUNT(*)
		FROM products WHERE supplier_id = $1`
	var s entity.SupplierStats
	err := r.q.QueryRow(ctx, query, id).Scan(
		&s.TotalProducts, &s.TotalServices, &s.LowStockProducts, &s.OutOfStockProducts, &s.TotalItems,
	)
	if err != nil {
		return entity.SupplierStats{}, fmt.Errorf("supplier stats: %w", err)
	}
	return s, nil
}

func collectSuppliers(rows pgx.Rows) ([]*entity.Supplier, error) {
	defer rows.Close()
	var list []*entity.Supplier
	for rows.Next() {
		s, err := scanSupplier(rows)
		if err != nil {
			return nil, fmt.Errorf("scan supplier: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}
