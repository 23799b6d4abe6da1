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

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumnsSQL = `id, name, category_id, description, price, quantity, type, supplier_id, reorder_threshold, created_at, updated_at`

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	var supplierID *string
	err := row.Scan(&p.ID, &p.Name, &p.CategoryID, &p.Description, &p.Price, &p.Quantity,
		&p.Type, &supplierID, &p.ReorderThreshold, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	p.SupplierID = deref(supplierID)
	return &p, nil
}

// referenceError traduce una FK rota (categoría o proveedor inexistente) a entrada inválida.
func referenceError(err error, op string) error {
	if isForeignKeyViolation(err) {
		return domain.NewInvalidInput("category or supplier does not exist")
	}
	return fmt.Errorf("%s: %w", op, err)
}

// Create persiste un nuevo producto.
func (r *ProductRepo) Create(ctx context.Context, p *entity.Product) error {
	query := `
		INSERT INTO products (id, name, category_id, description, price, quantity, type, supplier_id, reorder_threshold, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(ctx, query,
		p.ID, p.Name, p.CategoryID, p.Description, p.Price, p.Quantity, p.Type,
		nullable(p.SupplierID), p.ReorderThreshold, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return referenceError(err, "insert product")
	}
	return nil
}

// GetByID obtiene un producto por ID.
func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	return r.get(ctx, `SELECT `+productColumnsSQL+` FROM products WHERE id = $1`, id)
}

// GetForUpdate obtiene el producto bloqueando la fila hasta el fin de la transacción.
func (r *ProductRepo) GetForUpdate(ctx context.Context, id string) (*entity.Product, error) {
	return r.get(ctx, `SELECT `+productColumnsSQL+` FROM products WHERE id = $1 FOR UPDATE`, id)
}

func (r *ProductRepo) get(ctx context.Context, query, id string) (*entity.Product, error) {
	p, err := scanProduct(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

// Update actualiza todos los campos editables de un producto.
func (r *ProductRepo) Update(ctx context.Context, p *entity.Product) error {
	query := `
		UPDATE products SET name = $2, category_id = $3, description = $4, price = $5, quantity = $6,
			type = $7, supplier_id = $8, reorder_threshold = $9, updated_at = $10
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		p.ID, p.Name, p.CategoryID, p.Description, p.Price, p.Quantity,
		p.Type, nullable(p.SupplierID), p.ReorderThreshold, p.UpdatedAt,
	)
	if err != nil {
		return referenceError(err, "update product")
	}
	return nil
}

// UpdateQuantity fija la cantidad (usado por el registro de transacciones).
func (r *ProductRepo) UpdateQuantity(ctx context.Context, id string, quantity int) error {
	_, err := r.q.Exec(ctx, `UPDATE products SET quantity = $2, updated_at = now() WHERE id = $1`, id, quantity)
	if err != nil {
		return fmt.Errorf("update product quantity: %w", err)
	}
	return nil
}

// SetSupplier vincula el producto a un proveedor; supplierID vacío lo desvincula.
func (r *ProductRepo) SetSupplier(ctx context.Context, productID, supplierID string) error {
	_, err := r.q.Exec(ctx, `UPDATE products SET supplier_id = $2, updated_at = now() WHERE id = $1`,
		productID, nullable(supplierID))
	if err != nil {
		return referenceError(err, "set product supplier")
	}
	return nil
}

// CountBySupplier cantidad de productos vinculados a un proveedor.
func (r *ProductRepo) CountBySupplier(ctx context.Context, supplierID string) (int, error) {
	var n int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM products WHERE supplier_id = $1`, supplierID).Scan(&n); err != nil {
		return 0, fmt.Errorf("count products by supplier: %w", err)
	}
	return n, nil
}

// List lista productos con filtro conjuntivo, orden y paginación.
func (r *ProductRepo) List(ctx context.Context, f repository.ProductFilter, opts repository.ListOptions) ([]*entity.Product, int, error) {
	w := productWhere(f)
	var total int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM products`+w.String(), w.args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count products: %w", err)
	}
	query := `SELECT ` + productColumnsSQL + ` FROM products` + w.String() + orderBy(opts, productColumns) + w.page(opts)
	rows, err := r.q.Query(ctx, query, w.args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, p)
	}
	return list, total, rows.Err()
}

// Delete elimina un producto; sus transacciones se borran en cascada.
func (r *ProductRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}
