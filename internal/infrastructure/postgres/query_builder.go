package postgres

import (
	"fmt"
	"strings"

	"github.com/jhoicas/erp-catalog-api/internal/domain/entity"
	"github.com/jhoicas/erp-catalog-api/internal/domain/repository"
)

// whereClause acumula condiciones conjuntivas y sus argumentos posicionales ($1, $2, ...).
type whereClause struct {
	conds []string
	args  []any
}

// arg registra un valor y devuelve su placeholder.
func (w *whereClause) arg(v any) string {
	w.args = append(w.args, v)
	return fmt.Sprintf("$%d", len(w.args))
}

func (w *whereClause) and(cond string) {
	w.conds = append(w.conds, cond)
}

// search agrega (col1 ILIKE $n OR col2 ILIKE $n ...) con un único argumento.
func (w *whereClause) search(term string, columns ...string) {
	p := w.arg("%" + escapeLike(term) + "%")
	parts := make([]string, 0, len(columns))
	for _, c := range columns {
		parts = append(parts, c+" ILIKE "+p)
	}
	w.and("(" + strings.Join(parts, " OR ") + ")")
}

func (w *whereClause) String() string {
	if len(w.conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(w.conds, " AND ")
}

// page agrega LIMIT/OFFSET a continuación de los argumentos del WHERE.
func (w *whereClause) page(opts repository.ListOptions) string {
	if opts.Limit <= 0 {
		return ""
	}
	return fmt.Sprintf(" LIMIT %s OFFSET %s", w.arg(opts.Limit), w.arg(opts.Offset))
}

// escapeLike escapa los comodines para que el término se busque literalmente.
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

// orderBy traduce el nombre lógico a columna mediante la lista permitida; id desempata
// para que la paginación sea estable.
func orderBy(opts repository.ListOptions, columns map[string]string) string {
	col, ok := columns[opts.SortBy]
	if !ok {
		col = "created_at"
	}
	dir := "ASC"
	if opts.SortDesc {
		dir = "DESC"
	}
	return fmt.Sprintf(" ORDER BY %s %s, id %s", col, dir, dir)
}

var (
	productColumns = map[string]string{
		"name":      "name",
		"price":     "price",
		"quantity":  "quantity",
		"type":      "type",
		"createdAt": "created_at",
		"updatedAt": "updated_at",
	}
	categoryColumns = map[string]string{
		"name":      "name",
		"type":      "type",
		"createdAt": "created_at",
		"updatedAt": "updated_at",
	}
	supplierColumns = map[string]string{
		"name":          "name",
		"contactPerson": "contact_person",
		"email":         "email",
		"createdAt":     "created_at",
		"updatedAt":     "updated_at",
	}
	userColumns = map[string]string{
		"name":      "name",
		"email":     "email",
		"role":      "role",
		"createdAt": "created_at",
		"updatedAt": "updated_at",
	}
)

func productWhere(f repository.ProductFilter) *whereClause {
	w := &whereClause{}
	if f.Search != "" {
		w.search(f.Search, "name", "description")
	}
	typ := f.Type
	if f.LowStock || f.OutOfStock {
		typ = entity.TypeProduct
	}
	if typ != "" {
		w.and("type = " + w.arg(typ))
	}
	if f.CategoryID != "" {
		w.and("category_id = " + w.arg(f.CategoryID))
	}
	if f.SupplierID != "" {
		w.and("supplier_id = " + w.arg(f.SupplierID))
	}
	if f.MinPrice != nil {
		w.and("price >= " + w.arg(*f.MinPrice))
	}
	if f.MaxPrice != nil {
		w.and("price <= " + w.arg(*f.MaxPrice))
	}
	if f.LowStock {
		w.and("quantity <= reorder_threshold")
	}
	if f.OutOfStock {
		w.and("quantity = 0")
	}
	return w
}

func categoryWhere(f repository.CategoryFilter) *whereClause {
	w := &whereClause{}
	if f.Search != "" {
		w.search(f.Search, "name")
	}
	if f.Type != "" {
		w.and("type = " + w.arg(f.Type))
	}
	if f.IsActive != nil {
		w.and("is_active = " + w.arg(*f.IsActive))
	}
	return w
}

func supplierWhere(f repository.SupplierFilter) *whereClause {
	w := &whereClause{}
	if f.Search != "" {
		w.search(f.Search, "name", "contact_person", "email")
	}
	return w
}

func userWhere(f repository.UserFilter) *whereClause {
	w := &whereClause{}
	if f.Search != "" {
		w.search(f.Search, "name", "email")
	}
	if f.Role != "" {
		w.and("role = " + w.arg(f.Role))
	}
	return w
}
