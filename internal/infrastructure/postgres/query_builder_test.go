package postgres

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/erp-catalog-api/internal/domain/repository"
)

func TestProductWhere_Vacio(t *testing.T) {
	w := productWhere(repository.ProductFilter{})
	assert.Equal(t, "", w.String())
	assert.Empty(t, w.args)
}

func TestProductWhere_CombinaFiltros(t *testing.T) {
	min := decimal.NewFromInt(10)
	max := decimal.NewFromInt(20)
	w := productWhere(repository.ProductFilter{
		Search:     "drill",
		CategoryID: "c1",
		MinPrice:   &min,
		MaxPrice:   &max,
	})
	assert.Equal(t,
		" WHERE (name ILIKE $1 OR description ILIKE $1) AND category_id = $2 AND price >= $3 AND price <= $4",
		w.String())
	assert.Equal(t, []any{"%drill%", "c1", min, max}, w.args)
}

func TestProductWhere_LowStockFuerzaProducto(t *testing.T) {
	w := productWhere(repository.ProductFilter{Type: "service", LowStock: true})
	assert.Equal(t, " WHERE type = $1 AND quantity <= reorder_threshold", w.String())
	assert.Equal(t, []any{"product"}, w.args)
}

func TestPage_ContinuaNumeracion(t *testing.T) {
	w := userWhere(repository.UserFilter{Role: "admin"})
	assert.Equal(t, " LIMIT $2 OFFSET $3", w.page(repository.ListOptions{Limit: 10, Offset: 20}))
	assert.Equal(t, []any{"admin", 10, 20}, w.args)
	assert.Equal(t, "", (&whereClause{}).page(repository.ListOptions{}))
}

func TestOrderBy_ListaPermitida(t *testing.T) {
	assert.Equal(t, " ORDER BY price ASC, id ASC",
		orderBy(repository.ListOptions{SortBy: "price"}, productColumns))
	assert.Equal(t, " ORDER BY created_at DESC, id DESC",
		orderBy(repository.ListOptions{SortBy: "price; DROP TABLE products", SortDesc: true}, productColumns))
	assert.Equal(t, " ORDER BY contact_person DESC, id DESC",
		orderBy(repository.ListOptions{SortBy: "contactPerson", SortDesc: true}, supplierColumns))
}

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, `50\% off\_now\\`, escapeLike(`50% off_now\`))
	w := categoryWhere(repository.CategoryFilter{Search: "a_b"})
	assert.Equal(t, []any{`%a\_b%`}, w.args)
}
