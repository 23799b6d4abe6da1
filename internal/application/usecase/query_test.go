package usecase

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/erp-catalog-api/internal/application/dto"
	"github.com/jhoicas/erp-catalog-api/internal/domain/entity"
)

const validID = "6b1f1c8e-8d9a-4a36-9a3e-2f3c1f0f6a11"

func TestBuildProductFilter_IgnoraValoresInvalidos(t *testing.T) {
	f := BuildProductFilter(dto.ProductQuery{
		Type:     "gadget",
		Category: "not-an-id",
		Supplier: "42",
		MinPrice: "abc",
		MaxPrice: "",
	})
	assert.Empty(t, f.Type)
	assert.Empty(t, f.CategoryID)
	assert.Empty(t, f.SupplierID)
	assert.Nil(t, f.MinPrice)
	assert.Nil(t, f.MaxPrice)
	assert.False(t, f.LowStock)
}

func TestBuildProductFilter_AplicaValoresValidos(t *testing.T) {
	f := BuildProductFilter(dto.ProductQuery{
		Search:   "  drill ",
		Type:     "service",
		Category: validID,
		Supplier: validID,
		MinPrice: "10",
		MaxPrice: "99.90",
	})
	assert.Equal(t, "drill", f.Search)
	assert.Equal(t, entity.TypeService, f.Type)
	assert.Equal(t, validID, f.CategoryID)
	assert.Equal(t, validID, f.SupplierID)
	require.NotNil(t, f.MinPrice)
	require.NotNil(t, f.MaxPrice)
	assert.True(t, f.MinPrice.Equal(decimal.NewFromInt(10)))
	assert.True(t, f.MaxPrice.Equal(decimal.RequireFromString("99.90")))
}

func TestBuildProductFilter_LowStockFuerzaTipoProducto(t *testing.T) {
	for _, v := range []string{"true", "TRUE", "1"} {
		f := BuildProductFilter(dto.ProductQuery{LowStock: v, Type: "service"})
		assert.True(t, f.LowStock, v)
		assert.Equal(t, entity.TypeProduct, f.Type, v)
	}
	f := BuildProductFilter(dto.ProductQuery{LowStock: "false"})
	assert.False(t, f.LowStock)
}

func TestListOptions_Normaliza(t *testing.T) {
	tests := []struct {
		name       string
		in         dto.PageRequest
		wantLimit  int
		wantOffset int
		wantSort   string
		wantDesc   bool
	}{
		{"defaults", dto.PageRequest{}, 10, 0, "createdAt", true},
		{"page 2 limit 5", dto.PageRequest{Page: 2, Limit: 5}, 5, 5, "createdAt", true},
		{"limit clamp", dto.PageRequest{Page: 1, Limit: 500}, 100, 0, "createdAt", true},
		{"page negativa", dto.PageRequest{Page: -3, Limit: 20}, 20, 0, "createdAt", true},
		{"sort asc", dto.PageRequest{SortBy: "price", SortOrder: "asc"}, 10, 0, "price", false},
		{"sort desconocido", dto.PageRequest{SortBy: "password", SortOrder: "asc"}, 10, 0, "createdAt", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := tt.in
			opts := listOptions(&p, productSortFields)
			assert.Equal(t, tt.wantLimit, opts.Limit)
			assert.Equal(t, tt.wantOffset, opts.Offset)
			assert.Equal(t, tt.wantSort, opts.SortBy)
			assert.Equal(t, tt.wantDesc, opts.SortDesc)
		})
	}
}

func TestBuildCategoryFilter_IsActive(t *testing.T) {
	f := buildCategoryFilter(dto.CategoryQuery{IsActive: "false"})
	require.NotNil(t, f.IsActive)
	assert.False(t, *f.IsActive)

	f = buildCategoryFilter(dto.CategoryQuery{IsActive: "maybe", Type: "other"})
	assert.Nil(t, f.IsActive)
	assert.Empty(t, f.Type)
}
