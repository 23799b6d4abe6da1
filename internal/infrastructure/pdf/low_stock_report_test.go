package pdf

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/erp-catalog-api/internal/application/dto"
	"github.com/jhoicas/erp-catalog-api/internal/application/ports"
)

func TestFormatMoney(t *testing.T) {
	cases := map[string]string{
		"0":         "0.00",
		"999.5":     "999.50",
		"25000":     "25,000.00",
		"1234567.5": "1,234,567.50",
		"-1234.567": "-1,234.57",
	}
	for in, want := range cases {
		assert.Equal(t, want, formatMoney(decimal.RequireFromString(in)), in)
	}
}

func TestGenerateLowStockReport(t *testing.T) {
	g := NewMarotoPDFGenerator("erp-catalog-api")
	out, err := g.GenerateLowStockReport(context.Background(), ports.LowStockReport{
		Title:       "Low stock products",
		GeneratedAt: time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC),
		Products: []dto.ProductResponse{
			{
				Name: "Hammer", Price: decimal.RequireFromString("12.5"), Quantity: 0, ReorderThreshold: 5,
				IsLowStock: true, IsOutOfStock: true,
				Category: &dto.CategorySummary{Name: "Tools"},
				Supplier: &dto.SupplierSummary{Name: "Acme", Phone: "555-0100"},
			},
			{Name: "Nails", Price: decimal.NewFromInt(3), Quantity: 4, ReorderThreshold: 5, IsLowStock: true},
		},
	})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")), "debe ser un PDF")
}

func TestGenerateLowStockReport_SinProductos(t *testing.T) {
	out, err := NewMarotoPDFGenerator("x").GenerateLowStockReport(context.Background(), ports.LowStockReport{
		Title: "Low stock products", GeneratedAt: time.Now(),
	})
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}
