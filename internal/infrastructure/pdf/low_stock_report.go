// Package pdf genera documentos PDF con Maroto v2.
//
// Layout del reporte de reposición (A4):
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título                  │  Fecha de generación     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: total / sin existencias / costo de reposición     │
//	│  TABLA: Producto | Categoría | Proveedor | Cant | Umbral |   │
//	│         Pedir | Precio                                      │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/erp-catalog-api/internal/application/dto"
	"github.com/jhoicas/erp-catalog-api/internal/application/ports"
	"github.com/jhoicas/erp-catalog-api/internal/domain/inventory"
)

var _ ports.ReportGenerator = (*MarotoPDFGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorDanger  = &props.Color{Red: 180, Green: 30, Blue: 30}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa ports.ReportGenerator usando Maroto v2.
type MarotoPDFGenerator struct {
	author string
}

// NewMarotoPDFGenerator construye el generador; author aparece en los metadatos del PDF.
func NewMarotoPDFGenerator(author string) *MarotoPDFGenerator {
	return &MarotoPDFGenerator{author: author}
}

// GenerateLowStockReport genera el PDF y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateLowStockReport(_ context.Context, report ports.LowStockReport) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(report.Title, true).
		WithAuthor(g.author, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(report))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(summaryRow(report.Products))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	if len(report.Products) == 0 {
		m.AddRows(row.New(8).Add(col.New(12).Add(
			text.New("All products are above their reorder threshold.", props.Text{
				Size: 9, Align: align.Center, Color: colorGray, Top: 2,
			}),
		)))
	}
	m.AddRows(tableDetailRows(report.Products)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(report ports.LowStockReport) core.Row {
	return row.New(14).Add(
		col.New(8).Add(
			text.New(report.Title, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(4).Add(
			text.New("Generated: "+report.GeneratedAt.Format("2006-01-02 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 3, Color: colorGray,
			}),
		),
	)
}

func summaryRow(products []dto.ProductResponse) core.Row {
	out := 0
	cost := decimal.Zero
	for _, p := range products {
		if p.IsOutOfStock {
			out++
		}
		cost = cost.Add(inventory.ReplenishmentCost(inventory.ReorderQuantity(p.Quantity, p.ReorderThreshold), p.Price))
	}
	return row.New(8).Add(col.New(12).Add(
		text.New(fmt.Sprintf("Products to reorder: %d   |   Out of stock: %d   |   Estimated cost: $%s",
			len(products), out, formatMoney(cost)), props.Text{
			Size: 9, Top: 2, Color: colorGray,
		}),
	))
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Product", 3, align.Left),
		h("Category", 2, align.Left),
		h("Supplier", 2, align.Left),
		h("Qty", 1, align.Center),
		h("Threshold", 1, align.Center),
		h("Reorder", 1, align.Center),
		h("Price", 2, align.Right),
	)
}

// tableDetailRows una fila por producto; los agotados en rojo.
func tableDetailRows(products []dto.ProductResponse) []core.Row {
	result := make([]core.Row, 0, len(products))
	for _, p := range products {
		cell := props.Text{Size: 8, Top: 1, Left: 1}
		if p.IsOutOfStock {
			cell.Color = colorDanger
		}
		centered := cell
		centered.Align = align.Center
		right := cell
		right.Align = align.Right
		right.Right = 1

		result = append(result, row.New(7).Add(
			col.New(3).Add(text.New(p.Name, cell)),
			col.New(2).Add(text.New(categoryName(p), cell)),
			col.New(2).Add(text.New(supplierLabel(p), cell)),
			col.New(1).Add(text.New(fmt.Sprint(p.Quantity), centered)),
			col.New(1).Add(text.New(fmt.Sprint(p.ReorderThreshold), centered)),
			col.New(1).Add(text.New(fmt.Sprint(inventory.ReorderQuantity(p.Quantity, p.ReorderThreshold)), centered)),
			col.New(2).Add(text.New("$"+formatMoney(p.Price), right)),
		))
	}
	return result
}

// ── helpers ───────────────────────────────────────────────────────────────────

func categoryName(p dto.ProductResponse) string {
	if p.Category == nil {
		return "—"
	}
	return p.Category.Name
}

func supplierLabel(p dto.ProductResponse) string {
	if p.Supplier == nil {
		return "—"
	}
	if p.Supplier.Phone != "" {
		return p.Supplier.Name + " (" + p.Supplier.Phone + ")"
	}
	return p.Supplier.Name
}

// formatMoney dos decimales con separador de miles.
// Ej: 25000 → "25,000.00", 1234567.5 → "1,234,567.50"
func formatMoney(d decimal.Decimal) string {
	s := d.StringFixed(2)
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	intPart, frac, _ := strings.Cut(s, ".")
	n := len(intPart)
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(intPart) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, ',')
		}
		buf = append(buf, c)
	}
	return sign + string(buf) + "." + frac
}
