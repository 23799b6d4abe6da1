package ports

import (
	"context"
	"time"

	"github.com/jhoicas/erp-catalog-api/internal/application/dto"
)

// LowStockReport datos de entrada del reporte de reposición.
type LowStockReport struct {
	Title       string
	GeneratedAt time.Time
	Products    []dto.ProductResponse
}

// ReportGenerator define el puerto de salida para generar documentos (PDF).
// La aplicación solo conoce este contrato, no la librería concreta.
type ReportGenerator interface {
	GenerateLowStockReport(ctx context.Context, report LowStockReport) ([]byte, error)
}
