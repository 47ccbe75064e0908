package movements

import (
	"context"
	"io"

	"github.com/jhoicas/painel-movimentos/internal/application/dto"
)

// DashboardPDFGenerator genera el informe PDF de una vista del painel.
type DashboardPDFGenerator interface {
	GenerateDashboardPDF(ctx context.Context, view *dto.DashboardDTO) ([]byte, error)
}

// DashboardSpreadsheetExporter genera la planilla .xlsx de una vista del painel.
type DashboardSpreadsheetExporter interface {
	ExportDashboard(ctx context.Context, view *dto.DashboardDTO) ([]byte, error)
}

// SeriesChartRenderer dibuja la serie como gráfico de líneas (HTML).
type SeriesChartRenderer interface {
	Render(w io.Writer, s dto.SeriesResponseDTO) error
}
