package movements

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/jhoicas/painel-movimentos/internal/application/dto"
)

// ExportUseCase genera los archivos descargables (PDF y XLSX) de la vista actual.
type ExportUseCase struct {
	dashboard *DashboardUseCase
	pdf       DashboardPDFGenerator
	xlsx      DashboardSpreadsheetExporter
}

// NewExportUseCase construye el caso de uso inyectando los generadores.
func NewExportUseCase(dashboard *DashboardUseCase, pdf DashboardPDFGenerator, xlsx DashboardSpreadsheetExporter) *ExportUseCase {
	return &ExportUseCase{dashboard: dashboard, pdf: pdf, xlsx: xlsx}
}

// ExportPDF devuelve (bytes, nombre de archivo).
func (uc *ExportUseCase) ExportPDF(ctx context.Context, req dto.SeriesRequest) ([]byte, string, error) {
	view, err := uc.dashboard.Render(ctx, req)
	if err != nil {
		return nil, "", err
	}
	b, err := uc.pdf.GenerateDashboardPDF(ctx, view)
	if err != nil {
		return nil, "", fmt.Errorf("export: pdf: %w", err)
	}
	return b, exportFilename(view.Series, "pdf"), nil
}

// ExportXLSX devuelve (bytes, nombre de archivo).
func (uc *ExportUseCase) ExportXLSX(ctx context.Context, req dto.SeriesRequest) ([]byte, string, error) {
	view, err := uc.dashboard.Render(ctx, req)
	if err != nil {
		return nil, "", err
	}
	b, err := uc.xlsx.ExportDashboard(ctx, view)
	if err != nil {
		return nil, "", fmt.Errorf("export: xlsx: %w", err)
	}
	return b, exportFilename(view.Series, "xlsx"), nil
}

var unsafeFilenameChars = regexp.MustCompile(`[^A-Za-z0-9_-]+`)

// exportFilename ej: "movimentos_PARAFUSO-M6_monthly.xlsx".
func exportFilename(s dto.SeriesResponseDTO, ext string) string {
	item := strings.Trim(unsafeFilenameChars.ReplaceAllString(s.Item, "-"), "-")
	if item == "" {
		item = "painel"
	}
	return fmt.Sprintf("movimentos_%s_%s.%s", item, s.Mode, ext)
}
