package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/painel-movimentos/internal/application/movements"
)

const mimeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportHandler descargas de la vista actual.
type ExportHandler struct {
	uc    *movements.ExportUseCase
	views ViewCounter
}

// NewExportHandler construye el handler.
func NewExportHandler(uc *movements.ExportUseCase, views ViewCounter) *ExportHandler {
	if views == nil {
		views = noopCounter{}
	}
	return &ExportHandler{uc: uc, views: views}
}

// DownloadPDF godoc
// @Summary      Informe PDF de la vista
// @Tags         exports
// @Produce      application/pdf
// @Param        item           query  string  false  "Descrição do Material. Default: primero en orden alfabético."
// @Param        mode           query  string  false  "monthly | yearly"
// @Param        years          query  string  false  "Lista separada por comas"
// @Param        months         query  string  false  "Lista separada por comas"
// @Param        business_unit  query  int     false  "Unidade de Negócio"
// @Success      200  {file}    binary
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/movements/report.pdf [get]
func (h *ExportHandler) DownloadPDF(c *fiber.Ctx) error {
	req, err := parseSeriesRequest(c)
	if err != nil {
		return writeError(c, err)
	}
	b, filename, err := h.uc.ExportPDF(c.UserContext(), req)
	if err != nil {
		return writeError(c, err)
	}
	h.views.IncView("pdf")
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Send(b)
}

// DownloadXLSX godoc
// @Summary      Planilla XLSX de la vista
// @Tags         exports
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        item           query  string  false  "Descrição do Material. Default: primero en orden alfabético."
// @Param        mode           query  string  false  "monthly | yearly"
// @Param        years          query  string  false  "Lista separada por comas"
// @Param        months         query  string  false  "Lista separada por comas"
// @Param        business_unit  query  int     false  "Unidade de Negócio"
// @Success      200  {file}    binary
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/movements/export.xlsx [get]
func (h *ExportHandler) DownloadXLSX(c *fiber.Ctx) error {
	req, err := parseSeriesRequest(c)
	if err != nil {
		return writeError(c, err)
	}
	b, filename, err := h.uc.ExportXLSX(c.UserContext(), req)
	if err != nil {
		return writeError(c, err)
	}
	h.views.IncView("xlsx")
	c.Set(fiber.HeaderContentType, mimeXLSX)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Send(b)
}
