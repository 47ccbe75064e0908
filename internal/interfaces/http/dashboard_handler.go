package http

import (
	"bytes"
	_ "embed"
	"html/template"
	"net/url"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/painel-movimentos/internal/application/dto"
	"github.com/jhoicas/painel-movimentos/internal/application/movements"
	"github.com/jhoicas/painel-movimentos/internal/domain/movement"
	"github.com/jhoicas/painel-movimentos/pkg/format"
)

//go:embed templates/dashboard.html
var dashboardHTML string

var dashboardTmpl = template.Must(template.New("dashboard").Funcs(template.FuncMap{
	"qty": format.Quantity,
}).Parse(dashboardHTML))

// DashboardHandler sirve el painel HTML: selectores, métrica, ranking y gráfico.
type DashboardHandler struct {
	dashboard *movements.DashboardUseCase
	series    *movements.SeriesUseCase
	chart     movements.SeriesChartRenderer
	views     ViewCounter
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(
	dashboard *movements.DashboardUseCase,
	series *movements.SeriesUseCase,
	chart movements.SeriesChartRenderer,
	views ViewCounter,
) *DashboardHandler {
	if views == nil {
		views = noopCounter{}
	}
	return &DashboardHandler{dashboard: dashboard, series: series, chart: chart, views: views}
}

// dashboardPage datos de la plantilla.
type dashboardPage struct {
	View     *dto.DashboardDTO
	Yearly   bool
	Years    map[int]bool
	Months   map[int]bool
	ChartURL string
	PDFURL   string
	XLSXURL  string
}

// UnitSelected usado por la plantilla para marcar el radio de unidad de negocio.
func (p dashboardPage) UnitSelected(unit int) bool {
	return p.View.Series.BusinessUnit != nil && *p.View.Series.BusinessUnit == unit
}

// Page GET / — cada interacción del formulario vuelve a calcular la vista completa.
func (h *DashboardHandler) Page(c *fiber.Ctx) error {
	req, err := parseSeriesRequest(c)
	if err != nil {
		return writeError(c, err)
	}
	view, err := h.dashboard.Render(c.UserContext(), req)
	if err != nil {
		return writeError(c, err)
	}

	query := selectionQuery(view.Series)
	page := dashboardPage{
		View:     view,
		Yearly:   movement.Mode(view.Series.Mode) == movement.ModeYearly,
		Years:    toSet(view.Series.Years),
		Months:   toSet(view.Series.Months),
		ChartURL: "/chart?" + query,
		PDFURL:   "/api/movements/report.pdf?" + query,
		XLSXURL:  "/api/movements/export.xlsx?" + query,
	}

	var buf bytes.Buffer
	if err := dashboardTmpl.Execute(&buf, page); err != nil {
		return writeError(c, err)
	}
	h.views.IncView("dashboard")
	c.Type("html", "utf-8")
	return c.Send(buf.Bytes())
}

// Chart GET /chart — gráfico de líneas de la serie (HTML de go-echarts).
func (h *DashboardHandler) Chart(c *fiber.Ctx) error {
	req, err := parseSeriesRequest(c)
	if err != nil {
		return writeError(c, err)
	}
	series, err := h.series.GetSeries(c.UserContext(), req)
	if err != nil {
		return writeError(c, err)
	}

	var buf bytes.Buffer
	if err := h.chart.Render(&buf, *series); err != nil {
		return writeError(c, err)
	}
	h.views.IncView("chart")
	c.Type("html", "utf-8")
	return c.Send(buf.Bytes())
}

// selectionQuery reconstruye la query string de la selección ya resuelta (con defaults),
// para que gráfico y exports muestren exactamente lo mismo que la página.
func selectionQuery(s dto.SeriesResponseDTO) string {
	q := url.Values{}
	q.Set("item", s.Item)
	q.Set("mode", s.Mode)
	q.Set("years", joinInts(s.Years))
	if movement.Mode(s.Mode) != movement.ModeYearly {
		q.Set("months", joinInts(s.Months))
	}
	if s.BusinessUnit != nil {
		q.Set("business_unit", strconv.Itoa(*s.BusinessUnit))
	}
	return q.Encode()
}

func joinInts(values []int) string {
	parts := make([]string, 0, len(values))
	for _, v := range values {
		parts = append(parts, strconv.Itoa(v))
	}
	return strings.Join(parts, ",")
}

func toSet(values []int) map[int]bool {
	s := make(map[int]bool, len(values))
	for _, v := range values {
		s[v] = true
	}
	return s
}
