// Package pdf genera el informe PDF del painel de movimentos.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: título de la serie  │  fecha de generación          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  SELECCIÓN: modo / años / meses / unidad de negocio          │
//	│  MÉTRICA: Quantidade Total Selecionada                       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA SERIE: Período | Quantidade                           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA RANKING: # | Descrição do Material | Quantidade       │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

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

	"github.com/jhoicas/painel-movimentos/internal/application/dto"
	"github.com/jhoicas/painel-movimentos/pkg/format"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReportGenerator genera el informe del dashboard usando Maroto v2.
type MarotoReportGenerator struct {
	now func() time.Time
}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator {
	return &MarotoReportGenerator{now: time.Now}
}

// GenerateDashboardPDF genera el PDF de la vista y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateDashboardPDF(_ context.Context, view *dto.DashboardDTO) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Movimentação de Itens por Período", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(view.Series, g.now()))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(selectionRow(view.Series))
	m.AddRows(totalRow(view.Series.Total))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow(
		headerCell{"Período", 6, align.Left},
		headerCell{"Soma da Quantidade", 6, align.Right},
	))
	for _, r := range seriesRows(view.Series.Points) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(4))
	m.AddRows(sectionTitleRow(view.Leaderboard.Title))
	m.AddRows(tableHeaderRow(
		headerCell{"#", 1, align.Center},
		headerCell{"Descrição do Material", 8, align.Left},
		headerCell{"Quantidade", 3, align.Right},
	))
	for _, r := range leaderboardRows(view.Leaderboard.Entries) {
		m.AddRows(r)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(s dto.SeriesResponseDTO, now time.Time) core.Row {
	title := s.Title
	if title == "" {
		title = "Movimentação de Itens por Período"
	}
	return row.New(14).Add(
		col.New(9).Add(
			text.New(title, props.Text{
				Style: fontstyle.Bold, Size: 12, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(3).Add(
			text.New("Gerado em "+now.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 2, Color: colorGray,
			}),
		),
	)
}

func selectionRow(s dto.SeriesResponseDTO) core.Row {
	unit := "todas"
	if s.BusinessUnit != nil {
		unit = strconv.Itoa(*s.BusinessUnit)
	}
	parts := []string{
		"Visualização: " + modeLabel(s.Mode),
		"Anos: " + joinInts(s.Years),
	}
	if s.Mode != "yearly" {
		parts = append(parts, "Meses: "+joinInts(s.Months))
	}
	parts = append(parts, "Unidade de Negócio: "+unit)

	return row.New(10).Add(col.New(12).Add(
		text.New(strings.Join(parts, "   |   "), props.Text{Size: 8, Top: 2, Color: colorGray}),
	))
}

func totalRow(total decimal.Decimal) core.Row {
	return row.New(12).Add(
		col.New(8).Add(text.New("Quantidade Total Selecionada:", props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 2, Right: 2,
		})),
		col.New(4).Add(text.New(format.Quantity(total), props.Text{
			Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 1.5, Color: colorPrimary,
		})),
	)
}

func sectionTitleRow(title string) core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(title, props.Text{Style: fontstyle.Bold, Size: 10, Color: colorPrimary, Top: 1}),
	))
}

type headerCell struct {
	label string
	size  int
	align align.Type
}

func tableHeaderRow(cells ...headerCell) core.Row {
	cols := make([]core.Col, 0, len(cells))
	for _, c := range cells {
		cols = append(cols, col.New(c.size).Add(text.New(c.label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: c.align,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		})))
	}
	return row.New(8).Add(cols...)
}

func seriesRows(points []dto.SeriesPointDTO) []core.Row {
	result := make([]core.Row, 0, len(points))
	for _, p := range points {
		result = append(result, row.New(6).Add(
			col.New(6).Add(text.New(p.Label, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(6).Add(text.New(format.Quantity(p.Quantity), props.Text{
				Size: 8, Align: align.Right, Top: 1, Right: 1,
			})),
		))
	}
	return result
}

func leaderboardRows(entries []dto.LeaderboardEntryDTO) []core.Row {
	result := make([]core.Row, 0, len(entries))
	for _, e := range entries {
		result = append(result, row.New(6).Add(
			col.New(1).Add(text.New(strconv.Itoa(e.Rank), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(8).Add(text.New(e.MaterialDescription, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(3).Add(text.New(format.Quantity(e.Quantity), props.Text{
				Size: 8, Align: align.Right, Top: 1, Right: 1,
			})),
		))
	}
	return result
}

// ── helpers ───────────────────────────────────────────────────────────────────

func modeLabel(mode string) string {
	if mode == "yearly" {
		return "Por Ano"
	}
	return "Por Mês"
}

func joinInts(values []int) string {
	if len(values) == 0 {
		return "-"
	}
	parts := make([]string, 0, len(values))
	for _, v := range values {
		parts = append(parts, strconv.Itoa(v))
	}
	return strings.Join(parts, ", ")
}
