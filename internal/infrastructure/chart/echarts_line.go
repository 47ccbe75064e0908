// Package chart dibuja la serie agregada como gráfico de líneas (go-echarts).
package chart

import (
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/jhoicas/painel-movimentos/internal/application/dto"
	"github.com/jhoicas/painel-movimentos/internal/domain/movement"
)

const yAxisLabel = "Soma da Quantidade"

// LineChartRenderer genera una página HTML autocontenida con el gráfico.
type LineChartRenderer struct {
	width, height string
}

// NewLineChartRenderer construye el renderer con el tamaño del gráfico en CSS (ej: "900px").
func NewLineChartRenderer(width, height string) *LineChartRenderer {
	if width == "" {
		width = "900px"
	}
	if height == "" {
		height = "450px"
	}
	return &LineChartRenderer{width: width, height: height}
}

// Render escribe el gráfico de s. En modo mensual el eje X es el mes y hay una línea por
// año; en modo anual el eje X es el año y hay una sola línea.
func (r *LineChartRenderer) Render(w io.Writer, s dto.SeriesResponseDTO) error {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: s.Title,
			Width:     r.width,
			Height:    r.height,
		}),
		charts.WithTitleOpts(opts.Title{Title: s.Title}),
		charts.WithYAxisOpts(opts.YAxis{Name: yAxisLabel}),
	)

	if movement.Mode(s.Mode) == movement.ModeYearly {
		line.SetGlobalOptions(charts.WithXAxisOpts(opts.XAxis{Name: "Ano"}))
		x := make([]string, 0, len(s.Points))
		data := make([]opts.LineData, 0, len(s.Points))
		for _, p := range s.Points {
			x = append(x, strconv.Itoa(p.Year))
			data = append(data, opts.LineData{Value: p.Quantity.InexactFloat64()})
		}
		line.SetXAxis(x).AddSeries(s.Item, data)
	} else {
		line.SetGlobalOptions(charts.WithXAxisOpts(opts.XAxis{Name: "Mês"}))
		months, byYear, years := pivotMonthly(s.Points)
		x := make([]string, 0, len(months))
		for _, m := range months {
			x = append(x, strconv.Itoa(m))
		}
		line.SetXAxis(x)
		for _, y := range years {
			data := make([]opts.LineData, 0, len(months))
			for _, m := range months {
				if q, ok := byYear[y][m]; ok {
					data = append(data, opts.LineData{Value: q})
				} else {
					// "-" deja un hueco en la línea de ese año.
					data = append(data, opts.LineData{Value: "-"})
				}
			}
			line.AddSeries(strconv.Itoa(y), data)
		}
	}

	if err := line.Render(w); err != nil {
		return fmt.Errorf("chart: render: %w", err)
	}
	return nil
}

// pivotMonthly reorganiza los puntos como año → mes → cantidad.
func pivotMonthly(points []dto.SeriesPointDTO) (months []int, byYear map[int]map[int]float64, years []int) {
	byYear = map[int]map[int]float64{}
	monthSet := map[int]struct{}{}
	for _, p := range points {
		if byYear[p.Year] == nil {
			byYear[p.Year] = map[int]float64{}
			years = append(years, p.Year)
		}
		byYear[p.Year][p.Month] = p.Quantity.InexactFloat64()
		monthSet[p.Month] = struct{}{}
	}
	for m := range monthSet {
		months = append(months, m)
	}
	sort.Ints(months)
	sort.Ints(years)
	return months, byYear, years
}
