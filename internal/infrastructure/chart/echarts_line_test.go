package chart_test

import (
	"bytes"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/painel-movimentos/internal/application/dto"
	"github.com/jhoicas/painel-movimentos/internal/infrastructure/chart"
)

func TestRender_MensualUnaLineaPorAño(t *testing.T) {
	s := dto.SeriesResponseDTO{
		Title: "Soma da Quantidade de ARRUELA por Mês",
		Item:  "ARRUELA",
		Mode:  "monthly",
		Points: []dto.SeriesPointDTO{
			{Year: 2023, Month: 1, Quantity: decimal.NewFromInt(4)},
			{Year: 2023, Month: 3, Quantity: decimal.NewFromInt(6)},
			{Year: 2024, Month: 1, Quantity: decimal.NewFromInt(9)},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, chart.NewLineChartRenderer("", "").Render(&buf, s))

	html := buf.String()
	assert.Contains(t, html, "ARRUELA")
	assert.Contains(t, html, `"name":"2023"`)
	assert.Contains(t, html, `"name":"2024"`)
	assert.Contains(t, html, "Soma da Quantidade")
	assert.Contains(t, html, "900px")
}

func TestRender_Anual(t *testing.T) {
	s := dto.SeriesResponseDTO{
		Title: "Soma da Quantidade de ARRUELA por Ano",
		Item:  "ARRUELA",
		Mode:  "yearly",
		Points: []dto.SeriesPointDTO{
			{Year: 2023, Quantity: decimal.NewFromInt(10)},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, chart.NewLineChartRenderer("600px", "300px").Render(&buf, s))
	assert.Contains(t, buf.String(), "Ano")
	assert.Contains(t, buf.String(), "600px")
}
