// Package xlsx exporta la vista del painel a una planilla Excel.
package xlsx

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/painel-movimentos/internal/application/dto"
)

// Nombres de las hojas generadas.
const (
	SheetSeries      = "Serie"
	SheetLeaderboard = "Top Itens"
)

// ExcelizeExporter genera el .xlsx con una hoja para la serie y otra para el ranking.
type ExcelizeExporter struct{}

// NewExcelizeExporter construye el exportador.
func NewExcelizeExporter() *ExcelizeExporter { return &ExcelizeExporter{} }

// ExportDashboard devuelve los bytes del libro.
func (e *ExcelizeExporter) ExportDashboard(_ context.Context, view *dto.DashboardDTO) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetSeries); err != nil {
		return nil, fmt.Errorf("xlsx: hoja %s: %w", SheetSeries, err)
	}
	if err := writeSeries(f, view.Series); err != nil {
		return nil, err
	}

	if _, err := f.NewSheet(SheetLeaderboard); err != nil {
		return nil, fmt.Errorf("xlsx: hoja %s: %w", SheetLeaderboard, err)
	}
	if err := writeLeaderboard(f, view.Leaderboard); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx: escribir libro: %w", err)
	}
	return buf.Bytes(), nil
}

func writeSeries(f *excelize.File, s dto.SeriesResponseDTO) error {
	rows := [][]any{
		{s.Title},
		{"Ano", "Mês", "Período", "Soma da Quantidade"},
	}
	for _, p := range s.Points {
		var month any
		if p.Month > 0 {
			month = p.Month
		}
		rows = append(rows, []any{p.Year, month, p.Label, p.Quantity.InexactFloat64()})
	}
	rows = append(rows, []any{"Quantidade Total Selecionada", nil, nil, s.Total.InexactFloat64()})
	return writeRows(f, SheetSeries, rows)
}

func writeLeaderboard(f *excelize.File, b dto.LeaderboardDTO) error {
	rows := [][]any{
		{b.Title},
		{"#", "Descrição do Material", "Quantidade"},
	}
	for _, e := range b.Entries {
		rows = append(rows, []any{e.Rank, e.MaterialDescription, e.Quantity.InexactFloat64()})
	}
	return writeRows(f, SheetLeaderboard, rows)
}

func writeRows(f *excelize.File, sheet string, rows [][]any) error {
	for i, r := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return fmt.Errorf("xlsx: celda: %w", err)
		}
		if err := f.SetSheetRow(sheet, cell, &r); err != nil {
			return fmt.Errorf("xlsx: fila %d de %s: %w", i+1, sheet, err)
		}
	}
	return nil
}
