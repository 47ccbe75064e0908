package movements

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/painel-movimentos/internal/application/dto"
	"github.com/jhoicas/painel-movimentos/internal/domain"
	"github.com/jhoicas/painel-movimentos/internal/domain/movement"
	"github.com/jhoicas/painel-movimentos/internal/domain/repository"
)

// SeriesUseCase calcula la serie temporal de un material para la selección del usuario.
//
// Valores por defecto: todos los años y todos los meses presentes en el conjunto cuando
// el parámetro no se envía; modo mensual.
type SeriesUseCase struct {
	repo     repository.MovementRepository
	recorder Recorder
}

// NewSeriesUseCase construye el caso de uso. recorder puede ser nil.
func NewSeriesUseCase(repo repository.MovementRepository, recorder Recorder) *SeriesUseCase {
	if recorder == nil {
		recorder = noopRecorder{}
	}
	return &SeriesUseCase{repo: repo, recorder: recorder}
}

// GetSeries valida la selección, resuelve los valores por defecto y agrega.
func (uc *SeriesUseCase) GetSeries(ctx context.Context, req dto.SeriesRequest) (*dto.SeriesResponseDTO, error) {
	mode, err := movement.ParseMode(req.Mode)
	if err != nil {
		return nil, err
	}
	// En modo anual los meses no filtran: tampoco se validan.
	if mode == movement.ModeYearly {
		req.Months, req.MonthsSet = nil, false
	}
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	ds, err := uc.repo.Dataset(ctx)
	if err != nil {
		return nil, fmt.Errorf("series: %w", err)
	}
	if !ds.HasItem(req.Item) {
		return nil, fmt.Errorf("%w: material %q", domain.ErrNotFound, req.Item)
	}

	f := movement.Filters{
		Item:         req.Item,
		Mode:         mode,
		Years:        req.Years,
		BusinessUnit: req.BusinessUnit,
	}
	if !req.YearsSet {
		f.Years = ds.Years()
	}
	if mode == movement.ModeMonthly {
		f.Months = req.Months
		if !req.MonthsSet {
			f.Months = ds.Months()
		}
	}

	start := time.Now()
	series, total := movement.Aggregate(ds, f)
	uc.recorder.ObserveAggregation(string(mode), time.Since(start))

	return toSeriesDTO(f, series, total), nil
}

func toSeriesDTO(f movement.Filters, series movement.Series, total decimal.Decimal) *dto.SeriesResponseDTO {
	points := make([]dto.SeriesPointDTO, 0, len(series))
	for _, p := range series {
		points = append(points, dto.SeriesPointDTO{
			Year:     p.Year,
			Month:    p.Month,
			Label:    periodLabel(f.Mode, p),
			Quantity: p.Quantity,
		})
	}
	return &dto.SeriesResponseDTO{
		Title:        SeriesTitle(f.Item, f.Mode),
		Item:         f.Item,
		Mode:         string(f.Mode),
		Years:        nonNil(f.Years),
		Months:       f.Months,
		BusinessUnit: f.BusinessUnit,
		Points:       points,
		Total:        total,
	}
}

// SeriesTitle título del gráfico según el modo.
func SeriesTitle(item string, mode movement.Mode) string {
	if mode == movement.ModeYearly {
		return fmt.Sprintf("Soma da Quantidade de %s por Ano", item)
	}
	return fmt.Sprintf("Soma da Quantidade de %s por Mês", item)
}

func periodLabel(mode movement.Mode, p movement.Point) string {
	if mode == movement.ModeYearly {
		return fmt.Sprintf("%d", p.Year)
	}
	return fmt.Sprintf("%d-%02d", p.Year, p.Month)
}

func nonNil(v []int) []int {
	if v == nil {
		return []int{}
	}
	return v
}
