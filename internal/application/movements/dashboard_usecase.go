package movements

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/painel-movimentos/internal/application/dto"
	"github.com/jhoicas/painel-movimentos/internal/domain/movement"
)

// DashboardUseCase compone la vista completa del painel para una selección:
// opciones de los selectores, ranking y serie del material elegido.
//
// Es una función pura de la selección: no guarda estado entre peticiones.
type DashboardUseCase struct {
	options     *OptionsUseCase
	leaderboard *LeaderboardUseCase
	series      *SeriesUseCase
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(options *OptionsUseCase, leaderboard *LeaderboardUseCase, series *SeriesUseCase) *DashboardUseCase {
	return &DashboardUseCase{options: options, leaderboard: leaderboard, series: series}
}

// Render construye el DashboardDTO. Sin material seleccionado se usa el primero en orden
// alfabético; si el conjunto no tiene materiales la serie queda vacía.
func (uc *DashboardUseCase) Render(ctx context.Context, req dto.SeriesRequest) (*dto.DashboardDTO, error) {
	opts, err := uc.options.GetOptions(ctx)
	if err != nil {
		return nil, fmt.Errorf("dashboard: %w", err)
	}
	board, err := uc.leaderboard.GetLeaderboard(ctx)
	if err != nil {
		return nil, fmt.Errorf("dashboard: %w", err)
	}

	if req.Item == "" && len(opts.Items) > 0 {
		req.Item = opts.Items[0]
	}

	var series *dto.SeriesResponseDTO
	if req.Item == "" {
		mode, err := movement.ParseMode(req.Mode)
		if err != nil {
			return nil, err
		}
		series = &dto.SeriesResponseDTO{
			Mode:   string(mode),
			Years:  []int{},
			Points: []dto.SeriesPointDTO{},
			Total:  decimal.Zero,
		}
	} else {
		series, err = uc.series.GetSeries(ctx, req)
		if err != nil {
			return nil, err
		}
	}

	return &dto.DashboardDTO{
		Options:     *opts,
		Leaderboard: *board,
		Series:      *series,
	}, nil
}
