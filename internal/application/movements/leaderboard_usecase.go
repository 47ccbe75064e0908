package movements

import (
	"context"
	"fmt"

	"github.com/jhoicas/painel-movimentos/internal/application/dto"
	"github.com/jhoicas/painel-movimentos/internal/domain/movement"
	"github.com/jhoicas/painel-movimentos/internal/domain/repository"
)

// LeaderboardUseCase ranking de los materiales más movidos sobre todo el conjunto.
// No depende de la selección del usuario.
type LeaderboardUseCase struct {
	repo repository.MovementRepository
	size int
}

// NewLeaderboardUseCase construye el caso de uso. size <= 0 usa movement.DefaultLeaderboardSize.
func NewLeaderboardUseCase(repo repository.MovementRepository, size int) *LeaderboardUseCase {
	if size <= 0 {
		size = movement.DefaultLeaderboardSize
	}
	return &LeaderboardUseCase{repo: repo, size: size}
}

// GetLeaderboard devuelve hasta size materiales ordenados por cantidad descendente.
func (uc *LeaderboardUseCase) GetLeaderboard(ctx context.Context) (*dto.LeaderboardDTO, error) {
	ds, err := uc.repo.Dataset(ctx)
	if err != nil {
		return nil, fmt.Errorf("leaderboard: %w", err)
	}

	rows := movement.Leaderboard(ds, uc.size)
	entries := make([]dto.LeaderboardEntryDTO, 0, len(rows))
	for i, r := range rows {
		entries = append(entries, dto.LeaderboardEntryDTO{
			Rank:                i + 1,
			MaterialDescription: r.MaterialDescription,
			Quantity:            r.Quantity,
		})
	}
	return &dto.LeaderboardDTO{
		Title:   fmt.Sprintf("Top %d Itens Mais Movimentados", uc.size),
		Entries: entries,
	}, nil
}
