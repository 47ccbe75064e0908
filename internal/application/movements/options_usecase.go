package movements

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/painel-movimentos/internal/application/cleaning"
	"github.com/jhoicas/painel-movimentos/internal/application/dto"
	"github.com/jhoicas/painel-movimentos/internal/domain/movement"
	"github.com/jhoicas/painel-movimentos/internal/domain/repository"
)

// LoadInfo datos de la carga que algunos repositorios conocen (memory.MovementRepository).
type LoadInfo interface {
	Stats() cleaning.Stats
	LoadedAt() time.Time
}

// OptionsUseCase valores disponibles para cada selector del painel.
type OptionsUseCase struct {
	repo repository.MovementRepository
}

// NewOptionsUseCase construye el caso de uso.
func NewOptionsUseCase(repo repository.MovementRepository) *OptionsUseCase {
	return &OptionsUseCase{repo: repo}
}

// GetOptions devuelve materiales, años, meses y unidades de negocio presentes.
func (uc *OptionsUseCase) GetOptions(ctx context.Context) (*dto.OptionsDTO, error) {
	ds, err := uc.repo.Dataset(ctx)
	if err != nil {
		return nil, fmt.Errorf("options: %w", err)
	}

	info := dto.DatasetInfoDTO{Rows: ds.Len()}
	if li, ok := uc.repo.(LoadInfo); ok {
		s := li.Stats()
		info.RawRows = s.RawRows
		info.DroppedExcluded = s.DroppedExcluded
		info.DroppedOperationType = s.DroppedOperationType
		info.InvalidDates = s.InvalidDates
		info.InvalidQuantities = s.InvalidQuantities
		info.MissingDescriptions = s.MissingDescriptions
		info.LoadedAt = li.LoadedAt().Format(time.RFC3339)
	}

	return &dto.OptionsDTO{
		Items:         ds.Items(),
		Modes:         []string{string(movement.ModeMonthly), string(movement.ModeYearly)},
		Years:         ds.Years(),
		Months:        ds.Months(),
		BusinessUnits: ds.BusinessUnits(),
		Dataset:       info,
	}, nil
}
