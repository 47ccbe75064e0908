// Package memory implementa los repositorios sobre el conjunto cargado en memoria al arrancar.
package memory

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/painel-movimentos/internal/application/cleaning"
	"github.com/jhoicas/painel-movimentos/internal/domain"
	"github.com/jhoicas/painel-movimentos/internal/domain/entity"
)

// MovementRepository implementa repository.MovementRepository sobre un conjunto ya limpio.
type MovementRepository struct {
	ds       *entity.MovementDataset
	stats    cleaning.Stats
	loadedAt time.Time
}

// NewMovementRepository construye el repositorio. ds no puede ser nil.
func NewMovementRepository(ds *entity.MovementDataset, stats cleaning.Stats) *MovementRepository {
	return &MovementRepository{ds: ds, stats: stats, loadedAt: time.Now()}
}

// Dataset devuelve el conjunto compartido.
func (r *MovementRepository) Dataset(ctx context.Context) (*entity.MovementDataset, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if r.ds == nil {
		return nil, fmt.Errorf("memory: %w", domain.ErrDatasetUnreadable)
	}
	return r.ds, nil
}

// Stats contadores de la limpieza realizada al cargar.
func (r *MovementRepository) Stats() cleaning.Stats { return r.stats }

// LoadedAt momento de la carga.
func (r *MovementRepository) LoadedAt() time.Time { return r.loadedAt }
