package repository

import (
	"context"

	"github.com/jhoicas/painel-movimentos/internal/domain/entity"
)

// MovementRepository define el puerto de lectura del conjunto de movimientos.
// Las implementaciones son read-only: el conjunto se construye una vez al arrancar.
type MovementRepository interface {
	// Dataset devuelve el conjunto limpio compartido. Nunca devuelve una copia mutable.
	Dataset(ctx context.Context) (*entity.MovementDataset, error)
}
