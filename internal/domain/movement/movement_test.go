package movement_test

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/painel-movimentos/internal/domain/entity"
)

// mov arma un movimiento válido con fecha y unidad de negocio.
func mov(desc string, year, month, unit int, qty int64) entity.MovementRecord {
	return entity.MovementRecord{
		MaterialCode:        "001",
		MaterialDescription: desc,
		HasDescription:      true,
		BusinessUnit:        unit,
		HasBusinessUnit:     true,
		OperationType:       entity.OperationType1556A,
		Date:                time.Date(year, time.Month(month), 10, 0, 0, 0, 0, time.UTC),
		DateValid:           true,
		Quantity:            decimal.NewNullDecimal(decimal.NewFromInt(qty)),
	}
}

func dataset(records ...entity.MovementRecord) *entity.MovementDataset {
	return entity.NewMovementDataset(records)
}

func intPtr(n int) *int { return &n }
