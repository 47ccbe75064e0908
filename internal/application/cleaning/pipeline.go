package cleaning

import (
	"github.com/go-gota/gota/dataframe"

	"github.com/jhoicas/painel-movimentos/internal/domain/entity"
)

// Run ejecuta Clean y BuildDataset y combina los contadores.
func Run(raw dataframe.DataFrame, opts ParseOptions) (*entity.MovementDataset, Stats, error) {
	cleaned, stats, err := Clean(raw)
	if err != nil {
		return nil, stats, err
	}
	ds, parsed, err := BuildDataset(cleaned, opts)
	if err != nil {
		return nil, stats, err
	}
	stats.InvalidDates = parsed.InvalidDates
	stats.InvalidQuantities = parsed.InvalidQuantities
	stats.MissingDescriptions = parsed.MissingDescriptions
	return ds, stats, nil
}
