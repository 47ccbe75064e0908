package movement

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/painel-movimentos/internal/domain/entity"
)

// DefaultLeaderboardSize número de materiales del ranking del painel.
const DefaultLeaderboardSize = 20

// LeaderboardEntry total movido de un material.
type LeaderboardEntry struct {
	MaterialDescription string
	Quantity            decimal.Decimal
}

// Leaderboard agrupa todo el conjunto por descripción de material, suma Quantity y devuelve
// los n materiales con mayor total, de mayor a menor. Los empates conservan el orden de
// agrupación (descripción ascendente). Los registros sin descripción no forman grupo.
func Leaderboard(ds *entity.MovementDataset, n int) []LeaderboardEntry {
	if n <= 0 {
		return []LeaderboardEntry{}
	}

	sums := map[string]decimal.Decimal{}
	ds.Each(func(r entity.MovementRecord) {
		if !r.HasDescription {
			return
		}
		sums[r.MaterialDescription] = sums[r.MaterialDescription].Add(r.QuantityOrZero())
	})

	entries := make([]LeaderboardEntry, 0, len(sums))
	for desc, q := range sums {
		entries = append(entries, LeaderboardEntry{MaterialDescription: desc, Quantity: q})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].MaterialDescription < entries[j].MaterialDescription
	})
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Quantity.GreaterThan(entries[j].Quantity)
	})

	if len(entries) > n {
		entries = entries[:n]
	}
	return entries
}
