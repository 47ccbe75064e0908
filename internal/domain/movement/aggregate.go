package movement

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/painel-movimentos/internal/domain/entity"
)

// Point un punto de la serie agregada. Month es 0 en ModeYearly.
type Point struct {
	Year     int
	Month    int
	Quantity decimal.Decimal
}

// Series puntos ordenados por (Year, Month) ascendente.
type Series []Point

// matches indica si el registro pasa el predicado de los filtros.
func (f Filters) matches(r entity.MovementRecord, years, months intSet) bool {
	if !r.HasDescription || r.MaterialDescription != f.Item {
		return false
	}
	y, ok := r.Year()
	if !ok || !years.has(y) {
		return false
	}
	if f.Mode != ModeYearly {
		m, _ := r.Month()
		if !months.has(m) {
			return false
		}
	}
	if f.BusinessUnit != nil {
		if !r.HasBusinessUnit || r.BusinessUnit != *f.BusinessUnit {
			return false
		}
	}
	return true
}

// Aggregate filtra el conjunto según f y suma Quantity por (año, mes) en ModeMonthly o por
// año en ModeYearly. Las cantidades ausentes cuentan como cero. total es la suma de todos
// los puntos de la serie.
func Aggregate(ds *entity.MovementDataset, f Filters) (Series, decimal.Decimal) {
	years := newIntSet(f.Years)
	months := newIntSet(f.Months)

	type key struct{ year, month int }
	sums := map[key]decimal.Decimal{}

	ds.Each(func(r entity.MovementRecord) {
		if !f.matches(r, years, months) {
			return
		}
		y, _ := r.Year()
		k := key{year: y}
		if f.Mode != ModeYearly {
			k.month, _ = r.Month()
		}
		sums[k] = sums[k].Add(r.QuantityOrZero())
	})

	series := make(Series, 0, len(sums))
	total := decimal.Zero
	for k, q := range sums {
		series = append(series, Point{Year: k.year, Month: k.month, Quantity: q})
		total = total.Add(q)
	}
	sort.Slice(series, func(i, j int) bool {
		if series[i].Year != series[j].Year {
			return series[i].Year < series[j].Year
		}
		return series[i].Month < series[j].Month
	})
	return series, total
}
