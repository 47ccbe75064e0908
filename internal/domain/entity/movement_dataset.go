package entity

import "sort"

// MovementDataset es el conjunto de movimientos limpio, construido una sola vez al
// arrancar. No expone ningún camino de mutación: los lectores concurrentes no necesitan
// sincronización.
type MovementDataset struct {
	records       []MovementRecord
	items         []string
	years         []int
	months        []int
	businessUnits []int
}

// NewMovementDataset copia los registros y precalcula los valores distintos que alimentan
// los selectores del dashboard.
func NewMovementDataset(records []MovementRecord) *MovementDataset {
	cp := make([]MovementRecord, len(records))
	copy(cp, records)

	items := map[string]struct{}{}
	years := map[int]struct{}{}
	months := map[int]struct{}{}
	units := map[int]struct{}{}
	for _, r := range cp {
		if r.HasDescription {
			items[r.MaterialDescription] = struct{}{}
		}
		if y, ok := r.Year(); ok {
			years[y] = struct{}{}
		}
		if m, ok := r.Month(); ok {
			months[m] = struct{}{}
		}
		if r.HasBusinessUnit {
			units[r.BusinessUnit] = struct{}{}
		}
	}

	return &MovementDataset{
		records:       cp,
		items:         sortedStrings(items),
		years:         sortedInts(years),
		months:        sortedInts(months),
		businessUnits: sortedInts(units),
	}
}

// Len número de movimientos.
func (d *MovementDataset) Len() int { return len(d.records) }

// Each recorre los movimientos en el orden de carga. fn recibe una copia.
func (d *MovementDataset) Each(fn func(MovementRecord)) {
	for _, r := range d.records {
		fn(r)
	}
}

// Records devuelve una copia de los movimientos.
func (d *MovementDataset) Records() []MovementRecord {
	cp := make([]MovementRecord, len(d.records))
	copy(cp, d.records)
	return cp
}

// Items descripciones de material distintas (no ausentes), en orden ascendente.
func (d *MovementDataset) Items() []string {
	out := make([]string, len(d.items))
	copy(out, d.items)
	return out
}

// HasItem indica si la descripción existe en el conjunto.
func (d *MovementDataset) HasItem(item string) bool {
	i := sort.SearchStrings(d.items, item)
	return i < len(d.items) && d.items[i] == item
}

// Years años distintos presentes, ascendentes.
func (d *MovementDataset) Years() []int { return copyInts(d.years) }

// Months meses distintos presentes, ascendentes.
func (d *MovementDataset) Months() []int { return copyInts(d.months) }

// BusinessUnits códigos de unidad de negocio presentes, ascendentes.
func (d *MovementDataset) BusinessUnits() []int { return copyInts(d.businessUnits) }

func sortedStrings(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for s := range set {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

func sortedInts(set map[int]struct{}) []int {
	out := make([]int, 0, len(set))
	for n := range set {
		out = append(out, n)
	}
	sort.Ints(out)
	return out
}

func copyInts(src []int) []int {
	out := make([]int, len(src))
	copy(out, src)
	return out
}
