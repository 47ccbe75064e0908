package cleaning

import (
	"fmt"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"github.com/jhoicas/painel-movimentos/internal/domain"
	"github.com/jhoicas/painel-movimentos/internal/domain/entity"
	"github.com/jhoicas/painel-movimentos/internal/domain/movement"
)

// Stats contadores de la limpieza, para el log de arranque.
type Stats struct {
	RawRows              int `json:"raw_rows"`
	KeptRows             int `json:"kept_rows"`
	DroppedExcluded      int `json:"dropped_excluded"`
	DroppedOperationType int `json:"dropped_operation_type"`
	InvalidDates         int `json:"invalid_dates"`
	InvalidQuantities    int `json:"invalid_quantities"`
	MissingDescriptions  int `json:"missing_descriptions"`
}

// Clean aplica, sin modificar raw:
//  1. renombrado de encabezados conocidos (HeaderRenames);
//  2. descarte de la columna Movimento si existe;
//  3. exclusión de materiales cuya descripción contiene un movement.ExclusionTokens
//     (las descripciones ausentes se conservan);
//  4. filtro de Tipo de Operação a entity.AllowedOperationTypes.
//
// Aplicar Clean sobre su propia salida no cambia nada.
func Clean(raw dataframe.DataFrame) (dataframe.DataFrame, Stats, error) {
	var stats Stats
	if raw.Err != nil {
		return raw, stats, raw.Err
	}
	stats.RawRows = raw.Nrow()

	df, err := renameHeaders(raw)
	if err != nil {
		return df, stats, err
	}

	if hasColumn(df, ColMovement) {
		df = df.Drop(ColMovement)
		if df.Err != nil {
			return df, stats, fmt.Errorf("cleaning: descartar %s: %w", ColMovement, df.Err)
		}
	}

	if err := requireColumns(df, ColDescription, ColOperationType); err != nil {
		return df, stats, err
	}
	if df.Nrow() == 0 {
		return df, stats, nil
	}

	before := df.Nrow()
	df = df.Filter(dataframe.F{
		Colname:    ColDescription,
		Comparator: series.CompFunc,
		Comparando: keepDescription,
	})
	if df.Err != nil {
		return df, stats, fmt.Errorf("cleaning: filtro de exclusión: %w", df.Err)
	}
	stats.DroppedExcluded = before - df.Nrow()

	before = df.Nrow()
	df = df.Filter(dataframe.F{
		Colname:    ColOperationType,
		Comparator: series.In,
		Comparando: entity.AllowedOperationTypes(),
	})
	if df.Err != nil {
		return df, stats, fmt.Errorf("cleaning: filtro de tipo de operación: %w", df.Err)
	}
	stats.DroppedOperationType = before - df.Nrow()
	stats.KeptRows = df.Nrow()

	return df, stats, nil
}

func keepDescription(el series.Element) bool {
	if el.IsNA() {
		return true
	}
	return !movement.IsExcludedDescription(el.String())
}

func renameHeaders(df dataframe.DataFrame) (dataframe.DataFrame, error) {
	for _, r := range HeaderRenames {
		// Si el nombre canónico ya existe, el renombrado ya se hizo.
		if !hasColumn(df, r.from) || hasColumn(df, r.to) {
			continue
		}
		df = df.Rename(r.to, r.from)
		if df.Err != nil {
			return df, fmt.Errorf("cleaning: renombrar %q: %w", r.from, df.Err)
		}
	}
	return df, nil
}

func hasColumn(df dataframe.DataFrame, name string) bool {
	for _, n := range df.Names() {
		if n == name {
			return true
		}
	}
	return false
}

// requireColumns informa todas las columnas ausentes de una vez.
func requireColumns(df dataframe.DataFrame, names ...string) error {
	var missing []string
	for _, n := range names {
		if !hasColumn(df, n) {
			missing = append(missing, n)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s (encabezados: %s)", domain.ErrMissingColumn,
			strings.Join(missing, ", "), strings.Join(df.Names(), ", "))
	}
	return nil
}
