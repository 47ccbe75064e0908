package cleaning

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/painel-movimentos/internal/domain/entity"
)

// DefaultDateLayouts formatos de fecha probados en orden.
var DefaultDateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"02/01/2006",
	"02/01/2006 15:04:05",
	"02/01/2006 15:04",
}

// ParseOptions reglas de conversión de texto a valores tipados.
type ParseOptions struct {
	DateLayouts  []string
	DecimalComma bool // "1.234,5" → 1234.5
}

func (o ParseOptions) layouts() []string {
	if len(o.DateLayouts) == 0 {
		return DefaultDateLayouts
	}
	return o.DateLayouts
}

// BuildDataset convierte la tabla limpia en un conjunto tipado e inmutable. Fechas y
// cantidades no parseables quedan marcadas como ausentes; la fila se conserva.
// Devuelve domain.ErrMissingColumn si falta alguna de RequiredColumns.
func BuildDataset(df dataframe.DataFrame, opts ParseOptions) (*entity.MovementDataset, Stats, error) {
	var stats Stats
	if df.Err != nil {
		return nil, stats, df.Err
	}
	if err := requireColumns(df, RequiredColumns...); err != nil {
		return nil, stats, err
	}

	var (
		dates  = df.Col(ColDate)
		codes  = df.Col(ColMaterialCode)
		descs  = df.Col(ColDescription)
		units  = df.Col(ColBusinessUnit)
		ops    = df.Col(ColOperationType)
		cCodes = df.Col(ColCompanyCode)
		cNames = df.Col(ColCompanyName)
		qtys   = df.Col(ColQuantity)
	)

	layouts := opts.layouts()
	records := make([]entity.MovementRecord, 0, df.Nrow())
	for i := 0; i < df.Nrow(); i++ {
		r := entity.MovementRecord{
			MaterialCode:  cell(codes, i),
			CompanyCode:   cell(cCodes, i),
			CompanyName:   cell(cNames, i),
			OperationType: cell(ops, i),
		}

		if d, ok := present(descs, i); ok {
			r.MaterialDescription = d
			r.HasDescription = true
		} else {
			stats.MissingDescriptions++
		}

		if u, ok := present(units, i); ok {
			r.BusinessUnit, r.HasBusinessUnit = ParseBusinessUnit(u)
		}

		if d, ok := present(dates, i); ok {
			r.Date, r.DateValid = ParseDate(d, layouts)
		}
		if !r.DateValid {
			stats.InvalidDates++
		}

		if q, ok := present(qtys, i); ok {
			r.Quantity = ParseQuantity(q, opts.DecimalComma)
		}
		if !r.Quantity.Valid {
			stats.InvalidQuantities++
		}

		records = append(records, r)
	}

	stats.KeptRows = len(records)
	return entity.NewMovementDataset(records), stats, nil
}

// ParseDate prueba los layouts en orden; ok=false si ninguno aplica.
func ParseDate(s string, layouts []string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// ptBRNumber número con punto de miles opcional y coma decimal: "1.234,5", "1234,5", "12".
var ptBRNumber = regexp.MustCompile(`^[+-]?(\d{1,3}(\.\d{3})+|\d+)(,\d+)?$`)

// ParseQuantity convierte el texto en decimal; Valid=false si no es numérico.
//
// Con decimalComma el punto sólo se acepta como separador de miles (grupos de tres
// dígitos): "1.234" es 1234 y "1.5" es inválido.
func ParseQuantity(s string, decimalComma bool) decimal.NullDecimal {
	s = strings.TrimSpace(s)
	if decimalComma {
		if !ptBRNumber.MatchString(s) {
			return decimal.NullDecimal{}
		}
		s = strings.ReplaceAll(s, ".", "")
		s = strings.Replace(s, ",", ".", 1)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(d)
}

// ParseBusinessUnit acepta "1" y también "1.0" (columna exportada como número).
func ParseBusinessUnit(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		return n, true
	}
	d, err := decimal.NewFromString(s)
	if err != nil || !d.IsInteger() {
		return 0, false
	}
	return int(d.IntPart()), true
}

// cell texto de la celda; las celdas ausentes devuelven "".
func cell(s series.Series, i int) string {
	v, _ := present(s, i)
	return v
}

func present(s series.Series, i int) (string, bool) {
	el := s.Elem(i)
	if el.IsNA() {
		return "", false
	}
	return el.String(), true
}
