package cleaning_test

import (
	"testing"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/painel-movimentos/internal/application/cleaning"
	"github.com/jhoicas/painel-movimentos/internal/domain"
	"github.com/jhoicas/painel-movimentos/internal/domain/entity"
	"github.com/jhoicas/painel-movimentos/internal/domain/movement"
	"github.com/jhoicas/painel-movimentos/internal/infrastructure/csvsource"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// rawHeader encabezados tal como llegan del export (UTF-8 leído como latin1).
var rawHeader = []string{
	"Data", "CÃ³digo do Material", "DescriÃ§Ã£o do Material", "Unidade de NegÃ³cio",
	"Empresa", "Nome Completo", "Tipo de OperaÃ§Ã£o", "Qtd", "Movimento",
}

// row arma una fila en el orden de rawHeader.
func row(date, code, desc, unit, op, qty string) []string {
	return []string{date, code, desc, unit, "10", "ACME LTDA", op, qty, "M-1"}
}

func rawTable(t *testing.T, rows ...[]string) dataframe.DataFrame {
	t.Helper()
	records := append([][]string{rawHeader}, rows...)
	df := dataframe.LoadRecords(records,
		dataframe.HasHeader(true),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
		dataframe.NaNValues(csvsource.MissingTokens),
	)
	require.NoError(t, df.Err)
	return df
}

func buildDataset(t *testing.T, rows ...[]string) (*entity.MovementDataset, cleaning.Stats) {
	t.Helper()
	ds, stats, err := cleaning.Run(rawTable(t, rows...), cleaning.ParseOptions{})
	require.NoError(t, err)
	return ds, stats
}

// ──────────────────────────────────────────────────────────────────────────────
// Clean
// ──────────────────────────────────────────────────────────────────────────────

func TestClean_RenombraEncabezadosYDescartaMovimento(t *testing.T) {
	df, _, err := cleaning.Clean(rawTable(t, row("2023-01-10", "001", "BOLT", "1", "1556A", "10")))
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{
		cleaning.ColDate, cleaning.ColMaterialCode, cleaning.ColDescription, cleaning.ColBusinessUnit,
		cleaning.ColCompanyCode, cleaning.ColCompanyName, cleaning.ColOperationType, cleaning.ColQuantity,
	}, df.Names())
}

func TestClean_NoModificaLaTablaOriginal(t *testing.T) {
	raw := rawTable(t,
		row("2023-01-10", "001", "BOLT", "1", "1556A", "10"),
		row("2023-01-10", "002", "NUT", "1", "9999", "5"),
	)
	_, _, err := cleaning.Clean(raw)
	require.NoError(t, err)

	assert.Equal(t, rawHeader, raw.Names())
	assert.Equal(t, 2, raw.Nrow())
}

func TestClean_SoloTiposDeOperacionPermitidos(t *testing.T) {
	df, stats, err := cleaning.Clean(rawTable(t,
		row("2023-01-10", "001", "BOLT", "1", "1556A", "10"),
		row("2023-01-10", "001", "BOLT", "1", "2556A", "3"),
		row("2023-01-10", "001", "BOLT", "1", "9999", "5"),
		row("2023-01-10", "001", "BOLT", "1", "1556a", "5"),
		row("2023-01-10", "001", "BOLT", "1", "", "5"),
	))
	require.NoError(t, err)

	assert.Equal(t, 2, df.Nrow())
	assert.Equal(t, 3, stats.DroppedOperationType)
	for _, op := range df.Col(cleaning.ColOperationType).Records() {
		assert.Contains(t, entity.AllowedOperationTypes(), op)
	}
}

func TestClean_ExcluyeDescripcionesMarcadas(t *testing.T) {
	df, stats, err := cleaning.Clean(rawTable(t,
		row("2023-01-10", "001", "WIDGET INATIVADO", "1", "1556A", "10"),
		row("2023-01-10", "002", "cabo inativo 2m", "1", "1556A", "10"),
		row("2023-01-10", "003", "Prestacao de Servicos PJ", "1", "2556A", "10"),
		row("2023-01-10", "004", "PRESTACAO DE SERVICOS CONTABEIS", "1", "1556A", "10"),
		row("2023-01-10", "005", "ERRO DE CADASTRO", "1", "1556A", "10"),
		row("2023-01-10", "006", "BOLT", "1", "1556A", "10"),
	))
	require.NoError(t, err)

	assert.Equal(t, 5, stats.DroppedExcluded)
	assert.Equal(t, []string{"BOLT"}, df.Col(cleaning.ColDescription).Records())
	for _, d := range df.Col(cleaning.ColDescription).Records() {
		assert.False(t, movement.IsExcludedDescription(d))
	}
}

func TestClean_ConservaDescripcionAusente(t *testing.T) {
	ds, stats := buildDataset(t,
		row("2023-01-10", "001", "", "1", "1556A", "10"),
		row("2023-01-10", "002", "BOLT", "1", "1556A", "4"),
	)

	assert.Equal(t, 2, ds.Len())
	assert.Equal(t, 1, stats.MissingDescriptions)
	assert.Equal(t, []string{"BOLT"}, ds.Items())
}

func TestClean_EsIdempotente(t *testing.T) {
	once, _, err := cleaning.Clean(rawTable(t,
		row("2023-01-10", "001", "BOLT", "1", "1556A", "10"),
		row("2023-02-10", "002", "NUT INATIVO", "1", "1556A", "10"),
		row("2023-03-10", "003", "WASHER", "2", "2556A", "abc"),
		row("2023-03-10", "004", "SCREW", "2", "0001", "1"),
	))
	require.NoError(t, err)

	twice, stats, err := cleaning.Clean(once)
	require.NoError(t, err)

	assert.Equal(t, once.Names(), twice.Names())
	assert.Equal(t, once.Records(), twice.Records())
	assert.Zero(t, stats.DroppedExcluded)
	assert.Zero(t, stats.DroppedOperationType)
}

func TestClean_ColumnaRequeridaAusente(t *testing.T) {
	df := dataframe.LoadRecords([][]string{
		{"Data", "Qtd"},
		{"2023-01-10", "1"},
	}, dataframe.DetectTypes(false), dataframe.DefaultType(series.String))

	_, _, err := cleaning.Clean(df)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrMissingColumn)
	assert.Contains(t, err.Error(), cleaning.ColDescription)
}

func TestBuildDataset_ColumnasCanonicasAusentes(t *testing.T) {
	df := dataframe.LoadRecords([][]string{
		{"DescriÃ§Ã£o do Material", "Tipo de OperaÃ§Ã£o", "Qtd"},
		{"BOLT", "1556A", "1"},
	}, dataframe.DetectTypes(false), dataframe.DefaultType(series.String))

	_, _, err := cleaning.Run(df, cleaning.ParseOptions{})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrMissingColumn)
	assert.Contains(t, err.Error(), cleaning.ColDate)
	assert.Contains(t, err.Error(), cleaning.ColMaterialCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// BuildDataset
// ──────────────────────────────────────────────────────────────────────────────

// Escenario: dos filas de BOLT, una con código de operación excluido.
func TestBuildDataset_EscenarioBolt(t *testing.T) {
	ds, _ := buildDataset(t,
		row("2023-01-15", "001", "BOLT", "1", "1556A", "10"),
		row("2023-01-20", "001", "BOLT", "1", "9999", "5"),
	)
	require.Equal(t, 1, ds.Len())

	points, total := movement.Aggregate(ds, movement.Filters{
		Item: "BOLT", Mode: movement.ModeMonthly, Years: []int{2023}, Months: []int{1},
	})
	require.Len(t, points, 1)
	assert.Equal(t, 2023, points[0].Year)
	assert.Equal(t, 1, points[0].Month)
	assert.True(t, points[0].Quantity.Equal(decimal.NewFromInt(10)))
	assert.True(t, total.Equal(decimal.NewFromInt(10)))
}

// Escenario: cantidad "abc" → fila conservada, cantidad ausente, suma 0.
func TestBuildDataset_CantidadInvalidaQuedaAusente(t *testing.T) {
	ds, stats := buildDataset(t,
		row("2023-01-15", "001", "BOLT", "1", "1556A", "abc"),
		row("2023-01-16", "001", "BOLT", "1", "1556A", "7"),
	)
	require.Equal(t, 2, ds.Len())
	assert.Equal(t, 1, stats.InvalidQuantities)

	recs := ds.Records()
	assert.False(t, recs[0].Quantity.Valid)
	assert.True(t, recs[0].QuantityOrZero().IsZero())

	_, total := movement.Aggregate(ds, movement.Filters{
		Item: "BOLT", Mode: movement.ModeYearly, Years: []int{2023},
	})
	assert.True(t, total.Equal(decimal.NewFromInt(7)))
}

func TestBuildDataset_FechaInvalidaQuedaAusente(t *testing.T) {
	ds, stats := buildDataset(t,
		row("31/02/2023", "001", "BOLT", "1", "1556A", "1"),
		row("no es fecha", "001", "BOLT", "1", "1556A", "1"),
		row("15/03/2023", "001", "BOLT", "1", "1556A", "1"),
	)
	require.Equal(t, 3, ds.Len())
	assert.Equal(t, 2, stats.InvalidDates)

	recs := ds.Records()
	_, ok := recs[0].Year()
	assert.False(t, ok)
	_, ok = recs[1].Month()
	assert.False(t, ok)
	y, _ := recs[2].Year()
	m, _ := recs[2].Month()
	assert.Equal(t, 2023, y)
	assert.Equal(t, 3, m)
	assert.Equal(t, []int{2023}, ds.Years())
}

func TestBuildDataset_CodigoDeMaterialComoTexto(t *testing.T) {
	ds, _ := buildDataset(t, row("2023-01-15", "000123", "BOLT", "1", "1556A", "1"))
	assert.Equal(t, "000123", ds.Records()[0].MaterialCode)
}

func TestBuildDataset_UnidadDeNegocio(t *testing.T) {
	ds, _ := buildDataset(t,
		row("2023-01-15", "001", "BOLT", "1", "1556A", "1"),
		row("2023-01-15", "001", "BOLT", "2.0", "1556A", "1"),
		row("2023-01-15", "001", "BOLT", "", "1556A", "1"),
	)
	recs := ds.Records()
	assert.Equal(t, 1, recs[0].BusinessUnit)
	assert.Equal(t, 2, recs[1].BusinessUnit)
	assert.True(t, recs[1].HasBusinessUnit)
	assert.False(t, recs[2].HasBusinessUnit)
	assert.Equal(t, []int{1, 2}, ds.BusinessUnits())
}

func TestParseQuantity(t *testing.T) {
	cases := []struct {
		in           string
		decimalComma bool
		want         string
		valid        bool
	}{
		{"10", false, "10", true},
		{" 2.5 ", false, "2.5", true},
		{"-3", false, "-3", true},
		{"abc", false, "", false},
		{"1,5", false, "", false},
		{"1.234,5", true, "1234.5", true},
		{"1234,5", true, "1234.5", true},
		{"1.234", true, "1234", true},
		{"-2,25", true, "-2.25", true},
		{"1.5", true, "", false},
		{"12.34,5", true, "", false},
		{"", false, "", false},
	}
	for _, tc := range cases {
		got := cleaning.ParseQuantity(tc.in, tc.decimalComma)
		assert.Equal(t, tc.valid, got.Valid, tc.in)
		if tc.valid {
			assert.Equal(t, tc.want, got.Decimal.String(), tc.in)
		}
	}
}

func TestParseDate_PruebaLayoutsEnOrden(t *testing.T) {
	d, ok := cleaning.ParseDate("2024-08-01", cleaning.DefaultDateLayouts)
	require.True(t, ok)
	assert.Equal(t, 8, int(d.Month()))

	d, ok = cleaning.ParseDate("01/08/2024 10:30:00", cleaning.DefaultDateLayouts)
	require.True(t, ok)
	assert.Equal(t, 8, int(d.Month()))
	assert.Equal(t, 1, d.Day())

	d, ok = cleaning.ParseDate("2024-08-01T10:30:00", cleaning.DefaultDateLayouts)
	require.True(t, ok)
	assert.Equal(t, 10, d.Hour())

	d, ok = cleaning.ParseDate("2024-08-01 10:30", cleaning.DefaultDateLayouts)
	require.True(t, ok)
	assert.Equal(t, 30, d.Minute())

	_, ok = cleaning.ParseDate("", cleaning.DefaultDateLayouts)
	assert.False(t, ok)
}
