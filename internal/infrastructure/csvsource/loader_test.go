package csvsource_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/painel-movimentos/internal/application/cleaning"
	"github.com/jhoicas/painel-movimentos/internal/domain"
	"github.com/jhoicas/painel-movimentos/internal/infrastructure/csvsource"
)

const exportUTF8 = "Data;Descrição do Material;Tipo de Operação;Qtd;Movimento\n" +
	"2023-01-15;BOLT;1556A;10;M-1\n" +
	"2023-01-20;;2556A;;M-2\n"

func writeFile(t *testing.T, content []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "movimentos.csv")
	require.NoError(t, os.WriteFile(path, content, 0o600))
	return path
}

// Un export UTF-8 leído como latin1 produce los encabezados con mojibake.
func TestLoader_Latin1ConservaEncabezados(t *testing.T) {
	path := writeFile(t, []byte(exportUTF8))

	df, err := csvsource.NewLoader(csvsource.Options{Path: path, Delimiter: ';', Encoding: "latin1"}).
		Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"Data", "DescriÃ§Ã£o do Material", "Tipo de OperaÃ§Ã£o", "Qtd", "Movimento"}, df.Names())
	assert.Equal(t, 2, df.Nrow())
	assert.True(t, df.Elem(1, 1).IsNA(), "celda vacía como ausente")
	assert.Equal(t, "10", df.Elem(0, 3).String())
}

func TestLoader_UTF8(t *testing.T) {
	path := writeFile(t, []byte(exportUTF8))

	df, err := csvsource.NewLoader(csvsource.Options{Path: path, Delimiter: ';', Encoding: "utf-8"}).
		Load(context.Background())
	require.NoError(t, err)
	assert.Contains(t, df.Names(), "Descrição do Material")
}

func TestLoader_CodigoComoTexto(t *testing.T) {
	path := writeFile(t, []byte("Codigo;Qtd\n000123;1\n"))

	df, err := csvsource.NewLoader(csvsource.Options{Path: path, Delimiter: ';', Encoding: "latin1"}).
		Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "000123", df.Elem(0, 0).String())
}

// Comilla suelta dentro de una descripción (pulgadas): se conserva como texto.
func TestLoader_ComillaLiteralEnDescripcion(t *testing.T) {
	path := writeFile(t, []byte("Data;Descrição do Material;Qtd\n"+
		"2023-01-01;TUBO 1/2\" PVC;3\n"+
		"2023-01-02;BOLT;1\n"))

	df, err := csvsource.NewLoader(csvsource.Options{Path: path, Delimiter: ';', Encoding: "utf-8"}).
		Load(context.Background())
	require.NoError(t, err)

	require.Equal(t, 2, df.Nrow())
	assert.Equal(t, `TUBO 1/2" PVC`, df.Elem(0, 1).String())
	assert.Equal(t, "3", df.Elem(0, 2).String())
}

const headerUTF8 = "Data;Código do Material;Descrição do Material;Unidade de Negócio;" +
	"Empresa;Nome Completo;Tipo de Operação;Qtd;Movimento\n"

// Un export sólo con encabezado es válido: conjunto vacío, no error de carga.
func TestLoader_SoloEncabezado(t *testing.T) {
	path := writeFile(t, []byte(headerUTF8))

	df, err := csvsource.NewLoader(csvsource.Options{Path: path, Delimiter: ';', Encoding: "latin1"}).
		Load(context.Background())
	require.NoError(t, err)
	assert.Zero(t, df.Nrow())
	assert.Contains(t, df.Names(), "DescriÃ§Ã£o do Material")

	ds, stats, err := cleaning.Run(df, cleaning.ParseOptions{})
	require.NoError(t, err)
	assert.Zero(t, ds.Len())
	assert.Empty(t, ds.Items())
	assert.Zero(t, stats.RawRows)
}

func TestLoader_SoloEncabezadoSinColumnasRequeridas(t *testing.T) {
	path := writeFile(t, []byte("Data;Qtd\n"))

	df, err := csvsource.NewLoader(csvsource.Options{Path: path, Delimiter: ';', Encoding: "utf-8"}).
		Load(context.Background())
	require.NoError(t, err)

	_, _, err = cleaning.Run(df, cleaning.ParseOptions{})
	assert.ErrorIs(t, err, domain.ErrMissingColumn)
}

func TestLoader_ArchivoVacio(t *testing.T) {
	path := writeFile(t, []byte{})

	_, err := csvsource.NewLoader(csvsource.Options{Path: path, Delimiter: ';', Encoding: "utf-8"}).
		Load(context.Background())
	assert.ErrorIs(t, err, domain.ErrDatasetUnreadable)
}

func TestLoader_ArchivoInexistente(t *testing.T) {
	_, err := csvsource.NewLoader(csvsource.Options{
		Path:      filepath.Join(t.TempDir(), "no-existe.csv"),
		Delimiter: ';',
		Encoding:  "latin1",
	}).Load(context.Background())

	assert.ErrorIs(t, err, domain.ErrDatasetUnreadable)
}

func TestLoader_UTF8Invalido(t *testing.T) {
	path := writeFile(t, []byte("Data;Qtd\n2023-01-01;\xff\n"))

	_, err := csvsource.NewLoader(csvsource.Options{Path: path, Delimiter: ';', Encoding: "utf-8"}).
		Load(context.Background())

	assert.ErrorIs(t, err, domain.ErrUnsupportedEncoding)
}

func TestLoader_ContextoCancelado(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := csvsource.NewLoader(csvsource.Options{Path: "x.csv", Delimiter: ';', Encoding: "latin1"}).Load(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDecoder(t *testing.T) {
	for _, name := range []string{"latin1", "ISO-8859-1", "utf-8", "windows-1252"} {
		_, err := csvsource.Decoder(name)
		assert.NoError(t, err, name)
	}

	_, err := csvsource.Decoder("klingon")
	assert.ErrorIs(t, err, domain.ErrUnsupportedEncoding)
}
