// Package csvsource carga el export de movimientos (texto delimitado) en un DataFrame
// de gota, respetando la codificación del archivo y los encabezados tal como vienen.
package csvsource

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/jhoicas/painel-movimentos/internal/domain"
)

// MissingTokens celdas que se cargan como valor ausente (NaN en gota).
var MissingTokens = []string{"", "NA", "NaN", "nan", "<NA>"}

// Options origen del export.
type Options struct {
	Path      string
	Delimiter rune
	Encoding  string // latin1, iso-8859-1, utf-8, windows-1252, ...
}

// Loader lee el export completo una sola vez. Sin reintentos: un fallo aquí es fatal
// para el arranque.
type Loader struct {
	opts Options
}

// NewLoader construye el loader.
func NewLoader(opts Options) *Loader {
	return &Loader{opts: opts}
}

// Load abre el archivo, lo decodifica y devuelve la tabla cruda con todas las columnas
// como texto. Los encabezados no se tocan (mojibake incluido).
func (l *Loader) Load(ctx context.Context) (dataframe.DataFrame, error) {
	if err := ctx.Err(); err != nil {
		return dataframe.DataFrame{}, err
	}

	decoder, err := Decoder(l.opts.Encoding)
	if err != nil {
		return dataframe.DataFrame{}, err
	}

	f, err := os.Open(l.opts.Path)
	if err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("%w: %v", domain.ErrDatasetUnreadable, err)
	}
	defer f.Close()

	text, err := io.ReadAll(transform.NewReader(f, decoder))
	if err != nil {
		if errors.Is(err, encoding.ErrInvalidUTF8) {
			return dataframe.DataFrame{}, fmt.Errorf("%w: %s no es %s válido", domain.ErrUnsupportedEncoding, l.opts.Path, l.opts.Encoding)
		}
		return dataframe.DataFrame{}, fmt.Errorf("%w: %v", domain.ErrDatasetUnreadable, err)
	}

	df := dataframe.ReadCSV(strings.NewReader(string(text)),
		dataframe.WithDelimiter(l.opts.Delimiter),
		dataframe.WithLazyQuotes(true), // TUBO 1/2" PVC: comilla literal dentro del campo
		dataframe.HasHeader(true),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
		dataframe.NaNValues(MissingTokens),
	)
	if df.Err != nil {
		if header, ok := headerOnly(string(text), l.opts.Delimiter); ok {
			if empty := emptyFrame(header); empty.Err == nil {
				return empty, nil
			}
		}
		return dataframe.DataFrame{}, fmt.Errorf("%w: %s: %v", domain.ErrDatasetUnreadable, l.opts.Path, df.Err)
	}
	return df, nil
}

// headerOnly devuelve el encabezado cuando el texto no tiene filas de datos.
func headerOnly(text string, delimiter rune) ([]string, bool) {
	r := csv.NewReader(strings.NewReader(text))
	r.Comma = delimiter
	r.LazyQuotes = true
	records, err := r.ReadAll()
	if err != nil || len(records) != 1 {
		return nil, false
	}
	return records[0], true
}

// emptyFrame tabla de 0 filas con las columnas del encabezado, todas de texto.
func emptyFrame(header []string) dataframe.DataFrame {
	cols := make([]series.Series, 0, len(header))
	for _, name := range header {
		cols = append(cols, series.New([]string{}, series.String, name))
	}
	return dataframe.New(cols...)
}

// Decoder resuelve el nombre de la codificación. latin1 se trata como ISO-8859-1 estricto;
// UTF-8 se valida en lugar de sustituir bytes inválidos.
func Decoder(name string) (transform.Transformer, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "latin1", "latin-1", "iso-8859-1", "iso8859-1", "l1":
		return charmap.ISO8859_1.NewDecoder(), nil
	case "utf-8", "utf8":
		return encoding.UTF8Validator, nil
	}
	enc, err := htmlindex.Get(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedEncoding, name)
	}
	if enc == unicode.UTF8 {
		return encoding.UTF8Validator, nil
	}
	return enc.NewDecoder(), nil
}
