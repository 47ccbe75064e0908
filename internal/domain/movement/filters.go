// Package movement contiene las reglas de negocio puras del painel de movimentos:
// exclusión de materiales, agregación por período y ranking de materiales.
package movement

import (
	"fmt"
	"strings"

	"github.com/jhoicas/painel-movimentos/internal/domain"
)

// Mode granularidad temporal de la serie.
type Mode string

const (
	ModeMonthly Mode = "monthly"
	ModeYearly  Mode = "yearly"
)

// ParseMode acepta "monthly"/"yearly" y los alias en portugués ("mes", "ano").
// Vacío equivale a ModeMonthly.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "monthly", "mes", "mês", "mensal":
		return ModeMonthly, nil
	case "yearly", "ano", "anual":
		return ModeYearly, nil
	default:
		return "", fmt.Errorf("%w: modo de visualización %q", domain.ErrInvalidInput, s)
	}
}

// Filters selección del usuario para una agregación.
//
// Years y Months son conjuntos literales: un conjunto vacío no selecciona nada.
// Los valores por defecto ("todos") se resuelven antes, en la capa de aplicación.
type Filters struct {
	Item         string
	Mode         Mode
	Years        []int
	Months       []int // ignorado en ModeYearly
	BusinessUnit *int  // nil = sin restricción
}

type intSet map[int]struct{}

func newIntSet(values []int) intSet {
	s := make(intSet, len(values))
	for _, v := range values {
		s[v] = struct{}{}
	}
	return s
}

func (s intSet) has(v int) bool {
	_, ok := s[v]
	return ok
}
