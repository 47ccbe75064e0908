package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de operación que entran en el painel de movimentos.
const (
	OperationType1556A = "1556A"
	OperationType2556A = "2556A"
)

// AllowedOperationTypes devuelve los códigos de operación conservados por la limpieza.
func AllowedOperationTypes() []string {
	return []string{OperationType1556A, OperationType2556A}
}

// MovementRecord representa una fila del export de movimientos ya limpia.
//
// Los campos con marca de validez (DateValid, HasDescription, HasBusinessUnit,
// Quantity.Valid) distinguen el valor "ausente" del cero o del texto vacío.
type MovementRecord struct {
	MaterialCode        string // siempre texto, aunque parezca numérico
	MaterialDescription string
	HasDescription      bool
	BusinessUnit        int
	HasBusinessUnit     bool
	CompanyCode         string
	CompanyName         string
	OperationType       string
	Date                time.Time
	DateValid           bool
	Quantity            decimal.NullDecimal // Valid=false si el valor de origen no era numérico
}

// Year devuelve el año derivado de Date; ok=false cuando la fecha está ausente.
func (r MovementRecord) Year() (int, bool) {
	if !r.DateValid {
		return 0, false
	}
	return r.Date.Year(), true
}

// Month devuelve el mes (1-12) derivado de Date; ok=false cuando la fecha está ausente.
func (r MovementRecord) Month() (int, bool) {
	if !r.DateValid {
		return 0, false
	}
	return int(r.Date.Month()), true
}

// QuantityOrZero devuelve la cantidad, o cero si está ausente.
func (r MovementRecord) QuantityOrZero() decimal.Decimal {
	if !r.Quantity.Valid {
		return decimal.Zero
	}
	return r.Quantity.Decimal
}
