// Package format formatea números para presentación (pt-BR).
package format

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Quantity formato pt-BR: puntos de miles y coma decimal, máximo 2 decimales.
// Ej: 1234567.5 → "1.234.567,5"; -1000 → "-1.000"
func Quantity(d decimal.Decimal) string {
	s := d.Round(2).String()
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	intPart, frac, hasFrac := strings.Cut(s, ".")

	n := len(intPart)
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(intPart) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	if hasFrac {
		return sign + string(buf) + "," + frac
	}
	return sign + string(buf)
}
