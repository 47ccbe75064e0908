package movement

import (
	"strings"

	"golang.org/x/text/cases"
)

// ExclusionTokens fragmentos de descripción que marcan materiales fuera del análisis
// (inactivos, servicios y registros de catastro).
var ExclusionTokens = []string{
	"INATIVADO",
	"INATIVO",
	"PRESTACAO DE SERVICOS PJ",
	"PRESTACAO DE SERVICOS CONTABEIS",
	"CADASTRO",
}

// IsExcludedDescription indica si la descripción contiene alguno de los ExclusionTokens,
// sin distinguir mayúsculas y minúsculas.
func IsExcludedDescription(description string) bool {
	// cases.Caser guarda estado: uno por llamada.
	fold := cases.Fold()
	folded := fold.String(description)
	for _, tok := range ExclusionTokens {
		if strings.Contains(folded, fold.String(tok)) {
			return true
		}
	}
	return false
}
