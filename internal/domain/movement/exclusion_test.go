package movement_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/painel-movimentos/internal/domain/movement"
)

func TestIsExcludedDescription(t *testing.T) {
	excluded := []string{
		"WIDGET INATIVADO",
		"parafuso inativo",
		"Prestacao de Servicos PJ - março",
		"PRESTACAO DE SERVICOS CONTABEIS",
		"erro de cadastro",
	}
	for _, d := range excluded {
		assert.True(t, movement.IsExcludedDescription(d), d)
	}

	kept := []string{"BOLT", "PRESTACAO DE SERVICOS", "ATIVO FIXO", ""}
	for _, d := range kept {
		assert.False(t, movement.IsExcludedDescription(d), d)
	}
}
