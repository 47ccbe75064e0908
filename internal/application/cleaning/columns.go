// Package cleaning normaliza el export crudo de movimientos: corrige encabezados mal
// codificados, descarta materiales excluidos y operaciones fuera de alcance, y convierte
// la tabla en un entity.MovementDataset tipado.
package cleaning

// Nombres canónicos de columna tras la limpieza.
const (
	ColDate          = "Data"
	ColMaterialCode  = "Codigo do Material"
	ColDescription   = "Descrição do Material"
	ColBusinessUnit  = "Unidade de Negócio"
	ColOperationType = "Tipo de Operação"
	ColCompanyCode   = "Código Empresa"
	ColCompanyName   = "Nome Empresa"
	ColQuantity      = "Quantidade"
	ColMovement      = "Movimento" // se descarta si existe
)

// headerRename encabezado de origen → nombre canónico.
type headerRename struct {
	from, to string
}

// HeaderRenames encabezados conocidos del export (UTF-8 leído como latin1) y sus nombres
// canónicos. El orden es fijo para que el resultado sea determinista.
var HeaderRenames = []headerRename{
	{from: "DescriÃ§Ã£o do Material", to: ColDescription},
	{from: "CÃ³digo do Material", to: ColMaterialCode},
	{from: "Unidade de NegÃ³cio", to: ColBusinessUnit},
	{from: "Tipo de OperaÃ§Ã£o", to: ColOperationType},
	{from: "Empresa", to: ColCompanyCode},
	{from: "Nome Completo", to: ColCompanyName},
	{from: "Qtd", to: ColQuantity},
}

// RequiredColumns columnas que deben existir después del renombrado.
var RequiredColumns = []string{
	ColDate,
	ColMaterialCode,
	ColDescription,
	ColBusinessUnit,
	ColOperationType,
	ColCompanyCode,
	ColCompanyName,
	ColQuantity,
}
