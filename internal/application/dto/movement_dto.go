package dto

import "github.com/shopspring/decimal"

// ── Query parameters ──────────────────────────────────────────────────────────

// SeriesRequest selección del usuario para GET /api/movements/series (y exports).
//
// YearsSet/MonthsSet distinguen el parámetro omitido (todos los valores) del parámetro
// presente pero vacío (ningún valor).
type SeriesRequest struct {
	Item         string `json:"item" validate:"required"`
	Mode         string `json:"mode"`                                 // monthly (default) | yearly
	Years        []int  `json:"years" validate:"dive,gte=1,lte=9999"` // vacío + YearsSet=false → todos
	YearsSet     bool   `json:"-"`
	Months       []int  `json:"months" validate:"dive,gte=1,lte=12"` // sólo en modo monthly
	MonthsSet    bool   `json:"-"`
	BusinessUnit *int   `json:"business_unit,omitempty"` // nil → sin restricción
}

// ── Serie ─────────────────────────────────────────────────────────────────────

// SeriesPointDTO cantidad sumada de un período.
type SeriesPointDTO struct {
	Year     int             `json:"year"`
	Month    int             `json:"month,omitempty"` // 0 en modo yearly
	Label    string          `json:"label"`           // "2024-03" o "2024"
	Quantity decimal.Decimal `json:"quantity"`
}

// SeriesResponseDTO respuesta de GET /api/movements/series.
type SeriesResponseDTO struct {
	Title        string           `json:"title"` // ej: "Soma da Quantidade de PARAFUSO por Mês"
	Item         string           `json:"item"`
	Mode         string           `json:"mode"`
	Years        []int            `json:"years"`
	Months       []int            `json:"months,omitempty"`
	BusinessUnit *int             `json:"business_unit,omitempty"`
	Points       []SeriesPointDTO `json:"points"` // ordenados por período ascendente
	Total        decimal.Decimal  `json:"total"`  // "Quantidade Total Selecionada"
}

// ── Ranking ───────────────────────────────────────────────────────────────────

// LeaderboardEntryDTO un material del ranking.
type LeaderboardEntryDTO struct {
	Rank                int             `json:"rank"` // 1 = más movido
	MaterialDescription string          `json:"material_description"`
	Quantity            decimal.Decimal `json:"quantity"`
}

// LeaderboardDTO respuesta de GET /api/movements/leaderboard.
type LeaderboardDTO struct {
	Title   string                `json:"title"`
	Entries []LeaderboardEntryDTO `json:"entries"`
}

// ── Opciones de los selectores ────────────────────────────────────────────────

// DatasetInfoDTO resumen de la carga.
type DatasetInfoDTO struct {
	Rows                 int    `json:"rows"`
	RawRows              int    `json:"raw_rows"`
	DroppedExcluded      int    `json:"dropped_excluded"`
	DroppedOperationType int    `json:"dropped_operation_type"`
	InvalidDates         int    `json:"invalid_dates"`
	InvalidQuantities    int    `json:"invalid_quantities"`
	MissingDescriptions  int    `json:"missing_descriptions"`
	LoadedAt             string `json:"loaded_at,omitempty"` // RFC 3339
}

// OptionsDTO respuesta de GET /api/movements/options: valores de cada selector.
type OptionsDTO struct {
	Items         []string       `json:"items"` // descripciones ordenadas
	Modes         []string       `json:"modes"`
	Years         []int          `json:"years"`
	Months        []int          `json:"months"`
	BusinessUnits []int          `json:"business_units"`
	Dataset       DatasetInfoDTO `json:"dataset"`
}

// ── Vista completa ────────────────────────────────────────────────────────────

// DashboardDTO todo lo que el painel muestra para una selección.
type DashboardDTO struct {
	Options     OptionsDTO        `json:"options"`
	Leaderboard LeaderboardDTO    `json:"leaderboard"`
	Series      SeriesResponseDTO `json:"series"`
}
