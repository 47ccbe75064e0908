package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/painel-movimentos/internal/application/movements"
)

// ViewCounter cuenta las vistas servidas (métricas). Opcional.
type ViewCounter interface {
	IncView(view string)
}

type noopCounter struct{}

func (noopCounter) IncView(string) {}

// MovementHandler maneja los endpoints JSON del painel de movimentos.
type MovementHandler struct {
	options     *movements.OptionsUseCase
	leaderboard *movements.LeaderboardUseCase
	series      *movements.SeriesUseCase
	views       ViewCounter
}

// NewMovementHandler construye el handler.
func NewMovementHandler(
	options *movements.OptionsUseCase,
	leaderboard *movements.LeaderboardUseCase,
	series *movements.SeriesUseCase,
	views ViewCounter,
) *MovementHandler {
	if views == nil {
		views = noopCounter{}
	}
	return &MovementHandler{options: options, leaderboard: leaderboard, series: series, views: views}
}

// GetOptions godoc
// @Summary      Valores de los selectores
// @Description  Materiales (orden alfabético), modos, años, meses y unidades de negocio presentes,
//
//	más el resumen de la carga del export.
//
// @Tags         movements
// @Produce      json
// @Success      200  {object}  dto.OptionsDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/movements/options [get]
func (h *MovementHandler) GetOptions(c *fiber.Ctx) error {
	out, err := h.options.GetOptions(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	h.views.IncView("options")
	return c.JSON(out)
}

// GetLeaderboard godoc
// @Summary      Top 20 itens mais movimentados
// @Description  Suma de Quantidade por Descrição do Material sobre todo el conjunto, de mayor a menor.
// @Tags         movements
// @Produce      json
// @Success      200  {object}  dto.LeaderboardDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/movements/leaderboard [get]
func (h *MovementHandler) GetLeaderboard(c *fiber.Ctx) error {
	out, err := h.leaderboard.GetLeaderboard(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	h.views.IncView("leaderboard")
	return c.JSON(out)
}

// GetSeries godoc
// @Summary      Serie de cantidades de un material
// @Description  Filtra por material, años, meses (modo mensual) y unidad de negocio; agrupa por
//
//	(año, mes) o por año y suma Quantidade. Parámetro omitido = todos los valores;
//	presente y vacío = ninguno.
//
// @Tags         movements
// @Produce      json
// @Param        item           query  string  true   "Descrição do Material"
// @Param        mode           query  string  false  "monthly (default) | yearly"
// @Param        years          query  string  false  "Lista separada por comas. Default: todos."
// @Param        months         query  string  false  "Lista separada por comas (sólo monthly). Default: todos."
// @Param        business_unit  query  int     false  "Unidade de Negócio. Vacío = sin filtro."
// @Success      200  {object}  dto.SeriesResponseDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/movements/series [get]
func (h *MovementHandler) GetSeries(c *fiber.Ctx) error {
	req, err := parseSeriesRequest(c)
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.series.GetSeries(c.UserContext(), req)
	if err != nil {
		return writeError(c, err)
	}
	h.views.IncView("series")
	return c.JSON(out)
}
