package http

import (
	"github.com/gofiber/fiber/v2"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Movements *MovementHandler
	Exports   *ExportHandler
	Dashboard *DashboardHandler
}

// Router registra las rutas del painel (HTML) y de la API.
func Router(app *fiber.App, deps RouterDeps) {
	// Painel HTML
	app.Get("/", deps.Dashboard.Page)
	app.Get("/chart", deps.Dashboard.Chart)

	api := app.Group("/api")

	// Movimientos (solo lectura)
	mov := api.Group("/movements")
	mov.Get("/options", deps.Movements.GetOptions)
	mov.Get("/leaderboard", deps.Movements.GetLeaderboard)
	mov.Get("/series", deps.Movements.GetSeries)

	// Descargas de la vista
	mov.Get("/report.pdf", deps.Exports.DownloadPDF)
	mov.Get("/export.xlsx", deps.Exports.DownloadXLSX)
}
