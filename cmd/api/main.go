package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/painel-movimentos/docs"
	"github.com/jhoicas/painel-movimentos/internal/application/cleaning"
	"github.com/jhoicas/painel-movimentos/internal/application/movements"
	"github.com/jhoicas/painel-movimentos/internal/infrastructure/chart"
	"github.com/jhoicas/painel-movimentos/internal/infrastructure/csvsource"
	"github.com/jhoicas/painel-movimentos/internal/infrastructure/memory"
	"github.com/jhoicas/painel-movimentos/internal/infrastructure/metrics"
	infrapdf "github.com/jhoicas/painel-movimentos/internal/infrastructure/pdf"
	"github.com/jhoicas/painel-movimentos/internal/infrastructure/xlsx"
	httpRouter "github.com/jhoicas/painel-movimentos/internal/interfaces/http"
	"github.com/jhoicas/painel-movimentos/pkg/config"
	"github.com/jhoicas/painel-movimentos/pkg/logger"
)

const swaggerFile = "./docs/swagger.json"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	// ── Carga única del export: cualquier fallo aquí es fatal ────────────────
	ctx := context.Background()
	loader := csvsource.NewLoader(csvsource.Options{
		Path:      cfg.Dataset.Path,
		Delimiter: cfg.Dataset.DelimiterRune(),
		Encoding:  cfg.Dataset.Encoding,
	})
	raw, err := loader.Load(ctx)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.Dataset.Path).Msg("carga del export de movimientos")
	}
	dataset, stats, err := cleaning.Run(raw, cleaning.ParseOptions{
		DateLayouts:  cfg.Dataset.DateLayouts,
		DecimalComma: cfg.Dataset.DecimalComma,
	})
	if err != nil {
		log.Fatal().Err(err).Strs("columns", raw.Names()).Msg("limpieza del export de movimientos")
	}
	log.Info().
		Int("raw_rows", stats.RawRows).
		Int("kept_rows", stats.KeptRows).
		Int("dropped_excluded", stats.DroppedExcluded).
		Int("dropped_operation_type", stats.DroppedOperationType).
		Int("invalid_dates", stats.InvalidDates).
		Int("invalid_quantities", stats.InvalidQuantities).
		Int("missing_descriptions", stats.MissingDescriptions).
		Msg("export de movimientos cargado")

	promMetrics := metrics.New()
	promMetrics.SetDatasetRows(dataset.Len())

	movementRepo := memory.NewMovementRepository(dataset, stats)

	optionsUC := movements.NewOptionsUseCase(movementRepo)
	leaderboardUC := movements.NewLeaderboardUseCase(movementRepo, cfg.Leaderboard.Size)
	seriesUC := movements.NewSeriesUseCase(movementRepo, promMetrics)
	dashboardUC := movements.NewDashboardUseCase(optionsUC, leaderboardUC, seriesUC)
	exportUC := movements.NewExportUseCase(dashboardUC, infrapdf.NewMarotoReportGenerator(), xlsx.NewExcelizeExporter())

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestID())
	app.Use(httpRouter.AccessLog(log.Component("http")))

	// Swagger UI en local: http://localhost:<port>/docs
	if cfg.App.SwaggerEnabled {
		if _, err := os.Stat(swaggerFile); err == nil {
			app.Use(swagger.New(swagger.Config{
				BasePath: "/",
				FilePath: swaggerFile,
				Path:     "docs",
				Title:    "Painel de Movimentos API",
			}))
		} else {
			log.Warn().Str("file", swaggerFile).Msg("swagger deshabilitado: archivo no encontrado")
		}
	}
	app.Get("/api/openapi.json", func(c *fiber.Ctx) error {
		c.Type("json", "utf-8")
		return c.SendString(docs.SwaggerInfo.ReadDoc())
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name, "rows": dataset.Len()})
	})
	app.Get("/metrics", adaptor.HTTPHandler(promMetrics.Handler()))

	httpRouter.Router(app, httpRouter.RouterDeps{
		Movements: httpRouter.NewMovementHandler(optionsUC, leaderboardUC, seriesUC, promMetrics),
		Exports:   httpRouter.NewExportHandler(exportUC, promMetrics),
		Dashboard: httpRouter.NewDashboardHandler(dashboardUC, seriesUC, chart.NewLineChartRenderer("", ""), promMetrics),
	})

	go func() {
		log.Info().Str("addr", cfg.HTTP.Addr()).Msg("servidor HTTP escuchando")
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
