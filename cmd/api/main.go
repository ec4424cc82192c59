package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jcastro-ops/inventario-campo/internal/application/allocation"
	"github.com/jcastro-ops/inventario-campo/internal/application/importer"
	"github.com/jcastro-ops/inventario-campo/internal/application/stock"
	"github.com/jcastro-ops/inventario-campo/internal/application/usecase"
	"github.com/jcastro-ops/inventario-campo/internal/infrastructure/csvfile"
	"github.com/jcastro-ops/inventario-campo/internal/infrastructure/postgres"
	httpRouter "github.com/jcastro-ops/inventario-campo/internal/interfaces/http"
	"github.com/jcastro-ops/inventario-campo/pkg/config"
	"github.com/jcastro-ops/inventario-campo/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Msg("iniciando aplicación")

	dsn := cfg.DB.ConnectionString()
	if err := postgres.RunMigrations(dsn); err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	itemRepo := postgres.NewItemRepository(pool)
	warehouseRepo := postgres.NewWarehouseRepository(pool)
	stockRepo := postgres.NewStockRepository(pool)
	allocRepo := postgres.NewAllocationRepository(pool)
	areaRepo := postgres.NewAreaRepository(pool)
	materialRepo := postgres.NewMaterialRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	receiveUC := stock.NewReceiveUseCase(txRunner, warehouseRepo)
	deleteItemUC := stock.NewDeleteItemUseCase(txRunner)
	queryUC := stock.NewQueryUseCase(itemRepo, warehouseRepo, stockRepo)
	requirementUC := stock.NewRequirementUseCase(itemRepo, stockRepo)
	allocationUC := allocation.NewUseCase(txRunner, materialRepo, allocRepo)
	areaUC := usecase.NewAreaUseCase(areaRepo, txRunner)
	materialUC := usecase.NewMaterialUseCase(materialRepo, areaRepo, txRunner)
	warehouseUC := usecase.NewWarehouseUseCase(warehouseRepo, txRunner)
	activityUC := usecase.NewActivityUseCase(csvfile.NewActivityStore(cfg.Import.ActivitiesCSV))

	// Arranque: almacenes fijos y snapshot CSV, ambos idempotentes por vacío.
	imp := importer.New(warehouseRepo, itemRepo, txRunner)
	if err := imp.SeedWarehouses(ctx); err != nil {
		log.Fatal().Err(err).Msg("seed de almacenes")
	}
	imported, err := imp.ImportCSV(ctx, cfg.Import.InventoryCSV)
	if err != nil {
		log.Fatal().Err(err).Msg("importación de inventario")
	}
	if imported > 0 {
		log.Info().Int("items", imported).Msg("snapshot de inventario importado")
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Inventario Campo API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})
	app.Get("/metrics", httpRouter.MetricsHandler())

	httpRouter.Router(app, httpRouter.RouterDeps{
		ReceiveUC:     receiveUC,
		DeleteItemUC:  deleteItemUC,
		QueryUC:       queryUC,
		RequirementUC: requirementUC,
		AllocationUC:  allocationUC,
		AreaUC:        areaUC,
		MaterialUC:    materialUC,
		WarehouseUC:   warehouseUC,
		ActivityUC:    activityUC,
	})

	go func() {
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
