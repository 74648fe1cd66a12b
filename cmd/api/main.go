package main

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/laminasur/backoffice-api/internal/application/directory"
	"github.com/laminasur/backoffice-api/internal/application/sales"
	"github.com/laminasur/backoffice-api/internal/application/stock"
	"github.com/laminasur/backoffice-api/internal/infrastructure/postgres"
	httpRouter "github.com/laminasur/backoffice-api/internal/interfaces/http"
	"github.com/laminasur/backoffice-api/pkg/config"
	"github.com/laminasur/backoffice-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.EnsureSchema(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("verificar/crear tablas")
	}
	log.Info().Msg("tablas verificadas")

	txRunner := postgres.NewTxRunner(pool)
	movRepo := postgres.NewStockMovementRepository(pool)
	stockRepo := postgres.NewCurrentStockRepository(pool)
	clienteRepo := postgres.NewClienteRepository(pool)
	orderRepo := postgres.NewSalesOrderRepository(pool)

	ledgerUC := stock.NewLedgerUseCase(txRunner, movRepo, stockRepo)
	clienteUC := directory.NewClienteUseCase(clienteRepo)
	orderUC := sales.NewOrderUseCase(txRunner, orderRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(cors.New())
	app.Use(httpRouter.RequestLogger(log.Zerolog()))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Laminas Backoffice API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		Ledger:    ledgerUC,
		ClienteUC: clienteUC,
		OrderUC:   orderUC,
	})

	// Frontend de ventas: estáticos más catch-all para el enrutamiento del
	// lado del cliente.
	app.Static("/", cfg.HTTP.StaticDir)
	app.Use(func(c *fiber.Ctx) error {
		return c.SendFile(filepath.Join(cfg.HTTP.StaticDir, "index.html"))
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
