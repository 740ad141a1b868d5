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

	appanalytics "github.com/TanmayElinje/inventory-pro/internal/application/analytics"
	"github.com/TanmayElinje/inventory-pro/internal/application/auth"
	"github.com/TanmayElinje/inventory-pro/internal/application/forecast"
	"github.com/TanmayElinje/inventory-pro/internal/application/ledger"
	"github.com/TanmayElinje/inventory-pro/internal/application/usecase"
	"github.com/TanmayElinje/inventory-pro/internal/infrastructure/postgres"
	"github.com/TanmayElinje/inventory-pro/internal/infrastructure/realtime"
	httpRouter "github.com/TanmayElinje/inventory-pro/internal/interfaces/http"
	"github.com/TanmayElinje/inventory-pro/pkg/config"
	"github.com/TanmayElinje/inventory-pro/pkg/logger"

	_ "github.com/TanmayElinje/inventory-pro/docs"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("starting application")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("PostgreSQL connection")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	movementRepo := postgres.NewStockMovementRepository(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	hub := realtime.NewHub()
	broker, err := realtime.NewBroker(ctx, cfg.Redis, hub)
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection")
	}
	defer func() { _ = broker.Close() }()
	if err := broker.Subscribe(ctx); err != nil {
		log.Fatal().Err(err).Msg("redis subscription")
	}

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	}, cfg.Signup)
	supplierUC := usecase.NewSupplierUseCase(supplierRepo)
	categoryUC := usecase.NewCategoryUseCase(categoryRepo)
	forecastUC := forecast.NewUseCase(movementRepo)
	productUC := usecase.NewProductUseCase(productRepo, categoryRepo, supplierRepo, forecastUC)
	adjustUC := ledger.NewApplyAdjustmentUseCase(txRunner, productRepo, broker)
	historyUC := ledger.NewHistoryUseCase(movementRepo, productRepo)
	replenishmentUC := ledger.NewReplenishmentUseCase(analyticsRepo)
	dashboardUC := appanalytics.NewDashboardUseCase(analyticsRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Inventory Pro API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:          authUC,
		SupplierUC:      supplierUC,
		CategoryUC:      categoryUC,
		ProductUC:       productUC,
		AdjustUC:        adjustUC,
		HistoryUC:       historyUC,
		ReplenishmentUC: replenishmentUC,
		DashboardUC:     dashboardUC,
		Hub:             hub,
		JWTSecret:       cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("HTTP server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		log.Error().Err(err).Msg("HTTP shutdown")
	}
}
