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
	"github.com/redis/go-redis/v9"

	"github.com/jhoicas/Distribucion-api/internal/application/actor"
	"github.com/jhoicas/Distribucion-api/internal/application/allocation"
	"github.com/jhoicas/Distribucion-api/internal/application/auth"
	"github.com/jhoicas/Distribucion-api/internal/application/commission"
	"github.com/jhoicas/Distribucion-api/internal/application/reconciliation"
	"github.com/jhoicas/Distribucion-api/internal/application/sale"
	"github.com/jhoicas/Distribucion-api/internal/application/stock"
	"github.com/jhoicas/Distribucion-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Distribucion-api/internal/infrastructure/redislocker"
	httpRouter "github.com/jhoicas/Distribucion-api/internal/interfaces/http"
	"github.com/jhoicas/Distribucion-api/pkg/config"
	"github.com/jhoicas/Distribucion-api/pkg/logger"
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

	actorRepo := postgres.NewActorRepository(pool)
	unitRepo := postgres.NewUnitRepository(pool)
	allocRepo := postgres.NewAllocationRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	commissionRepo := postgres.NewCommissionRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Reserva advisory sobre Redis — opcional: sin REDIS_ADDR las ventas
	// siguen funcionando solo con el CAS transaccional.
	var reserver sale.Reserver
	if cfg.Redis.Addr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Fatal().Err(err).Msg("conexión a Redis")
		}
		defer rdb.Close()
		reserver = redislocker.NewReserver(rdb, time.Duration(cfg.Sales.ReservationTTLSeconds)*time.Second)
		log.Info().Str("addr", cfg.Redis.Addr).Msg("reservas advisory habilitadas")
	}

	authUC := auth.NewAuthUseCase(actorRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	actorUC := actor.NewUseCase(actorRepo)
	stockUC := stock.NewUseCase(unitRepo, productRepo)
	allocationUC := allocation.NewUseCase(txRunner, actorRepo, unitRepo, allocRepo)
	saleUC := sale.NewUseCase(txRunner, actorRepo, unitRepo, productRepo, reserver, cfg.Sales.MissingLevelPolicy)
	commissionUC := commission.NewUseCase(commissionRepo)
	reconciliationUC := reconciliation.NewUseCase(unitRepo, saleRepo, commissionRepo, allocRepo)

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
		Title:    "Distribución API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:           authUC,
		ActorUC:          actorUC,
		StockUC:          stockUC,
		AllocationUC:     allocationUC,
		SaleUC:           saleUC,
		CommissionUC:     commissionUC,
		ReconciliationUC: reconciliationUC,
		JWTSecret:        cfg.JWT.Secret,
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
