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

	"github.com/jhoicas/Facturacion-api/internal/application/auth"
	"github.com/jhoicas/Facturacion-api/internal/application/billing"
	"github.com/jhoicas/Facturacion-api/internal/infrastructure/events"
	infrapdf "github.com/jhoicas/Facturacion-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Facturacion-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Facturacion-api/internal/infrastructure/storage"
	httpRouter "github.com/jhoicas/Facturacion-api/internal/interfaces/http"
	"github.com/jhoicas/Facturacion-api/pkg/config"
	"github.com/jhoicas/Facturacion-api/pkg/logger"
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

	userRepo := postgres.NewUserRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	requestRepo := postgres.NewSubscriptionRequestRepository(pool)
	invoiceRepo := postgres.NewInvoiceRepository(pool)

	// Señales de cambio: Redis pub/sub si hay REDIS_ADDR, si no se descartan.
	var notifier billing.ChangeNotifier = billing.NopNotifier{}
	if cfg.Redis.Addr != "" {
		redisNotifier, err := events.NewRedisNotifier(cfg.Redis, log)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a Redis")
		}
		defer redisNotifier.Close()
		notifier = redisNotifier
	}

	// Artefactos PDF: MinIO/S3 si hay STORAGE_ENDPOINT, si no disco local.
	var artifactStore billing.ArtifactStore
	if cfg.Storage.Endpoint != "" {
		artifactStore, err = storage.NewMinIOArtifactStore(ctx, cfg.Storage)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a MinIO")
		}
	} else {
		artifactStore, err = storage.NewLocalArtifactStore(cfg.Storage.LocalDir)
		if err != nil {
			log.Fatal().Err(err).Msg("almacén local de artefactos")
		}
	}

	pdfGenerator := infrapdf.NewMarotoPDFGenerator(cfg.App.Name, "facturacion@"+cfg.App.Name+".local")

	requestUC := billing.NewRequestUseCase(requestRepo, customerRepo, notifier, log)
	customerUC := billing.NewCustomerUseCase(customerRepo, notifier)
	invoiceUC := billing.NewInvoiceUseCase(invoiceRepo, customerRepo, notifier)
	pdfUC := billing.NewPDFUseCase(invoiceRepo, customerRepo, pdfGenerator, artifactStore, notifier)
	dashboardUC := billing.NewDashboardUseCase(customerRepo, requestRepo, invoiceRepo)
	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

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
		Title:    "Facturación API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		RequestUC:   requestUC,
		CustomerUC:  customerUC,
		InvoiceUC:   invoiceUC,
		PDFUC:       pdfUC,
		DashboardUC: dashboardUC,
		AuthUC:      authUC,
		JWTSecret:   cfg.JWT.Secret,
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
