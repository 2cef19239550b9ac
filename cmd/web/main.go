package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/tu-usuario/mercadito/internal/application/auth"
	"github.com/tu-usuario/mercadito/internal/application/usecase"
	infrapdf "github.com/tu-usuario/mercadito/internal/infrastructure/pdf"
	"github.com/tu-usuario/mercadito/internal/infrastructure/postgres"
	"github.com/tu-usuario/mercadito/internal/infrastructure/storage"
	httpRouter "github.com/tu-usuario/mercadito/internal/interfaces/http"
	"github.com/tu-usuario/mercadito/pkg/config"
	"github.com/tu-usuario/mercadito/pkg/logger"
	"github.com/tu-usuario/mercadito/web"
)

func main() {
	// JWT_SECRET ausente hace fallar Load: arrancar sin secret no es una opción.
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
	productRepo := postgres.NewProductRepository(pool)

	var images storage.ImageStore
	switch cfg.Storage.Driver {
	case "minio":
		images, err = storage.NewMinIOStore(ctx, cfg.Storage.MinIO, cfg.Storage.PublicBaseURL)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a MinIO")
		}
	default:
		images, err = storage.NewLocalStore(cfg.Storage.UploadDir)
		if err != nil {
			log.Fatal().Err(err).Msg("directorio de uploads")
		}
	}

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret: cfg.JWT.Secret,
		Issuer: cfg.JWT.Issuer,
	})
	productUC := usecase.NewProductUseCase(productRepo)
	catalogUC := usecase.NewCatalogExportUseCase(productUC, infrapdf.NewMarotoCatalogGenerator(cfg.App.Name))

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		Views:        web.NewEngine(),
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Con storage local, las imágenes se sirven desde la propia app.
	if cfg.Storage.Driver == "local" {
		app.Static("/uploads", cfg.Storage.UploadDir)
	}

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:        authUC,
		ProductUC:     productUC,
		CatalogExport: catalogUC,
		Images:        images,
		JWTSecret:     cfg.JWT.Secret,
		PublicBaseURL: cfg.Storage.PublicBaseURL,
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
