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
	"github.com/jhoicas/pos-backoffice/internal/application/auth"
	"github.com/jhoicas/pos-backoffice/internal/application/order"
	"github.com/jhoicas/pos-backoffice/internal/application/report"
	"github.com/jhoicas/pos-backoffice/internal/application/usecase"
	infrapdf "github.com/jhoicas/pos-backoffice/internal/infrastructure/pdf"
	"github.com/jhoicas/pos-backoffice/internal/infrastructure/postgres"
	"github.com/jhoicas/pos-backoffice/internal/infrastructure/storage"
	httpRouter "github.com/jhoicas/pos-backoffice/internal/interfaces/http"
	"github.com/jhoicas/pos-backoffice/pkg/config"
	"github.com/jhoicas/pos-backoffice/pkg/logger"

	_ "github.com/jhoicas/pos-backoffice/docs"
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
	productRepo := postgres.NewProductRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	reportRepo := postgres.NewReportRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	images, err := storage.NewImageStore(cfg.Upload.Dir, cfg.Upload.BaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("directorio de uploads")
	}

	receiptGen := infrapdf.NewMarotoReceiptGenerator(cfg.App.Name)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:   cfg.JWT.Secret,
		ExpHours: cfg.JWT.ExpHours,
		Issuer:   cfg.JWT.Issuer,
	})
	customerUC := usecase.NewCustomerUseCase(customerRepo)
	productUC := usecase.NewProductUseCase(productRepo)
	orderUC := order.NewOrderUseCase(txRunner, orderRepo, customerRepo, receiptGen)
	reportUC := report.NewReportUseCase(reportRepo)

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
		Title:    "POS Backoffice API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	// Imágenes de producto servidas desde disco.
	app.Static(cfg.Upload.BaseURL, images.Dir())

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:     authUC,
		CustomerUC: customerUC,
		ProductUC:  productUC,
		OrderUC:    orderUC,
		ReportUC:   reportUC,
		Images:     images,
		JWTSecret:  cfg.JWT.Secret,
		JWTExpH:    cfg.JWT.ExpHours,
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
