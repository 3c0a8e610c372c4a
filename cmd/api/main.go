package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/alaire/inventario-api/internal/application/auth"
	"github.com/alaire/inventario-api/internal/application/export"
	"github.com/alaire/inventario-api/internal/application/inventory"
	"github.com/alaire/inventario-api/internal/application/report"
	"github.com/alaire/inventario-api/internal/application/usecase"
	infrapdf "github.com/alaire/inventario-api/internal/infrastructure/pdf"
	"github.com/alaire/inventario-api/internal/infrastructure/postgres"
	"github.com/alaire/inventario-api/internal/infrastructure/raster"
	httpRouter "github.com/alaire/inventario-api/internal/interfaces/http"
	"github.com/alaire/inventario-api/pkg/config"
	"github.com/alaire/inventario-api/pkg/logger"
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
	roleRepo := postgres.NewRoleRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	movementRepo := postgres.NewMovementRepository(pool)
	snapshotRepo := postgres.NewSnapshotRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// El período arranca abierto; Guardado lo cierra hasta el Revisado.
	gate := inventory.NewPeriodGate()

	registerMovementUC := inventory.NewRegisterMovementUseCase(gate, txRunner, log)
	periodUC := inventory.NewPeriodUseCase(gate, productRepo, snapshotRepo, log)
	productUC := usecase.NewProductUseCase(productRepo, gate, log)
	roleUC := usecase.NewRoleUseCase(roleRepo, log)
	userUC := usecase.NewUserUseCase(userRepo, log)
	reportUC := report.NewUseCase(movementRepo, productRepo)
	exportUC := export.NewUseCase(productRepo, infrapdf.NewMarotoTableGenerator(), raster.NewTablePNGGenerator())
	authUC := auth.NewUseCase(userRepo, roleRepo, auth.TokenConfig{
		Secret:     cfg.JWT.Secret,
		Issuer:     cfg.JWT.Issuer,
		ExpMinutes: cfg.JWT.Expiration,
	}, log)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(cors.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Inventario Cocina API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:           authUC,
		ProductUC:        productUC,
		RoleUC:           roleUC,
		UserUC:           userUC,
		RegisterMovement: registerMovementUC,
		PeriodUC:         periodUC,
		ReportUC:         reportUC,
		ExportUC:         exportUC,
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
