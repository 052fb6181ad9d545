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
	"github.com/tu-usuario/ventas-clientes-api/internal/application/auth"
	"github.com/tu-usuario/ventas-clientes-api/internal/application/clientes"
	"github.com/tu-usuario/ventas-clientes-api/internal/infrastructure/pdf"
	"github.com/tu-usuario/ventas-clientes-api/internal/infrastructure/postgres"
	httpRouter "github.com/tu-usuario/ventas-clientes-api/internal/interfaces/http"
	"github.com/tu-usuario/ventas-clientes-api/pkg/config"
	"github.com/tu-usuario/ventas-clientes-api/pkg/logger"
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
	clienteRepo := postgres.NewClienteRepository(pool)
	tokenRepo := postgres.NewTokenRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewAuthUseCase(userRepo, clienteRepo, tokenRepo, txRunner)
	clienteUC := clientes.NewClienteUseCase(clienteRepo, txRunner)
	reporte := pdf.NewReporteClientes()

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.LoggingMiddleware(log))

	// Swagger UI en local: http://localhost:<port>/docs
	montarSwagger(app, "./docs/swagger.json", log)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:    authUC,
		ClienteUC: clienteUC,
		Reporte:   reporte,
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

// montarSwagger registra la UI de swagger solo si el archivo existe:
// swagger.New hace panic con rutas inexistentes y el json no siempre se genera.
func montarSwagger(app *fiber.App, filePath string, log *logger.Logger) {
	if _, err := os.Stat(filePath); err != nil {
		log.Warn().Str("file", filePath).Msg("swagger.json no encontrado, UI de docs deshabilitada")
		return
	}
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: filePath,
		Path:     "docs",
		Title:    "Ventas Clientes API",
	}))
}
