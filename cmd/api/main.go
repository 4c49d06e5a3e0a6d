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

	"github.com/jhoicas/mebel-store/internal/app"
	"github.com/jhoicas/mebel-store/internal/application/dto"
	httpRouter "github.com/jhoicas/mebel-store/internal/interfaces/http"
	"github.com/jhoicas/mebel-store/pkg/config"
	"github.com/jhoicas/mebel-store/pkg/logger"
)

const swaggerFile = "./docs/swagger.json"

var _ httpRouter.StorageManager = (*app.Container)(nil)

// @title        Mebel Store API
// @version      1.0
// @description  Catálogo de la tienda de muebles: categorías, productos, tiendas, slides y contacto.
// @BasePath     /
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
		Str("backend", cfg.Remote.Backend).
		Msg("iniciando aplicación")

	ctx := context.Background()
	container, err := app.New(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("inicializar stores")
	}
	defer container.Close()

	// WriteTimeout 0: los streams SSE de administración son de larga duración.
	server := fiber.New(fiber.Config{
		AppName:     cfg.App.Name,
		ReadTimeout: time.Second * 10,
		IdleTimeout: time.Second * 60,
	})
	server.Use(recover.New())
	server.Use(httpRouter.RequestLogger(log))

	// Swagger UI en local: http://localhost:<port>/docs (requiere haber corrido swag init).
	if _, err := os.Stat(swaggerFile); err == nil {
		server.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: swaggerFile,
			Path:     "docs",
			Title:    "Mebel Store API",
		}))
	} else {
		log.Warn().Str("file", swaggerFile).Msg("sin especificación swagger, /docs deshabilitado")
	}

	server.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(dto.HealthResponse{Status: "ok", App: cfg.App.Name})
	})

	httpRouter.Router(server, httpRouter.RouterDeps{
		Categories:      container.Categories,
		Products:        container.Products,
		Shops:           container.Shops,
		Slides:          container.Slides,
		ContactInfo:     container.ContactInfo,
		ContactMessages: container.ContactMessages,
		Storage:         container,
	})

	go func() {
		if err := server.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	// Cerrar los stores primero termina los streams SSE abiertos.
	container.Close()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
