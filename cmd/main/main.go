package main

// @title Go WhatsApp Session Gateway REST API
// @version 1.0.0
// @description REST and WebSocket gateway over a single WhatsApp session: lifecycle, messaging, contacts, chats, groups and real-time event fan-out

// @contact.name gdbrns

// @license.name MIT

// @host localhost:7001
// @BasePath /api/v1

// @securityDefinitions.apikey APIKeyAuth
// @in header
// @name X-API-Key
// @description Static API key; also accepted as Authorization Bearer token

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	cron "github.com/robfig/cron/v3"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"

	"github.com/gdbrns/go-whatsapp-session-gateway/pkg/env"
	"github.com/gdbrns/go-whatsapp-session-gateway/pkg/log"
	"github.com/gdbrns/go-whatsapp-session-gateway/pkg/router"
	"github.com/gdbrns/go-whatsapp-session-gateway/pkg/waclient"

	"github.com/gdbrns/go-whatsapp-session-gateway/internal"
	"github.com/gdbrns/go-whatsapp-session-gateway/internal/session"
)

func main() {
	// Intialize Cron
	c := cron.New(cron.WithChain(
		cron.Recover(cron.DiscardLogger),
	), cron.WithSeconds())

	// Open the credential datastore and build the single client + service
	client, err := waclient.NewMeow()
	if err != nil {
		log.Print(nil).WithError(err).Fatal("Failed to open whatsapp datastore")
	}
	svc := session.New(client)

	// Initialize Fiber
	app := fiber.New(fiber.Config{
		ErrorHandler: router.HttpErrorHandler,
		BodyLimit:    router.BodyLimitBytes(),
	})

	// Request ID + panic recovery (structured JSON)
	app.Use(router.HttpRequestID())
	app.Use(router.RecoveryMiddleware())

	// Router Compression
	app.Use(compress.New(compress.Config{
		Level: compress.Level(router.GZipLevel),
		Next: func(c *fiber.Ctx) bool {
			// Compression buffers would starve the SSE stream.
			return strings.Contains(c.Path(), "docs") || strings.Contains(c.Path(), "/whatsapp/events")
		},
	}))

	// Router CORS
	app.Use(cors.New(cors.Config{
		AllowOrigins: router.CORSOrigin,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization, X-API-Key",
		AllowMethods: "GET,POST,PUT,PATCH,DELETE",
	}))

	// Router Security
	app.Use(helmet.New(helmet.Config{
		XSSProtection:      "1; mode=block",
		ContentTypeNosniff: "nosniff",
		XFrameOptions:      "SAMEORIGIN",
	}))

	// Router Cache
	app.Use(router.HttpCacheInMemory(router.CacheTTLSeconds))

	// Router RealIP + request context enrichment
	app.Use(router.HttpRealIP())

	// Router Rate Limit
	app.Use(router.HttpRateLimit(router.RateLimitPerSecond, router.RateLimitBurst))

	// Router Default Handler
	app.Get("/favicon.ico", router.ResponseNoContent)

	// Load Internal Routes
	internal.Routes(app, svc)

	// Running Startup Tasks
	internal.Startup(svc)

	// Running Routines Tasks
	internal.Routines(c, svc)
	c.Start()

	// Get Server Configuration with defaults
	serverAddress := env.GetEnvStringOrDefault("SERVER_ADDRESS", "0.0.0.0")
	serverPort := env.GetEnvStringOrDefault("SERVER_PORT", "7001")

	// Start server in background
	go func() {
		if err := app.Listen(serverAddress + ":" + serverPort); err != nil {
			log.Print(nil).WithError(err).Fatal("Failed to start server")
		}
	}()
	log.Print(nil).Info("Server started at " + serverAddress + ":" + serverPort)

	// Wait for termination signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Print(nil).Info("Shutting down server")

	c.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Print(nil).WithError(err).Error("Failed to shut down http server cleanly")
	}

	// Disconnect the client last so in-flight commands can finish
	if err := client.Destroy(context.Background()); err != nil {
		log.Print(nil).WithError(err).Error("Failed to disconnect whatsapp client")
	}

	log.Print(nil).Info("Server stopped")
}
